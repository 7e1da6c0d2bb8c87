package main

import (
	"log"
	"sync"
	"time"
)

// Event types for analytics tracking
const (
	EvtConnect    = "connect"
	EvtDisconnect = "disconnect"
	EvtKill       = "kill"
	EvtDeath      = "death"
)

const (
	analyticsBufSize    = 1024
	analyticsBatchSize  = 64
	analyticsFlushEvery = 5 * time.Second
)

// AnalyticsEvent is a single trackable game event
type AnalyticsEvent struct {
	Type      string
	PlayerID  int64  // account id, 0 for guests
	SessionID string // in-game player id
	Data      string // optional metadata (weapon name etc.)
	Timestamp time.Time
}

// Analytics batches game events and writes them to the database in the
// background. Enqueueing never blocks the game loop.
type Analytics struct {
	db     *DB
	events chan AnalyticsEvent
	stop   chan struct{}
	wg     sync.WaitGroup
}

// NewAnalytics creates and starts the background writer
func NewAnalytics(db *DB) *Analytics {
	a := &Analytics{
		db:     db,
		events: make(chan AnalyticsEvent, analyticsBufSize),
		stop:   make(chan struct{}),
	}
	a.wg.Add(1)
	go a.writer()
	return a
}

// Track enqueues an event. Safe on a nil receiver (analytics disabled) and
// drops events rather than blocking when the buffer is full.
func (a *Analytics) Track(evtType string, playerID int64, sessionID, data string) {
	if a == nil {
		return
	}
	select {
	case a.events <- AnalyticsEvent{
		Type:      evtType,
		PlayerID:  playerID,
		SessionID: sessionID,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}:
	default:
	}
}

// Stop flushes pending events and shuts the writer down
func (a *Analytics) Stop() {
	if a == nil {
		return
	}
	close(a.stop)
	a.wg.Wait()
}

// writer batches events and applies them to the database
func (a *Analytics) writer() {
	defer a.wg.Done()

	ticker := time.NewTicker(analyticsFlushEvery)
	defer ticker.Stop()

	batch := make([]AnalyticsEvent, 0, analyticsBatchSize)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := a.db.InsertEvents(batch); err != nil {
			log.Printf("analytics: insert failed: %v", err)
		}
		for _, evt := range batch {
			a.applyStats(evt)
		}
		batch = batch[:0]
	}

	for {
		select {
		case evt := <-a.events:
			batch = append(batch, evt)
			if len(batch) >= analyticsBatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-a.stop:
			// Drain whatever is still queued
			for {
				select {
				case evt := <-a.events:
					batch = append(batch, evt)
				default:
					flush()
					return
				}
			}
		}
	}
}

// applyStats folds kill/death events into the career stats of registered
// players; guest events are recorded but not aggregated
func (a *Analytics) applyStats(evt AnalyticsEvent) {
	if evt.PlayerID == 0 {
		return
	}
	var err error
	switch evt.Type {
	case EvtKill:
		err = a.db.RecordKill(evt.PlayerID, KillReward)
	case EvtDeath:
		err = a.db.RecordDeath(evt.PlayerID)
	}
	if err != nil {
		log.Printf("analytics: stats update failed: %v", err)
	}
}
