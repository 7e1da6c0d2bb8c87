package main

import "testing"

func TestAnalyticsAggregatesStats(t *testing.T) {
	db := openTestDB(t)
	id, _ := db.CreateUser("alice", "hash")

	a := NewAnalytics(db)
	a.Track(EvtKill, id, "conn-1", "pistol")
	a.Track(EvtKill, id, "conn-1", "knife")
	a.Track(EvtDeath, id, "conn-1", "")
	a.Track(EvtKill, 0, "guest-1", "pistol") // guest, recorded but not aggregated
	a.Stop()                                 // flushes

	stats, err := db.GetStats(id)
	if err != nil || stats == nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Kills != 2 || stats.Deaths != 1 || stats.Score != 2*KillReward {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestAnalyticsNilIsSafe(t *testing.T) {
	var a *Analytics
	a.Track(EvtKill, 1, "x", "") // must not panic
	a.Stop()
}
