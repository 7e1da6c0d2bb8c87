package main

import (
	"sync"
	"testing"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// mockBroadcaster captures sent messages for testing
type mockBroadcaster struct {
	mu       sync.Mutex
	messages []Envelope
	raw      [][]byte
	binMsgs  [][]byte
	binary   bool
}

func (m *mockBroadcaster) SendJSON(msg interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if env, ok := msg.(Envelope); ok {
		m.messages = append(m.messages, env)
	}
}

func (m *mockBroadcaster) SendRaw(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.raw = append(m.raw, data)
}

func (m *mockBroadcaster) SendBinary(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.binMsgs = append(m.binMsgs, data)
}

func (m *mockBroadcaster) WantsBinary() bool { return m.binary }

// count returns how many captured envelopes have the given type
func (m *mockBroadcaster) count(t string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, env := range m.messages {
		if env.T == t {
			n++
		}
	}
	return n
}

// last returns the most recent envelope of the given type, or nil
func (m *mockBroadcaster) last(t string) *Envelope {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.messages) - 1; i >= 0; i-- {
		if m.messages[i].T == t {
			return &m.messages[i]
		}
	}
	return nil
}

func newTestGame() *Game {
	return NewGame(NewEntityStore())
}

// tickOnce runs one simulation step without the ticker
func tickOnce(g *Game) {
	g.update(time.Now(), TickDuration)
}

func TestConnectSendsStateAndAnnounces(t *testing.T) {
	g := newTestGame()
	m1 := &mockBroadcaster{}
	g.Connect("a", m1)

	if m1.count(MsgCurrentGameState) != 1 {
		t.Fatal("new connection should receive the full state once")
	}

	m2 := &mockBroadcaster{}
	g.Connect("b", m2)

	if m1.count(MsgNewPlayer) != 1 {
		t.Error("existing client should see the new player")
	}
	if m2.count(MsgNewPlayer) != 0 {
		t.Error("new client should not be told about itself")
	}
	if m2.count(MsgCurrentGameState) != 1 {
		t.Error("second connection should receive the full state")
	}
	if g.PlayerCount() != 2 {
		t.Errorf("expected 2 players, got %d", g.PlayerCount())
	}
}

func TestDisconnectIsIdempotent(t *testing.T) {
	g := newTestGame()
	m1 := &mockBroadcaster{}
	m2 := &mockBroadcaster{}
	g.Connect("a", m1)
	g.Connect("b", m2)

	g.Disconnect("b")
	g.Disconnect("b")
	g.Disconnect("never-joined")

	if n := m1.count(MsgPlayerDisconnected); n != 1 {
		t.Errorf("expected exactly 1 departure event, got %d", n)
	}
	if g.PlayerCount() != 1 {
		t.Errorf("expected 1 player, got %d", g.PlayerCount())
	}
}

func TestTickAdvancesAndBroadcasts(t *testing.T) {
	g := newTestGame()
	m := &mockBroadcaster{}
	g.Connect("a", m)

	for i := 0; i < 10; i++ {
		tickOnce(g)
	}

	if g.tick != 10 {
		t.Errorf("expected tick 10, got %d", g.tick)
	}
	m.mu.Lock()
	rawCount := len(m.raw)
	m.mu.Unlock()
	if rawCount != 10 {
		t.Errorf("expected 10 snapshot broadcasts, got %d", rawCount)
	}
}

func TestBinarySnapshotIsMsgpack(t *testing.T) {
	g := newTestGame()
	m := &mockBroadcaster{binary: true}
	g.Connect("a", m)

	tickOnce(g)

	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.binMsgs) != 1 {
		t.Fatalf("expected 1 binary snapshot, got %d", len(m.binMsgs))
	}
	var snap GameStateMsg
	if err := msgpack.Unmarshal(m.binMsgs[0], &snap); err != nil {
		t.Fatalf("msgpack unmarshal: %v", err)
	}
	if len(snap.Players) != 1 {
		t.Errorf("expected 1 player in snapshot, got %d", len(snap.Players))
	}
	if snap.Tick != 1 {
		t.Errorf("expected tick 1, got %d", snap.Tick)
	}
}

func TestMoveIsUnvalidated(t *testing.T) {
	g := newTestGame()
	m := &mockBroadcaster{}
	p := g.Connect("a", m)

	g.HandleMove("a", MoveMsg{X: 123, Y: 456})
	if p.X != 123 || p.Y != 456 {
		t.Errorf("expected (123,456), got (%v,%v)", p.X, p.Y)
	}

	// Reference policy: no speed cap, any coordinates accepted
	g.HandleMove("a", MoveMsg{X: -9999, Y: 9999})
	if p.X != -9999 || p.Y != 9999 {
		t.Error("move should be accepted unconditionally")
	}

	// Actions for players no longer in the store are no-ops
	g.HandleMove("ghost", MoveMsg{X: 1, Y: 1})
}

func TestGrenadeIsAnInertStub(t *testing.T) {
	g := newTestGame()
	m := &mockBroadcaster{}
	g.Connect("a", m)

	g.HandleGrenade("a")

	if g.store.BulletCount() != 0 || g.store.ZombieCount() != 0 {
		t.Error("grenade must not mutate state")
	}
	if len(m.messages) != 1 { // only the initial currentGameState
		t.Errorf("grenade must emit no events, got %d messages", len(m.messages))
	}
}
