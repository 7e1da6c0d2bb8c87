package main

import (
	"encoding/json"
	"math"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	TickRate     = 60 // simulation ticks per second
	TickDuration = time.Second / TickRate

	WorldWidth  = 800.0
	WorldHeight = 600.0
)

// Broadcaster is the per-connection send surface the game needs.
// All sends are fire-and-forget; a slow client must never block the tick.
type Broadcaster interface {
	SendJSON(msg interface{})
	SendRaw(data []byte)
	SendBinary(data []byte)
	WantsBinary() bool
}

// Game owns the world state and runs the authoritative simulation.
// One mutex serializes everything: inbound action handlers and the tick
// body are mutually exclusive, so at most one mutator touches the store
// at any instant.
type Game struct {
	mu        sync.Mutex
	store     *EntityStore
	clients   map[string]Broadcaster // playerID -> connection
	tick      uint64
	running   bool
	stop      chan struct{}
	analytics *Analytics

	// roll draws the spawn dice; swappable in tests
	roll func() float64

	// elapsed wall time of the last tick interval. Informational only:
	// movement uses fixed per-tick steps, not elapsed-time scaling.
	tickElapsed time.Duration
}

// NewGame creates a Game around the given store
func NewGame(store *EntityStore) *Game {
	return &Game{
		store:   store,
		clients: make(map[string]Broadcaster),
		stop:    make(chan struct{}),
		roll:    randFloat,
	}
}

// SetAnalytics attaches an optional analytics recorder
func (g *Game) SetAnalytics(a *Analytics) {
	g.analytics = a
}

// Run starts the fixed-rate loop. A slow tick delays the next one; the
// scheduler never skips or compensates beyond recomputing elapsed time.
func (g *Game) Run() {
	g.mu.Lock()
	g.running = true
	g.mu.Unlock()

	ticker := time.NewTicker(TickDuration)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ticker.C:
			now := time.Now()
			elapsed := now.Sub(last)
			last = now
			g.update(now, elapsed)
		case <-g.stop:
			return
		}
	}
}

// Stop terminates the loop
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running {
		g.running = false
		close(g.stop)
	}
}

// Connect creates a player for a new connection, sends the full state to
// that connection only, and announces the player to everyone else.
func (g *Game) Connect(id string, client Broadcaster) *Player {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := g.store.CreatePlayer(id)
	g.clients[id] = client

	client.SendJSON(Envelope{T: MsgCurrentGameState, Data: g.snapshot()})

	env := Envelope{T: MsgNewPlayer, Data: p.ToState()}
	for cid, c := range g.clients {
		if cid == id {
			continue
		}
		c.SendJSON(env)
	}

	g.analytics.Track(EvtConnect, p.AuthID, id, "")
	return p
}

// Disconnect removes a player and their connection. Safe to call for ids
// that were never connected or already removed.
func (g *Game) Disconnect(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.clients, id)
	p := g.store.Player(id)
	if !g.store.RemovePlayer(id) {
		return
	}
	g.broadcast(Envelope{T: MsgPlayerDisconnected, Data: PlayerIDMsg{ID: id}})
	g.analytics.Track(EvtDisconnect, p.AuthID, id, "")
}

// SetAuthID links a live player to a registered account
func (g *Game) SetAuthID(playerID string, authID int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if p := g.store.Player(playerID); p != nil {
		p.AuthID = authID
	}
}

// PlayerCount returns the number of live players
func (g *Game) PlayerCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.store.PlayerCount()
}

// HandleMove applies a position update. The reference policy accepts any
// coordinates — no speed or teleport validation.
func (g *Game) HandleMove(id string, msg MoveMsg) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := g.store.Player(id)
	if p == nil {
		return
	}
	p.X = msg.X
	p.Y = msg.Y
}

// HandleShoot validates a fire action against the equipped weapon's
// cooldown. Rejections are silent: no mutation, no error event.
func (g *Game) HandleShoot(id string, msg ShootMsg) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := g.store.Player(id)
	if p == nil {
		return
	}
	weapon, ok := Weapons[p.Gun]
	if !ok {
		return
	}
	now := time.Now()
	if now.Sub(p.LastFire) <= weapon.FireRate {
		return
	}
	dx := msg.TargetX - p.X
	dy := msg.TargetY - p.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		return
	}
	p.LastFire = now

	b := g.store.CreateBullet(p.ID, p.X, p.Y,
		dx/dist*weapon.BulletSpeed, dy/dist*weapon.BulletSpeed,
		weapon.Damage, weapon.Name)
	g.broadcast(Envelope{T: MsgNewBullet, Data: b.ToState()})
}

// HandleKnife validates a melee swing. Every zombie within knife reach is
// removed and scored; the swing effect is broadcast even on a whiff.
func (g *Game) HandleKnife(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := g.store.Player(id)
	if p == nil {
		return
	}
	now := time.Now()
	if now.Sub(p.LastKnife) <= KnifeCooldown {
		return
	}
	p.LastKnife = now

	kills := 0
	for _, z := range g.store.Zombies() {
		if Distance(p.X, p.Y, z.X, z.Y) < KnifeRadius+z.Radius {
			g.store.RemoveZombie(z.ID)
			g.broadcast(Envelope{T: MsgRemoveZombie, Data: RemoveMsg{ID: z.ID}})
			kills++
		}
	}
	if kills > 0 {
		p.Score += kills * KillReward
		g.sendTo(id, Envelope{T: MsgPlayerScoreUpdate, Data: PlayerScoreMsg{Score: p.Score}})
		for i := 0; i < kills; i++ {
			g.analytics.Track(EvtKill, p.AuthID, p.ID, "knife")
		}
	}
	g.broadcast(Envelope{T: MsgKnifeEffect, Data: KnifeEffectMsg{PlayerID: p.ID, X: p.X, Y: p.Y}})
}

// HandleChangeGun switches the equipped weapon if the key is known
func (g *Game) HandleChangeGun(id, gun string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := g.store.Player(id)
	if p == nil {
		return
	}
	if _, ok := Weapons[gun]; !ok {
		return
	}
	p.Gun = gun
}

// HandleGrenade is a wired but inert extension point: the event is part of
// the inbound protocol, the explosion is not implemented yet.
func (g *Game) HandleGrenade(id string) {
}

// update runs one tick: AI first, then projectile resolution, then the
// spawner, then the snapshot broadcast. The order is fixed.
func (g *Game) update(now time.Time, elapsed time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.tick++
	g.tickElapsed = elapsed

	g.updateZombies(now)
	g.updateBullets()
	g.spawnZombies()
	g.broadcastState()
}

// updateZombies steers each zombie one step toward its nearest player and
// applies contact damage on the bite cooldown
func (g *Game) updateZombies(now time.Time) {
	for _, z := range g.store.Zombies() {
		// Nearest player by Euclidean distance, ties kept by store order.
		// Re-scanned per zombie: a bite earlier in the loop may have
		// removed a player.
		var target *Player
		best := math.MaxFloat64
		for _, p := range g.store.Players() {
			if d2 := DistanceSq(z.X, z.Y, p.X, p.Y); d2 < best {
				best = d2
				target = p
			}
		}
		if target == nil {
			continue // no players, zombie idles
		}

		dist := math.Sqrt(best)
		if dist > 0 {
			z.X += (target.X - z.X) / dist * z.Speed
			z.Y += (target.Y - z.Y) / dist * z.Speed
		}

		if Distance(z.X, z.Y, target.X, target.Y) < target.Radius+ZombieBiteRange && z.CanBite(now) {
			z.LastBite = now
			died := target.TakeDamage(ZombieBiteDamage)
			g.sendTo(target.ID, Envelope{T: MsgPlayerHealthUpdate, Data: PlayerHealthMsg{HP: target.HP}})
			if died {
				g.store.RemovePlayer(target.ID)
				g.broadcast(Envelope{T: MsgPlayerDied, Data: PlayerIDMsg{ID: target.ID}})
				g.analytics.Track(EvtDeath, target.AuthID, target.ID, "")
			}
		}
	}
}

// updateBullets advances every bullet and resolves hits. A bullet hits at
// most one zombie per tick (first match in store order) and is consumed.
func (g *Game) updateBullets() {
	for _, b := range g.store.Bullets() {
		b.Update()
		if b.OutOfBounds() {
			g.store.RemoveBullet(b.ID)
			g.broadcast(Envelope{T: MsgRemoveBullet, Data: RemoveMsg{ID: b.ID}})
			continue
		}
		for _, z := range g.store.Zombies() {
			if !CheckCollision(b.X, b.Y, BulletRadius, z.X, z.Y, z.Radius) {
				continue
			}
			g.store.RemoveBullet(b.ID)
			g.broadcast(Envelope{T: MsgRemoveBullet, Data: RemoveMsg{ID: b.ID}})

			if z.TakeDamage(b.Damage) {
				g.store.RemoveZombie(z.ID)
				g.broadcast(Envelope{T: MsgRemoveZombie, Data: RemoveMsg{ID: z.ID}})
				// Owner may have died or disconnected mid-flight
				if owner := g.store.Player(b.OwnerID); owner != nil {
					owner.Score += KillReward
					g.sendTo(owner.ID, Envelope{T: MsgPlayerScoreUpdate, Data: PlayerScoreMsg{Score: owner.Score}})
					g.analytics.Track(EvtKill, owner.AuthID, owner.ID, b.Gun)
				}
			} else {
				g.broadcast(Envelope{T: MsgZombieHealthUpdate, Data: ZombieHealthMsg{ID: z.ID, HP: z.HP}})
			}
			break
		}
	}
}

// spawnZombies rolls the spawn dice while under the population cap
func (g *Game) spawnZombies() {
	if g.store.ZombieCount() >= ZombieCap {
		return
	}
	if g.roll() >= ZombieSpawnChance {
		return
	}
	z := g.store.CreateZombie()
	g.broadcast(Envelope{T: MsgNewZombie, Data: z.ToState()})
}

// snapshot builds the full-state message. Caller must hold the mutex.
func (g *Game) snapshot() GameStateMsg {
	players := g.store.Players()
	zombies := g.store.Zombies()
	bullets := g.store.Bullets()

	state := GameStateMsg{
		Players: make([]PlayerState, 0, len(players)),
		Zombies: make([]ZombieState, 0, len(zombies)),
		Bullets: make([]BulletState, 0, len(bullets)),
		Tick:    g.tick,
	}
	for _, p := range players {
		state.Players = append(state.Players, p.ToState())
	}
	for _, z := range zombies {
		state.Zombies = append(state.Zombies, z.ToState())
	}
	for _, b := range bullets {
		state.Bullets = append(state.Bullets, b.ToState())
	}
	return state
}

// broadcastState sends the per-tick snapshot to every client. JSON is
// marshaled once; msgpack only if some client opted into binary frames.
func (g *Game) broadcastState() {
	snap := g.snapshot()
	data, err := json.Marshal(Envelope{T: MsgGameUpdate, Data: snap})
	if err != nil {
		return
	}
	var packed []byte
	for _, c := range g.clients {
		if c.WantsBinary() {
			if packed == nil {
				packed, err = msgpack.Marshal(snap)
				if err != nil {
					packed = nil
				}
			}
			if packed != nil {
				c.SendBinary(packed)
				continue
			}
		}
		c.SendRaw(data)
	}
}

// broadcast sends a message to all clients. Caller must hold the mutex.
func (g *Game) broadcast(msg Envelope) {
	for _, c := range g.clients {
		c.SendJSON(msg)
	}
}

// sendTo sends a message to one player's connection, if any. Caller must
// hold the mutex.
func (g *Game) sendTo(id string, msg Envelope) {
	if c, ok := g.clients[id]; ok {
		c.SendJSON(msg)
	}
}
