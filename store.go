package main

import "fmt"

// EntityStore is the single source of truth for live entities. It is a pure
// state container: no validation or game rules live here, and it does no
// locking of its own — the owning Game serializes all access.
//
// Iteration order is insertion order. The resolver and AI break ties by
// store order, so the order must be stable across a server run.
type EntityStore struct {
	players     map[string]*Player
	playerOrder []string

	zombies     map[string]*Zombie
	zombieOrder []string

	bullets     map[string]*Bullet
	bulletOrder []string

	// Monotonic per-class counters. Never reset, never reused.
	nextZombieID uint64
	nextBulletID uint64
}

// NewEntityStore creates an empty store
func NewEntityStore() *EntityStore {
	return &EntityStore{
		players: make(map[string]*Player),
		zombies: make(map[string]*Zombie),
		bullets: make(map[string]*Bullet),
	}
}

// CreatePlayer adds a player under a connection-derived id
func (s *EntityStore) CreatePlayer(id string) *Player {
	p := NewPlayer(id)
	s.players[id] = p
	s.playerOrder = append(s.playerOrder, id)
	return p
}

// Player returns the player with the given id, or nil
func (s *EntityStore) Player(id string) *Player {
	return s.players[id]
}

// RemovePlayer deletes a player. Returns false if the id is not present.
func (s *EntityStore) RemovePlayer(id string) bool {
	if _, ok := s.players[id]; !ok {
		return false
	}
	delete(s.players, id)
	s.playerOrder = removeID(s.playerOrder, id)
	return true
}

// CreateZombie adds a hostile with a fresh id at a world-edge position
func (s *EntityStore) CreateZombie() *Zombie {
	s.nextZombieID++
	z := NewZombie(fmt.Sprintf("zombie-%d", s.nextZombieID))
	s.zombies[z.ID] = z
	s.zombieOrder = append(s.zombieOrder, z.ID)
	return z
}

// Zombie returns the hostile with the given id, or nil
func (s *EntityStore) Zombie(id string) *Zombie {
	return s.zombies[id]
}

// RemoveZombie deletes a hostile. Returns false if the id is not present.
func (s *EntityStore) RemoveZombie(id string) bool {
	if _, ok := s.zombies[id]; !ok {
		return false
	}
	delete(s.zombies, id)
	s.zombieOrder = removeID(s.zombieOrder, id)
	return true
}

// CreateBullet adds a projectile with a fresh id
func (s *EntityStore) CreateBullet(owner string, x, y, vx, vy float64, damage int, gun string) *Bullet {
	s.nextBulletID++
	b := &Bullet{
		ID:      fmt.Sprintf("bullet-%d", s.nextBulletID),
		OwnerID: owner,
		X:       x,
		Y:       y,
		VX:      vx,
		VY:      vy,
		Damage:  damage,
		Gun:     gun,
	}
	s.bullets[b.ID] = b
	s.bulletOrder = append(s.bulletOrder, b.ID)
	return b
}

// Bullet returns the projectile with the given id, or nil
func (s *EntityStore) Bullet(id string) *Bullet {
	return s.bullets[id]
}

// RemoveBullet deletes a projectile. Returns false if the id is not present.
func (s *EntityStore) RemoveBullet(id string) bool {
	if _, ok := s.bullets[id]; !ok {
		return false
	}
	delete(s.bullets, id)
	s.bulletOrder = removeID(s.bulletOrder, id)
	return true
}

// Players returns all players in store order
func (s *EntityStore) Players() []*Player {
	out := make([]*Player, 0, len(s.playerOrder))
	for _, id := range s.playerOrder {
		out = append(out, s.players[id])
	}
	return out
}

// Zombies returns all hostiles in store order
func (s *EntityStore) Zombies() []*Zombie {
	out := make([]*Zombie, 0, len(s.zombieOrder))
	for _, id := range s.zombieOrder {
		out = append(out, s.zombies[id])
	}
	return out
}

// Bullets returns all projectiles in store order
func (s *EntityStore) Bullets() []*Bullet {
	out := make([]*Bullet, 0, len(s.bulletOrder))
	for _, id := range s.bulletOrder {
		out = append(out, s.bullets[id])
	}
	return out
}

// PlayerCount returns the number of players
func (s *EntityStore) PlayerCount() int { return len(s.players) }

// ZombieCount returns the number of hostiles
func (s *EntityStore) ZombieCount() int { return len(s.zombies) }

// BulletCount returns the number of projectiles
func (s *EntityStore) BulletCount() int { return len(s.bullets) }

func removeID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
