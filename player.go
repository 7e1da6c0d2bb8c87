package main

import "time"

const (
	PlayerRadius = 20.0
	PlayerMaxHP  = 100
)

// Player represents a connected player in the arena
type Player struct {
	ID        string
	X, Y      float64
	Radius    float64
	HP        int
	MaxHP     int
	Score     int
	Gun       string
	LastFire  time.Time
	LastKnife time.Time

	// AuthID links to a registered account (0 = guest)
	AuthID int64
}

// NewPlayer creates a player at a random position away from the edges
func NewPlayer(id string) *Player {
	return &Player{
		ID:     id,
		X:      PlayerRadius + randFloat()*(WorldWidth-2*PlayerRadius),
		Y:      PlayerRadius + randFloat()*(WorldHeight-2*PlayerRadius),
		Radius: PlayerRadius,
		HP:     PlayerMaxHP,
		MaxHP:  PlayerMaxHP,
		Gun:    DefaultGun,
	}
}

// TakeDamage reduces HP and returns true if the player died
func (p *Player) TakeDamage(dmg int) bool {
	p.HP -= dmg
	if p.HP <= 0 {
		p.HP = 0
		return true
	}
	return false
}

// ToState converts to protocol state
func (p *Player) ToState() PlayerState {
	return PlayerState{
		ID:     p.ID,
		X:      round1(p.X),
		Y:      round1(p.Y),
		Radius: p.Radius,
		HP:     p.HP,
		MaxHP:  p.MaxHP,
		Score:  p.Score,
		Gun:    p.Gun,
	}
}
