package main

import "time"

const (
	ZombieRadius       = 15.0
	ZombieMaxHP        = 50
	ZombieSpeed        = 1.2 // px per tick (fixed step)
	ZombieBiteRange    = 5.0
	ZombieBiteDamage   = 10
	ZombieBiteInterval = time.Second
	ZombieCap          = 10
	ZombieSpawnChance  = 0.02 // per tick, while under the cap
)

// Zombie is a server-controlled hostile that seeks the nearest player
type Zombie struct {
	ID       string
	X, Y     float64
	Radius   float64
	HP       int
	MaxHP    int
	Speed    float64
	LastBite time.Time
}

// NewZombie spawns a hostile just outside a random world edge.
// The offset by its radius keeps it out of the visible bounds until it
// walks in.
func NewZombie(id string) *Zombie {
	z := &Zombie{
		ID:     id,
		Radius: ZombieRadius,
		HP:     ZombieMaxHP,
		MaxHP:  ZombieMaxHP,
		Speed:  ZombieSpeed,
	}

	// Pick a random edge: 0=left, 1=right, 2=top, 3=bottom
	edge := int(randFloat() * 4)
	switch edge {
	case 0:
		z.X = -ZombieRadius
		z.Y = randFloat() * WorldHeight
	case 1:
		z.X = WorldWidth + ZombieRadius
		z.Y = randFloat() * WorldHeight
	case 2:
		z.X = randFloat() * WorldWidth
		z.Y = -ZombieRadius
	default:
		z.X = randFloat() * WorldWidth
		z.Y = WorldHeight + ZombieRadius
	}
	return z
}

// TakeDamage reduces HP and returns true if the zombie died
func (z *Zombie) TakeDamage(dmg int) bool {
	z.HP -= dmg
	if z.HP <= 0 {
		z.HP = 0
		return true
	}
	return false
}

// CanBite reports whether the bite cooldown has elapsed
func (z *Zombie) CanBite(now time.Time) bool {
	return now.Sub(z.LastBite) >= ZombieBiteInterval
}

// ToState converts to protocol state
func (z *Zombie) ToState() ZombieState {
	return ZombieState{
		ID:     z.ID,
		X:      round1(z.X),
		Y:      round1(z.Y),
		Radius: z.Radius,
		HP:     z.HP,
		MaxHP:  z.MaxHP,
	}
}
