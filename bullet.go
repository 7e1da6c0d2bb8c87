package main

const BulletRadius = 4.0

// Bullet is a projectile owned by exactly one player
type Bullet struct {
	ID      string
	OwnerID string
	X, Y    float64
	VX, VY  float64
	Damage  int
	Gun     string // which weapon fired it, for client visuals
}

// Update advances the bullet one fixed step
func (b *Bullet) Update() {
	b.X += b.VX
	b.Y += b.VY
}

// OutOfBounds reports whether the bullet has left the world rectangle
func (b *Bullet) OutOfBounds() bool {
	return b.X < 0 || b.X > WorldWidth || b.Y < 0 || b.Y > WorldHeight
}

// ToState converts to protocol state
func (b *Bullet) ToState() BulletState {
	return BulletState{
		ID:    b.ID,
		Owner: b.OwnerID,
		X:     round1(b.X),
		Y:     round1(b.Y),
		VX:    b.VX,
		VY:    b.VY,
		Gun:   b.Gun,
	}
}
