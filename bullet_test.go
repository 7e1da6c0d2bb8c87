package main

import "testing"

func TestBulletAdvance(t *testing.T) {
	b := &Bullet{X: 10, Y: 20, VX: 3, VY: -4}
	b.Update()
	if b.X != 13 || b.Y != 16 {
		t.Errorf("expected (13,16), got (%v,%v)", b.X, b.Y)
	}
}

func TestBulletOutOfBoundsIsRemovedForGood(t *testing.T) {
	g := newTestGame()
	m := &mockBroadcaster{}
	p := g.Connect("a", m)

	b := g.store.CreateBullet(p.ID, WorldWidth-5, 300, 10, 0, 20, "pistol")
	g.updateBullets()

	if g.store.Bullet(b.ID) != nil {
		t.Error("bullet past the right edge must be removed")
	}
	if m.count(MsgRemoveBullet) != 1 {
		t.Error("expected a removeBullet event")
	}

	// It never reappears in later snapshots
	for i := 0; i < 5; i++ {
		tickOnce(g)
		snap := g.snapshot()
		for _, bs := range snap.Bullets {
			if bs.ID == b.ID {
				t.Fatal("removed bullet reappeared in a snapshot")
			}
		}
	}
}

func TestBulletAllEdges(t *testing.T) {
	cases := []struct {
		name   string
		x, y   float64
		vx, vy float64
	}{
		{"left", 5, 300, -10, 0},
		{"right", WorldWidth - 5, 300, 10, 0},
		{"top", 400, 5, 0, -10},
		{"bottom", 400, WorldHeight - 5, 0, 10},
	}
	for _, tc := range cases {
		g := newTestGame()
		b := g.store.CreateBullet("p", tc.x, tc.y, tc.vx, tc.vy, 20, "pistol")
		g.updateBullets()
		if g.store.Bullet(b.ID) != nil {
			t.Errorf("%s: bullet should be out of bounds", tc.name)
		}
	}
}

func TestBulletHitsAtMostOneZombiePerTick(t *testing.T) {
	g := newTestGame()
	m := &mockBroadcaster{}
	p := g.Connect("a", m)

	// Two zombies stacked on the bullet's path; store order decides
	z1 := g.store.CreateZombie()
	z1.X, z1.Y = 400, 300
	z2 := g.store.CreateZombie()
	z2.X, z2.Y = 400, 300

	g.store.CreateBullet(p.ID, 385, 300, 10, 0, 20, "pistol")
	g.updateBullets()

	if z1.HP != ZombieMaxHP-20 {
		t.Errorf("first zombie in store order should take the hit, HP %d", z1.HP)
	}
	if z2.HP != ZombieMaxHP {
		t.Errorf("second zombie must be untouched, HP %d", z2.HP)
	}
	if g.store.BulletCount() != 0 {
		t.Error("bullet is consumed by the first hit")
	}
}
