package main

import "time"

// DefaultGun is what every new player spawns with
const DefaultGun = "pistol"

// WeaponConfig holds the static stats for one weapon
type WeaponConfig struct {
	Name        string
	Damage      int
	FireRate    time.Duration // minimum time between shots
	BulletSpeed float64       // px per tick
	AmmoCost    int           // per shot; carried for the catalog, no ammo pool yet
}

// WeaponCatalog is the full list of weapons
var WeaponCatalog = []WeaponConfig{
	{Name: "pistol", Damage: 20, FireRate: 300 * time.Millisecond, BulletSpeed: 10, AmmoCost: 1},
	{Name: "machinegun", Damage: 10, FireRate: 100 * time.Millisecond, BulletSpeed: 12, AmmoCost: 1},
	{Name: "shotgun", Damage: 34, FireRate: 900 * time.Millisecond, BulletSpeed: 8, AmmoCost: 2},
}

// Weapons provides O(1) lookup by weapon name
var Weapons map[string]WeaponConfig

func init() {
	Weapons = make(map[string]WeaponConfig, len(WeaponCatalog))
	for _, w := range WeaponCatalog {
		Weapons[w.Name] = w
	}
}

// Knife (melee) constants — the knife is not in the catalog, it has no
// projectile and is always available
const (
	KnifeCooldown = 500 * time.Millisecond
	KnifeRadius   = 50.0
	KillReward    = 10
)
