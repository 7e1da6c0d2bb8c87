package main

import "encoding/json"

// Client -> Server message types
const (
	MsgPlayerMove      = "playerMove"
	MsgPlayerShoot     = "playerShoot"
	MsgKnifeAttack     = "knifeAttack"
	MsgPlayerChangeGun = "playerChangeGun"
	MsgThrowGrenade    = "throwGrenade" // accepted, no state effect yet
	MsgBinaryMode      = "binary"       // opt in to msgpack snapshots
	MsgRegister        = "register"
	MsgLogin           = "login"
	MsgAuth            = "auth"
	MsgLeaderboard     = "leaderboard"
)

// Server -> Client message types
const (
	MsgCurrentGameState   = "currentGameState"
	MsgNewPlayer          = "newPlayer"
	MsgNewBullet          = "newBullet"
	MsgRemoveBullet       = "removeBullet"
	MsgNewZombie          = "newZombie"
	MsgRemoveZombie       = "removeZombie"
	MsgZombieHealthUpdate = "zombieHealthUpdate"
	MsgPlayerHealthUpdate = "playerHealthUpdate"
	MsgPlayerScoreUpdate  = "playerScoreUpdate"
	MsgPlayerDied         = "playerDied"
	MsgPlayerDisconnected = "playerDisconnected"
	MsgKnifeEffect        = "knifeEffect"
	MsgGameUpdate         = "gameUpdate"
	MsgAuthOK             = "authOk"
	MsgLeaderboardData    = "leaderboardData"
	MsgError              = "error"
)

// Envelope wraps all outgoing messages with a type field
type Envelope struct {
	T    string      `json:"t"`
	Data interface{} `json:"d,omitempty"`
}

// InEnvelope is used for incoming messages — json.RawMessage avoids double-unmarshal
type InEnvelope struct {
	T string          `json:"t"`
	D json.RawMessage `json:"d,omitempty"`
}

// MoveMsg carries a new player position
type MoveMsg struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ShootMsg carries the point the player is firing toward
type ShootMsg struct {
	TargetX float64 `json:"targetX"`
	TargetY float64 `json:"targetY"`
}

// ChangeGunMsg requests a weapon switch
type ChangeGunMsg struct {
	GunType string `json:"gunType"`
}

// PlayerState is the wire form of a player
type PlayerState struct {
	ID     string  `json:"id" msgpack:"id"`
	X      float64 `json:"x" msgpack:"x"`
	Y      float64 `json:"y" msgpack:"y"`
	Radius float64 `json:"r" msgpack:"r"`
	HP     int     `json:"hp" msgpack:"hp"`
	MaxHP  int     `json:"mhp" msgpack:"mhp"`
	Score  int     `json:"sc" msgpack:"sc"`
	Gun    string  `json:"gun" msgpack:"gun"`
}

// ZombieState is the wire form of a hostile
type ZombieState struct {
	ID     string  `json:"id" msgpack:"id"`
	X      float64 `json:"x" msgpack:"x"`
	Y      float64 `json:"y" msgpack:"y"`
	Radius float64 `json:"r" msgpack:"r"`
	HP     int     `json:"hp" msgpack:"hp"`
	MaxHP  int     `json:"mhp" msgpack:"mhp"`
}

// BulletState is the wire form of a projectile
type BulletState struct {
	ID    string  `json:"id" msgpack:"id"`
	Owner string  `json:"o" msgpack:"o"`
	X     float64 `json:"x" msgpack:"x"`
	Y     float64 `json:"y" msgpack:"y"`
	VX    float64 `json:"vx" msgpack:"vx"`
	VY    float64 `json:"vy" msgpack:"vy"`
	Gun   string  `json:"gun" msgpack:"gun"`
}

// GameStateMsg is the full snapshot, sent on connect and every tick
type GameStateMsg struct {
	Players []PlayerState `json:"players" msgpack:"players"`
	Zombies []ZombieState `json:"zombies" msgpack:"zombies"`
	Bullets []BulletState `json:"bullets" msgpack:"bullets"`
	Tick    uint64        `json:"tick" msgpack:"tick"`
}

// RemoveMsg identifies a removed entity
type RemoveMsg struct {
	ID string `json:"id"`
}

// ZombieHealthMsg reports a hostile's remaining health after a hit
type ZombieHealthMsg struct {
	ID string `json:"id"`
	HP int    `json:"health"`
}

// PlayerHealthMsg is sent only to the player whose health changed
type PlayerHealthMsg struct {
	HP int `json:"health"`
}

// PlayerScoreMsg is sent only to the player whose score changed
type PlayerScoreMsg struct {
	Score int `json:"score"`
}

// PlayerIDMsg is broadcast on death and disconnect
type PlayerIDMsg struct {
	ID string `json:"id"`
}

// KnifeEffectMsg is broadcast whenever a melee swing happens, hit or miss
type KnifeEffectMsg struct {
	PlayerID string  `json:"playerId"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// RegisterMsg creates an account
type RegisterMsg struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginMsg authenticates with credentials
type LoginMsg struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthMsg authenticates with a previously issued token
type AuthMsg struct {
	Token string `json:"token"`
}

// AuthOKMsg confirms authentication
type AuthOKMsg struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	PlayerID int64  `json:"pid"`
}

// LeaderboardRow is one entry in the career leaderboard
type LeaderboardRow struct {
	Username string `json:"username"`
	Kills    int    `json:"kills"`
	Score    int    `json:"score"`
	Deaths   int    `json:"deaths"`
}

// ErrorMsg sends an error to the client
type ErrorMsg struct {
	Msg string `json:"msg"`
}
