package components

import (
	stdmath "math"

	cfg "github.com/automoto/parrybound/config"
	"github.com/automoto/parrybound/level"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PlayerData is the player's full movement, ability and damage state.
// Timers count down in seconds and are inactive at <= 0.
type PlayerData struct {
	Position math.Vec2 // Top-left of the sprite box
	Velocity math.Vec2
	OnGround bool

	Health    int
	MaxHealth int

	DashCooldown float64
	DashTimer    float64
	CanDash      bool

	Floating      bool
	FloatTimer    float64
	FloatCooldown float64

	InvulnTimer float64
	Checkpoint  math.Vec2

	CoyoteTimer     float64
	JumpBufferTimer float64

	OnWall        bool
	WallDirection int // +1 when a wall jump should push right, -1 for left
	WallJumpTimer float64

	Clinging   bool
	ClingTimer float64

	DamageTimer float64
	LastTile    level.Tile

	Anim        cfg.AnimState
	AnimFrame   int
	AnimTimer   float64
	FacingRight bool

	SlowingDown bool
	Ducking     bool

	ParryWindowTimer float64
	ParryCooldown    float64
	ParryActive      bool

	CanSpellCard bool // Unlocked by destroying a spawner
}

var Player = donburi.NewComponentType[PlayerData]()

// Reset puts the player at spawn with full health and every timer cleared.
// The spawn also becomes the checkpoint.
func (p *PlayerData) Reset(spawn math.Vec2) {
	*p = PlayerData{
		Position:    spawn,
		Health:      cfg.Player.MaxHealth,
		MaxHealth:   cfg.Player.MaxHealth,
		CanDash:     true,
		Checkpoint:  spawn,
		LastTile:    level.Empty,
		Anim:        cfg.AnimIdle,
		FacingRight: true,
	}
}

// TakeDamage applies damage unless the player is invulnerable and reports whether it landed.
func (p *PlayerData) TakeDamage(amount int) bool {
	if p.InvulnTimer > 0 {
		return false
	}
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	p.InvulnTimer = cfg.Player.InvulnDuration
	return true
}

func (p *PlayerData) Heal(amount int) {
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

func (p *PlayerData) IsAlive() bool {
	return p.Health > 0
}

// Hitbox is the collision box: narrower than the sprite, centered
// horizontally and aligned to the sprite bottom.
func (p *PlayerData) Hitbox() Rect {
	size := cfg.Player.Size
	w := size * cfg.Player.HitboxWidthScale
	h := size * cfg.Player.HitboxHeightScale
	if p.Ducking {
		h = size * cfg.Player.DuckHeightScale
	}
	if p.SlowingDown {
		w *= cfg.Player.SlowdownHitboxScale
		h *= cfg.Player.SlowdownHitboxScale
	}
	return Rect{
		X: p.Position.X + (size-w)/2,
		Y: p.Position.Y + size - h,
		W: w,
		H: h,
	}
}

// CanParry reports whether a bullet with the given velocity is parried.
// The parry window must be open while slowing down, and the player must be
// pressing against the bullet's horizontal direction of travel.
func (p *PlayerData) CanParry(bulletVel math.Vec2, movingLeft, movingRight bool) bool {
	if !p.ParryActive || p.ParryWindowTimer <= 0 {
		return false
	}
	if !p.SlowingDown {
		return false
	}

	angle := stdmath.Atan2(bulletVel.Y, bulletVel.X) * 180 / stdmath.Pi
	if angle < 0 {
		angle += 360
	}
	bulletMovingRight := angle >= 270 || angle < 90
	if bulletMovingRight {
		return movingLeft
	}
	return movingRight
}
