package components

import (
	"testing"

	cfg "github.com/automoto/parrybound/config"
	"github.com/automoto/parrybound/level"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

func newPlayer() *PlayerData {
	p := &PlayerData{}
	p.Reset(math.NewVec2(100, 200))
	return p
}

func TestResetClearsState(t *testing.T) {
	p := newPlayer()
	p.Health = 1
	p.DashCooldown = 0.5
	p.Floating = true
	p.CanSpellCard = true

	p.Reset(math.NewVec2(10, 20))

	assert.Equal(t, cfg.Player.MaxHealth, p.Health)
	assert.Equal(t, 10.0, p.Checkpoint.X)
	assert.Equal(t, 20.0, p.Checkpoint.Y)
	assert.Zero(t, p.DashCooldown)
	assert.False(t, p.Floating)
	assert.False(t, p.CanSpellCard)
	assert.True(t, p.FacingRight)
	assert.True(t, p.CanDash)
	assert.Equal(t, level.Empty, p.LastTile)
}

func TestTakeDamageInvulnerability(t *testing.T) {
	p := newPlayer()

	assert.True(t, p.TakeDamage(1))
	assert.Equal(t, cfg.Player.MaxHealth-1, p.Health)
	assert.Equal(t, cfg.Player.InvulnDuration, p.InvulnTimer)

	for i := 0; i < 5; i++ {
		assert.False(t, p.TakeDamage(1))
	}
	assert.Equal(t, cfg.Player.MaxHealth-1, p.Health, "damage while invulnerable is a no-op")

	p.InvulnTimer = 0
	p.TakeDamage(100)
	assert.Equal(t, 0, p.Health)
	assert.False(t, p.IsAlive())
}

func TestHealClamps(t *testing.T) {
	p := newPlayer()
	p.Health = 1
	p.Heal(1)
	assert.Equal(t, 2, p.Health)
	p.Heal(50)
	assert.Equal(t, p.MaxHealth, p.Health)
}

func TestHitbox(t *testing.T) {
	size := cfg.Player.Size
	tests := []struct {
		name        string
		ducking     bool
		slowingDown bool
		wantW       float64
		wantH       float64
	}{
		{"standing", false, false, size * 0.8, size * 0.85},
		{"ducking", true, false, size * 0.8, size * 0.5},
		{"slowing", false, true, size * 0.8 * 0.8, size * 0.85 * 0.8},
		{"ducking and slowing", true, true, size * 0.8 * 0.8, size * 0.5 * 0.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPlayer()
			p.Ducking = tt.ducking
			p.SlowingDown = tt.slowingDown
			hb := p.Hitbox()
			assert.InDelta(t, tt.wantW, hb.W, 1e-9)
			assert.InDelta(t, tt.wantH, hb.H, 1e-9)
			assert.InDelta(t, p.Position.Y+size, hb.Bottom(), 1e-9, "bottom aligned")
			cx, _ := hb.Center()
			assert.InDelta(t, p.Position.X+size/2, cx, 1e-9, "horizontally centered")
		})
	}
}

func TestCanParry(t *testing.T) {
	right := math.NewVec2(100, 0)
	left := math.NewVec2(-100, 0)
	down := math.NewVec2(0, 100) // 90 degrees counts as moving left
	up := math.NewVec2(0, -100)  // 270 degrees counts as moving right

	tests := []struct {
		name        string
		vel         math.Vec2
		moveLeft    bool
		moveRight   bool
		windowOpen  bool
		slowingDown bool
		want        bool
	}{
		{"bullet right, press left", right, true, false, true, true, true},
		{"bullet right, press right", right, false, true, true, true, false},
		{"bullet left, press right", left, false, true, true, true, true},
		{"bullet left, press left", left, true, false, true, true, false},
		{"straight down, press right", down, false, true, true, true, true},
		{"straight up, press left", up, true, false, true, true, true},
		{"window closed", right, true, false, false, true, false},
		{"not slowing down", right, true, false, true, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPlayer()
			p.SlowingDown = tt.slowingDown
			if tt.windowOpen {
				p.ParryActive = true
				p.ParryWindowTimer = 0.1
			}
			assert.Equal(t, tt.want, p.CanParry(tt.vel, tt.moveLeft, tt.moveRight))
		})
	}
}
