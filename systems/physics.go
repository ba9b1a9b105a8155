package systems

import (
	"math"

	"github.com/automoto/parrybound/components"
	cfg "github.com/automoto/parrybound/config"
	"github.com/automoto/parrybound/level"
	"github.com/automoto/parrybound/tags"
	"github.com/yohamta/donburi"
)

// edgeEpsilon keeps a hitbox resting flush against a tile from counting as overlap.
const edgeEpsilon = 1e-3

// UpdatePhysics applies gravity then resolves the player against the tile
// grid one axis at a time.
func UpdatePhysics(w donburi.World, dt float64) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	lvl := components.Level.Get(levelEntry).Level
	p := components.Player.Get(playerEntry)

	ApplyGravity(p, dt)
	MoveX(p, lvl, dt)
	MoveY(p, lvl, dt)
}

func ApplyGravity(p *components.PlayerData, dt float64) {
	g := cfg.Physics.Gravity
	switch {
	case p.Floating:
		p.Velocity.Y = math.Min(p.Velocity.Y+g*cfg.Physics.FloatGravityScale*dt, cfg.Physics.ReducedFallCap)
	case p.Clinging && p.ClingTimer > 0:
		p.Velocity.Y = 0
	case p.Clinging:
		p.Velocity.Y = math.Min(p.Velocity.Y+g*cfg.Physics.ClingGravityScale*dt, cfg.Physics.ReducedFallCap)
	default:
		p.Velocity.Y += g * dt
	}
}

// tileSpan returns the tile range covered by [lo, hi) on one axis.
func tileSpan(lo, hi float64) (int, int) {
	ts := cfg.Level.TileSize
	return int(math.Floor((lo + edgeEpsilon) / ts)), int(math.Floor((hi - edgeEpsilon) / ts))
}

// MoveX integrates horizontal velocity and pushes the hitbox out of any solid
// column it entered, flush with the tile edge.
func MoveX(p *components.PlayerData, lvl *level.Level, dt float64) {
	p.Position.X += p.Velocity.X * dt

	hb := p.Hitbox()
	offX := hb.X - p.Position.X
	left, right := tileSpan(hb.X, hb.Right())
	top, bottom := tileSpan(hb.Y, hb.Bottom())
	ts := cfg.Level.TileSize

	p.OnWall = false
	p.WallDirection = 0
	for y := top; y <= bottom; y++ {
		if p.Velocity.X < 0 && lvl.IsSolid(left, y) {
			p.Position.X = float64(left+1)*ts - offX
			p.Velocity.X = 0
			p.OnWall = true
			p.WallDirection = 1
		}
		if p.Velocity.X > 0 && lvl.IsSolid(right, y) {
			p.Position.X = float64(right)*ts - offX - hb.W
			p.Velocity.X = 0
			p.OnWall = true
			p.WallDirection = -1
		}
	}
}

// MoveY integrates vertical velocity. Landing sets OnGround; a ceiling hit
// only stops the ascent.
func MoveY(p *components.PlayerData, lvl *level.Level, dt float64) {
	p.Position.Y += p.Velocity.Y * dt

	hb := p.Hitbox()
	offY := hb.Y - p.Position.Y
	left, right := tileSpan(hb.X, hb.Right())
	top, bottom := tileSpan(hb.Y, hb.Bottom())
	ts := cfg.Level.TileSize

	p.OnGround = false
	for x := left; x <= right; x++ {
		if p.Velocity.Y < 0 && lvl.IsSolid(x, top) {
			p.Position.Y = float64(top+1)*ts - offY
			p.Velocity.Y = 0
		}
		if p.Velocity.Y >= 0 && lvl.IsSolid(x, bottom) {
			p.Position.Y = float64(bottom)*ts - offY - hb.H
			p.Velocity.Y = 0
			p.OnGround = true
		}
	}
}
