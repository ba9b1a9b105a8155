package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/parrybound/components"
	cfg "github.com/automoto/parrybound/config"
	"github.com/automoto/parrybound/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

// boxLevel is a 20x15 level with a grass floor on the bottom row.
func boxLevel() *level.Level {
	lvl := level.New("box", 20, 15)
	for x := 0; x < lvl.Width; x++ {
		lvl.SetTile(x, 14, level.Grass)
	}
	return lvl
}

func newPlayerAt(x, y float64) *components.PlayerData {
	p := &components.PlayerData{}
	p.Reset(dmath.NewVec2(x, y))
	return p
}

// overlapsSolid reports whether the hitbox shares area with any solid tile.
func overlapsSolid(p *components.PlayerData, lvl *level.Level) bool {
	hb := p.Hitbox()
	left, right := tileSpan(hb.X, hb.Right())
	top, bottom := tileSpan(hb.Y, hb.Bottom())
	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			if lvl.IsSolid(x, y) {
				return true
			}
		}
	}
	return false
}

func TestGravity(t *testing.T) {
	tests := []struct {
		name  string
		setup func(p *components.PlayerData)
		start float64
		want  float64
	}{
		{"free fall", func(p *components.PlayerData) {}, 0, cfg.Physics.Gravity * tick},
		{"float is capped", func(p *components.PlayerData) { p.Floating = true }, 49.9, cfg.Physics.ReducedFallCap},
		{"cling holds", func(p *components.PlayerData) { p.Clinging = true; p.ClingTimer = 0.5 }, 80, 0},
		{"cling expired slides", func(p *components.PlayerData) { p.Clinging = true }, 0, cfg.Physics.Gravity * cfg.Physics.ClingGravityScale * tick},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPlayerAt(0, 0)
			tt.setup(p)
			p.Velocity.Y = tt.start
			ApplyGravity(p, tick)
			assert.InDelta(t, tt.want, p.Velocity.Y, 1e-9)
		})
	}
}

func TestLandingSnapsFlush(t *testing.T) {
	lvl := boxLevel()
	p := newPlayerAt(100, 670)
	p.Velocity.Y = 600

	MoveY(p, lvl, tick)

	assert.True(t, p.OnGround)
	assert.Zero(t, p.Velocity.Y)
	assert.InDelta(t, 14*cfg.Level.TileSize, p.Hitbox().Bottom(), 1e-9)
}

func TestRisingNeverLands(t *testing.T) {
	lvl := boxLevel()
	p := newPlayerAt(100, 675)
	p.OnGround = true
	p.Velocity.Y = -350

	MoveY(p, lvl, tick)
	assert.False(t, p.OnGround)
	assert.Equal(t, -350.0, p.Velocity.Y)
}

func TestCeilingStopsAscent(t *testing.T) {
	lvl := boxLevel()
	lvl.SetTile(2, 10, level.Stone)
	ts := cfg.Level.TileSize
	hbOffY := cfg.Player.Size - cfg.Player.Size*cfg.Player.HitboxHeightScale
	p := newPlayerAt(2*ts+10, 11*ts-hbOffY+2)
	p.Velocity.Y = -350

	MoveY(p, lvl, tick)

	assert.Zero(t, p.Velocity.Y)
	assert.False(t, p.OnGround)
	assert.InDelta(t, 11*ts, p.Hitbox().Y, 1e-9)
}

func TestWallContact(t *testing.T) {
	lvl := boxLevel()
	for y := 0; y < 14; y++ {
		lvl.SetTile(5, y, level.Stone)
	}
	ts := cfg.Level.TileSize

	t.Run("moving right into a wall", func(t *testing.T) {
		p := newPlayerAt(5*ts-cfg.Player.Size+1, 300)
		p.Velocity.X = 250
		MoveX(p, lvl, tick)

		assert.True(t, p.OnWall)
		assert.Equal(t, -1, p.WallDirection)
		assert.Zero(t, p.Velocity.X)
		assert.InDelta(t, 5*ts, p.Hitbox().Right(), 1e-9)
	})

	t.Run("moving left into a wall", func(t *testing.T) {
		p := newPlayerAt(6*ts-1, 300)
		p.Velocity.X = -250
		MoveX(p, lvl, tick)

		assert.True(t, p.OnWall)
		assert.Equal(t, 1, p.WallDirection)
		assert.Zero(t, p.Velocity.X)
		assert.InDelta(t, 6*ts, p.Hitbox().X, 1e-9)
	})

	t.Run("resting flush is not contact", func(t *testing.T) {
		p := newPlayerAt(5*ts-cfg.Player.Size+1, 300)
		p.Velocity.X = 250
		MoveX(p, lvl, tick)
		require.True(t, p.OnWall)

		p.Velocity.X = 0
		MoveX(p, lvl, tick)
		assert.False(t, p.OnWall)
	})
}

func TestLevelEdgesAreWalls(t *testing.T) {
	lvl := boxLevel()
	p := newPlayerAt(-1, 300)
	p.Velocity.X = -250

	MoveX(p, lvl, tick)
	assert.InDelta(t, 0, p.Hitbox().X, 1e-9)
	assert.Equal(t, 1, p.WallDirection)
}

// Moving one axis at a time from a clear position never ends inside a solid tile.
func TestAxisSeparationKeepsHitboxClear(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	lvl := boxLevel()
	for i := 0; i < 60; i++ {
		lvl.SetTile(1+rng.Intn(18), 1+rng.Intn(13), level.Stone)
	}

	trials := 0
	for trials < 500 {
		p := newPlayerAt(rng.Float64()*900+25, rng.Float64()*650+25)
		p.Ducking = rng.Intn(4) == 0
		if overlapsSolid(p, lvl) {
			continue
		}
		trials++
		p.Velocity = dmath.NewVec2(rng.Float64()*1500-750, rng.Float64()*1500-750)

		for step := 0; step < 10; step++ {
			ApplyGravity(p, tick)
			MoveX(p, lvl, tick)
			MoveY(p, lvl, tick)
			require.False(t, overlapsSolid(p, lvl), "trial %d step %d at %v", trials, step, p.Position)
		}
	}
}
