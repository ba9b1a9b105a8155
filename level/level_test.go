package level

import (
	"testing"

	"github.com/automoto/parrybound/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClampsSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"too small", 5, 3, config.Level.MinWidth, config.Level.MinHeight},
		{"too large", 500, 900, config.Level.MaxWidth, config.Level.MaxHeight},
		{"in range", 40, 20, 40, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl := New("test", tt.w, tt.h)
			assert.Equal(t, tt.wantW, lvl.Width)
			assert.Equal(t, tt.wantH, lvl.Height)
			assert.Equal(t, config.Level.SpawnX, lvl.Spawn.X)
			assert.Equal(t, config.Level.SpawnY, lvl.Spawn.Y)
			assert.False(t, lvl.HasGoal)
		})
	}
}

func TestIsSolidOutsideGrid(t *testing.T) {
	lvl := New("test", 20, 15)
	for _, pt := range [][2]int{{-1, 0}, {0, -1}, {20, 0}, {0, 15}, {-5, -5}, {100, 100}} {
		assert.True(t, lvl.IsSolid(pt[0], pt[1]), "tile %v", pt)
		assert.Equal(t, Empty, lvl.Tile(pt[0], pt[1]))
	}
}

func TestIsSolidMatchesTileSet(t *testing.T) {
	want := map[Tile]bool{
		Grass: true, Dirt: true, Stone: true, JumpBoost: true,
		Damage: true, Spike: true, Checkpoint: true,
	}
	lvl := New("test", 20, 15)
	for code := Tile(0); code < 40; code++ {
		lvl.SetTile(3, 4, code)
		assert.Equal(t, want[code], lvl.IsSolid(3, 4), "tile %d (%s)", code, code)
	}
}

func TestSetTileIgnoresOutOfRange(t *testing.T) {
	lvl := New("test", 20, 15)
	lvl.SetTile(-1, 3, Stone)
	lvl.SetTile(20, 3, Stone)
	lvl.SetBackground(0, 15, BackgroundStart)
	for y := 0; y < lvl.Height; y++ {
		for x := 0; x < lvl.Width; x++ {
			require.Equal(t, Empty, lvl.Tile(x, y))
			require.Equal(t, Empty, lvl.Background(x, y))
		}
	}
}

func TestSetGoalRecordsPosition(t *testing.T) {
	lvl := New("test", 20, 15)
	lvl.SetTile(7, 3, Goal)
	require.True(t, lvl.HasGoal)
	assert.Equal(t, 7*config.Level.TileSize, lvl.Goal.X)
	assert.Equal(t, 3*config.Level.TileSize, lvl.Goal.Y)
	assert.False(t, lvl.IsSolid(7, 3))
}

func TestEffects(t *testing.T) {
	assert.True(t, EffectOf(Spike).Deadly)
	assert.True(t, EffectOf(Spike).HasDamage())
	assert.True(t, EffectOf(Damage).HasDamage())
	assert.False(t, EffectOf(Damage).Deadly)
	assert.Equal(t, 1.5, EffectOf(JumpBoost).JumpBoost)
	assert.True(t, EffectOf(Checkpoint).Checkpoint)
	assert.Equal(t, Effect{}, EffectOf(Grass))

	saved := config.World
	t.Cleanup(func() { config.World = saved })
	config.World.SpikeDamage = 2
	config.World.JumpBoostMult = 2
	assert.Equal(t, 2, EffectOf(Spike).Damage)
	assert.Equal(t, 2.0, EffectOf(JumpBoost).JumpBoost)

	lvl := New("test", 20, 15)
	lvl.SetTile(2, 2, Spike)
	assert.True(t, lvl.EffectAt(2, 2).Deadly)
	assert.Equal(t, Effect{}, lvl.EffectAt(-1, 2))
}

func TestTileAtFloors(t *testing.T) {
	lvl := New("test", 20, 15)
	x, y := lvl.TileAt(-1, 49.9)
	assert.Equal(t, -1, x)
	assert.Equal(t, 0, y)
	x, y = lvl.TileAt(50, 100)
	assert.Equal(t, 1, x)
	assert.Equal(t, 2, y)
}

func TestSpawnerMarkersRowMajor(t *testing.T) {
	lvl := New("test", 20, 15)
	lvl.SetTile(5, 2, SpawnerWave)
	lvl.SetTile(1, 2, SpawnerCircle)
	lvl.SetTile(0, 7, SpawnerTargeting)
	lvl.SetTile(3, 0, SpawnerBurst)

	markers := lvl.SpawnerMarkers()
	require.Len(t, markers, 4)
	assert.Equal(t, Marker{X: 3, Y: 0, Pattern: config.PatternBurst}, markers[0])
	assert.Equal(t, Marker{X: 1, Y: 2, Pattern: config.PatternCircle}, markers[1])
	assert.Equal(t, Marker{X: 5, Y: 2, Pattern: config.PatternWave}, markers[2])
	assert.Equal(t, Marker{X: 0, Y: 7, Pattern: config.PatternTargeting}, markers[3])

	for _, m := range markers {
		assert.False(t, lvl.IsSolid(m.X, m.Y))
	}
}

func TestMarkerFor(t *testing.T) {
	for id := config.PatternID(0); id < config.PatternCount; id++ {
		tile, ok := MarkerFor(id)
		require.True(t, ok)
		p, ok := tile.Pattern()
		require.True(t, ok)
		assert.Equal(t, id, p)
	}
}
