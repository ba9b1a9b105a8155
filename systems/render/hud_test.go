package render

import (
	"testing"
	"time"

	"github.com/automoto/parrybound/components"
	cfg "github.com/automoto/parrybound/config"
	"github.com/automoto/parrybound/game"
	"github.com/automoto/parrybound/level"
	"github.com/automoto/parrybound/systems"
	"github.com/automoto/parrybound/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestHUDLines(t *testing.T) {
	p := &components.PlayerData{}
	p.Reset(dmath.Vec2{})
	p.Health = 2
	p.DashCooldown = 0.45

	progress := systems.NewGameProgress()
	progress.CurrentLevel = 1
	progress.CurrentLevelScore = 30
	progress.TotalScore = 120
	progress.HealthPoints = 4
	progress.LevelDeaths[1] = 3

	lines := HUDLines(p, progress, 75*time.Second+250*time.Millisecond)
	assert.Equal(t, []string{
		"Health 2/3",
		"Score 30 (total 120)",
		"Health points 4/10",
		"Deaths 3",
		"Time 1:15.3",
		"Dash 0.5s",
		"Float ready",
	}, lines)

	p.CanSpellCard = true
	lines = HUDLines(p, progress, 0)
	assert.Equal(t, "Spell card ready", lines[len(lines)-1])
}

func TestPlayerColorBlinksWhileInvulnerable(t *testing.T) {
	p := &components.PlayerData{}
	p.Reset(dmath.Vec2{})

	c, visible := PlayerColor(p)
	require.True(t, visible)
	assert.Equal(t, cfg.LightBlue, c)

	p.InvulnTimer = 0.06 // int(0.06*20) = 1
	_, visible = PlayerColor(p)
	assert.False(t, visible)

	p.InvulnTimer = 0.12 // int(0.12*20) = 2
	_, visible = PlayerColor(p)
	assert.True(t, visible)
}

func TestTileColor(t *testing.T) {
	_, ok := TileColor(level.Grass)
	assert.True(t, ok)
	_, ok = TileColor(level.SpawnerWave)
	assert.False(t, ok, "spawners are drawn from their entities")
	_, ok = TileColor(level.Empty)
	assert.False(t, ok)
}

func TestBannerFadesIn(t *testing.T) {
	b := NewBanner()
	assert.Equal(t, 1.0, b.Alpha())

	b.Update(game.StateDead, 0)
	assert.Zero(t, b.Alpha())

	b.Update(game.StateDead, 0.1)
	mid := b.Alpha()
	assert.Greater(t, mid, 0.0)
	assert.Less(t, mid, 1.0)

	b.Update(game.StateDead, 1)
	assert.Equal(t, 1.0, b.Alpha())
}

func TestOverlayText(t *testing.T) {
	lvl := level.New("flat", 20, 15)
	for x := 0; x < lvl.Width; x++ {
		lvl.SetTile(x, 14, level.Grass)
	}
	lvl.Spawn = dmath.NewVec2(160, 675)
	s := game.NewSession(world.New(world.WithLevels([]*level.Level{lvl})))
	require.NoError(t, s.Start(0))

	title, _ := OverlayText(s)
	assert.Empty(t, title, "no overlay while playing")

	s.World().Player().Health = 0
	s.Update(1.0/60, cfg.Actions{})
	title, lines := OverlayText(s)
	assert.Equal(t, "YOU DIED", title)
	assert.Equal(t, "Deaths this level: 1", lines[0])
}
