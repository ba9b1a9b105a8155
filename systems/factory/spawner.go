package factory

import (
	"github.com/automoto/parrybound/archetypes"
	"github.com/automoto/parrybound/components"
	cfg "github.com/automoto/parrybound/config"
	"github.com/automoto/parrybound/level"
	"github.com/automoto/parrybound/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateSpawner places a spawner on the tile at (tx, ty). The pattern config
// is copied so later tuning reloads do not change a spawner mid-level.
func CreateSpawner(w donburi.World, index int, pattern cfg.PatternID, tx, ty int) *donburi.Entry {
	spawner := archetypes.Spawner.Spawn(w)

	ts := cfg.Level.TileSize
	data := components.SpawnerData{
		Index:    index,
		Pattern:  pattern,
		Config:   cfg.Patterns[pattern],
		Position: math.NewVec2(float64(tx)*ts, float64(ty)*ts),
	}
	data.Reset()
	components.Spawner.SetValue(spawner, data)

	hb := data.Hitbox()
	obj := resolv.NewObject(hb.X, hb.Y, hb.W, hb.H, tags.ResolvSpawner)
	obj.SetShape(resolv.NewRectangle(0, 0, hb.W, hb.H))
	obj.Data = spawner
	components.Object.SetValue(spawner, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	return spawner
}

// CreateSpawners places one spawner per marker tile in row-major order,
// stopping at the configured maximum.
func CreateSpawners(w donburi.World, lvl *level.Level) int {
	markers := lvl.SpawnerMarkers()
	if len(markers) > cfg.Spawner.MaxSpawners {
		markers = markers[:cfg.Spawner.MaxSpawners]
	}
	for i, m := range markers {
		CreateSpawner(w, i, m.Pattern, m.X, m.Y)
	}
	return len(markers)
}
