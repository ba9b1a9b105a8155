package factory

import (
	"github.com/automoto/parrybound/archetypes"
	"github.com/automoto/parrybound/components"
	"github.com/automoto/parrybound/level"
	"github.com/yohamta/donburi"
)

// CreateLevel stores the level being played. index is its position in the
// catalog, or -1 for a level loaded directly.
func CreateLevel(w donburi.World, lvl *level.Level, index int) *donburi.Entry {
	entry := archetypes.Level.Spawn(w)
	components.Level.SetValue(entry, components.LevelData{
		Level: lvl,
		Index: index,
	})
	return entry
}
