package components

import (
	"github.com/automoto/parrybound/level"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level *level.Level
	Index int // Position in the level catalog, -1 when loaded directly
}

var Level = donburi.NewComponentType[LevelData]()
