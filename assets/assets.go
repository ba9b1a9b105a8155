package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/parrybound/level"
)

const levelsDir = "levels"

var (
	//go:embed all:levels
	levelFS embed.FS
)

// LevelFS exposes the bundled levels for loaders that take an fs.FS.
func LevelFS() fs.FS {
	return levelFS
}

// LoadLevels loads every bundled level in file name order.
func LoadLevels() ([]*level.Level, error) {
	return level.LoadAll(levelFS, levelsDir)
}

// MustLoadLevels is LoadLevels for startup code that cannot run without levels.
func MustLoadLevels() []*level.Level {
	levels, err := LoadLevels()
	if err != nil {
		panic(fmt.Sprintf("Failed to load bundled levels: %v", err))
	}
	return levels
}
