package level

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/parrybound/config"
	"github.com/lafriks/go-tiled"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	ErrNoLevels   = errors.New("no levels found")
	ErrLevelIndex = errors.New("level index out of range")
	ErrLevelSize  = errors.New("level size out of bounds")
)

const (
	foregroundLayer = "foreground"
	backgroundLayer = "background"
	spawnGroup      = "Spawn"
)

// LoadTMX parses a Tiled map into a Level. It takes an fs.FS so callers can
// pass the embedded assets or os.DirFS for levels on disk.
//
// Tile codes are the local tile id plus one, so the tileset must list tiles
// in code order. The foreground layer may carry a "title" property. The
// first object in the "Spawn" group sets the player spawn.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	if levelMap.Width < config.Level.MinWidth || levelMap.Width > config.Level.MaxWidth ||
		levelMap.Height < config.Level.MinHeight || levelMap.Height > config.Level.MaxHeight {
		return nil, fmt.Errorf("%s: %w: %dx%d", tmxPath, ErrLevelSize, levelMap.Width, levelMap.Height)
	}

	name := strings.TrimSuffix(path.Base(tmxPath), ".tmx")
	lvl := New(name, levelMap.Width, levelMap.Height)
	lvl.Title = name

	for _, layer := range levelMap.Layers {
		var set func(x, y int, t Tile)
		switch layer.Name {
		case foregroundLayer:
			set = lvl.SetTile
			if title := layer.Properties.GetString("title"); title != "" {
				lvl.Title = title
			}
		case backgroundLayer:
			set = lvl.SetBackground
		default:
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				set(x, y, Tile(tile.ID+1))
			}
		}
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != spawnGroup || len(og.Objects) == 0 {
			continue
		}
		o := og.Objects[0]
		lvl.Spawn = dmath.NewVec2(o.X, o.Y)
		break
	}

	return lvl, nil
}

// LoadAll loads every .tmx file in dir, ordered by file name.
func LoadAll(fsys fs.FS, dir string) ([]*Level, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoLevels)
	}
	sort.Strings(matches)
	if len(matches) > config.Level.MaxLevels {
		matches = matches[:config.Level.MaxLevels]
	}

	levels := make([]*Level, 0, len(matches))
	for _, p := range matches {
		lvl, err := LoadTMX(fsys, p)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}
