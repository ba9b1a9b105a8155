// Package level holds the tile grid a platformer level is played on.
// It is pure data: no rendering, no ECS.
package level

import (
	"math"

	"github.com/automoto/parrybound/config"
	dmath "github.com/yohamta/donburi/features/math"
)

// Level is a two-layer tile grid. The foreground layer collides, the
// background layer is decoration only. Gameplay treats it as immutable.
type Level struct {
	Name    string
	Title   string
	Width   int
	Height  int
	Spawn   dmath.Vec2
	Goal    dmath.Vec2
	HasGoal bool

	foreground []Tile
	background []Tile
}

// Marker is a spawner marker tile found in the foreground layer
type Marker struct {
	X, Y    int
	Pattern config.PatternID
}

// New creates an empty level, clamping the size to the configured bounds.
func New(name string, width, height int) *Level {
	width = clampInt(width, config.Level.MinWidth, config.Level.MaxWidth)
	height = clampInt(height, config.Level.MinHeight, config.Level.MaxHeight)
	return &Level{
		Name:       name,
		Width:      width,
		Height:     height,
		Spawn:      dmath.NewVec2(config.Level.SpawnX, config.Level.SpawnY),
		foreground: make([]Tile, width*height),
		background: make([]Tile, width*height),
	}
}

func (l *Level) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < l.Width && y < l.Height
}

// Tile returns the foreground tile at (x, y), Empty outside the grid.
func (l *Level) Tile(x, y int) Tile {
	if !l.inBounds(x, y) {
		return Empty
	}
	return l.foreground[y*l.Width+x]
}

// Background returns the background tile at (x, y), Empty outside the grid.
func (l *Level) Background(x, y int) Tile {
	if !l.inBounds(x, y) {
		return Empty
	}
	return l.background[y*l.Width+x]
}

// SetTile writes a foreground tile. Placing a Goal records the goal position.
func (l *Level) SetTile(x, y int, t Tile) {
	if !l.inBounds(x, y) {
		return
	}
	l.foreground[y*l.Width+x] = t
	if t == Goal {
		ts := config.Level.TileSize
		l.Goal = dmath.NewVec2(float64(x)*ts, float64(y)*ts)
		l.HasGoal = true
	}
}

func (l *Level) SetBackground(x, y int, t Tile) {
	if !l.inBounds(x, y) {
		return
	}
	l.background[y*l.Width+x] = t
}

// IsSolid reports whether (x, y) blocks movement. Everything outside the grid is solid.
func (l *Level) IsSolid(x, y int) bool {
	if !l.inBounds(x, y) {
		return true
	}
	return l.foreground[y*l.Width+x].Solid()
}

func (l *Level) EffectAt(x, y int) Effect {
	return EffectOf(l.Tile(x, y))
}

// TileAt converts a pixel position into tile coordinates
func (l *Level) TileAt(px, py float64) (int, int) {
	ts := config.Level.TileSize
	return int(math.Floor(px / ts)), int(math.Floor(py / ts))
}

func (l *Level) PixelWidth() float64 {
	return float64(l.Width) * config.Level.TileSize
}

func (l *Level) PixelHeight() float64 {
	return float64(l.Height) * config.Level.TileSize
}

// SpawnerMarkers lists the spawner marker tiles in row-major order.
func (l *Level) SpawnerMarkers() []Marker {
	var markers []Marker
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			if p, ok := l.foreground[y*l.Width+x].Pattern(); ok {
				markers = append(markers, Marker{X: x, Y: y, Pattern: p})
			}
		}
	}
	return markers
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
