package components

import (
	cfg "github.com/automoto/parrybound/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SpawnerData is a stationary emitter placed by a marker tile
type SpawnerData struct {
	Index       int // Placement order, row-major over the level
	Pattern     cfg.PatternID
	Config      cfg.PatternConfig
	Position    math.Vec2 // Top-left of the marker tile
	Timer       float64
	AngleOffset float64 // Degrees
	Active      bool
	Health      int
}

var Spawner = donburi.NewComponentType[SpawnerData]()

// Center is where volleys and drops originate
func (s *SpawnerData) Center() math.Vec2 {
	half := cfg.Level.TileSize / 2
	return math.NewVec2(s.Position.X+half, s.Position.Y+half)
}

// Hitbox is the area parried bullets must hit, centered on the spawner.
func (s *SpawnerData) Hitbox() Rect {
	size := cfg.Spawner.HitboxSize
	c := s.Center()
	return Rect{X: c.X - size/2, Y: c.Y - size/2, W: size, H: size}
}

// Reset restores a spawner to its freshly placed state
func (s *SpawnerData) Reset() {
	s.Timer = 0
	s.AngleOffset = 0
	s.Health = cfg.Spawner.InitialHealth
	s.Active = true
}
