package level

import "github.com/automoto/parrybound/config"

// Tile is a tile code as stored in a level layer
type Tile int

const (
	Empty Tile = iota
	Grass
	Dirt
	Stone
	Goal
	Damage
	JumpBoost
	Spike
	Checkpoint
	SpawnerCircle
	SpawnerSpiral
	SpawnerWave
	SpawnerBurst
	SpawnerTargeting
	tileCount
)

// BackgroundStart is the first decorative tile code. Background tiles never collide.
const BackgroundStart Tile = 20

var tileNames = [tileCount]string{
	Empty:            "empty",
	Grass:            "grass",
	Dirt:             "dirt",
	Stone:            "stone",
	Goal:             "goal",
	Damage:           "damage",
	JumpBoost:        "jumpboost",
	Spike:            "spike",
	Checkpoint:       "checkpoint",
	SpawnerCircle:    "spawner-circle",
	SpawnerSpiral:    "spawner-spiral",
	SpawnerWave:      "spawner-wave",
	SpawnerBurst:     "spawner-burst",
	SpawnerTargeting: "spawner-targeting",
}

func (t Tile) String() string {
	if t >= 0 && t < tileCount {
		return tileNames[t]
	}
	if t >= BackgroundStart {
		return "background"
	}
	return "unknown"
}

// Effect describes what standing on a tile does to the player
type Effect struct {
	Damage     int
	Deadly     bool // Sends the player back to the last checkpoint
	JumpBoost  float64
	Checkpoint bool
}

func (e Effect) HasDamage() bool    { return e.Damage > 0 }
func (e Effect) HasJumpBoost() bool { return e.JumpBoost > 0 }

var solid = map[Tile]bool{
	Grass:      true,
	Dirt:       true,
	Stone:      true,
	JumpBoost:  true,
	Damage:     true,
	Spike:      true,
	Checkpoint: true,
}

var spawnerPatterns = map[Tile]config.PatternID{
	SpawnerCircle:    config.PatternCircle,
	SpawnerSpiral:    config.PatternSpiral,
	SpawnerWave:      config.PatternWave,
	SpawnerBurst:     config.PatternBurst,
	SpawnerTargeting: config.PatternTargeting,
}

// EffectOf returns the effect of a tile code. Tiles without an effect return the zero Effect.
// Damage and boost amounts come from config.World.
func EffectOf(t Tile) Effect {
	switch t {
	case Damage:
		return Effect{Damage: config.World.DamageTileDamage}
	case Spike:
		return Effect{Damage: config.World.SpikeDamage, Deadly: true}
	case JumpBoost:
		return Effect{JumpBoost: config.World.JumpBoostMult}
	case Checkpoint:
		return Effect{Checkpoint: true}
	}
	return Effect{}
}

// Solid reports whether a tile code blocks movement
func (t Tile) Solid() bool {
	return solid[t]
}

// Pattern returns the firing pattern for a spawner marker tile
func (t Tile) Pattern() (config.PatternID, bool) {
	p, ok := spawnerPatterns[t]
	return p, ok
}

// MarkerFor returns the marker tile that places a spawner with the given pattern
func MarkerFor(p config.PatternID) (Tile, bool) {
	for t, id := range spawnerPatterns {
		if id == p {
			return t, true
		}
	}
	return Empty, false
}
