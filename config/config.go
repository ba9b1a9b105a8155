package config

import "image/color"

// PlayerConfig contains all player-related configuration values.
// Durations are in seconds, speeds in pixels per second.
type PlayerConfig struct {
	// Dimensions
	Size      float64 // Sprite box edge length
	MaxHealth int

	// Movement
	Speed             float64
	JumpSpeed         float64
	VariableJumpCap   float64 // Upward speed kept when jump is released early
	WallJumpSpeedMult float64
	FloatSpeedMult    float64
	SlowdownMult      float64

	// Grace windows
	CoyoteTime   float64
	JumpBuffer   float64
	WallJumpTime float64

	// Abilities
	DashCooldown  float64
	DashDuration  float64
	DashSpeedMult float64
	FloatDuration float64
	FloatCooldown float64
	ClingDuration float64

	// Parry
	ParryWindow   float64
	ParryCooldown float64

	// Damage
	InvulnDuration float64

	// Hitbox fractions of Size
	HitboxWidthScale    float64
	HitboxHeightScale   float64
	DuckHeightScale     float64
	SlowdownHitboxScale float64
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity           float64
	FloatGravityScale float64
	ClingGravityScale float64
	ReducedFallCap    float64 // Max fall speed while floating or sliding off a wall
}

// LevelConfig contains tile grid configuration values
type LevelConfig struct {
	TileSize  float64
	MinWidth  int
	MinHeight int
	MaxWidth  int
	MaxHeight int
	MaxLevels int
	SpawnX    float64 // Default spawn when a level defines none
	SpawnY    float64
}

// SpawnerConfig contains spawner engine configuration values
type SpawnerConfig struct {
	MaxSpawners     int
	InitialHealth   int
	HitboxSize      float64
	SimulationRange float64 // Spawners farther than this from the player are frozen
	BulletReserve   int     // Volleys are skipped once the bullet pool is this close to capacity
}

// BulletConfig contains bullet pool configuration values
type BulletConfig struct {
	ParriedSpeedMult float64
	CullMargin       float64 // Bullets this far outside the level are culled
	ParriedColor     color.RGBA
}

// CollectibleConfig contains collectible configuration values
type CollectibleConfig struct {
	SpawnChance       float64
	HealthPointWeight float64 // Probability a spawned collectible is a health point
	CapacityMargin    int
	Speed             float64
	Drag              float64 // Fraction of velocity lost per second
	Lifetime          float64
	HealthPointSize   float64
	ScoreItemSize     float64
	HealthPointValue  int
	ScoreItemValue    int
	PointsPerHeal     int
}

// ParryEffectConfig contains parry ring configuration values
type ParryEffectConfig struct {
	Duration float64
	Radius   float64
	Growth   float64 // Radius growth per second
}

// WorldConfig contains orchestrator configuration values
type WorldConfig struct {
	OutOfBoundsBottom  float64
	OutOfBoundsTop     float64
	OutOfBoundsSide    float64
	DamageTileCooldown float64
	SpikeDamage        int
	DamageTileDamage   int
	JumpBoostMult      float64 // Jump speed multiplier on jump boost tiles
	RespawnDelay       float64
	LevelCompleteDelay float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // Weight kept from the previous position each frame (0.0-1.0)
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool // Skip menu and go directly to game
	DrawHitboxes bool
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Level LevelConfig
var Spawner SpawnerConfig
var Bullet BulletConfig
var Collectible CollectibleConfig
var ParryEffect ParryEffectConfig
var World WorldConfig
var Camera CameraConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 230, G: 41, B: 55, A: 255}
	Purple       = color.RGBA{R: 200, G: 122, B: 255, A: 255}
	Blue         = color.RGBA{R: 0, G: 121, B: 241, A: 255}
	Orange       = color.RGBA{R: 255, G: 161, B: 0, A: 255}
	Yellow       = color.RGBA{R: 253, G: 249, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 228, B: 48, A: 255}
	Pink         = color.RGBA{R: 255, G: 109, B: 194, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		TPS:    60,
	}

	Player = PlayerConfig{
		Size:      25,
		MaxHealth: 3,

		Speed:             250,
		JumpSpeed:         350,
		VariableJumpCap:   100,
		WallJumpSpeedMult: 1.2,
		FloatSpeedMult:    0.6,
		SlowdownMult:      0.5,

		CoyoteTime:   0.1,
		JumpBuffer:   0.1,
		WallJumpTime: 0.15,

		DashCooldown:  1.0,
		DashDuration:  0.15,
		DashSpeedMult: 3.0,
		FloatDuration: 2.5,
		FloatCooldown: 4.0,
		ClingDuration: 1.0,

		ParryWindow:   0.2,
		ParryCooldown: 0.6,

		InvulnDuration: 1.0,

		HitboxWidthScale:    0.8,
		HitboxHeightScale:   0.85,
		DuckHeightScale:     0.5,
		SlowdownHitboxScale: 0.8,
	}

	Physics = PhysicsConfig{
		Gravity:           1200,
		FloatGravityScale: 0.05,
		ClingGravityScale: 0.2,
		ReducedFallCap:    50,
	}

	Level = LevelConfig{
		TileSize:  50,
		MinWidth:  20,
		MinHeight: 15,
		MaxWidth:  128,
		MaxHeight: 128,
		MaxLevels: 100,
		SpawnX:    100,
		SpawnY:    100,
	}

	Spawner = SpawnerConfig{
		MaxSpawners:     50,
		InitialHealth:   5,
		HitboxSize:      50,
		SimulationRange: 1500,
		BulletReserve:   20,
	}

	Bullet = BulletConfig{
		ParriedSpeedMult: 1.5,
		CullMargin:       100,
		ParriedColor:     White,
	}

	Collectible = CollectibleConfig{
		SpawnChance:       0.3,
		HealthPointWeight: 0.3,
		CapacityMargin:    5,
		Speed:             60,
		Drag:              0.5,
		Lifetime:          8,
		HealthPointSize:   6,
		ScoreItemSize:     5,
		HealthPointValue:  1,
		ScoreItemValue:    10,
		PointsPerHeal:     10,
	}

	ParryEffect = ParryEffectConfig{
		Duration: 0.3,
		Radius:   10,
		Growth:   20,
	}

	World = WorldConfig{
		OutOfBoundsBottom:  200,
		OutOfBoundsTop:     400,
		OutOfBoundsSide:    200,
		DamageTileCooldown: 0.5,
		SpikeDamage:        1,
		DamageTileDamage:   1,
		JumpBoostMult:      1.5,
		RespawnDelay:       2.0,
		LevelCompleteDelay: 3.0,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.15,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu:     false,
		DrawHitboxes: false,
	}
}
