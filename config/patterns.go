package config

import (
	"errors"
	"fmt"
	"image/color"
)

// PatternID identifies a spawner firing pattern
type PatternID int

const (
	PatternCircle PatternID = iota
	PatternSpiral
	PatternWave
	PatternBurst
	PatternTargeting
	PatternCount // Must be last - used for array sizing
)

var patternNames = [PatternCount]string{
	PatternCircle:    "circle",
	PatternSpiral:    "spiral",
	PatternWave:      "wave",
	PatternBurst:     "burst",
	PatternTargeting: "targeting",
}

func (p PatternID) String() string {
	if p < 0 || p >= PatternCount {
		return fmt.Sprintf("pattern(%d)", int(p))
	}
	return patternNames[p]
}

// ParsePattern maps a pattern name back to its id
func ParsePattern(name string) (PatternID, bool) {
	for id, n := range patternNames {
		if n == name {
			return PatternID(id), true
		}
	}
	return 0, false
}

// ErrInvalidPattern is returned when a pattern configuration cannot fire a volley.
var ErrInvalidPattern = errors.New("invalid pattern config")

// PatternConfig is the per-pattern tuning of a spawner volley.
// Angles are in degrees, RotationSpeed in degrees per second.
type PatternConfig struct {
	Cooldown       float64    `yaml:"cooldown"`
	BulletCount    int        `yaml:"bulletCount"`
	BulletSpeed    float64    `yaml:"bulletSpeed"`
	SpreadAngle    float64    `yaml:"spreadAngle"`
	RotationSpeed  float64    `yaml:"rotationSpeed"`
	RandomizeSpeed bool       `yaml:"randomizeSpeed"`
	SpeedVariation float64    `yaml:"speedVariation"`
	BulletSize     float64    `yaml:"bulletSize"`
	Color          color.RGBA `yaml:"-"`
}

// Validate rejects configurations the pattern generators cannot divide over.
func (pc PatternConfig) Validate(id PatternID) error {
	if id < 0 || id >= PatternCount {
		return fmt.Errorf("%w: unknown pattern %d", ErrInvalidPattern, int(id))
	}
	minCount := 1
	if id == PatternWave || id == PatternTargeting {
		minCount = 2
	}
	if pc.BulletCount < minCount {
		return fmt.Errorf("%w: %s needs at least %d bullets, got %d", ErrInvalidPattern, id, minCount, pc.BulletCount)
	}
	if pc.Cooldown <= 0 {
		return fmt.Errorf("%w: %s cooldown must be positive", ErrInvalidPattern, id)
	}
	if pc.BulletSize <= 0 {
		return fmt.Errorf("%w: %s bullet size must be positive", ErrInvalidPattern, id)
	}
	if pc.RandomizeSpeed && pc.SpeedVariation < 1 {
		return fmt.Errorf("%w: %s randomized speed needs a variation of at least 1", ErrInvalidPattern, id)
	}
	return nil
}

// Patterns holds the default tuning for every pattern
var Patterns [PatternCount]PatternConfig

func init() {
	Patterns = [PatternCount]PatternConfig{
		PatternCircle: {
			Cooldown:    2.0,
			BulletCount: 5,
			BulletSpeed: 150,
			SpreadAngle: 360,
			BulletSize:  4,
			Color:       Red,
		},
		PatternSpiral: {
			Cooldown:      1.0,
			BulletCount:   4,
			BulletSpeed:   120,
			RotationSpeed: 180,
			BulletSize:    4,
			Color:         Purple,
		},
		PatternWave: {
			Cooldown:      0.5,
			BulletCount:   4,
			BulletSpeed:   100,
			SpreadAngle:   60,
			RotationSpeed: 90,
			BulletSize:    6,
			Color:         Blue,
		},
		PatternBurst: {
			Cooldown:       0.5,
			BulletCount:    12,
			BulletSpeed:    180,
			SpreadAngle:    360,
			RandomizeSpeed: true,
			SpeedVariation: 40,
			BulletSize:     7,
			Color:          Orange,
		},
		PatternTargeting: {
			Cooldown:    1.2,
			BulletCount: 9,
			BulletSpeed: 140,
			SpreadAngle: 45,
			BulletSize:  5,
			Color:       Yellow,
		},
	}
}
