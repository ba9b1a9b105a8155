package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// PatternTable names each pattern so partial YAML overrides merge into the defaults.
type PatternTable struct {
	Circle    PatternConfig `yaml:"circle"`
	Spiral    PatternConfig `yaml:"spiral"`
	Wave      PatternConfig `yaml:"wave"`
	Burst     PatternConfig `yaml:"burst"`
	Targeting PatternConfig `yaml:"targeting"`
}

func (t *PatternTable) byID() [PatternCount]*PatternConfig {
	return [PatternCount]*PatternConfig{
		PatternCircle:    &t.Circle,
		PatternSpiral:    &t.Spiral,
		PatternWave:      &t.Wave,
		PatternBurst:     &t.Burst,
		PatternTargeting: &t.Targeting,
	}
}

// Tuning is the overridable subset of the global configuration.
// Keys are the lowercased field names of the config structs.
type Tuning struct {
	Player      PlayerConfig      `yaml:"player"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Spawner     SpawnerConfig     `yaml:"spawner"`
	Bullet      BulletConfig      `yaml:"bullet"`
	Collectible CollectibleConfig `yaml:"collectible"`
	ParryEffect ParryEffectConfig `yaml:"parryeffect"`
	World       WorldConfig       `yaml:"world"`
	Camera      CameraConfig      `yaml:"camera"`
	Patterns    PatternTable      `yaml:"patterns"`
}

// CurrentTuning snapshots the live configuration.
func CurrentTuning() Tuning {
	t := Tuning{
		Player:      Player,
		Physics:     Physics,
		Spawner:     Spawner,
		Bullet:      Bullet,
		Collectible: Collectible,
		ParryEffect: ParryEffect,
		World:       World,
		Camera:      Camera,
	}
	for id, pc := range t.Patterns.byID() {
		*pc = Patterns[id]
	}
	return t
}

// Validate checks the values the simulation divides by or clamps against.
func (t *Tuning) Validate() error {
	var errs []error
	for id, pc := range t.Patterns.byID() {
		if err := pc.Validate(PatternID(id)); err != nil {
			errs = append(errs, err)
		}
	}
	if t.Player.MaxHealth < 1 {
		errs = append(errs, fmt.Errorf("player maxhealth must be at least 1, got %d", t.Player.MaxHealth))
	}
	if t.Player.Size <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive"))
	}
	if t.Camera.FollowSmoothing < 0 || t.Camera.FollowSmoothing >= 1 {
		errs = append(errs, fmt.Errorf("camera followsmoothing must be in [0,1), got %v", t.Camera.FollowSmoothing))
	}
	if t.Spawner.MaxSpawners < 0 {
		errs = append(errs, fmt.Errorf("spawner maxspawners must not be negative"))
	}
	if t.World.SpikeDamage < 0 || t.World.DamageTileDamage < 0 {
		errs = append(errs, fmt.Errorf("world tile damage must not be negative"))
	}
	if t.World.JumpBoostMult < 0 {
		errs = append(errs, fmt.Errorf("world jumpboostmult must not be negative"))
	}
	if t.Collectible.PointsPerHeal < 1 {
		errs = append(errs, fmt.Errorf("collectible pointsperheal must be at least 1"))
	}
	return errors.Join(errs...)
}

// Apply writes the tuning into the global configuration.
func (t *Tuning) Apply() {
	Player = t.Player
	Physics = t.Physics
	Spawner = t.Spawner
	Bullet = t.Bullet
	Collectible = t.Collectible
	ParryEffect = t.ParryEffect
	World = t.World
	Camera = t.Camera
	for id, pc := range t.Patterns.byID() {
		// Colors are not part of the YAML surface
		c := Patterns[id].Color
		Patterns[id] = *pc
		Patterns[id].Color = c
	}
}

// ParseTuning decodes YAML on top of the live configuration and validates the result.
func ParseTuning(data []byte) (Tuning, error) {
	return parseTuningOnto(CurrentTuning(), data)
}

func parseTuningOnto(t Tuning, data []byte) (Tuning, error) {
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}

// LoadTuning loads tuning overrides.
// Search order: customPath -> ~/.parrybound/tuning.yaml -> ./configs/tuning.yaml -> built-in defaults.
// The returned string names the file used, empty for defaults.
func LoadTuning(customPath string) (Tuning, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CurrentTuning(), "", fmt.Errorf("failed to read tuning %s: %w", customPath, err)
		}
		t, err := ParseTuning(data)
		if err != nil {
			return CurrentTuning(), "", fmt.Errorf("%s: %w", customPath, err)
		}
		return t, customPath, nil
	}

	candidates := []string{"configs/tuning.yaml"}
	if userPath := userConfigPath("tuning.yaml"); userPath != "" {
		candidates = append([]string{userPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		t, err := ParseTuning(data)
		if err != nil {
			return CurrentTuning(), "", fmt.Errorf("%s: %w", path, err)
		}
		return t, path, nil
	}

	return CurrentTuning(), "", nil
}

func userConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".parrybound", name)
}
