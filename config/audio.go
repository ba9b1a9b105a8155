package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Movement sounds
	SoundJump
	SoundDash
	// Combat sounds
	SoundHurt
	SoundParry
	SoundSpawnerDestroyed
	// Pickups
	SoundCollect
	// Progression
	SoundLevelComplete
	SoundDeath
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.8,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundJump:             "audio/sfx/jump.wav",
			SoundDash:             "audio/sfx/dash.wav",
			SoundHurt:             "audio/sfx/hurt.wav",
			SoundParry:            "audio/sfx/parry.wav",
			SoundSpawnerDestroyed: "audio/sfx/spawner_destroyed.wav",
			SoundCollect:          "audio/sfx/collect.wav",
			SoundLevelComplete:    "audio/sfx/level_complete.wav",
			SoundDeath:            "audio/sfx/death.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundCollect: 0.6,
			SoundParry:   1.2,
		},
	}
}
