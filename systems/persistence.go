package systems

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const (
	progressKey = "progress"
	settingsKey = "settings"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume       float64 `json:"sfxVolume"`
	Muted           bool    `json:"muted"`
	Fullscreen      bool    `json:"fullscreen"`
	ResolutionIndex int     `json:"resolutionIndex"`
}

// SavedGameProgress is the run state carried between sessions
type SavedGameProgress struct {
	CurrentLevel      int          `json:"currentLevel"`
	DeathCount        int          `json:"deathCount"`
	Health            int          `json:"health"`
	LevelDeaths       map[int]int  `json:"levelDeaths"`
	LevelCompleted    map[int]bool `json:"levelCompleted"`
	LevelsCompleted   int          `json:"levelsCompleted"`
	TotalScore        int          `json:"totalScore"`
	HealthPoints      int          `json:"healthPoints"`
	CanSpellCard      bool         `json:"canSpellCard"`
	CurrentLevelScore int          `json:"-"`
}

// NewGameProgress returns empty progress starting at the first level
func NewGameProgress() *SavedGameProgress {
	return &SavedGameProgress{
		LevelDeaths:    make(map[int]int),
		LevelCompleted: make(map[int]bool),
	}
}

// EncodeProgress serializes progress for storage
func EncodeProgress(p *SavedGameProgress) ([]byte, error) {
	if p == nil {
		return nil, errors.New("nil progress")
	}
	return json.Marshal(p)
}

// DecodeProgress parses stored progress. Empty data means no save exists
// and yields nil without an error.
func DecodeProgress(data []byte) (*SavedGameProgress, error) {
	if len(data) == 0 {
		return nil, nil
	}
	p := NewGameProgress()
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse saved progress: %w", err)
	}
	if p.LevelDeaths == nil {
		p.LevelDeaths = make(map[int]int)
	}
	if p.LevelCompleted == nil {
		p.LevelCompleted = make(map[int]bool)
	}
	if p.CurrentLevel < 0 {
		p.CurrentLevel = 0
	}
	return p, nil
}

// Persistence stores progress and settings through gdata
type Persistence struct {
	manager *gdata.Manager
}

// InitPersistence initializes the gdata manager for save data
func InitPersistence(appName string) (*Persistence, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Warn("Could not initialize persistence", "err", err)
		return nil, err
	}
	return &Persistence{manager: m}, nil
}

// LoadSettings loads settings from disk. A missing file yields nil settings.
func (ps *Persistence) LoadSettings() (*SavedSettings, error) {
	if ps == nil || ps.manager == nil {
		return nil, nil
	}

	data, err := ps.manager.LoadItem(settingsKey)
	if err != nil {
		log.Warn("Could not load settings", "err", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Warn("Could not parse saved settings", "err", err)
		return nil, err
	}
	return &settings, nil
}

func (ps *Persistence) SaveSettings(s *SavedSettings) error {
	if ps == nil || ps.manager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Warn("Could not serialize settings", "err", err)
		return err
	}
	if err := ps.manager.SaveItem(settingsKey, data); err != nil {
		log.Warn("Could not save settings", "err", err)
		return err
	}
	return nil
}

func (ps *Persistence) LoadProgress() (*SavedGameProgress, error) {
	if ps == nil || ps.manager == nil {
		return nil, nil
	}

	data, err := ps.manager.LoadItem(progressKey)
	if err != nil {
		log.Warn("Could not load game progress", "err", err)
		return nil, nil
	}
	p, err := DecodeProgress(data)
	if err != nil {
		log.Warn("Could not parse saved progress", "err", err)
		return nil, err
	}
	return p, nil
}

func (ps *Persistence) SaveProgress(p *SavedGameProgress) error {
	if ps == nil || ps.manager == nil {
		return nil
	}

	data, err := EncodeProgress(p)
	if err != nil {
		log.Warn("Could not serialize game progress", "err", err)
		return err
	}
	if err := ps.manager.SaveItem(progressKey, data); err != nil {
		log.Warn("Could not save game progress", "err", err)
		return err
	}
	return nil
}

// HasProgress returns true if a saved game progress exists
func (ps *Persistence) HasProgress() bool {
	if ps == nil || ps.manager == nil {
		return false
	}
	data, err := ps.manager.LoadItem(progressKey)
	return err == nil && len(data) > 0
}

// ClearProgress removes any saved game progress
func (ps *Persistence) ClearProgress() error {
	if ps == nil || ps.manager == nil {
		return nil
	}
	// Save empty data to clear the progress
	if err := ps.manager.SaveItem(progressKey, nil); err != nil {
		log.Warn("Could not clear game progress", "err", err)
		return err
	}
	return nil
}
