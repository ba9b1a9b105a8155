package scenes

import (
	cfg "github.com/automoto/parrybound/config"
	"github.com/automoto/parrybound/level"
	"github.com/automoto/parrybound/storage"
	"github.com/automoto/parrybound/systems"
	"github.com/automoto/parrybound/systems/sfx"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// Services are created once at startup and shared by every scene.
// Persistence, History and Tuning may be nil.
type Services struct {
	Levels      []*level.Level
	Persistence *systems.Persistence
	History     *storage.Store
	Sound       *sfx.Player
	Tuning      *cfg.TuningWatcher
	Settings    systems.SavedSettings
}

// DefaultSettings are used when nothing was saved
func DefaultSettings() systems.SavedSettings {
	return systems.SavedSettings{
		SFXVolume:       cfg.Audio.DefaultSFXVol,
		ResolutionIndex: cfg.Settings.DefaultResolutionIndex,
	}
}

// ApplySettings pushes settings into the window and the sound player.
func (svc *Services) ApplySettings() {
	s := svc.Settings
	if s.ResolutionIndex < 0 || s.ResolutionIndex >= len(cfg.Settings.Resolutions) {
		s.ResolutionIndex = cfg.Settings.DefaultResolutionIndex
	}
	res := cfg.Settings.Resolutions[s.ResolutionIndex]
	ebiten.SetWindowSize(res.Width, res.Height)
	ebiten.SetFullscreen(s.Fullscreen)
	if svc.Sound != nil {
		svc.Sound.SetVolume(s.SFXVolume)
		svc.Sound.SetMuted(s.Muted)
	}
}

// handleSettingsKeys toggles mute (M), fullscreen (F11) and cycles the window size (F10),
// saving whenever something changed.
func (svc *Services) handleSettingsKeys() {
	changed := false
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		svc.Settings.Muted = !svc.Settings.Muted
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		svc.Settings.Fullscreen = !svc.Settings.Fullscreen
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF10) {
		svc.Settings.ResolutionIndex = (svc.Settings.ResolutionIndex + 1) % len(cfg.Settings.Resolutions)
		changed = true
	}
	if !changed {
		return
	}
	svc.ApplySettings()
	if err := svc.Persistence.SaveSettings(&svc.Settings); err != nil {
		log.Warn("Could not save settings", "err", err)
	}
}

// applyTuning applies the newest tuning file, if one arrived since the last frame.
func (svc *Services) applyTuning() {
	if svc.Tuning == nil {
		return
	}
	select {
	case t := <-svc.Tuning.Updates:
		t.Apply()
		log.Info("Tuning reloaded")
	case err := <-svc.Tuning.Errors:
		log.Warn("Tuning not applied", "err", err)
	default:
	}
}
