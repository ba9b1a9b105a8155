// Package sfx plays the game's sound effects through ebiten audio.
package sfx

import (
	"sync"

	"github.com/automoto/parrybound/assets"
	cfg "github.com/automoto/parrybound/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// The audio context can only be created once per process
var (
	globalAudioContext *audio.Context
	audioInitOnce      sync.Once
)

func context() *audio.Context {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
	return globalAudioContext
}

// Player plays sound effects by id. It satisfies world.SoundSink.
type Player struct {
	bank   *assets.SoundBank
	volume float64
	muted  bool
}

func NewPlayer() *Player {
	return &Player{
		bank:   assets.NewSoundBank(context()),
		volume: cfg.Audio.DefaultSFXVol,
	}
}

// Preload decodes every sound effect to avoid lag on first play.
func (p *Player) Preload() {
	if err := p.bank.Preload(); err != nil {
		log.Warn("Could not preload sounds", "err", err)
	}
}

func (p *Player) Play(id cfg.SoundID) {
	volume := p.Volume(id)
	if volume <= 0 {
		return
	}

	if _, ok := cfg.Sound.SFXPaths[id]; !ok {
		return
	}

	player, err := p.bank.Player(id)
	if err != nil {
		log.Debug("Could not play sound", "sound", id, "err", err)
		return
	}
	player.SetVolume(volume)
	player.Play()
}

// Volume is the playback volume for a sound after mute and per-sound multipliers.
func (p *Player) Volume(id cfg.SoundID) float64 {
	if p.muted {
		return 0
	}
	volume := p.volume
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	return min(volume, 1)
}

func (p *Player) SetVolume(v float64) {
	p.volume = max(0, min(v, 1))
}

func (p *Player) SetMuted(muted bool) {
	p.muted = muted
}

func (p *Player) Muted() bool {
	return p.muted
}

func (p *Player) BaseVolume() float64 {
	return p.volume
}
