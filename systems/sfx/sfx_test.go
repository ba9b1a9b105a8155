package sfx

import (
	"testing"

	cfg "github.com/automoto/parrybound/config"
	"github.com/stretchr/testify/assert"
)

func TestVolume(t *testing.T) {
	p := &Player{volume: 0.5}
	assert.Equal(t, 0.5, p.Volume(cfg.SoundJump))
	assert.InDelta(t, 0.5*cfg.Sound.VolumeMultipliers[cfg.SoundCollect], p.Volume(cfg.SoundCollect), 1e-9)

	p.SetVolume(1)
	assert.Equal(t, 1.0, p.Volume(cfg.SoundParry), "multipliers never push past full volume")

	p.SetMuted(true)
	assert.Zero(t, p.Volume(cfg.SoundJump))
}

func TestSetVolumeClamps(t *testing.T) {
	p := &Player{}
	p.SetVolume(-2)
	assert.Zero(t, p.BaseVolume())
	p.SetVolume(3)
	assert.Equal(t, 1.0, p.BaseVolume())
}
