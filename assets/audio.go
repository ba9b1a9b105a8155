package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	cfg "github.com/automoto/parrybound/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed all:audio
var audioFS embed.FS

type decodeFunc func(sampleRate int, r io.Reader) (io.Reader, error)

var decoders = map[string]decodeFunc{
	".wav": func(rate int, r io.Reader) (io.Reader, error) {
		return wav.DecodeWithSampleRate(rate, r)
	},
	".ogg": func(rate int, r io.Reader) (io.Reader, error) {
		return vorbis.DecodeWithSampleRate(rate, r)
	},
}

// SoundBank decodes the bundled sound effects once and hands out
// fresh players for each playback.
type SoundBank struct {
	context *audio.Context
	pcm     map[cfg.SoundID][]byte
}

func NewSoundBank(ctx *audio.Context) *SoundBank {
	return &SoundBank{
		context: ctx,
		pcm:     make(map[cfg.SoundID][]byte),
	}
}

// Preload decodes every sound in cfg.Sound.SFXPaths. Sounds that fail are
// skipped and reported together.
func (b *SoundBank) Preload() error {
	var failed []string
	for id := range cfg.Sound.SFXPaths {
		if _, err := b.pcmFor(id); err != nil {
			failed = append(failed, err.Error())
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("preload sounds: %s", strings.Join(failed, "; "))
	}
	return nil
}

// Player returns a new player positioned at the start of the sound.
func (b *SoundBank) Player(id cfg.SoundID) (*audio.Player, error) {
	data, err := b.pcmFor(id)
	if err != nil {
		return nil, err
	}
	return b.context.NewPlayer(bytes.NewReader(data))
}

func (b *SoundBank) pcmFor(id cfg.SoundID) ([]byte, error) {
	if data, ok := b.pcm[id]; ok {
		return data, nil
	}
	path, ok := cfg.Sound.SFXPaths[id]
	if !ok {
		return nil, fmt.Errorf("sound %d has no file", id)
	}
	data, err := decodeSound(b.context.SampleRate(), path)
	if err != nil {
		return nil, err
	}
	b.pcm[id] = data
	return data, nil
}

func decodeSound(sampleRate int, path string) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%s: unsupported audio format %q", path, ext)
	}
	raw, err := audioFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	stream, err := decode(sampleRate, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return pcm, nil
}
