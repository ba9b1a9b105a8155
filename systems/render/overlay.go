package render

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/parrybound/config"
	"github.com/automoto/parrybound/fonts"
	"github.com/automoto/parrybound/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face based drawing matches the fonts package
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Banner fades an overlay in when the session changes state.
type Banner struct {
	state game.State
	tween *gween.Tween
	value float32
}

func NewBanner() *Banner {
	return &Banner{state: game.StatePlaying, value: 1}
}

// Update restarts the fade whenever the state changes and advances it by dt seconds.
func (b *Banner) Update(state game.State, dt float64) {
	if state != b.state {
		b.state = state
		b.tween = gween.New(0, 1, 0.35, ease.OutQuad)
		b.value = 0
	}
	if b.tween == nil {
		return
	}
	v, done := b.tween.Update(float32(dt))
	b.value = v
	if done {
		b.tween = nil
	}
}

// Alpha is the overlay opacity, 0 to 1.
func (b *Banner) Alpha() float64 {
	return float64(b.value)
}

// OverlayText is the title and detail lines shown over the level for a session state.
// Playing has no overlay.
func OverlayText(s *game.Session) (string, []string) {
	p := s.Progress()
	switch s.State() {
	case game.StatePaused:
		return "PAUSED", []string{"Pause to resume", "Restart (R) to retry the level", "Back to leave the level"}
	case game.StateDead:
		remaining := max(0, cfg.World.RespawnDelay-s.StateTime())
		return "YOU DIED", []string{
			fmt.Sprintf("Deaths this level: %d", p.LevelDeaths[p.CurrentLevel]),
			fmt.Sprintf("Respawning in %.1f  (Jump to skip)", remaining),
		}
	case game.StateLevelComplete:
		return "LEVEL COMPLETE", []string{
			fmt.Sprintf("Score %d", p.CurrentLevelScore),
			fmt.Sprintf("Deaths %d", p.LevelDeaths[p.CurrentLevel]),
			fmt.Sprintf("Time %s", formatClock(s.LevelTime())),
		}
	case game.StateGameComplete:
		return "YOU WIN", []string{
			fmt.Sprintf("Total score %d", p.TotalScore),
			fmt.Sprintf("Total deaths %d", p.DeathCount),
			"Press Jump to return to the menu",
		}
	}
	return "", nil
}

// DrawOverlay dims the screen and draws the current state's banner.
func DrawOverlay(screen *ebiten.Image, s *game.Session, alpha float64) {
	title, lines := OverlayText(s)
	if title == "" {
		return
	}
	alpha = clamp01(alpha)

	bounds := screen.Bounds()
	width, height := float32(bounds.Dx()), float32(bounds.Dy())
	dim := cfg.BlackOverlay
	dim.A = uint8(float64(dim.A) * alpha)
	vector.DrawFilledRect(screen, 0, 0, width, height, dim, false)

	fade := func(c color.RGBA) color.RGBA {
		c.A = uint8(float64(c.A) * alpha)
		return c
	}

	titleFace := fonts.Title.Get()
	tw := text.BoundString(titleFace, title).Dx()
	y := int(height/2) - 40
	text.Draw(screen, title, titleFace, (bounds.Dx()-tw)/2, y, fade(cfg.White))

	face := fonts.Regular.Get()
	y += 40
	for _, line := range lines {
		lw := text.BoundString(face, line).Dx()
		text.Draw(screen, line, face, (bounds.Dx()-lw)/2, y, fade(hudText))
		y += 24
	}
}
