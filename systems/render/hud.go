package render

import (
	"fmt"
	"image/color"
	"time"

	"github.com/automoto/parrybound/components"
	cfg "github.com/automoto/parrybound/config"
	"github.com/automoto/parrybound/fonts"
	"github.com/automoto/parrybound/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face based drawing matches the fonts package
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 13
	hudMargin    = 10
	hudLineGap   = 18
)

var (
	hudBarBack   = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	hudBarHealth = color.RGBA{R: 40, G: 220, B: 40, A: 255}
	hudText      = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	hudDim       = color.RGBA{R: 140, G: 140, B: 150, A: 255}
)

// HUDLines is the status text shown under the health bar.
func HUDLines(p *components.PlayerData, progress *game.Progress, levelTime time.Duration) []string {
	lines := []string{
		fmt.Sprintf("Health %d/%d", p.Health, p.MaxHealth),
		fmt.Sprintf("Score %d (total %d)", progress.CurrentLevelScore, progress.TotalScore),
		fmt.Sprintf("Health points %d/%d", progress.HealthPoints, cfg.Collectible.PointsPerHeal),
		fmt.Sprintf("Deaths %d", progress.LevelDeaths[progress.CurrentLevel]),
		fmt.Sprintf("Time %s", formatClock(levelTime)),
		cooldownLine("Dash", p.DashCooldown),
		cooldownLine("Float", p.FloatCooldown),
	}
	if p.CanSpellCard {
		lines = append(lines, "Spell card ready")
	}
	return lines
}

func cooldownLine(name string, remaining float64) string {
	if remaining <= 0 {
		return name + " ready"
	}
	return fmt.Sprintf("%s %.1fs", name, remaining)
}

func formatClock(d time.Duration) string {
	d = d.Round(100 * time.Millisecond)
	m := int(d / time.Minute)
	s := (d % time.Minute).Seconds()
	return fmt.Sprintf("%d:%04.1f", m, s)
}

// DrawHUD renders the health bar and status lines in the top-left corner.
func DrawHUD(screen *ebiten.Image, s *game.Session) {
	w := s.World()
	p := w.Player()
	if p == nil {
		return
	}

	vector.DrawFilledRect(screen, hudMargin, hudMargin, hudBarWidth, hudBarHeight, hudBarBack, false)
	ratio := float32(0)
	if p.MaxHealth > 0 {
		ratio = float32(p.Health) / float32(p.MaxHealth)
	}
	vector.DrawFilledRect(screen, hudMargin, hudMargin, hudBarWidth*ratio, hudBarHeight, hudBarHealth, false)

	face := fonts.Small.Get()
	y := hudMargin + hudBarHeight + hudLineGap
	for _, line := range HUDLines(p, s.Progress(), s.LevelTime()) {
		text.Draw(screen, line, face, hudMargin, y, hudText)
		y += hudLineGap
	}

	if lvl := w.Level(); lvl != nil {
		title := lvl.Title
		width := text.BoundString(face, title).Dx()
		text.Draw(screen, title, face, screen.Bounds().Dx()-width-hudMargin, hudMargin+12, hudDim)
	}
}
