package render

import (
	"image/color"

	"github.com/automoto/parrybound/components"
	cfg "github.com/automoto/parrybound/config"
	"github.com/automoto/parrybound/level"
	"github.com/automoto/parrybound/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Entities this close outside the screen are still drawn so they don't pop at the edges
const cullPadding = 32.0

var (
	skyColor        = color.RGBA{R: 24, G: 26, B: 40, A: 255}
	backgroundColor = color.RGBA{R: 50, G: 54, B: 80, A: 255}
	hitboxColor     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	spawnerCore     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
)

var tileColors = map[level.Tile]color.RGBA{
	level.Grass:      {R: 74, G: 160, B: 60, A: 255},
	level.Dirt:       {R: 120, G: 84, B: 50, A: 255},
	level.Stone:      {R: 110, G: 110, B: 120, A: 255},
	level.Goal:       {R: 255, G: 215, B: 0, A: 255},
	level.Damage:     {R: 190, G: 60, B: 40, A: 255},
	level.JumpBoost:  {R: 80, G: 200, B: 230, A: 255},
	level.Spike:      {R: 220, G: 220, B: 230, A: 255},
	level.Checkpoint: {R: 60, G: 220, B: 120, A: 255},
}

// TileColor is the fill for a foreground tile. Spawner markers and empty
// tiles have none.
func TileColor(t level.Tile) (color.RGBA, bool) {
	c, ok := tileColors[t]
	return c, ok
}

// PlayerColor tints the player by animation state and blinks while invulnerable.
func PlayerColor(p *components.PlayerData) (color.RGBA, bool) {
	if p.InvulnTimer > 0 && int(p.InvulnTimer*20)%2 == 1 {
		return color.RGBA{}, false
	}
	switch {
	case p.Anim == cfg.AnimDeath:
		return cfg.DarkBlue, true
	case p.Anim == cfg.AnimDamage:
		return cfg.Red, true
	case p.DashTimer > 0:
		return cfg.White, true
	case p.SlowingDown && p.ParryWindowTimer > 0:
		return cfg.Yellow, true
	case p.Floating:
		return cfg.Pink, true
	case p.Clinging || p.Anim == cfg.AnimWallSlide:
		return cfg.Purple, true
	}
	return cfg.LightBlue, true
}

// DrawWorld renders the loaded level with everything in it.
func DrawWorld(screen *ebiten.Image, w *world.World) {
	screen.Fill(skyColor)
	if !w.Loaded() {
		return
	}
	bounds := screen.Bounds()
	view := NewView(w.Camera(), bounds.Dx(), bounds.Dy())

	drawTiles(screen, view, w.Level())
	drawSpawners(screen, view, w.Spawners())
	drawCollectibles(screen, view, w.Collectibles())
	drawPlayer(screen, view, w.Player())
	drawBullets(screen, view, w.Bullets())
	drawParryEffects(screen, view, w.ParryEffects())

	if cfg.Debug.DrawHitboxes {
		DrawDebug(screen, w)
	}
}

func drawTiles(screen *ebiten.Image, view View, lvl *level.Level) {
	ts := cfg.Level.TileSize
	x0, y0, x1, y1 := view.TileRange(ts, lvl.Width, lvl.Height)
	for ty := y0; ty < y1; ty++ {
		for tx := x0; tx < x1; tx++ {
			sx, sy := view.ToScreen(float64(tx)*ts, float64(ty)*ts)
			if lvl.Background(tx, ty) != level.Empty {
				vector.DrawFilledRect(screen, sx, sy, float32(ts), float32(ts), backgroundColor, false)
			}
			c, ok := TileColor(lvl.Tile(tx, ty))
			if !ok {
				continue
			}
			vector.DrawFilledRect(screen, sx, sy, float32(ts), float32(ts), c, false)
		}
	}
}

func drawSpawners(screen *ebiten.Image, view View, spawners []*components.SpawnerData) {
	size := cfg.Level.TileSize
	for _, s := range spawners {
		if !s.Active || !view.Visible(s.Position.X, s.Position.Y, size, size, cullPadding) {
			continue
		}
		sx, sy := view.ToScreen(s.Position.X, s.Position.Y)
		vector.DrawFilledRect(screen, sx, sy, float32(size), float32(size), spawnerCore, false)
		vector.StrokeRect(screen, sx, sy, float32(size), float32(size), 3, s.Config.Color, false)

		// One pip per remaining hit
		pip := float32(size) / float32(cfg.Spawner.InitialHealth*2)
		for i := 0; i < s.Health; i++ {
			vector.DrawFilledRect(screen, sx+pip/2+float32(i)*pip*2, sy-pip*1.5, pip, pip, s.Config.Color, false)
		}
	}
}

func drawCollectibles(screen *ebiten.Image, view View, items []components.Collectible) {
	for i := range items {
		c := &items[i]
		if !c.Active || !view.Visible(c.Position.X-c.Radius, c.Position.Y-c.Radius, c.Radius*2, c.Radius*2, cullPadding) {
			continue
		}
		fill := cfg.Yellow
		if c.Kind == components.CollectibleHealthPoint {
			fill = cfg.Green
		}
		sx, sy := view.ToScreen(c.Position.X, c.Position.Y)
		vector.DrawFilledCircle(screen, sx, sy, float32(c.Radius), fill, true)
	}
}

func drawPlayer(screen *ebiten.Image, view View, p *components.PlayerData) {
	fill, visible := PlayerColor(p)
	if !visible {
		return
	}
	hb := p.Hitbox()
	sx, sy := view.ToScreen(hb.X, hb.Y)
	vector.DrawFilledRect(screen, sx, sy, float32(hb.W), float32(hb.H), fill, false)

	// Eye shows facing
	eyeX := sx + float32(hb.W)*0.7
	if !p.FacingRight {
		eyeX = sx + float32(hb.W)*0.3
	}
	vector.DrawFilledCircle(screen, eyeX, sy+float32(hb.H)*0.3, 2, skyColor, true)
}

func drawBullets(screen *ebiten.Image, view View, bullets []components.Bullet) {
	for i := range bullets {
		b := &bullets[i]
		if !b.Active || !view.Visible(b.Position.X-b.Radius, b.Position.Y-b.Radius, b.Radius*2, b.Radius*2, cullPadding) {
			continue
		}
		fill := b.Color
		if b.Parried {
			fill = cfg.Bullet.ParriedColor
		}
		sx, sy := view.ToScreen(b.Position.X, b.Position.Y)
		vector.DrawFilledCircle(screen, sx, sy, float32(b.Radius), fill, true)
	}
}

func drawParryEffects(screen *ebiten.Image, view View, effects []components.ParryEffect) {
	for i := range effects {
		e := &effects[i]
		if !e.Active {
			continue
		}
		ring := cfg.White
		ring.A = uint8(255 * clamp01(e.Alpha()))
		sx, sy := view.ToScreen(e.Position.X, e.Position.Y)
		vector.StrokeCircle(screen, sx, sy, float32(e.Radius), 2, ring, true)
	}
}

func clamp01(v float64) float64 {
	return max(0, min(v, 1))
}
