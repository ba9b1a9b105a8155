package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/parrybound/components"
	"github.com/automoto/parrybound/tags"
	"github.com/automoto/parrybound/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
)

// DebugColor picks the outline for a collision object by its tags.
func DebugColor(obj *resolv.Object) color.RGBA {
	switch {
	case obj.HasTags(tags.ResolvPlayer):
		return color.RGBA{0, 0, 255, 255} // Blue
	case obj.HasTags(tags.ResolvSpawner):
		return color.RGBA{255, 0, 0, 255} // Red
	case obj.HasTags(tags.ResolvGoal):
		return color.RGBA{255, 215, 0, 255} // Gold
	}
	return color.RGBA{0, 255, 255, 255} // Cyan default
}

// DrawDebug outlines every collision object on screen and prints frame and pool counters.
func DrawDebug(screen *ebiten.Image, w *world.World) {
	if !w.Loaded() {
		return
	}
	bounds := screen.Bounds()
	view := NewView(w.Camera(), bounds.Dx(), bounds.Dy())

	if e, ok := components.Space.First(w.Entities()); ok {
		space := components.Space.Get(e)
		for _, obj := range space.Objects() {
			if !view.Visible(obj.X, obj.Y, obj.W, obj.H, 0) {
				continue
			}
			x, y := view.ToScreen(obj.X, obj.Y)
			vector.StrokeRect(screen, x, y, float32(obj.W), float32(obj.H), 1, DebugColor(obj), false)
		}
	}

	hb := w.Player().Hitbox()
	x, y := view.ToScreen(hb.X, hb.Y)
	vector.StrokeRect(screen, x, y, float32(hb.W), float32(hb.H), 1, hitboxColor, false)

	msg := fmt.Sprintf("TPS %.0f  FPS %.0f\nbullets %d  items %d  rings %d",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		len(w.Bullets()), len(w.Collectibles()), len(w.ParryEffects()))
	ebitenutil.DebugPrintAt(screen, msg, 10, bounds.Dy()-40)
}
