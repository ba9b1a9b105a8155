// Package render draws the active level and the session overlays.
package render

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// View maps world coordinates onto the screen for one frame.
// The camera position is drawn at the center of the screen.
type View struct {
	offsetX, offsetY float64
	width, height    float64
}

func NewView(camera dmath.Vec2, screenW, screenH int) View {
	w, h := float64(screenW), float64(screenH)
	return View{
		offsetX: camera.X - w/2,
		offsetY: camera.Y - h/2,
		width:   w,
		height:  h,
	}
}

// ToScreen converts a world point to screen space.
func (v View) ToScreen(x, y float64) (float32, float32) {
	return float32(x - v.offsetX), float32(y - v.offsetY)
}

// Visible reports whether a world rectangle overlaps the screen, grown by pad on every side.
func (v View) Visible(x, y, w, h, pad float64) bool {
	sx, sy := x-v.offsetX, y-v.offsetY
	return sx+w >= -pad && sx <= v.width+pad && sy+h >= -pad && sy <= v.height+pad
}

// TileRange returns the tile columns and rows on screen, clamped to the grid.
func (v View) TileRange(tileSize float64, cols, rows int) (x0, y0, x1, y1 int) {
	x0 = clampInt(int(v.offsetX/tileSize), 0, cols)
	y0 = clampInt(int(v.offsetY/tileSize), 0, rows)
	x1 = clampInt(int((v.offsetX+v.width)/tileSize)+1, 0, cols)
	y1 = clampInt(int((v.offsetY+v.height)/tileSize)+1, 0, rows)
	return
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
