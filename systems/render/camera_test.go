package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestViewToScreen(t *testing.T) {
	v := NewView(dmath.NewVec2(400, 300), 800, 600)
	x, y := v.ToScreen(400, 300)
	assert.Equal(t, float32(400), x)
	assert.Equal(t, float32(300), y)

	v = NewView(dmath.NewVec2(1000, 450), 800, 600)
	x, y = v.ToScreen(1000, 450)
	assert.Equal(t, float32(400), x, "the camera is drawn at the screen center")
	assert.Equal(t, float32(300), y)
	x, _ = v.ToScreen(600, 0)
	assert.Equal(t, float32(0), x)
}

func TestViewVisible(t *testing.T) {
	v := NewView(dmath.NewVec2(400, 300), 800, 600)

	assert.True(t, v.Visible(10, 10, 5, 5, 0))
	assert.False(t, v.Visible(-20, 10, 5, 5, 0))
	assert.True(t, v.Visible(-20, 10, 5, 5, 16), "padding keeps edge entities")
	assert.False(t, v.Visible(900, 10, 5, 5, 16))
}

func TestViewTileRange(t *testing.T) {
	v := NewView(dmath.NewVec2(400, 300), 800, 600)
	x0, y0, x1, y1 := v.TileRange(50, 30, 15)
	assert.Equal(t, []int{0, 0, 17, 13}, []int{x0, y0, x1, y1})

	// Clamped to the grid near the far corner
	v = NewView(dmath.NewVec2(1200, 600), 800, 600)
	x0, y0, x1, y1 = v.TileRange(50, 30, 15)
	assert.Equal(t, []int{16, 6, 30, 15}, []int{x0, y0, x1, y1})
}
