package systems

import (
	"github.com/automoto/parrybound/components"
	"github.com/automoto/parrybound/config"
	"github.com/automoto/parrybound/level"
	"github.com/automoto/parrybound/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func UpdateCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	target := CameraTarget(components.Player.Get(playerEntry), components.Level.Get(levelEntry).Level)
	camera.Position = FollowCamera(camera.Position, target, config.Camera.FollowSmoothing)
}

// CameraTarget is the hitbox center, clamped so the screen never shows
// outside the level. On an axis where the level is smaller than the screen
// the level is centered instead.
func CameraTarget(p *components.PlayerData, lvl *level.Level) math.Vec2 {
	cx, cy := p.Hitbox().Center()
	return math.NewVec2(
		clampAxis(cx, lvl.PixelWidth(), float64(config.C.Width)),
		clampAxis(cy, lvl.PixelHeight(), float64(config.C.Height)),
	)
}

func clampAxis(v, levelSize, screenSize float64) float64 {
	if levelSize <= screenSize {
		return levelSize / 2
	}
	return clampf(v, screenSize/2, levelSize-screenSize/2)
}

// FollowCamera blends toward target, keeping the given weight of the old position.
func FollowCamera(current, target math.Vec2, smoothing float64) math.Vec2 {
	return math.NewVec2(
		target.X*(1-smoothing)+current.X*smoothing,
		target.Y*(1-smoothing)+current.Y*smoothing,
	)
}
