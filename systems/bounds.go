package systems

import (
	"github.com/automoto/parrybound/components"
	cfg "github.com/automoto/parrybound/config"
	"github.com/automoto/parrybound/level"
	"github.com/automoto/parrybound/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// PlayerOutOfBounds reports whether the hitbox has left the level by more
// than the configured margin on any edge.
func PlayerOutOfBounds(p *components.PlayerData, lvl *level.Level) bool {
	hb := p.Hitbox()
	switch {
	case hb.Bottom() > lvl.PixelHeight()+cfg.World.OutOfBoundsBottom:
		return true
	case hb.Bottom() < -cfg.World.OutOfBoundsTop:
		return true
	case hb.Right() < -cfg.World.OutOfBoundsSide:
		return true
	case hb.X > lvl.PixelWidth()+cfg.World.OutOfBoundsSide:
		return true
	}
	return false
}

// checkpointSpawn places the player standing centered on top of a checkpoint tile.
func checkpointSpawn(tx, ty int) dmath.Vec2 {
	ts := cfg.Level.TileSize
	size := cfg.Player.Size
	return dmath.NewVec2(float64(tx)*ts+(ts-size)/2, float64(ty)*ts-size)
}

// SyncPlayerObject moves the player's broadphase object onto its hitbox.
func SyncPlayerObject(w donburi.World) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	p := components.Player.Get(playerEntry)
	components.Object.Get(playerEntry).SyncRect(p.Hitbox())
}

// ReachedGoal reports whether the player's hitbox overlaps the goal tile.
func ReachedGoal(w donburi.World) bool {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return false
	}
	obj := components.Object.Get(playerEntry)
	check := obj.Check(0, 0, tags.ResolvGoal)
	if check == nil {
		return false
	}
	hitbox := components.Player.Get(playerEntry).Hitbox()
	for _, goal := range check.ObjectsByTags(tags.ResolvGoal) {
		if hitbox.Overlaps(components.Rect{X: goal.X, Y: goal.Y, W: goal.W, H: goal.H}) {
			return true
		}
	}
	return false
}
