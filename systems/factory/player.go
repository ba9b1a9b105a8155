package factory

import (
	"github.com/automoto/parrybound/archetypes"
	"github.com/automoto/parrybound/components"
	"github.com/automoto/parrybound/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player at spawn with full health. Its broadphase
// object tracks the hitbox, not the sprite box.
func CreatePlayer(w donburi.World, spawn math.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	var data components.PlayerData
	data.Reset(spawn)
	components.Player.SetValue(player, data)

	hb := data.Hitbox()
	obj := resolv.NewObject(hb.X, hb.Y, hb.W, hb.H, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, hb.W, hb.H))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	return player
}
