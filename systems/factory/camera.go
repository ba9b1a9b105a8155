package factory

import (
	"github.com/automoto/parrybound/archetypes"
	"github.com/automoto/parrybound/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(w donburi.World, position math.Vec2) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.SetValue(camera, components.CameraData{Position: position})
	return camera
}
