package factory

import (
	"github.com/automoto/parrybound/archetypes"
	"github.com/automoto/parrybound/components"
	cfg "github.com/automoto/parrybound/config"
	"github.com/automoto/parrybound/level"
	"github.com/automoto/parrybound/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateGoal creates the level exit covering the goal tile. Levels without a
// goal tile get no goal entity and cannot be completed.
func CreateGoal(w donburi.World, lvl *level.Level) (*donburi.Entry, bool) {
	if !lvl.HasGoal {
		return nil, false
	}
	goal := archetypes.Goal.Spawn(w)

	ts := cfg.Level.TileSize
	x, y := lvl.Goal.X, lvl.Goal.Y
	obj := resolv.NewObject(x, y, ts, ts, tags.ResolvGoal)
	obj.SetShape(resolv.NewRectangle(0, 0, ts, ts))
	obj.Data = goal
	components.Object.SetValue(goal, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	return goal, true
}

// CreateProbe creates the scratch object moved onto each parried bullet
// to query the space for spawners.
func CreateProbe(w donburi.World) *donburi.Entry {
	probe := archetypes.Probe.Spawn(w)

	obj := resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe)
	obj.SetShape(resolv.NewRectangle(0, 0, 1, 1))
	obj.Data = probe
	components.Object.SetValue(probe, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	return probe
}
