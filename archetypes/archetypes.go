package archetypes

import (
	"github.com/automoto/parrybound/components"
	"github.com/automoto/parrybound/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
	)
	Spawner = newArchetype(
		tags.Spawner,
		components.Spawner,
		components.Object,
	)
	Goal = newArchetype(
		tags.Goal,
		components.Object,
	)
	Probe = newArchetype(
		tags.Probe,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
	Pools = newArchetype(
		components.BulletPool,
		components.CollectiblePool,
		components.ParryEffectPool,
	)
	Runtime = newArchetype(
		components.SoundQueue,
		components.Rand,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entry with the archetype's components plus any extras.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
