package factory

import (
	"math/rand"

	"github.com/automoto/parrybound/archetypes"
	"github.com/automoto/parrybound/components"
	"github.com/yohamta/donburi"
)

func CreateInput(w donburi.World) *donburi.Entry {
	input := archetypes.Input.Spawn(w)
	components.Input.SetValue(input, components.InputData{})
	return input
}

// CreatePools creates the single entry holding the bullet, collectible and
// parry effect pools. The pools are large arrays so they are zeroed in place.
func CreatePools(w donburi.World) *donburi.Entry {
	return archetypes.Pools.Spawn(w)
}

// CreateRuntime creates the entry holding the sound queue and the random source.
func CreateRuntime(w donburi.World, rng *rand.Rand) *donburi.Entry {
	runtime := archetypes.Runtime.Spawn(w)
	components.Rand.SetValue(runtime, components.RandData{Rand: rng})
	return runtime
}
