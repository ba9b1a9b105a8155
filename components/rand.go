package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// RandData is the world's random source. Tests seed it for reproducible volleys and drops.
type RandData struct {
	*rand.Rand
}

var Rand = donburi.NewComponentType[RandData]()
