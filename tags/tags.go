package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Spawner = donburi.NewTag().SetName("Spawner")
	Goal    = donburi.NewTag().SetName("Goal")
	Probe   = donburi.NewTag().SetName("Probe")
)

// Resolv tags for broadphase queries
const (
	ResolvPlayer  = "Player"
	ResolvSpawner = "Spawner"
	ResolvGoal    = "goal"
	ResolvProbe   = "probe"
)
