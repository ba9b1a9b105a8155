package config

// AnimState is the player's discrete animation state
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimRun
	AnimJump
	AnimFall
	AnimWallSlide
	AnimWallCling
	AnimFloat
	AnimDamage
	AnimDeath
	AnimDuck
	AnimCount // Must be last - used for array sizing
)

type AnimationDef struct {
	FPS    float64
	Frames int
	Hold   bool // Stop on the last frame instead of looping
}

// PlayerAnimations holds the frame rate and length of every player animation.
var PlayerAnimations = [AnimCount]AnimationDef{
	AnimIdle:      {FPS: 6, Frames: 4},
	AnimRun:       {FPS: 12, Frames: 6},
	AnimJump:      {FPS: 8, Frames: 3},
	AnimFall:      {FPS: 6, Frames: 2},
	AnimWallSlide: {FPS: 8, Frames: 3},
	AnimWallCling: {FPS: 4, Frames: 2},
	AnimFloat:     {FPS: 8, Frames: 4},
	AnimDamage:    {FPS: 10, Frames: 2},
	AnimDeath:     {FPS: 6, Frames: 4, Hold: true},
	AnimDuck:      {FPS: 4, Frames: 2},
}

// DashRunFPS is the run animation speed while dashing
const DashRunFPS = 20.0
