package systems

import (
	"math"

	"github.com/automoto/parrybound/components"
	cfg "github.com/automoto/parrybound/config"
	"github.com/automoto/parrybound/level"
	"github.com/automoto/parrybound/tags"
	"github.com/yohamta/donburi"
)

// playerIntent is the per-tick view of the input the state machine reads
type playerIntent struct {
	left, right, up, down bool
	jump, dash, float     components.ActionState
	cling, slowdown       bool
	jumpHeld              bool
}

func readIntent(in *components.InputData) playerIntent {
	jump := in.Action(cfg.ActionJump)
	up := in.Action(cfg.ActionMoveUp).Pressed || jump.Pressed
	return playerIntent{
		left:     in.Action(cfg.ActionMoveLeft).Pressed,
		right:    in.Action(cfg.ActionMoveRight).Pressed,
		up:       up,
		down:     in.Action(cfg.ActionMoveDown).Pressed,
		jump:     jump,
		dash:     in.Action(cfg.ActionDash),
		float:    in.Action(cfg.ActionFloat),
		cling:    in.Action(cfg.ActionCling).Pressed,
		slowdown: in.Action(cfg.ActionSlowdown).Pressed,
		jumpHeld: up,
	}
}

// UpdatePlayer advances the player state machine by dt seconds.
func UpdatePlayer(w donburi.World, dt float64) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	inputEntry, ok := components.Input.First(w)
	if !ok {
		return
	}
	var sounds *components.SoundQueueData
	if e, ok := components.SoundQueue.First(w); ok {
		sounds = components.SoundQueue.Get(e)
	}
	UpdatePlayerState(components.Player.Get(playerEntry), components.Input.Get(inputEntry), sounds, dt)
}

// UpdatePlayerState runs one tick of timers, abilities, movement intent and
// jumping, then picks the animation. Gravity and collision happen afterwards
// in the physics pass.
func UpdatePlayerState(p *components.PlayerData, in *components.InputData, sounds *components.SoundQueueData, dt float64) {
	intent := readIntent(in)

	tickPlayerTimers(p, dt)
	handleFloatInput(p, intent)
	handleClingInput(p, intent)
	handleDuckInput(p, intent)
	handleDashInput(p, intent, sounds)
	handleMovementInput(p, intent)
	handleSlowdownInput(p, intent)
	handleJumpInput(p, intent, sounds)
	UpdatePlayerAnimation(p, dt)
}

func tickPlayerTimers(p *components.PlayerData, dt float64) {
	for _, t := range []*float64{
		&p.DashCooldown, &p.DashTimer,
		&p.FloatCooldown, &p.FloatTimer,
		&p.InvulnTimer,
		&p.CoyoteTimer, &p.JumpBufferTimer, &p.WallJumpTimer,
		&p.DamageTimer, &p.ClingTimer,
		&p.ParryWindowTimer, &p.ParryCooldown,
	} {
		*t = math.Max(0, *t-dt)
	}

	p.ParryActive = p.ParryWindowTimer > 0
	if p.Floating && p.FloatTimer <= 0 {
		p.Floating = false
	}
	if p.OnGround {
		p.CoyoteTimer = cfg.Player.CoyoteTime
	}
	if p.OnWall && !p.OnGround {
		p.WallJumpTimer = cfg.Player.WallJumpTime
	}
}

func handleFloatInput(p *components.PlayerData, intent playerIntent) {
	if !intent.float.JustPressed || p.OnGround || p.Floating || p.FloatCooldown > 0 {
		return
	}
	p.Floating = true
	p.FloatTimer = cfg.Player.FloatDuration
	p.FloatCooldown = cfg.Player.FloatCooldown
	p.Velocity.Y = 0
}

func handleClingInput(p *components.PlayerData, intent playerIntent) {
	if !(p.OnWall && !p.OnGround && intent.cling) {
		p.Clinging = false
		p.ClingTimer = 0
		return
	}
	if !p.Clinging {
		p.Clinging = true
		p.ClingTimer = cfg.Player.ClingDuration
	}
	if p.Floating {
		p.Floating = false
		p.FloatTimer = 0
	}
}

// Ducking starts only on the ground but survives leaving it until down is released.
func handleDuckInput(p *components.PlayerData, intent playerIntent) {
	if intent.down && p.OnGround {
		p.Ducking = true
	} else if !intent.down {
		p.Ducking = false
	}
}

func handleDashInput(p *components.PlayerData, intent playerIntent, sounds *components.SoundQueueData) {
	if !intent.dash.JustPressed || p.DashCooldown > 0 || !p.CanDash || p.Floating {
		return
	}
	p.DashCooldown = cfg.Player.DashCooldown
	p.DashTimer = cfg.Player.DashDuration

	var dx, dy float64
	if intent.left {
		dx = -1
	}
	if intent.right {
		dx = 1
	}
	if intent.up && !p.Ducking {
		dy = -1
	}
	if intent.down && !p.Ducking {
		dy = 1
	}
	if dx == 0 && dy == 0 {
		dx = cfg.DirectionLeft
		if p.FacingRight {
			dx = cfg.DirectionRight
		}
	}
	mag := math.Hypot(dx, dy)
	speed := cfg.Player.Speed * cfg.Player.DashSpeedMult
	p.Velocity.X = dx / mag * speed
	p.Velocity.Y = dy / mag * speed

	if p.Clinging {
		p.Clinging = false
		p.ClingTimer = 0
	}
	playSound(sounds, cfg.SoundDash)
}

func handleMovementInput(p *components.PlayerData, intent playerIntent) {
	var speed float64
	switch {
	case p.Floating:
		speed = cfg.Player.Speed * cfg.Player.FloatSpeedMult
	case p.DashTimer <= 0:
		speed = cfg.Player.Speed
	default:
		// Dash velocity is kept until the dash runs out
		return
	}

	p.Velocity.X = 0
	if intent.left {
		p.Velocity.X -= speed
		p.FacingRight = false
	}
	if intent.right {
		p.Velocity.X += speed
		p.FacingRight = true
	}
}

// handleSlowdownInput also opens the parry window: slowdown plus a held
// direction, once per cooldown.
func handleSlowdownInput(p *components.PlayerData, intent playerIntent) {
	if !intent.slowdown {
		p.SlowingDown = false
		return
	}
	p.Velocity.X *= cfg.Player.SlowdownMult
	p.SlowingDown = true

	if p.ParryCooldown <= 0 && (intent.left || intent.right) && p.ParryWindowTimer <= 0 {
		p.ParryWindowTimer = cfg.Player.ParryWindow
		p.ParryCooldown = cfg.Player.ParryCooldown
	}
}

func handleJumpInput(p *components.PlayerData, intent playerIntent, sounds *components.SoundQueueData) {
	if intent.jump.JustPressed {
		p.JumpBufferTimer = cfg.Player.JumpBuffer
		p.Ducking = false
		if p.Floating {
			p.Floating = false
			p.FloatTimer = 0
		}
	}

	wallJump := (p.WallJumpTimer > 0 || p.Clinging) && !p.OnGround
	canJump := p.OnGround || p.CoyoteTimer > 0
	switch {
	case p.JumpBufferTimer <= 0:
	case wallJump:
		p.Velocity.Y = -cfg.Player.JumpSpeed
		p.Velocity.X = float64(p.WallDirection) * cfg.Player.Speed * cfg.Player.WallJumpSpeedMult
		p.WallJumpTimer = 0
		p.CoyoteTimer = 0
		p.JumpBufferTimer = 0
		p.OnWall = false
		p.Clinging = false
		p.ClingTimer = 0
		playSound(sounds, cfg.SoundJump)
	case canJump:
		jumpSpeed := cfg.Player.JumpSpeed
		if effect := level.EffectOf(p.LastTile); effect.HasJumpBoost() {
			jumpSpeed *= effect.JumpBoost
		}
		p.Velocity.Y = -jumpSpeed
		p.OnGround = false
		p.CoyoteTimer = 0
		p.JumpBufferTimer = 0
		playSound(sounds, cfg.SoundJump)
	}

	// Releasing jump early cuts the ascent
	jumpCap := cfg.Player.VariableJumpCap
	if !intent.jumpHeld && p.Velocity.Y < -jumpCap && p.DashTimer <= 0 {
		p.Velocity.Y = -jumpCap
	}
}

func playSound(sounds *components.SoundQueueData, id cfg.SoundID) {
	if sounds != nil {
		sounds.Push(id)
	}
}
