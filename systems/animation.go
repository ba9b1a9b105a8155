package systems

import (
	"github.com/automoto/parrybound/components"
	cfg "github.com/automoto/parrybound/config"
)

// playerAnimState picks the animation by priority, highest first.
func playerAnimState(p *components.PlayerData) cfg.AnimState {
	switch {
	case !p.IsAlive():
		return cfg.AnimDeath
	case p.Ducking:
		return cfg.AnimDuck
	case p.Floating:
		return cfg.AnimFloat
	case p.DashTimer > 0:
		return cfg.AnimRun
	case p.InvulnTimer > 0 && int(p.InvulnTimer*10)%2 == 0:
		return cfg.AnimDamage
	case p.Clinging:
		return cfg.AnimWallCling
	case p.OnWall && !p.OnGround && p.Velocity.Y > 0:
		return cfg.AnimWallSlide
	case !p.OnGround && p.Velocity.Y < 0:
		return cfg.AnimJump
	case !p.OnGround:
		return cfg.AnimFall
	case p.Velocity.X != 0:
		return cfg.AnimRun
	default:
		return cfg.AnimIdle
	}
}

// UpdatePlayerAnimation switches animation state and advances the frame.
// A state change restarts at frame 0; the death animation holds its last frame.
func UpdatePlayerAnimation(p *components.PlayerData, dt float64) {
	if state := playerAnimState(p); state != p.Anim {
		p.Anim = state
		p.AnimFrame = 0
		p.AnimTimer = 0
	}

	def := cfg.PlayerAnimations[p.Anim]
	fps := def.FPS
	if p.Anim == cfg.AnimRun && p.DashTimer > 0 {
		fps = cfg.DashRunFPS
	}

	p.AnimTimer += dt
	if p.AnimTimer < 1/fps {
		return
	}
	p.AnimTimer = 0
	p.AnimFrame++
	if p.AnimFrame >= def.Frames {
		if def.Hold {
			p.AnimFrame = def.Frames - 1
		} else {
			p.AnimFrame = 0
		}
	}
}
