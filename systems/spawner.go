package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/parrybound/components"
	cfg "github.com/automoto/parrybound/config"
	"github.com/automoto/parrybound/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

const degToRad = math.Pi / 180

// UpdateSpawners ticks every spawner within simulation range of the player.
// Spawners farther away keep their timers frozen.
func UpdateSpawners(w donburi.World, dt float64) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	poolsEntry, ok := components.BulletPool.First(w)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	bullets := components.BulletPool.Get(poolsEntry)
	collectibles := components.CollectiblePool.Get(poolsEntry)
	rng := worldRand(w)

	rangeSq := cfg.Spawner.SimulationRange * cfg.Spawner.SimulationRange
	tags.Spawner.Each(w, func(e *donburi.Entry) {
		s := components.Spawner.Get(e)
		dx := s.Position.X - player.Position.X
		dy := s.Position.Y - player.Position.Y
		if dx*dx+dy*dy >= rangeSq {
			return
		}
		UpdateSpawner(s, bullets, collectibles, rng, player.Position, dt)
	})
}

// UpdateSpawner advances one spawner's timer and rotation and fires a volley
// when the cooldown elapses. Every volley may also drop a collectible.
func UpdateSpawner(s *components.SpawnerData, bullets *components.BulletPoolData, collectibles *components.CollectiblePoolData, rng *rand.Rand, target dmath.Vec2, dt float64) {
	if !s.Active {
		return
	}
	if s.Health <= 0 {
		s.Active = false
		return
	}
	// Leave headroom in the pool so a full screen does not starve the rest
	if bullets.Count >= components.MaxBullets-cfg.Spawner.BulletReserve {
		return
	}

	s.Timer += dt
	s.AngleOffset += dt * s.Config.RotationSpeed
	if s.Timer < s.Config.Cooldown {
		return
	}
	s.Timer = 0
	FirePattern(s, bullets, rng, target)

	if rng == nil || collectibles.Count >= components.MaxCollectibles-cfg.Collectible.CapacityMargin {
		return
	}
	if rng.Float64() >= cfg.Collectible.SpawnChance {
		return
	}
	kind := components.CollectibleScore
	if rng.Float64() < cfg.Collectible.HealthPointWeight {
		kind = components.CollectibleHealthPoint
	}
	SpawnCollectible(collectibles, rng, s.Center(), kind)
}

// FirePattern emits one volley from the spawner center. Volleys that do not
// fit are cut short when the pool fills.
func FirePattern(s *components.SpawnerData, bullets *components.BulletPoolData, rng *rand.Rand, target dmath.Vec2) {
	pc := s.Config
	if pc.BulletCount < 1 {
		return
	}
	center := s.Center()
	n := float64(pc.BulletCount)

	emit := func(angleDeg, speed float64) bool {
		rad := angleDeg * degToRad
		return bullets.Spawn(components.Bullet{
			Position: center,
			Velocity: dmath.NewVec2(math.Cos(rad)*speed, math.Sin(rad)*speed),
			Radius:   pc.BulletSize,
			Color:    pc.Color,
		})
	}

	switch s.Pattern {
	case cfg.PatternCircle, cfg.PatternBurst:
		step := pc.SpreadAngle / n
		for i := 0; i < pc.BulletCount; i++ {
			if !emit(step*float64(i)+s.AngleOffset, jitteredSpeed(pc, rng)) {
				return
			}
		}
	case cfg.PatternSpiral:
		step := 360 / n
		for i := 0; i < pc.BulletCount; i++ {
			if !emit(step*float64(i)+s.AngleOffset, pc.BulletSpeed) {
				return
			}
		}
	case cfg.PatternWave:
		step, start := 0.0, s.AngleOffset
		if pc.BulletCount > 1 {
			step = pc.SpreadAngle / (n - 1)
			start = -pc.SpreadAngle/2 + s.AngleOffset
		}
		for i := 0; i < pc.BulletCount; i++ {
			wobble := math.Sin(s.AngleOffset*degToRad*2+float64(i)*0.5) * 20
			if !emit(start+step*float64(i), pc.BulletSpeed+wobble) {
				return
			}
		}
	case cfg.PatternTargeting:
		base := math.Atan2(target.Y-center.Y, target.X-center.X) / degToRad
		step, start := 0.0, base
		if pc.BulletCount > 1 {
			step = pc.SpreadAngle / (n - 1)
			start = base - pc.SpreadAngle/2
		}
		for i := 0; i < pc.BulletCount; i++ {
			if !emit(start+step*float64(i), pc.BulletSpeed) {
				return
			}
		}
	}
}

// jitteredSpeed applies the integer speed variation of randomized patterns.
func jitteredSpeed(pc cfg.PatternConfig, rng *rand.Rand) float64 {
	if !pc.RandomizeSpeed {
		return pc.BulletSpeed
	}
	span := int(pc.SpeedVariation * 2)
	if span < 1 || rng == nil {
		return pc.BulletSpeed
	}
	return pc.BulletSpeed + float64(rng.Intn(span)) - pc.SpeedVariation
}

// DamageSpawner removes health from a spawner. Destroying it unlocks the
// player's spell card.
func DamageSpawner(s *components.SpawnerData, amount int, player *components.PlayerData, sounds *components.SoundQueueData) {
	if !s.Active {
		return
	}
	s.Health -= amount
	if s.Health > 0 {
		return
	}
	s.Health = 0
	s.Active = false
	if player != nil {
		player.CanSpellCard = true
	}
	playSound(sounds, cfg.SoundSpawnerDestroyed)
}

// FindNearestSpawner returns the active spawner whose center is closest to pos.
func FindNearestSpawner(w donburi.World, pos dmath.Vec2) (*donburi.Entry, bool) {
	var nearest *donburi.Entry
	best := math.Inf(1)
	tags.Spawner.Each(w, func(e *donburi.Entry) {
		s := components.Spawner.Get(e)
		if !s.Active {
			return
		}
		c := s.Center()
		dx := c.X - pos.X
		dy := c.Y - pos.Y
		if d := dx*dx + dy*dy; d < best {
			best = d
			nearest = e
		}
	})
	return nearest, nearest != nil
}

// ResetSpawners restores every spawner's timer, rotation and health.
func ResetSpawners(w donburi.World) {
	tags.Spawner.Each(w, func(e *donburi.Entry) {
		components.Spawner.Get(e).Reset()
	})
}

func worldRand(w donburi.World) *rand.Rand {
	if e, ok := components.Rand.First(w); ok {
		return components.Rand.Get(e).Rand
	}
	return nil
}
