package systems

import (
	"github.com/automoto/parrybound/components"
	cfg "github.com/automoto/parrybound/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// SpawnParryEffect starts a ring at pos that grows linearly while it fades.
func SpawnParryEffect(pool *components.ParryEffectPoolData, pos dmath.Vec2) bool {
	d := cfg.ParryEffect.Duration
	r := cfg.ParryEffect.Radius
	return pool.Spawn(components.ParryEffect{
		Position: pos,
		Radius:   r,
		Lifetime: d,
		Duration: d,
		Growth:   gween.New(float32(r), float32(r+cfg.ParryEffect.Growth*d), float32(d), ease.Linear),
	})
}

func UpdateParryEffectPool(w donburi.World, dt float64) {
	e, ok := components.ParryEffectPool.First(w)
	if !ok {
		return
	}
	UpdateParryEffects(components.ParryEffectPool.Get(e), dt)
}

func UpdateParryEffects(pool *components.ParryEffectPoolData, dt float64) {
	for i := 0; i < pool.Count; i++ {
		fx := &pool.Effects[i]
		if !fx.Active {
			continue
		}
		fx.Lifetime -= dt
		if fx.Growth != nil {
			r, _ := fx.Growth.Update(float32(dt))
			fx.Radius = float64(r)
		}
		if fx.Lifetime <= 0 {
			fx.Active = false
		}
	}
	pool.Compact()
}
