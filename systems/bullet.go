package systems

import (
	"github.com/automoto/parrybound/components"
	cfg "github.com/automoto/parrybound/config"
	"github.com/yohamta/donburi"
)

// Bounds is the region pooled objects may live in
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// cullBounds is the level area grown by the bullet cull margin.
func cullBounds(w donburi.World) Bounds {
	m := cfg.Bullet.CullMargin
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return Bounds{MinX: -m, MinY: -m, MaxX: m, MaxY: m}
	}
	lvl := components.Level.Get(levelEntry).Level
	return Bounds{MinX: -m, MinY: -m, MaxX: lvl.PixelWidth() + m, MaxY: lvl.PixelHeight() + m}
}

func UpdateBulletPool(w donburi.World, dt float64) {
	e, ok := components.BulletPool.First(w)
	if !ok {
		return
	}
	UpdateBullets(components.BulletPool.Get(e), cullBounds(w), dt)
}

// UpdateBullets integrates every live bullet, culls those that left the
// bounds and compacts the pool.
func UpdateBullets(pool *components.BulletPoolData, bounds Bounds, dt float64) {
	for i := 0; i < pool.Count; i++ {
		b := &pool.Bullets[i]
		if !b.Active {
			continue
		}
		b.Position.X += b.Velocity.X * dt
		b.Position.Y += b.Velocity.Y * dt
		if !bounds.Contains(b.Position.X, b.Position.Y) {
			b.Active = false
		}
	}
	pool.Compact()
}

// ClearBullets empties the bullet and parry effect pools.
func ClearBullets(w donburi.World) {
	e, ok := components.BulletPool.First(w)
	if !ok {
		return
	}
	components.BulletPool.Get(e).Clear()
	components.ParryEffectPool.Get(e).Clear()
}
