package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/parrybound/components"
	cfg "github.com/automoto/parrybound/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// SpawnCollectible drops a collectible drifting away from pos in a random direction.
func SpawnCollectible(pool *components.CollectiblePoolData, rng *rand.Rand, pos dmath.Vec2, kind components.CollectibleKind) bool {
	angle := rng.Float64() * 2 * math.Pi
	speed := cfg.Collectible.Speed
	radius := cfg.Collectible.ScoreItemSize
	if kind == components.CollectibleHealthPoint {
		radius = cfg.Collectible.HealthPointSize
	}
	return pool.Spawn(components.Collectible{
		Position: pos,
		Velocity: dmath.NewVec2(math.Cos(angle)*speed, math.Sin(angle)*speed),
		Radius:   radius,
		Kind:     kind,
		Lifetime: cfg.Collectible.Lifetime,
	})
}

func UpdateCollectiblePool(w donburi.World, dt float64) {
	e, ok := components.CollectiblePool.First(w)
	if !ok {
		return
	}
	UpdateCollectibles(components.CollectiblePool.Get(e), cullBounds(w), dt)
}

// UpdateCollectibles moves, slows and ages collectibles, then compacts the pool.
func UpdateCollectibles(pool *components.CollectiblePoolData, bounds Bounds, dt float64) {
	keep := math.Max(0, 1-cfg.Collectible.Drag*dt)
	for i := 0; i < pool.Count; i++ {
		c := &pool.Items[i]
		if !c.Active {
			continue
		}
		c.Position.X += c.Velocity.X * dt
		c.Position.Y += c.Velocity.Y * dt
		c.Velocity.X *= keep
		c.Velocity.Y *= keep

		c.Lifetime -= dt
		if c.Lifetime <= 0 || !bounds.Contains(c.Position.X, c.Position.Y) {
			c.Active = false
		}
	}
	pool.Compact()
}

// Pickup totals what the player collected in one tick
type Pickup struct {
	Count        int
	HealthPoints int
	Score        int
}

// CollectItems picks up every collectible touching the hitbox.
func CollectItems(pool *components.CollectiblePoolData, hitbox components.Rect) Pickup {
	var got Pickup
	for i := 0; i < pool.Count; i++ {
		c := &pool.Items[i]
		if !c.Active || !touches(hitbox, c) {
			continue
		}
		c.Active = false
		got.Count++
		switch c.Kind {
		case components.CollectibleHealthPoint:
			got.HealthPoints += cfg.Collectible.HealthPointValue
		case components.CollectibleScore:
			got.Score += cfg.Collectible.ScoreItemValue
		}
	}
	if got.Count > 0 {
		pool.Compact()
	}
	return got
}

// touches is strict: a collectible exactly one radius away is not picked up.
func touches(r components.Rect, c *components.Collectible) bool {
	nx := math.Max(r.X, math.Min(c.Position.X, r.Right()))
	ny := math.Max(r.Y, math.Min(c.Position.Y, r.Bottom()))
	dx := c.Position.X - nx
	dy := c.Position.Y - ny
	return dx*dx+dy*dy < c.Radius*c.Radius
}
