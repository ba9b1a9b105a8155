package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/parrybound/components"
	cfg "github.com/automoto/parrybound/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

func newSpawner(pattern cfg.PatternID) *components.SpawnerData {
	s := &components.SpawnerData{
		Pattern:  pattern,
		Config:   cfg.Patterns[pattern],
		Position: dmath.NewVec2(500, 500),
	}
	s.Reset()
	return s
}

func bulletAngle(b components.Bullet) float64 {
	deg := math.Atan2(b.Velocity.Y, b.Velocity.X) / degToRad
	if deg < 0 {
		deg += 360
	}
	return deg
}

func bulletSpeed(b components.Bullet) float64 {
	return math.Hypot(b.Velocity.X, b.Velocity.Y)
}

func TestCirclePattern(t *testing.T) {
	s := newSpawner(cfg.PatternCircle)
	var pool components.BulletPoolData

	FirePattern(s, &pool, nil, dmath.Vec2{})

	require.Equal(t, 5, pool.Count)
	for i, b := range pool.Live() {
		assert.InDelta(t, float64(i)*72, bulletAngle(b), 1e-9)
		assert.InDelta(t, 150, bulletSpeed(b), 1e-9)
		assert.Equal(t, s.Center(), b.Position)
		assert.Equal(t, cfg.Red, b.Color)
		assert.Equal(t, 4.0, b.Radius)
		assert.False(t, b.Parried)
	}
}

func TestSpiralRotates(t *testing.T) {
	s := newSpawner(cfg.PatternSpiral)
	var pool components.BulletPoolData

	// One cooldown's worth of rotation at 180 deg/s
	for i := 0; i < 60; i++ {
		UpdateSpawner(s, &pool, &components.CollectiblePoolData{}, nil, dmath.Vec2{}, tick)
	}
	require.Equal(t, 4, pool.Count)
	first := bulletAngle(pool.Bullets[0])
	assert.InDelta(t, 180, first, 1e-6)
	assert.InDelta(t, 270, bulletAngle(pool.Bullets[1]), 1e-6)
}

func TestWavePattern(t *testing.T) {
	s := newSpawner(cfg.PatternWave)
	var pool components.BulletPoolData

	FirePattern(s, &pool, nil, dmath.Vec2{})

	require.Equal(t, 4, pool.Count)
	// Spread of 60 over 3 gaps starting at -30, wobble shifts speeds
	wantAngles := []float64{330, 350, 10, 30}
	for i, b := range pool.Live() {
		assert.InDelta(t, wantAngles[i], bulletAngle(b), 1e-6)
		wobble := math.Sin(float64(i)*0.5) * 20
		assert.InDelta(t, 100+wobble, bulletSpeed(b), 1e-6)
	}
}

func TestTargetingAimsAtPlayer(t *testing.T) {
	s := newSpawner(cfg.PatternTargeting)
	var pool components.BulletPoolData
	c := s.Center()

	FirePattern(s, &pool, nil, dmath.NewVec2(c.X, c.Y+300))

	require.Equal(t, 9, pool.Count)
	middle := pool.Bullets[4]
	assert.InDelta(t, 90, bulletAngle(middle), 1e-6)
	assert.InDelta(t, 90-22.5, bulletAngle(pool.Bullets[0]), 1e-6)
	assert.InDelta(t, 90+22.5, bulletAngle(pool.Bullets[8]), 1e-6)
}

func TestSingleBulletSpreadPatterns(t *testing.T) {
	for _, id := range []cfg.PatternID{cfg.PatternWave, cfg.PatternTargeting} {
		t.Run(id.String(), func(t *testing.T) {
			s := newSpawner(id)
			s.Config.BulletCount = 1
			var pool components.BulletPoolData
			c := s.Center()

			FirePattern(s, &pool, nil, dmath.NewVec2(c.X+100, c.Y))

			require.Equal(t, 1, pool.Count)
			assert.InDelta(t, 0, bulletAngle(pool.Bullets[0]), 1e-6)
			assert.False(t, math.IsNaN(pool.Bullets[0].Velocity.X))
		})
	}
}

func TestNonRandomPatternsAreDeterministic(t *testing.T) {
	for _, id := range []cfg.PatternID{cfg.PatternCircle, cfg.PatternSpiral, cfg.PatternWave, cfg.PatternTargeting} {
		t.Run(id.String(), func(t *testing.T) {
			var a, b components.BulletPoolData
			sa, sb := newSpawner(id), newSpawner(id)
			target := dmath.NewVec2(123, 456)
			for i := 0; i < 300; i++ {
				UpdateSpawner(sa, &a, &components.CollectiblePoolData{}, nil, target, tick)
				UpdateSpawner(sb, &b, &components.CollectiblePoolData{}, rand.New(rand.NewSource(int64(i))), target, tick)
			}
			require.NotZero(t, a.Count)
			assert.Equal(t, a.Live(), b.Live())
		})
	}
}

func TestBurstSpeedJitter(t *testing.T) {
	fire := func(seed int64) []components.Bullet {
		var pool components.BulletPoolData
		FirePattern(newSpawner(cfg.PatternBurst), &pool, rand.New(rand.NewSource(seed)), dmath.Vec2{})
		return append([]components.Bullet(nil), pool.Live()...)
	}

	volley := fire(12345)
	require.Len(t, volley, 12)
	pc := cfg.Patterns[cfg.PatternBurst]
	for _, b := range volley {
		speed := bulletSpeed(b)
		assert.GreaterOrEqual(t, speed, pc.BulletSpeed-pc.SpeedVariation-1e-9)
		assert.Less(t, speed, pc.BulletSpeed+pc.SpeedVariation)
	}
	assert.Equal(t, volley, fire(12345), "same seed, same volley")
}

func TestSpawnerBackpressure(t *testing.T) {
	s := newSpawner(cfg.PatternCircle)
	s.Timer = s.Config.Cooldown
	var pool components.BulletPoolData
	pool.Count = components.MaxBullets - cfg.Spawner.BulletReserve

	UpdateSpawner(s, &pool, &components.CollectiblePoolData{}, nil, dmath.Vec2{}, tick)

	assert.Equal(t, components.MaxBullets-cfg.Spawner.BulletReserve, pool.Count)
	assert.Equal(t, s.Config.Cooldown, s.Timer, "a skipped tick does not advance the timer")
}

func TestVolleyTruncatedAtCapacity(t *testing.T) {
	s := newSpawner(cfg.PatternBurst)
	var pool components.BulletPoolData
	pool.Count = components.MaxBullets - 3

	FirePattern(s, &pool, rand.New(rand.NewSource(1)), dmath.Vec2{})
	assert.Equal(t, components.MaxBullets, pool.Count)
}

func TestSpawnerCooldown(t *testing.T) {
	s := newSpawner(cfg.PatternTargeting)
	var pool components.BulletPoolData
	collectibles := &components.CollectiblePoolData{}

	UpdateSpawner(s, &pool, collectibles, nil, dmath.Vec2{}, 1.0)
	assert.Zero(t, pool.Count)
	UpdateSpawner(s, &pool, collectibles, nil, dmath.Vec2{}, 0.25)
	assert.Equal(t, 9, pool.Count)
	assert.Zero(t, s.Timer)
}

func TestSpawnerDrops(t *testing.T) {
	s := newSpawner(cfg.PatternCircle)
	rng := rand.New(rand.NewSource(12345))
	var pool components.BulletPoolData
	collectibles := &components.CollectiblePoolData{}

	for i := 0; i < 60; i++ {
		s.Timer = s.Config.Cooldown
		UpdateSpawner(s, &pool, collectibles, rng, dmath.Vec2{}, 0)
		pool.Clear()
	}
	// 60 rolls at a 30% chance
	assert.Greater(t, collectibles.Count, 5)
	assert.Less(t, collectibles.Count, 35)
	for _, c := range collectibles.Live() {
		assert.Equal(t, s.Center(), c.Position)
	}
}

func TestDropsStopNearCapacity(t *testing.T) {
	s := newSpawner(cfg.PatternCircle)
	rng := rand.New(rand.NewSource(12345))
	var pool components.BulletPoolData
	collectibles := &components.CollectiblePoolData{}
	collectibles.Count = components.MaxCollectibles - cfg.Collectible.CapacityMargin

	for i := 0; i < 30; i++ {
		s.Timer = s.Config.Cooldown
		UpdateSpawner(s, &pool, collectibles, rng, dmath.Vec2{}, 0)
		pool.Clear()
	}
	assert.Equal(t, components.MaxCollectibles-cfg.Collectible.CapacityMargin, collectibles.Count)
}

func TestDamageSpawner(t *testing.T) {
	s := newSpawner(cfg.PatternCircle)
	p := newPlayerAt(0, 0)
	sounds := &components.SoundQueueData{}

	for i := 0; i < cfg.Spawner.InitialHealth-1; i++ {
		DamageSpawner(s, 1, p, sounds)
	}
	assert.True(t, s.Active)
	assert.False(t, p.CanSpellCard)

	DamageSpawner(s, 1, p, sounds)
	assert.False(t, s.Active)
	assert.Zero(t, s.Health)
	assert.True(t, p.CanSpellCard)
	assert.Equal(t, []cfg.SoundID{cfg.SoundSpawnerDestroyed}, sounds.Pending)

	// Further hits on a destroyed spawner do nothing
	DamageSpawner(s, 1, p, sounds)
	assert.Len(t, sounds.Pending, 1)

	var pool components.BulletPoolData
	s.Timer = 100
	UpdateSpawner(s, &pool, &components.CollectiblePoolData{}, nil, dmath.Vec2{}, tick)
	assert.Zero(t, pool.Count)
}
