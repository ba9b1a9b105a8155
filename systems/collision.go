package systems

import (
	"github.com/automoto/parrybound/components"
	cfg "github.com/automoto/parrybound/config"
	"github.com/automoto/parrybound/level"
	"github.com/automoto/parrybound/tags"
	"github.com/yohamta/donburi"
)

// UpdateCollisions resolves bullets against the player, parried bullets
// against spawners, and the tile under the player's feet, in that order.
func UpdateCollisions(w donburi.World) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	poolsEntry, ok := components.BulletPool.First(w)
	if !ok {
		return
	}
	inputEntry, ok := components.Input.First(w)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	in := components.Input.Get(inputEntry)
	sounds := soundQueue(w)

	ResolveBulletHits(
		player,
		in.Action(cfg.ActionMoveLeft).Pressed,
		in.Action(cfg.ActionMoveRight).Pressed,
		components.BulletPool.Get(poolsEntry),
		components.ParryEffectPool.Get(poolsEntry),
		sounds,
	)
	ResolveParriedBullets(w, player, components.BulletPool.Get(poolsEntry), sounds)

	if levelEntry, ok := components.Level.First(w); ok {
		ResolveTileHazards(player, components.Level.Get(levelEntry).Level, sounds)
	}
}

// ResolveBulletHits tests every live, unparried bullet against the player
// hitbox. A bullet the player can parry is reflected faster and marked
// parried; any other bullet deals one damage and is consumed.
func ResolveBulletHits(p *components.PlayerData, movingLeft, movingRight bool, bullets *components.BulletPoolData, effects *components.ParryEffectPoolData, sounds *components.SoundQueueData) {
	hitbox := p.Hitbox()
	hurt := false
	for i := 0; i < bullets.Count; i++ {
		b := &bullets.Bullets[i]
		if !b.Active || b.Parried {
			continue
		}
		if !hitbox.IntersectsCircle(b.Position.X, b.Position.Y, b.Radius) {
			continue
		}
		if p.CanParry(b.Velocity, movingLeft, movingRight) {
			m := -cfg.Bullet.ParriedSpeedMult
			b.Velocity.X *= m
			b.Velocity.Y *= m
			b.Parried = true
			b.Color = cfg.Bullet.ParriedColor
			if effects != nil {
				SpawnParryEffect(effects, b.Position)
			}
			playSound(sounds, cfg.SoundParry)
			continue
		}
		if p.TakeDamage(1) {
			hurt = true
		}
		b.Active = false
	}
	if hurt {
		playSound(sounds, cfg.SoundHurt)
	}
}

// ResolveParriedBullets lets each parried bullet damage at most one spawner.
// The resolv space narrows the candidates; when several spawners overlap
// the bullet, the one placed first takes the hit.
func ResolveParriedBullets(w donburi.World, player *components.PlayerData, bullets *components.BulletPoolData, sounds *components.SoundQueueData) {
	probeEntry, ok := tags.Probe.First(w)
	if !ok {
		return
	}
	probe := components.Object.Get(probeEntry)

	for i := 0; i < bullets.Count; i++ {
		b := &bullets.Bullets[i]
		if !b.Active || !b.Parried {
			continue
		}
		probe.SyncRect(components.Rect{
			X: b.Position.X - b.Radius,
			Y: b.Position.Y - b.Radius,
			W: b.Radius * 2,
			H: b.Radius * 2,
		})
		check := probe.Check(0, 0, tags.ResolvSpawner)
		if check == nil {
			continue
		}

		var target *components.SpawnerData
		for _, obj := range check.ObjectsByTags(tags.ResolvSpawner) {
			e, ok := obj.Data.(*donburi.Entry)
			if !ok || e == nil || !e.Valid() {
				continue
			}
			s := components.Spawner.Get(e)
			if !s.Active || !bulletHitsRect(s.Hitbox(), b) {
				continue
			}
			if target == nil || s.Index < target.Index {
				target = s
			}
		}
		if target != nil {
			DamageSpawner(target, 1, player, sounds)
			b.Active = false
		}
	}
}

// bulletHitsRect is strict: grazing the edge exactly does not count.
func bulletHitsRect(r components.Rect, b *components.Bullet) bool {
	nx := clampf(b.Position.X, r.X, r.Right())
	ny := clampf(b.Position.Y, r.Y, r.Bottom())
	dx := b.Position.X - nx
	dy := b.Position.Y - ny
	return dx*dx+dy*dy < b.Radius*b.Radius
}

// ResolveTileHazards applies the effect of the tile under the player's feet.
// Checkpoints, spikes and damage tiles only act while grounded.
func ResolveTileHazards(p *components.PlayerData, lvl *level.Level, sounds *components.SoundQueueData) {
	hb := p.Hitbox()
	cx, _ := hb.Center()
	tx, ty := lvl.TileAt(cx, hb.Bottom())
	tile := lvl.Tile(tx, ty)
	p.LastTile = tile
	if tile == level.Empty || !p.OnGround {
		return
	}

	effect := level.EffectOf(tile)
	if effect.Checkpoint {
		p.Checkpoint = checkpointSpawn(tx, ty)
	}
	switch {
	case effect.Deadly:
		if p.TakeDamage(effect.Damage) {
			playSound(sounds, cfg.SoundHurt)
		}
		p.Position = p.Checkpoint
		p.Velocity.X = 0
		p.Velocity.Y = 0
	case effect.HasDamage() && p.DamageTimer <= 0:
		if p.TakeDamage(effect.Damage) {
			playSound(sounds, cfg.SoundHurt)
		}
		p.DamageTimer = cfg.World.DamageTileCooldown
	}
}

func soundQueue(w donburi.World) *components.SoundQueueData {
	if e, ok := components.SoundQueue.First(w); ok {
		return components.SoundQueue.Get(e)
	}
	return nil
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
