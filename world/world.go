// Package world runs one level of the platformer: the player, the tile grid,
// spawners and every pool, stepped once per tick without touching the screen.
package world

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/automoto/parrybound/components"
	cfg "github.com/automoto/parrybound/config"
	"github.com/automoto/parrybound/level"
	"github.com/automoto/parrybound/systems"
	"github.com/automoto/parrybound/systems/factory"
	"github.com/automoto/parrybound/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ErrNotLoaded is returned by operations that need a level when none is loaded.
var ErrNotLoaded = errors.New("no level loaded")

// SoundSink plays the sounds requested during a tick
type SoundSink interface {
	Play(id cfg.SoundID)
}

type Option func(*World)

func WithSoundSink(sink SoundSink) Option {
	return func(w *World) {
		w.sink = sink
	}
}

// WithRand sets the source used for burst speeds and collectible drops.
func WithRand(rng *rand.Rand) Option {
	return func(w *World) {
		w.rng = rng
	}
}

// WithLevels sets the catalog Load indexes into.
func WithLevels(levels []*level.Level) Option {
	return func(w *World) {
		w.levels = levels
	}
}

// World owns everything in the active level. It is not safe for concurrent use.
type World struct {
	levels []*level.Level
	sink   SoundSink
	rng    *rand.Rand

	entities    donburi.World
	level       *level.Level
	index       int
	player      *donburi.Entry
	completed   bool
	outOfBounds bool
}

func New(opts ...Option) *World {
	w := &World{index: -1}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return w
}

// Levels returns the level catalog
func (w *World) Levels() []*level.Level {
	return w.levels
}

// Load starts the catalog level at index.
func (w *World) Load(index int) error {
	if index < 0 || index >= len(w.levels) {
		return fmt.Errorf("%w: %d of %d", level.ErrLevelIndex, index, len(w.levels))
	}
	w.load(w.levels[index], index)
	return nil
}

// LoadLevel starts a level that is not part of the catalog.
func (w *World) LoadLevel(lvl *level.Level) {
	w.load(lvl, -1)
}

// Reload restarts the current level from its spawn point.
func (w *World) Reload() error {
	if w.level == nil {
		return ErrNotLoaded
	}
	w.load(w.level, w.index)
	return nil
}

func (w *World) load(lvl *level.Level, index int) {
	w.Unload()

	ecs := donburi.NewWorld()
	ts := int(cfg.Level.TileSize)
	factory.CreateSpace(ecs, int(lvl.PixelWidth()), int(lvl.PixelHeight()), ts, ts)
	factory.CreateLevel(ecs, lvl, index)
	factory.CreateInput(ecs)
	factory.CreatePools(ecs)
	factory.CreateRuntime(ecs, w.rng)
	factory.CreateProbe(ecs)
	spawners := factory.CreateSpawners(ecs, lvl)
	if _, ok := factory.CreateGoal(ecs, lvl); !ok {
		log.Warn("Level has no goal tile", "level", lvl.Name)
	}
	w.player = factory.CreatePlayer(ecs, lvl.Spawn)
	factory.CreateCamera(ecs, systems.CameraTarget(components.Player.Get(w.player), lvl))

	w.entities = ecs
	w.level = lvl
	w.index = index
	w.completed = false
	w.outOfBounds = false

	log.Info("Level loaded", "level", lvl.Name, "index", index, "spawners", spawners)
}

// Unload drops the active level and everything in it.
func (w *World) Unload() {
	w.entities = nil
	w.level = nil
	w.player = nil
	w.completed = false
	w.outOfBounds = false
}

func (w *World) Loaded() bool {
	return w.entities != nil
}

// Update advances the level by dt seconds with the actions held this tick.
// Nothing happens while no level is loaded. While the player is dead the
// level is frozen and only the death animation advances.
func (w *World) Update(dt float64, actions cfg.Actions) {
	if !w.Loaded() {
		return
	}
	if !w.PlayerAlive() {
		systems.UpdatePlayerAnimation(components.Player.Get(w.player), dt)
		return
	}
	ecs := w.entities

	if e, ok := components.Input.First(ecs); ok {
		components.Input.Get(e).Push(actions)
	}
	systems.UpdatePlayer(ecs, dt)
	systems.UpdatePhysics(ecs, dt)

	player := components.Player.Get(w.player)
	if systems.PlayerOutOfBounds(player, w.level) {
		w.outOfBounds = true
		player.Health = 0
		systems.UpdatePlayerAnimation(player, 0)
		w.queueSound(cfg.SoundDeath)
		w.flushSounds()
		return
	}

	systems.UpdateSpawners(ecs, dt)
	systems.UpdateBulletPool(ecs, dt)
	systems.UpdateCollectiblePool(ecs, dt)
	systems.UpdateParryEffectPool(ecs, dt)
	systems.UpdateCollisions(ecs)
	systems.SyncPlayerObject(ecs)
	systems.UpdateCamera(ecs)

	if !w.completed && systems.ReachedGoal(ecs) {
		w.completed = true
	}
	if !player.IsAlive() {
		systems.UpdatePlayerAnimation(player, 0)
		w.queueSound(cfg.SoundDeath)
	}
	w.flushSounds()
}

// CollectItems picks up every collectible touching the player and reports
// what was collected for the caller to apply.
func (w *World) CollectItems() systems.Pickup {
	if !w.Loaded() {
		return systems.Pickup{}
	}
	e, ok := components.CollectiblePool.First(w.entities)
	if !ok {
		return systems.Pickup{}
	}
	got := systems.CollectItems(components.CollectiblePool.Get(e), components.Player.Get(w.player).Hitbox())
	if got.Count > 0 {
		w.queueSound(cfg.SoundCollect)
		w.flushSounds()
	}
	return got
}

// ResetBullets clears bullets and parry effects and restores every spawner.
func (w *World) ResetBullets() {
	if !w.Loaded() {
		return
	}
	systems.ClearBullets(w.entities)
	systems.ResetSpawners(w.entities)
}

// Respawn revives the player at the last checkpoint and resets the bullets.
func (w *World) Respawn() error {
	if !w.Loaded() {
		return ErrNotLoaded
	}
	p := components.Player.Get(w.player)
	checkpoint := p.Checkpoint
	p.Reset(checkpoint)
	w.outOfBounds = false
	w.ResetBullets()
	systems.SyncPlayerObject(w.entities)
	return nil
}

func (w *World) LevelCompleted() bool {
	return w.completed
}

// IsPlayerOutOfBounds reports whether the player left the level this load.
func (w *World) IsPlayerOutOfBounds() bool {
	return w.outOfBounds
}

func (w *World) PlayerAlive() bool {
	if !w.Loaded() {
		return false
	}
	return components.Player.Get(w.player).IsAlive()
}

// Player returns the live player state, nil when no level is loaded.
func (w *World) Player() *components.PlayerData {
	if !w.Loaded() {
		return nil
	}
	return components.Player.Get(w.player)
}

func (w *World) Level() *level.Level {
	return w.level
}

// LevelIndex is the catalog index of the loaded level, -1 when loaded directly.
func (w *World) LevelIndex() int {
	return w.index
}

func (w *World) Camera() dmath.Vec2 {
	if !w.Loaded() {
		return dmath.Vec2{}
	}
	e, ok := components.Camera.First(w.entities)
	if !ok {
		return dmath.Vec2{}
	}
	return components.Camera.Get(e).Position
}

func (w *World) Bullets() []components.Bullet {
	if e, ok := w.pools(); ok {
		return components.BulletPool.Get(e).Live()
	}
	return nil
}

func (w *World) Collectibles() []components.Collectible {
	if e, ok := w.pools(); ok {
		return components.CollectiblePool.Get(e).Live()
	}
	return nil
}

func (w *World) ParryEffects() []components.ParryEffect {
	if e, ok := w.pools(); ok {
		return components.ParryEffectPool.Get(e).Live()
	}
	return nil
}

// Spawners returns every spawner in placement order, destroyed ones included.
func (w *World) Spawners() []*components.SpawnerData {
	if !w.Loaded() {
		return nil
	}
	var out []*components.SpawnerData
	tags.Spawner.Each(w.entities, func(e *donburi.Entry) {
		out = append(out, components.Spawner.Get(e))
	})
	sort.Slice(out, func(i, j int) bool {
		return out[i].Index < out[j].Index
	})
	return out
}

// FindNearestSpawner returns the active spawner closest to pos.
func (w *World) FindNearestSpawner(pos dmath.Vec2) (*components.SpawnerData, bool) {
	if !w.Loaded() {
		return nil, false
	}
	e, ok := systems.FindNearestSpawner(w.entities, pos)
	if !ok {
		return nil, false
	}
	return components.Spawner.Get(e), true
}

// Entities exposes the underlying donburi world for rendering.
func (w *World) Entities() donburi.World {
	return w.entities
}

func (w *World) pools() (*donburi.Entry, bool) {
	if !w.Loaded() {
		return nil, false
	}
	return components.BulletPool.First(w.entities)
}

func (w *World) queueSound(id cfg.SoundID) {
	if e, ok := components.SoundQueue.First(w.entities); ok {
		components.SoundQueue.Get(e).Push(id)
	}
}

func (w *World) flushSounds() {
	e, ok := components.SoundQueue.First(w.entities)
	if !ok {
		return
	}
	for _, id := range components.SoundQueue.Get(e).Drain() {
		if w.sink != nil {
			w.sink.Play(id)
		}
	}
}
