// Package game drives a play session across levels: pausing, death and
// respawn, level completion, saved progress and run history.
package game

import (
	"errors"
	"fmt"
	"time"

	cfg "github.com/automoto/parrybound/config"
	"github.com/automoto/parrybound/storage"
	"github.com/automoto/parrybound/systems"
	"github.com/automoto/parrybound/world"
	"github.com/charmbracelet/log"
)

// State is the session's top-level mode
type State int

const (
	StatePlaying State = iota
	StatePaused
	StateDead
	StateLevelComplete
	StateGameComplete
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateDead:
		return "dead"
	case StateLevelComplete:
		return "level complete"
	case StateGameComplete:
		return "game complete"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// ErrNoLevels is returned when the level catalog is empty.
var ErrNoLevels = errors.New("no levels")

// Progress is the run state carried between levels and sessions
type Progress = systems.SavedGameProgress

// ProgressStore loads and saves progress between sessions.
// A nil progress with a nil error means nothing was saved.
type ProgressStore interface {
	LoadProgress() (*Progress, error)
	SaveProgress(p *Progress) error
}

// HistoryRecorder keeps a record of completed levels
type HistoryRecorder interface {
	RecordRun(run storage.RunRecord) (string, error)
}

type Option func(*Session)

func WithProgressStore(store ProgressStore) Option {
	return func(s *Session) {
		s.store = store
	}
}

func WithHistory(history HistoryRecorder) Option {
	return func(s *Session) {
		s.history = history
	}
}

// WithSoundSink sets where session-level sounds such as level completion play.
func WithSoundSink(sink world.SoundSink) Option {
	return func(s *Session) {
		s.sink = sink
	}
}

// Session is not safe for concurrent use.
type Session struct {
	world   *world.World
	store   ProgressStore
	history HistoryRecorder
	sink    world.SoundSink

	progress   *Progress
	state      State
	stateTimer float64
	levelTime  float64
	lastRunID  string
	prev       cfg.Actions
}

func NewSession(w *world.World, opts ...Option) *Session {
	s := &Session{
		world:    w,
		progress: systems.NewGameProgress(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins a fresh run at the catalog level index, discarding any progress in memory.
func (s *Session) Start(index int) error {
	s.progress = systems.NewGameProgress()
	return s.enter(index)
}

// Continue resumes saved progress. Without a saved game it starts at the first level.
// A saved level past the end of the catalog resumes at the last level.
func (s *Session) Continue() error {
	p, err := s.loadProgress()
	if err != nil {
		return err
	}
	if p == nil {
		return s.Start(0)
	}
	s.progress = p

	index := p.CurrentLevel
	if last := len(s.world.Levels()) - 1; index > last {
		index = last
	}
	if err := s.enter(index); err != nil {
		return err
	}
	if player := s.world.Player(); player != nil && p.Health > 0 {
		player.Health = min(p.Health, player.MaxHealth)
	}
	if player := s.world.Player(); player != nil {
		player.CanSpellCard = p.CanSpellCard
	}
	return nil
}

func (s *Session) enter(index int) error {
	if len(s.world.Levels()) == 0 {
		return ErrNoLevels
	}
	if err := s.world.Load(index); err != nil {
		return fmt.Errorf("enter level: %w", err)
	}
	s.progress.CurrentLevel = index
	s.progress.CurrentLevelScore = 0
	s.levelTime = 0
	s.setState(StatePlaying)
	return nil
}

// Restart reloads the current level from its spawn point. The level's score,
// checkpoint and clock start over; deaths already counted stay.
func (s *Session) Restart() error {
	if s.state == StateLevelComplete || s.state == StateGameComplete {
		return nil
	}
	if err := s.world.Reload(); err != nil {
		return fmt.Errorf("restart level: %w", err)
	}
	s.progress.CurrentLevelScore = 0
	s.levelTime = 0
	s.setState(StatePlaying)
	return nil
}

// Update advances the session by one tick with the actions held this tick.
func (s *Session) Update(dt float64, actions cfg.Actions) {
	defer func() { s.prev = actions }()
	pressed := func(id cfg.ActionID) bool {
		return actions[id] && !s.prev[id]
	}

	switch s.state {
	case StatePlaying:
		if pressed(cfg.ActionPause) {
			s.setState(StatePaused)
			return
		}
		s.levelTime += dt
		s.world.Update(dt, actions)
		s.applyPickup(s.world.CollectItems())

		if !s.world.PlayerAlive() {
			s.onDeath()
			return
		}
		if s.world.LevelCompleted() {
			s.onLevelComplete()
		}

	case StatePaused:
		switch {
		case pressed(cfg.ActionPause):
			s.setState(StatePlaying)
		case pressed(cfg.ActionRestart):
			if err := s.Restart(); err != nil {
				log.Error("Could not restart level", "err", err)
			}
		}

	case StateDead:
		s.stateTimer += dt
		s.world.Update(dt, cfg.Actions{})
		if s.stateTimer >= cfg.World.RespawnDelay || pressed(cfg.ActionJump) {
			s.respawn()
		}

	case StateLevelComplete:
		s.stateTimer += dt
		if s.stateTimer >= cfg.World.LevelCompleteDelay || pressed(cfg.ActionJump) {
			s.advance()
		}

	case StateGameComplete:
	}
}

// applyPickup adds collected score and converts every PointsPerHeal health
// points into one health while the player is hurt.
func (s *Session) applyPickup(got systems.Pickup) {
	if got.Count == 0 {
		return
	}
	s.progress.CurrentLevelScore += got.Score
	s.progress.HealthPoints += got.HealthPoints

	player := s.world.Player()
	if player == nil {
		return
	}
	per := cfg.Collectible.PointsPerHeal
	for per > 0 && s.progress.HealthPoints >= per && player.Health < player.MaxHealth {
		s.progress.HealthPoints -= per
		player.Health++
	}
}

func (s *Session) onDeath() {
	s.progress.DeathCount++
	s.progress.LevelDeaths[s.progress.CurrentLevel]++
	s.progress.CurrentLevelScore = 0
	log.Info("Player died",
		"level", s.progress.CurrentLevel,
		"deaths", s.progress.LevelDeaths[s.progress.CurrentLevel],
		"outOfBounds", s.world.IsPlayerOutOfBounds())
	s.setState(StateDead)
}

func (s *Session) respawn() {
	if err := s.world.Respawn(); err != nil {
		log.Error("Respawn failed", "err", err)
		return
	}
	s.setState(StatePlaying)
	s.save()
}

func (s *Session) onLevelComplete() {
	p := s.progress
	if !p.LevelCompleted[p.CurrentLevel] {
		p.LevelCompleted[p.CurrentLevel] = true
		p.LevelsCompleted++
	}
	p.TotalScore += p.CurrentLevelScore

	completed := p.CurrentLevel
	p.CurrentLevel = completed + 1
	s.save()
	p.CurrentLevel = completed

	s.play(cfg.SoundLevelComplete)
	s.recordRun()
	log.Info("Level complete",
		"level", completed,
		"score", p.CurrentLevelScore,
		"deaths", p.LevelDeaths[completed],
		"time", time.Duration(s.levelTime*float64(time.Second)).Round(time.Millisecond))
	s.setState(StateLevelComplete)
}

func (s *Session) advance() {
	next := s.progress.CurrentLevel + 1
	if next >= len(s.world.Levels()) {
		s.world.Unload()
		s.progress.CurrentLevel = next
		s.progress.CurrentLevelScore = 0
		s.setState(StateGameComplete)
		log.Info("Game complete", "score", s.progress.TotalScore, "deaths", s.progress.DeathCount)
		return
	}
	if err := s.enter(next); err != nil {
		log.Error("Could not load next level", "level", next, "err", err)
	}
}

func (s *Session) recordRun() {
	if s.history == nil {
		return
	}
	name := ""
	if lvl := s.world.Level(); lvl != nil {
		name = lvl.Name
	}
	id, err := s.history.RecordRun(storage.RunRecord{
		Level:     s.progress.CurrentLevel,
		LevelName: name,
		Deaths:    s.progress.LevelDeaths[s.progress.CurrentLevel],
		Score:     s.progress.CurrentLevelScore,
		Duration:  time.Duration(s.levelTime * float64(time.Second)),
	})
	if err != nil {
		log.Warn("Could not record run", "err", err)
		return
	}
	s.lastRunID = id
}

func (s *Session) save() {
	if s.store == nil {
		return
	}
	if player := s.world.Player(); player != nil {
		s.progress.Health = player.Health
		s.progress.CanSpellCard = player.CanSpellCard
	}
	if err := s.store.SaveProgress(s.progress); err != nil {
		log.Warn("Could not save progress", "err", err)
	}
}

func (s *Session) loadProgress() (*Progress, error) {
	if s.store == nil {
		return nil, nil
	}
	p, err := s.store.LoadProgress()
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	return p, nil
}

func (s *Session) play(id cfg.SoundID) {
	if s.sink != nil {
		s.sink.Play(id)
	}
}

func (s *Session) setState(state State) {
	s.state = state
	s.stateTimer = 0
}

func (s *Session) State() State {
	return s.state
}

// StateTime is how long the session has been in its current state, in seconds.
func (s *Session) StateTime() float64 {
	return s.stateTimer
}

// Progress returns the live progress. Callers must not keep it across Start.
func (s *Session) Progress() *Progress {
	return s.progress
}

func (s *Session) World() *world.World {
	return s.world
}

// LevelTime is the time spent playing the current level, paused and dead time excluded.
func (s *Session) LevelTime() time.Duration {
	return time.Duration(s.levelTime * float64(time.Second))
}

// LastRunID is the history id of the most recently recorded run, empty if none.
func (s *Session) LastRunID() string {
	return s.lastRunID
}
