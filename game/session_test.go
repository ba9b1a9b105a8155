package game

import (
	"errors"
	"math/rand"
	"testing"

	cfg "github.com/automoto/parrybound/config"
	"github.com/automoto/parrybound/level"
	"github.com/automoto/parrybound/storage"
	"github.com/automoto/parrybound/systems"
	"github.com/automoto/parrybound/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

const tick = 1.0 / 60

type memStore struct {
	saved *Progress
	saves int
	err   error
}

func (m *memStore) LoadProgress() (*Progress, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.saved == nil {
		return nil, nil
	}
	cp := *m.saved
	return &cp, nil
}

func (m *memStore) SaveProgress(p *Progress) error {
	cp := *p
	m.saved = &cp
	m.saves++
	return nil
}

type fakeHistory struct {
	runs []storage.RunRecord
	err  error
}

func (h *fakeHistory) RecordRun(run storage.RunRecord) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	h.runs = append(h.runs, run)
	return "run-id", nil
}

type recordingSink struct {
	played []cfg.SoundID
}

func (s *recordingSink) Play(id cfg.SoundID) {
	s.played = append(s.played, id)
}

// goalLevel is a 20x15 level with a grass floor and a goal in column 5.
func goalLevel(name string) *level.Level {
	lvl := level.New(name, 20, 15)
	for x := 0; x < lvl.Width; x++ {
		lvl.SetTile(x, 14, level.Grass)
	}
	lvl.SetTile(5, 13, level.Goal)
	lvl.Spawn = dmath.NewVec2(160, 675)
	return lvl
}

func standingAt(tx int) dmath.Vec2 {
	ts := cfg.Level.TileSize
	return dmath.NewVec2(float64(tx)*ts+(ts-cfg.Player.Size)/2, 14*ts-cfg.Player.Size)
}

type harness struct {
	session *Session
	store   *memStore
	history *fakeHistory
	sink    *recordingSink
}

func newHarness(t *testing.T, levels ...*level.Level) *harness {
	t.Helper()
	h := &harness{
		store:   &memStore{},
		history: &fakeHistory{},
		sink:    &recordingSink{},
	}
	w := world.New(
		world.WithLevels(levels),
		world.WithRand(rand.New(rand.NewSource(7))),
	)
	h.session = NewSession(w,
		WithProgressStore(h.store),
		WithHistory(h.history),
		WithSoundSink(h.sink),
	)
	return h
}

func (h *harness) step(n int, actions cfg.Actions) {
	for i := 0; i < n; i++ {
		h.session.Update(tick, actions)
	}
}

func (h *harness) reachGoal(t *testing.T) {
	t.Helper()
	h.step(1, cfg.Actions{})
	h.session.World().Player().Position = standingAt(5)
	h.step(1, cfg.Actions{})
	require.Equal(t, StateLevelComplete, h.session.State())
}

func (h *harness) kill() {
	h.session.World().Player().Health = 0
	h.step(1, cfg.Actions{})
}

func TestStartErrors(t *testing.T) {
	empty := newHarness(t)
	assert.ErrorIs(t, empty.session.Start(0), ErrNoLevels)
	assert.ErrorIs(t, empty.session.Continue(), ErrNoLevels)

	h := newHarness(t, goalLevel("a"))
	assert.ErrorIs(t, h.session.Start(3), level.ErrLevelIndex)
	require.NoError(t, h.session.Start(0))
	assert.Equal(t, StatePlaying, h.session.State())
}

func TestPauseTogglesOnPress(t *testing.T) {
	h := newHarness(t, goalLevel("a"))
	require.NoError(t, h.session.Start(0))

	pause := cfg.Actions{}.With(cfg.ActionPause)
	h.step(1, pause)
	assert.Equal(t, StatePaused, h.session.State())

	// Holding pause does not toggle again
	h.step(10, pause)
	assert.Equal(t, StatePaused, h.session.State())
	assert.Zero(t, h.session.LevelTime())

	h.step(1, cfg.Actions{})
	h.step(1, pause)
	assert.Equal(t, StatePlaying, h.session.State())
}

func TestRestartFromPause(t *testing.T) {
	lvl := goalLevel("a")
	h := newHarness(t, lvl)
	require.NoError(t, h.session.Start(0))

	h.step(30, cfg.Actions{})
	h.kill()
	h.session.Progress().CurrentLevelScore = 40
	h.step(200, cfg.Actions{})
	require.Equal(t, StatePlaying, h.session.State())

	player := h.session.World().Player()
	player.Position = standingAt(12)
	player.Checkpoint = standingAt(12)

	h.step(1, cfg.Actions{}.With(cfg.ActionPause))
	h.step(1, cfg.Actions{})
	h.step(1, cfg.Actions{}.With(cfg.ActionRestart))

	assert.Equal(t, StatePlaying, h.session.State())
	assert.Zero(t, h.session.LevelTime())
	assert.Zero(t, h.session.Progress().CurrentLevelScore)
	assert.Equal(t, 1, h.session.Progress().DeathCount)
	restarted := h.session.World().Player()
	assert.Equal(t, lvl.Spawn, restarted.Position)
	assert.Equal(t, lvl.Spawn, restarted.Checkpoint)
}

func TestDeathRespawnsAfterDelay(t *testing.T) {
	h := newHarness(t, goalLevel("a"))
	require.NoError(t, h.session.Start(0))
	h.session.Progress().CurrentLevelScore = 40

	h.kill()
	require.Equal(t, StateDead, h.session.State())
	p := h.session.Progress()
	assert.Equal(t, 1, p.DeathCount)
	assert.Equal(t, 1, p.LevelDeaths[0])
	assert.Zero(t, p.CurrentLevelScore, "dying forfeits the level score")

	h.step(120, cfg.Actions{})
	assert.Equal(t, StateDead, h.session.State())
	h.step(1, cfg.Actions{})
	assert.Equal(t, StatePlaying, h.session.State())

	player := h.session.World().Player()
	assert.Equal(t, player.MaxHealth, player.Health)
	require.NotNil(t, h.store.saved)
	assert.Equal(t, player.MaxHealth, h.store.saved.Health)
	assert.Equal(t, 1, h.store.saved.DeathCount)
}

func TestJumpSkipsDeathScreen(t *testing.T) {
	h := newHarness(t, goalLevel("a"))
	require.NoError(t, h.session.Start(0))

	h.kill()
	h.step(1, cfg.Actions{}.With(cfg.ActionJump))
	assert.Equal(t, StatePlaying, h.session.State())
	assert.True(t, h.session.World().PlayerAlive())
}

func TestLevelCompleteSavesAndRecordsRun(t *testing.T) {
	h := newHarness(t, goalLevel("first"), goalLevel("second"))
	require.NoError(t, h.session.Start(0))
	h.session.Progress().CurrentLevelScore = 30
	h.reachGoal(t)

	p := h.session.Progress()
	assert.True(t, p.LevelCompleted[0])
	assert.Equal(t, 1, p.LevelsCompleted)
	assert.Equal(t, 30, p.TotalScore)
	assert.Equal(t, 0, p.CurrentLevel)

	require.NotNil(t, h.store.saved)
	assert.Equal(t, 1, h.store.saved.CurrentLevel, "the save resumes at the next level")
	assert.Contains(t, h.sink.played, cfg.SoundLevelComplete)

	require.Len(t, h.history.runs, 1)
	run := h.history.runs[0]
	assert.Equal(t, 0, run.Level)
	assert.Equal(t, "first", run.LevelName)
	assert.Equal(t, 30, run.Score)
	assert.Positive(t, run.Duration)
	assert.Equal(t, "run-id", h.session.LastRunID())

	h.step(1, cfg.Actions{}.With(cfg.ActionJump))
	assert.Equal(t, StatePlaying, h.session.State())
	assert.Equal(t, 1, h.session.World().LevelIndex())
	assert.Equal(t, 1, h.session.Progress().CurrentLevel)
	assert.Zero(t, h.session.Progress().CurrentLevelScore)
}

func TestLevelCompleteAdvancesAfterDelay(t *testing.T) {
	h := newHarness(t, goalLevel("first"), goalLevel("second"))
	require.NoError(t, h.session.Start(0))
	h.reachGoal(t)

	h.step(180, cfg.Actions{})
	assert.Equal(t, StateLevelComplete, h.session.State())
	h.step(1, cfg.Actions{})
	assert.Equal(t, StatePlaying, h.session.State())
	assert.Equal(t, 1, h.session.World().LevelIndex())
}

func TestLastLevelCompletesGame(t *testing.T) {
	h := newHarness(t, goalLevel("only"))
	require.NoError(t, h.session.Start(0))
	h.reachGoal(t)

	h.step(1, cfg.Actions{}.With(cfg.ActionJump))
	assert.Equal(t, StateGameComplete, h.session.State())
	assert.False(t, h.session.World().Loaded())

	// Nothing moves once the game is complete
	h.step(10, cfg.Actions{}.With(cfg.ActionPause))
	assert.Equal(t, StateGameComplete, h.session.State())
}

func TestCompletionCountedOnce(t *testing.T) {
	h := newHarness(t, goalLevel("first"), goalLevel("second"))
	h.store.saved = &Progress{
		CurrentLevel:    0,
		LevelDeaths:     map[int]int{},
		LevelCompleted:  map[int]bool{0: true},
		LevelsCompleted: 1,
		TotalScore:      100,
	}
	require.NoError(t, h.session.Continue())
	h.session.Progress().CurrentLevelScore = 20
	h.reachGoal(t)

	p := h.session.Progress()
	assert.Equal(t, 1, p.LevelsCompleted)
	assert.Equal(t, 120, p.TotalScore)
}

func TestContinue(t *testing.T) {
	tests := []struct {
		name      string
		saved     *Progress
		wantLevel int
		wantHP    int
	}{
		{"no save", nil, 0, cfg.Player.MaxHealth},
		{"saved level", &Progress{CurrentLevel: 1, Health: 1}, 1, 1},
		{"past the catalog", &Progress{CurrentLevel: 5, Health: 2}, 1, 2},
		{"health above max", &Progress{CurrentLevel: 0, Health: 99}, 0, cfg.Player.MaxHealth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, goalLevel("first"), goalLevel("second"))
			if tt.saved != nil {
				tt.saved.LevelDeaths = map[int]int{}
				tt.saved.LevelCompleted = map[int]bool{}
			}
			h.store.saved = tt.saved

			require.NoError(t, h.session.Continue())
			assert.Equal(t, tt.wantLevel, h.session.World().LevelIndex())
			assert.Equal(t, tt.wantHP, h.session.World().Player().Health)
		})
	}
}

func TestContinueLoadError(t *testing.T) {
	h := newHarness(t, goalLevel("first"))
	h.store.err = errors.New("disk on fire")
	assert.Error(t, h.session.Continue())
}

func TestApplyPickupHeals(t *testing.T) {
	h := newHarness(t, goalLevel("first"))
	require.NoError(t, h.session.Start(0))
	player := h.session.World().Player()
	player.Health = 1

	per := cfg.Collectible.PointsPerHeal
	h.session.applyPickup(systems.Pickup{Count: 3, HealthPoints: 2*per + 5, Score: 30})

	p := h.session.Progress()
	assert.Equal(t, 30, p.CurrentLevelScore)
	assert.Equal(t, 3, player.Health)
	assert.Equal(t, 5, p.HealthPoints)

	// At full health points keep accumulating
	h.session.applyPickup(systems.Pickup{Count: 1, HealthPoints: per})
	assert.Equal(t, player.MaxHealth, player.Health)
	assert.Equal(t, per+5, p.HealthPoints)
}

func TestHistoryFailureDoesNotBlockCompletion(t *testing.T) {
	h := newHarness(t, goalLevel("first"), goalLevel("second"))
	h.history.err = errors.New("locked")
	require.NoError(t, h.session.Start(0))
	h.reachGoal(t)

	assert.Empty(t, h.session.LastRunID())
	assert.Equal(t, 1, h.store.saved.CurrentLevel)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "level complete", StateLevelComplete.String())
	assert.Equal(t, "state(42)", State(42).String())
}
