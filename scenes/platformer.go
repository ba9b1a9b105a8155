package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/parrybound/config"
	"github.com/automoto/parrybound/game"
	"github.com/automoto/parrybound/systems/controls"
	"github.com/automoto/parrybound/systems/render"
	"github.com/automoto/parrybound/world"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlatformerScene runs a play session and draws it
type PlatformerScene struct {
	sceneChanger SceneChanger
	svc          *Services
	levelIndex   int
	resume       bool

	session *game.Session
	banner  *render.Banner
	prev    cfg.Actions
	failed  bool
	once    sync.Once
}

// NewPlatformerScene starts a fresh run at the given level
func NewPlatformerScene(sc SceneChanger, svc *Services, levelIndex int) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, svc: svc, levelIndex: levelIndex}
}

// NewContinueScene resumes the saved run
func NewContinueScene(sc SceneChanger, svc *Services) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, svc: svc, resume: true}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	if ps.failed {
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger, ps.svc))
		return
	}

	ps.svc.applyTuning()
	ps.svc.handleSettingsKeys()

	actions := controls.Poll()
	pressed := func(id cfg.ActionID) bool {
		return actions[id] && !ps.prev[id]
	}
	defer func() { ps.prev = actions }()

	switch ps.session.State() {
	case game.StatePaused:
		if pressed(cfg.ActionMenuBack) {
			ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger, ps.svc))
			return
		}
	case game.StateGameComplete:
		if pressed(cfg.ActionJump) || pressed(cfg.ActionMenuSelect) {
			ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger, ps.svc))
			return
		}
	}

	dt := 1.0 / float64(cfg.C.TPS)
	ps.session.Update(dt, actions)
	ps.banner.Update(ps.session.State(), dt)
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.session == nil {
		return
	}
	render.DrawWorld(screen, ps.session.World())
	render.DrawHUD(screen, ps.session)
	render.DrawOverlay(screen, ps.session, ps.banner.Alpha())
}

func (ps *PlatformerScene) configure() {
	ps.svc.Sound.Preload()

	w := world.New(
		world.WithLevels(ps.svc.Levels),
		world.WithSoundSink(ps.svc.Sound),
	)
	opts := []game.Option{
		game.WithProgressStore(ps.svc.Persistence),
		game.WithSoundSink(ps.svc.Sound),
	}
	if ps.svc.History != nil {
		opts = append(opts, game.WithHistory(ps.svc.History))
	}
	ps.session = game.NewSession(w, opts...)
	ps.banner = render.NewBanner()

	var err error
	if ps.resume {
		err = ps.session.Continue()
	} else {
		err = ps.session.Start(ps.levelIndex)
	}
	if err != nil {
		log.Error("Could not start level", "level", ps.levelIndex, "resume", ps.resume, "err", err)
		ps.failed = true
	}
}
