package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/parrybound/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// MenuScene displays the level select
type MenuScene struct {
	sceneChanger SceneChanger
	svc          *Services
	selectUI     *ui.LevelSelectUI
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, svc *Services) *MenuScene {
	return &MenuScene{sceneChanger: sc, svc: svc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.svc.handleSettingsKeys()
	ms.selectUI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.selectUI == nil {
		return
	}
	ms.selectUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.selectUI = ui.NewLevelSelectUI(
		ms.entries(),
		ms.svc.Persistence.HasProgress(),
		func(index int) {
			ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger, ms.svc, index))
		},
		func() {
			ms.sceneChanger.ChangeScene(NewContinueScene(ms.sceneChanger, ms.svc))
		},
		ms.sceneChanger.Quit,
	)
}

// entries builds the level list from saved progress and run history.
func (ms *MenuScene) entries() []ui.LevelEntry {
	progress, err := ms.svc.Persistence.LoadProgress()
	if err != nil {
		log.Warn("Saved progress unreadable, showing a fresh level list", "err", err)
	}

	entries := make([]ui.LevelEntry, len(ms.svc.Levels))
	for i, lvl := range ms.svc.Levels {
		entries[i] = ui.LevelEntry{Index: i, Title: lvl.Title, BestDeaths: -1}
		if progress != nil {
			entries[i].Completed = progress.LevelCompleted[i]
		}
		if ms.svc.History == nil {
			continue
		}
		best, err := ms.svc.History.BestForLevel(i)
		if err != nil {
			log.Warn("Could not read run history", "level", i, "err", err)
			continue
		}
		if best != nil {
			entries[i].BestDeaths = best.Deaths
		}
	}
	return entries
}
