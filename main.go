// parrybound is a single-player platformer about parrying bullet-hell volleys.
//
// Usage:
//
//	parrybound               - Open the level select
//	parrybound levels        - List the bundled levels
//	parrybound stats         - Show recently completed runs
//
// Global flags:
//
//	--db <path>       - Run history database (default: ~/.parrybound/history.db)
//	--tuning <path>   - YAML overrides for the game constants
//	--watch           - Reload the tuning file whenever it changes
//	--level <n>       - Start directly at level n (1-based)
//	--debug           - Debug logging and hitbox outlines
package main

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/automoto/parrybound/assets"
	"github.com/automoto/parrybound/config"
	"github.com/automoto/parrybound/fonts"
	"github.com/automoto/parrybound/scenes"
	"github.com/automoto/parrybound/storage"
	"github.com/automoto/parrybound/systems"
	"github.com/automoto/parrybound/systems/sfx"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

const appName = "parrybound"

var (
	// Global flags
	flagDBPath  string
	flagTuning  string
	flagWatch   bool
	flagLevel   int
	flagSkip    bool
	flagDebug   bool
	flagNoStore bool
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Quit() {
	g.quit = true
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Parrybound - a platformer about parrying bullets back at their spawners",
	Long: `Parrybound is a 2D platformer. Spawners fill each level with bullet
patterns; slow down while moving against a bullet to parry it back, and
reach the goal tile to clear the level.

Examples:
  parrybound
  parrybound --level 2
  parrybound --tuning configs/tuning.yaml --watch
  parrybound stats`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagDebug {
			log.SetLevel(log.DebugLevel)
		}
	},
	RunE: runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath(), "Path to the run history database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Debug logging and hitbox outlines")

	rootCmd.Flags().StringVar(&flagTuning, "tuning", "", "YAML file overriding the game constants")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the tuning file when it changes")
	rootCmd.Flags().IntVar(&flagLevel, "level", 0, "Start directly at this level (1-based)")
	rootCmd.Flags().BoolVar(&flagSkip, "skip-menu", false, "Resume the saved run without showing the menu")
	rootCmd.Flags().BoolVar(&flagNoStore, "no-history", false, "Do not record completed runs")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(statsCmd)
}

func runGame(cmd *cobra.Command, args []string) error {
	config.Debug.SkipMenu = flagSkip
	config.Debug.DrawHitboxes = flagDebug

	tuning, source, err := config.LoadTuning(flagTuning)
	if err != nil {
		return err
	}
	tuning.Apply()
	if source != "" {
		log.Info("Tuning loaded", "path", source)
	}

	levels, err := assets.LoadLevels()
	if err != nil {
		return err
	}
	if flagLevel < 0 || flagLevel > len(levels) {
		return fmt.Errorf("--level must be between 1 and %d", len(levels))
	}

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	svc := &scenes.Services{
		Levels:   levels,
		Sound:    sfx.NewPlayer(),
		Settings: scenes.DefaultSettings(),
	}

	// Initialize persistence and load saved settings
	persistence, err := systems.InitPersistence(appName)
	if err != nil {
		log.Warn("Progress will not be saved", "err", err)
	}
	svc.Persistence = persistence
	if saved, err := persistence.LoadSettings(); err == nil && saved != nil {
		svc.Settings = *saved
	}

	if !flagNoStore {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			log.Warn("Run history disabled", "err", err)
		} else {
			defer store.Close()
			svc.History = store
		}
	}

	if flagWatch {
		if source == "" {
			return errors.New("--watch needs a tuning file")
		}
		watcher, err := config.WatchTuning(source)
		if err != nil {
			return fmt.Errorf("watch %s: %w", source, err)
		}
		defer watcher.Close()
		svc.Tuning = watcher
		log.Info("Watching tuning file", "path", source)
	}

	ebiten.SetWindowTitle("Parrybound")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)
	svc.ApplySettings()

	g := &Game{}
	switch {
	case flagLevel > 0:
		g.scene = scenes.NewPlatformerScene(g, svc, flagLevel-1)
	case config.Debug.SkipMenu:
		g.scene = scenes.NewContinueScene(g, svc)
	default:
		g.scene = scenes.NewMenuScene(g, svc)
	}

	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
