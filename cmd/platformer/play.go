package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWorld      int
	flagStage      int
	flagLevel      string
	flagWatch      bool
)

var playCmd = &cobra.Command{
	Use:   "play [campaign|endless]",
	Short: "Play the campaign or endless mode",
	Long: `Start playing right away, without the menu.

Controls:
  ←/→ or A/D     - Walk
  Shift+←/→      - Run
  Z              - Toggle run
  Space/↑/W/X    - Jump (hold for higher jumps)
  F/C            - Throw fireball (with fire power)
  P/Esc          - Pause
  R              - Restart (after game over)
  B              - Leave (when paused or game over)
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - More time and lives, slower enemies
  normal - The config file's settings
  hard   - Less time, faster enemies, endless mode starts harder
  fixed  - Endless mode never gets harder

Examples:
  platformer play
  platformer play endless --difficulty hard
  platformer play --world 3 --stage 1
  platformer play --level first-steps
  platformer play --level ./my-level.yaml --watch
  platformer play --config ./my-physics.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagWorld, "world", 1, "Campaign world to start in (1-8)")
	playCmd.Flags().IntVar(&flagStage, "stage", 1, "Campaign stage to start in (1-4)")
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Play a single level: a file path or a level id")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the --level file whenever it changes")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID, err := modeID(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := fileLogger("platformer")
	defer closeLog()

	platformer.SetConfigPath(flagConfig)
	platformer.SetDifficultyPreset(flagDifficulty)
	platformer.SetLogger(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	pg, _ := game.(*platformer.Game)

	var watchPath string
	if pg != nil {
		pg.StartAt(flagWorld, flagStage)
		if flagLevel != "" {
			lvl, path, lvlErr := findLevel(flagLevel)
			if lvlErr != nil {
				fmt.Fprintf(os.Stderr, "Error loading level: %v\n", lvlErr)
				os.Exit(1)
			}
			pg.UseLevel(lvl)
			watchPath = path
		}
	}
	if flagWatch && watchPath == "" {
		fmt.Fprintln(os.Stderr, "Warning: --watch needs --level with a file path, not watching")
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	cfg := core.DefaultConfig()
	cfg.ScreenW = width
	cfg.ScreenH = height
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	// Continue without storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	var attach func(*tea.Program)
	var watcher *levels.Watcher
	if flagWatch && watchPath != "" {
		watcher, err = levels.NewWatcher(levels.DefaultDebounce, watchPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot watch %s: %v\n", watchPath, err)
		} else {
			attach = func(p *tea.Program) { go forwardReloads(watcher, p, logger) }
		}
	}

	runErr := tui.Run(game, store, logger, cfg, attach)

	if watcher != nil {
		_ = watcher.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// forwardReloads reloads changed level files into the running program.
// A file that fails to parse is logged and the current level is kept.
func forwardReloads(w *levels.Watcher, p *tea.Program, logger *log.Logger) {
	for {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return
			}
			lvl, err := levels.Loader{}.LoadFile(path)
			if err != nil {
				logger.Warn("level reload failed", "path", path, "err", err)
				continue
			}
			logger.Info("level reloaded", "path", path, "id", lvl.ID)
			p.Send(tui.LevelReloadMsg{Level: lvl})
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Warn("level watcher error", "err", err)
		}
	}
}
