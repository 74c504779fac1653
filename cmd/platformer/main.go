// platformer is a side-scrolling tile platformer for the terminal.
//
// Usage:
//
//	platformer list              - List game modes and bundled levels
//	platformer play [mode]       - Play the campaign or endless mode
//	platformer menu              - Start the interactive menu
//	platformer serve             - Start SSH server for remote play
//	platformer scores [mode]     - Show high scores or best stage clears
//	platformer gen               - Print a generated stage as a level file
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible endless runs
//	--db <path>          - Set database path (default: ~/.platformer/scores.db)
//	--levels-dir <path>  - Directory of extra level files
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Log destination for terminal play
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var (
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagLevelsDir string
	flagLogLevel  string
	flagLogFile   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "A tile platformer in your terminal",
	Long: `Platformer is a side-scrolling jump-and-run played in the terminal.

Run through 32 generated stages of the campaign, survive as long as you
can in endless mode, or play level files you wrote yourself.

Available commands:
  list     - Show game modes and levels
  play     - Play directly
  menu     - Interactive menu
  serve    - Start SSH server for remote play
  scores   - View high scores and stage clears
  gen      - Print a generated stage as a level file

Examples:
  platformer play
  platformer play endless --difficulty hard
  platformer play --world 4 --stage 2
  platformer play --level ./my-level.yaml --watch
  platformer serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "~/.platformer/levels", "Directory of extra level files")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.platformer/platformer.log", "Log file used while the game owns the terminal")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(genCmd)
}

// expandPath replaces a leading ~ with the home directory.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// fileLogger opens the log file for commands that take over the terminal.
// The returned func closes the file. If the file cannot be opened, logs are
// dropped.
func fileLogger(prefix string) (*log.Logger, func()) {
	path := expandPath(flagLogFile)
	level := parseLogLevel()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			logger := log.NewWithOptions(f, log.Options{
				ReportTimestamp: true,
				Prefix:          prefix,
				Level:           level,
			})
			return logger, func() { _ = f.Close() }
		}
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
	}

	logger := log.New(io.Discard)
	return logger, func() {}
}

// stderrLogger logs to stderr, for commands that do not draw a UI.
func stderrLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           parseLogLevel(),
	})
}

func parseLogLevel() log.Level {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: unknown log level %q, using info\n", flagLogLevel)
		return log.InfoLevel
	}
	return level
}

// loadLevels returns the bundled levels followed by those in --levels-dir.
// Broken level files are reported and skipped.
func loadLevels(logger *log.Logger) []*sim.Level {
	all, err := levels.Bundled()
	if err != nil {
		logger.Error("cannot load bundled levels", "err", err)
	}

	extra, err := levels.Loader{Root: expandPath(flagLevelsDir)}.LoadAll()
	if err != nil {
		logger.Warn("some level files were skipped", "dir", flagLevelsDir, "err", err)
	}
	return append(all, extra...)
}

// findLevel resolves --level: a level file path, or the id of a bundled
// level or one in --levels-dir.
func findLevel(ref string) (*sim.Level, string, error) {
	if _, err := os.Stat(ref); err == nil {
		lvl, err := levels.Loader{}.LoadFile(ref)
		return lvl, ref, err
	}
	if lvl, err := levels.BundledByID(ref); err == nil {
		return lvl, "", nil
	}
	lvl, err := levels.Loader{Root: expandPath(flagLevelsDir)}.LoadByID(ref)
	return lvl, "", err
}

// modeID maps a mode argument, either a short name or a registered game
// id, to its game id.
func modeID(args []string) (string, error) {
	if len(args) == 0 {
		return platformer.CampaignID, nil
	}
	id := strings.ToLower(args[0])
	switch id {
	case "campaign":
		id = platformer.CampaignID
	case "endless":
		id = platformer.EndlessID
	}
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown mode %q (want campaign or endless)", args[0])
	}
	return id, nil
}
