package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagLimit       int
	flagClears      bool
	flagInteractive bool
	flagReset       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [campaign|endless]",
	Short: "Show high scores or best stage clears",
	Long: `Display the best runs for a mode, or with --clears the best clear of
every stage.

Examples:
  platformer scores
  platformer scores endless --limit 20
  platformer scores --clears
  platformer scores -i
  platformer scores endless --reset`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClears, "clears", false, "Show the best clear of each stage instead of runs")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in the terminal UI")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete all runs and stage clears of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID, err := modeID(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Scores cleared for %s\n", gameID)
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height, flagClears); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		return
	}

	if flagClears {
		printClears(store, gameID, game.Title())
		return
	}
	printScores(store, gameID, game.Title())
}

func printScores(store *storage.Store, gameID, title string) {
	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Average: %.0f  Stages cleared: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.Clears)
	}
}

func printClears(store *storage.Store, gameID, title string) {
	clears, err := store.BestClears(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stage clears: %v\n", err)
		return
	}

	fmt.Printf("Best Clears - %s\n", title)
	fmt.Println()

	if len(clears) == 0 {
		fmt.Println("No stages cleared yet.")
		return
	}

	fmt.Printf("  %-16s  %-8s  %-5s  %-4s  %-7s  %s\n", "Stage", "Score", "Coins", "Time", "Steps", "Date")
	fmt.Printf("  %-16s  %-8s  %-5s  %-4s  %-7s  %s\n", "-----", "-----", "-----", "----", "-----", "----")
	for _, c := range clears {
		fmt.Printf("  %-16s  %-8d  %-5d  %-4d  %-7d  %s\n",
			c.LevelID, c.Score, c.Coins, c.TimeLeft, c.Steps, c.CreatedAt.Format("2006-01-02 15:04"))
	}
}
