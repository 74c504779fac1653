package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes and levels",
	Long: `Shows the game modes and every level that can be played with
'platformer play --level <id>': the bundled ones and those found in
--levels-dir.`,
	Run: runList,
}

func runList(_ *cobra.Command, _ []string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "Modes:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  ID\tTitle")
	fmt.Fprintln(w, "  --\t-----")
	for _, g := range registry.List() {
		fmt.Fprintf(w, "  %s\t%s\n", g.ID, g.Title)
	}
	fmt.Fprintln(w)

	all := loadLevels(log.New(io.Discard))
	if len(all) == 0 {
		fmt.Fprintln(w, "No levels found.")
		_ = w.Flush()
		return
	}

	fmt.Fprintln(w, "Levels:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  ID\tName\tTheme\tSize")
	fmt.Fprintln(w, "  --\t----\t-----\t----")
	for _, l := range all {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%dx%d\n", l.ID, l.Name, l.Theme, l.Grid.Width(), l.Grid.Height())
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'platformer play --level <id>' to play a level.")
	_ = w.Flush()
}
