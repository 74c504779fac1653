package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

//go:embed data/*.yaml
var bundledFS embed.FS

// Bundled returns the levels shipped with the game, sorted by id.
func Bundled() ([]*sim.Level, error) {
	entries, err := fs.ReadDir(bundledFS, "data")
	if err != nil {
		return nil, fmt.Errorf("levels: cannot list bundled levels: %w", err)
	}

	out := make([]*sim.Level, 0, len(entries))
	for _, e := range entries {
		name := path.Join("data", e.Name())
		data, err := bundledFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("levels: cannot read %s: %w", name, err)
		}
		lvl, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if lvl.ID == "" {
			lvl.ID = idFromPath(name)
		}
		out = append(out, lvl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// BundledByID returns one bundled level.
func BundledByID(id string) (*sim.Level, error) {
	all, err := Bundled()
	if err != nil {
		return nil, err
	}
	for _, lvl := range all {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}
