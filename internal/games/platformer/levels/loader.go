package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

// Loader reads level files from a directory tree.
type Loader struct {
	Root string
}

// LoadFile reads a single level file. A level without an id is named after
// its file.
func (l Loader) LoadFile(path string) (*sim.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: cannot read %s: %w", path, err)
	}
	lvl, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if lvl.ID == "" {
		lvl.ID = idFromPath(path)
		if lvl.Name == "" {
			lvl.Name = lvl.ID
		}
	}
	return lvl, nil
}

// LoadAll reads every level file under Root, sorted by id. Files that fail
// to load are skipped and reported together in the returned error, next to
// the levels that did load. A missing Root yields no levels and no error.
func (l Loader) LoadAll() ([]*sim.Level, error) {
	if l.Root == "" {
		return nil, nil
	}
	if _, err := os.Stat(l.Root); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	var out []*sim.Level
	var errs []error
	err := filepath.WalkDir(l.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsLevelFile(path) {
			return nil
		}
		lvl, err := l.LoadFile(path)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		out = append(out, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: cannot walk %s: %w", l.Root, err)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, errors.Join(errs...)
}

// LoadByID finds a level under Root by id.
func (l Loader) LoadByID(id string) (*sim.Level, error) {
	all, _ := l.LoadAll()
	for _, lvl := range all {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// IsLevelFile reports whether a path has a level file extension.
func IsLevelFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func idFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
