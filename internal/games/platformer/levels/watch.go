package levels

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a file must stay quiet before a change is
// reported. Editors often save in several writes.
const DefaultDebounce = 150 * time.Millisecond

// Watcher reports changes to level files. Events carries the cleaned path of
// each changed file once its writes have settled.
type Watcher struct {
	Events chan string
	Errors chan error

	fs       *fsnotify.Watcher
	files    map[string]bool // Watched single files; empty means any level file
	debounce time.Duration
	closeCh  chan struct{}
	once     sync.Once
}

// NewWatcher watches level files and directories. A file path is watched
// through its directory so that editors replacing the file by rename are
// still seen.
func NewWatcher(debounce time.Duration, paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		Events:   make(chan string, 16),
		Errors:   make(chan error, 1),
		fs:       fw,
		files:    make(map[string]bool),
		debounce: debounce,
		closeCh:  make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		p = filepath.Clean(p)
		dir := p
		if IsLevelFile(p) {
			w.files[p] = true
			dir = filepath.Dir(p)
		}
		if dirs[dir] {
			continue
		}
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
		dirs[dir] = true
	}

	go w.run()
	return w, nil
}

// Close stops watching. Events and Errors are closed once the watcher has
// shut down.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) wants(name string) bool {
	if len(w.files) > 0 {
		return w.files[name]
	}
	return IsLevelFile(name)
}

func (w *Watcher) run() {
	defer close(w.Errors)
	defer close(w.Events)

	pending := make(map[string]bool)
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name := filepath.Clean(ev.Name)
			if !w.wants(name) {
				continue
			}
			pending[name] = true
			timer.Reset(w.debounce)
		case <-timer.C:
			for name := range pending {
				select {
				case w.Events <- name:
				case <-w.closeCh:
					return
				}
			}
			clear(pending)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
