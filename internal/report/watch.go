package report

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher triggers a callback when one of its files is written or
// replaced. Bursts of events within Interval are coalesced into one call.
type FileWatcher struct {
	Paths    []string
	Interval time.Duration
	OnError  func(error) // optional

	onChange func(string) // called with path that changed
	watched  map[string]struct{}
	fw       *fsnotify.Watcher
	done     chan struct{}
	stopOnce sync.Once
}

// NewFileWatcher creates a watcher for given paths and debounce interval.
func NewFileWatcher(paths []string, interval time.Duration, onChange func(string)) *FileWatcher {
	return &FileWatcher{
		Paths:    paths,
		Interval: interval,
		onChange: onChange,
		watched:  make(map[string]struct{}),
		done:     make(chan struct{}),
	}
}

// Start subscribes to the parent directory of every path, so files that are
// created or renamed into place after Start are seen too.
func (w *FileWatcher) Start() error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	dirs := make(map[string]struct{})
	for _, p := range w.Paths {
		p = filepath.Clean(p)
		w.watched[p] = struct{}{}
		dir := filepath.Dir(p)
		if _, ok := dirs[dir]; ok {
			continue
		}
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return err
		}
		dirs[dir] = struct{}{}
	}
	w.fw = fw
	go w.loop()
	return nil
}

// Stop terminates the watcher. It is safe to call more than once.
func (w *FileWatcher) Stop() {
	w.stopOnce.Do(func() {
		if w.fw == nil {
			return
		}
		w.fw.Close()
		<-w.done
	})
}

func (w *FileWatcher) loop() {
	defer close(w.done)
	pending := make(map[string]struct{})
	var fire <-chan time.Time
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write | fsnotify.Create) {
				continue
			}
			name := filepath.Clean(ev.Name)
			if _, ok := w.watched[name]; !ok {
				continue
			}
			pending[name] = struct{}{}
			fire = time.After(w.Interval)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			if w.OnError != nil {
				w.OnError(err)
			}
		case <-fire:
			fire = nil
			for p := range pending {
				delete(pending, p)
				if w.onChange != nil {
					w.onChange(p)
				}
			}
		}
	}
}
