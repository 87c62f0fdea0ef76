package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceWindow = 100 * time.Millisecond

// Watcher reports prefab files (YAML and tengo) that changed on disk.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		watcher: fw,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

// Drain returns the changed paths queued so far without blocking.
func (w *Watcher) Drain() []string {
	if w == nil {
		return nil
	}
	var out []string
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return out
			}
			out = append(out, name)
		default:
			return out
		}
	}
}

// run emits a path once it has been quiet for debounceWindow, so a save
// that produces several writes is reported once.
func (w *Watcher) run() {
	defer close(w.done)

	pending := make(map[string]time.Time)
	timer := time.NewTimer(debounceWindow)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isSpecFile(event.Name) && !isScriptFile(event.Name) {
				continue
			}
			pending[event.Name] = time.Now()
			timer.Reset(debounceWindow)
		case <-timer.C:
			now := time.Now()
			for name, at := range pending {
				if now.Sub(at) < debounceWindow {
					continue
				}
				delete(pending, name)
				select {
				case w.Events <- name:
				case <-w.closeCh:
					return
				}
			}
			if len(pending) > 0 {
				timer.Reset(debounceWindow)
			}
		case err, ok := <-w.watcher.Errors:
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

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}
