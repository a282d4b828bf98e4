package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Nether404/theWebKnot-sub006/infrastructure/logging"
)

// Watcher reloads the configuration when the file changes on disk. Only a
// subset of settings can change at runtime; the reload callback receives the
// freshly parsed config and decides what to apply.
type Watcher struct {
	path     string
	loader   *Loader
	onReload func(*Config)
	debounce time.Duration

	watcher *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewWatcher creates a watcher for the given config file. The callback runs
// on the watcher goroutine after every successful reload.
func NewWatcher(path string, loader *Loader, onReload func(*Config)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory rather than the file. Editors and config
	// managers typically replace the file, which drops a watch on the
	// file itself.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     path,
		loader:   loader,
		onReload: onReload,
		debounce: 200 * time.Millisecond,
		watcher:  fw,
		done:     make(chan struct{}),
	}

	w.wg.Add(1)
	go w.run()

	return w, nil
}

// Close stops the watcher and waits for the goroutine to exit.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			// Coalesce bursts of events into one reload.
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}
		case <-timerC:
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Warn().
				Add(logging.Err(err)).
				Msg("config watcher error")
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := w.loader.LoadFile(w.path)
	if err != nil {
		logging.Warn().
			Add(logging.Str("path", w.path)).
			Add(logging.Err(err)).
			Msg("config reload failed, keeping previous config")
		return
	}

	logging.Info().
		Add(logging.Str("path", w.path)).
		Msg("config reloaded")

	if w.onReload != nil {
		w.onReload(cfg)
	}
}
