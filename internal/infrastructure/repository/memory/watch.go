package memory

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/riskibarqy/sports-analytics/internal/platform/logging"
)

// seedReloadDelay coalesces the burst of events a single save produces.
const seedReloadDelay = 100 * time.Millisecond

const seedEvents = fsnotify.Write | fsnotify.Create | fsnotify.Rename

type seedWatcher struct {
	path    string
	store   *Store
	logger  *logging.Logger
	delay   time.Duration
	watcher *fsnotify.Watcher
}

// WatchSeed reloads the seed file into store whenever it changes, including
// saves that rename a temp file over it. A file that fails to parse or
// validate is logged and the previous data stays active. It blocks until ctx
// is cancelled.
func WatchSeed(ctx context.Context, path string, store *Store, logger *logging.Logger) error {
	w, err := newSeedWatcher(path, store, logger)
	if err != nil {
		return err
	}
	return w.run(ctx)
}

// newSeedWatcher registers the watch on the seed file's directory. The file
// itself is not watched since a rename over it drops an inode watch.
func newSeedWatcher(path string, store *Store, logger *logging.Logger) (*seedWatcher, error) {
	if logger == nil {
		logger = logging.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	path = filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, err
	}
	logger.Info("watching seed file", "path", path)

	return &seedWatcher{
		path:    path,
		store:   store,
		logger:  logger,
		delay:   seedReloadDelay,
		watcher: watcher,
	}, nil
}

func (w *seedWatcher) run(ctx context.Context) error {
	defer w.watcher.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path || event.Op&seedEvents == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.delay)
			} else {
				timer.Reset(w.delay)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if err := reloadSeed(w.path, w.store); err != nil {
				w.logger.Error("seed reload failed, keeping previous data", "path", w.path, "error", err)
				continue
			}
			w.logger.Info("seed reloaded", "path", w.path)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("seed watcher error", "error", err)
		}
	}
}

func reloadSeed(path string, store *Store) error {
	snapshot, err := LoadSeedFile(path)
	if err != nil {
		return err
	}
	return store.Replace(snapshot)
}
