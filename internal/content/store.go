package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bearylogical/folio/internal/app"
)

const debounceDefault = 500 * time.Millisecond

// Store serves the latest successfully loaded snapshot of a content file.
type Store struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger
	current  atomic.Pointer[Snapshot]
}

type StoreOption func(*Store)

// WithDebounce sets how long Watch waits for writes to settle before reloading.
func WithDebounce(d time.Duration) StoreOption {
	return func(s *Store) { s.debounce = d }
}

// NewStore loads path once and fails if it cannot.
func NewStore(path string, opts ...StoreOption) (*Store, error) {
	s := &Store{
		path:     filepath.Clean(path),
		debounce: debounceDefault,
		logger:   app.Logger(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if err := s.Reload(); err != nil {
		return nil, err
	}

	return s, nil
}

// Snapshot returns the current content. Callers must not modify it.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Reload replaces the snapshot. On error the previous snapshot stays.
func (s *Store) Reload() error {
	snapshot, err := Load(s.path)

	if err != nil {
		return err
	}

	s.current.Store(snapshot)

	s.logger.Info("Content loaded",
		"path", s.path,
		"revision", snapshot.Revision,
		"posts", len(snapshot.Posts),
		"authors", len(snapshot.Authors),
	)

	return nil
}

// Watch reloads the content file whenever it changes and blocks until ctx is
// done. The parent directory is watched so editors that replace the file by
// renaming are picked up too.
func (s *Store) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()

	if err != nil {
		return fmt.Errorf("could not create file watcher: %w", err)
	}

	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("could not watch %s: %w", s.path, err)
	}

	var reloadTimer *time.Timer

	defer func() {
		if reloadTimer != nil {
			reloadTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != s.path {
				continue
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			s.logger.Debug("Content change detected", "path", event.Name, "op", event.Op.String())

			if reloadTimer != nil {
				reloadTimer.Stop()
			}

			reloadTimer = time.AfterFunc(s.debounce, func() {
				if err := s.Reload(); err != nil {
					s.logger.Error("Content reload failed, keeping previous revision",
						"path", s.path,
						"error", err)
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			s.logger.Error("Watcher error", "error", err)
		}
	}
}
