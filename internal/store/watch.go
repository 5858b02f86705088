package store

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch emits a notification whenever another process writes the uploads
// database (the same-device storage-change signal: a presentation refreshes
// when the upload server appends locally). Events are coalesced with a short
// debounce so one batch insert yields one notification. The channel closes
// when ctx is done.
//
// The data dir is watched rather than the file: sqlite touches sidecar files
// (-wal, -journal) and may recreate the db, which a file-level watch misses.
func (s Store) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(s.Dir); err != nil {
		watcher.Close()
		return nil, err
	}

	out := make(chan struct{}, 1)
	go func() {
		defer watcher.Close()
		defer close(out)

		var pending bool
		debounce := time.NewTimer(time.Hour)
		debounce.Stop()
		defer debounce.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !strings.HasPrefix(filepath.Base(ev.Name), dbFileName) {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if !pending {
					pending = true
					debounce.Reset(200 * time.Millisecond)
				}
			case <-debounce.C:
				pending = false
				select {
				case out <- struct{}{}:
				default:
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Transient watch errors are tolerated; keep running.
			}
		}
	}()
	return out, nil
}
