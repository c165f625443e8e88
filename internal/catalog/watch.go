package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"sonard/internal/common/fsutil"
)

// Watch signals on the returned channel whenever the catalog file at path
// changes. Bursts of writes within debounce collapse into one signal. The
// parent directory is watched so editors that replace the file are seen.
// The channel is closed when ctx is done or the watcher fails.
func Watch(ctx context.Context, path string, debounce time.Duration) (<-chan struct{}, error) {
	p, err := fsutil.Resolve(path)
	if err != nil {
		return nil, fmt.Errorf("catalog watch: %w", err)
	}
	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("catalog watch: create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(p)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("catalog watch: %w", err)
	}

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer w.Close()

		var timer *time.Timer
		var fire <-chan time.Time
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != p {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(debounce)
				} else {
					if !timer.Stop() {
						select {
						case <-timer.C:
						default:
						}
					}
					timer.Reset(debounce)
				}
				fire = timer.C
			case <-fire:
				fire = nil
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()
	return out, nil
}
