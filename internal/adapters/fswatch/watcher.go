// Package fswatch reports changes to stored sessions using fsnotify.
//
// Writers replace files by renaming a temporary file over them, so the
// watcher always watches directories and filters events by file name.
package fswatch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/bowltrack/internal/ports"
)

// DefaultDebounce is how long the watcher waits for a burst of events to
// settle before reporting a change.
const DefaultDebounce = 100 * time.Millisecond

// Target selects files in Dir whose base name starts with Prefix. An empty
// Prefix matches every file in Dir.
type Target struct {
	Dir    string
	Prefix string
}

// FileTarget watches path and its sidecar files (path-wal, path-journal).
func FileTarget(path string) Target {
	return Target{Dir: filepath.Dir(path), Prefix: filepath.Base(path)}
}

// DirTarget watches every file in dir.
func DirTarget(dir string) Target {
	return Target{Dir: dir}
}

func (t Target) matches(name string) bool {
	if filepath.Clean(filepath.Dir(name)) != filepath.Clean(t.Dir) {
		return false
	}
	base := filepath.Base(name)
	if strings.HasSuffix(base, ".tmp") {
		return false
	}
	return strings.HasPrefix(base, t.Prefix)
}

// Watcher implements ports.ChangeNotifier.
type Watcher struct {
	targets  []Target
	debounce time.Duration
	logger   ports.Logger
}

// New creates a watcher over targets. A non-positive debounce uses
// DefaultDebounce.
func New(logger ports.Logger, debounce time.Duration, targets ...Target) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{targets: targets, debounce: debounce, logger: logger}
}

// Changes starts watching and returns a channel that receives one value per
// settled burst of changes. The channel is closed when ctx is canceled.
func (w *Watcher) Changes(ctx context.Context) (<-chan struct{}, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	for _, t := range w.targets {
		if err := fw.Add(t.Dir); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("watch %s: %w", t.Dir, err)
		}
	}

	out := make(chan struct{}, 1)
	go w.loop(ctx, fw, out)
	return out, nil
}

func (w *Watcher) loop(ctx context.Context, fw *fsnotify.Watcher, out chan<- struct{}) {
	defer close(out)
	defer fw.Close()

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
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("store changed",
				ports.String("file", event.Name),
				ports.String("op", event.Op.String()),
			)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			select {
			case out <- struct{}{}:
			default:
				// a change is already pending
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", ports.Err(err))
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	for _, t := range w.targets {
		if t.matches(event.Name) {
			return true
		}
	}
	return false
}

var _ ports.ChangeNotifier = (*Watcher)(nil)
