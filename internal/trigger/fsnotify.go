package trigger

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDefault coalesces the flurry of writes the system makes while a
// network transition settles into a single trigger.
const debounceDefault = 500 * time.Millisecond

// DefaultWatchPaths are the files macOS rewrites on network transitions.
// Watching them approximates the SystemConfiguration global-IPv4 change
// notification without binding to that API.
var DefaultWatchPaths = []string{
	"/Library/Preferences/SystemConfiguration",
	"/etc/resolv.conf",
	"/var/run/resolv.conf",
}

// FSSource emits a trigger when any watched network-state path changes.
type FSSource struct {
	paths    []string
	debounce time.Duration
}

// NewFSSource creates a filesystem-backed trigger source. Empty paths
// selects DefaultWatchPaths.
func NewFSSource(paths []string) *FSSource {
	if len(paths) == 0 {
		paths = DefaultWatchPaths
	}
	return &FSSource{paths: paths, debounce: debounceDefault}
}

// Run watches the paths until ctx is cancelled. Paths that do not exist
// are skipped; at least one must be watchable or Run returns the last
// add error immediately.
func (s *FSSource) Run(ctx context.Context, events chan<- Event) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	var added int
	var lastErr error
	for _, path := range s.paths {
		if _, err := os.Stat(path); err != nil {
			lastErr = err
			continue
		}
		if err := watcher.Add(path); err != nil {
			lastErr = err
			continue
		}
		added++
	}
	if added == 0 {
		return fmt.Errorf("no watchable network-state paths: %w", lastErr)
	}

	// Single debounce timer, reset on each raw event. When it fires, one
	// coalesced trigger goes out.
	debounceTimer := time.NewTimer(s.debounce)
	debounceTimer.Stop()
	defer debounceTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-debounceTimer.C:
			select {
			case events <- Event{At: time.Now(), Reason: "network state change"}:
			case <-ctx.Done():
				return nil
			}

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) {
				continue
			}
			if !debounceTimer.Stop() {
				select {
				case <-debounceTimer.C:
				default:
				}
			}
			debounceTimer.Reset(s.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			_ = err
		}
	}
}
