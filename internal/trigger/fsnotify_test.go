package trigger

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFSSourceCoalescesWritesIntoOneEvent(t *testing.T) {
	dir := t.TempDir()
	src := NewFSSource([]string{dir})
	src.debounce = 100 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan Event, 4)
	go func() { _ = src.Run(ctx, events) }()
	time.Sleep(100 * time.Millisecond) // let the watcher start

	// A burst of writes, as macOS produces while a transition settles.
	for i := 0; i < 5; i++ {
		path := filepath.Join(dir, "preferences.plist")
		if err := os.WriteFile(path, []byte{byte(i)}, 0644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-events:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a trigger event")
	}

	// The burst must have collapsed into that single trigger.
	select {
	case ev := <-events:
		t.Fatalf("burst was not coalesced: %+v", ev)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestFSSourceSkipsMissingPaths(t *testing.T) {
	dir := t.TempDir()
	src := NewFSSource([]string{"/nonexistent/netlocd-test", dir})
	src.debounce = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan Event, 1)
	go func() { _ = src.Run(ctx, events) }()
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "resolv.conf"), []byte("nameserver 1.1.1.1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-events:
	case <-time.After(2 * time.Second):
		t.Fatal("watchable path should still trigger when others are missing")
	}
}

func TestFSSourceErrorsWhenNothingWatchable(t *testing.T) {
	src := NewFSSource([]string{"/nonexistent/netlocd-a", "/nonexistent/netlocd-b"})

	err := src.Run(context.Background(), make(chan Event, 1))
	if err == nil {
		t.Fatal("expected an error when no path can be watched")
	}
}

func TestFSSourceStopsOnCancel(t *testing.T) {
	src := NewFSSource([]string{t.TempDir()})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- src.Run(ctx, make(chan Event, 1)) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not stop on cancel")
	}
}
