package trigger

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestPollSourceFiresOnFingerprintChange(t *testing.T) {
	var mu sync.Mutex
	fp := "state-a"
	src := NewPollSource(func() string {
		mu.Lock()
		defer mu.Unlock()
		return fp
	}, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan Event, 4)
	go func() { _ = src.Run(ctx, events) }()

	// Unchanged fingerprint: no events.
	select {
	case ev := <-events:
		t.Fatalf("unexpected event before change: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}

	mu.Lock()
	fp = "state-b"
	mu.Unlock()

	select {
	case <-events:
	case <-time.After(time.Second):
		t.Fatal("expected an event after the fingerprint changed")
	}

	// Stable again: no further events.
	select {
	case ev := <-events:
		t.Fatalf("unexpected repeat event: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPollSourceStopsOnCancel(t *testing.T) {
	src := NewPollSource(func() string { return "constant" }, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- src.Run(ctx, make(chan Event, 1)) }()

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

func TestPollSourceDefaultInterval(t *testing.T) {
	src := NewPollSource(func() string { return "" }, 0)
	if src.interval != pollDefault {
		t.Errorf("interval = %v, want %v", src.interval, pollDefault)
	}
}
