package trigger

import (
	"context"
	"time"
)

// pollDefault is the default polling interval when filesystem watching is
// unavailable.
const pollDefault = 10 * time.Second

// PollSource fires a trigger when a state fingerprint changes between
// ticks. Fallback for environments where the fsnotify source cannot watch
// the system paths.
type PollSource struct {
	fingerprint func() string
	interval    time.Duration
	last        string
}

// NewPollSource creates a polling trigger source. fingerprint must be
// cheap and side-effect free from the caller's point of view; it runs once
// per interval.
func NewPollSource(fingerprint func() string, interval time.Duration) *PollSource {
	if interval == 0 {
		interval = pollDefault
	}
	return &PollSource{fingerprint: fingerprint, interval: interval}
}

// Run polls until ctx is cancelled. The first tick establishes the
// baseline without firing; the engine's forced startup cycle already
// covers the initial state.
func (s *PollSource) Run(ctx context.Context, events chan<- Event) error {
	s.last = s.fingerprint()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			fp := s.fingerprint()
			if fp == s.last {
				continue
			}
			s.last = fp
			select {
			case events <- Event{At: time.Now(), Reason: "poll detected change"}:
			case <-ctx.Done():
				return nil
			}
		}
	}
}
