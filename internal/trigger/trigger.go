// Package trigger abstracts the "network state may have changed" signal
// behind an event-source interface, decoupling the decision engine from
// any specific OS notification mechanism.
package trigger

import (
	"context"
	"time"
)

// Event is one trigger. The engine does not inspect it beyond logging;
// every event means "run a decision cycle now".
type Event struct {
	At     time.Time
	Reason string
}

// Source delivers trigger events until ctx is cancelled. Run blocks; the
// caller owns the goroutine. Sources coalesce bursts — the engine only
// needs to know that state may have changed, not how many times.
type Source interface {
	Run(ctx context.Context, events chan<- Event) error
}
