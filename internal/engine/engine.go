// Package engine runs the decision loop: one trigger, one cycle. A cycle
// probes connectivity, resolves the target location, reads the active one,
// and applies the switch when they differ. Cycles are strictly serialized
// in trigger order on a single goroutine.
package engine

import (
	"context"

	"github.com/netlocd/netlocd/internal/config"
	"github.com/netlocd/netlocd/internal/location"
	"github.com/netlocd/netlocd/internal/sysnet"
	"github.com/netlocd/netlocd/internal/trigger"
)

// Logger receives cycle diagnostics. Satisfied by *journal.Journal.
type Logger interface {
	Printf(format string, args ...any)
}

// Engine orchestrates one decision cycle per trigger event.
type Engine struct {
	cfg      *config.Config
	prober   *sysnet.Prober
	reader   *location.Reader
	switcher *location.Switcher
	log      Logger
}

// New wires an Engine from its collaborators. The config is read-only
// shared state; nothing here mutates it.
func New(cfg *config.Config, prober *sysnet.Prober, reader *location.Reader, switcher *location.Switcher, log Logger) *Engine {
	return &Engine{
		cfg:      cfg,
		prober:   prober,
		reader:   reader,
		switcher: switcher,
		log:      log,
	}
}

// Cycle runs one complete decision cycle synchronously and returns the
// decision. Never fails: every collaborator degrades instead of erroring.
func (e *Engine) Cycle() location.Decision {
	id := newCycleID()

	snap := e.prober.Probe()
	target := location.Resolve(snap, e.cfg)

	if snap.WiredActive || (snap.WiFiActive && snap.SSID != "") {
		e.log.Printf("cycle %s: %s, target=%s", id, snap, target)
	} else {
		e.log.Printf("cycle %s: %s, using default location: %s", id, snap, target)
	}

	current := e.reader.Current()
	e.log.Printf("cycle %s: current location: %q, target: %q", id, current, target)

	return e.switcher.Apply(target, current)
}

// Run executes the startup cycle, then one cycle per event from src, until
// ctx is cancelled. The source runs on its own goroutine; cycles run here.
// A cycle in flight when ctx is cancelled completes before Run returns —
// cancellation is only observed between cycles. The events channel buffers
// a single pending trigger; bursts beyond that coalesce into it.
func (e *Engine) Run(ctx context.Context, src trigger.Source) error {
	events := make(chan trigger.Event, 1)
	srcErr := make(chan error, 1)
	go func() { srcErr <- src.Run(ctx, events) }()

	// Initial forced check: the state at startup is as decision-worthy as
	// any change after it.
	e.Cycle()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-srcErr:
			return err
		case ev := <-events:
			e.log.Printf("trigger: %s", ev.Reason)
			e.Cycle()
		}
	}
}
