// Package notify tells the user about completed location switches.
// Everything here is best-effort: a sink that fails logs the failure and
// is otherwise ignored; notification never blocks or fails a decision
// cycle.
package notify

// Logger receives sink failures. Satisfied by *journal.Journal.
type Logger interface {
	Printf(format string, args ...any)
}

// Sink delivers one notification. Implementations return an error for
// logging only; the dispatcher never acts on it.
type Sink interface {
	Deliver(target, previous string) error
}

// Dispatcher fans a switch event out to all configured sinks.
type Dispatcher struct {
	sinks []Sink
	log   Logger
}

// NewDispatcher creates a Dispatcher. Returns nil when no sinks are
// configured; a nil *Dispatcher is a valid no-op Notifier.
func NewDispatcher(log Logger, sinks ...Sink) *Dispatcher {
	if len(sinks) == 0 {
		return nil
	}
	return &Dispatcher{sinks: sinks, log: log}
}

// Switched delivers the event to every sink. Fires a goroutine per sink so
// a slow sink cannot block the decision cycle; failures are logged and
// swallowed.
func (d *Dispatcher) Switched(target, previous string) {
	if d == nil {
		return
	}
	for _, sink := range d.sinks {
		go func(s Sink) {
			if err := s.Deliver(target, previous); err != nil {
				d.log.Printf("notification failed: %v", err)
			}
		}(sink)
	}
}
