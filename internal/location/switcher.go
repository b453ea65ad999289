package location

import (
	"time"

	"github.com/netlocd/netlocd/internal/sysnet"
)

const networksetupPath = "/usr/sbin/networksetup"

// Decision records the outcome of one apply step. Ephemeral: it only
// drives the journal and notifications.
type Decision struct {
	Target   string
	Previous string // "" when the active location was unknown
	Switched bool
	At       time.Time
}

// Logger receives switch outcomes. Satisfied by *journal.Journal.
type Logger interface {
	Printf(format string, args ...any)
}

// Notifier is told about completed switches. Best-effort: implementations
// must swallow their own failures.
type Notifier interface {
	Switched(target, previous string)
}

// Switcher issues the OS switch command when, and only when, the target
// differs from the active location.
type Switcher struct {
	run    sysnet.Runner
	log    Logger
	notify Notifier // may be nil
}

// NewSwitcher returns a Switcher. notify may be nil.
func NewSwitcher(run sysnet.Runner, log Logger, notify Notifier) *Switcher {
	return &Switcher{run: run, log: log, notify: notify}
}

// Apply switches to target unless current already equals it. An unknown
// current ("") never equals a target, so the switch is attempted. Switch
// failures are logged with the target and cause, recorded as
// Switched=false, and never propagated — the next trigger gets a fresh
// attempt. Side effects run in order: switch, log, notify.
func (s *Switcher) Apply(target, current string) Decision {
	dec := Decision{Target: target, Previous: current, At: time.Now()}

	if current == target {
		s.log.Printf("already on location: %s", target)
		return dec
	}

	if _, err := s.run.Output(networksetupPath, "-switchtolocation", target); err != nil {
		s.log.Printf("failed to switch to location %q: %v", target, err)
		return dec
	}

	dec.Switched = true
	s.log.Printf("switched network location -> %s", target)
	if s.notify != nil {
		s.notify.Switched(target, current)
	}
	return dec
}
