package location

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// switchRunner counts switch invocations and can be told to fail them.
type switchRunner struct {
	fail  bool
	calls []string
}

func (r *switchRunner) Output(name string, args ...string) (string, error) {
	r.calls = append(r.calls, strings.Join(append([]string{name}, args...), " "))
	if r.fail {
		return "", errors.New("exit status 1")
	}
	return "", nil
}

func (r *switchRunner) switchCalls() int {
	n := 0
	for _, c := range r.calls {
		if strings.Contains(c, "-switchtolocation") {
			n++
		}
	}
	return n
}

// recordLog captures journal lines for assertions.
type recordLog struct{ lines []string }

func (l *recordLog) Printf(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func (l *recordLog) contains(substr string) bool {
	for _, line := range l.lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// recordNotifier counts notifications.
type recordNotifier struct{ events []string }

func (n *recordNotifier) Switched(target, previous string) {
	n.events = append(n.events, target)
}

func TestApplyIdempotent(t *testing.T) {
	run := &switchRunner{}
	log := &recordLog{}
	s := NewSwitcher(run, log, nil)

	dec := s.Apply("Home", "Home")

	if run.switchCalls() != 0 {
		t.Errorf("expected 0 switch invocations, got %d", run.switchCalls())
	}
	if dec.Switched {
		t.Error("decision must record Switched=false when already on target")
	}
	if !log.contains("already on location") {
		t.Error("expected an 'already on location' journal line")
	}
}

func TestApplySwitchesOnDifference(t *testing.T) {
	run := &switchRunner{}
	log := &recordLog{}
	notifier := &recordNotifier{}
	s := NewSwitcher(run, log, notifier)

	dec := s.Apply("Home", "Automatic")

	if run.switchCalls() != 1 {
		t.Fatalf("expected 1 switch invocation, got %d", run.switchCalls())
	}
	if !strings.Contains(run.calls[0], "-switchtolocation Home") {
		t.Errorf("switch command was %q, want target Home", run.calls[0])
	}
	if !dec.Switched {
		t.Error("decision must record Switched=true on success")
	}
	if dec.Previous != "Automatic" || dec.Target != "Home" {
		t.Errorf("decision = %+v", dec)
	}
	if len(notifier.events) != 1 || notifier.events[0] != "Home" {
		t.Errorf("notifier events = %v, want [Home]", notifier.events)
	}
}

func TestApplyUnknownCurrentAlwaysSwitches(t *testing.T) {
	run := &switchRunner{}
	s := NewSwitcher(run, &recordLog{}, nil)

	dec := s.Apply("Home", "")

	if run.switchCalls() != 1 {
		t.Errorf("expected a switch attempt for unknown current, got %d", run.switchCalls())
	}
	if !dec.Switched {
		t.Error("expected Switched=true")
	}
}

func TestApplyFailureRecordedNotRaised(t *testing.T) {
	run := &switchRunner{fail: true}
	log := &recordLog{}
	notifier := &recordNotifier{}
	s := NewSwitcher(run, log, notifier)

	dec := s.Apply("Home", "Automatic")

	if dec.Switched {
		t.Error("decision must record Switched=false on failure")
	}
	if !log.contains("Home") {
		t.Error("failure journal line must contain the attempted target")
	}
	if !log.contains("failed to switch") {
		t.Error("expected a failure journal line")
	}
	if len(notifier.events) != 0 {
		t.Error("no notification after a failed switch")
	}
}
