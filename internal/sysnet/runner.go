// Package sysnet probes the host's connectivity state by invoking the
// macOS command-line tools and parsing their plain-text output. A failed
// or empty query is a normal outcome, resolved to the inactive/absent
// value — probing never returns an error.
package sysnet

import (
	"os/exec"
	"strings"
)

// Tool paths are absolute: the daemon may run from launchd with a minimal PATH.
const (
	networksetupPath = "/usr/sbin/networksetup"
	ifconfigPath     = "/sbin/ifconfig"
)

// Runner executes an external tool and returns its trimmed stdout.
// Non-zero exits and exec failures surface as errors; callers in this
// package treat any error as "no output".
type Runner interface {
	Output(name string, args ...string) (string, error)
}

// ExecRunner is the production Runner backed by os/exec.
type ExecRunner struct{}

// Output runs the command and returns trimmed stdout.
func (ExecRunner) Output(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
