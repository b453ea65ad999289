package location

import (
	"strings"

	"github.com/netlocd/netlocd/internal/sysnet"
)

const scselectPath = "/usr/sbin/scselect"

// Reader reports which location the system currently has selected.
type Reader struct {
	run sysnet.Runner
}

// NewReader returns a Reader using the given runner.
func NewReader(run sysnet.Runner) *Reader {
	return &Reader{run: run}
}

// Current returns the active location name, or "" when it cannot be
// determined. Callers treat "" as unknown and attempt the switch anyway.
func (r *Reader) Current() string {
	out, err := r.run.Output(scselectPath)
	if err != nil {
		return ""
	}
	return parseActiveLocation(out)
}

// parseActiveLocation finds the `*`-marked entry in an scselect listing.
// Entries have the form:
//
//	* 1A2B3C4D-0000-0000-0000-000000000000 (Home)
//
// The name is the parenthesized part. Returns "" when no entry is marked
// or the marked line does not parse.
func parseActiveLocation(listing string) string {
	for _, line := range strings.Split(listing, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "*") {
			continue
		}
		start := strings.Index(line, "(")
		end := strings.LastIndex(line, ")")
		if start < 0 || end <= start {
			return ""
		}
		return line[start+1 : end]
	}
	return ""
}
