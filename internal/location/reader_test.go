package location

import (
	"errors"
	"strings"
	"testing"
)

// Captured from `scselect` with three defined locations.
const sampleScselect = `Defined sets include: (* == current set)
   1C2F5124-4BE1-4A5B-BB3E-E01E5302727D (Automatic)
 * 2A5C90F3-11C2-4F7D-9F5E-DB20A0C7D789 (Home)
   8C554A31-0A5C-46D1-B2C1-D9E4F37F6E50 (Wired)`

func TestParseActiveLocation(t *testing.T) {
	if got := parseActiveLocation(sampleScselect); got != "Home" {
		t.Errorf("got %q, want Home", got)
	}
}

func TestParseActiveLocationNameWithParens(t *testing.T) {
	listing := "Defined sets include: (* == current set)\n" +
		" * 2A5C90F3-11C2-4F7D-9F5E-DB20A0C7D789 (Office (5th floor))"
	if got := parseActiveLocation(listing); got != "Office (5th floor)" {
		t.Errorf("got %q, want %q", got, "Office (5th floor)")
	}
}

func TestParseActiveLocationNoneMarked(t *testing.T) {
	listing := "Defined sets include: (* == current set)\n" +
		"   1C2F5124-4BE1-4A5B-BB3E-E01E5302727D (Automatic)"
	if got := parseActiveLocation(listing); got != "" {
		t.Errorf("got %q, want empty", got)
	}
	if got := parseActiveLocation(""); got != "" {
		t.Errorf("got %q, want empty for empty listing", got)
	}
}

func TestParseActiveLocationMalformedLine(t *testing.T) {
	if got := parseActiveLocation("* 2A5C90F3 no-parens-here"); got != "" {
		t.Errorf("got %q, want empty for malformed line", got)
	}
}

func TestReaderUnknownOnCommandFailure(t *testing.T) {
	r := NewReader(&failRunner{})
	if got := r.Current(); got != "" {
		t.Errorf("got %q, want empty when scselect fails", got)
	}
}

type failRunner struct{ calls []string }

func (f *failRunner) Output(name string, args ...string) (string, error) {
	f.calls = append(f.calls, strings.Join(append([]string{name}, args...), " "))
	return "", errors.New("exit status 1")
}
