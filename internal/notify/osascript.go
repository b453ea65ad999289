package notify

import (
	"fmt"
	"os/exec"
	"strings"
)

const osascriptPath = "/usr/bin/osascript"

// Banner shows a macOS user notification via osascript.
type Banner struct{}

// Deliver displays "Network location switched to <target>".
func (Banner) Deliver(target, previous string) error {
	script := fmt.Sprintf("display notification %q with title %q",
		"Network location switched to "+target, "netlocd")
	out, err := exec.Command(osascriptPath, "-e", script).CombinedOutput()
	if err != nil {
		return fmt.Errorf("osascript: %v: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
