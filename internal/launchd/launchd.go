// Package launchd generates and manages the LaunchAgent that starts the
// daemon at login.
package launchd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Label identifies the LaunchAgent to launchd.
const Label = "com.netlocd.agent"

const launchctlPath = "/bin/launchctl"

// PlistTemplate returns the LaunchAgent plist for the given binary path.
// KeepAlive restarts the daemon if it exits; RunAtLoad gives the startup
// decision cycle.
func PlistTemplate(binary string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>%s</string>
	<key>ProgramArguments</key>
	<array>
		<string>%s</string>
		<string>watch</string>
	</array>
	<key>RunAtLoad</key>
	<true/>
	<key>KeepAlive</key>
	<true/>
	<key>StandardErrorPath</key>
	<string>/tmp/netlocd.stderr.log</string>
</dict>
</plist>
`, Label, binary)
}

// PlistPath returns the per-user LaunchAgent path.
func PlistPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, "Library", "LaunchAgents", Label+".plist"), nil
}

// Install writes the plist for the given binary and loads it.
func Install(binary string) (string, error) {
	path, err := PlistPath()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("create LaunchAgents directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(PlistTemplate(binary)), 0644); err != nil {
		return "", fmt.Errorf("write plist: %w", err)
	}
	if out, err := exec.Command(launchctlPath, "load", "-w", path).CombinedOutput(); err != nil {
		return path, fmt.Errorf("launchctl load: %v: %s", err, out)
	}
	return path, nil
}

// Uninstall unloads the agent and removes the plist. A missing plist is
// not an error.
func Uninstall() error {
	path, err := PlistPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if out, err := exec.Command(launchctlPath, "unload", "-w", path).CombinedOutput(); err != nil {
		return fmt.Errorf("launchctl unload: %v: %s", err, out)
	}
	return os.Remove(path)
}
