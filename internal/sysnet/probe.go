package sysnet

import (
	"fmt"
	"strings"
)

// Snapshot is the set of connectivity facts gathered at the start of a
// decision cycle. Produced fresh every cycle, never cached.
type Snapshot struct {
	WiFiInterface string // e.g. "en0"; "" when no Wi-Fi hardware was found
	WiFiActive    bool
	SSID          string // "" when not associated or undetectable
	WiredActive   bool
}

// Logger receives probe diagnostics. Satisfied by *journal.Journal.
type Logger interface {
	Printf(format string, args ...any)
}

// Prober samples current connectivity through a Runner.
type Prober struct {
	run Runner
	log Logger
}

// NewProber returns a Prober using the given runner and log.
func NewProber(run Runner, log Logger) *Prober {
	return &Prober{run: run, log: log}
}

// Probe gathers a fresh snapshot. Sub-queries that fail or return nothing
// degrade to the inactive/absent value; Probe itself cannot fail.
func (p *Prober) Probe() Snapshot {
	var snap Snapshot

	ports, err := p.run.Output(networksetupPath, "-listallhardwareports")
	if err != nil || ports == "" {
		p.log.Printf("could not get hardware ports list")
		return snap
	}

	snap.WiFiInterface = parseWiFiDevice(ports)
	if snap.WiFiInterface == "" {
		p.log.Printf("could not detect Wi-Fi interface")
	} else {
		ifOut, _ := p.run.Output(ifconfigPath, snap.WiFiInterface)
		snap.WiFiActive = linkActive(ifOut)
		if snap.WiFiActive {
			snap.SSID = p.currentSSID(snap.WiFiInterface)
		}
	}

	for _, device := range parseEthernetDevices(ports, snap.WiFiInterface) {
		ifOut, _ := p.run.Output(ifconfigPath, device)
		if wiredUp(ifOut) {
			p.log.Printf("found active Ethernet interface: %s", device)
			snap.WiredActive = true
			break
		}
	}

	return snap
}

// currentSSID asks networksetup for the preferred-networks listing and
// extracts the associated SSID. Best-effort.
func (p *Prober) currentSSID(device string) string {
	out, err := p.run.Output(networksetupPath, "-listpreferredwirelessnetworks", device)
	if err != nil || out == "" {
		return ""
	}
	return parseCurrentSSID(out)
}

// Fingerprint summarizes the snapshot for change detection by the polling
// trigger source.
func (s Snapshot) Fingerprint() string {
	return fmt.Sprintf("wifi=%t ssid=%s wired=%t", s.WiFiActive, s.SSID, s.WiredActive)
}

// String renders the snapshot for journal lines.
func (s Snapshot) String() string {
	var parts []string
	if s.WiredActive {
		parts = append(parts, "ethernet active")
	}
	if s.WiFiActive {
		if s.SSID != "" {
			parts = append(parts, fmt.Sprintf("wi-fi active (SSID %q)", s.SSID))
		} else {
			parts = append(parts, "wi-fi active (SSID unknown)")
		}
	}
	if len(parts) == 0 {
		return "no active connection"
	}
	return strings.Join(parts, ", ")
}
