// Package location decides which network location should be active and
// applies it. Resolve is the pure mapping; Reader and Switcher talk to the
// system tools.
package location

import (
	"github.com/netlocd/netlocd/internal/config"
	"github.com/netlocd/netlocd/internal/sysnet"
)

// Resolve maps a connectivity snapshot to the target location name.
// Precedence, first match wins:
//
//  1. wired link active → ethernet location (a cable is the more
//     deliberate attachment, so it always beats Wi-Fi)
//  2. Wi-Fi associated with a known SSID → mapped location
//  3. anything else → default Wi-Fi location
//
// Pure and deterministic; no I/O.
func Resolve(snap sysnet.Snapshot, cfg *config.Config) string {
	if snap.WiredActive {
		return cfg.EthernetLocation
	}
	if snap.WiFiActive && snap.SSID != "" {
		if loc, ok := cfg.SSIDLocationMap[snap.SSID]; ok {
			return loc
		}
	}
	return cfg.DefaultWiFiLocation
}
