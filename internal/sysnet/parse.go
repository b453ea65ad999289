package sysnet

import "strings"

// parseWiFiDevice extracts the Wi-Fi device name (e.g. "en0") from a
// `networksetup -listallhardwareports` listing. The listing is grouped as
//
//	Hardware Port: Wi-Fi
//	Device: en0
//	Ethernet Address: aa:bb:cc:dd:ee:ff
//
// Returns "" when no Wi-Fi port is listed.
func parseWiFiDevice(listing string) string {
	lines := strings.Split(listing, "\n")
	for i, line := range lines {
		if !strings.HasPrefix(line, "Hardware Port: Wi-Fi") {
			continue
		}
		if i+1 < len(lines) && strings.HasPrefix(lines[i+1], "Device:") {
			return strings.TrimSpace(strings.TrimPrefix(lines[i+1], "Device:"))
		}
	}
	return ""
}

// parseEthernetDevices extracts wired-capable device names from a hardware
// ports listing: every en* device except the Wi-Fi device. Thunderbolt
// bridges and loopback do not match the en prefix and are skipped.
func parseEthernetDevices(listing, wifiDevice string) []string {
	var devices []string
	for _, line := range strings.Split(listing, "\n") {
		if !strings.HasPrefix(line, "Device:") {
			continue
		}
		device := strings.TrimSpace(strings.TrimPrefix(line, "Device:"))
		if device == wifiDevice || device == "lo0" || !strings.HasPrefix(device, "en") {
			continue
		}
		devices = append(devices, device)
	}
	return devices
}

// linkActive reports whether an ifconfig dump shows an active link.
func linkActive(ifconfigOut string) bool {
	return strings.Contains(ifconfigOut, "status: active")
}

// wiredUp reports whether an ifconfig dump shows an active link that also
// carries an IPv4 address. A wired port can report an active link while
// unconfigured; requiring "inet " filters those out.
func wiredUp(ifconfigOut string) bool {
	return linkActive(ifconfigOut) && strings.Contains(ifconfigOut, "inet ")
}

// parseCurrentSSID extracts the associated SSID from a
// `networksetup -listpreferredwirelessnetworks` listing. The first line is
// a header; when associated, the second line is the current network,
// tab-indented. Best-effort: any irregular shape (fewer than two lines,
// blank entry) yields "".
func parseCurrentSSID(listing string) string {
	lines := strings.Split(listing, "\n")
	if len(lines) < 2 {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(lines[1], "\t"))
}
