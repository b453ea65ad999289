// Package config loads the mapping configuration: which network location
// each SSID maps to, the wired and default locations, and the log path.
// The configuration is loaded once at startup and never mutated afterwards.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the full mapping configuration.
type Config struct {
	// SSIDLocationMap maps an SSID (case-sensitive) to a location name.
	SSIDLocationMap map[string]string `yaml:"ssid_location_map"`
	// DefaultWiFiLocation is used for unmapped SSIDs and when nothing is connected.
	DefaultWiFiLocation string `yaml:"default_wifi_location"`
	// EthernetLocation is used whenever a wired link is active.
	EthernetLocation string `yaml:"ethernet_location"`
	// LogFile is the append-only decision log path.
	LogFile string `yaml:"log_file"`
}

// DefaultConfig returns the built-in configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		SSIDLocationMap: map[string]string{
			"YourWiFiNetwork": "Home",
			"OfficeWiFi":      "Work",
			"MobileHotspot":   "Mobile",
		},
		DefaultWiFiLocation: "Automatic",
		EthernetLocation:    "Wired",
		LogFile:             "/usr/local/var/log/netlocd.log",
	}
}

// Load resolves the configuration: the explicit path first, then the
// well-known search path. The first readable file wins; an unparseable file
// is reported via warn and skipped. When nothing is found, a default config
// is synthesized (and persisted best-effort to the user path).
// Returns the config and the path it came from ("" when defaults were used).
func Load(explicit string, warn func(format string, args ...any)) (*Config, string) {
	for _, path := range SearchPaths(explicit) {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := DefaultConfig()
		if err := yaml.Unmarshal(data, cfg); err != nil {
			warn("error reading config file %s: %v", path, err)
			continue
		}
		return cfg, path
	}

	return Synthesize(warn), ""
}

// Synthesize writes a commented default config to the user path so the
// operator has something to edit, and returns the defaults. The write is
// best-effort; failure only warns.
func Synthesize(warn func(format string, args ...any)) *Config {
	path := UserPath()
	if err := os.WriteFile(path, []byte(DefaultYAML()), 0644); err != nil {
		warn("could not create config file %s: %v", path, err)
	} else {
		warn("created configuration file %s — edit it to match your network setup", path)
	}
	return DefaultConfig()
}

// Validate fills missing fields with defaults and checks that referenced
// paths are usable. All findings are advisory: they are reported via warn
// and repaired in place, never fatal.
func Validate(cfg *Config, warn func(format string, args ...any)) {
	def := DefaultConfig()

	if cfg.SSIDLocationMap == nil {
		warn("missing config key 'ssid_location_map', using empty map")
		cfg.SSIDLocationMap = map[string]string{}
	}
	for ssid := range cfg.SSIDLocationMap {
		if ssid == "" {
			warn("ignoring mapping for empty SSID")
			delete(cfg.SSIDLocationMap, ssid)
		}
	}
	if cfg.DefaultWiFiLocation == "" {
		warn("missing config key 'default_wifi_location', using default: %s", def.DefaultWiFiLocation)
		cfg.DefaultWiFiLocation = def.DefaultWiFiLocation
	}
	if cfg.EthernetLocation == "" {
		warn("missing config key 'ethernet_location', using default: %s", def.EthernetLocation)
		cfg.EthernetLocation = def.EthernetLocation
	}
	if cfg.LogFile == "" {
		warn("missing config key 'log_file', using default: %s", def.LogFile)
		cfg.LogFile = def.LogFile
	}

	// The log directory must exist or be creatable; otherwise fall back to
	// a per-user path so logging still works.
	if dir := filepath.Dir(cfg.LogFile); dir != "" && dir != "." {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if mkErr := os.MkdirAll(dir, 0755); mkErr != nil {
				fallback := fallbackLogPath()
				warn("cannot create log directory %s: %v — using fallback log file: %s", dir, mkErr, fallback)
				cfg.LogFile = fallback
			}
		}
	}
}

// DefaultYAML returns the commented template written by `netlocd init` and
// by Synthesize.
func DefaultYAML() string {
	return `# netlocd configuration
#
# Maps Wi-Fi networks to macOS network locations. A wired link always wins
# over Wi-Fi; unmapped SSIDs fall back to default_wifi_location.
#
# Location names must match the names shown by: networksetup -listlocations

ssid_location_map:
  YourWiFiNetwork: Home
  OfficeWiFi: Work
  MobileHotspot: Mobile

# Location when Wi-Fi is connected to an unmapped SSID, or nothing is connected.
default_wifi_location: Automatic

# Location when an Ethernet cable is plugged in and active.
ethernet_location: Wired

# Append-only decision log.
log_file: /usr/local/var/log/netlocd.log
`
}

func fallbackLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "netlocd.log"
	}
	return filepath.Join(home, "netlocd.log")
}

// String renders the mapping for the startup banner.
func (c *Config) String() string {
	return fmt.Sprintf("%d SSID mappings, default=%q, ethernet=%q",
		len(c.SSIDLocationMap), c.DefaultWiFiLocation, c.EthernetLocation)
}
