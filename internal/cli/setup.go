package cli

import (
	"fmt"
	"os"

	"github.com/netlocd/netlocd/internal/config"
	"github.com/netlocd/netlocd/internal/journal"
)

// loadSetup resolves the configuration and opens the journal it points at.
// Problems found before the journal exists go to stderr; nothing here is
// fatal. Returns the config, the journal, and the config path ("" when
// defaults were synthesized).
func loadSetup(explicit string) (*config.Config, *journal.Journal, string) {
	warn := func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}

	cfg, path := config.Load(explicit, warn)
	config.Validate(cfg, warn)

	jnl, err := journal.Open(cfg.LogFile)
	if err != nil {
		warn("warning: %v — logging to stderr", err)
	}
	return cfg, jnl, path
}

// startupBanner writes the configuration summary the daemon logs on start.
func startupBanner(jnl *journal.Journal, cfg *config.Config, path string) {
	jnl.Printf("==================================================")
	jnl.Printf("netlocd v%s starting", version)
	if path != "" {
		jnl.Printf("loaded configuration from: %s", path)
	} else {
		jnl.Printf("no configuration file found, using defaults")
	}
	jnl.Printf("configuration: %s", cfg)
	for ssid, loc := range cfg.SSIDLocationMap {
		jnl.Printf("  %q -> %q", ssid, loc)
	}
	jnl.Printf("log file: %s", cfg.LogFile)
	jnl.Printf("==================================================")
}
