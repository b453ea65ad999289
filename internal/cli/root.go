package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "netlocd",
	Short: "Automatic macOS network location switcher",
	Long: "Watches the host's connectivity and switches the active network\n" +
		"location to match: a wired link selects the ethernet location, a\n" +
		"mapped Wi-Fi SSID selects its location, everything else falls back\n" +
		"to the default. Every decision is written to an append-only log.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
