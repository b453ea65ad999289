package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/netlocd/netlocd/internal/config"
)

var initOutput string

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVarP(&initOutput, "output", "o", "", "Where to write the config (default: ~/.netlocd.yaml)")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default config file with comments",
	Long: "Writes a commented netlocd.yaml template. Edit the SSID map and\n" +
		"location names to match your network setup.",
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	path := initOutput
	if path == "" {
		path = config.UserPath()
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}

	if err := os.WriteFile(path, []byte(config.DefaultYAML()), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Created %s\n", path)
	return nil
}
