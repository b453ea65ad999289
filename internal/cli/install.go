package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/netlocd/netlocd/internal/launchd"
)

func init() {
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the launchd agent so the daemon starts at login",
	RunE: func(cmd *cobra.Command, args []string) error {
		binary, err := os.Executable()
		if err != nil {
			return fmt.Errorf("resolve binary path: %w", err)
		}
		path, err := launchd.Install(binary)
		if err != nil {
			return err
		}
		fmt.Printf("Installed and loaded %s\n", path)
		return nil
	},
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Unload and remove the launchd agent",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := launchd.Uninstall(); err != nil {
			return err
		}
		fmt.Println("Uninstalled")
		return nil
	},
}
