package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/netlocd/netlocd/internal/journal"
	"github.com/netlocd/netlocd/internal/location"
	"github.com/netlocd/netlocd/internal/sysnet"
)

var statusConfig string

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().StringVar(&statusConfig, "config", "", "Path to config YAML (default: search well-known locations)")
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show connectivity and the location decision without switching",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, jnl, _ := loadSetup(statusConfig)
	jnl.Close()

	run := sysnet.ExecRunner{}
	snap := sysnet.NewProber(run, journal.Discard()).Probe()
	current := location.NewReader(run).Current()
	target := location.Resolve(snap, cfg)

	fmt.Printf("connectivity:     %s\n", snap)
	if snap.WiFiInterface != "" {
		fmt.Printf("wi-fi interface:  %s\n", snap.WiFiInterface)
	}
	if current != "" {
		fmt.Printf("active location:  %s\n", current)
	} else {
		fmt.Printf("active location:  (unknown)\n")
	}
	fmt.Printf("target location:  %s\n", target)
	if current == target {
		fmt.Println("no switch needed")
	} else {
		fmt.Println("a decision cycle would switch — run `netlocd check`")
	}
	return nil
}
