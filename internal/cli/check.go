package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/netlocd/netlocd/internal/engine"
	"github.com/netlocd/netlocd/internal/location"
	"github.com/netlocd/netlocd/internal/sysnet"
)

var checkConfig string

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&checkConfig, "config", "", "Path to config YAML (default: search well-known locations)")
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run a single decision cycle and exit",
	Long: "Probes connectivity once, switches the network location if the\n" +
		"target differs from the active one, and exits. Same logic the\n" +
		"daemon runs on every trigger.",
	RunE: runCheckOnce,
}

func runCheckOnce(cmd *cobra.Command, args []string) error {
	cfg, jnl, _ := loadSetup(checkConfig)
	defer jnl.Close()

	run := sysnet.ExecRunner{}
	prober := sysnet.NewProber(run, jnl)
	reader := location.NewReader(run)
	switcher := location.NewSwitcher(run, jnl, nil)
	eng := engine.New(cfg, prober, reader, switcher, jnl)

	dec := eng.Cycle()
	if dec.Switched {
		fmt.Printf("switched to location %q (was %q)\n", dec.Target, dec.Previous)
	} else if dec.Previous == dec.Target {
		fmt.Printf("already on location %q\n", dec.Target)
	} else {
		fmt.Printf("switch to %q failed — see %s\n", dec.Target, cfg.LogFile)
	}
	return nil
}
