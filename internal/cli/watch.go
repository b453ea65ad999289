package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/netlocd/netlocd/internal/engine"
	"github.com/netlocd/netlocd/internal/location"
	"github.com/netlocd/netlocd/internal/notify"
	"github.com/netlocd/netlocd/internal/sysnet"
	"github.com/netlocd/netlocd/internal/trigger"
)

var (
	watchConfig       string
	watchPoll         bool
	watchPollInterval time.Duration
	watchWebhook      string
	watchNoBanner     bool
)

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchConfig, "config", "", "Path to config YAML (default: search well-known locations)")
	watchCmd.Flags().BoolVar(&watchPoll, "poll", false, "Poll for state changes instead of watching system files")
	watchCmd.Flags().DurationVar(&watchPollInterval, "poll-interval", 0, "Polling interval (default 10s, implies --poll)")
	watchCmd.Flags().StringVar(&watchWebhook, "webhook", "", "URL to POST switch events to (optional)")
	watchCmd.Flags().BoolVar(&watchNoBanner, "no-notification", false, "Disable the macOS notification banner on switch")
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the switcher daemon",
	Long: "Runs one decision cycle immediately, then switches the network\n" +
		"location on every detected connectivity change until terminated.",
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, jnl, cfgPath := loadSetup(watchConfig)
	defer jnl.Close()

	startupBanner(jnl, cfg, cfgPath)

	run := sysnet.ExecRunner{}
	prober := sysnet.NewProber(run, jnl)
	reader := location.NewReader(run)

	var sinks []notify.Sink
	if !watchNoBanner {
		sinks = append(sinks, notify.Banner{})
	}
	if watchWebhook != "" {
		sinks = append(sinks, notify.Webhook{URL: watchWebhook})
	}
	var notifier location.Notifier
	if d := notify.NewDispatcher(jnl, sinks...); d != nil {
		notifier = d
	}

	switcher := location.NewSwitcher(run, jnl, notifier)
	eng := engine.New(cfg, prober, reader, switcher, jnl)

	var src trigger.Source
	if watchPoll || watchPollInterval > 0 {
		src = trigger.NewPollSource(func() string { return prober.Probe().Fingerprint() }, watchPollInterval)
	} else {
		src = trigger.NewFSSource(nil)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		jnl.Printf("received termination signal, shutting down")
		cancel()
	}()

	jnl.Printf("network watcher started (Wi-Fi + Ethernet aware)")
	return eng.Run(ctx, src)
}
