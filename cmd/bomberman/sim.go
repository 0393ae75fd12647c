package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"bomberclassic/internal/headless"
	"bomberclassic/internal/logging"
	"bomberclassic/pkg/core"
)

var (
	flagTicks        int
	flagRealtime     bool
	flagSimAutopilot string
	flagSimLogFile   string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation without a display",
	Long: `Run the simulation headless and print a summary.

By default the autopilot from the config plays as fast as possible.
Use --autopilot none to leave the player idle.`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", core.TickRate*simSeconds, "Ticks to run (0 = until interrupted)")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks at --tps instead of running flat out")
	simCmd.Flags().StringVar(&flagSimAutopilot, "autopilot", "", "Autopilot profile (default from config, none = idle)")
	simCmd.Flags().StringVar(&flagSimLogFile, "log-file", "", "Write logs to this file (default: stderr)")
}

// simSeconds 默认模拟时长（秒）
const simSeconds = 600

func runSim(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if flagSimLogFile != "" {
		cfg.Log.File = flagSimLogFile
	}

	out := os.Stderr
	if cfg.Log.File != "" {
		f, err := logging.OpenFile(cfg.Log.File)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	logger, err := newLogger(cfg, out, "sim")
	if err != nil {
		return err
	}
	game, err := newGame(cfg, logger)
	if err != nil {
		return err
	}

	profile := cfg.Autopilot.Profile
	if cmd.Flags().Changed("autopilot") {
		profile = flagSimAutopilot
	}
	var ctrl headless.Controller = headless.Idle{}
	if profile != "none" && profile != "" {
		pilot, err := newPilot(profile, cfg)
		if err != nil {
			return err
		}
		ctrl = pilot
	}

	runner := &headless.Runner{
		Game:       game,
		Controller: ctrl,
		Logger:     logger,
		MaxTicks:   flagTicks,
	}
	if flagRealtime {
		runner.TickRate = cfg.Game.TickRate
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("开始模拟", "ticks", flagTicks, "autopilot", profile, "realtime", flagRealtime)
	summary, err := runner.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	fmt.Println(summary)
	return nil
}
