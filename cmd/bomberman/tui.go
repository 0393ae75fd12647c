package main

import (
	"io"

	"github.com/spf13/cobra"

	"bomberclassic/internal/logging"
	"bomberclassic/internal/tui"
)

var (
	flagHold         int
	flagTUIAutopilot string
	flagLogFile      string
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play in the terminal",
	Long: `Play in the terminal.

Controls: arrows/wasd/hjkl move, Space bomb, B detonate, P pause, Q quit

Terminals report key presses, not releases, so a direction stays held
for --hold ticks after the last repeat.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().IntVar(&flagHold, "hold", tui.DefaultHoldTicks, "Ticks a direction stays held after a key press")
	tuiCmd.Flags().StringVar(&flagTUIAutopilot, "autopilot", "", "Let the autopilot play: normal, hard, coward")
	tuiCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}

	// 终端被 Bubble Tea 占用，日志只能写文件
	var w io.Writer = io.Discard
	if cfg.Log.File != "" {
		f, err := logging.OpenFile(cfg.Log.File)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	logger, err := newLogger(cfg, w, "tui")
	if err != nil {
		return err
	}

	game, err := newGame(cfg, logger)
	if err != nil {
		return err
	}
	opts := tui.Options{
		TickRate:  cfg.Game.TickRate,
		HoldTicks: flagHold,
		Logger:    logger,
	}
	pilot, err := newPilot(flagTUIAutopilot, cfg)
	if err != nil {
		return err
	}
	if pilot != nil {
		opts.Pilot = pilot
	}
	return tui.Run(game, opts)
}
