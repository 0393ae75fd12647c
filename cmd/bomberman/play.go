package main

import (
	"github.com/spf13/cobra"

	"bomberclassic/internal/client"
	"bomberclassic/pkg/ai"
)

var (
	flagScale     float64
	flagSheet     string
	flagControls  string
	flagAutopilot string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a window",
	Long: `Open a window and play.

Controls (wasd):   WASD move, Space bomb, B detonate, P pause, Esc quit
Controls (arrows): arrows move, Enter bomb, Right Shift detonate`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Float64Var(&flagScale, "scale", 0, "Window scale (default from config)")
	playCmd.Flags().StringVar(&flagSheet, "sheet", "", "Sprite sheet PNG (default: vector drawing)")
	playCmd.Flags().StringVar(&flagControls, "controls", "wasd", "Control scheme: wasd, arrows")
	playCmd.Flags().StringVar(&flagAutopilot, "autopilot", "", "Let the autopilot play: normal, hard, coward")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if flagScale > 0 {
		cfg.Window.Scale = flagScale
	}
	if flagSheet != "" {
		cfg.Window.SpriteSheet = flagSheet
	}

	logger, err := newLogger(cfg, nil, "play")
	if err != nil {
		return err
	}
	game, err := newGame(cfg, logger)
	if err != nil {
		return err
	}

	opts := client.Options{Logger: logger}
	scheme, ok := client.ParseControlScheme(flagControls)
	if !ok {
		logger.Warn("未知按键方案，使用默认", "controls", flagControls)
	}
	opts.Input = client.Keyboard{Scheme: scheme}

	pilot, err := newPilot(flagAutopilot, cfg)
	if err != nil {
		return err
	}
	if pilot != nil {
		opts.Input = &ai.PilotSource{Pilot: pilot, Game: game}
		logger.Info("自动驾驶已启用", "profile", flagAutopilot)
	}

	if cfg.Window.SpriteSheet != "" {
		sheet, err := client.LoadSheet(cfg.Window.SpriteSheet)
		if err != nil {
			return err
		}
		opts.Sheet = sheet
	}

	logger.Info("打开窗口", "scale", cfg.Window.Scale, "tps", cfg.Game.TickRate, "controls", scheme)
	if err := client.Run(game, opts, cfg.Window.Scale, cfg.Game.TickRate); err != nil {
		return err
	}
	logger.Info("退出", "score", game.Score(), "level", game.Level())
	return nil
}
