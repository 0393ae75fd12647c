package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"bomberclassic/internal/config"
	"bomberclassic/internal/logging"
	"bomberclassic/pkg/ai"
	"bomberclassic/pkg/core"
)

// loadSettings 读取配置文件，再用显式给出的命令行参数覆盖
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Game.Seed = flagSeed
	}
	if flags.Changed("level") {
		cfg.Game.StartLevel = flagLevel
	}
	if flags.Changed("tps") {
		cfg.Game.TickRate = flagTPS
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("map") {
		cfg.Game.MapFile = flagMap
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newGame 按配置创建游戏
func newGame(cfg config.Config, logger *log.Logger) (*core.Game, error) {
	m, err := config.LoadMap(cfg.Game.MapFile)
	if err != nil {
		return nil, err
	}
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g, err := core.NewGame(core.Assets{Map: m, Levels: core.DefaultLevelTable()},
		core.GameConfig{Seed: seed, StartLevel: cfg.Game.StartLevel})
	if err != nil {
		return nil, fmt.Errorf("创建游戏: %w", err)
	}
	logger.Info("游戏创建", "seed", seed, "level", cfg.Game.StartLevel, "map", mapName(cfg.Game.MapFile))
	return g, nil
}

func mapName(path string) string {
	if path == "" {
		return "default"
	}
	return path
}

func newLogger(cfg config.Config, w io.Writer, prefix string) (*log.Logger, error) {
	return logging.New(w, cfg.Log.Level, prefix)
}

// newPilot 按名字创建自动驾驶，name 为空时返回 nil
func newPilot(name string, cfg config.Config) (*ai.Pilot, error) {
	if name == "" {
		return nil, nil
	}
	profile, err := ai.ProfileByName(name)
	if err != nil {
		return nil, err
	}
	return ai.NewPilot(profile, cfg.Autopilot.Seed), nil
}
