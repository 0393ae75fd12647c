// Package config 负责加载 YAML 配置
package config

import (
	_ "embed"
	"errors"
	"fmt"
)

//go:embed defaults/bomberman.yaml
var defaultYAML []byte

// Config 全部配置
type Config struct {
	Game      GameConfig      `yaml:"game"`
	Window    WindowConfig    `yaml:"window"`
	Log       LogConfig       `yaml:"log"`
	Autopilot AutopilotConfig `yaml:"autopilot"`
}

// GameConfig 模拟参数
type GameConfig struct {
	TickRate   int    `yaml:"tick_rate"`
	Seed       int64  `yaml:"seed"`
	StartLevel int    `yaml:"start_level"`
	MapFile    string `yaml:"map_file"`
}

// WindowConfig 窗口前端参数
type WindowConfig struct {
	Scale       float64 `yaml:"scale"`
	SpriteSheet string  `yaml:"sprite_sheet"`
}

// LogConfig 日志参数
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// AutopilotConfig 自动驾驶参数
type AutopilotConfig struct {
	Profile string `yaml:"profile"`
	Seed    int64  `yaml:"seed"`
}

// ErrInvalidConfig 配置值不合法
var ErrInvalidConfig = errors.New("invalid config")

// Default 内置默认值，与 defaults/bomberman.yaml 一致
func Default() Config {
	return Config{
		Game:      GameConfig{TickRate: 60, StartLevel: 1},
		Window:    WindowConfig{Scale: 2},
		Log:       LogConfig{Level: "info"},
		Autopilot: AutopilotConfig{Profile: "normal", Seed: 1},
	}
}

// Validate 检查取值范围
func (c Config) Validate() error {
	switch {
	case c.Game.TickRate <= 0:
		return fmt.Errorf("tick_rate %d: %w", c.Game.TickRate, ErrInvalidConfig)
	case c.Game.StartLevel < 1:
		return fmt.Errorf("start_level %d: %w", c.Game.StartLevel, ErrInvalidConfig)
	case c.Window.Scale <= 0:
		return fmt.Errorf("scale %v: %w", c.Window.Scale, ErrInvalidConfig)
	}
	return nil
}
