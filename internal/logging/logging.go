// Package logging 构造 charmbracelet/log 日志器并记录游戏事件
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"bomberclassic/pkg/core"
)

// New 创建带时间戳的日志器，w 为空时写到 stderr
func New(w io.Writer, level, prefix string) (*log.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("日志级别 %q: %w", level, err)
		}
		lvl = parsed
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// OpenFile 以追加方式打开日志文件
func OpenFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("打开日志文件 %s: %w", path, err)
	}
	return f, nil
}

// LogEvents 记录一帧内的事件，频繁事件用 Debug 级别
func LogEvents(logger *log.Logger, events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventLevelStarted:
			logger.Info("关卡开始", "level", ev.Level, "lives", ev.Lives, "score", ev.Score)
		case core.EventBombPlaced:
			logger.Debug("放置炸弹", "tick", ev.Tick, "tile", ev.Tile)
		case core.EventBombDetonated:
			logger.Debug("炸弹爆炸", "tick", ev.Tick, "tile", ev.Tile, "segments", ev.Segments)
		case core.EventEnemyKilled:
			logger.Info("敌人被消灭", "species", ev.Species, "points", ev.Points, "tile", ev.Tile)
		case core.EventBonusCollected:
			logger.Info("拾取道具", "bonus", ev.Bonus, "tile", ev.Tile)
		case core.EventPlayerDied:
			logger.Warn("玩家死亡", "tick", ev.Tick, "lives", ev.Lives)
		case core.EventTimeUp:
			logger.Warn("时间到", "level", ev.Level)
		case core.EventLifeLost:
			logger.Info("失去一条命", "lives", ev.Lives, "score", ev.Score)
		case core.EventLevelCleared:
			logger.Info("过关", "level", ev.Level, "score", ev.Score)
		case core.EventGameOver:
			logger.Warn("游戏结束", "score", ev.Score)
		}
	}
}
