// Package headless 在没有窗口的情况下按固定帧率推进游戏
package headless

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"bomberclassic/internal/logging"
	"bomberclassic/pkg/core"
)

// Controller 每帧提供输入
type Controller interface {
	Next(game *core.Game) core.Input
}

// Idle 不按任何键
type Idle struct{}

func (Idle) Next(*core.Game) core.Input { return core.Input{} }

// Runner 无界面运行器
type Runner struct {
	Game       *core.Game
	Controller Controller
	Logger     *log.Logger

	// TickRate 每秒帧数，0 表示不限速
	TickRate int
	// MaxTicks 最多运行的帧数，0 表示直到取消
	MaxTicks int
}

// Summary 运行结果统计
type Summary struct {
	Ticks         int
	Level         int
	Score         int
	Lives         int
	BombsPlaced   int
	EnemiesKilled int
	BonusesTaken  int
	LivesLost     int
	LevelsCleared int
	GameOvers     int
	Elapsed       time.Duration
}

func (s Summary) String() string {
	return fmt.Sprintf("帧数 %d, 关卡 %d, 分数 %d, 生命 %d, 炸弹 %d, 击杀 %d, 道具 %d, 失命 %d, 过关 %d, 结束 %d, 用时 %s",
		s.Ticks, s.Level, s.Score, s.Lives, s.BombsPlaced, s.EnemiesKilled, s.BonusesTaken,
		s.LivesLost, s.LevelsCleared, s.GameOvers, s.Elapsed.Round(time.Millisecond))
}

func (s *Summary) record(events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventBombPlaced:
			s.BombsPlaced++
		case core.EventEnemyKilled:
			s.EnemiesKilled++
		case core.EventBonusCollected:
			s.BonusesTaken++
		case core.EventLifeLost:
			s.LivesLost++
		case core.EventLevelCleared:
			s.LevelsCleared++
		case core.EventGameOver:
			s.GameOvers++
		}
	}
}

// Run 推进游戏直到 ctx 取消、达到 MaxTicks 或游戏返回错误
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	var sum Summary
	start := time.Now()
	ctrl := r.Controller
	if ctrl == nil {
		ctrl = Idle{}
	}

	var limiter *rate.Limiter
	if r.TickRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(r.TickRate), 1)
	}

	finish := func(err error) (Summary, error) {
		sum.Level = r.Game.Level()
		sum.Score = r.Game.Score()
		sum.Lives = r.Game.Player().Lives()
		sum.Elapsed = time.Since(start)
		return sum, err
	}

	if r.Logger != nil {
		r.Logger.Info("运行开始", "tps", r.TickRate, "max_ticks", r.MaxTicks)
		logging.LogEvents(r.Logger, r.Game.Events())
	}

	for r.MaxTicks == 0 || sum.Ticks < r.MaxTicks {
		if err := ctx.Err(); err != nil {
			return finish(err)
		}
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return finish(ctxErr)
				}
				return finish(fmt.Errorf("限速等待: %w", err))
			}
		}
		if err := r.Game.Update(ctrl.Next(r.Game)); err != nil {
			return finish(fmt.Errorf("第 %d 帧: %w", sum.Ticks+1, err))
		}
		sum.Ticks++
		events := r.Game.Events()
		sum.record(events)
		if r.Logger != nil {
			logging.LogEvents(r.Logger, events)
		}
	}
	return finish(nil)
}
