// bomberman 是经典单人炸弹人的命令行入口
//
// Usage:
//
//	bomberman play      - 打开窗口游玩
//	bomberman tui       - 在终端中游玩
//	bomberman sim       - 无界面运行（可选自动驾驶），输出统计
//	bomberman levels    - 打印关卡表
//
// Global flags:
//
//	--config <path>     - 配置文件
//	--seed <value>      - 随机种子（0 = 按时间）
//	--level <n>         - 起始关卡
//	--tps <rate>        - 每秒帧数
//	--log-level <lvl>   - 日志级别
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagSeed     int64
	flagLevel    int
	flagTPS      int
	flagLogLevel string
	flagMap      string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "bomberman",
	Short:         "Classic single-player Bomberman",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `A tile-based Bomberman clone: place bombs, clear soft blocks,
collect bonuses and find the exit before the timer runs out.

Examples:
  bomberman play
  bomberman play --autopilot hard --scale 1.5
  bomberman tui --level 5
  bomberman sim --ticks 36000 --autopilot normal
  bomberman levels`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagLevel, "level", 1, "Start level")
	rootCmd.PersistentFlags().IntVar(&flagTPS, "tps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagMap, "map", "", "Path to a 31x13 text map")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(levelsCmd)
}
