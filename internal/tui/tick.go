// Package tui 是基于 Bubble Tea 的终端前端
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg 推进一帧
type TickMsg time.Time

func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
