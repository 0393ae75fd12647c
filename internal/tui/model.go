package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"bomberclassic/internal/logging"
	"bomberclassic/pkg/core"
)

// Controller 自动驾驶等非键盘输入
type Controller interface {
	Next(game *core.Game) core.Input
}

// Options 终端前端参数
type Options struct {
	TickRate  int
	HoldTicks int
	Pilot     Controller // 非空时由自动驾驶操作，键盘只用于暂停/退出
	Logger    *log.Logger
}

// Model Bubble Tea 模型
type Model struct {
	game     *core.Game
	keys     keyHold
	pilot    Controller
	logger   *log.Logger
	tickRate int

	width    int
	paused   bool
	quitting bool
	err      error
}

// NewModel 包装核心游戏
func NewModel(g *core.Game, opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = core.TickRate
	}
	return Model{
		game:     g,
		keys:     newKeyHold(opts.HoldTicks),
		pilot:    opts.Pilot,
		logger:   opts.Logger,
		tickRate: opts.TickRate,
		width:    core.FieldCols * 2,
	}
}

// Init 启动帧循环
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update 处理按键、窗口大小和帧消息
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "p":
		m.paused = !m.paused
		m.keys.release()
		return m, nil
	}
	if !m.paused && m.pilot == nil {
		m.keys.key(msg)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if m.paused {
		return m, tickCmd(m.tickRate)
	}
	var in core.Input
	if m.pilot != nil {
		in = m.pilot.Next(m.game)
	} else {
		in = m.keys.next()
	}
	if err := m.game.Update(in); err != nil {
		m.err = err
		m.quitting = true
		if m.logger != nil {
			m.logger.Error("游戏更新失败", "err", err)
		}
		return m, tea.Quit
	}
	if m.logger != nil {
		logging.LogEvents(m.logger, m.game.Events())
	}
	return m, tickCmd(m.tickRate)
}

// visibleCols 按终端宽度能显示的格子列数
func (m Model) visibleCols() int {
	return min(max(m.width/2, core.WindowCols), core.FieldCols)
}

// View 渲染整个画面
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	cols := m.visibleCols()
	var sb strings.Builder
	sb.WriteString(RenderHUD(m.game, cols*2))
	sb.WriteByte('\n')
	sb.WriteString(RenderField(m.game, cols))
	sb.WriteByte('\n')
	sb.WriteString(helpStyle.Render(powerups(m.game.Player())))
	sb.WriteByte('\n')
	if m.paused {
		sb.WriteString(pauseStyle.Render("PAUSED  (p 继续)"))
	} else {
		sb.WriteString(helpStyle.Render("方向键/WASD 移动 · 空格 放炸弹 · b 引爆 · p 暂停 · q 退出"))
	}
	return sb.String()
}

// Err 游戏循环中的错误
func (m Model) Err() error { return m.err }

// Run 在终端中运行游戏
func Run(g *core.Game, opts Options) error {
	p := tea.NewProgram(NewModel(g, opts), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("终端前端: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
