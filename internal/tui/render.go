package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bomberclassic/pkg/core"
)

// cell 终端里一个格子占两列，key 相同的相邻格子共用一次样式渲染
type cell struct {
	key   string
	glyph string
	style lipgloss.Style
}

var (
	fieldBG = lipgloss.Color("#388700")

	emptyCell  = cell{"empty", "  ", lipgloss.NewStyle().Background(fieldBG)}
	hardCell   = cell{"hard", "██", lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(fieldBG)}
	softCell   = cell{"soft", "▒▒", lipgloss.NewStyle().Foreground(lipgloss.Color("173")).Background(fieldBG)}
	dyingCell  = cell{"dying", "░░", lipgloss.NewStyle().Foreground(lipgloss.Color("173")).Background(fieldBG)}
	bombCell   = cell{"bomb", "()", lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(fieldBG).Bold(true)}
	remoteCell = cell{"remote", "(*", lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Background(fieldBG).Bold(true)}
	blastCell  = cell{"blast", "**", lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Background(lipgloss.Color("208"))}
	playerCell = cell{"player", "@@", lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(fieldBG).Bold(true)}
	deadCell   = cell{"dead", "xx", lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Background(fieldBG).Bold(true)}
	exitCell   = cell{"exit", "[]", lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("236"))}

	bonusGlyphs = [...]string{
		core.BonusExtraBomb:  "B+",
		core.BonusFireRange:  "F+",
		core.BonusSpeedUp:    "S+",
		core.BonusWallWalker: "W+",
		core.BonusDetonator:  "D+",
		core.BonusBombWalker: "P+",
		core.BonusFlameProof: "X+",
		core.BonusInvisible:  "I+",
	}
	bonusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11"))

	enemyColors = [...]string{"208", "12", "11", "9", "13", "189", "0", "15"}
	enemyStyles = func() []lipgloss.Style {
		styles := make([]lipgloss.Style, len(enemyColors))
		for i, c := range enemyColors {
			styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Background(fieldBG).Bold(true)
		}
		return styles
	}()

	hudStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("245")).Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	pauseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

func cellFor(s core.Sprite) cell {
	switch e := s.(type) {
	case *core.HardBlock:
		return hardCell
	case *core.SoftBlock:
		if e.Dead() {
			return dyingCell
		}
		return softCell
	case *core.Bonus:
		if e.IsExit() {
			return exitCell
		}
		if k := int(e.Kind()); k >= 0 && k < len(bonusGlyphs) {
			return cell{"bonus", bonusGlyphs[k], bonusStyle}
		}
	case *core.Bomb:
		if e.Remote() {
			return remoteCell
		}
		return bombCell
	case *core.Blast:
		return blastCell
	case *core.Enemy:
		name := e.Species().String()
		glyph := name[:2]
		if e.Dying() {
			glyph = "~~"
		}
		i := int(e.Species()) % len(enemyColors)
		return cell{fmt.Sprintf("enemy%d", i), glyph, enemyStyles[i]}
	case *core.Player:
		if e.Dead() {
			return deadCell
		}
		return playerCell
	}
	return emptyCell
}

// fieldCells 每个格子最上层的实体，按绘制顺序覆盖
func fieldCells(g *core.Game) [core.FieldRows][core.FieldCols]cell {
	var grid [core.FieldRows][core.FieldCols]cell
	for y := range core.FieldRows {
		for x := range core.FieldCols {
			grid[y][x] = emptyCell
		}
	}
	for s := range g.Sprites() {
		t := s.Bounds().CenterTile()
		if !t.InField() {
			continue
		}
		if p, ok := s.(*core.Player); ok && p.Invisible() > 0 && g.Tick()/8%2 == 0 {
			continue
		}
		grid[t.Y][t.X] = cellFor(s)
	}
	return grid
}

// RenderField 把场地画成字符串，cols 为可见的格子列数（0 表示全部）
func RenderField(g *core.Game, cols int) string {
	if cols <= 0 || cols > core.FieldCols {
		cols = core.FieldCols
	}
	// 与窗口前端相同的摄像机，按格子取整
	first := 0
	if cols < core.FieldCols {
		center := g.Player().Bounds().CenterTile().X
		first = min(max(center-cols/2, 0), core.FieldCols-cols)
	}

	grid := fieldCells(g)
	var sb strings.Builder
	for y := range core.FieldRows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		// 相同样式的相邻格子合并输出
		x := first
		for x < first+cols {
			start := grid[y][x]
			var run strings.Builder
			for x < first+cols && grid[y][x].key == start.key {
				run.WriteString(grid[y][x].glyph)
				x++
			}
			sb.WriteString(start.style.Render(run.String()))
		}
	}
	return sb.String()
}

// RenderHUD 记分栏
func RenderHUD(g *core.Game, width int) string {
	p := g.Player()
	left := fmt.Sprintf(" TIME %d", max(g.TimeLeft(), 0)/core.TickRate)
	mid := fmt.Sprintf("STAGE %d  %d", g.Level(), g.Score())
	right := fmt.Sprintf("LEFT %d ", max(p.Lives(), 0))
	gap := width - lipgloss.Width(left) - lipgloss.Width(mid) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	pad := strings.Repeat(" ", gap/2)
	return hudStyle.Render(left + pad + mid + pad + strings.Repeat(" ", gap%2) + right)
}

// powerups 玩家当前能力
func powerups(p *core.Player) string {
	parts := []string{fmt.Sprintf("bombs %d", p.MaxBombs()), fmt.Sprintf("fire %d", p.BlastRange())}
	flags := []struct {
		on   bool
		name string
	}{
		{p.SpeedUp(), "speed"},
		{p.WallWalker(), "wallpass"},
		{p.Detonator(), "detonator"},
		{p.BombWalker(), "bombpass"},
		{p.FlameProof(), "flameproof"},
		{p.Invisible() > 0, "invisible"},
	}
	for _, f := range flags {
		if f.on {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, " · ")
}
