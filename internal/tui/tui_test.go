package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"bomberclassic/pkg/core"
)

func newGame(t *testing.T) *core.Game {
	t.Helper()
	g, err := core.NewGame(core.DefaultAssets(), core.GameConfig{Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyHold(t *testing.T) {
	k := newKeyHold(3)
	if in := k.next(); in != (core.Input{}) {
		t.Fatalf("idle input = %+v", in)
	}
	k.key(runeKey("d"))
	for i := range 4 {
		if in := k.next(); !in.Right {
			t.Fatalf("tick %d: right should still be held", i)
		}
	}
	if in := k.next(); in.Right {
		t.Errorf("right held past the hold window")
	}

	// 新方向覆盖旧方向
	k.key(tea.KeyMsg{Type: tea.KeyLeft})
	k.key(tea.KeyMsg{Type: tea.KeyUp})
	if in := k.next(); in.Left || !in.Up {
		t.Errorf("latest direction should win: %+v", in)
	}

	// 动作键只生效一帧
	k.key(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if in := k.next(); !in.PlaceBomb {
		t.Errorf("bomb key lost")
	}
	if in := k.next(); in.PlaceBomb {
		t.Errorf("bomb key repeated")
	}
	if k.key(runeKey("z")) {
		t.Errorf("z should not be bound")
	}
}

func TestRenderField(t *testing.T) {
	g := newGame(t)
	out := RenderField(g, 0)
	lines := strings.Split(out, "\n")
	if len(lines) != core.FieldRows {
		t.Fatalf("rows = %d, want %d", len(lines), core.FieldRows)
	}
	if !strings.Contains(lines[1], "@@") {
		t.Errorf("player missing from row 1: %q", lines[1])
	}
	if !strings.Contains(out, "██") || !strings.Contains(out, "▒▒") {
		t.Errorf("blocks missing:\n%s", out)
	}
	if !strings.Contains(out, "ba") {
		t.Errorf("level 1 ballom missing:\n%s", out)
	}
}

func TestRenderFieldViewport(t *testing.T) {
	g := newGame(t)
	grid := fieldCells(g)
	out := RenderField(g, core.WindowCols)
	first := strings.Split(out, "\n")[0]
	// 第一行全是硬墙
	if got := strings.Count(first, "█"); got != core.WindowCols*2 {
		t.Errorf("top row has %d wall runes, want %d", got, core.WindowCols*2)
	}
	if grid[1][1].key != "player" {
		t.Errorf("spawn cell = %q, want player", grid[1][1].key)
	}
}

func TestModelTicksAndQuits(t *testing.T) {
	g := newGame(t)
	var m tea.Model = NewModel(g, Options{TickRate: 60})
	m, _ = m.Update(runeKey("s"))
	m, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if g.Tick() != 1 {
		t.Errorf("game tick = %d, want 1", g.Tick())
	}
	if _, y := g.Player().Position(); y != core.TileSize+core.BaseSpeed {
		t.Errorf("player y = %d, want moved down", y)
	}

	m, _ = m.Update(runeKey("p"))
	m, _ = m.Update(TickMsg{})
	if g.Tick() != 1 {
		t.Errorf("paused game advanced")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Errorf("paused view missing banner")
	}

	m, cmd = m.Update(runeKey("q"))
	if cmd == nil || m.View() != "" {
		t.Errorf("q should quit")
	}
}

type stubPilot struct{ calls int }

func (s *stubPilot) Next(*core.Game) core.Input {
	s.calls++
	return core.Input{Right: true}
}

func TestModelUsesPilot(t *testing.T) {
	g := newGame(t)
	pilot := &stubPilot{}
	var m tea.Model = NewModel(g, Options{Pilot: pilot})
	m, _ = m.Update(runeKey("s")) // 自动驾驶时忽略方向键
	for range 3 {
		m, _ = m.Update(TickMsg{})
	}
	if pilot.calls != 3 {
		t.Errorf("pilot calls = %d, want 3", pilot.calls)
	}
	if x, y := g.Player().Position(); x != core.TileSize+3*core.BaseSpeed || y != core.TileSize {
		t.Errorf("player at (%d,%d), want moved right only", x, y)
	}
}

func TestRenderHUD(t *testing.T) {
	g := newGame(t)
	hud := RenderHUD(g, 62)
	for _, want := range []string{"TIME 200", "STAGE 1", "LEFT 2"} {
		if !strings.Contains(hud, want) {
			t.Errorf("hud %q missing %q", hud, want)
		}
	}
	if got := powerups(g.Player()); got != "bombs 1 · fire 1" {
		t.Errorf("powerups = %q", got)
	}
}
