package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"bomberclassic/pkg/core"
)

// DefaultHoldTicks 终端没有松键事件，按键后保持的帧数
const DefaultHoldTicks = 8

// keyHold 用按键重复模拟"按住"：最近 hold 帧内收到过的方向视为仍按下
type keyHold struct {
	hold     uint64
	now      uint64
	dir      core.Direction
	lastSeen uint64
	held     bool

	bomb, detonate bool // 动作键只生效一帧
}

func newKeyHold(hold int) keyHold {
	if hold <= 0 {
		hold = DefaultHoldTicks
	}
	return keyHold{hold: uint64(hold)}
}

var dirKeys = map[string]core.Direction{
	"left": core.DirLeft, "a": core.DirLeft, "h": core.DirLeft,
	"down": core.DirDown, "s": core.DirDown, "j": core.DirDown,
	"right": core.DirRight, "d": core.DirRight, "l": core.DirRight,
	"up": core.DirUp, "w": core.DirUp, "k": core.DirUp,
}

// key 处理一次按键，返回是否被识别
func (k *keyHold) key(msg tea.KeyMsg) bool {
	s := msg.String()
	if d, ok := dirKeys[s]; ok {
		// 新方向覆盖旧方向
		k.dir, k.lastSeen, k.held = d, k.now, true
		return true
	}
	switch s {
	case " ", "enter":
		k.bomb = true
	case "b", "x":
		k.detonate = true
	default:
		return false
	}
	return true
}

// next 取出这一帧的输入并前进一帧
func (k *keyHold) next() core.Input {
	var in core.Input
	if k.held && k.now-k.lastSeen <= k.hold {
		in = in.Press(k.dir)
	} else {
		k.held = false
	}
	in.PlaceBomb, in.Detonate = k.bomb, k.detonate
	k.bomb, k.detonate = false, false
	k.now++
	return in
}

// release 松开所有键
func (k *keyHold) release() {
	k.held, k.bomb, k.detonate = false, false, false
}
