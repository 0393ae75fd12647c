package client

import (
	"github.com/hajimehoshi/ebiten/v2"

	"bomberclassic/pkg/core"
)

// ControlScheme 按键方案
type ControlScheme int

const (
	ControlWASD  ControlScheme = iota // WASD + 空格放炸弹 + B 引爆
	ControlArrow                      // 方向键 + 回车放炸弹 + 右 Shift 引爆
)

func (c ControlScheme) String() string {
	switch c {
	case ControlWASD:
		return "WASD+空格"
	case ControlArrow:
		return "方向键+回车"
	}
	return "未知"
}

// ParseControlScheme 按名字解析
func ParseControlScheme(name string) (ControlScheme, bool) {
	switch name {
	case "wasd", "":
		return ControlWASD, true
	case "arrows", "arrow":
		return ControlArrow, true
	}
	return ControlWASD, false
}

type keyMap struct {
	dirs           [4]ebiten.Key // 按 core.Direction 索引
	bomb, detonate ebiten.Key
}

var keyMaps = map[ControlScheme]keyMap{
	ControlWASD: {
		dirs:     [4]ebiten.Key{core.DirLeft: ebiten.KeyA, core.DirDown: ebiten.KeyS, core.DirRight: ebiten.KeyD, core.DirUp: ebiten.KeyW},
		bomb:     ebiten.KeySpace,
		detonate: ebiten.KeyB,
	},
	ControlArrow: {
		dirs:     [4]ebiten.Key{core.DirLeft: ebiten.KeyArrowLeft, core.DirDown: ebiten.KeyArrowDown, core.DirRight: ebiten.KeyArrowRight, core.DirUp: ebiten.KeyArrowUp},
		bomb:     ebiten.KeyEnter,
		detonate: ebiten.KeyShiftRight,
	},
}

// Keyboard 键盘输入来源
type Keyboard struct {
	Scheme ControlScheme
}

func (k Keyboard) keys() keyMap {
	m, ok := keyMaps[k.Scheme]
	if !ok {
		m = keyMaps[ControlWASD]
	}
	return m
}

func (k Keyboard) DirectionPressed(d core.Direction) bool {
	return ebiten.IsKeyPressed(k.keys().dirs[d])
}

func (k Keyboard) ActionPressed(a core.Action) bool {
	m := k.keys()
	switch a {
	case core.ActionPlaceBomb:
		return ebiten.IsKeyPressed(m.bomb)
	case core.ActionDetonate:
		return ebiten.IsKeyPressed(m.detonate)
	}
	return false
}
