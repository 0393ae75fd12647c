package core

// Action 非方向按键
type Action int

const (
	ActionPlaceBomb Action = iota
	ActionDetonate
)

// Input 一帧的输入快照
type Input struct {
	Left, Down, Right, Up bool
	PlaceBomb             bool
	Detonate              bool
}

// Pressed 方向键是否按下
func (in Input) Pressed(d Direction) bool {
	switch d {
	case DirLeft:
		return in.Left
	case DirDown:
		return in.Down
	case DirRight:
		return in.Right
	case DirUp:
		return in.Up
	}
	return false
}

// Press 返回按下方向 d 后的输入
func (in Input) Press(d Direction) Input {
	switch d {
	case DirLeft:
		in.Left = true
	case DirDown:
		in.Down = true
	case DirRight:
		in.Right = true
	case DirUp:
		in.Up = true
	}
	return in
}

// InputSource 每帧轮询一次的输入来源
type InputSource interface {
	DirectionPressed(d Direction) bool
	ActionPressed(a Action) bool
}

// PollInput 把输入来源读成快照
func PollInput(src InputSource) Input {
	var in Input
	for _, d := range Directions {
		if src.DirectionPressed(d) {
			in = in.Press(d)
		}
	}
	in.PlaceBomb = src.ActionPressed(ActionPlaceBomb)
	in.Detonate = src.ActionPressed(ActionDetonate)
	return in
}
