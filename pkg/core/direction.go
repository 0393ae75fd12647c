package core

// Direction 方向，取值顺序与精灵表行一致
type Direction int

const (
	DirLeft Direction = iota
	DirDown
	DirRight
	DirUp
)

// Directions 四个方向（固定顺序，爆炸扩散和 AI 都按此顺序遍历）
var Directions = [4]Direction{DirLeft, DirDown, DirRight, DirUp}

// Delta 返回该方向上的单位位移
func (d Direction) Delta() (int, int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirDown:
		return 0, 1
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	}
	return 0, 0
}

// Horizontal 是否为水平方向
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// Opposite 反方向
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	}
	return "unknown"
}

// Offset 把坐标沿方向移动 delta
func (d Direction) Offset(x, y, delta int) (int, int) {
	dx, dy := d.Delta()
	return x + dx*delta, y + dy*delta
}
