package core

// Tile 格子坐标
type Tile struct {
	X, Y int
}

// Pixel 格子左上角的像素坐标
func (t Tile) Pixel() (int, int) {
	return t.X * TileSize, t.Y * TileSize
}

// Rect 返回格子对应的矩形
func (t Tile) Rect() Rect {
	return Rect{X: t.X * TileSize, Y: t.Y * TileSize, W: TileSize, H: TileSize}
}

// Step 相邻格子
func (t Tile) Step(d Direction, n int) Tile {
	x, y := d.Offset(t.X, t.Y, n)
	return Tile{X: x, Y: y}
}

// InField 是否在场地范围内
func (t Tile) InField() bool {
	return t.X >= 0 && t.X < FieldCols && t.Y >= 0 && t.Y < FieldRows
}

// Rect 轴对齐矩形（像素），右边和下边为开区间
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Right() int { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// CenterX 中心点 X
func (r Rect) CenterX() int { return r.X + r.W/2 }

// CenterY 中心点 Y
func (r Rect) CenterY() int { return r.Y + r.H/2 }

// Overlaps 两个矩形是否相交（仅接触边不算）
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// ContainsPoint 点是否落在矩形内
func (r Rect) ContainsPoint(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Scaled 以中心为基准缩放矩形
func (r Rect) Scaled(ratio float64) Rect {
	w := int(float64(r.W) * ratio)
	h := int(float64(r.H) * ratio)
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}

// Moved 平移后的矩形
func (r Rect) Moved(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// CenterTile 中心点所在的格子
func (r Rect) CenterTile() Tile {
	return Tile{X: floorDiv(r.CenterX(), TileSize), Y: floorDiv(r.CenterY(), TileSize)}
}

// CollideRatio 按比例缩小后再判断相交
func CollideRatio(a, b Rect, ratio float64) bool {
	return a.Scaled(ratio).Overlaps(b.Scaled(ratio))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
