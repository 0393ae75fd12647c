package core

// Body 拥有碰撞矩形的实体
type Body interface {
	Bounds() Rect
}

// Layer 碰撞层，可按位组合成查询掩码
type Layer uint8

const (
	LayerHard Layer = 1 << iota
	LayerSoft
	LayerBomb
	LayerBlast
	LayerBonus

	LayerBlocks = LayerHard | LayerSoft
	LayerAll    = LayerHard | LayerSoft | LayerBomb | LayerBlast | LayerBonus
)

type indexEntry struct {
	body  Body
	layer Layer
}

// Index 按格子分桶的空间索引
type Index struct {
	cells map[Tile][]indexEntry
	size  int
}

// NewIndex 创建空索引
func NewIndex() *Index {
	return &Index{cells: make(map[Tile][]indexEntry)}
}

// Len 索引中的实体数
func (ix *Index) Len() int { return ix.size }

// Clear 清空索引
func (ix *Index) Clear() {
	clear(ix.cells)
	ix.size = 0
}

func spannedTiles(r Rect, fn func(Tile)) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	x0, x1 := floorDiv(r.X, TileSize), floorDiv(r.Right()-1, TileSize)
	y0, y1 := floorDiv(r.Y, TileSize), floorDiv(r.Bottom()-1, TileSize)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			fn(Tile{X: x, Y: y})
		}
	}
}

// Insert 加入实体，实体的矩形在移除前不能改变
func (ix *Index) Insert(b Body, layer Layer) {
	spannedTiles(b.Bounds(), func(t Tile) {
		ix.cells[t] = append(ix.cells[t], indexEntry{body: b, layer: layer})
	})
	ix.size++
}

// Remove 移除实体
func (ix *Index) Remove(b Body) {
	found := false
	spannedTiles(b.Bounds(), func(t Tile) {
		bucket := ix.cells[t]
		for i, e := range bucket {
			if e.body == b {
				bucket = append(bucket[:i], bucket[i+1:]...)
				found = true
				break
			}
		}
		if len(bucket) == 0 {
			delete(ix.cells, t)
		} else {
			ix.cells[t] = bucket
		}
	})
	if found {
		ix.size--
	}
}

// Collide 返回与 r 相交且属于 mask 的实体，skip 返回 true 的实体被忽略
func (ix *Index) Collide(r Rect, mask Layer, skip func(Body) bool) []Body {
	var out []Body
	seen := make(map[Body]bool)
	spannedTiles(r, func(t Tile) {
		for _, e := range ix.cells[t] {
			if e.layer&mask == 0 || seen[e.body] {
				continue
			}
			seen[e.body] = true
			if skip != nil && skip(e.body) {
				continue
			}
			if e.body.Bounds().Overlaps(r) {
				out = append(out, e.body)
			}
		}
	})
	return out
}

// Blocked r 是否与 mask 中任一实体相交
func (ix *Index) Blocked(r Rect, mask Layer, skip func(Body) bool) bool {
	blocked := false
	spannedTiles(r, func(t Tile) {
		if blocked {
			return
		}
		for _, e := range ix.cells[t] {
			if e.layer&mask == 0 || (skip != nil && skip(e.body)) {
				continue
			}
			if e.body.Bounds().Overlaps(r) {
				blocked = true
				return
			}
		}
	})
	return blocked
}

// AtTile 格子上属于 mask 的实体
func (ix *Index) AtTile(t Tile, mask Layer) []Body {
	var out []Body
	for _, e := range ix.cells[t] {
		if e.layer&mask != 0 {
			out = append(out, e.body)
		}
	}
	return out
}

// LayerAt 格子上出现的所有层
func (ix *Index) LayerAt(t Tile) Layer {
	var l Layer
	for _, e := range ix.cells[t] {
		l |= e.layer
	}
	return l
}
