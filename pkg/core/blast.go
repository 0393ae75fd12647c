package core

// SegmentKind 火焰段类型，数值对应精灵表行偏移
type SegmentKind int

const (
	SegmentTip SegmentKind = iota
	SegmentArm
	SegmentCenter
)

func (k SegmentKind) String() string {
	switch k {
	case SegmentTip:
		return "tip"
	case SegmentArm:
		return "arm"
	case SegmentCenter:
		return "center"
	}
	return "unknown"
}

// Blast 一格火焰，独立计时
type Blast struct {
	tile  Tile
	kind  SegmentKind
	dir   Direction
	ticks int
}

func newBlast(s Segment) *Blast {
	return &Blast{tile: s.Tile, kind: s.Kind, dir: s.Dir}
}

func (b *Blast) Tile() Tile { return b.tile }
func (b *Blast) Bounds() Rect { return b.tile.Rect() }
func (b *Blast) Kind() SegmentKind { return b.kind }
func (b *Blast) Direction() Direction { return b.dir }
func (b *Blast) Remaining() int { return BlastTicks - b.ticks }

// update 推进火焰，寿命结束返回 true
func (b *Blast) update() bool {
	b.ticks++
	return b.ticks >= BlastTicks
}

func (b *Blast) Sprite() SpriteCoord {
	f := min(b.ticks*blastFrames/BlastTicks, blastFrames-1)
	return SpriteCoord{
		Col:      blastCols[f],
		Row:      4 + int(b.kind),
		Rotation: (int(b.dir) + 1) % 4,
	}
}
