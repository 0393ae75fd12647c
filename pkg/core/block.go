package core

// HardBlock 不可摧毁的硬墙
type HardBlock struct {
	tile Tile
}

func (b *HardBlock) Tile() Tile { return b.tile }
func (b *HardBlock) Bounds() Rect { return b.tile.Rect() }
func (b *HardBlock) Sprite() SpriteCoord { return hardSprite }

// SoftBlock 可炸毁的砖块，可能藏有奖励
type SoftBlock struct {
	tile  Tile
	bonus BonusKind
	dead  bool
	ticks int // 消失动画已播放的帧数
}

func newSoftBlock(p SoftPlacement) *SoftBlock {
	return &SoftBlock{tile: p.Tile, bonus: p.Bonus}
}

func (b *SoftBlock) Tile() Tile { return b.tile }
func (b *SoftBlock) Bounds() Rect { return b.tile.Rect() }
func (b *SoftBlock) Bonus() BonusKind { return b.bonus }
func (b *SoftBlock) Dead() bool { return b.dead }

// Destroy 标记摧毁，只有第一次调用返回 true
func (b *SoftBlock) Destroy() bool {
	if b.dead {
		return false
	}
	b.dead = true
	return true
}

// update 推进消失动画，播放完毕返回 true
func (b *SoftBlock) update() bool {
	if !b.dead {
		return false
	}
	b.ticks++
	return b.ticks >= softBlockFrames*softBlockFrameTicks
}

func (b *SoftBlock) Sprite() SpriteCoord {
	if !b.dead {
		return softSprite
	}
	f := min(b.ticks/softBlockFrameTicks, softBlockFrames-1)
	return SpriteCoord{Col: 5 + f, Row: 3}
}
