package core

// Bomb 炸弹
type Bomb struct {
	tile   Tile
	rng    int
	timer  int // 剩余帧数，遥控炸弹为 -1
	ticks  int
	placed uint64 // 放置时的全局帧号，用于遥控引爆最早的炸弹
}

func newBomb(t Tile, blastRange int, remote bool, tick uint64) *Bomb {
	timer := BombFuseTicks
	if remote {
		timer = -1
	}
	return &Bomb{tile: t, rng: blastRange, timer: timer, placed: tick}
}

func (b *Bomb) Tile() Tile { return b.tile }
func (b *Bomb) Bounds() Rect { return b.tile.Rect() }
func (b *Bomb) Range() int { return b.rng }
func (b *Bomb) Timer() int { return b.timer }
func (b *Bomb) Remote() bool { return b.timer < 0 }
func (b *Bomb) PlacedAt() uint64 { return b.placed }

// Ignite 被波及或遥控引爆：引信缩短为 ChainFuseTicks，已经更短的保持不变
func (b *Bomb) Ignite() {
	if b.timer > ChainFuseTicks || b.timer < 0 {
		b.timer = ChainFuseTicks
	}
}

// tick 倒计时，恰好归零的这一帧返回 true
func (b *Bomb) tick() bool {
	b.ticks++
	if b.timer <= 0 {
		return false
	}
	b.timer--
	return b.timer == 0
}

func (b *Bomb) Sprite() SpriteCoord {
	return bombFrames[walkIndex(b.ticks)]
}
