package core

// BonusKind 奖励种类，数值即精灵表列号
type BonusKind int

const (
	BonusNone BonusKind = iota - 1
	BonusExtraBomb
	BonusFireRange
	BonusSpeedUp
	BonusWallWalker
	BonusDetonator
	BonusBombWalker
	BonusFlameProof
	BonusInvisible
	BonusExit
)

var bonusNames = map[BonusKind]string{
	BonusNone:       "none",
	BonusExtraBomb:  "extra-bomb",
	BonusFireRange:  "fire-range",
	BonusSpeedUp:    "speed-up",
	BonusWallWalker: "wall-walker",
	BonusDetonator:  "detonator",
	BonusBombWalker: "bomb-walker",
	BonusFlameProof: "flame-proof",
	BonusInvisible:  "invisibility",
	BonusExit:       "exit",
}

func (k BonusKind) String() string {
	if n, ok := bonusNames[k]; ok {
		return n
	}
	return "unknown"
}

// Bonus 场上的奖励道具
type Bonus struct {
	tile Tile
	kind BonusKind
}

func newBonus(t Tile, k BonusKind) *Bonus {
	return &Bonus{tile: t, kind: k}
}

func (b *Bonus) Tile() Tile { return b.tile }
func (b *Bonus) Kind() BonusKind { return b.kind }
func (b *Bonus) Bounds() Rect { return b.tile.Rect() }
func (b *Bonus) IsExit() bool { return b.kind == BonusExit }
func (b *Bonus) Sprite() SpriteCoord {
	return SpriteCoord{Col: int(b.kind), Row: 7}
}

// apply 把奖励效果作用到玩家身上，出口不在这里处理
func (b *Bonus) apply(p *Player) {
	switch b.kind {
	case BonusExtraBomb:
		p.SetMaxBombs(p.maxBombs + 1)
	case BonusFireRange:
		p.SetBlastRange(p.blastRange + 1)
	case BonusSpeedUp:
		p.speedUp = true
	case BonusWallWalker:
		p.wallWalker = true
	case BonusDetonator:
		p.detonator = true
	case BonusBombWalker:
		p.bombWalker = true
	case BonusFlameProof:
		p.flameProof = true
	case BonusInvisible:
		p.invisible = InvisibleTicks
	}
}
