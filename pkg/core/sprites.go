package core

// SpriteCoord 精灵表中的一个单元：列、行和逆时针旋转的 90° 次数
type SpriteCoord struct {
	Col, Row int
	Rotation int
}

// Sprite 可绘制的实体
type Sprite interface {
	Body
	Sprite() SpriteCoord
}

var (
	bombFrames  = [4]SpriteCoord{{Col: 0, Row: 3}, {Col: 1, Row: 3}, {Col: 2, Row: 3}, {Col: 1, Row: 3}}
	hardSprite  = SpriteCoord{Col: 3, Row: 3}
	softSprite  = SpriteCoord{Col: 4, Row: 3}
	blastCols   = [blastFrames]int{0, 1, 2, 3, 2, 1, 0}
	playerWalk  = [4][4]SpriteCoord{}
	enemyRows   = [...]int{8, 9, 10, 11, 12, 13, 14, 15}
	enemyDeaths = [...]int{8, 9, 10, 8, 9, 10, 8, 8}
)

func init() {
	// 每个方向 4 帧：左、下、右、上
	bases := [4][2]int{{0, 0}, {3, 0}, {0, 1}, {3, 1}}
	for d, b := range bases {
		for i, off := range [4]int{0, 1, 2, 1} {
			playerWalk[d][i] = SpriteCoord{Col: b[0] + off, Row: b[1]}
		}
	}
}

func walkIndex(ticks int) int {
	return (ticks / walkFrameTicks) % 4
}

func enemyMoveSprite(s Species, d Direction, ticks int) SpriteCoord {
	row := enemyRows[int(s)%len(enemyRows)]
	// 朝左/下使用第一组帧，朝右/上使用第二组
	base := 3
	if int(d)/2 == 1 {
		base = 0
	}
	return SpriteCoord{Col: base + [4]int{0, 1, 2, 1}[walkIndex(ticks)], Row: row}
}

func enemyDeathSprite(s Species, ticks int) SpriteCoord {
	row := enemyDeaths[int(s)%len(enemyDeaths)]
	f := min(ticks/walkFrameTicks, enemyDeathTicks/walkFrameTicks-1)
	return SpriteCoord{Col: 7 + f, Row: row}
}
