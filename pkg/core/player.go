package core

// Player 玩家
type Player struct {
	x, y   int // 左上角像素坐标
	facing Direction
	walk   int // 行走动画计数
	moving bool

	maxBombs   int
	blastRange int
	speedUp    bool
	wallWalker bool
	detonator  bool
	bombWalker bool
	flameProof bool
	invisible  int // 剩余无敌帧数

	lives int
	dead  bool
	death int // 死亡动画计数
}

// NewPlayer 创建初始属性的玩家
func NewPlayer() *Player {
	p := &Player{}
	p.resetAll()
	return p
}

func (p *Player) resetAll() {
	*p = Player{
		facing:     DirDown,
		maxBombs:   StartMaxBombs,
		blastRange: StartBlastRange,
		lives:      StartLives,
	}
}

// loseLife 失去一条命：保留炸弹数、火力和速度，清除其他能力
func (p *Player) loseLife() {
	p.lives--
	p.wallWalker = false
	p.detonator = false
	p.bombWalker = false
	p.flameProof = false
	p.invisible = 0
}

// respawn 回到出生点并复活
func (p *Player) respawn(t Tile) {
	p.x, p.y = t.Pixel()
	p.facing = DirDown
	p.walk = 0
	p.moving = false
	p.dead = false
	p.death = 0
}

func (p *Player) Bounds() Rect { return Rect{X: p.x, Y: p.y, W: TileSize, H: TileSize} }
func (p *Player) Position() (int, int) { return p.x, p.y }
func (p *Player) Facing() Direction { return p.facing }
func (p *Player) Lives() int { return p.lives }
func (p *Player) MaxBombs() int { return p.maxBombs }
func (p *Player) BlastRange() int { return p.blastRange }
func (p *Player) Dead() bool { return p.dead }
func (p *Player) WallWalker() bool { return p.wallWalker }
func (p *Player) Detonator() bool { return p.detonator }
func (p *Player) BombWalker() bool { return p.bombWalker }
func (p *Player) FlameProof() bool { return p.flameProof }
func (p *Player) SpeedUp() bool { return p.speedUp }
func (p *Player) Invisible() int { return p.invisible }

// Aligned 是否与网格对齐
func (p *Player) Aligned() bool {
	return p.x%TileSize == 0 && p.y%TileSize == 0
}

// Speed 当前速度（像素/帧）
func (p *Player) Speed() int {
	if p.speedUp {
		return BaseSpeed * 3 / 2
	}
	return BaseSpeed
}

// SetMaxBombs 设置最大炸弹数，返回截断到 [1, MaxBombsCap] 后的值
func (p *Player) SetMaxBombs(n int) int {
	p.maxBombs = max(1, min(n, MaxBombsCap))
	return p.maxBombs
}

// SetBlastRange 设置火力，返回截断到 [1, BlastRangeCap] 后的值
func (p *Player) SetBlastRange(n int) int {
	p.blastRange = max(1, min(n, BlastRangeCap))
	return p.blastRange
}

// Kill 进入死亡状态，只有第一次调用返回 true
func (p *Player) Kill() bool {
	if p.dead {
		return false
	}
	p.dead = true
	p.death = 0
	return true
}

// DeathFinished 死亡动画是否已播放完毕
func (p *Player) DeathFinished() bool {
	return p.dead && p.death >= PlayerDeathTicks
}

// blastProof 火焰是否无法伤害玩家
func (p *Player) blastProof() bool {
	return p.flameProof || p.invisible > 0
}

func (p *Player) update() {
	if p.dead {
		if p.death < PlayerDeathTicks {
			p.death++
		}
		return
	}
	if p.invisible > 0 {
		p.invisible--
	}
	if p.moving {
		p.walk++
	}
}

func (p *Player) Sprite() SpriteCoord {
	if p.dead {
		f := min(p.death/walkFrameTicks, PlayerDeathTicks/walkFrameTicks-1)
		return SpriteCoord{Col: f, Row: 2}
	}
	return playerWalk[p.facing][walkIndex(p.walk)]
}
