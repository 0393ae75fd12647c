package core

import (
	"fmt"
	"iter"
	"math/rand"
	"slices"
)

// Assets 加载一次后只读的资源，由边界层构造后传入
type Assets struct {
	Map    *StaticMap
	Levels LevelTable
}

// DefaultAssets 内置地图和关卡表
func DefaultAssets() Assets {
	return Assets{Map: DefaultMap(), Levels: DefaultLevelTable()}
}

// GameConfig 游戏参数
type GameConfig struct {
	Seed       int64
	StartLevel int
}

// Game 一局游戏，持有所有可变实体
type Game struct {
	assets Assets
	rng    *rand.Rand
	gen    *Generator
	index  *Index

	player  *Player
	hard    []*HardBlock
	soft    []*SoftBlock
	bombs   []*Bomb
	blasts  []*Blast
	bonuses []*Bonus
	enemies []*Enemy

	level      int
	score      int
	levelScore int // 本关已得分，失去生命时扣除
	timer      int
	tick       uint64

	prevDetonate bool
	events       []Event
}

// NewGame 创建游戏并初始化起始关卡
func NewGame(a Assets, cfg GameConfig) (*Game, error) {
	if a.Map == nil {
		a.Map = DefaultMap()
	}
	if len(a.Levels) == 0 {
		a.Levels = DefaultLevelTable()
	}
	level := cfg.StartLevel
	if level == 0 {
		level = 1
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	g := &Game{
		assets: a,
		rng:    rng,
		gen:    NewGenerator(a.Map, rng).WithLevels(a.Levels),
		index:  NewIndex(),
		player: NewPlayer(),
	}
	for t := range a.Map.Tiles() {
		if t.Sym == SymHard {
			g.hard = append(g.hard, &HardBlock{tile: t.Tile})
		}
	}
	if err := g.InitializeLevel(level); err != nil {
		return nil, err
	}
	return g, nil
}

// InitializeLevel 生成新布局并把玩家放回出生点
func (g *Game) InitializeLevel(level int) error {
	layout, err := g.gen.Generate(level)
	if err != nil {
		return fmt.Errorf("初始化关卡 %d: %w", level, err)
	}

	g.index.Clear()
	for _, h := range g.hard {
		g.index.Insert(h, LayerHard)
	}
	g.soft = g.soft[:0]
	for _, sp := range layout.SoftBlocks {
		b := newSoftBlock(sp)
		g.soft = append(g.soft, b)
		g.index.Insert(b, LayerSoft)
	}
	g.enemies = g.enemies[:0]
	for _, ep := range layout.Enemies {
		e, err := NewEnemy(ep.Species, ep.Tile, Directions[g.rng.Intn(len(Directions))])
		if err != nil {
			return fmt.Errorf("初始化关卡 %d: %w", level, err)
		}
		g.enemies = append(g.enemies, e)
	}
	g.bombs = g.bombs[:0]
	g.blasts = g.blasts[:0]
	g.bonuses = g.bonuses[:0]

	g.level = level
	g.levelScore = 0
	g.timer = LevelTimeTicks
	g.prevDetonate = false
	g.player.respawn(g.assets.Map.Spawn())
	g.emit(Event{Kind: EventLevelStarted, Lives: g.player.lives, Score: g.score})
	return nil
}

// Update 推进一帧，顺序固定：
// 倒计时、死亡结算、玩家移动、放炸弹、遥控引爆、碰撞、各实体自身更新。
func (g *Game) Update(in Input) error {
	g.events = nil
	g.tick++
	p := g.player

	if !p.dead && g.timer > 0 {
		g.timer--
		if g.timer == 0 {
			g.emit(Event{Kind: EventTimeUp})
			g.killPlayer()
		}
	}

	if p.DeathFinished() {
		return g.loseLife()
	}

	g.movePlayer(in)

	if in.PlaceBomb {
		g.placeBomb()
	}

	if in.Detonate && !g.prevDetonate {
		g.remoteDetonate()
	}
	g.prevDetonate = in.Detonate

	advanced, err := g.resolveCollisions()
	if err != nil || advanced {
		return err
	}

	g.updateEntities()
	return nil
}

func (g *Game) killPlayer() {
	if g.player.Kill() {
		g.emit(Event{Kind: EventPlayerDied, Lives: g.player.lives})
	}
}

// loseLife 扣除一条命；命用完时整局重置
func (g *Game) loseLife() error {
	p := g.player
	final := g.score
	p.loseLife()
	g.score -= g.levelScore
	if p.lives < 0 {
		g.emit(Event{Kind: EventGameOver, Score: final})
		p.resetAll()
		g.score = 0
		return g.InitializeLevel(1)
	}
	g.emit(Event{Kind: EventLifeLost, Lives: p.lives, Score: g.score})
	return g.InitializeLevel(g.level)
}

// placeBomb 在玩家中心所在的格子放炸弹，超出上限或已有炸弹时忽略
func (g *Game) placeBomb() {
	p := g.player
	if p.dead || len(g.bombs) >= p.maxBombs {
		return
	}
	pr := p.Bounds()
	for _, b := range g.bombs {
		if CollideRatio(b.Bounds(), pr, BombOverlapRatio) {
			return
		}
	}
	b := newBomb(pr.CenterTile(), p.blastRange, p.detonator, g.tick)
	g.bombs = append(g.bombs, b)
	g.index.Insert(b, LayerBomb)
	g.emit(Event{Kind: EventBombPlaced, Tile: b.tile})
}

// remoteDetonate 点燃最早放置的炸弹
func (g *Game) remoteDetonate() {
	if g.player.dead || !g.player.detonator || len(g.bombs) == 0 {
		return
	}
	oldest := g.bombs[0]
	for _, b := range g.bombs[1:] {
		if b.placed < oldest.placed {
			oldest = b
		}
	}
	oldest.Ignite()
}

func (g *Game) removeBomb(b *Bomb) {
	g.bombs = slices.DeleteFunc(g.bombs, func(o *Bomb) bool { return o == b })
	g.index.Remove(b)
}

func touchesAny(ix *Index, r Rect, mask Layer) bool {
	for _, b := range ix.Collide(r, mask, nil) {
		if CollideRatio(r, b.Bounds(), ContactRatio) {
			return true
		}
	}
	return false
}

// resolveCollisions 先查询后执行。进入下一关时返回 true
func (g *Game) resolveCollisions() (bool, error) {
	p := g.player
	pr := p.Bounds()

	enemyHit := false
	if !p.dead && p.invisible == 0 {
		for _, e := range g.enemies {
			if e.Alive() && CollideRatio(pr, e.Bounds(), ContactRatio) {
				enemyHit = true
				break
			}
		}
	}

	var collected []*Bonus
	if !p.dead {
		for _, b := range g.index.Collide(pr, LayerBonus, nil) {
			if CollideRatio(pr, b.Bounds(), ContactRatio) {
				collected = append(collected, b.(*Bonus))
			}
		}
	}

	var burned []*Enemy
	for _, e := range g.enemies {
		if e.Alive() && touchesAny(g.index, e.Bounds(), LayerBlast) {
			burned = append(burned, e)
		}
	}

	blastHit := !p.dead && !p.blastProof() && touchesAny(g.index, pr, LayerBlast)

	if enemyHit {
		g.killPlayer()
	}
	for _, b := range collected {
		if p.dead {
			break
		}
		if b.IsExit() {
			if len(g.enemies) > 0 {
				continue
			}
			g.emit(Event{Kind: EventLevelCleared, Score: g.score})
			return true, g.InitializeLevel(g.level + 1)
		}
		b.apply(p)
		g.bonuses = slices.DeleteFunc(g.bonuses, func(o *Bonus) bool { return o == b })
		g.index.Remove(b)
		g.emit(Event{Kind: EventBonusCollected, Tile: b.tile, Bonus: b.kind})
	}
	for _, e := range burned {
		if e.Kill() {
			g.score += e.params.Points
			g.levelScore += e.params.Points
			g.emit(Event{Kind: EventEnemyKilled, Tile: e.Bounds().CenterTile(), Species: e.species, Points: e.params.Points})
		}
	}
	if blastHit {
		g.killPlayer()
	}
	return false, nil
}

func (g *Game) updateEntities() {
	g.player.update()

	g.enemies = slices.DeleteFunc(g.enemies, func(e *Enemy) bool {
		return g.updateEnemy(e, g.rng)
	})

	// 先统一倒计时再引爆，本帧被波及的炸弹不会在同一帧爆炸
	var due []*Bomb
	for _, b := range g.bombs {
		if b.tick() {
			due = append(due, b)
		}
	}
	for _, b := range due {
		g.detonate(b)
	}

	g.blasts = slices.DeleteFunc(g.blasts, func(b *Blast) bool {
		if b.update() {
			g.index.Remove(b)
			return true
		}
		return false
	})

	g.soft = slices.DeleteFunc(g.soft, func(b *SoftBlock) bool {
		if !b.update() {
			return false
		}
		g.index.Remove(b)
		if b.bonus != BonusNone {
			bonus := newBonus(b.tile, b.bonus)
			g.bonuses = append(g.bonuses, bonus)
			g.index.Insert(bonus, LayerBonus)
		}
		return true
	})
}

func (g *Game) Player() *Player { return g.player }
func (g *Game) Enemies() []*Enemy { return g.enemies }
func (g *Game) Bombs() []*Bomb { return g.bombs }
func (g *Game) Blasts() []*Blast { return g.blasts }
func (g *Game) Bonuses() []*Bonus { return g.bonuses }
func (g *Game) SoftBlocks() []*SoftBlock { return g.soft }
func (g *Game) HardBlocks() []*HardBlock { return g.hard }
func (g *Game) Map() *StaticMap { return g.assets.Map }
func (g *Game) Levels() LevelTable { return g.assets.Levels }
func (g *Game) Level() int { return g.level }
func (g *Game) Score() int { return g.score }
func (g *Game) Tick() uint64 { return g.tick }

// TimeLeft 剩余时间（帧）
func (g *Game) TimeLeft() int { return g.timer }

// Camera 当前水平卷动量
func (g *Game) Camera() int { return CameraOffset(g.player.x) }

// LayersAt 格子上的碰撞层
func (g *Game) LayersAt(t Tile) Layer {
	if !t.InField() {
		return LayerHard
	}
	return g.index.LayerAt(t)
}

// Sprites 按绘制顺序遍历所有可见实体
func (g *Game) Sprites() iter.Seq[Sprite] {
	return func(yield func(Sprite) bool) {
		for _, b := range g.hard {
			if !yield(b) {
				return
			}
		}
		for _, b := range g.bonuses {
			if !yield(b) {
				return
			}
		}
		for _, b := range g.soft {
			if !yield(b) {
				return
			}
		}
		for _, b := range g.bombs {
			if !yield(b) {
				return
			}
		}
		for _, b := range g.blasts {
			if !yield(b) {
				return
			}
		}
		for _, e := range g.enemies {
			if !yield(e) {
				return
			}
		}
		yield(g.player)
	}
}
