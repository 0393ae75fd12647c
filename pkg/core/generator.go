package core

import (
	"fmt"
	"math/rand"
)

// SoftPlacement 砖块位置及其携带的奖励
type SoftPlacement struct {
	Tile  Tile
	Bonus BonusKind
}

// EnemyPlacement 敌人出生位置
type EnemyPlacement struct {
	Tile    Tile
	Species Species
}

// Layout 一关的随机布局
type Layout struct {
	Level      int
	SoftBlocks []SoftPlacement
	Enemies    []EnemyPlacement
}

// BonusCount 布局中藏有奖励的砖块数
func (l Layout) BonusCount() int {
	n := 0
	for _, s := range l.SoftBlocks {
		if s.Bonus != BonusNone {
			n++
		}
	}
	return n
}

// Generator 关卡生成器
type Generator struct {
	source TileSource
	levels LevelTable
	rng    *rand.Rand
}

// NewGenerator 使用外部提供的随机源
func NewGenerator(source TileSource, rng *rand.Rand) *Generator {
	return &Generator{source: source, levels: DefaultLevelTable(), rng: rng}
}

// NewSeededGenerator 可复现的生成器
func NewSeededGenerator(source TileSource, seed int64) *Generator {
	return NewGenerator(source, rand.New(rand.NewSource(seed)))
}

// WithLevels 替换关卡表
func (g *Generator) WithLevels(t LevelTable) *Generator {
	g.levels = t
	return g
}

// Levels 当前关卡表
func (g *Generator) Levels() LevelTable {
	return g.levels
}

// Generate 生成第 level 关的砖块、奖励和敌人
func (g *Generator) Generate(level int) (Layout, error) {
	content, err := g.levels.Content(level)
	if err != nil {
		return Layout{}, err
	}
	for slot, n := range content.Monsters {
		if n == 0 {
			continue
		}
		if _, err := Species(slot).Params(); err != nil {
			return Layout{}, fmt.Errorf("关卡 %d: %w", level, err)
		}
	}

	var free []Tile
	enemyOK := make(map[Tile]bool)
	for t := range g.source.Tiles() {
		switch t.Sym {
		case SymFree:
			free = append(free, t.Tile)
			enemyOK[t.Tile] = true
		case SymSoftOnly:
			free = append(free, t.Tile)
		}
	}

	count := min(SoftBlockBase+level*SoftBlockPerLevel, len(free))
	g.rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })
	softTiles := free[:count]

	layout := Layout{Level: level, SoftBlocks: make([]SoftPlacement, count)}
	for i, t := range softTiles {
		layout.SoftBlocks[i] = SoftPlacement{Tile: t, Bonus: BonusNone}
		delete(enemyOK, t)
	}
	switch {
	case count >= 2:
		layout.SoftBlocks[count-1].Bonus = content.Bonus
		layout.SoftBlocks[count-2].Bonus = BonusExit
	case count == 1:
		layout.SoftBlocks[0].Bonus = BonusExit
	}

	// 剩余空地按原顺序收集后再洗牌，保证同一种子结果一致
	pool := make([]Tile, 0, len(enemyOK))
	for t := range g.source.Tiles() {
		if enemyOK[t.Tile] {
			pool = append(pool, t.Tile)
		}
	}
	g.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	for slot, n := range content.Monsters {
		for range n {
			if len(pool) == 0 {
				return layout, nil
			}
			t := pool[len(pool)-1]
			pool = pool[:len(pool)-1]
			layout.Enemies = append(layout.Enemies, EnemyPlacement{Tile: t, Species: Species(slot)})
		}
	}
	return layout, nil
}
