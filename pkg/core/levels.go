package core

import "fmt"

// SpeciesSlots 关卡表中的敌人种类数
const SpeciesSlots = 8

// LevelContent 一关的敌人数量（按种类顺序）与指定奖励
type LevelContent struct {
	Monsters [SpeciesSlots]int
	Bonus    BonusKind
}

// EnemyCount 本关敌人总数
func (c LevelContent) EnemyCount() int {
	n := 0
	for _, m := range c.Monsters {
		n += m
	}
	return n
}

// DefaultLevels 50 关的敌人与奖励配置
var DefaultLevels = [...]LevelContent{
	{[8]int{6, 0, 0, 0, 0, 0, 0, 0}, BonusFireRange},
	{[8]int{3, 3, 0, 0, 0, 0, 0, 0}, BonusExtraBomb},
	{[8]int{2, 2, 2, 0, 0, 0, 0, 0}, BonusDetonator},
	{[8]int{1, 1, 2, 2, 0, 0, 0, 0}, BonusSpeedUp},
	{[8]int{0, 4, 3, 0, 0, 0, 0, 0}, BonusExtraBomb},
	{[8]int{0, 2, 3, 2, 0, 0, 0, 0}, BonusExtraBomb},
	{[8]int{0, 2, 3, 0, 2, 0, 0, 0}, BonusFireRange},
	{[8]int{0, 1, 2, 4, 0, 0, 0, 0}, BonusDetonator},
	{[8]int{0, 1, 1, 4, 0, 1, 0, 0}, BonusBombWalker},
	{[8]int{0, 1, 1, 1, 1, 3, 0, 0}, BonusWallWalker},
	{[8]int{0, 1, 2, 3, 1, 1, 0, 0}, BonusExtraBomb},
	{[8]int{0, 1, 1, 1, 1, 4, 0, 0}, BonusExtraBomb},
	{[8]int{0, 0, 3, 3, 0, 2, 0, 0}, BonusDetonator},
	{[8]int{0, 0, 0, 0, 7, 0, 1, 0}, BonusBombWalker},
	{[8]int{0, 0, 1, 3, 0, 3, 1, 0}, BonusFireRange},
	{[8]int{0, 0, 0, 3, 0, 4, 1, 0}, BonusWallWalker},
	{[8]int{0, 0, 5, 0, 0, 2, 1, 0}, BonusExtraBomb},
	{[8]int{3, 3, 0, 0, 0, 0, 2, 0}, BonusBombWalker},
	{[8]int{1, 1, 3, 0, 1, 0, 2, 0}, BonusExtraBomb},
	{[8]int{0, 1, 1, 1, 1, 2, 2, 0}, BonusDetonator},
	{[8]int{0, 0, 0, 0, 3, 4, 2, 0}, BonusBombWalker},
	{[8]int{0, 0, 4, 3, 0, 1, 1, 0}, BonusDetonator},
	{[8]int{0, 0, 2, 2, 2, 2, 1, 0}, BonusExtraBomb},
	{[8]int{0, 0, 1, 1, 2, 4, 1, 0}, BonusDetonator},
	{[8]int{0, 2, 1, 1, 2, 2, 1, 0}, BonusBombWalker},
	{[8]int{1, 1, 1, 1, 1, 2, 1, 0}, BonusInvisible},
	{[8]int{1, 1, 0, 0, 1, 5, 1, 0}, BonusFireRange},
	{[8]int{0, 1, 3, 3, 0, 1, 1, 0}, BonusExtraBomb},
	{[8]int{0, 0, 0, 0, 5, 2, 2, 0}, BonusDetonator},
	{[8]int{0, 0, 3, 2, 2, 1, 1, 0}, BonusFlameProof},
	{[8]int{0, 2, 2, 2, 2, 2, 0, 0}, BonusWallWalker},
	{[8]int{0, 1, 1, 3, 0, 4, 1, 0}, BonusExtraBomb},
	{[8]int{0, 0, 2, 2, 1, 3, 2, 0}, BonusDetonator},
	{[8]int{0, 0, 2, 3, 0, 3, 2, 0}, BonusInvisible},
	{[8]int{0, 0, 2, 1, 1, 3, 2, 0}, BonusBombWalker},
	{[8]int{0, 0, 2, 2, 0, 3, 3, 0}, BonusInvisible},
	{[8]int{0, 0, 2, 1, 1, 3, 3, 0}, BonusDetonator},
	{[8]int{0, 0, 2, 2, 0, 3, 3, 0}, BonusWallWalker},
	{[8]int{0, 0, 1, 1, 2, 2, 4, 0}, BonusBombWalker},
	{[8]int{0, 0, 1, 2, 0, 3, 4, 0}, BonusInvisible},
	{[8]int{0, 0, 1, 1, 1, 3, 4, 0}, BonusDetonator},
	{[8]int{0, 0, 0, 1, 1, 3, 5, 0}, BonusWallWalker},
	{[8]int{0, 0, 0, 1, 1, 2, 6, 0}, BonusBombWalker},
	{[8]int{0, 0, 0, 1, 1, 2, 6, 0}, BonusDetonator},
	{[8]int{0, 0, 0, 0, 2, 2, 6, 0}, BonusInvisible},
	{[8]int{0, 0, 0, 0, 2, 2, 6, 0}, BonusWallWalker},
	{[8]int{0, 0, 0, 0, 2, 2, 6, 0}, BonusBombWalker},
	{[8]int{0, 0, 0, 0, 1, 2, 6, 1}, BonusDetonator},
	{[8]int{0, 0, 0, 0, 2, 1, 6, 1}, BonusFlameProof},
	{[8]int{0, 0, 0, 0, 2, 1, 5, 2}, BonusInvisible},
}

// LevelTable 关卡表，1 起始
type LevelTable []LevelContent

// Content 第 level 关的内容，超出部分沿用最后一关
func (t LevelTable) Content(level int) (LevelContent, error) {
	if level < 1 {
		return LevelContent{}, fmt.Errorf("关卡 %d: %w", level, ErrInvalidLevel)
	}
	if len(t) == 0 {
		return LevelContent{}, fmt.Errorf("关卡表为空: %w", ErrInvalidLevel)
	}
	if level > len(t) {
		level = len(t)
	}
	return t[level-1], nil
}

// DefaultLevelTable 内置关卡表
func DefaultLevelTable() LevelTable {
	return LevelTable(DefaultLevels[:])
}
