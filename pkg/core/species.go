package core

import "fmt"

// Species 敌人种类，与关卡表槽位一一对应
type Species int

const (
	Ballom Species = iota
	Onil
	Dahl
	Minvo
	Doria
	Ovape
	Tiglon
	Pontan
)

var speciesNames = [...]string{"ballom", "onil", "dahl", "minvo", "doria", "ovape", "tiglon", "pontan"}

func (s Species) String() string {
	if s < 0 || int(s) >= len(speciesNames) {
		return fmt.Sprintf("species(%d)", int(s))
	}
	return speciesNames[s]
}

// SpeciesParams 每个种类的行为参数
type SpeciesParams struct {
	Speed            int     // 像素/帧
	TurnRatio        float64 // 对齐时主动转向的概率
	TurnTime         int     // 被迫转向后的停顿帧数
	Chaser           bool    // 是否追踪玩家
	ChaseRadius      int     // 追踪半径（像素）
	RandomTurnChance float64 // 追踪者随机选向的概率
	PassSoft         bool    // 可穿过砖块
	Points           int
}

var speciesTable = map[Species]SpeciesParams{
	Ballom: {Speed: 1, TurnRatio: 0.05, TurnTime: 15, Points: 100},
	Onil:   {Speed: 2, TurnRatio: 0.15, TurnTime: 10, Points: 200},
	Dahl:   {Speed: 2, TurnRatio: 0.10, Points: 400},
	Minvo: {Speed: 2, TurnRatio: 0.20, Chaser: true, ChaseRadius: 6 * TileSize,
		RandomTurnChance: 0.25, Points: 800},
	Doria: {Speed: 1, TurnRatio: 0.50, TurnTime: 5, Chaser: true, ChaseRadius: 12 * TileSize,
		RandomTurnChance: 0.30, PassSoft: true, Points: 1000},
	Ovape: {Speed: 2, TurnRatio: 0.10, TurnTime: 5, PassSoft: true, Points: 2000},
	Tiglon: {Speed: 2, TurnRatio: 0.35, Chaser: true, ChaseRadius: 12 * TileSize,
		RandomTurnChance: 0.15, Points: 4000},
}

// Params 返回种类参数；Pontan 尚未实现
func (s Species) Params() (SpeciesParams, error) {
	p, ok := speciesTable[s]
	if !ok {
		return SpeciesParams{}, fmt.Errorf("%s: %w", s, ErrUnknownSpecies)
	}
	return p, nil
}

// ParseSpecies 按名字查找种类
func ParseSpecies(name string) (Species, error) {
	for i, n := range speciesNames {
		if n == name {
			return Species(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownSpecies)
}
