package core

import (
	"math"
	"math/rand"
	"sort"
)

// Decision 对齐时的转向决策
type Decision struct {
	Dir    Direction
	Turned bool // 方向发生变化
	Forced bool // 前方被堵导致的强制转向
	Freeze int  // 转向后停顿的帧数
}

// Wander 在开放方向中等概率随机选一个
func Wander(open [4]bool, rng *rand.Rand) (Direction, bool) {
	var cands [4]Direction
	n := 0
	for _, d := range Directions {
		if open[d] {
			cands[n] = d
			n++
		}
	}
	if n == 0 {
		return DirLeft, false
	}
	return cands[rng.Intn(n)], true
}

// ChasePreference 追踪者的方向偏好顺序。
// dx, dy 为玩家中心减去敌人中心；超出追踪半径或命中随机概率时返回随机排列。
func ChasePreference(dx, dy int, p SpeciesParams, rng *rand.Rand) [4]Direction {
	var order [4]Direction
	dist := math.Hypot(float64(dx), float64(dy))
	if dist > float64(p.ChaseRadius) || rng.Float64() < p.RandomTurnChance {
		for i, v := range rng.Perm(4) {
			order[i] = Direction(v)
		}
		return order
	}
	rating := [4]int{
		DirLeft:  dx,
		DirDown:  -dy,
		DirRight: -dx,
		DirUp:    dy,
	}
	order = Directions
	sort.SliceStable(order[:], func(i, j int) bool {
		return rating[order[i]] < rating[order[j]]
	})
	return order
}

func pickDirection(open [4]bool, p SpeciesParams, dx, dy int, rng *rand.Rand) (Direction, bool) {
	if !p.Chaser {
		return Wander(open, rng)
	}
	for _, d := range ChasePreference(dx, dy, p, rng) {
		if open[d] {
			return d, true
		}
	}
	return DirLeft, false
}

// Decide 对齐状态下的决策：前方不通时强制转向并停顿，否则按 TurnRatio 概率重新选向
func Decide(open [4]bool, facing Direction, p SpeciesParams, dx, dy int, rng *rand.Rand) Decision {
	if !open[facing] {
		d, ok := pickDirection(open, p, dx, dy, rng)
		if !ok {
			return Decision{Dir: facing}
		}
		return Decision{Dir: d, Turned: d != facing, Forced: true, Freeze: p.TurnTime}
	}
	if rng.Float64() < p.TurnRatio {
		if d, ok := pickDirection(open, p, dx, dy, rng); ok {
			return Decision{Dir: d, Turned: d != facing}
		}
	}
	return Decision{Dir: facing}
}
