package ai

import (
	"bomberclassic/pkg/ai/bt"
	"bomberclassic/pkg/core"
)

// 游荡方向持续帧数
const wanderDirectionTicks = 30

func actWander(bb *Blackboard) bt.Status {
	if bb.RNG == nil {
		return bt.StatusFailure
	}
	cur := bb.PlayerTile()

	// 当前方向仍然可行且未超时，继续保持
	if bb.Wandering && bb.WanderTicks > 0 {
		bb.WanderTicks--
		if canWanderInDirection(bb, cur, bb.WanderDirection) {
			bb.NextInput = inputToward(bb.Player, cur.Step(bb.WanderDirection, 1))
			return bt.StatusRunning
		}
		bb.Wandering = false
	}

	dirs := walkableDirections(bb, cur, true)
	if len(dirs) == 0 {
		dirs = walkableDirections(bb, cur, false)
	}
	if len(dirs) == 0 {
		return bt.StatusRunning // 被困住
	}
	bb.WanderDirection = dirs[bb.RNG.Intn(len(dirs))]
	bb.WanderTicks = wanderDirectionTicks
	bb.Wandering = true
	bb.NextInput = inputToward(bb.Player, cur.Step(bb.WanderDirection, 1))
	return bt.StatusRunning
}

// canWanderInDirection 指定方向的相邻格子可走且安全
func canWanderInDirection(bb *Blackboard, cur core.Tile, d core.Direction) bool {
	next := cur.Step(d, 1)
	return next.InField() && isWalkable(bb.Game, bb.Player, next, cur) && !bb.Danger.InDanger(next)
}

func walkableDirections(bb *Blackboard, cur core.Tile, safeOnly bool) []core.Direction {
	result := make([]core.Direction, 0, 4)
	for _, d := range core.Directions {
		next := cur.Step(d, 1)
		if !next.InField() || !isWalkable(bb.Game, bb.Player, next, cur) {
			continue
		}
		if safeOnly && bb.Danger.InDanger(next) {
			continue
		}
		result = append(result, d)
	}
	return result
}
