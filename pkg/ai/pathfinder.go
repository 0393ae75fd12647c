package ai

import (
	"container/list"

	"bomberclassic/pkg/core"
)

type stepNode struct {
	Tile  core.Tile
	Prev  *stepNode
	Steps int
}

// arrival 到达该节点所需的帧数
func (n *stepNode) arrival(perTile int) int { return n.Steps * perTile }

// firstStep 回溯到起点后的第一步
func (n *stepNode) firstStep() core.Tile {
	for n.Prev != nil && n.Prev.Prev != nil {
		n = n.Prev
	}
	return n.Tile
}

// ticksPerTile 玩家走完一格的帧数
func ticksPerTile(p *core.Player) int {
	s := p.Speed()
	return (core.TileSize + s - 1) / s
}

func isWalkable(game *core.Game, p *core.Player, t, start core.Tile) bool {
	l := game.LayersAt(t)
	if l&core.LayerHard != 0 {
		return false
	}
	if l&core.LayerSoft != 0 && !p.WallWalker() {
		return false
	}
	// 脚下的炸弹可以走出去
	if l&core.LayerBomb != 0 && !p.BombWalker() && t != start {
		return false
	}
	return true
}

// search 从 start 广度优先搜索第一个满足 accept 的格子，途经格子要在经过时安全
func search(bb *Blackboard, df *DangerField, start core.Tile, maxTicks int, accept func(*stepNode) bool) *stepNode {
	per := ticksPerTile(bb.Player)
	margin := bb.Profile.SafetyMarginTicks

	queue := list.New()
	visited := make(map[core.Tile]bool)
	queue.PushBack(&stepNode{Tile: start})
	visited[start] = true

	for queue.Len() > 0 {
		n := queue.Remove(queue.Front()).(*stepNode)
		if accept(n) {
			return n
		}
		for _, d := range core.Directions {
			next := n.Tile.Step(d, 1)
			if visited[next] || !next.InField() {
				continue
			}
			if !isWalkable(bb.Game, bb.Player, next, start) {
				continue
			}
			node := &stepNode{Tile: next, Prev: n, Steps: n.Steps + 1}
			at := node.arrival(per)
			if maxTicks > 0 && at > maxTicks {
				continue
			}
			if !df.SafeDuring(next, at-per, at+per+margin) {
				continue
			}
			visited[next] = true
			queue.PushBack(node)
		}
	}
	return nil
}

// nextStepToward 朝 target 的下一格
func nextStepToward(bb *Blackboard, start, target core.Tile) (core.Tile, bool) {
	if start == target {
		return start, true
	}
	n := search(bb, bb.Danger, start, 0, func(n *stepNode) bool { return n.Tile == target })
	if n == nil {
		return core.Tile{}, false
	}
	return n.firstStep(), true
}

// findNearestSafe 最近的不会被炸到的格子
func findNearestSafe(bb *Blackboard, df *DangerField, start core.Tile, maxTicks int) *core.Tile {
	n := search(bb, df, start, maxTicks, func(n *stepNode) bool { return !df.InDanger(n.Tile) })
	if n == nil {
		return nil
	}
	t := n.Tile
	return &t
}

// canEscapeAfterPlacement 在 start 放炸弹后能否在引爆前跑到安全格子
func canEscapeAfterPlacement(bb *Blackboard, start core.Tile) bool {
	df := bb.Danger.withBomb(bb.Game, start, bb.Player.BlastRange())
	return findNearestSafe(bb, df, start, core.BombFuseTicks-bb.Profile.SafetyMarginTicks) != nil
}
