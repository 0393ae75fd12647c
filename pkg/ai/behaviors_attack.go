package ai

import (
	"bomberclassic/pkg/ai/bt"
	"bomberclassic/pkg/core"
)

func condHasBombCapacity(bb *Blackboard) bool {
	return bb.Profile.PlaceBombs && len(bb.Game.Bombs()) < bb.Player.MaxBombs()
}

func actFindTarget(bb *Blackboard) bt.Status {
	start := bb.PlayerTile()

	if bb.Profile.HuntEnemies || !hasSoftBlocks(bb.Game) {
		if target := findEnemyTarget(bb, start); target != nil {
			bb.Target = target
			return bt.StatusSuccess
		}
	}
	if target := findSoftTarget(bb, start); target != nil {
		bb.Target = target
		return bt.StatusSuccess
	}
	return bt.StatusFailure
}

func actPreCheckEscape(bb *Blackboard) bt.Status {
	if bb.Target == nil {
		return bt.StatusFailure
	}
	// 还没到目标，先走过去
	if *bb.Target != bb.PlayerTile() {
		return bt.StatusSuccess
	}
	if !canEscapeAfterPlacement(bb, *bb.Target) {
		return bt.StatusFailure
	}
	return bt.StatusSuccess
}

func actMoveToTarget(bb *Blackboard) bt.Status {
	if bb.Target == nil {
		return bt.StatusFailure
	}
	cur := bb.PlayerTile()
	if *bb.Target == cur {
		return bt.StatusSuccess
	}
	step, ok := nextStepToward(bb, cur, *bb.Target)
	if !ok {
		return bt.StatusFailure
	}
	bb.NextInput = inputToward(bb.Player, step)
	return bt.StatusRunning
}

func actPlaceBomb(bb *Blackboard) bt.Status {
	if bb.Target == nil || *bb.Target != bb.PlayerTile() {
		return bt.StatusFailure
	}
	bb.NextInput = core.Input{PlaceBomb: true}
	bb.EscapeTo = nil
	return bt.StatusSuccess
}

func hasSoftBlocks(g *core.Game) bool {
	for _, s := range g.SoftBlocks() {
		if !s.Dead() {
			return true
		}
	}
	return false
}

// findEnemyTarget 能用炸弹够到敌人的最近格子
func findEnemyTarget(bb *Blackboard, start core.Tile) *core.Tile {
	rng := bb.Player.BlastRange()
	goals := make(map[core.Tile]bool)
	for _, e := range bb.Game.Enemies() {
		if !e.Alive() {
			continue
		}
		et := e.Bounds().CenterTile()
		if alignedAndClear(bb.Game, start, et, rng) {
			t := start
			return &t
		}
		for _, c := range alignedCells(bb.Game, et, rng) {
			goals[c] = true
		}
	}
	if len(goals) == 0 {
		return nil
	}
	n := search(bb, bb.Danger, start, 0, func(n *stepNode) bool { return goals[n.Tile] })
	if n == nil {
		return nil
	}
	t := n.Tile
	return &t
}

// findSoftTarget 紧邻砖块的最近格子
func findSoftTarget(bb *Blackboard, start core.Tile) *core.Tile {
	n := search(bb, bb.Danger, start, 0, func(n *stepNode) bool {
		for _, d := range core.Directions {
			if bb.Game.LayersAt(n.Tile.Step(d, 1))&core.LayerSoft != 0 && !dyingSoftAt(bb.Game, n.Tile.Step(d, 1)) {
				return true
			}
		}
		return false
	})
	if n == nil {
		return nil
	}
	t := n.Tile
	return &t
}

func dyingSoftAt(g *core.Game, t core.Tile) bool {
	for _, s := range g.SoftBlocks() {
		if s.Tile() == t {
			return s.Dead()
		}
	}
	return false
}

func alignedAndClear(g *core.Game, from, to core.Tile, rng int) bool {
	if from.X != to.X && from.Y != to.Y {
		return false
	}
	dist := absInt(from.X-to.X) + absInt(from.Y-to.Y)
	if dist > rng {
		return false
	}
	if dist == 0 {
		return true
	}
	d := core.DirRight
	switch {
	case to.X < from.X:
		d = core.DirLeft
	case to.Y > from.Y:
		d = core.DirDown
	case to.Y < from.Y:
		d = core.DirUp
	}
	for i := 1; i < dist; i++ {
		if g.LayersAt(from.Step(d, i))&(core.LayerBlocks|core.LayerBomb) != 0 {
			return false
		}
	}
	return true
}

func alignedCells(g *core.Game, target core.Tile, rng int) []core.Tile {
	cells := make([]core.Tile, 0, rng*4)
	for _, d := range core.Directions {
		for i := 1; i <= rng; i++ {
			c := target.Step(d, i)
			if g.LayersAt(c)&(core.LayerBlocks|core.LayerBomb) != 0 {
				break
			}
			cells = append(cells, c)
		}
	}
	return cells
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
