package ai

import (
	"bomberclassic/pkg/ai/bt"
	"bomberclassic/pkg/core"
)

func condInDanger(bb *Blackboard) bool {
	return bb.Danger.InDanger(bb.PlayerTile())
}

func actFindSafe(bb *Blackboard) bt.Status {
	// 之前选的逃生点仍然安全就继续用
	if bb.EscapeTo != nil && !bb.Danger.InDanger(*bb.EscapeTo) {
		if _, ok := nextStepToward(bb, bb.PlayerTile(), *bb.EscapeTo); ok {
			return bt.StatusSuccess
		}
	}
	best := findNearestSafe(bb, bb.Danger, bb.PlayerTile(), 0)
	if best == nil {
		bb.EscapeTo = nil
		return bt.StatusFailure
	}
	bb.EscapeTo = best
	return bt.StatusSuccess
}

func actMoveToSafe(bb *Blackboard) bt.Status {
	if bb.EscapeTo == nil {
		return bt.StatusFailure
	}
	cur := bb.PlayerTile()
	if cur == *bb.EscapeTo && bb.Player.Aligned() {
		bb.EscapeTo = nil
		return bt.StatusSuccess
	}
	step, ok := nextStepToward(bb, cur, *bb.EscapeTo)
	if !ok {
		return bt.StatusFailure
	}
	bb.NextInput = inputToward(bb.Player, step)
	return bt.StatusRunning
}

// inputToward 走向相邻格子 next，先对齐到当前格子的垂直轴
func inputToward(p *core.Player, next core.Tile) core.Input {
	cur := p.Bounds().CenterTile()
	px, py := p.Position()
	cx, cy := cur.Pixel()

	var in core.Input
	switch {
	case next.Y == cur.Y && next.X != cur.X:
		if py != cy {
			return in.Press(toward(py, cy, core.DirUp, core.DirDown))
		}
		return in.Press(toward(cur.X, next.X, core.DirLeft, core.DirRight))
	case next.X == cur.X && next.Y != cur.Y:
		if px != cx {
			return in.Press(toward(px, cx, core.DirLeft, core.DirRight))
		}
		return in.Press(toward(cur.Y, next.Y, core.DirUp, core.DirDown))
	}
	// 已在目标格子，走到中心
	if px != cx {
		return in.Press(toward(px, cx, core.DirLeft, core.DirRight))
	}
	if py != cy {
		return in.Press(toward(py, cy, core.DirUp, core.DirDown))
	}
	return in
}

func toward(from, to int, less, more core.Direction) core.Direction {
	if to < from {
		return less
	}
	return more
}
