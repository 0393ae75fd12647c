package ai

import (
	"bomberclassic/pkg/ai/bt"
	"bomberclassic/pkg/core"
)

// condExitOpen 出口已露出且敌人清空
func condExitOpen(bb *Blackboard) bool {
	if len(bb.Game.Enemies()) > 0 {
		return false
	}
	for _, b := range bb.Game.Bonuses() {
		if b.IsExit() {
			t := b.Tile()
			bb.Target = &t
			return true
		}
	}
	return false
}

// condBonusVisible 有可以拾取的道具
func condBonusVisible(bb *Blackboard) bool {
	if !bb.Profile.CollectBonuses {
		return false
	}
	goals := make(map[core.Tile]bool)
	for _, b := range bb.Game.Bonuses() {
		if !b.IsExit() {
			goals[b.Tile()] = true
		}
	}
	if len(goals) == 0 {
		return false
	}
	n := search(bb, bb.Danger, bb.PlayerTile(), 0, func(n *stepNode) bool { return goals[n.Tile] })
	if n == nil {
		return false
	}
	t := n.Tile
	bb.Target = &t
	return true
}

// actWalkOnto 走到目标格子中心
func actWalkOnto(bb *Blackboard) bt.Status {
	if bb.Target == nil {
		return bt.StatusFailure
	}
	cur := bb.PlayerTile()
	if cur == *bb.Target {
		bb.NextInput = inputToward(bb.Player, cur)
		return bt.StatusRunning
	}
	step, ok := nextStepToward(bb, cur, *bb.Target)
	if !ok {
		return bt.StatusFailure
	}
	bb.NextInput = inputToward(bb.Player, step)
	return bt.StatusRunning
}

// condCanDetonate 有遥控炸弹且玩家不在爆炸范围内
func condCanDetonate(bb *Blackboard) bool {
	if !bb.Player.Detonator() {
		return false
	}
	if bb.DetonateHeld {
		// 松开按键，下一次才能再次触发
		bb.DetonateHeld = false
		return false
	}
	remote := false
	for _, b := range bb.Game.Bombs() {
		remote = remote || b.Remote()
	}
	if !remote {
		return false
	}
	return !bb.Danger.Covered(bb.PlayerTile())
}

func actDetonate(bb *Blackboard) bt.Status {
	bb.NextInput.Detonate = true
	bb.DetonateHeld = true
	return bt.StatusSuccess
}
