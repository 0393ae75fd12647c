package ai

import (
	"math/rand"

	"bomberclassic/pkg/core"
)

// Blackboard 行为树共享状态
type Blackboard struct {
	Game    *core.Game
	Player  *core.Player
	RNG     *rand.Rand
	Danger  *DangerField
	Profile *Profile

	Tick uint64

	Target    *core.Tile
	EscapeTo  *core.Tile
	NextInput core.Input

	LastInDanger bool
	LastBombs    int

	// 游荡方向
	WanderDirection core.Direction
	WanderTicks     int
	Wandering       bool

	// 遥控引爆按键需要松开后再按
	DetonateHeld bool
}

// ResetTick 每次思考前刷新
func (bb *Blackboard) ResetTick(game *core.Game) {
	bb.Game = game
	bb.Player = game.Player()
	bb.Tick = game.Tick()
	bb.Target = nil
	// EscapeTo 保留，只有到达或不可行时才清空
	bb.NextInput = core.Input{}
}

// PlayerTile 玩家中心所在的格子
func (bb *Blackboard) PlayerTile() core.Tile {
	return bb.Player.Bounds().CenterTile()
}
