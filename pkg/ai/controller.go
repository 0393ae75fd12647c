package ai

import (
	"math/rand"

	"bomberclassic/pkg/ai/bt"
	"bomberclassic/pkg/core"
)

// Pilot 自动驾驶：每帧根据游戏状态生成玩家输入
type Pilot struct {
	rnd     *rand.Rand
	profile Profile

	thinkCounter int
	cachedInput  core.Input

	blackboard Blackboard
	tree       bt.Node[*Blackboard]
	danger     DangerField
}

// NewPilot 创建自动驾驶，seed 固定时行为可复现
func NewPilot(profile Profile, seed int64) *Pilot {
	rnd := rand.New(rand.NewSource(seed))
	if profile.ThinkIntervalTicks <= 0 {
		profile.ThinkIntervalTicks = 1
	}

	p := &Pilot{rnd: rnd, profile: profile}
	p.blackboard = Blackboard{
		RNG:     rnd,
		Danger:  &p.danger,
		Profile: &p.profile,
	}

	p.tree = bt.Sel[*Blackboard](
		bt.Seq[*Blackboard](
			bt.If(condInDanger),
			bt.Do(actFindSafe),
			bt.Do(actMoveToSafe),
		),
		bt.Seq[*Blackboard](
			bt.If(condCanDetonate),
			bt.Do(actDetonate),
		),
		bt.Seq[*Blackboard](
			bt.If(condExitOpen),
			bt.Do(actWalkOnto),
		),
		bt.Seq[*Blackboard](
			bt.If(condBonusVisible),
			bt.Do(actWalkOnto),
		),
		bt.Seq[*Blackboard](
			bt.If(condHasBombCapacity),
			bt.Do(actFindTarget),
			bt.Do(actPreCheckEscape),
			bt.Do(actMoveToTarget),
			bt.Do(actPlaceBomb),
		),
		bt.Do(actWander),
	)
	return p
}

// Profile 当前配置
func (p *Pilot) Profile() Profile { return p.profile }

// Next 计算这一帧的输入
func (p *Pilot) Next(game *core.Game) core.Input {
	player := game.Player()
	if player.Dead() {
		p.cachedInput = core.Input{}
		p.blackboard.EscapeTo = nil
		return p.cachedInput
	}

	p.blackboard.ResetTick(game)
	p.danger.Update(game)

	bombCount := len(game.Bombs())
	inDanger := p.danger.InDanger(p.blackboard.PlayerTile())

	// 刚进入危险或炸弹数量变化时立即重新思考
	force := (inDanger && !p.blackboard.LastInDanger) || bombCount != p.blackboard.LastBombs
	p.blackboard.LastInDanger = inDanger
	p.blackboard.LastBombs = bombCount

	p.thinkCounter++
	if !force && p.thinkCounter < p.profile.ThinkIntervalTicks {
		return p.holdInput()
	}
	p.thinkCounter = 0

	if p.cachedInput.PlaceBomb {
		p.blackboard.EscapeTo = nil
	}

	_ = p.tree.Tick(&p.blackboard)

	if p.profile.MistakeRate > 0 && p.rnd.Float64() < p.profile.MistakeRate {
		switch p.rnd.Intn(3) {
		case 0:
			p.blackboard.NextInput = core.Input{}
		case 1:
			p.blackboard.NextInput = core.Input{}.Press(core.Directions[p.rnd.Intn(len(core.Directions))])
		}
	}

	p.cachedInput = p.blackboard.NextInput
	return p.cachedInput
}

// holdInput 两次思考之间保持方向键，动作键只按一帧
func (p *Pilot) holdInput() core.Input {
	in := p.cachedInput
	in.PlaceBomb = false
	in.Detonate = false
	return in
}

// PilotSource 把 Pilot 适配成 core.InputSource
type PilotSource struct {
	Pilot *Pilot
	Game  *core.Game
	last  core.Input
}

// Refresh 每帧调用一次，读取新的输入
func (s *PilotSource) Refresh() { s.last = s.Pilot.Next(s.Game) }

func (s *PilotSource) DirectionPressed(d core.Direction) bool { return s.last.Pressed(d) }

func (s *PilotSource) ActionPressed(a core.Action) bool {
	switch a {
	case core.ActionPlaceBomb:
		return s.last.PlaceBomb
	case core.ActionDetonate:
		return s.last.Detonate
	}
	return false
}
