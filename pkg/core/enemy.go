package core

import "math/rand"

// Enemy 敌人
type Enemy struct {
	species Species
	params  SpeciesParams
	x, y    int
	facing  Direction
	freeze  int
	walk    int

	dying bool
	death int
}

// NewEnemy 在格子上创建敌人，未实现的种类返回错误
func NewEnemy(s Species, t Tile, facing Direction) (*Enemy, error) {
	p, err := s.Params()
	if err != nil {
		return nil, err
	}
	x, y := t.Pixel()
	return &Enemy{species: s, params: p, x: x, y: y, facing: facing}, nil
}

func (e *Enemy) Species() Species { return e.species }
func (e *Enemy) Params() SpeciesParams { return e.params }
func (e *Enemy) Bounds() Rect { return Rect{X: e.x, Y: e.y, W: TileSize, H: TileSize} }
func (e *Enemy) Position() (int, int) { return e.x, e.y }
func (e *Enemy) Facing() Direction { return e.facing }
func (e *Enemy) Frozen() int { return e.freeze }
func (e *Enemy) Dying() bool { return e.dying }
func (e *Enemy) Alive() bool { return !e.dying }

// Aligned 是否与网格对齐
func (e *Enemy) Aligned() bool {
	return e.x%TileSize == 0 && e.y%TileSize == 0
}

// Kill 进入死亡动画，只有从存活到死亡的那一次返回 true
func (e *Enemy) Kill() bool {
	if e.dying {
		return false
	}
	e.dying = true
	return true
}

func (e *Enemy) obstacleMask() Layer {
	mask := LayerHard | LayerBomb
	if !e.params.PassSoft {
		mask |= LayerSoft
	}
	return mask
}

// updateEnemy 推进一帧，死亡动画结束返回 true
func (g *Game) updateEnemy(e *Enemy, rng *rand.Rand) bool {
	if e.dying {
		e.death++
		return e.death >= enemyDeathTicks
	}

	open := g.openDirections(e)
	if open == [4]bool{} {
		return false
	}

	if e.Aligned() {
		pr := g.player.Bounds()
		er := e.Bounds()
		dec := Decide(open, e.facing, e.params, pr.CenterX()-er.CenterX(), pr.CenterY()-er.CenterY(), rng)
		e.facing = dec.Dir
		if dec.Forced {
			e.freeze = dec.Freeze
		}
	} else if !open[e.facing] {
		// 格子中间被挡住只能原路返回
		if !open[e.facing.Opposite()] {
			return false
		}
		e.facing = e.facing.Opposite()
		e.freeze = e.params.TurnTime
	}

	if e.freeze > 0 {
		e.freeze--
		return false
	}
	if g.stepEnemy(e) {
		e.walk++
	}
	return false
}

func (e *Enemy) Sprite() SpriteCoord {
	if e.dying {
		return enemyDeathSprite(e.species, e.death)
	}
	return enemyMoveSprite(e.species, e.facing, e.walk)
}
