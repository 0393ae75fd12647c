package core

// obstacleMask 玩家当前的障碍物集合
func (p *Player) obstacleMask() Layer {
	mask := LayerHard
	if !p.wallWalker {
		mask |= LayerSoft
	}
	if !p.bombWalker {
		mask |= LayerBomb
	}
	return mask
}

// skipOverlappedBombs 忽略起始时已经与 r 重叠的炸弹，使实体能离开脚下的炸弹
func skipOverlappedBombs(r Rect) func(Body) bool {
	return func(b Body) bool {
		if _, ok := b.(*Bomb); ok {
			return b.Bounds().Overlaps(r)
		}
		return false
	}
}

// movePlayer X 轴优先：只有 X 轴没有产生位移时才尝试 Y 轴
func (g *Game) movePlayer(in Input) {
	p := g.player
	if p.dead {
		p.moving = false
		return
	}
	p.moving = false
	for _, d := range Directions {
		if in.Pressed(d) {
			p.facing = d
			p.moving = true
			break
		}
	}
	if !p.moving {
		return
	}

	s := p.Speed()
	mask := p.obstacleMask()
	skip := skipOverlappedBombs(p.Bounds())

	x0, y0 := p.x, p.y
	for _, d := range [2]Direction{DirLeft, DirRight} {
		if in.Pressed(d) {
			g.stepPlayer(d, s, mask, skip)
		}
	}
	if p.x == x0 && p.y == y0 {
		for _, d := range [2]Direction{DirUp, DirDown} {
			if in.Pressed(d) {
				g.stepPlayer(d, s, mask, skip)
			}
		}
	}
	p.realign(s)
}

// stepPlayer 沿方向尝试移动 s 像素，被单个方块挡住且未对齐时绕角
func (g *Game) stepPlayer(d Direction, s int, mask Layer, skip func(Body) bool) {
	p := g.player
	dx, dy := d.Delta()
	cur := p.Bounds()
	next := cur.Moved(dx*s, dy*s)

	hits := g.index.Collide(next, mask, skip)
	if len(hits) == 0 {
		p.x, p.y = next.X, next.Y
		return
	}
	if len(hits) != 1 {
		return
	}
	switch hits[0].(type) {
	case *HardBlock, *SoftBlock:
	default:
		return
	}
	block := hits[0].Bounds()

	var off int
	var near, far bool
	if d.Horizontal() {
		off = floorMod(cur.Y, TileSize)
		px := cur.CenterX() + dx*TileSize
		near = block.ContainsPoint(px, cur.Y)
		far = block.ContainsPoint(px, cur.Bottom()-1)
	} else {
		off = floorMod(cur.X, TileSize)
		py := cur.CenterY() + dy*TileSize
		near = block.ContainsPoint(cur.X, py)
		far = block.ContainsPoint(cur.Right()-1, py)
	}
	if off == 0 {
		return
	}

	var step int
	switch {
	case near && !far:
		step = min(s, TileSize-off)
	case far && !near:
		step = -min(s, off)
	default:
		return
	}

	nudged := cur
	if d.Horizontal() {
		nudged.Y += step
	} else {
		nudged.X += step
	}
	if g.index.Blocked(nudged, mask, skip) {
		return
	}
	p.x, p.y = nudged.X, nudged.Y
}

// realign 两个轴都在半步以内时吸附到中心所在的格子
func (p *Player) realign(s int) {
	near := func(v int) bool {
		off := floorMod(v, TileSize)
		return 2*min(off, TileSize-off) <= s
	}
	if near(p.x) && near(p.y) {
		p.x, p.y = p.Bounds().CenterTile().Pixel()
	}
}

// openDirections 每个方向试探移动 1 像素
func (g *Game) openDirections(e *Enemy) [4]bool {
	var open [4]bool
	cur := e.Bounds()
	mask := e.obstacleMask()
	skip := skipOverlappedBombs(cur)
	for _, d := range Directions {
		dx, dy := d.Delta()
		open[d] = !g.index.Blocked(cur.Moved(dx, dy), mask, skip)
	}
	return open
}

// stepEnemy 逐像素前进，遇到障碍停下
func (g *Game) stepEnemy(e *Enemy) bool {
	dx, dy := e.facing.Delta()
	mask := e.obstacleMask()
	skip := skipOverlappedBombs(e.Bounds())
	moved := false
	for range e.params.Speed {
		next := e.Bounds().Moved(dx, dy)
		if g.index.Blocked(next, mask, skip) {
			break
		}
		e.x, e.y = next.X, next.Y
		moved = true
	}
	return moved
}
