package core

// Segment 爆炸轨迹中的一格
type Segment struct {
	Tile    Tile
	Kind    SegmentKind
	Dir     Direction
	HitSoft bool // 命中砖块，方向在此终止
	HitBomb bool // 命中其他炸弹，需要连锁点燃
}

// Cell 探测到的格子内容
type Cell struct {
	Hard, Soft, Bomb bool
}

// Probe 查询格子内容，必须是只读的
type Probe func(Tile) Cell

// TraceBlast 计算一次爆炸的全部火焰段，不修改任何状态。
// 每个方向先走 range-1 格臂，未被阻挡时在 range 处放置尖端。
// 同一格里砖块的判定优先于炸弹。
func TraceBlast(origin Tile, blastRange int, probe Probe) []Segment {
	segs := []Segment{{Tile: origin, Kind: SegmentCenter, Dir: DirLeft}}
	for _, d := range Directions {
		stopped := false
		for i := 1; i < blastRange; i++ {
			t := origin.Step(d, i)
			c := probe(t)
			if c.Hard {
				stopped = true
				break
			}
			if c.Soft {
				segs = append(segs, Segment{Tile: t, Kind: SegmentArm, Dir: d, HitSoft: true})
				stopped = true
				break
			}
			segs = append(segs, Segment{Tile: t, Kind: SegmentArm, Dir: d, HitBomb: c.Bomb})
		}
		if stopped || blastRange < 1 {
			continue
		}
		t := origin.Step(d, blastRange)
		c := probe(t)
		switch {
		case c.Hard:
		case c.Soft:
			segs = append(segs, Segment{Tile: t, Kind: SegmentTip, Dir: d, HitSoft: true})
		default:
			segs = append(segs, Segment{Tile: t, Kind: SegmentTip, Dir: d, HitBomb: c.Bomb})
		}
	}
	return segs
}

// probe 基于当前碰撞索引的探测函数
func (g *Game) probe(t Tile) Cell {
	if !t.InField() {
		return Cell{Hard: true}
	}
	l := g.index.LayerAt(t)
	return Cell{Hard: l&LayerHard != 0, Soft: l&LayerSoft != 0, Bomb: l&LayerBomb != 0}
}

// BlastPreview 预测炸弹爆炸的火焰范围
func (g *Game) BlastPreview(b *Bomb) []Segment {
	return TraceBlast(b.tile, b.rng, g.probe)
}

// detonate 引爆炸弹：生成火焰、摧毁砖块、点燃其他炸弹，然后移除炸弹
func (g *Game) detonate(b *Bomb) {
	segs := g.BlastPreview(b)
	for _, s := range segs {
		blast := newBlast(s)
		g.blasts = append(g.blasts, blast)
		g.index.Insert(blast, LayerBlast)
		if s.HitSoft {
			for _, body := range g.index.AtTile(s.Tile, LayerSoft) {
				body.(*SoftBlock).Destroy()
			}
		}
		if s.HitBomb {
			for _, body := range g.index.AtTile(s.Tile, LayerBomb) {
				body.(*Bomb).Ignite()
			}
		}
	}
	g.removeBomb(b)
	g.emit(Event{Kind: EventBombDetonated, Tile: b.tile, Segments: len(segs)})
}
