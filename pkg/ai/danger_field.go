package ai

import (
	"math"

	"bomberclassic/pkg/core"
)

// never 表示该格子不会被炸到
const never = math.MaxInt32

// DangerField 每个格子最早/最晚被火焰覆盖的时间（相对当前帧）
type DangerField struct {
	Earliest [core.FieldRows][core.FieldCols]int
	Until    [core.FieldRows][core.FieldCols]int
	Enemy    [core.FieldRows][core.FieldCols]bool
	Remote   [core.FieldRows][core.FieldCols]bool // 遥控炸弹的覆盖范围
}

func (df *DangerField) reset() {
	for y := range core.FieldRows {
		for x := range core.FieldCols {
			df.Earliest[y][x] = never
			df.Until[y][x] = -1
			df.Enemy[y][x] = false
			df.Remote[y][x] = false
		}
	}
}

func (df *DangerField) mark(t core.Tile, from, until int) {
	if !t.InField() {
		return
	}
	if from < df.Earliest[t.Y][t.X] {
		df.Earliest[t.Y][t.X] = from
	}
	if until > df.Until[t.Y][t.X] {
		df.Until[t.Y][t.X] = until
	}
}

// Update 根据当前炸弹、火焰和敌人重新计算
func (df *DangerField) Update(game *core.Game) {
	df.reset()

	bombs := game.Bombs()
	fuse := make(map[*core.Bomb]int, len(bombs))
	previews := make(map[*core.Bomb][]core.Segment, len(bombs))
	byTile := make(map[core.Tile]*core.Bomb, len(bombs))
	for _, b := range bombs {
		if b.Remote() {
			fuse[b] = never
		} else {
			fuse[b] = b.Timer()
		}
		previews[b] = game.BlastPreview(b)
		byTile[b.Tile()] = b
	}

	// 连锁传播直到稳定
	changed := true
	for changed {
		changed = false
		for _, b := range bombs {
			if fuse[b] == never {
				continue
			}
			for _, s := range previews[b] {
				other, ok := byTile[s.Tile]
				if !s.HitBomb || !ok || other == b {
					continue
				}
				if at := fuse[b] + core.ChainFuseTicks; at < fuse[other] {
					fuse[other] = at
					changed = true
				}
			}
		}
	}

	for _, b := range bombs {
		for _, s := range previews[b] {
			if fuse[b] == never {
				if s.Tile.InField() {
					df.Remote[s.Tile.Y][s.Tile.X] = true
				}
				continue
			}
			df.mark(s.Tile, fuse[b], fuse[b]+core.BlastTicks)
		}
	}

	// 正在燃烧的火焰
	for _, bl := range game.Blasts() {
		df.mark(bl.Tile(), 0, bl.Remaining())
	}

	for _, e := range game.Enemies() {
		if !e.Alive() {
			continue
		}
		t := e.Bounds().CenterTile()
		if t.InField() {
			df.Enemy[t.Y][t.X] = true
		}
		// 敌人前方的格子
		if n := t.Step(e.Facing(), 1); n.InField() {
			df.Enemy[n.Y][n.X] = true
		}
	}
}

// InDanger 格子是否会被炸弹或火焰覆盖，或者有敌人
func (df *DangerField) InDanger(t core.Tile) bool {
	return df.Covered(t) || df.Enemy[t.Y][t.X]
}

// SafeDuring 在 [from, to] 时间段内停留是否安全
func (df *DangerField) SafeDuring(t core.Tile, from, to int) bool {
	if !t.InField() || df.Enemy[t.Y][t.X] {
		return false
	}
	e, u := df.Earliest[t.Y][t.X], df.Until[t.Y][t.X]
	return to < e || from > u
}

// Covered 格子是否会被火焰覆盖（含遥控炸弹）
func (df *DangerField) Covered(t core.Tile) bool {
	if !t.InField() {
		return true
	}
	return df.Earliest[t.Y][t.X] != never || df.Remote[t.Y][t.X]
}

// withBomb 返回假设在 t 放下炸弹后的危险场
func (df *DangerField) withBomb(game *core.Game, t core.Tile, blastRange int) *DangerField {
	next := *df
	probe := func(c core.Tile) core.Cell {
		l := game.LayersAt(c)
		return core.Cell{Hard: l&core.LayerHard != 0, Soft: l&core.LayerSoft != 0, Bomb: l&core.LayerBomb != 0}
	}
	segs := core.TraceBlast(t, blastRange, probe)
	for _, s := range segs {
		next.mark(s.Tile, core.BombFuseTicks, core.BombFuseTicks+core.BlastTicks)
	}
	// 会被新炸弹波及的炸弹提前爆炸
	for _, s := range segs {
		if !s.HitBomb {
			continue
		}
		for _, b := range game.Bombs() {
			if b.Tile() != s.Tile {
				continue
			}
			at := core.BombFuseTicks + core.ChainFuseTicks
			for _, os := range game.BlastPreview(b) {
				next.mark(os.Tile, at, at+core.BlastTicks)
			}
		}
	}
	return &next
}
