package core

import "testing"

func TestIndexQueries(t *testing.T) {
	ix := NewIndex()
	hard := &HardBlock{tile: Tile{X: 2, Y: 2}}
	soft := newSoftBlock(SoftPlacement{Tile: Tile{X: 3, Y: 2}, Bonus: BonusNone})
	bomb := newBomb(Tile{X: 3, Y: 3}, 1, false, 0)
	ix.Insert(hard, LayerHard)
	ix.Insert(soft, LayerSoft)
	ix.Insert(bomb, LayerBomb)

	if ix.Len() != 3 {
		t.Fatalf("len: %d", ix.Len())
	}

	// 横跨两格的矩形
	r := Rect{X: 80, Y: 64, W: 32, H: 32}
	hits := ix.Collide(r, LayerBlocks, nil)
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	if got := ix.Collide(r, LayerHard, nil); len(got) != 1 || got[0] != Body(hard) {
		t.Errorf("hard mask should only return the hard block")
	}
	skipSoft := func(b Body) bool { _, ok := b.(*SoftBlock); return ok }
	if got := ix.Collide(r, LayerBlocks, skipSoft); len(got) != 1 {
		t.Errorf("skip should drop soft block, got %d", len(got))
	}

	// 只接触边缘不算
	touching := Rect{X: 96, Y: 32, W: 32, H: 32}
	if ix.Blocked(touching, LayerAll, nil) {
		t.Errorf("edge contact should not collide")
	}
	if !ix.Blocked(Rect{X: 100, Y: 100, W: 4, H: 4}, LayerBomb, nil) {
		t.Errorf("bomb should block")
	}

	if l := ix.LayerAt(Tile{X: 3, Y: 3}); l != LayerBomb {
		t.Errorf("layer at bomb tile: %b", l)
	}
	if got := ix.AtTile(Tile{X: 3, Y: 2}, LayerSoft); len(got) != 1 {
		t.Errorf("AtTile soft: %d", len(got))
	}

	ix.Remove(soft)
	if ix.Len() != 2 || ix.LayerAt(Tile{X: 3, Y: 2}) != 0 {
		t.Errorf("remove failed")
	}
	ix.Remove(soft)
	if ix.Len() != 2 {
		t.Errorf("double remove changed size")
	}

	ix.Clear()
	if ix.Len() != 0 || ix.Blocked(r, LayerAll, nil) {
		t.Errorf("clear failed")
	}
}

func TestCollideRatio(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 32, H: 32}
	tests := []struct {
		name  string
		b     Rect
		ratio float64
		want  bool
	}{
		{"same", a, ContactRatio, true},
		{"slight overlap shrinks away", a.Moved(28, 0), ContactRatio, false},
		{"half overlap", a.Moved(16, 0), ContactRatio, true},
		{"bomb ratio", a.Moved(8, 0), BombOverlapRatio, true},
		{"bomb ratio far", a.Moved(27, 0), BombOverlapRatio, false},
	}
	for _, tc := range tests {
		if got := CollideRatio(a, tc.b, tc.ratio); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}
