package core

import (
	"errors"
	"reflect"
	"testing"
)

func countFree(m *StaticMap) (free, enemyFree int) {
	for ti := range m.Tiles() {
		switch ti.Sym {
		case SymFree:
			free++
			enemyFree++
		case SymSoftOnly:
			free++
		}
	}
	return free, enemyFree
}

func TestGenerateLevelOne(t *testing.T) {
	m := DefaultMap()
	free, _ := countFree(m)
	layout, err := NewSeededGenerator(m, 42).Generate(1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if want := min(54, free); len(layout.SoftBlocks) != want {
		t.Errorf("soft blocks: expected %d, got %d", want, len(layout.SoftBlocks))
	}
	if len(layout.Enemies) != 6 {
		t.Fatalf("enemies: expected 6, got %d", len(layout.Enemies))
	}
	for _, e := range layout.Enemies {
		if e.Species != Ballom {
			t.Errorf("level 1 should only have balloms, got %v", e.Species)
		}
	}
	if n := layout.BonusCount(); n != 2 {
		t.Errorf("bonus count: expected 2, got %d", n)
	}
}

func TestGeneratePlacementRules(t *testing.T) {
	m := DefaultMap()
	g := NewSeededGenerator(m, 7)
	for level := 1; level <= 47; level++ {
		layout, err := g.Generate(level)
		if err != nil {
			t.Fatalf("level %d: %v", level, err)
		}
		soft := make(map[Tile]bool)
		exits, designated := 0, 0
		want := DefaultLevels[level-1].Bonus
		for _, s := range layout.SoftBlocks {
			if sym := m.TileAt(s.Tile.X, s.Tile.Y); sym != SymFree && sym != SymSoftOnly {
				t.Fatalf("level %d: soft block on %q", level, sym)
			}
			if soft[s.Tile] {
				t.Fatalf("level %d: duplicate soft block at %v", level, s.Tile)
			}
			soft[s.Tile] = true
			switch s.Bonus {
			case BonusExit:
				exits++
			case want:
				designated++
			case BonusNone:
			default:
				t.Fatalf("level %d: unexpected bonus %v", level, s.Bonus)
			}
		}
		if exits != 1 || designated != 1 || layout.BonusCount() != 2 {
			t.Errorf("level %d: exits=%d designated=%d total=%d", level, exits, designated, layout.BonusCount())
		}
		if len(layout.SoftBlocks) != SoftBlockBase+level*SoftBlockPerLevel {
			t.Errorf("level %d: soft blocks %d", level, len(layout.SoftBlocks))
		}
		for _, e := range layout.Enemies {
			if m.TileAt(e.Tile.X, e.Tile.Y) != SymFree {
				t.Errorf("level %d: enemy on %q", level, m.TileAt(e.Tile.X, e.Tile.Y))
			}
			if soft[e.Tile] {
				t.Errorf("level %d: enemy inside soft block at %v", level, e.Tile)
			}
		}
		if len(layout.Enemies) != DefaultLevels[level-1].EnemyCount() {
			t.Errorf("level %d: enemies %d", level, len(layout.Enemies))
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	m := DefaultMap()
	a, err := NewSeededGenerator(m, 99).Generate(5)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewSeededGenerator(m, 99).Generate(5)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different layouts")
	}
	c, err := NewSeededGenerator(m, 100).Generate(5)
	if err != nil {
		t.Fatal(err)
	}
	if reflect.DeepEqual(a, c) {
		t.Errorf("different seeds produced identical layouts")
	}
}

func TestGenerateErrors(t *testing.T) {
	g := NewSeededGenerator(DefaultMap(), 1)

	if _, err := g.Generate(0); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("level 0: expected ErrInvalidLevel, got %v", err)
	}
	// 第 48 关开始出现 Pontan
	if _, err := g.Generate(48); !errors.Is(err, ErrUnknownSpecies) {
		t.Errorf("level 48: expected ErrUnknownSpecies, got %v", err)
	}

	custom := LevelTable{{Monsters: [8]int{1, 0, 0, 0, 0, 0, 0, 0}, Bonus: BonusSpeedUp}}
	g.WithLevels(custom)
	layout, err := g.Generate(9)
	if err != nil {
		t.Fatalf("level beyond table: %v", err)
	}
	if len(layout.Enemies) != 1 {
		t.Errorf("level beyond table should reuse the last entry")
	}
}

func TestGenerateDegrades(t *testing.T) {
	tests := []struct {
		name      string
		edit      func(r [][]byte)
		soft      int
		enemies   int
		exitFound bool
	}{
		{
			name: "three free tiles",
			edit: func(r [][]byte) {
				r[1][1] = 'o'
				r[1][2] = ' '
				r[1][3] = ' '
				r[1][4] = ' '
			},
			soft:      3,
			enemies:   0,
			exitFound: true,
		},
		{
			name: "single free tile",
			edit: func(r [][]byte) {
				r[1][1] = 'o'
				r[1][2] = '.'
			},
			soft:      1,
			enemies:   0,
			exitFound: true,
		},
		{
			name: "no free tiles",
			edit: func(r [][]byte) {
				r[1][1] = 'o'
				r[1][2] = '+'
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := ParseMap(mapLines(tc.edit))
			if err != nil {
				t.Fatal(err)
			}
			layout, err := NewSeededGenerator(m, 3).Generate(1)
			if err != nil {
				t.Fatalf("generate: %v", err)
			}
			if len(layout.SoftBlocks) != tc.soft || len(layout.Enemies) != tc.enemies {
				t.Fatalf("expected %d soft / %d enemies, got %d / %d",
					tc.soft, tc.enemies, len(layout.SoftBlocks), len(layout.Enemies))
			}
			found := false
			for _, s := range layout.SoftBlocks {
				found = found || s.Bonus == BonusExit
			}
			if found != tc.exitFound {
				t.Errorf("exit placed: %v, want %v", found, tc.exitFound)
			}
		})
	}
}
