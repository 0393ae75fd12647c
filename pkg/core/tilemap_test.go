package core

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultMapLayout(t *testing.T) {
	m := DefaultMap()

	for x := 0; x < FieldCols; x++ {
		if m.TileAt(x, 0) != SymHard || m.TileAt(x, FieldRows-1) != SymHard {
			t.Errorf("border at column %d should be hard", x)
		}
	}
	for y := 0; y < FieldRows; y++ {
		if m.TileAt(0, y) != SymHard || m.TileAt(FieldCols-1, y) != SymHard {
			t.Errorf("border at row %d should be hard", y)
		}
	}
	for y := 2; y < FieldRows-1; y += 2 {
		for x := 2; x < FieldCols-1; x += 2 {
			if m.TileAt(x, y) != SymHard {
				t.Errorf("pillar at (%d,%d) missing", x, y)
			}
		}
	}

	if got := m.Spawn(); got != (Tile{X: 1, Y: 1}) {
		t.Fatalf("spawn: expected (1,1), got %v", got)
	}
	if m.TileAt(1, 2) != SymReserved || m.TileAt(2, 1) != SymReserved {
		t.Errorf("tiles next to spawn should be reserved")
	}
	if m.TileAt(3, 1) != SymSoftOnly {
		t.Errorf("(3,1) should be soft-only, got %q", m.TileAt(3, 1))
	}
}

func TestTileAtOutOfRange(t *testing.T) {
	m := DefaultMap()
	for _, tc := range []struct{ x, y int }{{-1, 0}, {0, -1}, {FieldCols, 3}, {3, FieldRows}} {
		if got := m.TileAt(tc.x, tc.y); got != SymHard {
			t.Errorf("TileAt(%d,%d) = %q, want '#'", tc.x, tc.y, got)
		}
	}
}

func TestTilesEnumeration(t *testing.T) {
	m := DefaultMap()
	n := 0
	prev := Tile{X: -1, Y: 0}
	for ti := range m.Tiles() {
		if ti.Y < prev.Y || (ti.Y == prev.Y && ti.X <= prev.X) {
			t.Fatalf("tiles not row-major: %v after %v", ti.Tile, prev)
		}
		if m.TileAt(ti.X, ti.Y) != ti.Sym {
			t.Fatalf("symbol mismatch at %v", ti.Tile)
		}
		prev = ti.Tile
		n++
	}
	if n != FieldCols*FieldRows {
		t.Errorf("expected %d tiles, got %d", FieldCols*FieldRows, n)
	}

	// 提前终止
	n = 0
	for range m.Tiles() {
		n++
		if n == 5 {
			break
		}
	}
	if n != 5 {
		t.Errorf("early break: got %d", n)
	}
}

func mapLines(edit func(rows [][]byte)) []string {
	rows := make([][]byte, FieldRows)
	for y := range rows {
		rows[y] = []byte(strings.Repeat("#", FieldCols))
	}
	edit(rows)
	out := make([]string, FieldRows)
	for y, r := range rows {
		out[y] = string(r)
	}
	return out
}

func TestParseMapErrors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  error
	}{
		{
			name:  "no spawn",
			lines: mapLines(func(r [][]byte) {}),
			want:  ErrNoSpawn,
		},
		{
			name: "two spawns",
			lines: mapLines(func(r [][]byte) {
				r[1][1] = 'o'
				r[1][3] = 'o'
			}),
			want: ErrNoSpawn,
		},
		{
			name: "bad symbol",
			lines: mapLines(func(r [][]byte) {
				r[1][1] = 'o'
				r[1][2] = 'x'
			}),
			want: ErrBadSymbol,
		},
		{
			name:  "short",
			lines: []string{"#o#"},
			want:  ErrBadMap,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseMap(tc.lines)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestParseMapRoundTrip(t *testing.T) {
	m := DefaultMap()
	again, err := ParseMap(strings.Split(m.String(), "\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if again.String() != m.String() || again.Spawn() != m.Spawn() {
		t.Errorf("reparsed map differs")
	}
}
