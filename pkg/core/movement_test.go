package core

import (
	"math/rand"
	"testing"
)

func stepN(t *testing.T, g *Game, in Input, n int) {
	t.Helper()
	for range n {
		if err := g.Update(in); err != nil {
			t.Fatal(err)
		}
	}
}

func TestPlayerMovesOneTile(t *testing.T) {
	g := newTestGame(t, 1)
	clearArena(g)

	stepN(t, g, Input{Right: true}, TileSize/BaseSpeed)
	if x, y := g.player.Position(); x != 2*TileSize || y != TileSize {
		t.Fatalf("expected (64,32), got (%d,%d)", x, y)
	}
	if g.player.Facing() != DirRight {
		t.Errorf("facing: %v", g.player.Facing())
	}
}

func TestPlayerBlockedByPillar(t *testing.T) {
	g := newTestGame(t, 1)
	clearArena(g)
	putPlayer(g, Tile{X: 1, Y: 2})

	stepN(t, g, Input{Right: true}, 5)
	if x, y := g.player.Position(); x != TileSize || y != 2*TileSize {
		t.Fatalf("pillar should block, got (%d,%d)", x, y)
	}
}

func TestPlayerCornerNudge(t *testing.T) {
	tests := []struct {
		name   string
		startY int
		wantY  int
		ticks  int
	}{
		// 柱子 (2,2) 挡住上半部分，向下绕
		{"nudge down", 2*TileSize + 8, 3 * TileSize, 12},
		// 柱子挡住下半部分，向上绕
		{"nudge up", TileSize + 16, TileSize, 8},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, 1)
			clearArena(g)
			g.player.x, g.player.y = TileSize, tc.startY

			stepN(t, g, Input{Right: true}, tc.ticks)
			if x, y := g.player.Position(); x != TileSize || y != tc.wantY {
				t.Fatalf("after nudging expected (32,%d), got (%d,%d)", tc.wantY, x, y)
			}
			stepN(t, g, Input{Right: true}, 1)
			if x, _ := g.player.Position(); x != TileSize+BaseSpeed {
				t.Fatalf("should move right once aligned, x=%d", x)
			}
		})
	}
}

func TestPlayerXPriority(t *testing.T) {
	g := newTestGame(t, 1)
	clearArena(g)

	stepN(t, g, Input{Right: true, Down: true}, 1)
	if x, y := g.player.Position(); x != TileSize+BaseSpeed || y != TileSize {
		t.Errorf("X should win when both axes move, got (%d,%d)", x, y)
	}

	putPlayer(g, Tile{X: 1, Y: 2})
	stepN(t, g, Input{Right: true, Down: true}, 1)
	if x, y := g.player.Position(); x != TileSize || y != 2*TileSize+BaseSpeed {
		t.Errorf("Y should move when X is blocked, got (%d,%d)", x, y)
	}

	stepN(t, g, Input{Left: true, Up: true}, 1)
	if g.player.Facing() != DirLeft {
		t.Errorf("facing should follow Left first, got %v", g.player.Facing())
	}
}

func TestPlayerLeavesOwnBomb(t *testing.T) {
	g := newTestGame(t, 1)
	clearArena(g)
	putPlayer(g, Tile{X: 5, Y: 5})

	stepN(t, g, Input{PlaceBomb: true}, 1)
	if len(g.Bombs()) != 1 {
		t.Fatalf("bomb not placed")
	}
	stepN(t, g, Input{Right: true}, TileSize/BaseSpeed)
	if x, _ := g.player.Position(); x != 6*TileSize {
		t.Fatalf("player should walk off its bomb, x=%d", x)
	}
	stepN(t, g, Input{Left: true}, 3)
	if x, _ := g.player.Position(); x != 6*TileSize {
		t.Fatalf("bomb should block re-entry, x=%d", x)
	}
}

func TestPassThroughBonuses(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(g *Game)
		passes bool
	}{
		{"bomb blocks", func(g *Game) { addBomb(g, Tile{X: 6, Y: 5}, 1) }, false},
		{"bomb walker", func(g *Game) {
			addBomb(g, Tile{X: 6, Y: 5}, 1)
			g.player.bombWalker = true
		}, true},
		{"soft blocks", func(g *Game) { addSoft(g, Tile{X: 6, Y: 5}, BonusNone) }, false},
		{"wall walker", func(g *Game) {
			addSoft(g, Tile{X: 6, Y: 5}, BonusNone)
			g.player.wallWalker = true
		}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, 1)
			clearArena(g)
			putPlayer(g, Tile{X: 5, Y: 5})
			tc.setup(g)
			stepN(t, g, Input{Right: true}, TileSize/BaseSpeed)
			x, _ := g.player.Position()
			if got := x == 6*TileSize; got != tc.passes {
				t.Errorf("x=%d passes=%v, want %v", x, got, tc.passes)
			}
		})
	}
}

func TestRealign(t *testing.T) {
	tests := []struct {
		x, y, speed  int
		wantX, wantY int
	}{
		{33, 32, 2, 32, 32},
		{31, 32, 2, 32, 32},
		{35, 32, 2, 35, 32},
		{65, 97, 3, 64, 96},
		{66, 97, 3, 66, 97},
	}
	for _, tc := range tests {
		p := NewPlayer()
		p.x, p.y = tc.x, tc.y
		p.realign(tc.speed)
		if p.x != tc.wantX || p.y != tc.wantY {
			t.Errorf("realign(%d,%d) speed %d = (%d,%d), want (%d,%d)",
				tc.x, tc.y, tc.speed, p.x, p.y, tc.wantX, tc.wantY)
		}
	}
}

func TestPlayerStaysOnGridAxis(t *testing.T) {
	for _, speedUp := range []bool{false, true} {
		g := newTestGame(t, 1)
		clearArena(g)
		g.player.speedUp = speedUp
		rng := rand.New(rand.NewSource(11))

		var in Input
		for i := range 3000 {
			if i%12 == 0 {
				in = Input{}.Press(Directions[rng.Intn(4)])
				if rng.Intn(3) == 0 {
					in = in.Press(Directions[rng.Intn(4)])
				}
			}
			if err := g.Update(in); err != nil {
				t.Fatal(err)
			}
			x, y := g.player.Position()
			if x%TileSize != 0 && y%TileSize != 0 {
				t.Fatalf("speedUp=%v tick %d: off grid on both axes at (%d,%d)", speedUp, i, x, y)
			}
		}
	}
}
