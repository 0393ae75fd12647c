package core

import (
	"math"
	"math/rand"
	"testing"
)

var allOpen = [4]bool{true, true, true, true}

func TestBallomTurnRate(t *testing.T) {
	p, err := Ballom.Params()
	if err != nil {
		t.Fatal(err)
	}
	p.TurnRatio = 0.03
	rng := rand.New(rand.NewSource(2024))

	const samples = 200000
	changes := 0
	for range samples {
		d := Decide(allOpen, DirRight, p, 0, 0, rng)
		if d.Forced {
			t.Fatalf("open facing must never force a turn")
		}
		if d.Turned {
			changes++
		}
	}
	// 3% 的概率重新选向，其中 3/4 会换到别的方向
	rate := float64(changes) / samples
	if math.Abs(rate-0.03*0.75) > 0.003 {
		t.Errorf("direction change rate %.4f, expected about %.4f", rate, 0.03*0.75)
	}
}

func TestForcedTurn(t *testing.T) {
	p, _ := Onil.Params()
	rng := rand.New(rand.NewSource(1))
	open := [4]bool{DirDown: true, DirUp: true}
	for range 100 {
		d := Decide(open, DirLeft, p, 0, 0, rng)
		if !d.Forced || d.Freeze != p.TurnTime {
			t.Fatalf("expected forced turn with freeze %d, got %+v", p.TurnTime, d)
		}
		if !open[d.Dir] {
			t.Fatalf("picked closed direction %v", d.Dir)
		}
	}
}

func TestWanderUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	open := [4]bool{DirLeft: true, DirRight: true, DirUp: true}
	var counts [4]int
	const n = 30000
	for range n {
		d, ok := Wander(open, rng)
		if !ok || !open[d] {
			t.Fatalf("wander picked %v", d)
		}
		counts[d]++
	}
	for _, d := range []Direction{DirLeft, DirRight, DirUp} {
		if share := float64(counts[d]) / n; math.Abs(share-1.0/3) > 0.02 {
			t.Errorf("%v share %.3f", d, share)
		}
	}
	if _, ok := Wander([4]bool{}, rng); ok {
		t.Errorf("wander with nothing open should fail")
	}
}

func TestChasePreference(t *testing.T) {
	p, _ := Tiglon.Params()
	p.RandomTurnChance = 0
	rng := rand.New(rand.NewSource(3))

	tests := []struct {
		name   string
		dx, dy int
		want   [4]Direction
	}{
		{"player right", 100, 0, [4]Direction{DirRight, DirDown, DirUp, DirLeft}},
		{"player left", -100, 0, [4]Direction{DirLeft, DirDown, DirUp, DirRight}},
		{"player below", 0, 64, [4]Direction{DirDown, DirLeft, DirRight, DirUp}},
		{"player up-left", -64, -32, [4]Direction{DirLeft, DirUp, DirDown, DirRight}},
	}
	for _, tc := range tests {
		if got := ChasePreference(tc.dx, tc.dy, p, rng); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}

	// 超出追踪半径时是随机排列
	far := ChasePreference(p.ChaseRadius+TileSize, 0, p, rng)
	seen := map[Direction]bool{}
	for _, d := range far {
		seen[d] = true
	}
	if len(seen) != 4 {
		t.Errorf("far preference should be a permutation, got %v", far)
	}
}

func TestChaserPicksBestOpen(t *testing.T) {
	p, _ := Minvo.Params()
	p.RandomTurnChance = 0
	rng := rand.New(rand.NewSource(4))
	open := [4]bool{DirLeft: true, DirDown: true}
	d := Decide(open, DirRight, p, 64, 32, rng)
	if d.Dir != DirDown || !d.Forced {
		t.Errorf("expected forced turn down, got %+v", d)
	}
}

func TestSpeciesParams(t *testing.T) {
	tests := []struct {
		s      Species
		speed  int
		points int
		chaser bool
		soft   bool
	}{
		{Ballom, 1, 100, false, false},
		{Onil, 2, 200, false, false},
		{Dahl, 2, 400, false, false},
		{Minvo, 2, 800, true, false},
		{Doria, 1, 1000, true, true},
		{Ovape, 2, 2000, false, true},
		{Tiglon, 2, 4000, true, false},
	}
	for _, tc := range tests {
		p, err := tc.s.Params()
		if err != nil {
			t.Fatalf("%v: %v", tc.s, err)
		}
		if p.Speed != tc.speed || p.Points != tc.points || p.Chaser != tc.chaser || p.PassSoft != tc.soft {
			t.Errorf("%v: unexpected params %+v", tc.s, p)
		}
		if TileSize%p.Speed != 0 {
			t.Errorf("%v: speed must divide the tile size", tc.s)
		}
	}
	if _, err := Pontan.Params(); err == nil {
		t.Errorf("pontan should not have parameters")
	}
	if s, err := ParseSpecies("doria"); err != nil || s != Doria {
		t.Errorf("ParseSpecies: %v %v", s, err)
	}
}

func TestEnemyKillOnce(t *testing.T) {
	e, err := NewEnemy(Dahl, Tile{X: 3, Y: 3}, DirUp)
	if err != nil {
		t.Fatal(err)
	}
	if !e.Kill() || e.Kill() {
		t.Fatalf("Kill should succeed only once")
	}
	if _, err := NewEnemy(Pontan, Tile{X: 3, Y: 3}, DirUp); err == nil {
		t.Errorf("pontan should fail to spawn")
	}
}

func TestEnemyFreezeAfterForcedTurn(t *testing.T) {
	g := newTestGame(t, 1)
	clearArena(g)
	putPlayer(g, Tile{X: 29, Y: 11})
	e := addEnemy(t, g, Ballom, Tile{X: 1, Y: 3})

	stepN(t, g, Input{}, e.params.TurnTime)
	if x, y := e.Position(); x != TileSize || y != 3*TileSize {
		t.Fatalf("enemy should hold during the freeze, got (%d,%d)", x, y)
	}
	if e.Facing() == DirLeft {
		t.Fatalf("enemy should have turned away from the wall")
	}
	stepN(t, g, Input{}, 1)
	if x, y := e.Position(); x == TileSize && y == 3*TileSize {
		t.Errorf("enemy should move after the freeze")
	}
}

func TestEnclosedEnemyStays(t *testing.T) {
	g := newTestGame(t, 1)
	clearArena(g)
	putPlayer(g, Tile{X: 5, Y: 5})
	addSoft(g, Tile{X: 2, Y: 1}, BonusNone)
	addSoft(g, Tile{X: 1, Y: 2}, BonusNone)
	e := addEnemy(t, g, Onil, Tile{X: 1, Y: 1})

	stepN(t, g, Input{}, 30)
	if x, y := e.Position(); x != TileSize || y != TileSize {
		t.Errorf("boxed in enemy moved to (%d,%d)", x, y)
	}
}

func TestEnemiesStayOnGridAxis(t *testing.T) {
	g, err := NewGame(DefaultAssets(), GameConfig{Seed: 8, StartLevel: 8})
	if err != nil {
		t.Fatal(err)
	}
	for i := range 3000 {
		if err := g.Update(Input{}); err != nil {
			t.Fatal(err)
		}
		for _, e := range g.Enemies() {
			x, y := e.Position()
			if x%TileSize != 0 && y%TileSize != 0 {
				t.Fatalf("tick %d: %v off grid at (%d,%d)", i, e.Species(), x, y)
			}
		}
	}
}
