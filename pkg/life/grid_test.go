package life

import (
	"slices"
	"testing"
)

func sorted(cells ...Coord) []Coord {
	out := append([]Coord(nil), cells...)
	slices.SortFunc(out, func(a, b Coord) int {
		if a.less(b) {
			return -1
		}
		if b.less(a) {
			return 1
		}
		return 0
	})
	return out
}

func expectCells(t *testing.T, g *Grid, want ...Coord) {
	t.Helper()
	got := g.Cells()
	if !slices.Equal(got, sorted(want...)) {
		t.Fatalf("cells = %v, expected %v", got, sorted(want...))
	}
}

func TestNewGridIsEmpty(t *testing.T) {
	g := New()
	if g.Len() != 0 {
		t.Fatalf("new grid has %d cells", g.Len())
	}
	if g.Generation() != 1 {
		t.Fatalf("new grid generation = %d, expected 1", g.Generation())
	}
	if _, ok := g.Bounds(); ok {
		t.Fatal("empty grid must not report bounds")
	}
}

func TestAddRemoveIdempotent(t *testing.T) {
	g := New()
	c := Coord{X: -7, Y: 12}

	g.Add(c)
	g.Add(c)
	expectCells(t, g, c)

	g.Remove(c)
	g.Remove(c)
	expectCells(t, g)

	g.Remove(Coord{X: 100, Y: 100})
	if g.Len() != 0 {
		t.Fatal("removing a dead cell must be a no-op")
	}
}

func TestAddAllRemoveAll(t *testing.T) {
	g := New()
	g.AddAll(Coord{0, 0}, Coord{1, 0}, Coord{0, 0}, Coord{2, 2})
	expectCells(t, g, Coord{0, 0}, Coord{1, 0}, Coord{2, 2})

	g.RemoveAll(Coord{1, 0}, Coord{5, 5}, Coord{1, 0})
	expectCells(t, g, Coord{0, 0}, Coord{2, 2})
}

func TestClearKeepsGeneration(t *testing.T) {
	g := FromCoords(Coord{0, 0}, Coord{1, 0}, Coord{0, 1}, Coord{1, 1})
	g.Iterate()
	g.Iterate()
	g.Clear()
	if g.Len() != 0 {
		t.Fatalf("Clear left %d cells", g.Len())
	}
	if g.Generation() != 3 {
		t.Fatalf("Clear changed generation to %d", g.Generation())
	}
}

func TestNeighborsOf(t *testing.T) {
	g := New()
	c := Coord{X: 3, Y: -4}
	seen := map[Coord]bool{}
	for _, n := range g.NeighborsOf(c) {
		dx, dy := n.X-c.X, n.Y-c.Y
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
			t.Fatalf("%v is not a Moore neighbour of %v", n, c)
		}
		seen[n] = true
	}
	if len(seen) != 8 {
		t.Fatalf("expected 8 distinct neighbours, got %d", len(seen))
	}
}

func TestCountLivingNeighbors(t *testing.T) {
	g := FromCoords(Coord{0, 0}, Coord{1, 0}, Coord{2, 0}, Coord{5, 5})
	cases := []struct {
		c    Coord
		want int
	}{
		{Coord{1, 1}, 3},
		{Coord{1, 0}, 2},
		{Coord{0, 0}, 1},
		{Coord{1, -1}, 3},
		{Coord{4, 4}, 1},
		{Coord{10, 10}, 0},
	}
	for _, tc := range cases {
		if got := g.CountLivingNeighbors(tc.c); got != tc.want {
			t.Fatalf("CountLivingNeighbors(%v) = %d, expected %d", tc.c, got, tc.want)
		}
	}

	full := New()
	for _, n := range full.NeighborsOf(Coord{}) {
		full.Add(n)
	}
	if got := full.CountLivingNeighbors(Coord{}); got != 8 {
		t.Fatalf("surrounded cell has %d neighbours, expected 8", got)
	}
}

func TestShouldSurvive(t *testing.T) {
	// Row of three: the middle has 2 neighbours, the cells above and below
	// the middle have 3.
	g := FromCoords(Coord{-1, 0}, Coord{0, 0}, Coord{1, 0})
	if !g.ShouldSurvive(Coord{0, 0}) {
		t.Fatal("alive cell with 2 neighbours must survive")
	}
	if g.ShouldSurvive(Coord{-1, 0}) {
		t.Fatal("alive cell with 1 neighbour must die")
	}
	if !g.ShouldSurvive(Coord{0, 1}) {
		t.Fatal("dead cell with 3 neighbours must be born")
	}
	if g.ShouldSurvive(Coord{-1, 1}) {
		t.Fatal("dead cell with 2 neighbours must stay dead")
	}

	crowded := FromCoords(Coord{0, 0}, Coord{-1, -1}, Coord{1, -1}, Coord{-1, 1}, Coord{1, 1})
	if crowded.ShouldSurvive(Coord{0, 0}) {
		t.Fatal("alive cell with 4 neighbours must die")
	}
}

func TestBlockIsStill(t *testing.T) {
	block := []Coord{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	g := FromCoords(block...)
	for i := 0; i < 3; i++ {
		g.Iterate()
		expectCells(t, g, block...)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	vertical := []Coord{{0, -1}, {0, 0}, {0, 1}}
	horizontal := []Coord{{-1, 0}, {0, 0}, {1, 0}}

	g := FromCoords(vertical...)
	g.Iterate()
	expectCells(t, g, horizontal...)

	g.Iterate()
	expectCells(t, g, vertical...)
}

func TestGliderTranslation(t *testing.T) {
	glider := []Coord{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	g := FromCoords(glider...)
	for i := 0; i < 4; i++ {
		g.Iterate()
	}

	var moved []Coord
	for _, c := range glider {
		moved = append(moved, c.Add(Coord{1, 1}))
	}
	expectCells(t, g, moved...)
	if g.Generation() != 5 {
		t.Fatalf("generation = %d after 4 iterations, expected 5", g.Generation())
	}
}

func TestBirthRule(t *testing.T) {
	target := Coord{10, 10}
	ring := []Coord{{9, 9}, {10, 9}, {11, 9}, {11, 10}}

	for n := 2; n <= 4; n++ {
		g := FromCoords(ring[:n]...)
		g.Iterate()
		alive := g.Contains(target)
		if (n == 3) != alive {
			t.Fatalf("dead cell with %d neighbours alive=%v after Iterate", n, alive)
		}
	}
}

func TestIterateEmpty(t *testing.T) {
	g := New()
	g.Iterate()
	if g.Len() != 0 {
		t.Fatalf("empty grid grew %d cells", g.Len())
	}
	if g.Generation() != 2 {
		t.Fatalf("generation = %d, expected 2", g.Generation())
	}
}

func TestIterateIsolatedCellsDie(t *testing.T) {
	g := FromCoords(Coord{0, 0}, Coord{100, -100}, Coord{-1000000, 3})
	g.Iterate()
	if g.Len() != 0 {
		t.Fatalf("isolated cells survived: %v", g.Cells())
	}
}

func TestIterateMatchesDenseReference(t *testing.T) {
	// R-pentomino evolves for a long time; compare against a brute-force scan
	// of the bounding box grown by one cell.
	g := FromCoords(Coord{1, 0}, Coord{2, 0}, Coord{0, 1}, Coord{1, 1}, Coord{1, 2})
	for step := 0; step < 60; step++ {
		want := denseStep(g)
		g.Iterate()
		if !slices.Equal(g.Cells(), want) {
			t.Fatalf("step %d diverged from dense reference", step)
		}
	}
}

func denseStep(g *Grid) []Coord {
	r, ok := g.Bounds()
	if !ok {
		return []Coord{}
	}
	out := []Coord{}
	for y := r.Min.Y - 1; y <= r.Max.Y; y++ {
		for x := r.Min.X - 1; x <= r.Max.X; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if g.Contains(Coord{x + dx, y + dy}) {
						neighbors++
					}
				}
			}
			alive := g.Contains(Coord{x, y})
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				out = append(out, Coord{x, y})
			}
		}
	}
	return out
}

func TestMerge(t *testing.T) {
	glider := FromCoords(Coord{1, 0}, Coord{2, 1}, Coord{0, 2}, Coord{1, 2}, Coord{2, 2})
	before := glider.Cells()

	g := New()
	g.Merge(glider, Coord{X: -5, Y: 40})
	expectCells(t, g, Coord{-4, 40}, Coord{-3, 41}, Coord{-5, 42}, Coord{-4, 42}, Coord{-3, 42})

	if !slices.Equal(glider.Cells(), before) {
		t.Fatal("Merge must not mutate its source")
	}

	g.Merge(New(), Coord{X: 1, Y: 1})
	if g.Len() != 5 {
		t.Fatalf("merging an empty grid changed the population to %d", g.Len())
	}

	g.Merge(nil, Coord{})
	if g.Len() != 5 {
		t.Fatal("merging nil must be a no-op")
	}
}

func TestMergeSelf(t *testing.T) {
	g := FromCoords(Coord{0, 0}, Coord{1, 0})
	g.Merge(g, Coord{X: 0, Y: 1})
	expectCells(t, g, Coord{0, 0}, Coord{1, 0}, Coord{0, 1}, Coord{1, 1})
}

func TestCloneIsIndependent(t *testing.T) {
	g := FromCoords(Coord{0, -1}, Coord{0, 0}, Coord{0, 1})
	g.Iterate()
	c := g.Clone()
	if c.Generation() != g.Generation() {
		t.Fatalf("clone generation %d, expected %d", c.Generation(), g.Generation())
	}
	c.Iterate()
	c.Add(Coord{50, 50})
	if g.Contains(Coord{50, 50}) || g.Generation() == c.Generation() {
		t.Fatal("mutating the clone leaked into the original")
	}
}

func TestBoundsAndTranslate(t *testing.T) {
	g := FromCoords(Coord{-2, 3}, Coord{4, -1}, Coord{0, 0})
	r, ok := g.Bounds()
	if !ok {
		t.Fatal("expected bounds")
	}
	if r != (Rect{Min: Coord{-2, -1}, Max: Coord{5, 4}}) {
		t.Fatalf("bounds = %v", r)
	}
	if r.Dx() != 7 || r.Dy() != 5 {
		t.Fatalf("bounds size %dx%d", r.Dx(), r.Dy())
	}

	moved := g.Translate(Coord{X: 2, Y: 1})
	expectCells(t, moved, Coord{0, 4}, Coord{6, 0}, Coord{2, 1})
	expectCells(t, g, Coord{-2, 3}, Coord{4, -1}, Coord{0, 0})
}

func TestEachStopsEarly(t *testing.T) {
	g := FromCoords(Coord{0, 0}, Coord{1, 1}, Coord{2, 2})
	visited := 0
	g.Each(func(Coord) bool {
		visited++
		return false
	})
	if visited != 1 {
		t.Fatalf("Each visited %d cells after returning false", visited)
	}
}
