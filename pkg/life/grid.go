package life

import "sort"

// neighborOffsets lists the Moore neighbourhood relative to a cell.
var neighborOffsets = [8]Coord{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Grid implements Conway's Game of Life over a sparse set of alive cells on an
// unbounded plane. Dead cells are not stored.
//
// A Grid performs no internal synchronization; callers sharing one across
// goroutines must serialize every call.
type Grid struct {
	alive      map[Coord]struct{}
	generation int
}

// New returns an empty Grid at generation 1.
func New() *Grid {
	return &Grid{alive: make(map[Coord]struct{}), generation: 1}
}

// FromCoords returns a Grid containing the provided cells.
func FromCoords(cells ...Coord) *Grid {
	g := New()
	g.AddAll(cells...)
	return g
}

// Generation returns the number of the current generation.
func (g *Grid) Generation() int { return g.generation }

// Len returns the number of alive cells.
func (g *Grid) Len() int { return len(g.alive) }

// Contains reports whether c is alive.
func (g *Grid) Contains(c Coord) bool {
	_, ok := g.alive[c]
	return ok
}

// Add marks c alive. Adding an alive cell is a no-op.
func (g *Grid) Add(c Coord) {
	g.alive[c] = struct{}{}
}

// Remove marks c dead. Removing a dead cell is a no-op.
func (g *Grid) Remove(c Coord) {
	delete(g.alive, c)
}

// AddAll adds each cell in order.
func (g *Grid) AddAll(cells ...Coord) {
	for _, c := range cells {
		g.Add(c)
	}
}

// RemoveAll removes each cell in order.
func (g *Grid) RemoveAll(cells ...Coord) {
	for _, c := range cells {
		g.Remove(c)
	}
}

// Clear kills every cell. The generation counter is left untouched.
func (g *Grid) Clear() {
	g.alive = make(map[Coord]struct{})
}

// Merge stamps every alive cell of other into g, shifted by offset. other is
// not modified.
func (g *Grid) Merge(other *Grid, offset Coord) {
	if other == nil {
		return
	}
	if other == g {
		g.mergeSelf(offset)
		return
	}
	for c := range other.alive {
		g.Add(c.Add(offset))
	}
}

// mergeSelf handles g.Merge(g, offset) without growing the map while ranging
// over it.
func (g *Grid) mergeSelf(offset Coord) {
	for _, c := range g.Cells() {
		g.Add(c.Add(offset))
	}
}

// NeighborsOf returns the Moore neighbourhood of c. The order carries no
// meaning.
func (g *Grid) NeighborsOf(c Coord) [8]Coord {
	var out [8]Coord
	for i, d := range neighborOffsets {
		out[i] = c.Add(d)
	}
	return out
}

// CountLivingNeighbors returns how many of the eight neighbours of c are alive
// in the current generation.
func (g *Grid) CountLivingNeighbors(c Coord) int {
	count := 0
	for _, d := range neighborOffsets {
		if _, ok := g.alive[c.Add(d)]; ok {
			count++
		}
	}
	return count
}

// ShouldSurvive applies Conway's rule to c against the current generation:
// an alive cell survives with 2 or 3 neighbours, a dead cell is born with
// exactly 3.
func (g *Grid) ShouldSurvive(c Coord) bool {
	n := g.CountLivingNeighbors(c)
	if g.Contains(c) {
		return n == 2 || n == 3
	}
	return n == 3
}

// Iterate advances the simulation by one generation.
//
// Only alive cells and their neighbourhoods are examined. Dead candidates that
// border several alive cells are tracked in visited so each coordinate is
// tested exactly once.
func (g *Grid) Iterate() {
	next := make(map[Coord]struct{}, len(g.alive))
	visited := make(map[Coord]struct{}, len(g.alive)*4)

	for cell := range g.alive {
		for _, d := range neighborOffsets {
			n := cell.Add(d)
			if _, ok := g.alive[n]; ok {
				continue
			}
			if _, ok := visited[n]; ok {
				continue
			}
			visited[n] = struct{}{}
			if g.ShouldSurvive(n) {
				next[n] = struct{}{}
			}
		}

		if _, ok := visited[cell]; ok {
			continue
		}
		visited[cell] = struct{}{}
		if g.ShouldSurvive(cell) {
			next[cell] = struct{}{}
		}
	}

	g.alive = next
	g.generation++
}

// Each calls fn for every alive cell until fn returns false. Iteration order
// is unspecified and fn must not mutate g.
func (g *Grid) Each(fn func(Coord) bool) {
	for c := range g.alive {
		if !fn(c) {
			return
		}
	}
}

// Cells returns a copy of the alive cells sorted by Y, then X.
func (g *Grid) Cells() []Coord {
	out := make([]Coord, 0, len(g.alive))
	for c := range g.alive {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })
	return out
}

// Bounds returns the smallest rectangle holding every alive cell. ok is false
// for an empty grid.
func (g *Grid) Bounds() (r Rect, ok bool) {
	for c := range g.alive {
		if !ok {
			r = Rect{Min: c, Max: c.Add(Coord{1, 1})}
			ok = true
			continue
		}
		r.Min.X = min(r.Min.X, c.X)
		r.Min.Y = min(r.Min.Y, c.Y)
		r.Max.X = max(r.Max.X, c.X+1)
		r.Max.Y = max(r.Max.Y, c.Y+1)
	}
	return r, ok
}

// Clone returns an independent copy of g, generation included.
func (g *Grid) Clone() *Grid {
	out := &Grid{alive: make(map[Coord]struct{}, len(g.alive)), generation: g.generation}
	for c := range g.alive {
		out.alive[c] = struct{}{}
	}
	return out
}

// Translate returns a new grid holding g's cells shifted by offset.
func (g *Grid) Translate(offset Coord) *Grid {
	out := New()
	out.Merge(g, offset)
	return out
}
