package core

import "mad-life/pkg/life"

// ByteGrid stores a window of the plane as byte-sized cell values in row-major
// order. Origin is the world coordinate of the first cell.
type ByteGrid struct {
	W, H   int
	Origin life.Coord
	data   []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for window-local coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Bounds returns the world rectangle covered by the grid.
func (g *ByteGrid) Bounds() life.Rect { return life.RectOf(g.Origin.X, g.Origin.Y, g.W, g.H) }

// At returns the value stored for world coordinate c, or 0 outside the window.
func (g *ByteGrid) At(c life.Coord) uint8 {
	if !g.Bounds().Contains(c) {
		return 0
	}
	return g.data[g.Index(c.X-g.Origin.X, c.Y-g.Origin.Y)]
}

// Resize reshapes the window to cover r, reusing the backing slice when it is
// large enough. The contents are cleared.
func (g *ByteGrid) Resize(r life.Rect) {
	w, h := max(r.Dx(), 1), max(r.Dy(), 1)
	g.W, g.H, g.Origin = w, h, r.Min
	if cap(g.data) < w*h {
		g.data = make([]uint8, w*h)
		return
	}
	g.data = g.data[:w*h]
	g.Clear()
}

// Rasterize resizes the window to view and marks every alive cell of src that
// falls inside it with 1. Whichever of the view or the population is smaller
// drives the scan.
func (g *ByteGrid) Rasterize(src *life.Grid, view life.Rect) {
	g.Resize(view)
	if view.Empty() {
		return
	}
	if view.Dx()*view.Dy() < src.Len() {
		for y := view.Min.Y; y < view.Max.Y; y++ {
			for x := view.Min.X; x < view.Max.X; x++ {
				if src.Contains(life.Coord{X: x, Y: y}) {
					g.data[g.Index(x-view.Min.X, y-view.Min.Y)] = 1
				}
			}
		}
		return
	}
	src.Each(func(c life.Coord) bool {
		if view.Contains(c) {
			g.data[g.Index(c.X-view.Min.X, c.Y-view.Min.Y)] = 1
		}
		return true
	})
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
