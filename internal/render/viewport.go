package render

import "mad-life/pkg/life"

// Viewport maps world cells onto the screen.
type Viewport interface {
	CellSize() float64
	Visible(w, h int) life.Rect
	WorldToScreen(c life.Coord) (float64, float64)
	ScreenToWorld(sx, sy float64) life.Coord
}
