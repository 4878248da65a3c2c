package app

import (
	"math"

	"mad-life/pkg/life"
)

const (
	zoomStep = 1.2
	minZoom  = 0.1
	maxZoom  = 20.0
)

// Camera maps between screen pixels and world cells. X and Y hold the world
// pixel position of the screen's top-left corner.
type Camera struct {
	X, Y float64
	Unit float64
	Zoom float64
}

// NewCamera returns a camera with the given cell size at zoom 1.
func NewCamera(unit float64) *Camera {
	if unit <= 0 {
		unit = 1
	}
	return &Camera{Unit: unit, Zoom: 1}
}

// CellSize returns the on-screen edge length of one cell.
func (c *Camera) CellSize() float64 { return c.Unit * c.Zoom }

// ScreenToWorld returns the cell under the screen position (sx, sy).
func (c *Camera) ScreenToWorld(sx, sy float64) life.Coord {
	cs := c.CellSize()
	return life.Coord{
		X: int(math.Floor((sx + c.X) / cs)),
		Y: int(math.Floor((sy + c.Y) / cs)),
	}
}

// WorldToScreen returns the screen position of the top-left corner of cell.
func (c *Camera) WorldToScreen(cell life.Coord) (float64, float64) {
	cs := c.CellSize()
	return float64(cell.X)*cs - c.X, float64(cell.Y)*cs - c.Y
}

// Pan moves the view so the content follows a drag of (dx, dy) pixels.
func (c *Camera) Pan(dx, dy float64) {
	c.X -= dx
	c.Y -= dy
}

// ZoomAt scales the view by zoomStep per notch, keeping the world point under
// (sx, sy) fixed on screen.
func (c *Camera) ZoomAt(notches, sx, sy float64) {
	if notches == 0 {
		return
	}
	cs := c.CellSize()
	wx, wy := (sx+c.X)/cs, (sy+c.Y)/cs

	zoom := c.Zoom * math.Pow(zoomStep, notches)
	c.Zoom = math.Max(minZoom, math.Min(maxZoom, zoom))

	cs = c.CellSize()
	c.X = wx*cs - sx
	c.Y = wy*cs - sy
}

// Visible returns the cells that intersect a w*h pixel screen, padded by one
// cell on each side.
func (c *Camera) Visible(w, h int) life.Rect {
	if w <= 0 || h <= 0 {
		return life.Rect{}
	}
	tl := c.ScreenToWorld(0, 0)
	br := c.ScreenToWorld(float64(w), float64(h))
	return life.Rect{
		Min: tl.Sub(life.Coord{X: 1, Y: 1}),
		Max: br.Add(life.Coord{X: 2, Y: 2}),
	}
}

// CenterOn positions the view so r sits in the middle of a w*h screen.
func (c *Camera) CenterOn(r life.Rect, w, h int) {
	cs := c.CellSize()
	cx := (float64(r.Min.X) + float64(r.Dx())/2) * cs
	cy := (float64(r.Min.Y) + float64(r.Dy())/2) * cs
	c.X = cx - float64(w)/2
	c.Y = cy - float64(h)/2
}
