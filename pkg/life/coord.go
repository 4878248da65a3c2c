package life

import "fmt"

// Coord identifies one cell on the unbounded plane.
type Coord struct {
	X, Y int
}

// Add returns the component-wise sum of c and o.
func (c Coord) Add(o Coord) Coord { return Coord{X: c.X + o.X, Y: c.Y + o.Y} }

// Sub returns the component-wise difference c - o.
func (c Coord) Sub(o Coord) Coord { return Coord{X: c.X - o.X, Y: c.Y - o.Y} }

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// less orders coordinates row-major: by Y, then X.
func (c Coord) less(o Coord) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

// Rect is a half-open box of cells: Min is inclusive, Max exclusive.
type Rect struct {
	Min, Max Coord
}

// RectOf returns the rectangle with origin (x, y) and the given dimensions.
func RectOf(x, y, w, h int) Rect {
	return Rect{Min: Coord{X: x, Y: y}, Max: Coord{X: x + w, Y: y + h}}
}

// Dx returns the width of r.
func (r Rect) Dx() int { return r.Max.X - r.Min.X }

// Dy returns the height of r.
func (r Rect) Dy() int { return r.Max.Y - r.Min.Y }

// Empty reports whether r contains no cells.
func (r Rect) Empty() bool { return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y }

// Contains reports whether c lies inside r.
func (r Rect) Contains(c Coord) bool {
	return c.X >= r.Min.X && c.X < r.Max.X && c.Y >= r.Min.Y && c.Y < r.Max.Y
}

// Center returns the cell closest to the middle of r.
func (r Rect) Center() Coord {
	return Coord{X: r.Min.X + r.Dx()/2, Y: r.Min.Y + r.Dy()/2}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d %dx%d]", r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}
