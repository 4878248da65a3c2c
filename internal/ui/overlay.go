//go:build ebiten

package ui

import (
	"image/color"

	"mad-life/internal/render"
	"mad-life/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// minGridCell is the smallest on-screen cell size that still gets grid lines.
const minGridCell = 4

// Overlay draws optional grid lines and highlights the hovered cell.
type Overlay struct {
	showGrid  bool
	gridCol   color.Color
	hoverCol  color.Color
	hover     life.Coord
	hasCursor bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{
		showGrid: true,
		gridCol:  color.RGBA{R: 60, G: 60, B: 60, A: 255},
		hoverCol: color.RGBA{R: 200, G: 200, B: 80, A: 255},
	}
}

// Update toggles grid lines and tracks the cell under the cursor.
func (o *Overlay) Update(vp render.Viewport) {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	x, y := ebiten.CursorPosition()
	o.hover = vp.ScreenToWorld(float64(x), float64(y))
	o.hasCursor = true
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, vp render.Viewport) {
	cs := vp.CellSize()
	b := screen.Bounds()
	if o.showGrid && cs >= minGridCell {
		view := vp.Visible(b.Dx(), b.Dy())
		for x := view.Min.X; x <= view.Max.X; x++ {
			sx, _ := vp.WorldToScreen(life.Coord{X: x, Y: 0})
			vector.StrokeLine(screen, float32(sx), 0, float32(sx), float32(b.Dy()), 1, o.gridCol, false)
		}
		for y := view.Min.Y; y <= view.Max.Y; y++ {
			_, sy := vp.WorldToScreen(life.Coord{X: 0, Y: y})
			vector.StrokeLine(screen, 0, float32(sy), float32(b.Dx()), float32(sy), 1, o.gridCol, false)
		}
	}
	if o.hasCursor {
		x, y := vp.WorldToScreen(o.hover)
		vector.StrokeRect(screen, float32(x), float32(y), float32(cs), float32(cs), 1, o.hoverCol, false)
	}
}

// Hover returns the cell under the cursor as of the last Update.
func (o *Overlay) Hover() life.Coord { return o.hover }
