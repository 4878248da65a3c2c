//go:build ebiten

package render

import (
	"image/color"

	"mad-life/internal/core"
	"mad-life/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// CellPainter draws the visible part of a sparse grid. The visible window is
// rasterised into one pixel per cell and scaled up on the GPU.
type CellPainter struct {
	raster *core.ByteGrid
	img    *ebiten.Image
	buf    []byte
}

// NewCellPainter allocates an empty painter.
func NewCellPainter() *CellPainter {
	return &CellPainter{raster: core.NewByteGrid(1, 1)}
}

// Draw paints the alive cells of g that fall on dst through vp.
func (cp *CellPainter) Draw(dst *ebiten.Image, g *life.Grid, vp Viewport, on color.Color) {
	b := dst.Bounds()
	view := vp.Visible(b.Dx(), b.Dy())
	if view.Empty() || g.Len() == 0 {
		return
	}
	cp.raster.Rasterize(g, view)

	w, h := cp.raster.W, cp.raster.H
	if cp.img == nil || cp.img.Bounds().Dx() != w || cp.img.Bounds().Dy() != h {
		cp.img = ebiten.NewImage(w, h)
	}
	cp.buf = ensureBuf(cp.buf, w*h)
	fillBinaryRGBA(cp.buf, cp.raster.Cells(), on, color.Transparent)
	cp.img.WritePixels(cp.buf)

	cs := vp.CellSize()
	x, y := vp.WorldToScreen(cp.raster.Origin)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cs, cs)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterNearest
	dst.DrawImage(cp.img, op)
}
