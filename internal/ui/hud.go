//go:build ebiten

package ui

import (
	"image/color"

	"mad-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 6
	hudLineHeight = 14
	hudWidth      = 190
)

// HUD renders the controller's parameter snapshot in the top-left corner.
type HUD struct {
	title    string
	lines    []string
	visible  bool
	panelCol color.Color
	textCol  color.Color
}

// NewHUD constructs a HUD with the given title line.
func NewHUD(title string) *HUD {
	return &HUD{
		title:    title,
		visible:  true,
		panelCol: color.RGBA{R: 16, G: 16, B: 20, A: 200},
		textCol:  color.White,
	}
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Update refreshes the cached lines from the snapshot.
func (h *HUD) Update(snap core.ParameterSnapshot) {
	if h == nil {
		return
	}
	h.lines = append(h.lines[:0], h.title)
	h.lines = append(h.lines, snap.Lines()...)
}

// Draw paints the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || len(h.lines) == 0 {
		return
	}
	height := float32(len(h.lines)*hudLineHeight + 2*hudPadding)
	vector.DrawFilledRect(screen, 0, 0, hudWidth, height, h.panelCol, false)
	face := basicfont.Face7x13
	for i, line := range h.lines {
		y := hudPadding + (i+1)*hudLineHeight - 3
		text.Draw(screen, line, face, hudPadding, y, h.textCol)
	}
}
