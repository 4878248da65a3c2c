//go:build !ebiten

package ui

import (
	"mad-life/internal/render"
	"mad-life/pkg/life"
)

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update(render.Viewport) {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, render.Viewport) {}

// Hover always reports the origin in headless builds.
func (o *Overlay) Hover() life.Coord { return life.Coord{} }
