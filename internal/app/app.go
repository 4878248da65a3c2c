//go:build ebiten

package app

import (
	"image/color"
	"time"

	"mad-life/internal/core"
	"mad-life/internal/render"
	"mad-life/internal/ui"
	"mad-life/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Controller to the ebiten.Game interface. It translates input
// into controller calls and draws the controller's grid through a Camera.
type Game struct {
	ctl     *Controller
	cam     *Camera
	painter *render.CellPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color

	size         core.Size
	dragging     bool
	lastX, lastY int
	centered     bool
}

// New constructs a Game for the provided controller.
func New(ctl *Controller, cfg *Config) *Game {
	return &Game{
		ctl:      ctl,
		cam:      NewCamera(cfg.Cell),
		painter:  render.NewCellPainter(),
		hud:      ui.NewHUD("Game of Life"),
		overlay:  ui.NewOverlay(),
		onColor:  color.RGBA{R: 0, G: 200, B: 0, A: 255},
		offColor: color.RGBA{R: 24, G: 24, B: 24, A: 255},
		size:     core.Size{W: cfg.Width, H: cfg.Height},
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if !g.centered {
		g.centerOnPopulation()
		g.centered = true
	}

	g.handleKeys()
	g.handleMouse()

	g.overlay.Update(g.cam)
	g.ctl.Tick(time.Now())
	g.hud.Update(withCursor(g.ctl.Parameters(), g.overlay.Hover()))
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctl.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctl.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.ctl.Faster()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.ctl.Slower()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctl.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctl.Reseed(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.ctl.CyclePattern()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		g.centerOnPopulation()
	}
}

func (g *Game) handleMouse() {
	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.dragging {
			g.cam.Pan(float64(x-g.lastX), float64(y-g.lastY))
		}
		g.dragging = true
	} else {
		g.dragging = false
	}
	g.lastX, g.lastY = x, y

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.ctl.Toggle(g.cam.ScreenToWorld(float64(x), float64(y)))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		g.ctl.StampSelected(g.cam.ScreenToWorld(float64(x), float64(y)))
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.cam.ZoomAt(wy, float64(x), float64(y))
	}
}

func (g *Game) centerOnPopulation() {
	var r life.Rect
	ok := false
	g.ctl.View(func(grid *life.Grid) { r, ok = grid.Bounds() })
	if !ok {
		r = life.RectOf(0, 0, 1, 1)
	}
	g.cam.CenterOn(r, g.size.W, g.size.H)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.offColor)
	g.ctl.View(func(grid *life.Grid) {
		g.painter.Draw(screen, grid, g.cam, g.onColor)
	})
	g.overlay.Draw(screen, g.cam)
	g.hud.Draw(screen)
}

// Layout tracks the window size so the camera covers the whole window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.size = core.Size{W: outsideWidth, H: outsideHeight}
	return outsideWidth, outsideHeight
}
