//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"regolith/internal/core"
	"regolith/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type boundaryProvider interface {
	Boundary() []image.Point
}

var boundaryColor = color.RGBA{R: 220, G: 40, B: 40, A: 255}

// Overlay draws the current boundary set on top of the grain.
type Overlay struct {
	sim          core.Sim
	scale        int
	showBoundary bool
	painter      *render.GridPainter
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	size := sim.Size()
	return &Overlay{sim: sim, scale: scale, painter: render.NewGridPainter(size.W, size.H)}
}

// Update toggles the boundary layer with B.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.showBoundary = !o.showBoundary
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showBoundary {
		return
	}
	provider, ok := o.sim.(boundaryProvider)
	if !ok {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	o.painter.BlitPoints(screen, provider.Boundary(), boundaryColor, scale)
}
