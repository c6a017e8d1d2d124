//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"regolith/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

const (
	hudLineHeight = 14
	hudPadding    = 6
	hudWidth      = 260
)

// HUD renders the parameter snapshot in the top-left corner. H toggles it.
type HUD struct {
	sim    core.Sim
	hidden bool
	lines  []string
	pixel  *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	h := &HUD{sim: sim}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update refreshes the cached snapshot and handles the toggle key.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.hidden = !h.hidden
	}
	provider, ok := h.sim.(parameterProvider)
	if !ok {
		h.lines = []string{h.sim.Name()}
		return
	}
	snap := provider.Parameters()
	h.lines = h.lines[:0]
	for _, g := range snap.Groups {
		if g.Summary != "" {
			h.lines = append(h.lines, fmt.Sprintf("%s (%s)", g.Name, g.Summary))
		} else {
			h.lines = append(h.lines, g.Name)
		}
		for _, p := range g.Params {
			label := p.Label
			if label == "" {
				label = p.Key
			}
			h.lines = append(h.lines, fmt.Sprintf("  %s: %s", label, p.Value))
		}
	}
}

// Draw renders the panel.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.hidden || len(h.lines) == 0 {
		return
	}
	height := len(h.lines)*hudLineHeight + 2*hudPadding
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(hudWidth, float64(height))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 16, G: 16, B: 16, A: 180})
	screen.DrawImage(h.pixel, op)

	for i, line := range h.lines {
		y := hudPadding + (i+1)*hudLineHeight - 3
		text.Draw(screen, line, basicfont.Face7x13, hudPadding, y, color.White)
	}
}
