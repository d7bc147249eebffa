//go:build ebiten

package ui

import (
	"image/color"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a translucent status panel in the top-left corner.
type HUD struct {
	visible bool
	pixel   *ebiten.Image
}

// NewHUD constructs a HUD, initially hidden.
func NewHUD() *HUD {
	h := &HUD{pixel: ebiten.NewImage(1, 1)}
	h.pixel.Fill(color.White)
	return h
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Visible reports whether the panel is drawn.
func (h *HUD) Visible() bool { return h != nil && h.visible }

// Draw paints the panel with the given status.
func (h *HUD) Draw(screen *ebiten.Image, s core.Status) {
	if !h.Visible() {
		return
	}
	lines := StatusLines(s)
	face := basicfont.Face7x13

	width := 0
	for _, l := range lines {
		width = max(width, text.BoundString(face, l).Dx())
	}
	width += 2 * panelPadding
	height := len(lines)*lineHeight + 2*panelPadding - (lineHeight - baseline)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width), float64(height))
	op.GeoM.Translate(panelMargin, panelMargin)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	screen.DrawImage(h.pixel, op)

	fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	for i, l := range lines {
		y := panelMargin + panelPadding + baseline + i*lineHeight
		text.Draw(screen, l, face, panelMargin+panelPadding, y, fg)
	}
}

const (
	panelMargin  = 8
	panelPadding = 8
	lineHeight   = 16
	baseline     = 10
)
