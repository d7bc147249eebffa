//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// GridPainter uploads a Canvas into a single ebiten image and draws it.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
}

// NewGridPainter allocates a painter for a w*h pixel canvas.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Blit uploads the canvas pixels into the painter image and draws it at the
// screen origin.
func (gp *GridPainter) Blit(dst *ebiten.Image, c *Canvas) {
	if w, h := c.Size(); w != gp.w || h != gp.h {
		return
	}
	gp.img.WritePixels(c.Pixels())
	dst.DrawImage(gp.img, nil)
}
