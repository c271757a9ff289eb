// Package canvas is a CPU frame buffer that implements the drawing half of
// game.Renderer. The terminal frontend renders into it and then samples it
// down to character cells; the desktop frontend only borrows FillGradient to
// bake its background once.
package canvas

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/dawkrish/flappy/internal/game"
)

// Label is a piece of HUD text queued during a frame.
type Label struct {
	Text string
	X, Y int // X is the horizontal center
}

// Canvas holds one frame.
type Canvas struct {
	img     *image.RGBA
	sprites map[game.SpriteID]image.Image
	labels  []Label

	gradTop, gradBottom color.RGBA
	gradient            *image.RGBA
}

func New(w, h int, sprites map[game.SpriteID]image.Image) *Canvas {
	return &Canvas{
		img:     image.NewRGBA(image.Rect(0, 0, w, h)),
		sprites: sprites,
	}
}

// Gradient clears the frame to the vertical gradient. The gradient itself is
// computed once per color pair and copied afterwards.
func (c *Canvas) Gradient(top, bottom color.RGBA) {
	c.labels = c.labels[:0]
	if c.gradient == nil || top != c.gradTop || bottom != c.gradBottom {
		c.gradient = image.NewRGBA(c.img.Bounds())
		FillGradient(c.gradient, top, bottom)
		c.gradTop, c.gradBottom = top, bottom
	}
	copy(c.img.Pix, c.gradient.Pix)
}

// Blit composites a sprite with its alpha at (x, y). Unknown IDs are skipped.
func (c *Canvas) Blit(s game.SpriteID, x, y int) {
	src, ok := c.sprites[s]
	if !ok {
		return
	}
	b := src.Bounds()
	r := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	draw.Draw(c.img, r, src, b.Min, draw.Over)
}

func (c *Canvas) Text(s string, x, y int) {
	c.labels = append(c.labels, Label{Text: s, X: x, Y: y})
}

// Present is a no-op; the owner reads Image and Labels after the frame.
func (c *Canvas) Present() {}

func (c *Canvas) Image() *image.RGBA { return c.img }

// Labels returns the text queued since the last Gradient call.
func (c *Canvas) Labels() []Label { return c.labels }

// FillGradient paints dst row by row from top to bottom, interpolating each
// channel with integer arithmetic.
func FillGradient(dst *image.RGBA, top, bottom color.RGBA) {
	b := dst.Bounds()
	h := b.Dy()
	for y := 0; y < h; y++ {
		row := GradientAt(top, bottom, y, h)
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.SetRGBA(x, b.Min.Y+y, row)
		}
	}
}

// GradientAt is the color of row y out of h. Steps are floored, so a
// darkening channel drops on the first row that moves it at all.
func GradientAt(top, bottom color.RGBA, y, h int) color.RGBA {
	lerp := func(a, b uint8) uint8 {
		return uint8(int(a) + floorDiv((int(b)-int(a))*y, h))
	}
	return color.RGBA{
		R: lerp(top.R, bottom.R),
		G: lerp(top.G, bottom.G),
		B: lerp(top.B, bottom.B),
		A: 0xff,
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
