package termui

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"

	"github.com/dawkrish/flappy/internal/canvas"
)

// halfBlock paints the upper half of a cell in the foreground color, so one
// cell shows two vertically stacked pixels.
const halfBlock = '▀'

// viewport is where the frame lands on the terminal: a w x 2h pixel image
// drawn at cell offset (x, y).
type viewport struct {
	x, y, w, h int
}

// fit keeps the frame's aspect ratio inside a cols x rows terminal, counting
// two pixels per cell vertically.
func fit(frameW, frameH, cols, rows int) viewport {
	ph := rows * 2
	pw := ph * frameW / frameH
	if pw > cols {
		pw = cols
		ph = cols * frameH / frameW
	}
	h := ph / 2
	return viewport{x: (cols - pw) / 2, y: (rows - h) / 2, w: pw, h: h}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// present samples the canvas down to the terminal and shows it.
func (r *Runner) present() {
	cols, rows := r.screen.Size()
	frame := r.canvas.Image()
	fb := frame.Bounds()
	vp := fit(fb.Dx(), fb.Dy(), cols, rows)

	r.screen.Clear()
	if vp.w <= 0 || vp.h <= 0 {
		r.screen.Show()
		return
	}

	if r.small == nil || r.small.Bounds().Dx() != vp.w || r.small.Bounds().Dy() != vp.h*2 {
		r.small = image.NewRGBA(image.Rect(0, 0, vp.w, vp.h*2))
	}
	xdraw.NearestNeighbor.Scale(r.small, r.small.Bounds(), frame, fb, xdraw.Src, nil)

	for cy := 0; cy < vp.h; cy++ {
		for cx := 0; cx < vp.w; cx++ {
			top := r.small.RGBAAt(cx, cy*2)
			bottom := r.small.RGBAAt(cx, cy*2+1)
			style := tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
			r.screen.SetContent(vp.x+cx, vp.y+cy, halfBlock, nil, style)
		}
	}

	for _, l := range r.canvas.Labels() {
		r.label(vp, fb, l)
	}
	r.screen.Show()
}

// label writes HUD text as characters over the pixels it covers.
func (r *Runner) label(vp viewport, fb image.Rectangle, l canvas.Label) {
	runes := []rune(l.Text)
	px := l.X * vp.w / fb.Dx()
	py := l.Y * vp.h * 2 / fb.Dy()
	cy := py / 2
	if cy < 0 || cy >= vp.h {
		return
	}
	start := px - len(runes)/2
	for i, ch := range runes {
		cx := start + i
		if cx < 0 || cx >= vp.w {
			continue
		}
		bg := r.small.RGBAAt(cx, cy*2)
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(rgb(bg)).Bold(true)
		r.screen.SetContent(vp.x+cx, vp.y+cy, ch, nil, style)
	}
}
