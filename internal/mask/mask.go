// Package mask implements per-pixel opacity masks and the overlap test used
// for sprite collisions.
package mask

import (
	"image"
)

// Threshold is the alpha value a pixel must exceed to count as solid.
const Threshold = 127

// Mask is a row-major bitmap of solid pixels.
type Mask struct {
	w, h int
	bits []uint64
}

// New returns an empty w x h mask.
func New(w, h int) *Mask {
	if w < 0 || h < 0 {
		panic("mask: negative size")
	}
	return &Mask{w: w, h: h, bits: make([]uint64, (w*h+63)/64)}
}

// FromImage marks every pixel whose 8-bit alpha exceeds Threshold.
func FromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := New(b.Dx(), b.Dy())
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a>>8 > Threshold {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

// Full returns a mask with every pixel solid.
func Full(w, h int) *Mask {
	m := New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, true)
		}
	}
	return m
}

func (m *Mask) Size() (w, h int) { return m.w, m.h }

func (m *Mask) Bounds() image.Rectangle { return image.Rect(0, 0, m.w, m.h) }

func (m *Mask) Set(x, y int, solid bool) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	i := y*m.w + x
	if solid {
		m.bits[i/64] |= 1 << (i % 64)
	} else {
		m.bits[i/64] &^= 1 << (i % 64)
	}
}

// Get reports whether (x, y) is solid. Out-of-range pixels are empty.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	i := y*m.w + x
	return m.bits[i/64]&(1<<(i%64)) != 0
}

// Count returns the number of solid pixels.
func (m *Mask) Count() int {
	n := 0
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if m.Get(x, y) {
				n++
			}
		}
	}
	return n
}

// Overlap reports whether a placed at (ax, ay) and b placed at (bx, by) share
// at least one solid pixel. Disjoint bounding boxes return false without
// touching the bitmaps.
func Overlap(a *Mask, ax, ay int, b *Mask, bx, by int) bool {
	ra := a.Bounds().Add(image.Pt(ax, ay))
	rb := b.Bounds().Add(image.Pt(bx, by))
	r := ra.Intersect(rb)
	if r.Empty() {
		return false
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if a.Get(x-ax, y-ay) && b.Get(x-bx, y-by) {
				return true
			}
		}
	}
	return false
}
