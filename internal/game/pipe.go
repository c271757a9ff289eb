package game

import (
	"image"
	"math"

	"github.com/dawkrish/flappy/internal/mask"
)

// Scroller is a sprite that moves left with the world.
type Scroller interface {
	Sprite
	X() float64
	Width() int
	Advance(dx float64)
}

// Pipe is one half of a pipe pair.
type Pipe struct {
	x        float64
	y        int
	inverted bool
	passed   bool
	mask     *mask.Mask
}

func (p *Pipe) X() float64       { return p.x }
func (p *Pipe) Y() int           { return p.y }
func (p *Pipe) Inverted() bool   { return p.inverted }
func (p *Pipe) Mask() *mask.Mask { return p.mask }

func (p *Pipe) Width() int {
	w, _ := p.mask.Size()
	return w
}

func (p *Pipe) Height() int {
	_, h := p.mask.Size()
	return h
}

func (p *Pipe) Advance(dx float64) {
	p.x -= dx
}

func (p *Pipe) Pos() image.Point {
	return image.Pt(int(math.Floor(p.x)), p.y)
}

func (p *Pipe) SpriteID() SpriteID {
	if p.inverted {
		return SpritePipeInverted
	}
	return SpritePipe
}

// Rand is the only source of randomness in the simulation.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// PairGenerator builds pipe pairs with a fixed gap at a random height.
type PairGenerator struct {
	rng          Rand
	screenHeight int
	gap          int
	anchorMin    int
	anchorMax    int
	pipe         *mask.Mask
	inverted     *mask.Mask
}

func NewPairGenerator(rng Rand, screenHeight, gap, anchorMin, anchorMax int, pipe, inverted *mask.Mask) *PairGenerator {
	return &PairGenerator{
		rng:          rng,
		screenHeight: screenHeight,
		gap:          gap,
		anchorMin:    anchorMin,
		anchorMax:    anchorMax,
		pipe:         pipe,
		inverted:     inverted,
	}
}

// Generate returns a pair at x. The anchor is drawn from [anchorMin, anchorMax)
// and fixes the lower pipe's top at screenHeight-anchor; the inverted pipe's
// bottom edge sits exactly gap pixels above it.
func (g *PairGenerator) Generate(x float64) (lower, upper *Pipe) {
	anchor := g.anchorMin + g.rng.IntN(g.anchorMax-g.anchorMin)

	lower = &Pipe{
		x:    x,
		y:    g.screenHeight - anchor,
		mask: g.pipe,
	}

	_, h := g.inverted.Size()
	upper = &Pipe{
		x:        x,
		y:        -(h - (g.screenHeight - anchor - g.gap)),
		inverted: true,
		mask:     g.inverted,
	}
	return lower, upper
}

// Spawn adapts Generate to a pool spawn callback.
func (g *PairGenerator) Spawn(x float64) []*Pipe {
	lower, upper := g.Generate(x)
	return []*Pipe{lower, upper}
}

// Ground is one bottom-anchored floor tile.
type Ground struct {
	x    float64
	y    int
	mask *mask.Mask
}

// NewGround places a tile whose bottom edge touches screenHeight.
func NewGround(x float64, screenHeight int, m *mask.Mask) *Ground {
	_, h := m.Size()
	return &Ground{x: x, y: screenHeight - h, mask: m}
}

func (g *Ground) X() float64         { return g.x }
func (g *Ground) Y() int             { return g.y }
func (g *Ground) Mask() *mask.Mask   { return g.mask }
func (g *Ground) SpriteID() SpriteID { return SpriteGround }

func (g *Ground) Width() int {
	w, _ := g.mask.Size()
	return w
}

func (g *Ground) Advance(dx float64) {
	g.x -= dx
}

func (g *Ground) Pos() image.Point {
	return image.Pt(int(math.Floor(g.x)), g.y)
}
