package game

import (
	"image"
	"math"

	"github.com/dawkrish/flappy/internal/mask"
)

// Sprite is anything drawn and collided at a pixel position.
type Sprite interface {
	Pos() image.Point
	Mask() *mask.Mask
	SpriteID() SpriteID
}

// Bird is the player's body. Its x never changes and y is never clamped;
// leaving the play area is only ever detected through collisions.
type Bird struct {
	x, y     float64
	velocity float64
	frame    int

	gravity   float64
	bumpSpeed float64
	frames    [3]*mask.Mask
}

// NewBird starts a bird falling at bumpSpeed, the way the classic game does.
func NewBird(x, y, gravity, bumpSpeed float64, frames [3]*mask.Mask) *Bird {
	return &Bird{
		x:         x,
		y:         y,
		velocity:  bumpSpeed,
		gravity:   gravity,
		bumpSpeed: bumpSpeed,
		frames:    frames,
	}
}

// Integrate advances one tick of gravity and one animation frame.
func (b *Bird) Integrate() {
	b.nextFrame()
	b.velocity += b.gravity
	b.y += b.velocity
}

// Bump replaces the current velocity with the upward bump speed.
func (b *Bird) Bump() {
	b.velocity = -b.bumpSpeed
}

// IdleAnimate flaps in place.
func (b *Bird) IdleAnimate() {
	b.nextFrame()
}

func (b *Bird) nextFrame() {
	b.frame = (b.frame + 1) % len(b.frames)
}

func (b *Bird) X() float64        { return b.x }
func (b *Bird) Y() float64        { return b.y }
func (b *Bird) Velocity() float64 { return b.velocity }
func (b *Bird) Frame() int        { return b.frame }

func (b *Bird) Pos() image.Point {
	return image.Pt(int(math.Floor(b.x)), int(math.Floor(b.y)))
}

// Mask is the mask of the frame currently on screen.
func (b *Bird) Mask() *mask.Mask { return b.frames[b.frame] }

func (b *Bird) SpriteID() SpriteID { return BirdFrames[b.frame] }
