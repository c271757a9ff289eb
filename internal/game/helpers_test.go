package game

import (
	"image/color"
	"testing"
	"time"

	"github.com/dawkrish/flappy/internal/config"
	"github.com/dawkrish/flappy/internal/mask"
)

// fixedRand returns its values in order, wrapping around, reduced modulo n.
type fixedRand struct {
	vals []int
	i    int
}

func (r *fixedRand) IntN(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type cueRecorder struct{ cues []Cue }

func (a *cueRecorder) Play(c Cue) { a.cues = append(a.cues, c) }

func (a *cueRecorder) count(c Cue) int {
	n := 0
	for _, x := range a.cues {
		if x == c {
			n++
		}
	}
	return n
}

type blit struct {
	id   SpriteID
	x, y int
}

type frameRecorder struct {
	gradients int
	blits     []blit
	texts     []string
	presented int
}

func (r *frameRecorder) Gradient(top, bottom color.RGBA) { r.gradients++ }
func (r *frameRecorder) Blit(s SpriteID, x, y int)       { r.blits = append(r.blits, blit{s, x, y}) }
func (r *frameRecorder) Text(s string, x, y int)         { r.texts = append(r.texts, s) }
func (r *frameRecorder) Present()                        { r.presented++ }

// solidMasks uses fully opaque rectangles of the default sizes.
func solidMasks() Masks {
	bird := mask.Full(34, 24)
	return Masks{
		SpriteBirdUp:       bird,
		SpriteBirdMid:      bird,
		SpriteBirdDown:     bird,
		SpritePipe:         mask.Full(80, 500),
		SpritePipeInverted: mask.Full(80, 500),
		SpriteGround:       mask.Full(800, 100),
	}
}

// ghostMasks gives the bird an empty mask so it never collides.
func ghostMasks() Masks {
	m := solidMasks()
	ghost := mask.New(34, 24)
	m[SpriteBirdUp], m[SpriteBirdMid], m[SpriteBirdDown] = ghost, ghost, ghost
	return m
}

type testWorld struct {
	*World
	clock *fakeClock
	audio *cueRecorder
}

func newTestWorld(t *testing.T, cfg *config.Config, masks Masks) testWorld {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	clock := &fakeClock{t: time.Unix(1000, 0)}
	audio := &cueRecorder{}
	w, err := NewWorld(cfg, masks,
		WithRand(&fixedRand{vals: []int{0, 50, 199, 120}}),
		WithClock(clock.Now),
		WithAudio(audio),
	)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return testWorld{World: w, clock: clock, audio: audio}
}

func groundXs(tiles []*Ground) []float64 {
	var xs []float64
	for _, g := range tiles {
		xs = append(xs, g.X())
	}
	return xs
}
