// Package game is the fixed-tick simulation: the bird, the scrolling ground
// and pipe pools, mask collisions and the phase machine that drives them.
// It knows nothing about windows, terminals or sound devices; frontends feed
// it commands once per tick and render it through the Renderer interface.
package game

import (
	"fmt"
	"log"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/dawkrish/flappy/internal/config"
	"github.com/dawkrish/flappy/internal/mask"
)

// Phase is the state of a run.
type Phase int

const (
	PhaseIntro   Phase = iota // bird flaps in place, ground scrolls
	PhasePlaying              // full simulation
	PhaseFrozen               // hit registered, holding the last frame until the deadline
	PhaseCrashed              // terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhasePlaying:
		return "playing"
	case PhaseFrozen:
		return "frozen"
	case PhaseCrashed:
		return "crashed"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// introHint names the first configured jump key, "SPACE TO FLAP" by default.
func introHint(cfg *config.Config) string {
	for _, name := range cfg.Input.JumpKeys {
		if _, ok := config.LookupKey(name); ok {
			return strings.ToUpper(strings.TrimSpace(name)) + " TO FLAP"
		}
	}
	return "PRESS TO FLAP"
}

// World owns every piece of mutable game state.
type World struct {
	cfg *config.Config

	bird   *Bird
	ground *Pool[*Ground]
	pipes  *Pool[*Pipe]
	gen    *PairGenerator

	hint        string
	phase       Phase
	score       int
	ticks       uint64
	freezeUntil time.Time
	quit        bool

	now   func() time.Time
	audio Audio
}

type Option func(*World)

// WithRand replaces the seeded generator built from cfg.Seed.
func WithRand(r Rand) Option {
	return func(w *World) { w.gen.rng = r }
}

// WithClock sets the time source used for the death freeze.
func WithClock(now func() time.Time) Option {
	return func(w *World) { w.now = now }
}

func WithAudio(a Audio) Option {
	return func(w *World) { w.audio = a }
}

// NewWorld builds a world in PhaseIntro with both pools populated.
func NewWorld(cfg *config.Config, masks Masks, opts ...Option) (*World, error) {
	if err := masks.check(); err != nil {
		return nil, err
	}

	seed := uint64(cfg.Seed)
	w := &World{
		cfg:   cfg,
		hint:  introHint(cfg),
		now:   time.Now,
		audio: nopAudio{},
	}

	x, y := cfg.BirdStart()
	var frames [3]*mask.Mask
	for i, id := range BirdFrames {
		frames[i] = masks[id]
	}
	w.bird = NewBird(x, y, cfg.Physics.Gravity, cfg.Physics.BumpSpeed, frames)

	w.gen = NewPairGenerator(
		rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		cfg.Screen.Height,
		cfg.Pipe.Gap,
		cfg.Pipe.AnchorMin,
		cfg.Pipe.AnchorMax,
		masks[SpritePipe],
		masks[SpritePipeInverted],
	)
	for _, opt := range opts {
		opt(w)
	}

	groundMask := masks[SpriteGround]
	tileWidth, _ := groundMask.Size()
	spawnGround := func(x float64) []*Ground {
		return []*Ground{NewGround(x, cfg.Screen.Height, groundMask)}
	}
	w.ground = NewPool(cfg.Physics.GameSpeed, float64(tileWidth-cfg.Ground.Overlap), 1, spawnGround,
		NewGround(0, cfg.Screen.Height, groundMask),
		NewGround(float64(tileWidth), cfg.Screen.Height, groundMask),
	)

	var pipes []*Pipe
	for i := 0; i < 2; i++ {
		pipes = append(pipes, w.gen.Spawn(cfg.Pipe.FirstX+cfg.Pipe.Spacing*float64(i))...)
	}
	w.pipes = NewPool(cfg.Physics.GameSpeed, cfg.Pipe.Spacing, 2, w.gen.Spawn, pipes...)

	return w, nil
}

// Tick runs one simulation step with the commands drained this tick.
func (w *World) Tick(cmds []Command) {
	if w.Done() {
		return
	}
	w.ticks++

	jump := false
	for _, c := range cmds {
		switch c {
		case CmdQuit:
			log.Printf("game: quit at tick %d (%s, score %d)", w.ticks, w.phase, w.score)
			w.quit = true
			return
		case CmdJump:
			jump = true
		}
	}

	switch w.phase {
	case PhaseIntro:
		w.tickIntro(jump)
	case PhasePlaying:
		w.tickPlaying(cmds)
	case PhaseFrozen:
		if !w.now().Before(w.freezeUntil) {
			w.setPhase(PhaseCrashed)
		}
	}
}

func (w *World) tickIntro(jump bool) {
	if jump {
		// the switching tick does nothing else
		w.bird.Bump()
		w.audio.Play(CueFlap)
		w.setPhase(PhasePlaying)
		return
	}
	w.ground.Advance()
	w.ground.Recycle()
	w.bird.IdleAnimate()
}

func (w *World) tickPlaying(cmds []Command) {
	for _, c := range cmds {
		if c == CmdJump {
			w.bird.Bump()
			w.audio.Play(CueFlap)
		}
	}

	w.bird.Integrate()
	w.ground.Advance()
	w.ground.Recycle()
	w.pipes.Advance()
	w.pipes.Recycle()
	w.updateScore()

	if w.collided() {
		w.audio.Play(CueHit)
		if w.cfg.Physics.Freeze <= 0 {
			w.setPhase(PhaseCrashed)
			return
		}
		w.freezeUntil = w.now().Add(w.cfg.Physics.Freeze)
		w.setPhase(PhaseFrozen)
	}
}

func (w *World) updateScore() {
	for _, p := range w.pipes.Items() {
		if p.inverted || p.passed {
			continue
		}
		if p.x+float64(p.Width()) < w.bird.x {
			p.passed = true
			w.score++
		}
	}
}

func (w *World) collided() bool {
	return CollidesAny(w.bird, w.ground.Items()) || CollidesAny(w.bird, w.pipes.Items())
}

func (w *World) setPhase(p Phase) {
	log.Printf("game: %s -> %s at tick %d, score %d", w.phase, p, w.ticks, w.score)
	w.phase = p
}

// Render draws the current frame: background, bird, pipes once the run has
// started, the ground on top of the pipes, then the HUD.
func (w *World) Render(r Renderer) {
	cfg := w.cfg
	r.Gradient(cfg.Background.Top.Color(), cfg.Background.Bottom.Color())

	draw := func(s Sprite) {
		p := s.Pos()
		r.Blit(s.SpriteID(), p.X, p.Y)
	}
	draw(w.bird)
	if w.phase != PhaseIntro {
		for _, p := range w.pipes.Items() {
			draw(p)
		}
	}
	for _, g := range w.ground.Items() {
		draw(g)
	}

	if w.phase == PhaseIntro {
		r.Text(w.hint, cfg.Screen.Width/2, cfg.Screen.Height/4)
	} else {
		r.Text(strconv.Itoa(w.score), cfg.Screen.Width/2, cfg.Screen.Height/10)
	}
	r.Present()
}

func (w *World) Phase() Phase      { return w.phase }
func (w *World) Score() int        { return w.score }
func (w *World) Ticks() uint64     { return w.ticks }
func (w *World) Bird() *Bird       { return w.bird }
func (w *World) Ground() []*Ground { return w.ground.Items() }
func (w *World) Pipes() []*Pipe    { return w.pipes.Items() }

// Done reports whether the run is over, by crash or by quit.
func (w *World) Done() bool {
	return w.quit || w.phase == PhaseCrashed
}

// FreezeRemaining is the time left in PhaseFrozen, zero otherwise.
func (w *World) FreezeRemaining() time.Duration {
	if w.phase != PhaseFrozen {
		return 0
	}
	if d := w.freezeUntil.Sub(w.now()); d > 0 {
		return d
	}
	return 0
}
