// Package termui runs a game.World inside a terminal. Frames are rendered in
// software and drawn with half-block characters, two pixels per cell.
package termui

import (
	"context"
	"image"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dawkrish/flappy/internal/canvas"
	"github.com/dawkrish/flappy/internal/config"
	"github.com/dawkrish/flappy/internal/game"
)

// Runner owns the tick loop for the terminal frontend.
type Runner struct {
	screen tcell.Screen
	world  *game.World
	canvas *canvas.Canvas
	keys   []config.Key
	period time.Duration

	small *image.RGBA
}

// New wires an initialized screen to the world. The screen stays owned by
// the caller.
func New(screen tcell.Screen, world *game.World, cfg *config.Config, sprites map[game.SpriteID]image.Image) *Runner {
	return &Runner{
		screen: screen,
		world:  world,
		canvas: canvas.New(cfg.Screen.Width, cfg.Screen.Height, sprites),
		keys:   cfg.JumpKeys(),
		period: time.Second / time.Duration(cfg.Screen.TPS),
	}
}

// Run ticks the world until it is done or ctx is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	stop := make(chan struct{})
	defer close(stop)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-stop:
				return
			}
		}
	}()

	log.Printf("terminal frontend: tick every %v", r.period)
	ticker := time.NewTicker(r.period)
	defer ticker.Stop()

	r.draw()
	for !r.world.Done() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		r.Step(drain(events, r.keys))
	}
	return nil
}

// Step runs one tick and draws the result.
func (r *Runner) Step(cmds []game.Command) {
	r.world.Tick(cmds)
	r.draw()
}

func (r *Runner) draw() {
	r.world.Render(r.canvas)
	r.present()
}

// drain decodes every event queued since the last tick without blocking.
func drain(events <-chan tcell.Event, keys []config.Key) []game.Command {
	var cmds []game.Command
	for {
		select {
		case ev := <-events:
			if kev, ok := ev.(*tcell.EventKey); ok {
				if cmd, ok := command(keys, kev); ok {
					cmds = append(cmds, cmd)
				}
			}
		default:
			return cmds
		}
	}
}
