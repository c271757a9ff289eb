// Package ebitenui runs a game.World in a desktop window.
package ebitenui

import (
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/dawkrish/flappy/internal/config"
	"github.com/dawkrish/flappy/internal/game"
)

// this struct implements ebiten.Game interface
type Game struct {
	world    *game.World
	renderer *screenRenderer
	cfg      *config.Config

	jumpKeys []ebiten.Key
	debug    bool
}

func NewGame(world *game.World, cfg *config.Config, sprites map[game.SpriteID]image.Image, debug bool) (*Game, error) {
	r, err := newScreenRenderer(cfg.Screen.Width, cfg.Screen.Height, sprites)
	if err != nil {
		return nil, err
	}
	return &Game{
		world:    world,
		renderer: r,
		cfg:      cfg,
		jumpKeys: EbitenKeys(cfg.JumpKeys()),
		debug:    debug,
	}, nil
}

// Update advances the world by one tick. ebiten calls it TPS times a second.
func (g *Game) Update() error {
	if g.world.Done() {
		return ebiten.Termination
	}
	g.world.Tick(g.commands())
	return nil
}

// commands collects the presses of this tick, jump before quit.
func (g *Game) commands() []game.Command {
	var cmds []game.Command
	for _, k := range g.jumpKeys {
		if inpututil.IsKeyJustPressed(k) {
			cmds = append(cmds, game.CmdJump)
		}
	}
	if g.cfg.Input.Mouse && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cmds = append(cmds, game.CmdJump)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		cmds = append(cmds, game.CmdQuit)
	}
	return cmds
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.screen = screen
	g.world.Render(g.renderer)
	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.1f\nphase: %s\ntick: %d",
			ebiten.ActualTPS(), g.world.Phase(), g.world.Ticks()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}

// Run opens the window and blocks until the run ends or the window closes.
func Run(g *Game) error {
	ebiten.SetWindowSize(g.cfg.Screen.Width, g.cfg.Screen.Height)
	ebiten.SetWindowTitle(g.cfg.Screen.Title)
	ebiten.SetTPS(g.cfg.Screen.TPS)
	log.Printf("ebiten frontend: %dx%d at %d TPS", g.cfg.Screen.Width, g.cfg.Screen.Height, g.cfg.Screen.TPS)
	return ebiten.RunGame(g)
}
