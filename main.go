package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dawkrish/flappy/internal/assets"
	"github.com/dawkrish/flappy/internal/config"
	"github.com/dawkrish/flappy/internal/ebitenui"
	"github.com/dawkrish/flappy/internal/game"
	"github.com/dawkrish/flappy/internal/termui"
)

const (
	frontendEbiten   = "ebiten"
	frontendTerminal = "terminal"
)

var (
	configFlag      = flag.String("config", "", "path to a TOML config file")
	frontendFlag    = flag.String("frontend", frontendEbiten, "frontend: ebiten, terminal")
	seedFlag        = flag.Int64("seed", 0, "pipe seed; 0 keeps the config seed, or picks one from the clock")
	debugFlag       = flag.Bool("debug", false, "debug overlay (ebiten) or log file (terminal)")
	writeConfigFlag = flag.String("write-config", "", "write the effective config to this file and exit")
)

// resources are the decoded assets shared by both frontends.
type resources struct {
	sprites map[game.SpriteID]image.Image
	sounds  map[game.Cue]assets.Sound
	masks   game.Masks
}

func main() {
	flag.Parse()

	if *frontendFlag != frontendEbiten && *frontendFlag != frontendTerminal {
		fatal(fmt.Errorf("unknown frontend %q", *frontendFlag))
	}
	closer, err := setupLogging(*frontendFlag, *debugFlag, "logs")
	if err != nil {
		fatal(err)
	}
	defer closer.Close()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fatal(err)
	}
	if *writeConfigFlag != "" {
		if err := config.Save(cfg, *writeConfigFlag); err != nil {
			fatal(err)
		}
		return
	}
	cfg.Seed = resolveSeed(*seedFlag, cfg.Seed, time.Now)
	log.Printf("config %q, seed %d", *configFlag, cfg.Seed)

	res, err := loadResources(cfg)
	if err != nil {
		fatal(err)
	}

	var score int
	switch *frontendFlag {
	case frontendTerminal:
		score, err = runTerminal(cfg, res)
	default:
		score, err = runEbiten(cfg, res, *debugFlag)
	}
	if err != nil {
		fatal(err)
	}
	log.Printf("final score %d", score)
	fmt.Printf("Score: %d\n", score)
}

// fatal reports err on stderr and exits. The terminal frontend may have sent
// the logger to a file or discarded it, so stderr is written directly.
func fatal(err error) {
	if log.Writer() != os.Stderr {
		log.Print(err)
	}
	fmt.Fprintf(os.Stderr, "flappy: %v\n", err)
	os.Exit(1)
}

// resolveSeed prefers the flag, then the config, then the clock.
func resolveSeed(flagSeed, cfgSeed int64, now func() time.Time) int64 {
	switch {
	case flagSeed != 0:
		return flagSeed
	case cfgSeed != 0:
		return cfgSeed
	}
	return now().UnixNano()
}

func loadResources(cfg *config.Config) (*resources, error) {
	fsys := assets.Source(embeddedAssets(), cfg)
	sprites, err := assets.LoadSprites(fsys, cfg)
	if err != nil {
		return nil, err
	}
	sounds, err := assets.LoadSounds(fsys, cfg)
	if err != nil {
		return nil, err
	}
	masks, err := game.MasksFrom(sprites)
	if err != nil {
		return nil, err
	}
	return &resources{sprites: sprites, sounds: sounds, masks: masks}, nil
}

func runEbiten(cfg *config.Config, res *resources, debug bool) (int, error) {
	snd, err := ebitenui.NewSound(res.sounds, cfg)
	if err != nil {
		return 0, err
	}
	world, err := game.NewWorld(cfg, res.masks, game.WithAudio(snd))
	if err != nil {
		return 0, err
	}
	g, err := ebitenui.NewGame(world, cfg, res.sprites, debug)
	if err != nil {
		return 0, err
	}
	if err := ebitenui.Run(g); err != nil {
		return 0, err
	}
	return world.Score(), nil
}

func runTerminal(cfg *config.Config, res *resources) (int, error) {
	snd, err := termui.NewSound(res.sounds, cfg)
	if err != nil {
		return 0, err
	}
	if err := snd.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return 0, err
	}
	if err := screen.Init(); err != nil {
		return 0, err
	}
	defer screen.Fini()
	screen.HideCursor()

	world, err := game.NewWorld(cfg, res.masks, game.WithAudio(snd))
	if err != nil {
		return 0, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err = termui.New(screen, world, cfg, res.sprites).Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	return world.Score(), err
}
