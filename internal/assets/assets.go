// Package assets decodes the sprite and sound files the game ships with, or
// replacements for them from disk, and brings them to the configured sizes.
package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/dawkrish/flappy/internal/config"
	"github.com/dawkrish/flappy/internal/game"
)

// File names inside the asset tree.
const (
	BirdUpFile   = "sprites/redbird-upflap.png"
	BirdMidFile  = "sprites/redbird-midflap.png"
	BirdDownFile = "sprites/redbird-downflap.png"
	PipeFile     = "sprites/pipe-green.png"
	GroundFile   = "sprites/base.png"
	FlapFile     = "audio/wing.wav"
	HitFile      = "audio/hit.wav"
)

// Source picks the asset tree: the embedded one unless cfg names a directory.
func Source(embedded fs.FS, cfg *config.Config) fs.FS {
	if cfg.Assets.Dir != "" {
		return os.DirFS(cfg.Assets.Dir)
	}
	return embedded
}

// LoadSprites decodes every sprite. The pipe and ground textures are scaled
// to the configured sizes and the inverted pipe is the pipe flipped upside
// down.
func LoadSprites(fsys fs.FS, cfg *config.Config) (map[game.SpriteID]image.Image, error) {
	sprites := make(map[game.SpriteID]image.Image, 6)

	birds := map[game.SpriteID]string{
		game.SpriteBirdUp:   BirdUpFile,
		game.SpriteBirdMid:  BirdMidFile,
		game.SpriteBirdDown: BirdDownFile,
	}
	for id, name := range birds {
		img, err := decode(fsys, name)
		if err != nil {
			return nil, err
		}
		sprites[id] = img
	}

	pipe, err := decode(fsys, PipeFile)
	if err != nil {
		return nil, err
	}
	pipe = Scale(pipe, cfg.Pipe.Width, cfg.Pipe.Height)
	sprites[game.SpritePipe] = pipe
	sprites[game.SpritePipeInverted] = FlipVertical(pipe)

	ground, err := decode(fsys, GroundFile)
	if err != nil {
		return nil, err
	}
	sprites[game.SpriteGround] = Scale(ground, cfg.Ground.Width, cfg.Ground.Height)

	return sprites, nil
}

func decode(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open sprite: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sprite %s: %w", name, err)
	}
	return img, nil
}

// Scale resizes img to w x h with nearest-neighbor sampling, which keeps
// pixel-art edges and the alpha mask crisp. Images already at that size are
// returned as they are.
func Scale(img image.Image, w, h int) image.Image {
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// FlipVertical returns a copy of img mirrored top to bottom, with its bounds
// moved to the origin.
func FlipVertical(img image.Image) image.Image {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	s2d := f64.Aff3{
		1, 0, -float64(b.Min.X),
		0, -1, float64(b.Min.Y + b.Dy()),
	}
	xdraw.NearestNeighbor.Transform(dst, s2d, img, b, xdraw.Src, nil)
	return dst
}

// Sound is an encoded sound file. Name keeps the extension, which selects
// the decoder.
type Sound struct {
	Name string
	Data []byte
}

func (s Sound) Ext() string { return path.Ext(s.Name) }

// LoadSounds reads both cues. A path set in cfg.Audio is read from disk in
// place of the file in fsys.
func LoadSounds(fsys fs.FS, cfg *config.Config) (map[game.Cue]Sound, error) {
	files := []struct {
		cue      game.Cue
		name     string
		override string
	}{
		{game.CueFlap, FlapFile, cfg.Audio.Flap},
		{game.CueHit, HitFile, cfg.Audio.Hit},
	}

	sounds := make(map[game.Cue]Sound, len(files))
	for _, f := range files {
		var (
			s   Sound
			err error
		)
		if f.override != "" {
			s.Name = filepath.Base(f.override)
			s.Data, err = os.ReadFile(f.override)
		} else {
			s.Name = f.name
			s.Data, err = fs.ReadFile(fsys, f.name)
		}
		if err != nil {
			return nil, fmt.Errorf("load %s sound: %w", f.cue, err)
		}
		sounds[f.cue] = s
	}
	return sounds, nil
}
