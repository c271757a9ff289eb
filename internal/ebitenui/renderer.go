package ebitenui

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/dawkrish/flappy/internal/canvas"
	"github.com/dawkrish/flappy/internal/game"
)

const fontSize = 24

// screenRenderer implements game.Renderer on top of the frame's screen
// image. Draw points it at the new screen every frame.
type screenRenderer struct {
	screen   *ebiten.Image
	textures map[game.SpriteID]*ebiten.Image
	face     *text.GoTextFace

	w, h                int
	gradTop, gradBottom color.RGBA
	gradient            *ebiten.Image
}

func newScreenRenderer(w, h int, sprites map[game.SpriteID]image.Image) (*screenRenderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	textures := make(map[game.SpriteID]*ebiten.Image, len(sprites))
	for id, img := range sprites {
		textures[id] = ebiten.NewImageFromImage(img)
	}
	return &screenRenderer{
		textures: textures,
		face:     &text.GoTextFace{Source: src, Size: fontSize},
		w:        w,
		h:        h,
	}, nil
}

func (r *screenRenderer) Gradient(top, bottom color.RGBA) {
	if r.gradient == nil || top != r.gradTop || bottom != r.gradBottom {
		img := image.NewRGBA(image.Rect(0, 0, r.w, r.h))
		canvas.FillGradient(img, top, bottom)
		r.gradient = ebiten.NewImageFromImage(img)
		r.gradTop, r.gradBottom = top, bottom
	}
	r.screen.DrawImage(r.gradient, nil)
}

func (r *screenRenderer) Blit(s game.SpriteID, x, y int) {
	img, ok := r.textures[s]
	if !ok {
		return
	}
	var opts ebiten.DrawImageOptions
	SetPosition(&opts, x, y)
	r.screen.DrawImage(img, &opts)
}

func (r *screenRenderer) Text(s string, x, y int) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(color.White)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(r.screen, s, r.face, op)
}

// Present is a no-op: ebiten flips the screen after Draw returns.
func (r *screenRenderer) Present() {}
