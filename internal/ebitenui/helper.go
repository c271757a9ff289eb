package ebitenui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/dawkrish/flappy/internal/config"
)

// SetPosition moves an untransformed draw to (x, y).
func SetPosition(opts *ebiten.DrawImageOptions, x, y int) {
	opts.GeoM.SetElement(0, 2, float64(x))
	opts.GeoM.SetElement(1, 2, float64(y))
}

var ebitenKeys = map[config.Key]ebiten.Key{
	config.KeySpace: ebiten.KeySpace,
	config.KeyUp:    ebiten.KeyArrowUp,
	config.KeyEnter: ebiten.KeyEnter,
	config.KeyW:     ebiten.KeyW,
	config.KeyK:     ebiten.KeyK,
	config.KeyX:     ebiten.KeyX,
}

// EbitenKeys maps configured jump keys to ebiten keys.
func EbitenKeys(keys []config.Key) []ebiten.Key {
	out := make([]ebiten.Key, 0, len(keys))
	for _, k := range keys {
		if ek, ok := ebitenKeys[k]; ok {
			out = append(out, ek)
		}
	}
	return out
}
