package game

import (
	"fmt"
	"image"
	"image/color"

	"github.com/dawkrish/flappy/internal/mask"
)

// SpriteID names one drawable texture. Frontends map IDs to their own images.
type SpriteID int

const (
	SpriteBirdUp SpriteID = iota
	SpriteBirdMid
	SpriteBirdDown
	SpritePipe
	SpritePipeInverted
	SpriteGround

	spriteCount
)

// BirdFrames lists the flap animation in playback order.
var BirdFrames = [3]SpriteID{SpriteBirdUp, SpriteBirdMid, SpriteBirdDown}

var spriteNames = [...]string{
	SpriteBirdUp:       "bird-up",
	SpriteBirdMid:      "bird-mid",
	SpriteBirdDown:     "bird-down",
	SpritePipe:         "pipe",
	SpritePipeInverted: "pipe-inverted",
	SpriteGround:       "ground",
}

func (s SpriteID) String() string {
	if s < 0 || s >= spriteCount {
		return fmt.Sprintf("SpriteID(%d)", int(s))
	}
	return spriteNames[s]
}

// AllSprites returns every sprite ID.
func AllSprites() []SpriteID {
	ids := make([]SpriteID, 0, spriteCount)
	for id := SpriteID(0); id < spriteCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Cue is a one-shot sound.
type Cue int

const (
	CueFlap Cue = iota
	CueHit
)

func (c Cue) String() string {
	switch c {
	case CueFlap:
		return "flap"
	case CueHit:
		return "hit"
	}
	return fmt.Sprintf("Cue(%d)", int(c))
}

// Command is a decoded input event.
type Command int

const (
	CmdJump Command = iota
	CmdQuit
)

// Renderer draws one frame. Coordinates are screen pixels.
type Renderer interface {
	Gradient(top, bottom color.RGBA)
	Blit(s SpriteID, x, y int)
	// Text draws s horizontally centered on x.
	Text(s string, x, y int)
	Present()
}

// Audio plays one-shot cues without blocking.
type Audio interface {
	Play(c Cue)
}

type nopAudio struct{}

func (nopAudio) Play(Cue) {}

// Masks holds the opacity mask of every sprite.
type Masks map[SpriteID]*mask.Mask

// MasksFrom derives masks from decoded sprite images.
func MasksFrom(images map[SpriteID]image.Image) (Masks, error) {
	m := make(Masks, len(images))
	for id, img := range images {
		m[id] = mask.FromImage(img)
	}
	return m, m.check()
}

func (m Masks) check() error {
	for _, id := range AllSprites() {
		if m[id] == nil {
			return fmt.Errorf("missing sprite %s", id)
		}
	}
	return nil
}
