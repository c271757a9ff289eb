package ebitenui

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/dawkrish/flappy/internal/assets"
	"github.com/dawkrish/flappy/internal/config"
	"github.com/dawkrish/flappy/internal/game"
)

const sampleRate = 48000

// Sound plays the cues through an ebiten audio context, one player per cue.
type Sound struct {
	audioContext *audio.Context
	players      map[game.Cue]*audio.Player
}

// NewSound decodes every cue up front. With Audio.Mute set it returns a
// Sound that plays nothing.
func NewSound(sounds map[game.Cue]assets.Sound, cfg *config.Config) (*Sound, error) {
	s := &Sound{players: make(map[game.Cue]*audio.Player, len(sounds))}
	if cfg.Audio.Mute {
		return s, nil
	}

	s.audioContext = audio.NewContext(sampleRate)
	for cue, snd := range sounds {
		stream, err := decode(snd)
		if err != nil {
			return nil, fmt.Errorf("%s cue: %w", cue, err)
		}
		p, err := s.audioContext.NewPlayer(stream)
		if err != nil {
			return nil, fmt.Errorf("%s cue: %w", cue, err)
		}
		p.SetVolume(cfg.Audio.Volume)
		s.players[cue] = p
	}
	return s, nil
}

// Play restarts the cue from the beginning.
func (s *Sound) Play(c game.Cue) {
	p, ok := s.players[c]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Printf("rewind %s: %v", c, err)
		return
	}
	p.Play()
}

// decode picks the decoder by file extension.
func decode(snd assets.Sound) (io.Reader, error) {
	r := bytes.NewReader(snd.Data)
	switch snd.Ext() {
	case ".wav":
		return wav.DecodeWithSampleRate(sampleRate, r)
	case ".ogg":
		return vorbis.DecodeWithSampleRate(sampleRate, r)
	case ".mp3":
		return mp3.DecodeWithSampleRate(sampleRate, r)
	}
	return nil, fmt.Errorf("unsupported sound format %q", snd.Name)
}
