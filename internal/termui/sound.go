package termui

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"

	"github.com/dawkrish/flappy/internal/assets"
	"github.com/dawkrish/flappy/internal/config"
	"github.com/dawkrish/flappy/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Sound plays cues through the beep speaker. Cues are decoded into memory
// up front; nothing plays until Initialize succeeds.
type Sound struct {
	mu          sync.Mutex
	buffers     map[game.Cue]*beep.Buffer
	volume      float64
	mute        bool
	initialized bool
}

func NewSound(sounds map[game.Cue]assets.Sound, cfg *config.Config) (*Sound, error) {
	s := &Sound{
		buffers: make(map[game.Cue]*beep.Buffer, len(sounds)),
		volume:  cfg.Audio.Volume,
		mute:    cfg.Audio.Mute,
	}
	if s.mute {
		return s, nil
	}
	for cue, snd := range sounds {
		buf, err := decode(snd)
		if err != nil {
			return nil, fmt.Errorf("%s cue: %w", cue, err)
		}
		s.buffers[cue] = buf
	}
	return s, nil
}

// Initialize opens the audio device.
func (s *Sound) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized || s.mute {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	s.initialized = true
	return nil
}

func (s *Sound) Play(c game.Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	buf, ok := s.buffers[c]
	if !ok {
		return
	}
	speaker.Play(newVolume(buf.Streamer(0, buf.Len()), s.volume))
}

// newVolume scales linear volume v in [0, 1] onto the base-2 scale of
// effects.Volume.
func newVolume(st beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: st, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: st, Base: 2, Volume: math.Log2(v), Silent: false}
}

// decode reads a whole sound file into a buffer at sampleRate.
func decode(snd assets.Sound) (*beep.Buffer, error) {
	rc := io.NopCloser(bytes.NewReader(snd.Data))

	var (
		st     beep.StreamSeekCloser
		format beep.Format
		err    error
	)
	switch snd.Ext() {
	case ".wav":
		st, format, err = wav.Decode(rc)
	case ".ogg":
		st, format, err = vorbis.Decode(rc)
	case ".mp3":
		st, format, err = mp3.Decode(rc)
	default:
		return nil, fmt.Errorf("unsupported sound format %q", snd.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", snd.Name, err)
	}
	defer st.Close()

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(beep.Resample(4, format.SampleRate, sampleRate, st))
	return buf, nil
}
