package termui

import (
	"os"
	"testing"

	"github.com/gopxl/beep/effects"

	"github.com/dawkrish/flappy/internal/assets"
	"github.com/dawkrish/flappy/internal/config"
	"github.com/dawkrish/flappy/internal/game"
)

func readSound(t *testing.T, name string) assets.Sound {
	t.Helper()
	data, err := os.ReadFile("../../assets/audio/" + name)
	if err != nil {
		t.Fatal(err)
	}
	return assets.Sound{Name: name, Data: data}
}

func TestDecodeWav(t *testing.T) {
	buf, err := decode(readSound(t, "wing.wav"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	// 0.12s of audio.
	if n := buf.Len(); n < 5000 || n > 5500 {
		t.Errorf("buffer holds %d samples", n)
	}
}

func TestDecodeRejects(t *testing.T) {
	if _, err := decode(assets.Sound{Name: "x.flac", Data: []byte("fLaC")}); err == nil {
		t.Error("unknown extension accepted")
	}
	if _, err := decode(assets.Sound{Name: "x.wav", Data: []byte("junk")}); err == nil {
		t.Error("corrupt wav accepted")
	}
}

func TestNewSound(t *testing.T) {
	sounds := map[game.Cue]assets.Sound{
		game.CueFlap: readSound(t, "wing.wav"),
		game.CueHit:  readSound(t, "hit.wav"),
	}
	cfg := config.Default()
	s, err := NewSound(sounds, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.buffers) != 2 {
		t.Errorf("decoded %d cues", len(s.buffers))
	}
	// Not initialized: Play must be a no-op.
	s.Play(game.CueFlap)

	cfg.Audio.Mute = true
	muted, err := NewSound(sounds, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(muted.buffers) != 0 {
		t.Error("muted sound decoded cues")
	}
	if err := muted.Initialize(); err != nil || muted.initialized {
		t.Errorf("muted Initialize = %v, initialized %v", err, muted.initialized)
	}
}

func TestNewVolume(t *testing.T) {
	tests := []struct {
		in     float64
		silent bool
		vol    float64
	}{
		{0, true, 0},
		{1, false, 0},
		{0.5, false, -1},
	}
	for _, tt := range tests {
		v := newVolume(nil, tt.in).(*effects.Volume)
		if v.Silent != tt.silent || v.Volume != tt.vol {
			t.Errorf("newVolume(%v) = silent %v volume %v", tt.in, v.Silent, v.Volume)
		}
	}
}
