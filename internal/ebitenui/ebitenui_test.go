package ebitenui

import (
	"os"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/dawkrish/flappy/internal/assets"
	"github.com/dawkrish/flappy/internal/config"
)

func TestEbitenKeys(t *testing.T) {
	cfg := config.Default()
	cfg.Input.JumpKeys = []string{"space", "Up", "w"}
	got := EbitenKeys(cfg.JumpKeys())
	want := []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestEveryConfigKeyMaps(t *testing.T) {
	for _, name := range []string{"space", "up", "enter", "w", "k", "x"} {
		k, ok := config.LookupKey(name)
		if !ok {
			t.Fatalf("LookupKey(%q) failed", name)
		}
		if len(EbitenKeys([]config.Key{k})) != 1 {
			t.Errorf("%q has no ebiten key", name)
		}
	}
}

func TestSetPosition(t *testing.T) {
	var opts ebiten.DrawImageOptions
	SetPosition(&opts, 12, -40)
	if x, y := opts.GeoM.Element(0, 2), opts.GeoM.Element(1, 2); x != 12 || y != -40 {
		t.Errorf("position = (%v, %v)", x, y)
	}
	SetPosition(&opts, 3, 4)
	if x, y := opts.GeoM.Element(0, 2), opts.GeoM.Element(1, 2); x != 3 || y != 4 {
		t.Errorf("position not replaced: (%v, %v)", x, y)
	}
	if opts.GeoM.Element(0, 0) != 1 || opts.GeoM.Element(1, 1) != 1 {
		t.Error("SetPosition changed the scale")
	}
}

func TestDecode(t *testing.T) {
	data, err := os.ReadFile("../../assets/audio/wing.wav")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := decode(assets.Sound{Name: "wing.wav", Data: data}); err != nil {
		t.Errorf("decode wav: %v", err)
	}
	if _, err := decode(assets.Sound{Name: "wing.flac", Data: data}); err == nil {
		t.Error("expected error for an unknown extension")
	}
	if _, err := decode(assets.Sound{Name: "bad.wav", Data: []byte("nope")}); err == nil {
		t.Error("expected error for a corrupt wav")
	}
}

func TestMutedSoundIsSilent(t *testing.T) {
	cfg := config.Default()
	cfg.Audio.Mute = true
	s, err := NewSound(nil, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if s.audioContext != nil || len(s.players) != 0 {
		t.Error("muted sound created players")
	}
}
