package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Physics.Gravity != 2.5 || cfg.Physics.BumpSpeed != 20 || cfg.Physics.GameSpeed != 15 {
		t.Errorf("unexpected physics defaults: %+v", cfg.Physics)
	}
	if cfg.Pipe.Gap != 150 {
		t.Errorf("pipe gap = %d, want 150", cfg.Pipe.Gap)
	}
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.toml")
	data := `
seed = 42

[physics]
gravity = 3.0
freeze = "250ms"

[background]
top = [1, 2, 3]

[input]
jump_keys = ["Enter", "w"]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 42 {
		t.Errorf("seed = %d, want 42", cfg.Seed)
	}
	if cfg.Physics.Gravity != 3.0 {
		t.Errorf("gravity = %v, want 3", cfg.Physics.Gravity)
	}
	if cfg.Physics.Freeze != 250*time.Millisecond {
		t.Errorf("freeze = %v, want 250ms", cfg.Physics.Freeze)
	}
	if cfg.Physics.BumpSpeed != 20 {
		t.Errorf("bump speed lost its default: %v", cfg.Physics.BumpSpeed)
	}
	if cfg.Background.Top != (RGB{1, 2, 3}) {
		t.Errorf("top = %v", cfg.Background.Top)
	}
	keys := cfg.JumpKeys()
	if len(keys) != 2 || keys[0] != KeyEnter || keys[1] != KeyW {
		t.Errorf("jump keys = %v", keys)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero tps", "[screen]\ntps = 0\n"},
		{"empty anchor range", "[pipe]\nanchor_min = 300\nanchor_max = 300\n"},
		{"anchor past screen", "[pipe]\nanchor_max = 500\n"},
		{"short ground", "[ground]\nwidth = 410\n"},
		{"loud", "[audio]\nvolume = 2.0\n"},
		{"unknown key", "[input]\njump_keys = [\"f13\"]\n"},
		{"negative freeze", "[physics]\nfreeze = \"-1s\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.toml")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Load() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("[physics\ngravity = "), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.toml")
	cfg := Default()
	cfg.Seed = 7
	cfg.Pipe.Gap = 120
	cfg.Physics.Freeze = 2 * time.Second
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Seed != 7 || got.Pipe.Gap != 120 || got.Physics.Freeze != 2*time.Second {
		t.Errorf("saved values not restored: seed=%d gap=%d freeze=%v", got.Seed, got.Pipe.Gap, got.Physics.Freeze)
	}
}

func TestBirdStart(t *testing.T) {
	cfg := Default()
	x, y := cfg.BirdStart()
	if x != 400.0/6 || y != 300 {
		t.Errorf("BirdStart() = (%v, %v), want (%v, 300)", x, y, 400.0/6)
	}

	cfg.Bird.X, cfg.Bird.Y = 10, 20
	if x, y := cfg.BirdStart(); x != 10 || y != 20 {
		t.Errorf("explicit BirdStart() = (%v, %v)", x, y)
	}
}

func TestLookupKey(t *testing.T) {
	tests := []struct {
		name string
		want Key
		ok   bool
	}{
		{"space", KeySpace, true},
		{" UP ", KeyUp, true},
		{"x", KeyX, true},
		{"f1", 0, false},
	}
	for _, tt := range tests {
		got, ok := LookupKey(tt.name)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("LookupKey(%q) = %v, %v", tt.name, got, ok)
		}
	}
}
