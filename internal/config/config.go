// Package config holds every tunable of the game and loads overrides from a
// TOML file on top of the built-in defaults.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the full game configuration.
type Config struct {
	Seed       int64            `toml:"seed"`
	Screen     ScreenConfig     `toml:"screen"`
	Physics    PhysicsConfig    `toml:"physics"`
	Bird       BirdConfig       `toml:"bird"`
	Ground     GroundConfig     `toml:"ground"`
	Pipe       PipeConfig       `toml:"pipe"`
	Background BackgroundConfig `toml:"background"`
	Audio      AudioConfig      `toml:"audio"`
	Input      InputConfig      `toml:"input"`
	Assets     AssetsConfig     `toml:"assets"`
}

type ScreenConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	TPS    int    `toml:"tps"` // ticks per second; also the physics step
	Title  string `toml:"title"`
}

type PhysicsConfig struct {
	Gravity   float64       `toml:"gravity"`    // added to velocity every tick
	BumpSpeed float64       `toml:"bump_speed"` // velocity becomes -BumpSpeed on jump
	GameSpeed float64       `toml:"game_speed"` // horizontal scroll per tick
	Freeze    time.Duration `toml:"freeze"`     // pause between the hit and the end of the run
}

type BirdConfig struct {
	// X and Y are the start position; zero means width/6 and height/2.
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

type GroundConfig struct {
	Width   int `toml:"width"`
	Height  int `toml:"height"`
	Overlap int `toml:"overlap"` // recycled tiles are placed this much into the previous one
}

type PipeConfig struct {
	Width     int     `toml:"width"`
	Height    int     `toml:"height"`
	Gap       int     `toml:"gap"`
	AnchorMin int     `toml:"anchor_min"` // inclusive
	AnchorMax int     `toml:"anchor_max"` // exclusive
	Spacing   float64 `toml:"spacing"`
	FirstX    float64 `toml:"first_x"`
}

type BackgroundConfig struct {
	Top    RGB `toml:"top"`
	Bottom RGB `toml:"bottom"`
}

type AudioConfig struct {
	Flap   string  `toml:"flap"` // empty uses the embedded cue
	Hit    string  `toml:"hit"`
	Volume float64 `toml:"volume"` // 0..1
	Mute   bool    `toml:"mute"`
}

type InputConfig struct {
	JumpKeys []string `toml:"jump_keys"`
	Mouse    bool     `toml:"mouse"`
}

type AssetsConfig struct {
	// Dir replaces the embedded sprites with files of the same names.
	Dir string `toml:"dir"`
}

// RGB is an opaque color written as [r, g, b] in TOML.
type RGB [3]uint8

func (c RGB) Color() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff}
}

// Default returns the configuration of the classic game.
func Default() *Config {
	return &Config{
		Screen: ScreenConfig{
			Width:  400,
			Height: 600,
			TPS:    15,
			Title:  "Flappy Bird",
		},
		Physics: PhysicsConfig{
			Gravity:   2.5,
			BumpSpeed: 20,
			GameSpeed: 15,
			Freeze:    time.Second,
		},
		Ground: GroundConfig{
			Width:   800,
			Height:  100,
			Overlap: 20,
		},
		Pipe: PipeConfig{
			Width:     80,
			Height:    500,
			Gap:       150,
			AnchorMin: 100,
			AnchorMax: 300,
			Spacing:   400,
			FirstX:    800,
		},
		Background: BackgroundConfig{
			Top:    RGB{120, 200, 255},
			Bottom: RGB{0, 80, 120},
		},
		Audio: AudioConfig{
			Volume: 1,
		},
		Input: InputConfig{
			JumpKeys: []string{"space", "up"},
			Mouse:    true,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	for _, k := range md.Undecoded() {
		log.Printf("config: ignoring unknown key %q", k.String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as TOML, creating or truncating path.
func Save(cfg *Config, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return f.Close()
}

// BirdStart resolves the configured start position.
func (c *Config) BirdStart() (x, y float64) {
	x, y = c.Bird.X, c.Bird.Y
	if x == 0 {
		x = float64(c.Screen.Width) / 6
	}
	if y == 0 {
		y = float64(c.Screen.Height) / 2
	}
	return x, y
}

// Validate checks the values the simulation depends on.
func (c *Config) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	case c.Screen.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.Screen.TPS)
	case c.Physics.GameSpeed <= 0:
		return fmt.Errorf("%w: game_speed %v", ErrInvalid, c.Physics.GameSpeed)
	case c.Physics.Freeze < 0:
		return fmt.Errorf("%w: freeze %v", ErrInvalid, c.Physics.Freeze)
	case c.Ground.Width <= 0 || c.Ground.Height <= 0:
		return fmt.Errorf("%w: ground size %dx%d", ErrInvalid, c.Ground.Width, c.Ground.Height)
	case c.Ground.Width-c.Ground.Overlap < c.Screen.Width:
		// the second tile must still cover the screen when the first one leaves
		return fmt.Errorf("%w: ground width %d minus overlap %d is narrower than the screen",
			ErrInvalid, c.Ground.Width, c.Ground.Overlap)
	case c.Pipe.Width <= 0 || c.Pipe.Height <= 0 || c.Pipe.Gap <= 0:
		return fmt.Errorf("%w: pipe %dx%d gap %d", ErrInvalid, c.Pipe.Width, c.Pipe.Height, c.Pipe.Gap)
	case c.Pipe.AnchorMin >= c.Pipe.AnchorMax:
		return fmt.Errorf("%w: anchor range [%d,%d) is empty", ErrInvalid, c.Pipe.AnchorMin, c.Pipe.AnchorMax)
	case c.Pipe.AnchorMin < 0 || c.Pipe.AnchorMax+c.Pipe.Gap > c.Screen.Height:
		return fmt.Errorf("%w: anchor range [%d,%d) plus gap %d does not fit height %d",
			ErrInvalid, c.Pipe.AnchorMin, c.Pipe.AnchorMax, c.Pipe.Gap, c.Screen.Height)
	case c.Pipe.Spacing <= 0:
		return fmt.Errorf("%w: pipe spacing %v", ErrInvalid, c.Pipe.Spacing)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: volume %v outside [0,1]", ErrInvalid, c.Audio.Volume)
	case len(c.Input.JumpKeys) == 0:
		return fmt.Errorf("%w: no jump keys", ErrInvalid)
	}
	for _, k := range c.Input.JumpKeys {
		if _, ok := LookupKey(k); !ok {
			return fmt.Errorf("%w: unknown jump key %q", ErrInvalid, k)
		}
	}
	return nil
}
