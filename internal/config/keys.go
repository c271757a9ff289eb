package config

import "strings"

// Key names a physical key independent of the frontend.
type Key int

const (
	KeySpace Key = iota
	KeyUp
	KeyEnter
	KeyW
	KeyK
	KeyX
)

var keyNames = map[string]Key{
	"space": KeySpace,
	"up":    KeyUp,
	"enter": KeyEnter,
	"w":     KeyW,
	"k":     KeyK,
	"x":     KeyX,
}

// LookupKey resolves a key name as written in the config, case-insensitively.
func LookupKey(name string) (Key, bool) {
	k, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// JumpKeys resolves Input.JumpKeys, skipping unknown names.
func (c *Config) JumpKeys() []Key {
	keys := make([]Key, 0, len(c.Input.JumpKeys))
	for _, name := range c.Input.JumpKeys {
		if k, ok := LookupKey(name); ok {
			keys = append(keys, k)
		}
	}
	return keys
}
