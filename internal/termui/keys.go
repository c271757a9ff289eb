package termui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dawkrish/flappy/internal/config"
	"github.com/dawkrish/flappy/internal/game"
)

// keyMatch reports whether a tcell key event is the given config key.
func keyMatch(k config.Key, ev *tcell.EventKey) bool {
	switch k {
	case config.KeyUp:
		return ev.Key() == tcell.KeyUp
	case config.KeyEnter:
		return ev.Key() == tcell.KeyEnter
	}
	if ev.Key() != tcell.KeyRune {
		return false
	}
	r := unicode.ToLower(ev.Rune())
	switch k {
	case config.KeySpace:
		return r == ' '
	case config.KeyW:
		return r == 'w'
	case config.KeyK:
		return r == 'k'
	case config.KeyX:
		return r == 'x'
	}
	return false
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// command decodes one key event; ok is false for keys the game ignores.
func command(keys []config.Key, ev *tcell.EventKey) (cmd game.Command, ok bool) {
	for _, k := range keys {
		if keyMatch(k, ev) {
			return game.CmdJump, true
		}
	}
	if isQuit(ev) {
		return game.CmdQuit, true
	}
	return 0, false
}
