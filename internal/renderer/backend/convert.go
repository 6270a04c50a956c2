package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/jumpline/internal/input/key"
)

// convertKey translates a tcell key event into the engine's key model.
func convertKey(ev *tcell.EventKey) key.Event {
	mods := convertMods(ev.Modifiers())

	switch ev.Key() {
	case tcell.KeyEscape:
		return key.Event{Key: key.KeyEscape, Modifiers: mods}
	case tcell.KeyEnter:
		return key.Event{Key: key.KeyEnter, Modifiers: mods}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.Event{Key: key.KeyBackspace, Modifiers: mods}
	case tcell.KeyDelete:
		return key.Event{Key: key.KeyDelete, Modifiers: mods}
	case tcell.KeyLeft:
		return key.Event{Key: key.KeyLeft, Modifiers: mods}
	case tcell.KeyRight:
		return key.Event{Key: key.KeyRight, Modifiers: mods}
	case tcell.KeyHome:
		return key.Event{Key: key.KeyHome, Modifiers: mods}
	case tcell.KeyEnd:
		return key.Event{Key: key.KeyEnd, Modifiers: mods}
	case tcell.KeyRune:
		return key.Event{Key: key.KeyRune, Rune: ev.Rune(), Modifiers: mods}
	}

	// tcell reports Ctrl+letter as the ASCII control code.
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.Event{
			Key:       key.KeyRune,
			Rune:      rune('a' + k - tcell.KeyCtrlA),
			Modifiers: mods | key.ModCtrl,
		}
	}

	return key.Event{Key: key.KeyNone, Modifiers: mods}
}

// convertMods translates tcell modifier flags.
func convertMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModCtrl != 0 {
		mods |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= key.ModAlt
	}
	if m&tcell.ModShift != 0 {
		mods |= key.ModShift
	}
	return mods
}
