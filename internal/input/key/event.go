package key

import "unicode"

// Modifier is a bit set of modifier keys held during an event.
type Modifier uint8

const (
	// ModNone means no modifiers.
	ModNone Modifier = 0

	// ModCtrl is the Control key.
	ModCtrl Modifier = 1 << iota

	// ModAlt is the Alt key.
	ModAlt

	// ModShift is the Shift key.
	ModShift
)

// HasCtrl returns true if Control is held.
func (m Modifier) HasCtrl() bool { return m&ModCtrl != 0 }

// HasAlt returns true if Alt is held.
func (m Modifier) HasAlt() bool { return m&ModAlt != 0 }

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates an event for a character key.
func NewRuneEvent(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// NewSpecialEvent creates an event for a special key.
func NewSpecialEvent(k Key) Event {
	return Event{Key: k}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is an unmodified printable character.
// Shift alone does not count as a modifier, since it changes the
// character itself.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune) && e.Modifiers&(ModCtrl|ModAlt) == 0
}

// IsCancel returns true for keys that abort a jump session.
func (e Event) IsCancel() bool {
	return e.Key == KeyEscape || (e.Modifiers.HasCtrl() && e.Rune == 'c')
}

// String returns a canonical representation, such as "a", "C-w", or "Esc".
func (e Event) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		name = string(e.Rune)
		if e.Rune == ' ' {
			name = "Space"
		}
	}
	switch {
	case e.Modifiers.HasCtrl() && e.Modifiers.HasAlt():
		return "C-A-" + name
	case e.Modifiers.HasCtrl():
		return "C-" + name
	case e.Modifiers.HasAlt():
		return "A-" + name
	default:
		return name
	}
}
