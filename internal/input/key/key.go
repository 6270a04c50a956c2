// Package key models keyboard input for jump sessions and the line editor.
//
// Only the keys the engine and the demo editor care about are represented:
// printable characters, the editing keys of a single-line editor, and the
// cancel keys that abort a jump session.
package key

import "fmt"

// Key identifies a keyboard key. Character keys use KeyRune with the
// character stored in Event.Rune.
type Key uint8

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// KeyEscape cancels a jump session or clears editor state.
	KeyEscape

	// KeyEnter confirms input.
	KeyEnter

	// KeyBackspace deletes the rune before the cursor.
	KeyBackspace

	// KeyDelete deletes the rune under the cursor.
	KeyDelete

	// KeyLeft moves the cursor left.
	KeyLeft

	// KeyRight moves the cursor right.
	KeyRight

	// KeyHome moves the cursor to the start of the line.
	KeyHome

	// KeyEnd moves the cursor to the end of the line.
	KeyEnd

	// KeyRune is a character key; the character is in Event.Rune.
	KeyRune
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyEscape:
		return "Esc"
	case KeyEnter:
		return "Enter"
	case KeyBackspace:
		return "BS"
	case KeyDelete:
		return "Del"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyRune:
		return "Rune"
	default:
		return fmt.Sprintf("Key(%d)", k)
	}
}

// IsSpecial returns true if this is a special (non-character) key.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}
