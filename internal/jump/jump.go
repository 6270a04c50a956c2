// Package jump implements the jump-navigation engine.
//
// Given an immutable snapshot of a single line of text and a motion mode, the
// engine labels every candidate position with a short prefix-free key
// sequence, narrows the candidates as the user types, and reports the chosen
// 1-based position. The engine computes overlays but never renders, never
// owns the live buffer or cursor, and keeps no state between invocations.
package jump

import (
	"errors"

	"github.com/dshills/jumpline/internal/input/key"
	"github.com/dshills/jumpline/internal/jump/finder"
	"github.com/dshills/jumpline/internal/jump/overlay"
)

// Errors surfaced by the engine. All of them resolve to a failed (not
// resolved) result at the session boundary; none is fatal.
var (
	// ErrNoCandidates indicates position discovery found nothing to jump to.
	ErrNoCandidates = errors.New("no jump candidates")

	// ErrInputCancelled indicates the user cancelled keystroke acquisition.
	ErrInputCancelled = errors.New("input cancelled")
)

// Mode selects how candidate positions are discovered.
type Mode uint8

const (
	// ModeWordStart jumps to the first character of each word.
	ModeWordStart Mode = iota

	// ModeWordEnd jumps to the last character of each word.
	ModeWordEnd

	// ModeSearch jumps to occurrences of a prompted character.
	ModeSearch
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeWordStart:
		return "word-start"
	case ModeWordEnd:
		return "word-end"
	case ModeSearch:
		return "search"
	default:
		return "unknown"
	}
}

// Result is the terminal outcome of a jump invocation. A zero Result is the
// failed outcome; failure is a normal end state, not an error.
type Result struct {
	// Pos is the resolved 1-based position. Valid only when Resolved is true.
	Pos int

	// Resolved is true when the session narrowed to exactly one candidate.
	Resolved bool
}

// InputSource acquires one keystroke at a time, blocking and without echo.
type InputSource interface {
	// ReadKey blocks for one keystroke. An error means acquisition failed
	// or was interrupted; the session treats it as cancellation.
	ReadKey() (key.Event, error)
}

// Renderer receives computed overlays. Calls are fire-and-forget: the engine
// never waits on render completion, only on the next keystroke.
type Renderer interface {
	// Show presents replacement text with styled spans and a prompt.
	Show(text string, spans []overlay.Span, prompt string)

	// Redraw asks the renderer to repaint its current content.
	Redraw()
}

// Finder discovers candidate positions in a buffer, in left-to-right order.
// Implementations must return 1-based rune indexes.
type Finder interface {
	Find(buffer string) ([]int, error)
}

// FinderFunc adapts a function to the Finder interface.
type FinderFunc func(buffer string) ([]int, error)

// Find calls f.
func (f FinderFunc) Find(buffer string) ([]int, error) { return f(buffer) }

// Assigner produces n prefix-free jump keys from an alphabet.
type Assigner interface {
	Assign(n int, alphabet []rune) ([]string, error)
}

// AssignerFunc adapts a function to the Assigner interface.
type AssignerFunc func(n int, alphabet []rune) ([]string, error)

// Assign calls f.
func (f AssignerFunc) Assign(n int, alphabet []rune) ([]string, error) {
	return f(n, alphabet)
}

// Logger is the minimal logging surface the engine needs. The app logger
// satisfies it; the default is a no-op.
type Logger interface {
	Debug(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// wordFinder returns the built-in finder for a word mode.
func wordFinder(mode Mode) Finder {
	if mode == ModeWordEnd {
		return FinderFunc(func(buffer string) ([]int, error) {
			return finder.WordEnds(buffer), nil
		})
	}
	return FinderFunc(func(buffer string) ([]int, error) {
		return finder.WordStarts(buffer), nil
	})
}
