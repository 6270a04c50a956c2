package jump

import (
	"github.com/dshills/jumpline/internal/jump/keymap"
	"github.com/dshills/jumpline/internal/jump/overlay"
)

// sessionState is the state of the narrowing protocol.
type sessionState uint8

const (
	stateActive sessionState = iota
	stateResolved
	stateFailed
)

// Session drives one interactive narrowing loop over a fixed keymap.
//
// Each iteration renders the overlay for the live candidates, blocks for one
// keystroke, and filters the keymap by the extended prefix. The loop ends
// when exactly one candidate remains (resolved) or none do (failed). Because
// keys are at most two characters, at most two keystrokes are ever read.
type Session struct {
	buffer   string
	keymap   keymap.Keymap
	input    InputSource
	renderer Renderer
	prompt   string
	log      Logger
	id       string

	// typed is the prefix of keystrokes accepted so far.
	typed string
}

// NewSession creates a session over the full keymap for one buffer snapshot.
func NewSession(buffer string, km keymap.Keymap, input InputSource, renderer Renderer, prompt string) *Session {
	return &Session{
		buffer:   buffer,
		keymap:   km,
		input:    input,
		renderer: renderer,
		prompt:   prompt,
		log:      nopLogger{},
	}
}

// Typed returns the keystrokes accepted so far.
func (s *Session) Typed() string { return s.typed }

// Run executes the narrowing loop to a terminal state.
func (s *Session) Run() Result {
	km := s.keymap
	for {
		switch s.state(km) {
		case stateFailed:
			s.log.Debug("jump session %s failed after typed=%q", s.id, s.typed)
			return Result{}
		case stateResolved:
			s.log.Debug("jump session %s resolved pos=%d typed=%q", s.id, km[0].Pos, s.typed)
			return Result{Pos: km[0].Pos, Resolved: true}
		}

		ov := overlay.Compute(s.buffer, s.typed, km)
		s.renderer.Show(ov.Text, ov.Spans, s.prompt)

		ev, err := s.input.ReadKey()
		if err != nil || ev.IsCancel() || !ev.IsRune() {
			s.log.Debug("jump session %s: %v (err=%v key=%v)", s.id, ErrInputCancelled, err, ev)
			return Result{}
		}

		s.typed += string(ev.Rune)
		km = km.FilterPrefix(s.typed)
	}
}

// state classifies the live keymap.
func (s *Session) state(km keymap.Keymap) sessionState {
	switch len(km) {
	case 0:
		return stateFailed
	case 1:
		return stateResolved
	default:
		return stateActive
	}
}
