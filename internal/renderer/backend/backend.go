// Package backend renders jump overlays and editor lines to a terminal and
// supplies keystrokes to the engine. It is the only package that talks to
// tcell; everything above it works with engine value types.
package backend

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/jumpline/internal/input/key"
	"github.com/dshills/jumpline/internal/jump/overlay"
)

// ErrTerminalClosed indicates the event stream ended, usually because the
// screen was finalized.
var ErrTerminalClosed = errors.New("terminal closed")

// Terminal renders to a tcell screen and reads keystrokes from it. It
// implements the engine's Renderer and InputSource contracts.
type Terminal struct {
	screen tcell.Screen
	styles StyleSet
}

// New creates a terminal over a fresh tcell screen.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen creates a terminal over an existing screen, such as a tcell
// simulation screen in tests.
func NewWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen: screen,
		styles: DefaultStyleSet(),
	}
}

// Init initializes the screen. Keystrokes are never echoed; tcell owns the
// terminal in raw mode until Fini.
func (t *Terminal) Init() error {
	return t.screen.Init()
}

// Fini restores the terminal.
func (t *Terminal) Fini() {
	t.screen.Fini()
}

// Size returns the screen dimensions.
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// SetStyles installs the style set used for overlay tags.
func (t *Terminal) SetStyles(styles StyleSet) {
	t.styles = styles
}

// Show presents replacement text with styled spans on the edit row and a
// prompt on the status row, then flushes. Fire-and-forget per the engine
// contract: it never blocks on anything but the screen buffer.
func (t *Terminal) Show(text string, spans []overlay.Span, prompt string) {
	t.screen.Clear()

	runes := []rune(text)
	if len(spans) == 0 {
		t.drawText(0, 0, runes, tcell.StyleDefault)
	} else {
		for _, span := range spans {
			start, end := span.Start, span.End
			if start < 0 || start >= len(runes) {
				continue
			}
			if end > len(runes) {
				end = len(runes)
			}
			t.drawText(start, 0, runes[start:end], t.tagStyle(span.Tag))
		}
	}

	t.drawPrompt(prompt)
	t.screen.HideCursor()
	t.screen.Show()
}

// Redraw repaints the current screen content.
func (t *Terminal) Redraw() {
	t.screen.Sync()
}

// DrawLine presents the editor line with the cursor and a status message,
// outside of any jump session.
func (t *Terminal) DrawLine(text string, cursor int, status string) {
	t.screen.Clear()

	runes := []rune(text)
	t.drawText(0, 0, runes, tcell.StyleDefault)
	t.drawPrompt(status)

	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	t.screen.ShowCursor(cursor, 0)
	t.screen.Show()
}

// ReadKey blocks for the next keystroke, skipping non-key events. Resize
// events trigger a sync so the screen stays coherent while waiting.
func (t *Terminal) ReadKey() (key.Event, error) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return key.Event{}, ErrTerminalClosed
		}
		switch tev := ev.(type) {
		case *tcell.EventKey:
			return convertKey(tev), nil
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// drawText draws runes starting at column x on row y.
func (t *Terminal) drawText(x, y int, runes []rune, style tcell.Style) {
	for i, r := range runes {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

// drawPrompt draws the prompt on the bottom row.
func (t *Terminal) drawPrompt(prompt string) {
	if prompt == "" {
		return
	}
	_, h := t.screen.Size()
	row := h - 1
	if row < 1 {
		row = 1
	}
	for i, r := range []rune(prompt) {
		t.screen.SetContent(i, row, r, nil, tcell.StyleDefault)
	}
}

// tagStyle maps an overlay tag to its configured tcell style.
func (t *Terminal) tagStyle(tag overlay.Tag) tcell.Style {
	switch tag {
	case overlay.TagPrimary:
		return convertStyle(t.styles.Primary)
	case overlay.TagSecondary:
		return convertStyle(t.styles.Secondary)
	case overlay.TagTertiary:
		return convertStyle(t.styles.Tertiary)
	default:
		return convertStyle(t.styles.Dim)
	}
}
