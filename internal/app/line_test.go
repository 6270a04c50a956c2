package app

import "testing"

func TestLineEditorInsert(t *testing.T) {
	e := newLineEditor("")
	for _, r := range "abc" {
		e.Insert(r)
	}
	if got := e.String(); got != "abc" {
		t.Errorf("String() = %q, want %q", got, "abc")
	}
	if got := e.Cursor(); got != 3 {
		t.Errorf("Cursor() = %d, want 3", got)
	}
}

func TestLineEditorInsertMiddle(t *testing.T) {
	e := newLineEditor("ac")
	e.Left()
	e.Insert('b')
	if got := e.String(); got != "abc" {
		t.Errorf("String() = %q, want %q", got, "abc")
	}
	if got := e.Cursor(); got != 2 {
		t.Errorf("Cursor() = %d, want 2", got)
	}
}

func TestLineEditorBackspace(t *testing.T) {
	e := newLineEditor("abc")
	e.Backspace()
	if got := e.String(); got != "ab" {
		t.Errorf("String() = %q, want %q", got, "ab")
	}

	e = newLineEditor("abc")
	e.Home()
	e.Backspace()
	if got := e.String(); got != "abc" {
		t.Errorf("backspace at line start changed line to %q", got)
	}
}

func TestLineEditorDelete(t *testing.T) {
	e := newLineEditor("abc")
	e.Home()
	e.Delete()
	if got := e.String(); got != "bc" {
		t.Errorf("String() = %q, want %q", got, "bc")
	}

	e.End()
	e.Delete()
	if got := e.String(); got != "bc" {
		t.Errorf("delete at line end changed line to %q", got)
	}
}

func TestLineEditorMovement(t *testing.T) {
	e := newLineEditor("hello")
	e.Home()
	if got := e.Cursor(); got != 0 {
		t.Errorf("Home: cursor = %d, want 0", got)
	}
	e.Left()
	if got := e.Cursor(); got != 0 {
		t.Errorf("Left at start: cursor = %d, want 0", got)
	}
	e.Right()
	e.Right()
	if got := e.Cursor(); got != 2 {
		t.Errorf("Right x2: cursor = %d, want 2", got)
	}
	e.End()
	if got := e.Cursor(); got != 5 {
		t.Errorf("End: cursor = %d, want 5", got)
	}
	e.Right()
	if got := e.Cursor(); got != 5 {
		t.Errorf("Right at end: cursor = %d, want 5", got)
	}
}

func TestLineEditorMoveToPos(t *testing.T) {
	tests := []struct {
		name string
		text string
		pos  int
		want int
	}{
		{"first rune", "hello", 1, 0},
		{"middle rune", "hello", 3, 2},
		{"clamped low", "hello", 0, 0},
		{"clamped high", "hello", 99, 5},
		{"multibyte", "héllo", 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newLineEditor(tt.text)
			e.MoveToPos(tt.pos)
			if got := e.Cursor(); got != tt.want {
				t.Errorf("MoveToPos(%d) cursor = %d, want %d", tt.pos, got, tt.want)
			}
		})
	}
}

func TestLineEditorMultibyte(t *testing.T) {
	e := newLineEditor("héllo")
	e.Home()
	e.Right()
	e.Delete()
	if got := e.String(); got != "hllo" {
		t.Errorf("String() = %q, want %q", got, "hllo")
	}
}
