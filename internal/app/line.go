package app

// lineEditor holds the single editable line and its 0-based cursor. It is
// the edit-buffer owner the jump engine collaborates with: the engine only
// ever sees String() snapshots and hands back 1-based positions.
type lineEditor struct {
	runes  []rune
	cursor int
}

func newLineEditor(text string) *lineEditor {
	runes := []rune(text)
	return &lineEditor{runes: runes, cursor: len(runes)}
}

// String returns the current line content.
func (e *lineEditor) String() string {
	return string(e.runes)
}

// Cursor returns the 0-based cursor column.
func (e *lineEditor) Cursor() int {
	return e.cursor
}

// Insert inserts r at the cursor and advances it.
func (e *lineEditor) Insert(r rune) {
	e.runes = append(e.runes, 0)
	copy(e.runes[e.cursor+1:], e.runes[e.cursor:])
	e.runes[e.cursor] = r
	e.cursor++
}

// Backspace deletes the rune before the cursor.
func (e *lineEditor) Backspace() {
	if e.cursor == 0 {
		return
	}
	e.runes = append(e.runes[:e.cursor-1], e.runes[e.cursor:]...)
	e.cursor--
}

// Delete removes the rune under the cursor.
func (e *lineEditor) Delete() {
	if e.cursor >= len(e.runes) {
		return
	}
	e.runes = append(e.runes[:e.cursor], e.runes[e.cursor+1:]...)
}

// Left moves the cursor one rune left.
func (e *lineEditor) Left() {
	if e.cursor > 0 {
		e.cursor--
	}
}

// Right moves the cursor one rune right.
func (e *lineEditor) Right() {
	if e.cursor < len(e.runes) {
		e.cursor++
	}
}

// Home moves the cursor to the start of the line.
func (e *lineEditor) Home() {
	e.cursor = 0
}

// End moves the cursor past the last rune.
func (e *lineEditor) End() {
	e.cursor = len(e.runes)
}

// MoveToPos places the cursor on a resolved 1-based jump position,
// converting to the editor's 0-based convention and clamping to the line.
func (e *lineEditor) MoveToPos(pos int) {
	col := pos - 1
	if col < 0 {
		col = 0
	}
	if col > len(e.runes) {
		col = len(e.runes)
	}
	e.cursor = col
}
