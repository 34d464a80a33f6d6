// Package reference provides an in-memory Host implementation over a
// UTF-16 text buffer, suitable for driving the modal package in tests
// and in the notevim demo host. It is a straight generalization of an
// ASCII line editor to UTF-16 indexing, selection ranges, and an
// undo stack keyed on whole-buffer snapshots.
package reference

import (
	"time"
	"unicode/utf16"
)

func encodeString(s string) []uint16 { return utf16.Encode([]rune(s)) }
func decodeUnits(u []uint16) string  { return string(utf16.Decode(u)) }

// bufferState is a snapshot of the buffer for undo, mirroring how a
// simpler byte-oriented editor saves (text, cursor) pairs.
type bufferState struct {
	text []uint16
	sel  [2]int
}

// Buffer is a minimal in-memory text model: a UTF-16 code-unit slice, a
// selection range, and an undo history of whole-buffer snapshots.
type Buffer struct {
	text    []uint16
	selLo   int
	selHi   int
	history []bufferState
	maxHist int

	clipboard string
	hasClip   bool

	dirty  bool
	closed bool
	beeps  int

	caretGlyphWidth int
	caretWidth      int
	statusLine      string
	redraws         int

	now time.Time

	// rejectEdits, when set, makes ShouldChangeText refuse every edit; a
	// test hook for the host-rejects-edit invariant.
	rejectEdits bool
}

// New creates a Buffer containing text, cursor at the start.
func New(text string) *Buffer {
	b := &Buffer{
		caretGlyphWidth: 9,
		now:             time.Unix(0, 0),
	}
	b.SetText(text)
	return b
}

// SetText replaces the buffer contents and clears history, cursor at 0.
func (b *Buffer) SetText(text string) {
	b.text = encodeString(text)
	b.selLo, b.selHi = 0, 0
	b.history = b.history[:0]
}

// Text returns the buffer contents as a string.
func (b *Buffer) Text() string {
	return decodeUnits(b.text)
}

// --- modal.BufferReader ---

func (b *Buffer) Len() int { return len(b.text) }

func (b *Buffer) Slice(start, end int) []uint16 {
	out := make([]uint16, end-start)
	copy(out, b.text[start:end])
	return out
}

func (b *Buffer) CharAt(i int) uint16 { return b.text[i] }

// LineRange returns the [start, end) span of the line containing at,
// end exclusive and including the line's own terminator if present.
func (b *Buffer) LineRange(at int) (start, end int) {
	start = at
	for start > 0 && b.text[start-1] != 0x0A {
		start--
	}
	end = at
	n := len(b.text)
	for end < n && b.text[end] != 0x0A {
		end++
	}
	if end < n {
		end++ // include the \n
	}
	return start, end
}

func (b *Buffer) Selection() (start, end int) { return b.selLo, b.selHi }

// --- modal.BufferWriter ---

// ShouldChangeText grants permission unless rejectEdits is set (a test
// hook for the host-rejects-edit invariant).
func (b *Buffer) ShouldChangeText(start, end int, replacement []uint16) bool {
	return !b.rejectEdits
}

func (b *Buffer) ReplaceRange(start, end int, replacement []uint16) {
	b.saveUndo()
	tail := append([]uint16{}, b.text[end:]...)
	b.text = append(b.text[:start], append(append([]uint16{}, replacement...), tail...)...)
}

func (b *Buffer) DidChangeText() { b.dirty = true }

func (b *Buffer) SetSelection(start, end int) {
	b.selLo, b.selHi = clamp(start, 0, len(b.text)), clamp(end, 0, len(b.text))
}

// --- modal.CursorMover ---

// MoveLineUp returns the index n lines above the cursor's column,
// clamped to the target line's length; there is no line wrapping to
// account for in a plain in-memory buffer.
func (b *Buffer) MoveLineUp(n int) int {
	pos := b.selLo
	col := pos - lineStartOf(b.text, pos)
	for i := 0; i < n; i++ {
		start := lineStartOf(b.text, pos)
		if start == 0 {
			break
		}
		pos = lineStartOf(b.text, start-1)
	}
	return clampToLineCol(b.text, pos, col)
}

func (b *Buffer) MoveLineDown(n int) int {
	pos := b.selLo
	col := pos - lineStartOf(b.text, pos)
	for i := 0; i < n; i++ {
		_, end := b.LineRange(pos)
		if end >= len(b.text) {
			pos = len(b.text)
			break
		}
		pos = end
	}
	return clampToLineCol(b.text, pos, col)
}

// --- modal.Clipboard ---

func (b *Buffer) ReadString() (string, bool) { return b.clipboard, b.hasClip }

func (b *Buffer) WriteString(s string) bool {
	b.clipboard = s
	b.hasClip = true
	return true
}

// --- remaining modal.Host methods ---

func (b *Buffer) Undo() bool {
	if len(b.history) == 0 {
		return false
	}
	last := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	b.text = last.text
	b.selLo, b.selHi = last.sel[0], last.sel[1]
	return true
}

func (b *Buffer) Save() bool {
	b.dirty = false
	return true
}

func (b *Buffer) Close() bool {
	b.closed = true
	return true
}

func (b *Buffer) Beep() { b.beeps++ }

func (b *Buffer) CaretGlyphWidth() int { return b.caretGlyphWidth }

func (b *Buffer) SetCaretWidth(px int) { b.caretWidth = px }

func (b *Buffer) SetStatusLine(s string) { b.statusLine = s }

func (b *Buffer) Redraw() { b.redraws++ }

func (b *Buffer) Now() time.Time { return b.now }

// --- test/demo-host hooks, not part of modal.Host ---

// SetNow lets tests drive pending_g and j/k-acceleration timing without a
// wall clock.
func (b *Buffer) SetNow(t time.Time) { b.now = t }

// SetRejectEdits makes every subsequent ShouldChangeText call return
// false, for exercising the host-rejects-edit invariant.
func (b *Buffer) SetRejectEdits(v bool) { b.rejectEdits = v }

func (b *Buffer) Dirty() bool        { return b.dirty }
func (b *Buffer) Closed() bool       { return b.closed }
func (b *Buffer) Beeps() int         { return b.beeps }
func (b *Buffer) CaretWidth() int    { return b.caretWidth }
func (b *Buffer) StatusLine() string { return b.statusLine }
func (b *Buffer) Redraws() int       { return b.redraws }

func (b *Buffer) saveUndo() {
	snap := bufferState{
		text: append([]uint16{}, b.text...),
		sel:  [2]int{b.selLo, b.selHi},
	}
	b.history = append(b.history, snap)
	if b.maxHist > 0 && len(b.history) > b.maxHist {
		b.history = b.history[1:]
	}
}

func lineStartOf(text []uint16, pos int) int {
	for pos > 0 && text[pos-1] != 0x0A {
		pos--
	}
	return pos
}

func clampToLineCol(text []uint16, lineStart, col int) int {
	end := lineStart
	n := len(text)
	for end < n && text[end] != 0x0A {
		end++
	}
	pos := lineStart + col
	if pos > end {
		pos = end
	}
	return pos
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
