// Package modal implements a vi-style modal keystroke interpreter that
// drives an externally owned UTF-16 text buffer. The interpreter owns no
// buffer data of its own: every read and every mutation crosses the Host
// interface below, so the package can be driven by a real Cocoa-style text
// view, a terminal demo host, or a fake in tests.
package modal

import "time"

// BufferReader exposes read-only access to the host's text model. All
// indices and ranges are UTF-16 code-unit offsets, matching the host's
// native string indexing.
type BufferReader interface {
	// Len returns the buffer length in UTF-16 code units.
	Len() int
	// Slice returns the code units in [start, end).
	Slice(start, end int) []uint16
	// CharAt returns the code unit at i. Callers must keep 0 <= i < Len().
	CharAt(i int) uint16
	// LineRange returns the [start, end) range of the line containing at,
	// end exclusive and including the line's terminator if any.
	LineRange(at int) (start, end int)
	// Selection returns the current selection range.
	Selection() (start, end int)
}

// BufferWriter exposes guarded mutation of the host's text model. Every
// mutating call gates through ShouldChangeText first; DidChangeText runs
// after, so the host's undo stack and dirty-state tracking stay
// authoritative.
type BufferWriter interface {
	// ShouldChangeText asks permission to replace [start, end) with
	// replacement. A false return means the edit must not happen.
	ShouldChangeText(start, end int, replacement []uint16) bool
	// ReplaceRange performs the edit. Callers must have a true result from
	// ShouldChangeText first.
	ReplaceRange(start, end int, replacement []uint16)
	// DidChangeText notifies the host that an edit completed.
	DidChangeText()
	// SetSelection sets the buffer's selection range.
	SetSelection(start, end int)
}

// CursorMover exposes the host's visually-correct vertical motion
// primitives, which honor line wrapping the interpreter cannot see.
// Implementations only compute the target index; they must not move the
// selection themselves — the interpreter applies it via SetSelection, the
// same as every other motion.
type CursorMover interface {
	// MoveLineUp returns the index n visual lines above the cursor.
	MoveLineUp(n int) int
	// MoveLineDown returns the index n visual lines below the cursor.
	MoveLineDown(n int) int
}

// Clipboard is the system clipboard, accessed synchronously.
type Clipboard interface {
	ReadString() (string, bool)
	WriteString(s string) bool
}

// Host is the full delegate contract a text editor implements to be
// driven by this package.
type Host interface {
	BufferReader
	BufferWriter
	CursorMover
	Clipboard

	// Undo triggers the host's own undo manager once.
	Undo() bool
	// Save persists the note.
	Save() bool
	// Close closes the host window.
	Close() bool
	// Beep signals an error audibly.
	Beep()

	// CaretGlyphWidth returns the unclamped pixel width of 'W' in the
	// current typing font.
	CaretGlyphWidth() int
	// SetCaretWidth pushes the computed caret width in pixels.
	SetCaretWidth(px int)
	// SetStatusLine pushes new status-line text.
	SetStatusLine(s string)
	// Redraw requests the host redraw the caret/selection.
	Redraw()

	// Now returns the current time, so pending_g's soft timeout and the
	// j/k acceleration window are testable without a wall clock.
	Now() time.Time
}
