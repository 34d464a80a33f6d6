package modal

import "strconv"

// Presentation Layer (SPEC_FULL.md §4.10): after every handled key, the
// interpreter pushes caret width and status-line text to the host. Caret
// width only changes meaning in Normal/Visual/VisualLine, where the block
// caret is as wide as 'W' in the current typing font, clamped to
// [minCaretWidth, maxCaretWidth]; Insert and Command keep a 1px hairline
// caret.

const (
	minCaretWidth = 6
	maxCaretWidth = 18
)

// updatePresentation recomputes caret width and status text and pushes
// both to the host, then asks for a redraw.
func (it *Interpreter) updatePresentation() {
	it.host.SetCaretWidth(it.caretWidth())
	it.host.SetStatusLine(it.statusLine())
	it.host.Redraw()
}

func (it *Interpreter) caretWidth() int {
	switch it.state.Mode {
	case ModeNormal, ModeVisual, ModeVisualLine:
		w := it.host.CaretGlyphWidth()
		if w < minCaretWidth {
			return minCaretWidth
		}
		if w > maxCaretWidth {
			return maxCaretWidth
		}
		return w
	default:
		return 1
	}
}

func (it *Interpreter) statusLine() string {
	s := &it.state
	switch s.Mode {
	case ModeInsert:
		return "INSERT"
	case ModeVisual:
		return "VISUAL"
	case ModeVisualLine:
		return "VISUAL LINE"
	case ModeCommand:
		return s.commandBuffer
	default:
		if s.countPrefix > 0 {
			return "NORMAL [" + strconv.Itoa(int(s.countPrefix)) + "]"
		}
		return "NORMAL"
	}
}
