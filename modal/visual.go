package modal

// Visual Mode (SPEC_FULL.md §4.7): v/V select charwise/linewise relative
// to an anchor at the point the mode was entered; motions move the
// cursor end of the selection, and d/x/y/c act on the resulting range
// before returning to Normal (or Insert, for c).
//
// Because host.Selection() is used to render the ordered [lo,hi) span
// rather than the raw (anchor, cursor) pair, the moving end is tracked
// separately in state.visualCursor; Selection() is only pushed to, never
// read back, while in Visual/VisualLine mode.

func (it *Interpreter) enterVisual(mode Mode) {
	pos := it.cursor()
	it.state.Mode = mode
	it.state.visualAnchor = pos
	it.state.visualCursor = pos
	it.applyVisualSelection()
}

// applyVisualSelection pushes the current [anchor, cursor] span to the
// host as a selection, growing a VisualLine span to whole lines.
func (it *Interpreter) applyVisualSelection() {
	lo, hi := it.visualRange()
	it.host.SetSelection(lo, hi)
}

// visualRange returns the ordered, half-open [lo, hi) span between the
// anchor and the cursor, snapped to whole lines in VisualLine mode.
func (it *Interpreter) visualRange() (lo, hi int) {
	anchor := it.state.visualAnchor
	pos := it.state.visualCursor
	lo, hi = anchor, pos
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi < it.host.Len() {
		hi++ // visual selection is inclusive of the character under the cursor
	}
	if it.state.Mode == ModeVisualLine {
		lo = lineStart(it.host, lo)
		_, hi = it.host.LineRange(hi - 1)
	}
	return lo, hi
}

// handleVisual implements Visual and VisualLine mode key handling: h/j/k/l
// and the other motions extend the selection, Escape cancels, v/V cancel
// or switch between Visual and VisualLine keeping the anchor, and d/x/y/c
// commit the operator then return to Normal (or Insert, for c).
func (it *Interpreter) handleVisual(key Key) bool {
	s := &it.state

	if key.Special == KeyEscape {
		it.cancelVisual()
		return true
	}
	ch := key.Rune

	switch ch {
	case 'v':
		if s.Mode == ModeVisual {
			it.cancelVisual()
		} else {
			s.Mode = ModeVisual
			it.applyVisualSelection()
		}
		return true
	case 'V':
		if s.Mode == ModeVisualLine {
			it.cancelVisual()
		} else {
			s.Mode = ModeVisualLine
			it.applyVisualSelection()
		}
		return true
	}

	if ch == 'j' || ch == 'k' {
		cnt := s.getCount()
		s.countPrefix = 0
		// The host moves relative to its caret, so put it on the moving end.
		it.setCursor(s.visualCursor)
		if ch == 'j' {
			s.visualCursor = it.host.MoveLineDown(cnt)
		} else {
			s.visualCursor = it.host.MoveLineUp(cnt)
		}
		it.applyVisualSelection()
		return true
	}

	if (ch >= '1' && ch <= '9') || (ch == '0' && s.countPrefix > 0) {
		s.countPrefix = s.countPrefix*10 + uint32(ch-'0')
		return true
	}

	if isMotionKey(ch) {
		cnt := s.getCount()
		s.countPrefix = 0
		target, _, ok := it.resolveMotionFrom(s.visualCursor, ch, cnt)
		if ok {
			s.visualCursor = target
			it.applyVisualSelection()
		}
		return true
	}

	switch ch {
	case 'd', 'x':
		it.commitVisualOperator(OpDelete)
		return true
	case 'y':
		it.commitVisualOperator(OpYank)
		return true
	case 'c':
		it.commitVisualOperator(OpChange)
		return true
	}

	return true
}

func (it *Interpreter) cancelVisual() {
	it.setCursor(it.state.visualCursor)
	it.state.resetPending()
	it.state.Mode = ModeNormal
}

// commitVisualOperator applies op to the current visual span and returns
// to Normal (or Insert, for c), per spec.md §4.7.
func (it *Interpreter) commitVisualOperator(op Operator) {
	linewise := it.state.Mode == ModeVisualLine
	lo, hi := it.visualRange()
	enterInsert := it.applyOperator(op, lo, hi, linewise)
	if op == OpYank && !linewise {
		it.setCursor(lo)
	}
	it.state.resetPending()
	if enterInsert {
		it.state.Mode = ModeInsert
	} else {
		it.state.Mode = ModeNormal
	}
}
