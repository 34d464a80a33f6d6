package modal

// HandleKey routes a single key event to the mode-specific handler, then
// refreshes caret width and status-line text (SPEC_FULL.md §4.10). It
// returns whether the key was consumed: false for a Normal-mode key the
// command table does not map (a zero Key included), true for every other
// key.
func (it *Interpreter) HandleKey(key Key) bool {
	var consumed bool

	switch it.state.Mode {
	case ModeNormal:
		consumed = it.handleNormal(key)
	case ModeInsert:
		consumed = it.handleInsert(key)
	case ModeVisual, ModeVisualLine:
		consumed = it.handleVisual(key)
	case ModeCommand:
		consumed = it.handleCommand(key)
	}

	it.updatePresentation()
	return consumed
}

// handleInsert implements Insert mode (spec.md §4.3): Escape returns to
// Normal (placing the cursor on, not past, the last inserted character,
// matching vim); everything else is forwarded to the host as literal
// text insertion or a navigation/deletion primitive.
func (it *Interpreter) handleInsert(key Key) bool {
	s := &it.state

	if key.Special == KeyEscape {
		pos := it.cursor()
		if pos > 0 {
			start, _ := it.host.LineRange(pos)
			if pos > start {
				it.setCursor(pos - 1)
			}
		}
		s.Mode = ModeNormal
		return true
	}

	switch key.Special {
	case KeyBackspace:
		pos := it.cursor()
		if pos > 0 {
			it.replace(pos-1, pos, nil)
		}
		return true
	case KeyEnter:
		it.replace(it.cursor(), it.cursor(), []uint16{0x0A})
		it.setCursor(it.cursor() + 1)
		return true
	case KeyArrowLeft:
		it.setCursor(clampInt(it.cursor()-1, 0, it.host.Len()))
		return true
	case KeyArrowRight:
		it.setCursor(clampInt(it.cursor()+1, 0, it.host.Len()))
		return true
	case KeyArrowUp:
		it.setCursor(it.host.MoveLineUp(1))
		return true
	case KeyArrowDown:
		it.setCursor(it.host.MoveLineDown(1))
		return true
	}

	if key.Rune != 0 {
		units := encodeRune(key.Rune)
		pos := it.cursor()
		if it.replace(pos, pos, units) {
			it.setCursor(pos + len(units))
		}
	}
	return true
}
