package modal

import "unicode/utf16"

// Operator Engine: applies delete/yank/change to a range produced by a
// pending-motion composition, by dd/yy/cc, or by a visual selection, per
// SPEC_FULL.md §4.5. Every mutating call gates through ShouldChangeText
// and follows with DidChangeText so the host's undo stack and dirty-state
// tracking stay authoritative (spec.md §7 HostRejectsEdit).

// encodeRune converts a single typed rune to its UTF-16 code units.
func encodeRune(r rune) []uint16 {
	return utf16.Encode([]rune{r})
}

// cursor returns the caret position (selection start, since a caret is a
// zero-length selection).
func (it *Interpreter) cursor() int {
	start, _ := it.host.Selection()
	return start
}

func (it *Interpreter) setCursor(pos int) {
	it.host.SetSelection(pos, pos)
}

// replace performs a guarded edit, returning whether it actually happened.
func (it *Interpreter) replace(start, end int, replacement []uint16) bool {
	if !it.host.ShouldChangeText(start, end, replacement) {
		return false
	}
	it.host.ReplaceRange(start, end, replacement)
	it.host.DidChangeText()
	return true
}

// applyOperator applies op to [start, end). linewise controls where yank
// leaves the cursor (spec.md §4.5: yy/VisualLine yank return to the start
// of the line; a charwise yank leaves the cursor untouched). Returns
// whether the host should enter Insert mode afterward.
func (it *Interpreter) applyOperator(op Operator, start, end int, linewise bool) bool {
	switch op {
	case OpDelete:
		if end > start {
			it.replace(start, end, nil)
		}
		it.setCursor(start)
		return false

	case OpYank:
		if end > start {
			text := it.host.Slice(start, end)
			it.host.WriteString(string(utf16.Decode(text)))
		}
		if linewise {
			it.setCursor(start)
		}
		return false

	case OpChange:
		if end > start {
			it.replace(start, end, nil)
		}
		it.setCursor(start)
		return true
	}
	return false
}

// splitLineTerminator separates line content from its trailing \n/\r (or
// \r\n) terminator.
func splitLineTerminator(line []uint16) (content, terminator []uint16) {
	i := len(line)
	for i > 0 && (line[i-1] == 0x0A || line[i-1] == 0x0D) {
		i--
	}
	return line[:i], line[i:]
}

// executeChangeLine implements cc: replace the line contents with its
// leading indent + terminator, then enter Insert with the cursor after
// the indent (spec.md §4.5, scenario 5).
func (it *Interpreter) executeChangeLine() bool {
	pos := it.cursor()
	start, end := it.host.LineRange(pos)
	line := it.host.Slice(start, end)
	content, term := splitLineTerminator(line)

	indentLen := 0
	for indentLen < len(content) && (content[indentLen] == 0x20 || content[indentLen] == 0x09) {
		indentLen++
	}

	replacement := make([]uint16, 0, indentLen+len(term))
	replacement = append(replacement, content[:indentLen]...)
	replacement = append(replacement, term...)

	it.replace(start, end, replacement)
	it.setCursor(start + indentLen)
	return true
}

// join implements J: replace the run from the current line's terminator
// through the next line's first non-blank with a single space (or its
// end if the next line is all whitespace). Requires a next line.
func (it *Interpreter) join() bool {
	host := it.host
	pos := it.cursor()
	lstart, lend := host.LineRange(pos)

	termStart := lend
	for termStart > lstart {
		u := host.CharAt(termStart - 1)
		if u == 0x0A || u == 0x0D {
			termStart--
			continue
		}
		break
	}
	if termStart == lend {
		host.Beep()
		return false
	}

	e := termStart
	nextStart, nextEnd := host.LineRange(lend)
	s := nextStart
	for s < nextEnd && isWhitespace(host.CharAt(s)) {
		s++
	}

	it.replace(e, s, []uint16{0x20})
	it.setCursor(e)
	return true
}

// replaceChar implements r<c>: replace cnt code units at the cursor with
// ch, then step the cursor back one (vim leaves it on the last replaced
// character).
func (it *Interpreter) replaceChar(ch rune, cnt int) {
	host := it.host
	pos := it.cursor()
	n := host.Len()
	if pos+cnt > n {
		host.Beep()
		return
	}
	units := utf16.Encode([]rune{ch})
	replacement := make([]uint16, 0, len(units)*cnt)
	for i := 0; i < cnt; i++ {
		replacement = append(replacement, units...)
	}
	// r only ever replaces cnt single code units with cnt copies of ch, so
	// the replaced range and replacement have matching code-unit counts
	// when ch is a single code unit; that's the common case for note text.
	if it.replace(pos, pos+cnt, replacement) {
		it.setCursor(pos + len(replacement) - 1)
	}
}
