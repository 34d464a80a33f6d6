package modal

import "unicode/utf16"

// executeFind implements f/F/t/T (SPEC_FULL.md §4.4/§4.11): scans the
// current line for ch cnt times, moving the cursor on success or
// composing with a pending operator; on miss, beeps, clears any pending
// operator and count, and leaves the cursor where it was.
func (it *Interpreter) executeFind(ch rune, kind FindKind, cnt int) {
	host := it.host
	pos := it.cursor()
	units := utf16.Encode([]rune{ch})
	if len(units) == 0 {
		host.Beep()
		it.state.resetPending()
		return
	}
	target := units[0]

	found := pos
	ok := false
	for i := 0; i < cnt; i++ {
		next, got := findChar(host, found, target, kind)
		if !got {
			ok = false
			break
		}
		found, ok = next, true
	}

	if !ok {
		host.Beep()
		it.state.resetPending()
		it.state.Mode = ModeNormal
		return
	}

	it.state.lastFindChar = ch
	it.state.lastFindKind = kind

	op := it.state.operator
	if op == OpNone {
		it.setCursor(found)
		it.state.resetPending()
		return
	}

	var lo, hi int
	switch kind {
	case FindForward, FindTillForward:
		lo, hi = pos, found+1
	default: // FindBackward, FindTillBackward
		lo, hi = found, pos
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	enterInsert := it.applyOperator(op, lo, hi, false)
	it.finishOperator(enterInsert)
}

// repeatFind implements ;/,: repeat the last character search in the
// same (;) or opposite (,) direction.
func (it *Interpreter) repeatFind(reverse bool, cnt int) {
	if it.state.lastFindKind == FindNone {
		it.host.Beep()
		return
	}
	kind := it.state.lastFindKind
	if reverse {
		kind = reverseFindKind(kind)
	}
	it.executeFind(it.state.lastFindChar, kind, cnt)
}

func reverseFindKind(k FindKind) FindKind {
	switch k {
	case FindForward:
		return FindBackward
	case FindBackward:
		return FindForward
	case FindTillForward:
		return FindTillBackward
	case FindTillBackward:
		return FindTillForward
	}
	return k
}

// findNext implements the Search Engine of SPEC_FULL.md §4.6: a literal
// substring search that wraps on miss. forward searches from cursor+1
// toward the end then wraps to the start; backward searches from
// cursor-1 toward the start then wraps to the end.
func findNext(host BufferReader, pattern string, fromIndex int, forward bool) (int, bool) {
	if pattern == "" {
		return 0, false
	}
	units := utf16.Encode([]rune(pattern))
	n := host.Len()
	if n == 0 {
		return 0, false
	}
	text := host.Slice(0, n)

	if forward {
		start := fromIndex + 1
		if idx := indexUTF16(text, units, start, n); idx >= 0 {
			return idx, true
		}
		// the wrap covers every match starting at or before the cursor
		if idx := indexUTF16(text, units, 0, start-1+len(units)); idx >= 0 {
			return idx, true
		}
		return 0, false
	}

	end := fromIndex
	if idx := lastIndexUTF16(text, units, 0, end); idx >= 0 {
		return idx, true
	}
	// the wrap covers every match the first pass could not reach
	wrapFrom := end - len(units) + 1
	if wrapFrom < 0 {
		wrapFrom = 0
	}
	if idx := lastIndexUTF16(text, units, wrapFrom, n); idx >= 0 {
		return idx, true
	}
	return 0, false
}

func indexUTF16(text, pattern []uint16, from, to int) int {
	if to > len(text) {
		to = len(text)
	}
	for i := from; i+len(pattern) <= to; i++ {
		if matchesAt(text, pattern, i) {
			return i
		}
	}
	return -1
}

func lastIndexUTF16(text, pattern []uint16, from, to int) int {
	if to > len(text) {
		to = len(text)
	}
	for i := to - len(pattern); i >= from; i-- {
		if matchesAt(text, pattern, i) {
			return i
		}
	}
	return -1
}

func matchesAt(text, pattern []uint16, at int) bool {
	for j, u := range pattern {
		if text[at+j] != u {
			return false
		}
	}
	return true
}

// runSearch executes the pending search_pattern/search_forward (or its
// XNOR-flipped direction for N), moving the cursor on match or beeping
// on overall miss.
func (it *Interpreter) runSearch(forward bool) {
	s := &it.state
	if s.searchPattern == "" {
		it.host.Beep()
		return
	}
	pos, ok := findNext(it.host, s.searchPattern, it.cursor(), forward)
	if !ok {
		it.host.Beep()
		return
	}
	it.setCursor(pos)
}

// repeatSearch implements n/N: n repeats in the original direction, N
// reverses it (effective direction = original XNOR repeat_is_n).
func (it *Interpreter) repeatSearch(reverse bool) {
	forward := it.state.searchForward
	if reverse {
		forward = !forward
	}
	it.runSearch(forward)
}

// searchWordUnderCursor implements */#: compute the word-char run at the
// cursor and search for it as a literal pattern.
func (it *Interpreter) searchWordUnderCursor(forward bool) {
	start, end, ok := wordUnderCursor(it.host, it.cursor())
	if !ok {
		it.host.Beep()
		return
	}
	word := string(utf16.Decode(it.host.Slice(start, end)))
	it.state.searchPattern = word
	it.state.searchForward = forward
	it.runSearch(forward)
}

// pasteAfter implements p: linewise clipboard content is inserted at the
// start of the next line; charwise is inserted just after the cursor.
// The cursor lands inside the pasted region (see DESIGN.md, Open Question
// decision 3, for why this departs from the source's uniform
// "cursor + len - 1").
func (it *Interpreter) pasteAfter() {
	text, ok := it.host.ReadString()
	if !ok || text == "" {
		return
	}
	units := utf16.Encode([]rune(text))
	pos := it.cursor()

	if isLinewise(text) {
		_, at := it.host.LineRange(pos)
		it.replace(at, at, units)
		it.setCursor(firstNonBlankOfLastPastedLine(it.host, at, units))
		return
	}

	at := pos
	if it.host.Len() > 0 {
		at = pos + 1
	}
	it.replace(at, at, units)
	it.setCursor(at + len(units) - 1)
}

// pasteBefore implements P: linewise inserts at the start of the current
// line; charwise inserts at the cursor.
func (it *Interpreter) pasteBefore() {
	text, ok := it.host.ReadString()
	if !ok || text == "" {
		return
	}
	units := utf16.Encode([]rune(text))
	pos := it.cursor()

	if isLinewise(text) {
		at, _ := it.host.LineRange(pos)
		it.replace(at, at, units)
		it.setCursor(firstNonBlankOfLastPastedLine(it.host, at, units))
		return
	}

	it.replace(pos, pos, units)
	it.setCursor(pos + len(units) - 1)
}

func isLinewise(text string) bool {
	return len(text) > 0 && (text[len(text)-1] == '\n' || text[len(text)-1] == '\r')
}

// firstNonBlankOfLastPastedLine finds the first non-whitespace code unit
// of the last line the paste inserted, so the cursor always lands inside
// the pasted region for linewise content (spec.md §9 open question).
func firstNonBlankOfLastPastedLine(host BufferReader, at int, pasted []uint16) int {
	end := at + len(pasted)
	lastLineStart := at
	for i := at; i < end-1; i++ {
		if host.CharAt(i) == 0x0A || host.CharAt(i) == 0x0D {
			lastLineStart = i + 1
		}
	}
	return lineFirstNonBlank(host, lastLineStart)
}
