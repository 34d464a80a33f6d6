package modal

import "time"

// handleNormal implements the Normal-mode key table and precedence order
// of SPEC_FULL.md §4.2: count digit, pending character consumer, motion
// composed with a pending operator, then the command table.
func (it *Interpreter) handleNormal(key Key) bool {
	s := &it.state
	s.checkGTimeout(it.host.Now())

	if key.Special == KeyEscape {
		s.resetPending()
		return true
	}

	ch := key.Rune

	// j/k acceleration tracks its own timing; every other key resets it.
	// A pending r/f/F/t/T consumes j or k as its character instead.
	if (ch == 'j' || ch == 'k') && !s.pendingR && s.pendingFind == FindNone {
		cnt := s.getCount()
		s.countPrefix = 0
		it.moveJK(ch == 'j', cnt)
		return true
	}
	s.jkRepeatCount = 0
	s.lastJKTime = time.Time{}

	// 1. Count digit.
	if (ch >= '1' && ch <= '9') || (ch == '0' && s.countPrefix > 0) {
		s.countPrefix = s.countPrefix*10 + uint32(ch-'0')
		return true
	}

	// 2. Pending character consumer.
	if s.pendingR {
		s.pendingR = false
		cnt := s.getCount()
		s.countPrefix = 0
		it.replaceChar(ch, cnt)
		return true
	}
	if s.pendingFind != FindNone {
		kind := s.pendingFind
		s.pendingFind = FindNone
		cnt := s.getCount()
		s.countPrefix = 0
		it.executeFind(ch, kind, cnt)
		return true
	}

	// 'g' prefix: gg moves to document start, composing with a pending
	// operator the same way G does (linewise, from buffer start through
	// the current line).
	if s.pendingG {
		s.pendingG = false
		if ch == 'g' {
			cnt := s.getCount()
			s.countPrefix = 0
			it.applyGG(cnt)
			return true
		}
		// any other key silently drops the pending g (spec.md §4.8)
	}
	if ch == 'g' {
		s.pendingG = true
		s.gArmedAt = it.host.Now()
		return true
	}

	// Operators: d, y, c. A repeated identical operator operates linewise.
	if ch == 'd' || ch == 'y' || ch == 'c' {
		var want Operator
		switch ch {
		case 'd':
			want = OpDelete
		case 'y':
			want = OpYank
		case 'c':
			want = OpChange
		}
		if s.operator == want {
			cnt := s.getCount()
			s.countPrefix = 0
			s.operator = OpNone
			it.repeatLineOperator(want, cnt)
			return true
		}
		s.operator = want
		return true
	}

	// Motion keys, with or without a pending operator. Per spec.md §9
	// ("the pending-operator grammar composes any operator with any
	// motion") the full motion set participates, not only the subset
	// §4.2 item 3 enumerates by name — see DESIGN.md.
	if isMotionKey(ch) {
		cnt := s.getCount()
		s.countPrefix = 0
		if s.operator != OpNone {
			it.applyMotionOperator(ch, cnt)
		} else {
			it.moveMotion(ch, cnt)
		}
		return true
	}

	// f/F/t/T arm the find-character consumer; they work standalone or
	// composed with a pending operator.
	switch ch {
	case 'f':
		s.pendingFind = FindForward
		return true
	case 'F':
		s.pendingFind = FindBackward
		return true
	case 't':
		s.pendingFind = FindTillForward
		return true
	case 'T':
		s.pendingFind = FindTillBackward
		return true
	}

	// An operator is pending but this key is neither a motion nor a find
	// prefix: unmapped, beep and clear (spec.md §4.2 last line).
	if s.operator != OpNone {
		it.host.Beep()
		s.resetPending()
		return true
	}

	return it.handleNormalCommand(key)
}

// handleNormalCommand is the remainder of the command table: everything
// that isn't a count, a pending consumer, an operator, or a motion.
func (it *Interpreter) handleNormalCommand(key Key) bool {
	s := &it.state
	ch := key.Rune
	cnt := s.getCount()

	switch ch {
	case 'i':
		s.countPrefix = 0
		it.state.Mode = ModeInsert
		return true
	case 'I':
		s.countPrefix = 0
		it.setCursor(lineFirstNonBlank(it.host, it.cursor()))
		it.state.Mode = ModeInsert
		return true
	case 'a':
		s.countPrefix = 0
		it.setCursor(it.cursor() + 1)
		it.state.Mode = ModeInsert
		return true
	case 'A':
		s.countPrefix = 0
		it.setCursor(it.lineContentEnd(it.cursor()))
		it.state.Mode = ModeInsert
		return true
	case 'o':
		s.countPrefix = 0
		it.openLine(false)
		return true
	case 'O':
		s.countPrefix = 0
		it.openLine(true)
		return true
	case 'x':
		s.countPrefix = 0
		pos := it.cursor()
		end := pos + cnt
		if end > it.host.Len() {
			end = it.host.Len()
		}
		it.applyOperator(OpDelete, pos, end, false)
		return true
	case 'D':
		s.countPrefix = 0
		pos := it.cursor()
		it.applyOperator(OpDelete, pos, it.lineContentEnd(pos), false)
		return true
	case 'C':
		s.countPrefix = 0
		pos := it.cursor()
		it.applyOperator(OpChange, pos, it.lineContentEnd(pos), false)
		it.state.Mode = ModeInsert
		return true
	case 'p':
		s.countPrefix = 0
		it.pasteAfter()
		return true
	case 'P':
		s.countPrefix = 0
		it.pasteBefore()
		return true
	case 'r':
		s.pendingR = true
		return true
	case 'u':
		s.countPrefix = 0
		it.host.Undo()
		return true
	case 'J':
		s.countPrefix = 0
		it.join()
		return true
	case '/':
		s.resetPending()
		it.enterCommand('/')
		return true
	case '?':
		s.resetPending()
		it.enterCommand('?')
		return true
	case ':':
		s.resetPending()
		it.enterCommand(':')
		return true
	case 'n':
		s.countPrefix = 0
		it.repeatSearch(false)
		return true
	case 'N':
		s.countPrefix = 0
		it.repeatSearch(true)
		return true
	case '*':
		s.countPrefix = 0
		it.searchWordUnderCursor(true)
		return true
	case '#':
		s.countPrefix = 0
		it.searchWordUnderCursor(false)
		return true
	case ';':
		s.countPrefix = 0
		it.repeatFind(false, cnt)
		return true
	case ',':
		s.countPrefix = 0
		it.repeatFind(true, cnt)
		return true
	case 'v':
		s.resetPending()
		it.enterVisual(ModeVisual)
		return true
	case 'V':
		s.resetPending()
		it.enterVisual(ModeVisualLine)
		return true
	}

	s.resetPending()
	return false
}

// isMotionKey reports whether ch is one of the plain motion keys that
// participate in operator composition.
func isMotionKey(ch rune) bool {
	switch ch {
	case 'h', 'l', 'w', 'W', 'b', 'B', 'e', 'E', '0', '^', '$', 'G':
		return true
	}
	return false
}

// moveMotion executes a bare motion (no pending operator), repeating it
// cnt times except for the motions that ignore count (0, ^, $, G).
func (it *Interpreter) moveMotion(ch rune, cnt int) {
	target, _, ok := it.resolveMotion(ch, cnt)
	if !ok {
		return
	}
	it.setCursor(target)
}

// resolveMotion computes the single target position for ch from the
// cursor, applying count internally. Returns ok=false for unknown keys.
func (it *Interpreter) resolveMotion(ch rune, cnt int) (target int, inclusive bool, ok bool) {
	return it.resolveMotionFrom(it.cursor(), ch, cnt)
}

// resolveMotionFrom is resolveMotion generalized to an explicit starting
// position, so Visual mode can advance its own tracked cursor without
// disturbing the host's rendered selection.
func (it *Interpreter) resolveMotionFrom(pos int, ch rune, cnt int) (target int, inclusive bool, ok bool) {
	host := it.host

	switch ch {
	case 'h':
		return clampInt(pos-cnt, 0, host.Len()), false, true
	case 'l':
		return clampInt(pos+cnt, 0, host.Len()), false, true
	case '0':
		return lineStart(host, pos), false, true
	case '^':
		return lineFirstNonBlank(host, pos), false, true
	case '$':
		return lineEnd(host, pos), true, true
	case 'w':
		return repeatStep(host, pos, cnt, false, wordForward), false, true
	case 'W':
		return repeatStep(host, pos, cnt, true, wordForward), false, true
	case 'b':
		return repeatStep(host, pos, cnt, false, wordBackward), false, true
	case 'B':
		return repeatStep(host, pos, cnt, true, wordBackward), false, true
	case 'e':
		return repeatStep(host, pos, cnt, false, wordEnd), true, true
	case 'E':
		return repeatStep(host, pos, cnt, true, wordEnd), true, true
	case 'G':
		return host.Len(), false, true
	}
	return 0, false, false
}

func repeatStep(b BufferReader, pos, cnt int, big bool, step func(BufferReader, int, bool) int) int {
	t := pos
	for i := 0; i < cnt; i++ {
		t = step(b, t, big)
	}
	return t
}

// applyMotionOperator composes the pending operator with motion ch,
// computing the operand range per spec.md §4.4: [min(start,end),
// max(start,end)) with the endpoint bumped by one for inclusive motions,
// except G which snaps linewise from the current line's start to the
// buffer end.
func (it *Interpreter) applyMotionOperator(ch rune, cnt int) {
	op := it.state.operator
	pos := it.cursor()

	if ch == 'G' {
		start := lineStart(it.host, pos)
		enterInsert := it.applyOperator(op, start, it.host.Len(), true)
		it.finishOperator(enterInsert)
		return
	}

	target, inclusive, ok := it.resolveMotion(ch, cnt)
	if !ok {
		it.host.Beep()
		it.state.resetPending()
		return
	}
	lo, hi := pos, target
	if lo > hi {
		lo, hi = hi, lo
	}
	if inclusive && hi < it.host.Len() {
		hi++
	}
	enterInsert := it.applyOperator(op, lo, hi, false)
	it.finishOperator(enterInsert)
}

// finishOperator clears pending state and enters Insert mode if the
// operator was Change.
func (it *Interpreter) finishOperator(enterInsert bool) {
	it.state.resetPending()
	if enterInsert {
		it.state.Mode = ModeInsert
	} else {
		it.state.Mode = ModeNormal
	}
}

// repeatLineOperator implements dd/yy/cc: cnt lines starting at the
// cursor's line, matching vim's "Ncc operates on N lines" behavior.
func (it *Interpreter) repeatLineOperator(op Operator, cnt int) {
	if op == OpChange && cnt <= 1 {
		it.executeChangeLine()
		it.finishOperator(true)
		return
	}

	pos := it.cursor()
	start, end := it.host.LineRange(pos)
	for i := 1; i < cnt && end < it.host.Len(); i++ {
		_, end = it.host.LineRange(end)
	}
	enterInsert := it.applyOperator(op, start, end, true)
	it.finishOperator(enterInsert)
}

// gotoDocStart implements bare gg: move to the buffer start, or to the
// start of line cnt if a count was given (vim's documented "Ngg"
// behavior).
func (it *Interpreter) gotoDocStart(cnt int) {
	it.setCursor(it.ggTarget(cnt))
}

// ggTarget computes gg's target line-start index for count cnt (1 means
// the buffer start).
func (it *Interpreter) ggTarget(cnt int) int {
	if cnt <= 1 {
		return 0
	}
	pos := 0
	for i := 1; i < cnt && pos < it.host.Len(); i++ {
		_, pos = it.host.LineRange(pos)
	}
	return lineStart(it.host, minInt(pos, it.host.Len()))
}

// applyGG implements gg, composing with a pending operator the same way
// G does: linewise from the lower of (gg's target line, the cursor's
// line) through the end of the higher one.
func (it *Interpreter) applyGG(cnt int) {
	op := it.state.operator
	if op == OpNone {
		it.gotoDocStart(cnt)
		return
	}

	target := it.ggTarget(cnt)
	pos := it.cursor()
	lo, hi := target, pos
	if lo > hi {
		lo, hi = hi, lo
	}
	lo = lineStart(it.host, lo)
	_, hi = it.host.LineRange(hi)

	enterInsert := it.applyOperator(op, lo, hi, true)
	it.finishOperator(enterInsert)
}

func (it *Interpreter) lineContentEnd(pos int) int {
	start, end := it.host.LineRange(pos)
	content, _ := splitLineTerminator(it.host.Slice(start, end))
	return start + len(content)
}

func (it *Interpreter) openLine(above bool) {
	pos := it.cursor()
	var at int
	if above {
		at, _ = it.host.LineRange(pos)
	} else {
		_, at = it.host.LineRange(pos)
	}
	it.replace(at, at, []uint16{0x0A})
	it.setCursor(at)
	it.state.Mode = ModeInsert
}

func (it *Interpreter) moveJK(down bool, cnt int) {
	now := it.host.Now()
	if !it.state.lastJKTime.IsZero() && now.Sub(it.state.lastJKTime) < jkAccelWindow {
		it.state.jkRepeatCount++
	} else {
		it.state.jkRepeatCount = 0
	}
	it.state.lastJKTime = now

	mult := 1 + minInt(int(it.state.jkRepeatCount/2), 4)
	n := cnt * mult
	if down {
		it.setCursor(it.host.MoveLineDown(n))
	} else {
		it.setCursor(it.host.MoveLineUp(n))
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
