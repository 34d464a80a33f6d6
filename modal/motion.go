package modal

import "unicode"

// isLetterOrDigit reports whether r is a Unicode letter or digit, used to
// classify small-word characters. Character-class tests are an inherent
// stdlib concern (see DESIGN.md): no pack dependency offers alnum
// classification that isn't itself a thin wrapper over this.
func isLetterOrDigit(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Motion Engine: pure functions of (buffer, cursor) -> target index, per
// SPEC_FULL.md §4.4. None of these mutate the buffer or the interpreter's
// state; callers repeat them `count` times and decide what to do with the
// resulting range.

const (
	classWhitespace = 0
	classWord       = 1
	classOther      = 2
)

func isWhitespace(u uint16) bool {
	return u == 0x20 || u == 0x09 || u == 0x0A || u == 0x0D
}

func isWordChar(u uint16) bool {
	r := rune(u)
	return r == '_' || isLetterOrDigit(r)
}

// classOf returns the small-word character class: whitespace, word
// (alnum/_), or other (punctuation runs are their own word).
func classOf(u uint16) int {
	switch {
	case isWhitespace(u):
		return classWhitespace
	case isWordChar(u):
		return classWord
	default:
		return classOther
	}
}

// classOfBig collapses word/other into one non-whitespace class, for
// BIG-word (W/B/E) motions.
func classOfBig(u uint16) int {
	if isWhitespace(u) {
		return classWhitespace
	}
	return classWord
}

// wordForward implements w/W: skip the class run under pos, then skip
// whitespace, landing on the first non-whitespace code unit.
func wordForward(b BufferReader, pos int, big bool) int {
	n := b.Len()
	if pos >= n {
		return n
	}
	classAt := classOf
	if big {
		classAt = classOfBig
	}
	cur := classAt(b.CharAt(pos))
	i := pos
	for i < n && classAt(b.CharAt(i)) == cur {
		i++
	}
	for i < n && isWhitespace(b.CharAt(i)) {
		i++
	}
	return i
}

// wordBackward implements b/B: step back one, skip whitespace backward,
// then skip backward while the class matches the landing char's class.
func wordBackward(b BufferReader, pos int, big bool) int {
	if pos <= 0 {
		return 0
	}
	classAt := classOf
	if big {
		classAt = classOfBig
	}
	j := pos - 1
	for j > 0 && isWhitespace(b.CharAt(j)) {
		j--
	}
	if j == 0 {
		return 0
	}
	cls := classAt(b.CharAt(j))
	for j > 0 && classAt(b.CharAt(j-1)) == cls {
		j--
	}
	return j
}

// wordEnd implements e/E: step one forward, skip whitespace, then advance
// while the next code unit shares the class and isn't a line terminator.
// If already on the last word character of the buffer, stays put.
func wordEnd(b BufferReader, pos int, big bool) int {
	n := b.Len()
	if n == 0 {
		return 0
	}
	classAt := classOf
	if big {
		classAt = classOfBig
	}
	last := n - 1
	if pos >= last {
		return last
	}
	i := pos + 1
	for i < n && isWhitespace(b.CharAt(i)) {
		i++
	}
	if i >= n {
		return pos
	}
	cls := classAt(b.CharAt(i))
	for i < last && classAt(b.CharAt(i+1)) == cls && b.CharAt(i+1) != 0x0A && b.CharAt(i+1) != 0x0D {
		i++
	}
	return i
}

// lineStart returns the first code unit of the line containing pos ('0').
func lineStart(b BufferReader, pos int) int {
	start, _ := b.LineRange(pos)
	return start
}

// lineFirstNonBlank returns the first non-whitespace code unit of the
// line containing pos ('^'), or the line start if the line is blank.
func lineFirstNonBlank(b BufferReader, pos int) int {
	start, end := b.LineRange(pos)
	for i := start; i < end; i++ {
		u := b.CharAt(i)
		if u == 0x0A || u == 0x0D {
			return start
		}
		if !isWhitespace(u) {
			return i
		}
	}
	return start
}

// lineEnd returns the last content code unit of the line containing pos
// ('$'), excluding a trailing \n/\r. On an empty line returns the line's
// own start index.
func lineEnd(b BufferReader, pos int) int {
	start, end := b.LineRange(pos)
	i := end
	for i > start {
		u := b.CharAt(i - 1)
		if u == 0x0A || u == 0x0D {
			i--
			continue
		}
		break
	}
	if i == start {
		return start
	}
	return i - 1
}

// findChar scans for target within the current line per SPEC_FULL.md
// §4.4/§4.11, starting at cursor±1 and stopping at the line terminator.
// kind selects direction and inclusive (f/F) vs till (t/T) semantics;
// the returned index is already adjusted for t/T.
func findChar(b BufferReader, pos int, target uint16, kind FindKind) (int, bool) {
	start, end := b.LineRange(pos)
	contentEnd := end
	for contentEnd > start {
		u := b.CharAt(contentEnd - 1)
		if u == 0x0A || u == 0x0D {
			contentEnd--
			continue
		}
		break
	}

	switch kind {
	case FindForward, FindTillForward:
		for i := pos + 1; i < contentEnd; i++ {
			if b.CharAt(i) == target {
				if kind == FindTillForward {
					return i - 1, true
				}
				return i, true
			}
		}
	case FindBackward, FindTillBackward:
		for i := pos - 1; i >= start; i-- {
			if b.CharAt(i) == target {
				if kind == FindTillBackward {
					return i + 1, true
				}
				return i, true
			}
		}
	}
	return 0, false
}

// wordUnderCursor returns the [start, end) range of the small-word run at
// or after pos, for '*'/'#' (SPEC_FULL.md §4.12). If pos sits on
// whitespace or punctuation, scans forward to the next word-char run.
func wordUnderCursor(b BufferReader, pos int) (start, end int, ok bool) {
	n := b.Len()
	i := pos
	for i < n && !isWordChar(b.CharAt(i)) {
		i++
	}
	if i >= n {
		return 0, 0, false
	}
	start = i
	for start > 0 && isWordChar(b.CharAt(start-1)) {
		start--
	}
	end = i
	for end < n && isWordChar(b.CharAt(end)) {
		end++
	}
	return start, end, true
}
