package modal

import (
	"notevim/reference"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindNextForwardWraps(t *testing.T) {
	b := reference.New("foo bar foo")
	pos, ok := findNext(b, "foo", 0, true)
	require.True(t, ok)
	require.Equal(t, 8, pos)
	pos, ok = findNext(b, "foo", 8, true)
	require.True(t, ok, "expected wraparound to succeed")
	require.Equal(t, 0, pos)
}

func TestFindNextBackwardWraps(t *testing.T) {
	b := reference.New("foo bar foo")
	pos, ok := findNext(b, "foo", 8, false)
	require.True(t, ok)
	require.Equal(t, 0, pos)
	pos, ok = findNext(b, "foo", 1, false)
	require.True(t, ok, "expected wraparound to succeed")
	require.Equal(t, 8, pos)
}

func TestFindNextNoMatch(t *testing.T) {
	b := reference.New("abc")
	_, ok := findNext(b, "xyz", 0, true)
	require.False(t, ok)
}

func TestExecuteFindMovesCursor(t *testing.T) {
	it, _ := newFixture("abcXdefXghi")
	it.HandleKey(Key{Rune: 'f'})
	it.HandleKey(Key{Rune: 'X'})
	require.Equal(t, 3, it.cursor())
}

func TestExecuteFindTill(t *testing.T) {
	it, _ := newFixture("abcXdef")
	it.HandleKey(Key{Rune: 't'})
	it.HandleKey(Key{Rune: 'X'})
	require.Equal(t, 2, it.cursor())
}

func TestExecuteFindMissBeeps(t *testing.T) {
	it, b := newFixture("abc")
	it.HandleKey(Key{Rune: 'f'})
	it.HandleKey(Key{Rune: 'Z'})
	require.Equal(t, 1, b.Beeps())
	require.Equal(t, 0, it.cursor(), "a miss must not move the cursor")
}

func TestDeleteFindComposesOperator(t *testing.T) {
	it, b := newFixture("abcXdefXghi")
	it.HandleKey(Key{Rune: 'd'})
	it.HandleKey(Key{Rune: 'f'})
	it.HandleKey(Key{Rune: 'X'})
	require.Equal(t, "defXghi", b.Text())
}

func TestRepeatFindSemicolonAndComma(t *testing.T) {
	it, _ := newFixture("abcXdefXghiXjkl")
	it.HandleKey(Key{Rune: 'f'})
	it.HandleKey(Key{Rune: 'X'})
	require.Equal(t, 3, it.cursor())
	it.HandleKey(Key{Rune: ';'})
	require.Equal(t, 7, it.cursor(), "expected ; to repeat forward")
	it.HandleKey(Key{Rune: ','})
	require.Equal(t, 3, it.cursor(), "expected , to repeat in reverse")
}

func TestSlashSearchMovesCursor(t *testing.T) {
	it, _ := newFixture("one two three two")
	it.HandleKey(Key{Rune: '/'})
	for _, r := range "two" {
		it.HandleKey(Key{Rune: r})
	}
	it.HandleKey(Key{Special: KeyEnter})
	require.Equal(t, 4, it.cursor())
	require.Equal(t, ModeNormal, it.Mode(), "Enter should dispatch and return to Normal")
}

func TestSearchRepeatNAndReverseN(t *testing.T) {
	it, _ := newFixture("one two three two")
	it.HandleKey(Key{Rune: '/'})
	for _, r := range "two" {
		it.HandleKey(Key{Rune: r})
	}
	it.HandleKey(Key{Special: KeyEnter})
	require.Equal(t, 4, it.cursor())
	it.HandleKey(Key{Rune: 'n'})
	require.Equal(t, 14, it.cursor(), "expected n to advance")
	it.HandleKey(Key{Rune: 'N'})
	require.Equal(t, 4, it.cursor(), "expected N to reverse back")
}

func TestSearchWordUnderCursorStar(t *testing.T) {
	it, _ := newFixture("cat dog cat")
	it.HandleKey(Key{Rune: '*'})
	require.Equal(t, 8, it.cursor())
}

func TestPasteAfterCharwise(t *testing.T) {
	it, b := newFixture("ac")
	b.WriteString("b")
	it.HandleKey(Key{Rune: 'p'})
	require.Equal(t, "abc", b.Text())
	require.Equal(t, 1, it.cursor())
}

func TestPasteBeforeCharwise(t *testing.T) {
	it, b := newFixture("ac")
	b.WriteString("b")
	it.setCursor(1) // on 'c'
	it.HandleKey(Key{Rune: 'P'})
	require.Equal(t, "abc", b.Text())
	require.Equal(t, 1, it.cursor())
}

func TestPasteAfterLinewise(t *testing.T) {
	it, b := newFixture("one\ntwo\n")
	b.WriteString("  mid\n")
	it.HandleKey(Key{Rune: 'p'})
	require.Equal(t, "one\n  mid\ntwo\n", b.Text())
	require.Equal(t, 6, it.cursor(), "expected cursor on the pasted line's first non-blank")
}

func TestPasteBeforeLinewise(t *testing.T) {
	it, b := newFixture("one\ntwo\n")
	b.WriteString("mid\n")
	it.setCursor(4) // start of "two"
	it.HandleKey(Key{Rune: 'P'})
	require.Equal(t, "one\nmid\ntwo\n", b.Text())
	require.Equal(t, 4, it.cursor())
}

func TestPasteNoClipboardIsNoop(t *testing.T) {
	it, b := newFixture("abc")
	it.HandleKey(Key{Rune: 'p'})
	require.Equal(t, "abc", b.Text(), "paste with nothing on the clipboard must not mutate")
}
