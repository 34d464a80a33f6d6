package modal

import (
	"notevim/reference"
	"testing"

	"github.com/stretchr/testify/require"
)

func newFixture(text string) (*Interpreter, *reference.Buffer) {
	b := reference.New(text)
	it := New(b)
	return it, b
}

func TestApplyOperatorDelete(t *testing.T) {
	it, b := newFixture("hello world")
	enterInsert := it.applyOperator(OpDelete, 0, 6, false)
	require.False(t, enterInsert, "delete should not enter insert mode")
	require.Equal(t, "world", b.Text())
	require.Equal(t, 0, it.cursor())
}

func TestApplyOperatorYank(t *testing.T) {
	it, b := newFixture("hello world")
	it.applyOperator(OpYank, 0, 5, false)
	require.Equal(t, "hello world", b.Text(), "yank must not mutate the buffer")
	text, ok := b.ReadString()
	require.True(t, ok)
	require.Equal(t, "hello", text)
}

func TestApplyOperatorChange(t *testing.T) {
	it, _ := newFixture("hello world")
	enterInsert := it.applyOperator(OpChange, 0, 5, false)
	require.True(t, enterInsert, "change should enter insert mode")
}

func TestExecuteChangeLine(t *testing.T) {
	it, b := newFixture("  x = 1\n  y = 2\n")
	it.setCursor(2)
	it.executeChangeLine()
	require.Equal(t, "  \n  y = 2\n", b.Text())
	require.Equal(t, 2, it.cursor())
}

func TestJoin(t *testing.T) {
	it, b := newFixture("line1\nline2")
	it.setCursor(0)
	require.True(t, it.join(), "expected join to succeed")
	require.Equal(t, "line1 line2", b.Text())
	require.Equal(t, 5, it.cursor())
}

func TestJoinNoNextLine(t *testing.T) {
	it, _ := newFixture("onlyline")
	it.setCursor(0)
	require.False(t, it.join(), "join with no next line should fail")
}

func TestReplaceChar(t *testing.T) {
	it, b := newFixture("hello")
	it.setCursor(0)
	it.replaceChar('H', 1)
	require.Equal(t, "Hello", b.Text())
	require.Equal(t, 0, it.cursor(), "expected cursor to stay at 0")
}

func TestReplaceCharCount(t *testing.T) {
	it, b := newFixture("hello")
	it.setCursor(0)
	it.replaceChar('x', 3)
	require.Equal(t, "xxxlo", b.Text())
	require.Equal(t, 2, it.cursor())
}

func TestReplaceCharPastEnd(t *testing.T) {
	it, b := newFixture("hi")
	it.setCursor(0)
	it.replaceChar('x', 5)
	require.Equal(t, "hi", b.Text(), "replaceChar past the buffer end must not mutate")
	require.Equal(t, 1, b.Beeps())
}

func TestHostRejectsEdit(t *testing.T) {
	it, b := newFixture("hello")
	b.SetRejectEdits(true)
	it.applyOperator(OpDelete, 0, 5, false)
	require.Equal(t, "hello", b.Text(), "a host that rejects ShouldChangeText must not be mutated")
}
