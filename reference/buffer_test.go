package reference

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAndText(t *testing.T) {
	b := New("hello")
	require.Equal(t, "hello", b.Text())
	require.Equal(t, 5, b.Len())
}

func TestReplaceRange(t *testing.T) {
	b := New("hello")
	b.ReplaceRange(1, 3, []uint16{'E', 'L'})
	require.Equal(t, "hELlo", b.Text())
}

func TestUndo(t *testing.T) {
	b := New("hello")
	b.SetSelection(0, 0)
	b.ReplaceRange(0, 5, nil)
	require.Equal(t, "", b.Text(), "expected empty text after delete")
	require.True(t, b.Undo(), "expected Undo to succeed")
	require.Equal(t, "hello", b.Text(), "expected text restored after undo")
}

func TestUndoEmptyHistory(t *testing.T) {
	b := New("hello")
	require.False(t, b.Undo(), "Undo on empty history should return false")
}

func TestShouldChangeTextRejected(t *testing.T) {
	b := New("hello")
	b.SetRejectEdits(true)
	require.False(t, b.ShouldChangeText(0, 1, []uint16{'x'}), "expected ShouldChangeText to reject when rejectEdits is set")
}

func TestLineRange(t *testing.T) {
	b := New("aa\nbb\ncc")
	start, end := b.LineRange(4) // inside "bb"
	require.Equal(t, 3, start)
	require.Equal(t, 6, end)
}

func TestMoveLineDownUp(t *testing.T) {
	b := New("aaa\nb\nccccc")
	b.SetSelection(1, 1) // column 1 of line 0 ("aaa")
	down := b.MoveLineDown(1)
	require.Equal(t, 5, down, "\"b\" is 1 char; column 1 clamps to just past it")
	b.SetSelection(down, down)
	up := b.MoveLineUp(1)
	require.Equal(t, 1, up, "expected MoveLineUp to return to column 1")
}

func TestClipboard(t *testing.T) {
	b := New("")
	_, ok := b.ReadString()
	require.False(t, ok, "expected empty clipboard to report ok=false")
	b.WriteString("hi")
	text, ok := b.ReadString()
	require.True(t, ok)
	require.Equal(t, "hi", text)
}

func TestSaveClearsCloseSets(t *testing.T) {
	b := New("x")
	b.ReplaceRange(0, 0, []uint16{'y'})
	b.DidChangeText()
	require.True(t, b.Dirty(), "expected buffer to be dirty after an edit")
	b.Save()
	require.False(t, b.Dirty(), "expected Save to clear dirty")
	b.Close()
	require.True(t, b.Closed(), "expected Close to set closed")
}
