package modal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnterVisualCharwise(t *testing.T) {
	it, _ := newFixture("hello world")
	it.HandleKey(Key{Rune: 'v'})
	require.Equal(t, ModeVisual, it.Mode(), "v should enter Visual mode")
	for i := 0; i < 4; i++ {
		it.HandleKey(Key{Rune: 'l'})
	}
	lo, hi := it.host.Selection()
	require.Equal(t, 0, lo)
	require.Equal(t, 5, hi)
}

func TestVisualYank(t *testing.T) {
	it, b := newFixture("hello world")
	it.HandleKey(Key{Rune: 'v'})
	for i := 0; i < 4; i++ {
		it.HandleKey(Key{Rune: 'l'})
	}
	it.HandleKey(Key{Rune: 'y'})
	text, ok := b.ReadString()
	require.True(t, ok)
	require.Equal(t, "hello", text)
	require.Equal(t, "hello world", b.Text(), "yank must not mutate the buffer")
	require.Equal(t, ModeNormal, it.Mode(), "y should return to Normal mode")
	require.Equal(t, 0, it.cursor(), "expected cursor collapsed to selection start")
}

func TestVisualDelete(t *testing.T) {
	it, b := newFixture("hello world")
	it.HandleKey(Key{Rune: 'v'})
	for i := 0; i < 4; i++ {
		it.HandleKey(Key{Rune: 'l'})
	}
	it.HandleKey(Key{Rune: 'd'})
	require.Equal(t, " world", b.Text())
	require.Equal(t, ModeNormal, it.Mode(), "d should return to Normal mode")
}

func TestVisualChange(t *testing.T) {
	it, b := newFixture("hello world")
	it.HandleKey(Key{Rune: 'v'})
	for i := 0; i < 4; i++ {
		it.HandleKey(Key{Rune: 'l'})
	}
	it.HandleKey(Key{Rune: 'c'})
	require.Equal(t, " world", b.Text())
	require.Equal(t, ModeInsert, it.Mode(), "c should enter Insert mode")
}

func TestVisualLineSnapsWholeLines(t *testing.T) {
	it, b := newFixture("one\ntwo\nthree\n")
	it.setCursor(5) // inside "two"
	it.HandleKey(Key{Rune: 'V'})
	require.Equal(t, ModeVisualLine, it.Mode(), "V should enter VisualLine mode")
	it.HandleKey(Key{Rune: 'j'}) // extend down into "three"
	lo, hi := it.host.Selection()
	require.Equal(t, 4, lo)
	require.Equal(t, 14, hi)
	it.HandleKey(Key{Rune: 'd'})
	require.Equal(t, "one\n", b.Text())
}

func TestVisualEscapeCancels(t *testing.T) {
	it, b := newFixture("hello world")
	it.HandleKey(Key{Rune: 'v'})
	for i := 0; i < 4; i++ {
		it.HandleKey(Key{Rune: 'l'})
	}
	it.HandleKey(Key{Special: KeyEscape})
	require.Equal(t, ModeNormal, it.Mode())
	require.Equal(t, "hello world", b.Text(), "Escape must not mutate the buffer")
	require.Equal(t, 4, it.cursor(), "expected cursor left at the visual cursor")
}

func TestVisualToggleOffReturnsToNormal(t *testing.T) {
	it, _ := newFixture("hello world")
	it.HandleKey(Key{Rune: 'v'})
	it.HandleKey(Key{Rune: 'v'})
	require.Equal(t, ModeNormal, it.Mode(), "pressing v again should cancel Visual mode")
}

func TestVisualSwitchCharwiseToLinewise(t *testing.T) {
	it, _ := newFixture("one\ntwo\nthree\n")
	it.HandleKey(Key{Rune: 'v'})
	it.HandleKey(Key{Rune: 'V'})
	require.Equal(t, ModeVisualLine, it.Mode(), "V while in Visual should switch to VisualLine, not cancel")
}
