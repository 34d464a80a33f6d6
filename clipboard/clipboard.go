// Package clipboard adapts the system clipboard to the modal.Clipboard
// interface for the notevim demo host.
package clipboard

import "github.com/atotto/clipboard"

// System reads and writes the OS clipboard via atotto/clipboard.
type System struct{}

// ReadString returns the clipboard's current text. ok is false if the
// clipboard is empty or unreadable (no image/file content, no error).
func (System) ReadString() (string, bool) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", false
	}
	return text, text != ""
}

// WriteString writes s to the system clipboard, returning whether it
// succeeded.
func (System) WriteString(s string) bool {
	return clipboard.WriteAll(s) == nil
}
