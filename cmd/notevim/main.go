// Notevim is a terminal demo host for the modal package: it loads a
// file into an in-memory UTF-16 buffer, drives the interpreter with raw
// keystrokes, and redraws a plain status-line view after every key.
//
// This is the only place in the module that touches os.Args or file I/O,
// and the only importer of the clipboard and term packages, which wrap
// the system clipboard and terminal ioctls; package modal imports none
// of them.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode/utf16"

	"notevim/clipboard"
	"notevim/modal"
	"notevim/reference"
	"notevim/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: notevim <file>")
	}
	path := os.Args[1]

	contents, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	width, height, err := term.TerminalSize()
	if err != nil {
		return fmt.Errorf("detecting terminal: %w", err)
	}

	tty, err := term.NewTerminal(os.Stdin)
	if err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}

	term.EnterAltScreen(os.Stdout)
	if err := tty.EnterRawMode(); err != nil {
		term.ExitAltScreen(os.Stdout)
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer func() {
		tty.RestoreMode()
		term.ExitAltScreen(os.Stdout)
	}()

	host := &fileHost{
		Buffer: reference.New(string(contents)),
		System: clipboard.System{},
		path:   path,
	}
	it := modal.New(host)
	canvas := term.NewCanvas(width, height)
	in := bufio.NewReader(os.Stdin)

	draw(canvas, host, it)
	canvas.RenderTo(os.Stdout)

	for !host.quit {
		key, err := readKey(in)
		if err != nil {
			break
		}
		it.HandleKey(key)
		draw(canvas, host, it)
		canvas.RenderTo(os.Stdout)
	}

	return nil
}

// fileHost adapts reference.Buffer to persist to a real file on Save and
// to end the read loop on Close; every other modal.Host method is the
// in-memory Buffer's own.
type fileHost struct {
	*reference.Buffer
	clipboard.System
	path string
	quit bool
}

// ReadString and WriteString resolve the ambiguity between the embedded
// Buffer's own (in-memory, test-only) clipboard stub and the embedded
// System's real OS clipboard: notevim always wants the OS clipboard.
func (h *fileHost) ReadString() (string, bool) { return h.System.ReadString() }
func (h *fileHost) WriteString(s string) bool  { return h.System.WriteString(s) }

func (h *fileHost) Save() bool {
	if err := os.WriteFile(h.path, []byte(h.Buffer.Text()), 0o644); err != nil {
		h.Buffer.Beep()
		return false
	}
	h.Buffer.Save()
	return true
}

func (h *fileHost) Close() bool {
	h.Buffer.Close()
	h.quit = true
	return true
}

// readKey decodes one key event from raw terminal input: a lone ESC, an
// arrow-key escape sequence, Enter, Backspace, or a literal rune.
func readKey(r *bufio.Reader) (modal.Key, error) {
	ch, _, err := r.ReadRune()
	if err != nil {
		return modal.Key{}, err
	}

	switch ch {
	case 0x1b:
		next, _, err := r.ReadRune()
		if err != nil || next != '[' {
			return modal.Key{Special: modal.KeyEscape}, nil
		}
		dir, _, err := r.ReadRune()
		if err != nil {
			return modal.Key{Special: modal.KeyEscape}, nil
		}
		switch dir {
		case 'A':
			return modal.Key{Special: modal.KeyArrowUp}, nil
		case 'B':
			return modal.Key{Special: modal.KeyArrowDown}, nil
		case 'C':
			return modal.Key{Special: modal.KeyArrowRight}, nil
		case 'D':
			return modal.Key{Special: modal.KeyArrowLeft}, nil
		}
		return modal.Key{Special: modal.KeyEscape}, nil
	case '\r', '\n':
		return modal.Key{Special: modal.KeyEnter}, nil
	case 0x7f, 0x08:
		return modal.Key{Special: modal.KeyBackspace}, nil
	}
	return modal.Key{Rune: ch}, nil
}

// draw renders the buffer text and a mode status line to canvas. It is a
// deliberately plain rendering: no line wrapping, no horizontal scroll,
// since notevim exists to exercise the interpreter, not to be a full
// editor UI.
func draw(canvas *term.Canvas, host *fileHost, it *modal.Interpreter) {
	canvas.Clear()

	text := host.Buffer.Text()
	lines := strings.Split(text, "\n")
	statusRow := canvas.Height() - 1
	ruleRow := statusRow - 1

	for y := 0; y < ruleRow && y < len(lines); y++ {
		canvas.WriteString(0, y, lines[y], term.Style{})
	}

	cursor, _ := host.Buffer.Selection()
	row, col := indexToRowCol(host.Buffer, cursor)
	if row < ruleRow {
		line := lines[row]
		runes := []rune(line)
		r := ' '
		if col < len(runes) {
			r = runes[col]
		}
		canvas.Set(col, row, r, term.Style{Reverse: true})
	}

	canvas.DrawHLine(0, ruleRow, canvas.Width(), term.SingleBox.Horizontal, term.Style{Dim: true})
	canvas.WriteString(0, statusRow, term.TruncateToWidth(modeStatus(it), canvas.Width()), term.Style{Bold: true})
}

func modeStatus(it *modal.Interpreter) string {
	return it.Mode().String()
}

// indexToRowCol converts a UTF-16 code-unit offset into the buffer into
// a (row, column) pair of rune counts, for placing the cursor cell.
func indexToRowCol(buf *reference.Buffer, idx int) (row, col int) {
	s := string(utf16.Decode(buf.Slice(0, idx)))
	row = strings.Count(s, "\n")
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		col = len([]rune(s[i+1:]))
	} else {
		col = len([]rune(s))
	}
	return row, col
}
