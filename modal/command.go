package modal

import "strings"

// Command Line (SPEC_FULL.md §4.9): ':' enters ex-command entry, '/' and
// '?' enter forward/backward search entry. All three share the same
// character-accumulation and cancel behavior; only Enter's dispatch
// differs by commandKind.

// enterCommand switches to Command mode with an empty buffer prefixed by
// prefix (':', '/', or '?').
func (it *Interpreter) enterCommand(prefix byte) {
	it.state.Mode = ModeCommand
	it.state.commandKind = prefix
	it.state.commandBuffer = string(prefix)
}

// handleCommand accumulates commandBuffer until Enter dispatches it or
// Escape/a final Backspace cancels back to Normal.
func (it *Interpreter) handleCommand(key Key) bool {
	s := &it.state

	switch key.Special {
	case KeyEscape:
		it.cancelCommand()
		return true
	case KeyEnter:
		it.dispatchCommand()
		return true
	case KeyBackspace:
		if len(s.commandBuffer) <= 1 {
			it.cancelCommand()
			return true
		}
		s.commandBuffer = s.commandBuffer[:len(s.commandBuffer)-1]
		return true
	}

	if key.Rune != 0 {
		s.commandBuffer += string(key.Rune)
	}
	return true
}

func (it *Interpreter) cancelCommand() {
	it.state.commandBuffer = ""
	it.state.commandKind = 0
	it.state.Mode = ModeNormal
}

// dispatchCommand runs the accumulated buffer against the ex-command
// subset (commandKind ':') or as a literal search pattern (commandKind
// '/' or '?'), then returns to Normal.
func (it *Interpreter) dispatchCommand() {
	s := &it.state
	text := s.commandBuffer
	kind := s.commandKind
	s.commandBuffer = ""
	s.commandKind = 0
	s.Mode = ModeNormal

	if len(text) == 0 {
		return
	}
	body := text[1:] // drop the leading ':'/'/'/'?'

	switch kind {
	case ':':
		it.executeExCommand(body)
	case '/':
		s.searchPattern = body
		s.searchForward = true
		if body != "" {
			it.runSearch(true)
		}
	case '?':
		s.searchPattern = body
		s.searchForward = false
		if body != "" {
			it.runSearch(false)
		}
	}
}

// executeExCommand implements the ex-command subset of spec.md §4.9:
// w (write), wq/x (write then close), q (close, no unsaved-changes check
// since the host owns dirty-state).
func (it *Interpreter) executeExCommand(body string) {
	switch strings.ToLower(strings.TrimSpace(body)) {
	case "w":
		it.host.Save()
	case "wq", "x":
		if it.host.Save() {
			it.host.Close()
		}
	case "q":
		it.host.Close()
	default:
		it.host.Beep()
	}
}
