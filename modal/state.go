package modal

import "time"

// Mode is one of the five editor modes.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeVisual
	ModeVisualLine
	ModeCommand
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeVisual:
		return "VISUAL"
	case ModeVisualLine:
		return "VISUAL LINE"
	case ModeCommand:
		return "COMMAND"
	default:
		return "UNKNOWN"
	}
}

// Operator is a pending operator awaiting a motion.
type Operator int

const (
	OpNone Operator = iota
	OpDelete
	OpYank
	OpChange
)

// FindKind identifies a character-search motion: f/F (inclusive) or t/T
// (exclusive, stop just short of the target). Added alongside f/F per
// SPEC_FULL.md §4.11.
type FindKind int

const (
	FindNone FindKind = iota
	FindForward
	FindBackward
	FindTillForward
	FindTillBackward
)

// gArmWindow is how long a lone 'g' stays armed waiting for a second 'g'.
const gArmWindow = 500 * time.Millisecond

// jkAccelWindow is the key-repeat interval under which j/k presses
// accelerate.
const jkAccelWindow = 150 * time.Millisecond

// State is the interpreter's own state; the text itself lives in the Host.
type State struct {
	Mode Mode

	operator Operator // pending_operator

	pendingG   bool      // pending_g
	gArmedAt   time.Time // when pending_g was armed

	pendingR bool // pending_r

	pendingFind FindKind // pending_f (extended with t/T)

	countPrefix uint32 // count_prefix

	visualAnchor int // valid only while Mode is Visual/VisualLine
	visualCursor int // moving end of the visual selection; host.Selection()
	                 // holds the rendered [lo,hi) span, not this raw position

	commandBuffer string // ex/search text, including its :/ ? prefix
	commandKind   byte   // ':', '/', or '?'

	searchPattern string
	searchForward bool

	lastFindChar    rune
	lastFindKind    FindKind
	lastFindForward bool // not set or read; ; and , take direction from lastFindKind

	lastJKTime    time.Time
	jkRepeatCount uint32
}

// Interpreter routes key events to the mode-specific dispatcher and keeps
// no buffer data of its own.
type Interpreter struct {
	state State
	host  Host
}

// New creates an interpreter starting in Normal mode.
func New(host Host) *Interpreter {
	it := &Interpreter{host: host}
	it.updatePresentation()
	return it
}

// Mode returns the interpreter's current mode.
func (it *Interpreter) Mode() Mode { return it.state.Mode }

// SpecialKey names a non-printable key the host must translate from its
// own input representation.
type SpecialKey int

const (
	KeyNone SpecialKey = iota
	KeyEscape
	KeyEnter
	KeyBackspace
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
)

// Key is a single input event: (keycode, characters, shift_pressed) per
// spec.md §6, collapsed into one struct. Rune is the typed character for
// printable keys; Special is set instead for control keys.
type Key struct {
	Rune    rune
	Special SpecialKey
	Shift   bool
}

// getCount returns the effective count: max(1, count_prefix).
func (s *State) getCount() int {
	if s.countPrefix == 0 {
		return 1
	}
	return int(s.countPrefix)
}

// resetPending clears every pending_* flag and the count prefix. Escape,
// an unmapped key, a finished operator or find, and entering Visual or
// Command call this; other commands clear only the count prefix.
func (s *State) resetPending() {
	s.operator = OpNone
	s.pendingG = false
	s.pendingR = false
	s.pendingFind = FindNone
	s.countPrefix = 0
}

// checkGTimeout clears pending_g if more than gArmWindow has elapsed,
// per spec.md §4.8 — a stale timer firing must check pending_g is still
// true before acting; here we simply recheck lazily on the next key.
func (s *State) checkGTimeout(now time.Time) {
	if s.pendingG && now.Sub(s.gArmedAt) > gArmWindow {
		s.pendingG = false
	}
}
