// Package input translates raw key events into fully resolved engine
// commands. The two-step modal scheme (modifier held = resize mode,
// modifier just released = pending directional select) lives here as a
// small state machine; the engine only ever sees resolved commands.
package input

import "github.com/frametile/frametile/internal/layout"

// Key is a decoded key event, already mapped from the device layer.
type Key int

const (
	KeyOther Key = iota
	KeyModifier
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySplitHorizontal
	KeySplitVertical
	KeyClose
	KeyKeepOnly
)

// Phase is the modal state of the machine.
type Phase int

const (
	// PhaseIdle routes plain command keys straight through.
	PhaseIdle Phase = iota
	// PhaseModifierHeld accumulates resize deltas from arrow keys.
	PhaseModifierHeld
	// PhaseJustReleased arms a one-shot directional select: the next
	// arrow selects, any other key cancels.
	PhaseJustReleased
)

// Machine is the modal input state machine. Terminals deliver no key
// release events, so the modifier acts as a toggle: pressing it enters
// resize mode, pressing it again leaves resize mode and arms the
// one-shot select.
type Machine struct {
	phase Phase
	step  int
	dx    int
	dy    int
}

// New creates a machine accumulating step canvas units per arrow press.
func New(step int) *Machine {
	if step < 1 {
		step = 1
	}
	return &Machine{step: step}
}

// Phase returns the current modal state, for status display.
func (m *Machine) Phase() Phase { return m.phase }

// HandleKey feeds one key press into the machine and returns the
// resolved command, if the press produced one. Resize deltas are not
// returned here; they accumulate until FlushResize.
func (m *Machine) HandleKey(key Key) layout.Command {
	switch m.phase {
	case PhaseModifierHeld:
		switch key {
		case KeyModifier:
			m.phase = PhaseJustReleased
			return nil
		case KeyUp:
			m.dy -= m.step
			return nil
		case KeyDown:
			m.dy += m.step
			return nil
		case KeyLeft:
			m.dx -= m.step
			return nil
		case KeyRight:
			m.dx += m.step
			return nil
		}
		return commandForKey(key)

	case PhaseJustReleased:
		m.phase = PhaseIdle
		switch key {
		case KeyUp:
			return layout.SelectDirectionCmd{Dir: layout.DirUp}
		case KeyDown:
			return layout.SelectDirectionCmd{Dir: layout.DirDown}
		case KeyLeft:
			return layout.SelectDirectionCmd{Dir: layout.DirLeft}
		case KeyRight:
			return layout.SelectDirectionCmd{Dir: layout.DirRight}
		case KeyModifier:
			m.phase = PhaseModifierHeld
			return nil
		}
		// Any other key cancels the pending select and still performs
		// its normal action.
		return commandForKey(key)

	default:
		if key == KeyModifier {
			m.phase = PhaseModifierHeld
			return nil
		}
		return commandForKey(key)
	}
}

// FlushResize drains the accumulated resize deltas, one flush per
// render tick while resize mode is active.
func (m *Machine) FlushResize() (layout.Command, bool) {
	if m.phase != PhaseModifierHeld || (m.dx == 0 && m.dy == 0) {
		m.dx, m.dy = 0, 0
		return nil, false
	}
	cmd := layout.ResizeActiveByCmd{DX: m.dx, DY: m.dy}
	m.dx, m.dy = 0, 0
	return cmd, true
}

func commandForKey(key Key) layout.Command {
	switch key {
	case KeySplitHorizontal:
		return layout.SplitHorizontalCmd{}
	case KeySplitVertical:
		return layout.SplitVerticalCmd{}
	case KeyClose:
		return layout.CloseActiveCmd{}
	case KeyKeepOnly:
		return layout.KeepActiveOnlyCmd{}
	default:
		return nil
	}
}
