package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termpaint/core"
)

// Machine is the input state machine
// Parses tcell events into semantic Intents
type Machine struct {
	keyTable *KeyTable
	pointer  PointerState
}

// NewMachine creates an input machine; nil selects the default key table
func NewMachine(kt *KeyTable) *Machine {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	return &Machine{
		keyTable: kt,
		pointer:  PointerUp,
	}
}

// KeyTable returns the active bindings
func (m *Machine) KeyTable() *KeyTable {
	return m.keyTable
}

// Pointer returns the tracked primary button state
func (m *Machine) Pointer() PointerState {
	return m.pointer
}

// Reset clears pending pointer state
func (m *Machine) Reset() {
	m.pointer = PointerUp
}

// Process parses a tcell event and returns an Intent
// Returns nil for events that carry no action (unbound keys, releases, other buttons)
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return &Intent{Type: IntentResize, Size: core.Size{Rows: h, Columns: w}}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	it := m.keyTable.Lookup(ev)
	if it == IntentNone {
		return nil
	}
	return &Intent{Type: it}
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	held := ev.Buttons()&tcell.Button1 != 0

	switch {
	case held && m.pointer == PointerUp:
		m.pointer = PointerDown
		return &Intent{Type: IntentPointerPress, Point: core.Point{X: x, Y: y}}
	case held:
		return &Intent{Type: IntentPointerDrag, Point: core.Point{X: x, Y: y}}
	default:
		// Release, motion without buttons, other buttons and wheel
		m.pointer = PointerUp
		return nil
	}
}
