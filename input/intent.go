package input

import "github.com/lixenwraith/termpaint/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, Ctrl+C
	IntentEscape      // ESC key, hides the dialog
	IntentToggleSound // Ctrl+S
	IntentResize      // Terminal resize event

	// Dialog and tools
	IntentToggleDialog   // Space, Tab
	IntentToolPaintbrush // p
	IntentToolBucket     // f

	// Pointer, primary button only
	IntentPointerPress // Button went down
	IntentPointerDrag  // Motion while held
)

// Intent is a decoded input event
// Point is in terminal cells for pointer intents; Size is set for IntentResize
type Intent struct {
	Type  IntentType
	Point core.Point
	Size  core.Size
}

// IsPointer reports whether the intent carries a pointer coordinate
func (i *Intent) IsPointer() bool {
	return i.Type == IntentPointerPress || i.Type == IntentPointerDrag
}
