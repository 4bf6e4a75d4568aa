package input

// PointerState tracks the primary button between mouse events
// tcell reports button masks, not transitions, so press and drag are told apart here
type PointerState uint8

const (
	PointerUp   PointerState = iota // Primary button released
	PointerDown                     // Primary button held since the last press
)
