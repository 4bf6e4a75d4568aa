package input

// actionRegistry maps canonical action names to intents
// Used by the keymap loader to resolve config action strings to bindings
var actionRegistry = map[string]IntentType{
	// Unbind sentinel
	"none": IntentNone,

	"quit":            IntentQuit,
	"hide_dialog":     IntentEscape,
	"toggle_sound":    IntentToggleSound,
	"toggle_dialog":   IntentToggleDialog,
	"tool_paintbrush": IntentToolPaintbrush,
	"tool_bucket":     IntentToolBucket,
}

// ActionIntent resolves an action name
func ActionIntent(name string) (IntentType, bool) {
	it, ok := actionRegistry[name]
	return it, ok
}

// ActionName returns the canonical name bound to an intent, empty if none
func ActionName(it IntentType) string {
	for name, v := range actionRegistry {
		if v == it && it != IntentNone {
			return name
		}
	}
	return ""
}
