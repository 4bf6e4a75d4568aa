package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Sentinel errors
var (
	ErrUnknownKey    = errors.New("unknown key name")
	ErrUnknownAction = errors.New("unknown action")
)

// Rune aliases for keys that can't be bare single-char config keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Special key aliases checked before tcell's own key names
var keyAliases = map[string]tcell.Key{
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"enter":     tcell.KeyEnter,
	"backspace": tcell.KeyBackspace2,
}

// LoadKeyConfig parses key name -> action name bindings into a sparse override KeyTable
// Returns error on unknown action names or invalid key names
func LoadKeyConfig(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]IntentType),
		Runes:       make(map[rune]IntentType),
	}

	for keyStr, actionName := range bindings {
		it, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}

		if r, ok := resolveRune(keyStr); ok {
			kt.Runes[r] = it
			continue
		}

		k, ok := resolveKey(keyStr)
		if !ok {
			return nil, fmt.Errorf("[keys] %w: %q", ErrUnknownKey, keyStr)
		}
		kt.SpecialKeys[k] = it
	}

	return kt, nil
}

// resolveRune converts a config key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

// resolveKey converts a config key string to a special key
// Accepts aliases, ctrl-<letter> (or ctrl+<letter>) and tcell key names, case-insensitive
func resolveKey(s string) (tcell.Key, bool) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "+", "-")

	if k, ok := keyAliases[name]; ok {
		return k, true
	}

	if letter, ok := strings.CutPrefix(name, "ctrl-"); ok && len(letter) == 1 && letter[0] >= 'a' && letter[0] <= 'z' {
		return tcell.KeyCtrlA + tcell.Key(letter[0]-'a'), true
	}

	for k, n := range tcell.KeyNames {
		if strings.ToLower(n) == name {
			return k, true
		}
	}
	return 0, false
}

// resolveAction converts an action name string to an intent
func resolveAction(name string) (IntentType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	it, ok := ActionIntent(name)
	if !ok {
		return IntentNone, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return it, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by override
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}

	mergeMap(result.Runes, override.Runes)
	mergeMap(result.SpecialKeys, override.SpecialKeys)

	return result
}

func mergeMap[K comparable](base, override map[K]IntentType) {
	for k, v := range override {
		if v == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
