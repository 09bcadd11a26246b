package modes

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// KeyAction is what a bound key does
type KeyAction uint8

const (
	KeyActionNone KeyAction = iota
	KeyActionQuit
	KeyActionToggleMute
	KeyActionSnapshot
	KeyActionToggleHelp
)

// actionRegistry maps config action names to actions
var actionRegistry = map[string]KeyAction{
	"none":        KeyActionNone, // Unbind
	"quit":        KeyActionQuit,
	"toggle_mute": KeyActionToggleMute,
	"snapshot":    KeyActionSnapshot,
	"toggle_help": KeyActionToggleHelp,
}

// Names for keys that are not a single printable rune
var specialKeyNames = map[string]tcell.Key{
	"esc":    tcell.KeyEscape,
	"escape": tcell.KeyEscape,
	"ctrl-c": tcell.KeyCtrlC,
	"ctrl-q": tcell.KeyCtrlQ,
	"enter":  tcell.KeyEnter,
	"tab":    tcell.KeyTab,
}

var runeAliases = map[string]rune{
	"space": ' ',
}

// KeyTable maps keys to actions
type KeyTable struct {
	Runes map[rune]KeyAction
	Keys  map[tcell.Key]KeyAction
}

// DefaultKeyTable returns the stock bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]KeyAction{
			'q': KeyActionQuit,
			'm': KeyActionToggleMute,
			's': KeyActionSnapshot,
			'?': KeyActionToggleHelp,
		},
		Keys: map[tcell.Key]KeyAction{
			tcell.KeyEscape: KeyActionQuit,
			tcell.KeyCtrlC:  KeyActionQuit,
		},
	}
}

// Apply overlays bindings given as key name -> action name
// Ctrl-C always quits so the app cannot lock itself in
func (kt *KeyTable) Apply(bindings map[string]string) error {
	for keyName, actionName := range bindings {
		action, ok := actionRegistry[strings.ToLower(actionName)]
		if !ok {
			return fmt.Errorf("keys.%s: unknown action %q", keyName, actionName)
		}

		if k, ok := specialKeyNames[strings.ToLower(keyName)]; ok {
			if k == tcell.KeyCtrlC {
				continue
			}
			kt.Keys[k] = action
			continue
		}

		r, ok := runeAliases[strings.ToLower(keyName)]
		if !ok {
			if utf8.RuneCountInString(keyName) != 1 {
				return fmt.Errorf("keys: invalid key name %q", keyName)
			}
			r, _ = utf8.DecodeRuneInString(keyName)
		}
		kt.Runes[r] = action
	}
	return nil
}

// Lookup resolves a key event to its action
func (kt *KeyTable) Lookup(key tcell.Key, r rune) KeyAction {
	if key == tcell.KeyRune {
		return kt.Runes[r]
	}
	return kt.Keys[key]
}
