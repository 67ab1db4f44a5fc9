package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to intents
type KeyTable struct {
	SpecialKeys map[tcell.Key]IntentType
	Runes       map[rune]IntentType
}

// DefaultKeyTable returns arrow, vi and WASD bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyLeft:   IntentLeft,
			tcell.KeyRight:  IntentRight,
			tcell.KeyUp:     IntentUp,
			tcell.KeyDown:   IntentDown,
			tcell.KeyEnter:  IntentPrimary,
		},
		Runes: map[rune]IntentType{
			'h': IntentLeft,
			'l': IntentRight,
			'k': IntentUp,
			'j': IntentDown,
			'a': IntentLeft,
			'd': IntentRight,
			'w': IntentUp,
			's': IntentDown,
			' ': IntentPrimary,
			'1': IntentChoice1,
			'2': IntentChoice2,
			'3': IntentChoice3,
			'q': IntentQuit,
		},
	}
}

// Decode translates a key event; Type is IntentNone for unbound keys
func (kt *KeyTable) Decode(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		sprint := unicode.IsUpper(r) || ev.Modifiers()&tcell.ModShift != 0
		it, ok := kt.Runes[unicode.ToLower(r)]
		if !ok {
			return Intent{}
		}
		return Intent{Type: it, Sprint: sprint && it.Held()}
	}

	it, ok := kt.SpecialKeys[ev.Key()]
	if !ok {
		return Intent{}
	}
	return Intent{Type: it, Sprint: ev.Modifiers()&tcell.ModShift != 0 && it.Held()}
}
