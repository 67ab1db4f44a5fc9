package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/WGrassw/Paw-aware/constants"
)

// Keyboard turns a stream of key presses into held-key state
// Terminals report presses and auto-repeats but never releases, so a held key
// is one seen recently: the first press covers the auto-repeat delay, each
// repeat extends the hold by the repeat window
type Keyboard struct {
	table *KeyTable

	initial time.Duration
	repeat  time.Duration

	holdUntil   [intentCount]time.Time
	sprintUntil time.Time

	primary bool
	quit    bool
}

// NewKeyboard creates a keyboard with the default bindings and hold windows
func NewKeyboard() *Keyboard {
	return &Keyboard{
		table:   DefaultKeyTable(),
		initial: constants.KeyHoldInitial,
		repeat:  constants.KeyHoldRepeat,
	}
}

// HandleEvent records a key event at now and returns the decoded intent
func (k *Keyboard) HandleEvent(ev tcell.Event, now time.Time) Intent {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return Intent{}
	}
	in := k.table.Decode(key)

	switch {
	case in.Type.Held():
		window := k.initial
		if now.Before(k.holdUntil[in.Type]) {
			window = k.repeat
		}
		k.holdUntil[in.Type] = now.Add(window)
		k.releaseOpposite(in.Type)

		if in.Sprint {
			k.sprintUntil = k.holdUntil[in.Type]
		} else {
			k.sprintUntil = time.Time{}
		}
	case in.Type == IntentPrimary:
		k.primary = true
	case in.Type == IntentQuit:
		k.quit = true
	}
	return in
}

// releaseOpposite drops the reverse direction so a direction change is immediate
func (k *Keyboard) releaseOpposite(it IntentType) {
	switch it {
	case IntentLeft:
		k.holdUntil[IntentRight] = time.Time{}
	case IntentRight:
		k.holdUntil[IntentLeft] = time.Time{}
	case IntentUp:
		k.holdUntil[IntentDown] = time.Time{}
	case IntentDown:
		k.holdUntil[IntentUp] = time.Time{}
	}
}

// State returns the snapshot at now and consumes pending taps
func (k *Keyboard) State(now time.Time) State {
	s := State{
		Left:    now.Before(k.holdUntil[IntentLeft]),
		Right:   now.Before(k.holdUntil[IntentRight]),
		Up:      now.Before(k.holdUntil[IntentUp]),
		Down:    now.Before(k.holdUntil[IntentDown]),
		Sprint:  now.Before(k.sprintUntil),
		Primary: k.primary,
		Quit:    k.quit,
	}
	k.primary = false
	k.quit = false
	return s
}

// Release forgets every hold and pending tap
func (k *Keyboard) Release() {
	k.holdUntil = [intentCount]time.Time{}
	k.sprintUntil = time.Time{}
	k.primary = false
	k.quit = false
}
