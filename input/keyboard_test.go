package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func key(k tcell.Key, mod tcell.ModMask) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, mod)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestDecodeBindings(t *testing.T) {
	kt := DefaultKeyTable()

	cases := []struct {
		ev     *tcell.EventKey
		want   IntentType
		sprint bool
	}{
		{key(tcell.KeyLeft, tcell.ModNone), IntentLeft, false},
		{key(tcell.KeyRight, tcell.ModShift), IntentRight, true},
		{runeKey('l'), IntentRight, false},
		{runeKey('L'), IntentRight, true},
		{runeKey('D'), IntentRight, true},
		{runeKey(' '), IntentPrimary, false},
		{runeKey('2'), IntentChoice2, false},
		{key(tcell.KeyEscape, tcell.ModNone), IntentQuit, false},
		{key(tcell.KeyEnter, tcell.ModShift), IntentPrimary, false},
		{runeKey('z'), IntentNone, false},
	}
	for _, tc := range cases {
		got := kt.Decode(tc.ev)
		assert.Equal(t, tc.want, got.Type, "event %v", tc.ev.Name())
		assert.Equal(t, tc.sprint, got.Sprint, "sprint for %v", tc.ev.Name())
	}
}

func TestKeyboardHoldWindows(t *testing.T) {
	kb := NewKeyboard()
	kb.HandleEvent(key(tcell.KeyRight, tcell.ModNone), t0)

	assert.True(t, kb.State(t0.Add(400*time.Millisecond)).Right, "first press covers the repeat delay")
	assert.False(t, kb.State(t0.Add(600*time.Millisecond)).Right, "released once the initial window lapses")

	// Auto-repeat stream keeps the key held in short windows
	at := t0.Add(time.Second)
	kb.HandleEvent(key(tcell.KeyRight, tcell.ModNone), at)
	for i := 1; i <= 10; i++ {
		at = at.Add(30 * time.Millisecond)
		kb.HandleEvent(key(tcell.KeyRight, tcell.ModNone), at)
	}
	assert.True(t, kb.State(at.Add(80*time.Millisecond)).Right)
	assert.False(t, kb.State(at.Add(100*time.Millisecond)).Right, "repeat window is short")
}

func TestKeyboardOppositeDirection(t *testing.T) {
	kb := NewKeyboard()
	kb.HandleEvent(runeKey('l'), t0)
	kb.HandleEvent(runeKey('h'), t0.Add(50*time.Millisecond))

	s := kb.State(t0.Add(100 * time.Millisecond))
	assert.True(t, s.Left)
	assert.False(t, s.Right)
	assert.Equal(t, -1.0, s.Direction())
}

func TestKeyboardSprintAndTaps(t *testing.T) {
	kb := NewKeyboard()
	kb.HandleEvent(key(tcell.KeyLeft, tcell.ModShift), t0)
	kb.HandleEvent(runeKey(' '), t0)

	s := kb.State(t0.Add(10 * time.Millisecond))
	assert.True(t, s.Sprint)
	assert.True(t, s.Primary)

	s = kb.State(t0.Add(20 * time.Millisecond))
	assert.False(t, s.Primary, "taps are consumed by State")
	assert.True(t, s.Sprint)

	// Plain press drops sprint
	kb.HandleEvent(key(tcell.KeyLeft, tcell.ModNone), t0.Add(30*time.Millisecond))
	assert.False(t, kb.State(t0.Add(40*time.Millisecond)).Sprint)

	kb.Release()
	assert.False(t, kb.State(t0.Add(50*time.Millisecond)).Moving())
}

func TestKeyboardIgnoresNonKeys(t *testing.T) {
	kb := NewKeyboard()
	in := kb.HandleEvent(tcell.NewEventResize(80, 24), t0)
	assert.Equal(t, IntentNone, in.Type)
}
