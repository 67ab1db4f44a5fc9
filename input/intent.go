package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit // Esc, Ctrl+C, q

	// Held movement
	IntentLeft
	IntentRight
	IntentUp
	IntentDown

	// Edge-triggered actions
	IntentPrimary // Space, Enter
	IntentChoice1 // 1
	IntentChoice2 // 2
	IntentChoice3 // 3

	intentCount
)

// Held reports whether the intent is a continuous hold rather than a tap
func (i IntentType) Held() bool {
	return i >= IntentLeft && i <= IntentDown
}

// Intent is one decoded key event
type Intent struct {
	Type   IntentType
	Sprint bool // Shift or an uppercase movement rune
}
