package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ColorMode is the palette depth used for rendering
type ColorMode uint8

const (
	ColorMode256 ColorMode = iota
	ColorModeTrueColor
)

// ParseColorMode resolves a -color flag value, falling back to detection
func ParseColorMode(s string) ColorMode {
	switch s {
	case "256":
		return ColorMode256
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor
	default:
		return DetectColorMode()
	}
}

// Open creates and initializes the terminal screen with mouse support
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := Setup(screen); err != nil {
		return nil, err
	}
	return screen, nil
}

// Setup initializes an already constructed screen
func Setup(screen tcell.Screen) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()
	return nil
}

type titler interface {
	SetTitle(string)
}

// SetTitle sets the window title when the screen implementation supports it
func SetTitle(screen tcell.Screen, title string) {
	if t, ok := screen.(titler); ok {
		t.SetTitle(title)
	}
}

// Restore hands the display back to the lobby after a minigame: clear, resync, retitle
func Restore(screen tcell.Screen, title string) {
	screen.Clear()
	screen.Sync()
	SetTitle(screen, title)
}
