package minigame

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/WGrassw/Paw-aware/constants"
)

// Session is a frame-stepped minigame front-end driven by Loop
type Session interface {
	// HandleEvent consumes one terminal event; done ends the session with res
	HandleEvent(ev tcell.Event) (res Result, done bool)
	// Step advances simulation by dt
	Step(dt time.Duration) (res Result, done bool)
	// Draw renders the current state; the loop calls Show
	Draw(s tcell.Screen)
}

// decider is a session that may already hold a result while it is still on screen
type decider interface {
	Decided() (Result, bool)
}

// Loop owns the terminal until the session finishes, the user quits, or ctx is cancelled
// Escape and Ctrl-C always end the session with Lose
func Loop(ctx context.Context, host *Host, s Session) Result {
	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	last := host.Clock.Now()
	for {
		select {
		case <-ctx.Done():
			return Lose

		case ev, ok := <-host.Events:
			if !ok {
				return Lose
			}
			if IsQuit(ev) {
				if d, ok := s.(decider); ok {
					if res, done := d.Decided(); done {
						return res
					}
				}
				return Lose
			}
			if _, resized := ev.(*tcell.EventResize); resized && host.Screen != nil {
				host.Screen.Sync()
			}
			if res, done := s.HandleEvent(ev); done {
				return res
			}

		case <-ticker.C:
			now := host.Clock.Now()
			dt := min(now.Sub(last), constants.MaxFrameDelta)
			last = now

			if res, done := s.Step(dt); done {
				return res
			}
			if host.Screen != nil {
				host.Screen.Clear()
				s.Draw(host.Screen)
				host.Screen.Show()
			}
		}
	}
}

// IsQuit reports whether ev is a session-ending key
func IsQuit(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	return key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC
}
