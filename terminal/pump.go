package terminal

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
)

// EventBuffer is the pump channel capacity
const EventBuffer = 256

// Pump forwards screen events into a channel from a dedicated goroutine
// The channel closes when the screen is finalized
func Pump(screen tcell.Screen) <-chan tcell.Event {
	events := make(chan tcell.Event, EventBuffer)
	go func() {
		defer close(events)
		// Panic recovery for input polling goroutine to ensure terminal cleanup
		defer func() {
			if r := recover(); r != nil {
				EmergencyReset(os.Stdout)
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()
	return events
}

// Drain discards queued events without blocking
func Drain(events <-chan tcell.Event) int {
	n := 0
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return n
			}
			n++
		default:
			return n
		}
	}
}
