package terminal

import (
	"bytes"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestEmergencyResetWritesSequences(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)

	out := buf.String()
	for _, seq := range [][]byte{csiMouseClickOff, csiCursorShow, csiAltScreenExit, csiSGR0, csiRIS} {
		if !bytes.Contains([]byte(out), seq) {
			t.Errorf("Expected output to contain %q", seq)
		}
	}
	if !bytes.HasSuffix(buf.Bytes(), csiRIS) {
		t.Errorf("Expected RIS to be written last, got %q", out)
	}
}

func TestParseColorMode(t *testing.T) {
	if got := ParseColorMode("256"); got != ColorMode256 {
		t.Errorf("Expected 256 color mode, got %d", got)
	}
	if got := ParseColorMode("truecolor"); got != ColorModeTrueColor {
		t.Errorf("Expected truecolor mode, got %d", got)
	}
}

func TestDetectColorModeFromColorterm(t *testing.T) {
	t.Setenv("COLORTERM", "truecolor")
	if got := DetectColorMode(); got != ColorModeTrueColor {
		t.Errorf("Expected truecolor from COLORTERM, got %d", got)
	}
}

func TestPumpForwardsAndCloses(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := Setup(screen); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	events := Pump(screen)
	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)

	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev := <-events:
			if k, ok := ev.(*tcell.EventKey); ok && k.Rune() == 'x' {
				screen.Fini()
				for range events {
				}
				return
			}
		case <-deadline:
			t.Fatal("Expected injected key to be forwarded")
		}
	}
}

func TestDrainEmptiesBuffer(t *testing.T) {
	ch := make(chan tcell.Event, 4)
	ch <- tcell.NewEventResize(10, 10)
	ch <- tcell.NewEventResize(20, 20)
	if n := Drain(ch); n != 2 {
		t.Errorf("Expected 2 drained events, got %d", n)
	}
	if n := Drain(ch); n != 0 {
		t.Errorf("Expected empty drain, got %d", n)
	}
}

func TestRestoreKeepsScreenUsable(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := Setup(screen); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	defer screen.Fini()

	screen.SetContent(0, 0, 'A', nil, tcell.StyleDefault)
	screen.Show()
	Restore(screen, "Runner")

	r, _, _, _ := screen.GetContent(0, 0)
	if r != ' ' {
		t.Errorf("Expected cleared cell after restore, got %q", r)
	}
}
