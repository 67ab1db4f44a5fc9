package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/WGrassw/Paw-aware/terminal"
)

func TestCanvasClearAndSet(t *testing.T) {
	c := NewCanvas(10, 4, terminal.ColorModeTrueColor)
	bg := RGB{10, 20, 30}
	c.Clear(bg)

	for y := 0; y < 4; y++ {
		for x := 0; x < 10; x++ {
			if got := c.At(x, y).Bg; got != bg {
				t.Fatalf("Expected bg %v at (%d,%d), got %v", bg, x, y, got)
			}
		}
	}

	c.Set(3, 2, 'A', RGB{255, 0, 0}, RGB{0, 0, 0}, BlendFgOnly, 1)
	cell := c.At(3, 2)
	if cell.Rune != 'A' || cell.Fg != (RGB{255, 0, 0}) || cell.Bg != bg {
		t.Errorf("Expected fg-only write to keep bg, got %+v", cell)
	}

	// Out of bounds writes are ignored
	c.Set(-1, 0, 'X', RGB{}, RGB{}, BlendReplace, 1)
	c.Set(10, 4, 'X', RGB{}, RGB{}, BlendReplace, 1)
}

func TestCanvasAlphaBlend(t *testing.T) {
	c := NewCanvas(2, 1, terminal.ColorModeTrueColor)
	c.Clear(RGB{0, 0, 0})
	c.Set(0, 0, 0, RGB{}, RGB{200, 100, 0}, BlendAlpha, 0.5)

	got := c.At(0, 0).Bg
	if got.R != 100 || got.G != 50 || got.B != 0 {
		t.Errorf("Expected half blend {100 50 0}, got %v", got)
	}
}

func TestCanvasFillClips(t *testing.T) {
	c := NewCanvas(5, 5, terminal.ColorMode256)
	red := RGB{255, 0, 0}
	c.Fill(-3, -3, 2, 2, red, BlendReplace, 1)

	if c.At(0, 0).Bg != red || c.At(1, 1).Bg != red {
		t.Error("Expected clipped fill to cover top-left corner")
	}
	if c.At(2, 2).Bg == red {
		t.Error("Expected fill to stop at x1,y1 exclusive")
	}
}

func TestCanvasTextReturnsEnd(t *testing.T) {
	c := NewCanvas(20, 1, terminal.ColorModeTrueColor)
	end := c.Text(2, 0, "paw", RGB{255, 255, 255})
	if end != 5 {
		t.Errorf("Expected end column 5, got %d", end)
	}
	if c.At(4, 0).Rune != 'w' {
		t.Errorf("Expected 'w' at column 4, got %q", c.At(4, 0).Rune)
	}
}

func TestTo256(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want uint8
	}{
		{"black", RGB{0, 0, 0}, 16},
		{"white", RGB{255, 255, 255}, 231},
		{"red", RGB{255, 0, 0}, 196},
		{"gray", RGB{128, 128, 128}, 244},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := To256(tt.in); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestPresentResizesAndShows(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(30, 8)

	c := NewCanvas(1, 1, terminal.ColorModeTrueColor)
	Present(screen, c, func(c *Canvas) {
		c.Text(0, 0, "hi", RGB{255, 255, 255})
	})

	w, h := c.Size()
	if w != 30 || h != 8 {
		t.Fatalf("Expected canvas resized to 30x8, got %dx%d", w, h)
	}
	r, _, _, _ := screen.GetContent(1, 0)
	if r != 'i' {
		t.Errorf("Expected 'i' on screen, got %q", r)
	}
}

func TestBannerCentered(t *testing.T) {
	c := NewCanvas(40, 10, terminal.ColorModeTrueColor)
	Banner(c, "WON", "ok", true)

	// Box is 9 wide starting at column 15, rows 3..6
	if got := c.At(15, 3).Rune; got != '┌' {
		t.Fatalf("Expected top-left corner, got %q", got)
	}
	if got := c.At(18, 4).Rune; got != 'W' {
		t.Fatalf("Expected title at column 18, got %q", got)
	}
	if !c.At(18, 4).Bold {
		t.Fatalf("Expected bold title")
	}
	if got := c.At(18, 5).Rune; got != 'o' {
		t.Fatalf("Expected reason at column 18, got %q", got)
	}
}
