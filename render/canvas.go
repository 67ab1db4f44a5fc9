package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/WGrassw/Paw-aware/terminal"
)

// Cell is one composited terminal cell
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
	Bold bool
}

// BlendMode defines compositing operations
type BlendMode uint8

const (
	BlendReplace BlendMode = iota // Dst = Src (opaque overwrite)
	BlendAlpha                    // Dst = Src*α + Dst*(1-α)
	BlendMax                      // Dst = max(Dst, Src) per channel
	BlendFgOnly                   // Replace rune and Fg, keep Bg
)

// Canvas is a compositor in front of a tcell screen
// Drawing happens in cell space; Flush pushes everything at once
type Canvas struct {
	cells  []Cell
	width  int
	height int
	mode   terminal.ColorMode
}

// NewCanvas creates a canvas with the specified dimensions
func NewCanvas(width, height int, mode terminal.ColorMode) *Canvas {
	c := &Canvas{mode: mode}
	c.Resize(width, height)
	return c
}

// Resize adjusts dimensions, reallocates only if capacity insufficient
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(c.cells) < size {
		c.cells = make([]Cell, size)
	} else {
		c.cells = c.cells[:size]
	}
	c.width = width
	c.height = height
	c.Clear(RGBBlack)
}

// Clear fills every cell with bg using exponential copy
func (c *Canvas) Clear(bg RGB) {
	if len(c.cells) == 0 {
		return
	}
	c.cells[0] = Cell{Rune: ' ', Bg: bg}
	for filled := 1; filled < len(c.cells); filled *= 2 {
		copy(c.cells[filled:], c.cells[:filled])
	}
}

// Size returns the canvas dimensions in cells
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// At returns the cell at x,y; zero Cell when out of bounds
func (c *Canvas) At(x, y int) Cell {
	if !c.inBounds(x, y) {
		return Cell{}
	}
	return c.cells[y*c.width+x]
}

// Set composites a cell; rune 0 keeps the existing glyph
func (c *Canvas) Set(x, y int, r rune, fg, bg RGB, mode BlendMode, alpha float64) {
	if !c.inBounds(x, y) {
		return
	}
	dst := &c.cells[y*c.width+x]
	if r != 0 {
		dst.Rune = r
	}
	switch mode {
	case BlendReplace:
		dst.Fg, dst.Bg = fg, bg
	case BlendAlpha:
		dst.Fg = dst.Fg.Blend(fg, alpha)
		dst.Bg = dst.Bg.Blend(bg, alpha)
	case BlendMax:
		dst.Fg = dst.Fg.Max(fg)
		dst.Bg = dst.Bg.Max(bg)
	case BlendFgOnly:
		dst.Fg = fg
	}
}

// Fill paints a rectangle background, clipped to the canvas
func (c *Canvas) Fill(x0, y0, x1, y1 int, bg RGB, mode BlendMode, alpha float64) {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, c.width), min(y1, c.height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.Set(x, y, ' ', bg, bg, mode, alpha)
		}
	}
}

// Text writes s starting at x,y keeping the background; returns the end column
func (c *Canvas) Text(x, y int, s string, fg RGB) int {
	for _, r := range s {
		c.Set(x, y, r, fg, RGB{}, BlendFgOnly, 1)
		w := runewidth.RuneWidth(r)
		if w == 0 {
			w = 1
		}
		x += w
	}
	return x
}

// TextBold writes s like Text with the bold attribute
func (c *Canvas) TextBold(x, y int, s string, fg RGB) int {
	start := x
	end := c.Text(x, y, s, fg)
	for i := start; i < end; i++ {
		if c.inBounds(i, y) {
			c.cells[y*c.width+i].Bold = true
		}
	}
	return end
}

// Box draws a single-line frame and fills its interior
func (c *Canvas) Box(x0, y0, x1, y1 int, border, bg RGB) {
	if x1-x0 < 2 || y1-y0 < 2 {
		c.Fill(x0, y0, x1, y1, bg, BlendReplace, 1)
		return
	}
	c.Fill(x0, y0, x1, y1, bg, BlendReplace, 1)
	for x := x0 + 1; x < x1-1; x++ {
		c.Set(x, y0, '─', border, bg, BlendReplace, 1)
		c.Set(x, y1-1, '─', border, bg, BlendReplace, 1)
	}
	for y := y0 + 1; y < y1-1; y++ {
		c.Set(x0, y, '│', border, bg, BlendReplace, 1)
		c.Set(x1-1, y, '│', border, bg, BlendReplace, 1)
	}
	c.Set(x0, y0, '┌', border, bg, BlendReplace, 1)
	c.Set(x1-1, y0, '┐', border, bg, BlendReplace, 1)
	c.Set(x0, y1-1, '└', border, bg, BlendReplace, 1)
	c.Set(x1-1, y1-1, '┘', border, bg, BlendReplace, 1)
}

// Flush pushes all cells to the screen; the caller calls Show
func (c *Canvas) Flush(screen tcell.Screen) {
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			cell := c.cells[y*c.width+x]
			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.
				Foreground(cell.Fg.Color(c.mode)).
				Background(cell.Bg.Color(c.mode)).
				Bold(cell.Bold)
			screen.SetContent(x, y, r, nil, style)
		}
	}
}

// Fit resizes the canvas to the screen when they differ
func (c *Canvas) Fit(screen tcell.Screen) {
	w, h := screen.Size()
	if w != c.width || h != c.height {
		c.Resize(w, h)
	}
}

// Present sizes the canvas to the screen, runs draw, flushes and shows
func Present(screen tcell.Screen, c *Canvas, draw func(*Canvas)) {
	c.Fit(screen)
	draw(c)
	c.Flush(screen)
	screen.Show()
}
