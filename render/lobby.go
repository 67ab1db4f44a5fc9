package render

import (
	"fmt"
	"strings"

	"github.com/WGrassw/Paw-aware/constants"
)

// PanelLine is one quest panel entry
type PanelLine struct {
	Text string
	Done bool
}

// IconRect is the encounter icon in lobby world units
type IconRect struct {
	X, Y, W, H float64
	Label      string
	Countdown  float64 // seconds until the grow starts, 0 once growing
	Growing    bool
	Progress   float64
}

// LobbyFrame is the primitive snapshot the lobby renders from
type LobbyFrame struct {
	Scene      int
	SceneCount int
	X          float64
	FaceLeft   bool
	WalkFrame  int
	Sprinting  bool

	Health    int
	MaxHealth int

	Panel []PanelLine
	Icon  *IconRect
	Story bool

	Message string
}

// Lobby draws lobby frames through a canvas
type Lobby struct {
	canvas *Canvas
}

// NewLobby creates a lobby renderer sharing canvas
func NewLobby(canvas *Canvas) *Lobby {
	return &Lobby{canvas: canvas}
}

// Viewport maps lobby world units onto canvas cells
type Viewport struct {
	Cols, Rows int
}

// CellX converts a world x to a column
func (v Viewport) CellX(x float64) int {
	return int(x * float64(v.Cols) / constants.LobbyWidth)
}

// CellY converts a world y to a row
func (v Viewport) CellY(y float64) int {
	return int(y * float64(v.Rows) / constants.LobbyHeight)
}

// GroundRow is the first ground row
func (v Viewport) GroundRow() int {
	return v.CellY(constants.LobbyHeight * 0.75)
}

// Draw renders a complete lobby frame into the canvas
func (l *Lobby) Draw(f LobbyFrame) {
	c := l.canvas
	w, h := c.Size()
	if w == 0 || h == 0 {
		return
	}
	vp := Viewport{Cols: w, Rows: h}

	drawBackdrop(c, vp, f.Scene)
	drawPlayer(c, vp, f)
	if f.Icon != nil {
		drawIcon(c, vp, *f.Icon)
	}
	drawHearts(c, f.Health, f.MaxHealth)
	drawPanel(c, f.Panel)
	drawSceneLabel(c, vp, f)
	if f.Story {
		drawStory(c, vp)
	}
}

func drawBackdrop(c *Canvas, vp Viewport, scene int) {
	t := themeFor(scene)
	ground := vp.GroundRow()
	for y := 0; y < vp.Rows; y++ {
		var bg RGB
		if y < ground {
			bg = Lerp(t.SkyTop, t.Horizon, float64(y)/float64(max(ground-1, 1)))
		} else {
			depth := float64(y-ground) / float64(max(vp.Rows-ground, 1))
			bg = t.Ground.Scale(1 - 0.4*depth)
		}
		c.Fill(0, y, vp.Cols, y+1, bg, BlendReplace, 1)
	}
	// Props along the horizon, spaced per scene so each backdrop differs
	spacing := 9 + scene*3
	for x := scene; x < vp.Cols; x += spacing {
		c.Set(x, ground-1, t.Prop, t.PropFg, RGB{}, BlendFgOnly, 1)
	}
}

func drawPlayer(c *Canvas, vp Viewport, f LobbyFrame) {
	sprite := catSprite(f.WalkFrame, f.FaceLeft)
	fg := rgbPlayer
	if f.Sprinting {
		fg = rgbPlayerRun
	}
	col := vp.CellX(f.X + constants.PlayerWidth/2 - 40)
	top := vp.GroundRow() - len(sprite)
	for i, line := range sprite {
		c.Text(col, top+i, line, fg)
	}
}

func drawIcon(c *Canvas, vp Viewport, icon IconRect) {
	x0, y0 := vp.CellX(icon.X), vp.CellY(icon.Y)
	x1, y1 := vp.CellX(icon.X+icon.W), vp.CellY(icon.Y+icon.H)
	x1, y1 = max(x1, x0+4), max(y1, y0+3)

	if icon.Growing {
		c.Fill(x0, y0, x1, y1, rgbIconBg, BlendAlpha, 0.35+0.65*icon.Progress)
	} else {
		c.Box(x0, y0, x1, y1, rgbIconBorder, rgbIconBg)
	}

	midY := (y0 + y1) / 2
	label := icon.Label
	if !icon.Growing {
		label = "!"
		if icon.Countdown > 0 {
			label = fmt.Sprintf("! %.0f", icon.Countdown+0.49)
		}
	}
	lx := (x0+x1)/2 - len(label)/2
	c.TextBold(lx, midY, label, rgbIconText)
}

func drawHearts(c *Canvas, health, maxHealth int) {
	x := 1
	for i := 0; i < maxHealth; i++ {
		fg := rgbHeartEmpty
		r := '♡'
		if i < health {
			fg = rgbHeartFull
			r = '♥'
		}
		c.Set(x, 0, r, fg, rgbPanelBg, BlendReplace, 1)
		c.Set(x+1, 0, ' ', fg, rgbPanelBg, BlendReplace, 1)
		x += 2
	}
}

func drawPanel(c *Canvas, lines []PanelLine) {
	if len(lines) == 0 {
		return
	}
	w, _ := c.Size()
	width := 0
	for _, l := range lines {
		width = max(width, len(l.Text)+4)
	}
	x0 := max(w-width-1, 0)
	c.Fill(x0, 0, w, len(lines)+1, rgbPanelBg, BlendAlpha, 0.85)
	for i, l := range lines {
		mark, fg := "[ ]", rgbPanelText
		if l.Done {
			mark, fg = "[x]", rgbPanelDone
		}
		c.Text(x0+1, i, mark+" "+l.Text, fg)
	}
}

func drawSceneLabel(c *Canvas, vp Viewport, f LobbyFrame) {
	label := fmt.Sprintf(" %d/%d %s ", f.Scene, f.SceneCount, SceneName(f.Scene))
	if f.Message != "" {
		label += "| " + f.Message + " "
	}
	c.Fill(0, vp.Rows-1, vp.Cols, vp.Rows, rgbPanelBg, BlendReplace, 1)
	c.Text(1, vp.Rows-1, label, rgbLabel)
}

var storyLines = []string{
	"The streets are quiet now.",
	"",
	"Every market stall, every park bench, every alley and rooftop",
	"knows your paw prints. The dog gave up, the spotlights went dark,",
	"and the fish you brought home are still warm from the sun.",
	"",
	"Rest here as long as you like.",
}

func drawStory(c *Canvas, vp Viewport) {
	width := 0
	for _, l := range storyLines {
		width = max(width, len(l))
	}
	width += 4
	height := len(storyLines) + 2
	x0 := max((vp.Cols-width)/2, 0)
	y0 := max((vp.Rows-height)/2-2, 1)
	c.Box(x0, y0, x0+width, y0+height, rgbIconBorder, rgbStoryBg)
	for i, l := range storyLines {
		c.Text(x0+2, y0+1+i, strings.TrimRight(l, " "), rgbStoryText)
	}
}
