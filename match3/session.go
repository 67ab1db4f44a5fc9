package match3

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/WGrassw/Paw-aware/input"
	"github.com/WGrassw/Paw-aware/minigame"
	"github.com/WGrassw/Paw-aware/render"
	"github.com/WGrassw/Paw-aware/terminal"
)

// Board cell size in terminal cells
const (
	tileW    = 6
	tileH    = 3
	boardX   = 2
	boardY   = 3
	panelGap = 3
)

var fishColors = [ColorCount]render.RGB{
	{R: 70, G: 130, B: 230},
	{R: 80, G: 200, B: 100},
	{R: 240, G: 130, B: 190},
	{R: 160, G: 100, B: 220},
	{R: 230, G: 230, B: 230},
	{R: 240, G: 210, B: 60},
}

var (
	rgbBoardBg   = render.RGB{R: 20, G: 22, B: 30}
	rgbGridLine  = render.RGB{R: 36, G: 40, B: 52}
	rgbText      = render.RGB{R: 240, G: 240, B: 240}
	rgbSubtext   = render.RGB{R: 190, G: 190, B: 190}
	rgbDone      = render.RGB{R: 80, G: 220, B: 120}
	rgbTrash     = render.RGB{R: 120, G: 110, B: 100}
	rgbFlash     = render.RGB{R: 255, G: 255, B: 220}
	rgbCursor    = render.RGB{R: 255, G: 165, B: 0}
	rgbSelection = render.RGB{R: 255, G: 255, B: 255}
)

// Session is the terminal front-end of a Game
type Session struct {
	game   *Game
	audio  minigame.Audio
	keys   *input.KeyTable
	canvas *render.Canvas

	cursor  Point
	buttons tcell.ButtonMask
	elapsed time.Duration
}

// NewSession wraps game for minigame.Loop; sound may be nil
func NewSession(game *Game, sound minigame.Audio, mode terminal.ColorMode) *Session {
	return &Session{
		game:   game,
		audio:  sound,
		keys:   input.DefaultKeyTable(),
		canvas: render.NewCanvas(0, 0, mode),
		cursor: Point{X: Width / 2, Y: Height / 2},
	}
}

// Cursor returns the keyboard cursor cell
func (s *Session) Cursor() Point { return s.cursor }

// HandleEvent maps keys and left clicks onto board picks
func (s *Session) HandleEvent(ev tcell.Event) (minigame.Result, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch s.keys.Decode(ev).Type {
		case input.IntentQuit:
			return minigame.Lose, true
		case input.IntentLeft:
			s.moveCursor(-1, 0)
		case input.IntentRight:
			s.moveCursor(1, 0)
		case input.IntentUp:
			s.moveCursor(0, -1)
		case input.IntentDown:
			s.moveCursor(0, 1)
		case input.IntentPrimary:
			s.game.Click(s.cursor)
		}
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0 && s.buttons&tcell.Button1 == 0
		s.buttons = ev.Buttons()
		if !pressed {
			break
		}
		if p, ok := CellAt(ev.Position()); ok {
			s.cursor = p
			s.game.Click(p)
		}
	}
	s.playCues()
	return minigame.Lose, false
}

func (s *Session) moveCursor(dx, dy int) {
	s.cursor.X = min(max(s.cursor.X+dx, 0), Width-1)
	s.cursor.Y = min(max(s.cursor.Y+dy, 0), Height-1)
}

// CellAt maps a screen position to a board cell
func CellAt(x, y int) (Point, bool) {
	x -= boardX
	y -= boardY
	if x < 0 || y < 0 {
		return Point{}, false
	}
	p := Point{X: x / tileW, Y: y / tileH}
	return p, p.In()
}

// Step advances the game and forwards its sounds
func (s *Session) Step(dt time.Duration) (minigame.Result, bool) {
	s.elapsed += dt
	res, done := s.game.Step(dt)
	s.playCues()
	return res, done
}

func (s *Session) playCues() {
	for _, c := range s.game.DrainCues() {
		if s.audio != nil {
			s.audio.Play(c)
		}
	}
}

// Draw renders board, in-flight tiles and the task panel
func (s *Session) Draw(screen tcell.Screen) {
	s.canvas.Fit(screen)
	c := s.canvas
	c.Clear(rgbBoardBg)
	g := s.game

	c.TextBold(boardX, 0, fmt.Sprintf("Match-Three  Level %d", g.Level()), rgbText)
	c.Text(boardX, 1, g.Message(), rgbSubtext)

	anim := g.Animator()
	cleared := g.Cleared()
	sel, hasSel := g.Selected()
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			p := Point{X: x, Y: y}
			px, py := boardX+x*tileW, boardY+y*tileH
			c.Fill(px, py, px+tileW, py+tileH, rgbGridLine, render.BlendReplace, 1)
			c.Fill(px+1, py, px+tileW, py+tileH-1, rgbBoardBg, render.BlendReplace, 1)

			if cleared.Has(p) {
				c.Fill(px+1, py, px+tileW, py+tileH-1, rgbFlash, render.BlendAlpha, 0.6)
				continue
			}
			t := g.Grid().At(p)
			if t == nil || anim.Hidden(p, t) {
				continue
			}
			s.drawTile(px, py, t, hasSel && sel == p)
		}
	}

	top, bottom := boardY, boardY+Height*tileH
	for _, sp := range anim.Sprites() {
		px := boardX + int(sp.Pos.X*tileW+0.5)
		py := boardY + int(sp.Pos.Y*tileH+0.5)
		if py < top || py+tileH-1 > bottom {
			continue
		}
		s.drawTile(px, py, sp.Tile, false)
	}

	cx, cy := boardX+s.cursor.X*tileW, boardY+s.cursor.Y*tileH+1
	c.Set(cx, cy, '[', rgbCursor, render.RGB{}, render.BlendFgOnly, 1)
	c.Set(cx+tileW-1, cy, ']', rgbCursor, render.RGB{}, render.BlendFgOnly, 1)

	s.drawPanel(boardX + Width*tileW + panelGap)
	c.Flush(screen)
}

func tileLabel(t *Tile) string {
	switch t.Kind {
	case KindStriped:
		if t.Axis == AxisRow {
			return "=><>="
		}
		return "‖><>‖"
	case KindBomb:
		return "*><>*"
	case KindRainbow:
		return " (@) "
	case KindTrash:
		return " [#] "
	default:
		return " ><> "
	}
}

func (s *Session) drawTile(px, py int, t *Tile, selected bool) {
	c := s.canvas
	fg := rgbTrash
	switch t.Kind {
	case KindTrash:
	case KindRainbow:
		// Cycle through fish colors
		step := int(s.elapsed / (150 * time.Millisecond))
		fg = fishColors[step%int(ColorCount)]
	default:
		fg = fishColors[t.Color]
	}
	bg := fg.Scale(0.3)
	if selected {
		bg = fg.Scale(0.7)
	}
	c.Fill(px+1, py, px+tileW, py+tileH-1, bg, render.BlendReplace, 1)
	c.TextBold(px+1, py+tileH/2, tileLabel(t), fg.Max(rgbSelection.Scale(0.2)))
	if selected {
		c.Set(px+1, py, '▔', rgbSelection, bg, render.BlendReplace, 1)
	}
}

func (s *Session) drawPanel(x int) {
	c := s.canvas
	g := s.game
	cfg := g.Config()

	line := func(y int, done bool, format string, args ...any) {
		fg, mark := rgbText, "[ ]"
		if done {
			fg, mark = rgbDone, "[x]"
		}
		c.Text(x, y, mark+" "+fmt.Sprintf(format, args...), fg)
	}

	c.TextBold(x, boardY, "Tasks", rgbText)
	line(boardY+2, g.Score() >= g.ScoreGoal(), "Score %d/%d", g.Score(), g.ScoreGoal())
	line(boardY+3, g.TargetCleared() >= cfg.ColorGoal, "Clear %s %d/%d", g.Target(), g.TargetCleared(), cfg.ColorGoal)
	line(boardY+4, g.TrashDisposed() >= cfg.TrashGoal, "Dispose trash %d/%d", g.TrashDisposed(), cfg.TrashGoal)

	help := []string{
		"arrows/hjkl  move cursor",
		"space/enter  pick",
		"mouse        pick",
		"esc          give up",
	}
	for i, h := range help {
		c.Text(x, boardY+7+i, h, rgbSubtext)
	}
}
