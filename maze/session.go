package maze

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/WGrassw/Paw-aware/constants"
	"github.com/WGrassw/Paw-aware/engine"
	"github.com/WGrassw/Paw-aware/input"
	"github.com/WGrassw/Paw-aware/minigame"
	"github.com/WGrassw/Paw-aware/render"
	"github.com/WGrassw/Paw-aware/terminal"
)

const (
	cellW      = 2
	headerRows = 2
)

var (
	rgbDark   = render.RGB{R: 12, G: 12, B: 14}
	rgbFloor  = render.RGB{R: 40, G: 32, B: 32}
	rgbWall   = render.RGB{R: 242, G: 235, B: 235}
	rgbExit   = render.RGB{R: 119, G: 145, B: 121}
	rgbPlayer = render.RGB{R: 255, G: 190, B: 90}
	rgbBeam   = render.RGB{R: 230, G: 230, B: 200}
	rgbText   = render.RGB{R: 235, G: 235, B: 235}
)

// Session is the terminal front-end of a Game
type Session struct {
	game    *Game
	audio   minigame.Audio
	clock   engine.Clock
	kb      *input.Keyboard
	canvas  *render.Canvas
	outcome minigame.Outcome
}

// NewSession wraps game for minigame.Loop; sound may be nil
func NewSession(game *Game, sound minigame.Audio, clock engine.Clock, mode terminal.ColorMode) *Session {
	return &Session{
		game:   game,
		audio:  sound,
		clock:  clock,
		kb:     input.NewKeyboard(),
		canvas: render.NewCanvas(0, 0, mode),
	}
}

// HandleEvent feeds the keyboard; q gives up
func (s *Session) HandleEvent(ev tcell.Event) (minigame.Result, bool) {
	if in := s.kb.HandleEvent(ev, s.clock.Now()); in.Type == input.IntentQuit {
		if res, done := s.outcome.Decided(); done {
			return res, true
		}
		return minigame.Lose, true
	}
	return minigame.Lose, false
}

// Heading picks one step from the held keys, horizontal first
func Heading(st input.State) Point {
	switch {
	case st.Left:
		return Point{X: -1}
	case st.Right:
		return Point{X: 1}
	case st.Up:
		return Point{Y: -1}
	case st.Down:
		return Point{Y: 1}
	default:
		return Point{}
	}
}

// Step moves the player and holds the result banner before returning
func (s *Session) Step(dt time.Duration) (minigame.Result, bool) {
	s.game.Step(dt, Heading(s.kb.State(s.clock.Now())))
	for _, c := range s.game.DrainCues() {
		if s.audio != nil {
			s.audio.Play(c)
		}
	}
	if res, reason, over := s.game.Over(); over {
		s.outcome.Decide(res, reason, constants.ResultHold)
	}
	return s.outcome.Step(dt)
}

// Decided lets Esc return the result already on screen
func (s *Session) Decided() (minigame.Result, bool) {
	return s.outcome.Decided()
}

// Draw renders the lit part of the maze, the beam and the exit
func (s *Session) Draw(screen tcell.Screen) {
	s.canvas.Fit(screen)
	s.draw()
	s.canvas.Flush(screen)
}

// origin is the screen cell of maze cell (0,0)
func (s *Session) origin() (int, int) {
	cw, _ := s.canvas.Size()
	return max((cw-s.game.layout.Width*cellW)/2, 0), headerRows
}

func (s *Session) draw() {
	c := s.canvas
	g := s.game
	l := g.layout
	c.Clear(rgbDark)

	c.TextBold(1, 0, fmt.Sprintf("Maze  Level %d", g.Level()), rgbText)
	c.Text(1, 1, "arrows/wasd move   freeze while the spotlight is on you   esc give up", rgbText.Scale(0.7))

	ox, oy := s.origin()
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			p := Point{X: x, Y: y}
			lit := g.Lit(p)
			inBeam := g.beam.HitsCell(p)
			if !lit && !inBeam {
				continue
			}
			bg := rgbFloor
			if l.Wall(p) {
				bg = rgbWall
			}
			if !lit {
				bg = bg.Scale(0.35)
			}
			if inBeam {
				bg = bg.Blend(rgbBeam, 0.3)
			}
			sx, sy := ox+x*cellW, oy+y
			c.Fill(sx, sy, sx+cellW, sy+1, bg, render.BlendReplace, 1)
		}
	}

	ex, ey := ox+l.Exit.X*cellW, oy+l.Exit.Y
	c.Fill(ex, ey, ex+cellW, ey+1, rgbExit, render.BlendReplace, 1)
	c.Set(ex, ey, '[', rgbText, rgbExit, render.BlendReplace, 1)
	c.Set(ex+1, ey, ']', rgbText, rgbExit, render.BlendReplace, 1)

	px, py := ox+g.player.X*cellW, oy+g.player.Y
	c.Set(px, py, '@', rgbPlayer, render.RGB{}, render.BlendFgOnly, 1)

	if res, done := s.outcome.Decided(); done {
		render.Banner(c, s.outcome.Banner(), s.outcome.Reason(), res.Won())
	}
}
