package jump

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/WGrassw/Paw-aware/constants"
	"github.com/WGrassw/Paw-aware/input"
	"github.com/WGrassw/Paw-aware/minigame"
	"github.com/WGrassw/Paw-aware/render"
	"github.com/WGrassw/Paw-aware/terminal"
)

const (
	headerRows  = 3
	unitsPerCol = 10.0
	gaugeWidth  = 30
)

var (
	rgbSky      = render.RGB{R: 18, G: 18, B: 22}
	rgbText     = render.RGB{R: 235, G: 235, B: 235}
	rgbSubtext  = render.RGB{R: 180, G: 180, B: 180}
	rgbPlatform = render.RGB{R: 120, G: 150, B: 210}
	rgbGoal     = render.RGB{R: 140, G: 255, B: 160}
	rgbCat      = render.RGB{R: 255, G: 190, B: 90}
	rgbAim      = render.RGB{R: 255, G: 230, B: 120}
)

// Session is the terminal front-end of a Game
// Terminals never report key release, so Space toggles between aiming and jumping
type Session struct {
	game    *Game
	audio   minigame.Audio
	keys    *input.KeyTable
	canvas  *render.Canvas
	outcome minigame.Outcome
	buttons tcell.ButtonMask
}

// NewSession wraps game for minigame.Loop; sound may be nil
func NewSession(game *Game, sound minigame.Audio, mode terminal.ColorMode) *Session {
	return &Session{
		game:   game,
		audio:  sound,
		keys:   input.DefaultKeyTable(),
		canvas: render.NewCanvas(0, 0, mode),
	}
}

// HandleEvent maps Space/Enter and left clicks to the jump key
func (s *Session) HandleEvent(ev tcell.Event) (minigame.Result, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch s.keys.Decode(ev).Type {
		case input.IntentQuit:
			if res, done := s.outcome.Decided(); done {
				return res, true
			}
			return minigame.Lose, true
		case input.IntentPrimary:
			s.game.Press()
		}
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0 && s.buttons&tcell.Button1 == 0
		s.buttons = ev.Buttons()
		if pressed {
			s.game.Press()
		}
	}
	s.playCues()
	return minigame.Lose, false
}

// Step advances the game and holds the result banner before returning
func (s *Session) Step(dt time.Duration) (minigame.Result, bool) {
	s.game.Step(dt)
	s.playCues()
	if res, reason, over := s.game.Over(); over {
		s.outcome.Decide(res, reason, constants.ResultHold)
	}
	return s.outcome.Step(dt)
}

// Decided lets Esc return the result already on screen
func (s *Session) Decided() (minigame.Result, bool) {
	return s.outcome.Decided()
}

func (s *Session) playCues() {
	for _, c := range s.game.DrainCues() {
		if s.audio != nil {
			s.audio.Play(c)
		}
	}
}

// Draw renders the side view, the power gauge and a course minimap
func (s *Session) Draw(screen tcell.Screen) {
	s.canvas.Fit(screen)
	s.draw()
	s.canvas.Flush(screen)
}

// column maps a world x to a screen column through the camera
func (s *Session) column(x float64) int {
	return int((x - s.game.Camera()) / unitsPerCol)
}

// row maps a world y to a screen row below the header
func (s *Session) row(y float64) int {
	_, ch := s.canvas.Size()
	return headerRows + int(y*float64(ch-headerRows-1)/constants.JumpFallFloor)
}

func (s *Session) draw() {
	c := s.canvas
	g := s.game
	cw, ch := c.Size()
	c.Clear(rgbSky)

	c.TextBold(1, 0, fmt.Sprintf("Jumpers  Level %d", g.Level()), rgbText)
	c.Text(20, 0, fmt.Sprintf("Platform %d/%d", g.Landed(), g.Goal()), rgbText)
	help := "space: start aiming   space again: jump   esc: give up"
	if g.Phase() == PhaseAiming {
		help = "space: jump now"
	}
	c.Text(1, 1, help, rgbSubtext)

	ground := s.row(constants.JumpGroundY)
	for i, p := range g.Course() {
		fg := rgbPlatform
		if i == g.Goal() {
			fg = rgbGoal
		}
		x0, x1 := s.column(p.Left), s.column(p.Right())
		c.Fill(x0, ground, max(x1, x0+1), ground+1, fg.Scale(0.6), render.BlendReplace, 1)
		if i == g.Goal() {
			c.Set((x0+x1)/2, ground-1, 'G', rgbGoal, render.RGB{}, render.BlendFgOnly, 1)
		}
	}

	if g.Phase() == PhaseAiming {
		aim := g.AimLength()
		c.Set(s.column(g.X+JumpDistance(aim)), ground-1, 'v', rgbAim, render.RGB{}, render.BlendFgOnly, 1)
		filled := int((aim - g.cfg.AimMin) / (g.cfg.AimMax - g.cfg.AimMin) * gaugeWidth)
		bar := strings.Repeat("#", filled) + strings.Repeat(".", gaugeWidth-filled)
		c.Text(1, 2, "Power ["+bar+"]", rgbAim)
	}

	c.Set(s.column(g.X), s.row(g.Y+constants.JumpCatSize)-1, '@', rgbCat, render.RGB{}, render.BlendFgOnly, 1)

	s.drawMinimap(cw, ch-1)

	if res, done := s.outcome.Decided(); done {
		render.Banner(c, s.outcome.Banner(), s.outcome.Reason(), res.Won())
	}
}

func (s *Session) drawMinimap(cw, y int) {
	c := s.canvas
	g := s.game
	course := g.Course()
	lo, hi := course[0].Left, course[len(course)-1].Right()
	scale := float64(max(cw-3, 1)) / max(hi-lo, 1)
	mx := func(x float64) int { return 1 + int((x-lo)*scale) }

	for i, p := range course {
		fg := rgbPlatform
		if i == g.Goal() {
			fg = rgbGoal
		}
		for x := mx(p.Left); x <= mx(p.Right()); x++ {
			c.Set(x, y, '_', fg, render.RGB{}, render.BlendFgOnly, 1)
		}
	}
	c.Set(mx(clamp(g.X, lo, hi)), y, '@', rgbCat, render.RGB{}, render.BlendFgOnly, 1)
}
