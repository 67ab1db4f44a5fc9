package dogchase

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

const headerRows = 2

var (
	rgbGrass   = render.RGB{R: 34, G: 70, B: 38}
	rgbHeader  = render.RGB{R: 16, G: 20, B: 18}
	rgbText    = render.RGB{R: 235, G: 235, B: 235}
	rgbWarn    = render.RGB{R: 255, G: 120, B: 90}
	rgbFish    = render.RGB{R: 120, G: 200, B: 255}
	rgbCat     = render.RGB{R: 255, G: 190, B: 90}
	rgbDog     = render.RGB{R: 170, G: 110, B: 60}
	rgbDogMad  = render.RGB{R: 230, G: 70, B: 50}
	rgbThief   = render.RGB{R: 160, G: 160, B: 175}
	rgbDuelBox = render.RGB{R: 30, G: 24, B: 40}
)

// Session is the terminal front-end of a World
type Session struct {
	world   *World
	audio   minigame.Audio
	clock   engine.Clock
	kb      *input.Keyboard
	canvas  *render.Canvas
	outcome minigame.Outcome
}

// NewSession wraps world for minigame.Loop; sound may be nil
func NewSession(world *World, sound minigame.Audio, clock engine.Clock, mode terminal.ColorMode) *Session {
	return &Session{
		world:  world,
		audio:  sound,
		clock:  clock,
		kb:     input.NewKeyboard(),
		canvas: render.NewCanvas(0, 0, mode),
	}
}

// HandleEvent feeds the keyboard; number keys throw during a duel
func (s *Session) HandleEvent(ev tcell.Event) (minigame.Result, bool) {
	in := s.kb.HandleEvent(ev, s.clock.Now())
	switch in.Type {
	case input.IntentQuit:
		if res, done := s.outcome.Decided(); done {
			return res, true
		}
		return minigame.Lose, true
	case input.IntentChoice1:
		s.world.Duel(Rock)
	case input.IntentChoice2:
		s.world.Duel(Paper)
	case input.IntentChoice3:
		s.world.Duel(Scissors)
	}
	s.settle()
	return minigame.Lose, false
}

// Step moves the round along and holds the result banner before returning
func (s *Session) Step(dt time.Duration) (minigame.Result, bool) {
	st := s.kb.State(s.clock.Now())
	s.world.Step(dt, Input{DX: st.Direction(), DY: st.Vertical()})
	s.settle()
	return s.outcome.Step(dt)
}

// Decided lets Esc return the result already on screen
func (s *Session) Decided() (minigame.Result, bool) {
	return s.outcome.Decided()
}

func (s *Session) settle() {
	for _, c := range s.world.DrainCues() {
		if s.audio != nil {
			s.audio.Play(c)
		}
	}
	if res, reason, over := s.world.Over(); over {
		s.outcome.Decide(res, reason, constants.ResultHold)
	}
}

// Draw scales the arena onto the screen below a status header
func (s *Session) Draw(screen tcell.Screen) {
	s.canvas.Fit(screen)
	s.draw()
	s.canvas.Flush(screen)
}

func (s *Session) draw() {
	c := s.canvas
	w := s.world
	cw, ch := c.Size()
	c.Clear(rgbGrass)
	c.Fill(0, 0, cw, headerRows, rgbHeader, render.BlendReplace, 1)

	timer := rgbText
	if w.Remaining() < 10*time.Second {
		timer = rgbWarn
	}
	c.TextBold(1, 0, fmt.Sprintf("Dog  Level %d", w.Level()), rgbText)
	x := c.Text(16, 0, fmt.Sprintf("Food %d/%d", w.Collected(), len(w.Fish)), rgbText)
	c.Text(x+3, 0, fmt.Sprintf("Rot in %ds", int(w.Remaining().Seconds()+0.999)), timer)
	c.Text(1, 1, "arrows/wasd move   1 rock  2 paper  3 scissors   esc give up", rgbText.Scale(0.7))

	sx := float64(cw) / w.width
	sy := float64(ch-headerRows) / w.height
	cell := func(b Box) (int, int, int, int) {
		x0 := int(b.Pos.X * sx)
		y0 := headerRows + int(b.Pos.Y*sy)
		x1 := max(int(b.Right()*sx), x0+1)
		y1 := max(headerRows+int(b.Bottom()*sy), y0+1)
		return x0, y0, x1, y1
	}

	for _, f := range w.Fish {
		if f.State != FishFresh {
			continue
		}
		x0, y0, _, _ := cell(f.Box)
		glyph := '>'
		if f.Targeted {
			glyph = '!'
		}
		c.Set(x0, y0, glyph, rgbFish, render.RGB{}, render.BlendFgOnly, 1)
	}

	if w.Thief.Active {
		x0, y0, x1, y1 := cell(w.Thief.Box)
		c.Fill(x0, y0, x1, y1, rgbThief.Scale(0.4), render.BlendAlpha, 0.7)
		c.Set(x0, y0, 't', rgbThief, render.RGB{}, render.BlendFgOnly, 1)
	}

	dogFg := rgbDog
	if w.Dog.Chasing {
		dogFg = rgbDogMad
	}
	x0, y0, x1, y1 := cell(w.Dog.Box)
	c.Fill(x0, y0, x1, y1, dogFg.Scale(0.4), render.BlendAlpha, 0.6)
	c.TextBold(x0, y0, "DOG", dogFg)

	x0, y0, x1, y1 = cell(w.Cat)
	c.Fill(x0, y0, x1, y1, rgbCat.Scale(0.5), render.BlendAlpha, 0.8)
	c.Set(x0, y0, '@', rgbCat, render.RGB{}, render.BlendFgOnly, 1)

	if w.Phase() == PhaseDuel {
		s.drawDuel(cw, ch)
	}
	if res, done := s.outcome.Decided(); done {
		render.Banner(c, s.outcome.Banner(), s.outcome.Reason(), res.Won())
	}
}

func (s *Session) drawDuel(cw, ch int) {
	c := s.canvas
	lines := []string{
		"The thief blocks your way!",
		"1 Rock   2 Paper   3 Scissors",
		s.world.DuelMessage(),
	}
	width := 36
	x0, y0 := max((cw-width)/2, 0), max(ch/2-6, headerRows)
	c.Box(x0, y0, x0+width, y0+len(lines)+2, rgbThief, rgbDuelBox)
	for i, l := range lines {
		c.Text(x0+2, y0+1+i, l, rgbText)
	}
}
