package maze

import (
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WGrassw/Paw-aware/audio"
	"github.com/WGrassw/Paw-aware/engine"
	"github.com/WGrassw/Paw-aware/input"
	"github.com/WGrassw/Paw-aware/minigame"
	"github.com/WGrassw/Paw-aware/terminal"
)

const frame = 16 * time.Millisecond

var right = Point{X: 1}

func corridor() *Layout {
	return NewLayout([]string{
		"#######",
		"#.....#",
		"#######",
	}, Point{X: 1, Y: 1}, Point{X: 5, Y: 1})
}

// stillBeam is a config whose spotlight never rotates
func stillBeam() Config {
	cfg := DefaultConfig()
	cfg.BeamSpeed = 0
	cfg.BeamLevelStep = 0
	return cfg
}

func TestMoveCooldown(t *testing.T) {
	g := NewGameWithLayout(stillBeam(), 1, corridor(), math.Pi/2)

	g.Step(frame, right)
	assert.Equal(t, Point{X: 2, Y: 1}, g.Player())

	for i := 0; i < 5; i++ {
		g.Step(frame, right)
	}
	assert.Equal(t, Point{X: 2, Y: 1}, g.Player(), "80ms into a 90ms cooldown")

	g.Step(frame, right)
	assert.Equal(t, Point{X: 3, Y: 1}, g.Player())
	assert.Equal(t, 2, g.Moves())
}

func TestWallsBlock(t *testing.T) {
	g := NewGameWithLayout(stillBeam(), 1, corridor(), math.Pi/2)

	g.Step(frame, Point{Y: -1})
	g.Step(frame, Point{X: -1})
	assert.Equal(t, Point{X: 1, Y: 1}, g.Player())
	assert.Zero(t, g.Moves())

	g.Step(frame, right)
	assert.Equal(t, Point{X: 2, Y: 1}, g.Player(), "a blocked move costs no cooldown")
}

func TestReachExitWins(t *testing.T) {
	g := NewGameWithLayout(stillBeam(), 1, corridor(), math.Pi/2)
	for i := 0; i < 4; i++ {
		g.Step(100*time.Millisecond, right)
	}

	res, reason, over := g.Over()
	require.True(t, over)
	assert.Equal(t, minigame.Win, res)
	assert.Equal(t, "You found the exit.", reason)
	assert.Equal(t, []audio.Cue{audio.CueBell}, g.DrainCues())

	g.Step(100*time.Millisecond, Point{X: -1})
	assert.Equal(t, Point{X: 5, Y: 1}, g.Player(), "nothing moves after the end")
}

func TestMovingInBeamIsCaught(t *testing.T) {
	// Pointing straight at the player from the exit
	g := NewGameWithLayout(stillBeam(), 1, corridor(), math.Pi)

	g.Step(frame, Point{})
	_, _, over := g.Over()
	assert.False(t, over, "standing still in the beam is safe")

	g.Step(frame, right)
	res, reason, over := g.Over()
	require.True(t, over)
	assert.Equal(t, minigame.LoseBySurveillance, res)
	assert.Equal(t, "You moved while the spotlight was on you.", reason)
	assert.Equal(t, []audio.Cue{audio.CueAlarm}, g.DrainCues())
}

func TestBeamGeometry(t *testing.T) {
	b := Beam{HalfAngle: radians(18), Range: 10}

	assert.True(t, b.Hits(5, 0))
	assert.True(t, b.Hits(5, 1.5), "inside the half angle")
	assert.False(t, b.Hits(5, 5), "45 degrees off axis")
	assert.False(t, b.Hits(11, 0), "beyond range")

	b.Angle = 2*math.Pi - 0.1
	assert.True(t, b.Hits(5, 0), "the cone wraps through zero")

	b.Angle = 6.2
	b.Speed = 1
	b.Advance(0.2)
	assert.InDelta(t, 6.4-2*math.Pi, b.Angle, 1e-9)
}

func TestBeamSpeedScalesWithLevel(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 20.0, cfg.BeamSpeedAt(1))
	assert.Equal(t, 30.0, cfg.BeamSpeedAt(3))

	g := NewGameWithLayout(cfg, 3, corridor(), 0)
	assert.InDelta(t, radians(30), g.Beam().Speed, 1e-12)
}

func TestLitAroundPlayerAndExit(t *testing.T) {
	l := NewLayout([]string{
		"###############",
		"#.............#",
		"###############",
	}, Point{X: 1, Y: 1}, Point{X: 13, Y: 1})
	g := NewGameWithLayout(DefaultConfig(), 1, l, 0)

	assert.True(t, g.Lit(Point{X: 6, Y: 1}), "five cells inside a 5.2 cell lamp")
	assert.False(t, g.Lit(Point{X: 7, Y: 1}))
	assert.False(t, g.Lit(Point{X: 10, Y: 1}))
	assert.True(t, g.Lit(Point{X: 11, Y: 1}), "exit glow")
	assert.True(t, g.Lit(Point{X: 13, Y: 1}))
}

func TestHeadingPriority(t *testing.T) {
	assert.Equal(t, Point{X: -1}, Heading(input.State{Left: true, Up: true}))
	assert.Equal(t, Point{X: 1}, Heading(input.State{Right: true, Down: true}))
	assert.Equal(t, Point{Y: -1}, Heading(input.State{Up: true}))
	assert.Equal(t, Point{Y: 1}, Heading(input.State{Down: true}))
	assert.Equal(t, Point{}, Heading(input.State{}))
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.Braiding = 2
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Width = 3
	_, err := NewEngine(cfg)
	assert.Error(t, err)
}

func TestSessionWalksAndDraws(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(100, 10)

	clock := engine.NewManualClock(time.Unix(0, 0))
	g := NewGameWithLayout(stillBeam(), 1, corridor(), math.Pi/2)
	s := NewSession(g, nil, clock, terminal.ColorModeTrueColor)

	s.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	clock.Advance(frame)
	_, done := s.Step(frame)
	require.False(t, done)
	assert.Equal(t, Point{X: 2, Y: 1}, g.Player())

	s.Draw(screen)
	screen.Show()

	ox := (100 - 7*cellW) / 2
	player, _, _, _ := screen.GetContent(ox+2*cellW, headerRows+1)
	assert.Equal(t, '@', player)
	exit, _, _, _ := screen.GetContent(ox+5*cellW, headerRows+1)
	assert.Equal(t, '[', exit)
	title, _, _, _ := screen.GetContent(1, 0)
	assert.Equal(t, 'M', title)
}

func TestSessionQuit(t *testing.T) {
	clock := engine.NewManualClock(time.Unix(0, 0))
	g := NewGameWithLayout(stillBeam(), 1, corridor(), math.Pi/2)
	s := NewSession(g, nil, clock, terminal.ColorModeTrueColor)

	res, done := s.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	assert.True(t, done)
	assert.Equal(t, minigame.Lose, res)
}
