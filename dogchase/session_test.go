package dogchase

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WGrassw/Paw-aware/audio"
	"github.com/WGrassw/Paw-aware/constants"
	"github.com/WGrassw/Paw-aware/engine"
	"github.com/WGrassw/Paw-aware/minigame"
	"github.com/WGrassw/Paw-aware/terminal"
)

type recordingAudio struct {
	played []audio.Cue
}

func (a *recordingAudio) Play(c audio.Cue) { a.played = append(a.played, c) }
func (a *recordingAudio) StopAll()         {}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func newTestSession(t *testing.T, w *World) (*Session, *engine.ManualClock, *recordingAudio) {
	t.Helper()
	clock := engine.NewManualClock(time.Unix(0, 0))
	sound := &recordingAudio{}
	return NewSession(w, sound, clock, terminal.ColorModeTrueColor), clock, sound
}

func TestSessionMovesCat(t *testing.T) {
	w := quietWorld(t)
	s, clock, _ := newTestSession(t, w)

	s.HandleEvent(runeKey('d'))
	clock.Advance(frame)
	_, done := s.Step(frame)
	assert.False(t, done)
	assert.Greater(t, w.Cat.Pos.X, 100.0)
	assert.Equal(t, 100.0, w.Cat.Pos.Y)
}

func TestSessionHoldsResult(t *testing.T) {
	w := quietWorld(t)
	w.Fish[0].Pos = Vec{X: 130, Y: 130}
	s, clock, sound := newTestSession(t, w)

	clock.Advance(frame)
	res, done := s.Step(frame)
	assert.False(t, done, "the banner stays up before returning")
	assert.Equal(t, []audio.Cue{audio.CueCoin, audio.CueBell}, sound.played)

	decided, ok := s.Decided()
	require.True(t, ok)
	assert.Equal(t, minigame.Win, decided)

	var steps int
	for !done {
		res, done = s.Step(100 * time.Millisecond)
		steps++
		require.Less(t, steps, 100)
	}
	assert.Equal(t, minigame.Win, res)
	assert.GreaterOrEqual(t, time.Duration(steps)*100*time.Millisecond, constants.ResultHold-frame)
}

func TestSessionDuelKeys(t *testing.T) {
	w := quietWorld(t)
	w.Thief.Active = true
	w.phase = PhaseDuel
	s, _, _ := newTestSession(t, w)

	_, done := s.HandleEvent(runeKey('2'))
	assert.False(t, done)
	assert.NotEmpty(t, w.DuelMessage())
}

func TestSessionQuitKeepsDecided(t *testing.T) {
	w := quietWorld(t)
	s, _, _ := newTestSession(t, w)

	res, done := s.HandleEvent(runeKey('q'))
	assert.True(t, done)
	assert.Equal(t, minigame.Lose, res)

	w = quietWorld(t)
	w.Fish[0].Pos = Vec{X: 130, Y: 130}
	s, _, _ = newTestSession(t, w)
	s.Step(frame)
	res, done = s.HandleEvent(runeKey('q'))
	assert.True(t, done)
	assert.Equal(t, minigame.Win, res)
}

func TestSessionDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(120, 42)

	w := quietWorld(t)
	s, _, _ := newTestSession(t, w)
	s.Draw(screen)
	screen.Show()

	title, _, _, _ := screen.GetContent(1, 0)
	assert.Equal(t, 'D', title)

	// 10 world units per column, 20 per row below the header
	cat, _, _, _ := screen.GetContent(10, headerRows+5)
	assert.Equal(t, '@', cat)
	fish, _, _, _ := screen.GetContent(60, headerRows+20)
	assert.Equal(t, '>', fish)
	dog, _, _, _ := screen.GetContent(90, headerRows+25)
	assert.Equal(t, 'D', dog)
}
