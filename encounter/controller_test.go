package encounter

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WGrassw/Paw-aware/audio"
	"github.com/WGrassw/Paw-aware/engine"
	"github.com/WGrassw/Paw-aware/minigame"
	"github.com/WGrassw/Paw-aware/quest"
)

type fakeLobby struct {
	scene    int
	x        float64
	restored []ReturnContext
}

func (l *fakeLobby) Position() (int, float64) { return l.scene, l.x }

func (l *fakeLobby) Restore(scene int, x float64) {
	l.scene, l.x = scene, x
	l.restored = append(l.restored, ReturnContext{Scene: scene, X: x})
}

type fakeLauncher struct {
	result minigame.Result
	kinds  []minigame.Kind
	levels []int
}

func (f *fakeLauncher) Run(_ context.Context, kind minigame.Kind, level int) minigame.Result {
	f.kinds = append(f.kinds, kind)
	f.levels = append(f.levels, level)
	return f.result
}

type fakeAudio struct {
	played  []audio.Cue
	stopped int
}

func (a *fakeAudio) Play(c audio.Cue) { a.played = append(a.played, c) }
func (a *fakeAudio) StopAll()         { a.stopped++ }

type fixture struct {
	ctrl     *Controller
	progress *quest.Tracker
	lobby    *fakeLobby
	launcher *fakeLauncher
	audio    *fakeAudio
	clock    *engine.ManualClock
}

func newFixture(t *testing.T, chance float64, res minigame.Result) *fixture {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Chances = Chances{Match3: chance, Dog: chance, Maze: chance, Jump: chance}

	f := &fixture{
		progress: quest.NewTracker(),
		lobby:    &fakeLobby{scene: 2, x: 450},
		launcher: &fakeLauncher{result: res},
		audio:    &fakeAudio{},
		clock:    engine.NewManualClock(time.Unix(1000, 0)),
	}
	ctrl, err := NewController(cfg, f.progress, f.lobby, f.launcher, f.audio, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	f.ctrl = ctrl
	return f
}

func (f *fixture) tickAfter(d time.Duration) {
	f.clock.Advance(d)
	f.ctrl.Tick(context.Background(), f.clock.Now())
}

func TestChanceZeroNeverTriggers(t *testing.T) {
	f := newFixture(t, 0, minigame.Win)

	for _, kind := range minigame.Kinds {
		assert.False(t, f.ctrl.Roll(kind, f.clock.Now()))
		s := f.ctrl.Slot(kind)
		assert.Equal(t, StateIdle, s.State())
		assert.True(t, s.RolledThisVisit())
	}
	assert.False(t, f.ctrl.Busy())
	assert.Nil(t, f.ctrl.Return())
}

func TestChanceOneTriggersOncePerVisit(t *testing.T) {
	f := newFixture(t, 1, minigame.Win)

	require.True(t, f.ctrl.Roll(minigame.KindDog, f.clock.Now()))
	s := f.ctrl.Slot(minigame.KindDog)
	assert.Equal(t, StateSuspense, s.State())
	assert.True(t, f.ctrl.Busy())
	assert.Equal(t, &ReturnContext{Scene: 2, X: 450}, f.ctrl.Return())
	assert.Equal(t, []audio.Cue{audio.CueAlarm}, f.audio.played)

	assert.False(t, f.ctrl.Roll(minigame.KindDog, f.clock.Now()), "one roll per visit")
	assert.False(t, f.ctrl.Roll(minigame.KindMaze, f.clock.Now()), "one encounter at a time")
	assert.Equal(t, StateIdle, f.ctrl.Slot(minigame.KindMaze).State())
}

func TestEncounterTimeline(t *testing.T) {
	f := newFixture(t, 1, minigame.Win)
	require.True(t, f.ctrl.Roll(minigame.KindDog, f.clock.Now()))
	s := f.ctrl.Slot(minigame.KindDog)

	icon, ok := f.ctrl.IconFrame(f.clock.Now())
	require.True(t, ok)
	assert.False(t, icon.Growing)
	assert.InDelta(t, 2.0, icon.SecondsToLift, 1e-9)

	f.tickAfter(1999 * time.Millisecond)
	assert.Equal(t, StateSuspense, s.State())

	f.tickAfter(time.Millisecond)
	assert.Equal(t, StateGrowing, s.State())

	f.tickAfter(425 * time.Millisecond)
	assert.Equal(t, StateGrowing, s.State())
	icon, ok = f.ctrl.IconFrame(f.clock.Now())
	require.True(t, ok)
	assert.True(t, icon.Growing)
	assert.InDelta(t, 0.5, icon.Progress, 1e-9)
	// eased 0.75 of the way from 120 to 1400
	assert.InDelta(t, 1080, icon.W, 1e-6)
	assert.InDelta(t, 600-icon.W/2, icon.X, 1e-6, "icon grows around its centre")
	assert.Empty(t, f.launcher.kinds)

	f.tickAfter(425 * time.Millisecond)
	assert.Equal(t, []minigame.Kind{minigame.KindDog}, f.launcher.kinds)
	assert.Equal(t, []int{1}, f.launcher.levels)
	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, 1, f.audio.stopped, "audio stops before the handoff")

	assert.False(t, f.ctrl.Busy())
	assert.True(t, s.ClearedThisVisit())
	assert.Nil(t, f.ctrl.Return())
	assert.Equal(t, 2, f.progress.Level(minigame.KindDog))
	assert.Equal(t, 9, f.progress.Health())
	_, ok = f.ctrl.IconFrame(f.clock.Now())
	assert.False(t, ok)

	for i := 0; i < 10; i++ {
		f.tickAfter(time.Second)
	}
	assert.Len(t, f.launcher.kinds, 1, "the minigame runs exactly once")

	kind, res, played := f.ctrl.LastResult()
	assert.True(t, played)
	assert.Equal(t, minigame.KindDog, kind)
	assert.Equal(t, minigame.Win, res)
}

func TestNonWinCostsOneHealth(t *testing.T) {
	results := []minigame.Result{minigame.Lose, minigame.LoseByTheft, minigame.LoseBySurveillance}
	for _, res := range results {
		t.Run(res.String(), func(t *testing.T) {
			f := newFixture(t, 1, res)
			require.True(t, f.ctrl.Roll(minigame.KindMaze, f.clock.Now()))
			f.tickAfter(2 * time.Second)
			f.tickAfter(time.Second)

			assert.Len(t, f.launcher.kinds, 1)
			assert.Equal(t, 8, f.progress.Health())
			assert.Equal(t, 1, f.progress.Level(minigame.KindMaze))
		})
	}
}

func TestRestoreClampsIntoSafeZone(t *testing.T) {
	cases := []struct {
		x, want float64
	}{
		{x: 0, want: 21},
		{x: 20, want: 21},
		{x: 450, want: 450},
		{x: 880, want: 879},
		{x: 900, want: 879},
	}
	for _, tc := range cases {
		f := newFixture(t, 1, minigame.Lose)
		f.lobby.x = tc.x
		require.True(t, f.ctrl.Roll(minigame.KindJump, f.clock.Now()))
		f.lobby.scene, f.lobby.x = 3, 100

		f.tickAfter(2 * time.Second)
		f.tickAfter(time.Second)

		require.Len(t, f.lobby.restored, 1)
		got := f.lobby.restored[0]
		assert.Equal(t, 2, got.Scene, "restore returns to the captured scene")
		assert.Equal(t, tc.want, got.X, "x=%v", tc.x)
		assert.Greater(t, got.X, 20.0)
		assert.Less(t, got.X, 880.0)
	}
}

func TestResetVisitAllowsNewRoll(t *testing.T) {
	f := newFixture(t, 1, minigame.Win)
	require.True(t, f.ctrl.Roll(minigame.KindMatch3, f.clock.Now()))
	f.tickAfter(2 * time.Second)
	f.tickAfter(time.Second)
	require.Len(t, f.launcher.kinds, 1)

	assert.False(t, f.ctrl.Roll(minigame.KindMatch3, f.clock.Now()), "cleared this visit")

	f.ctrl.ResetVisit(5)
	assert.False(t, f.ctrl.Roll(minigame.KindMatch3, f.clock.Now()), "other scenes leave the slot alone")

	f.ctrl.ResetVisit(SceneFor(minigame.KindMatch3))
	s := f.ctrl.Slot(minigame.KindMatch3)
	assert.False(t, s.RolledThisVisit())
	assert.False(t, s.ClearedThisVisit())
	assert.True(t, f.ctrl.Roll(minigame.KindMatch3, f.clock.Now()))
}

func TestCancelledBeforeLaunchAborts(t *testing.T) {
	f := newFixture(t, 1, minigame.Win)
	require.True(t, f.ctrl.Roll(minigame.KindDog, f.clock.Now()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f.clock.Advance(5 * time.Second)
	f.ctrl.Tick(ctx, f.clock.Now())

	assert.Empty(t, f.launcher.kinds)
	assert.Equal(t, StateIdle, f.ctrl.Slot(minigame.KindDog).State())
	assert.False(t, f.ctrl.Busy())
	assert.Nil(t, f.ctrl.Return())
	assert.Equal(t, 9, f.progress.Health())
}

func TestRollScene(t *testing.T) {
	f := newFixture(t, 1, minigame.Win)

	assert.False(t, f.ctrl.RollScene(5, f.clock.Now()), "the final scene has no encounter")
	assert.True(t, f.ctrl.RollScene(1, f.clock.Now()))
	assert.True(t, f.ctrl.Slot(minigame.KindMatch3).Triggered())

	for scene := 1; scene <= 4; scene++ {
		kind, ok := KindForScene(scene)
		require.True(t, ok)
		assert.Equal(t, scene, SceneFor(kind))
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Chances.Maze = 1.5
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.GrowDuration = 0
	assert.Error(t, cfg.Validate())

	_, err := NewController(cfg, quest.NewTracker(), &fakeLobby{}, &fakeLauncher{}, nil, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestEaseOutQuad(t *testing.T) {
	assert.Equal(t, 0.0, EaseOutQuad(0))
	assert.Equal(t, 0.75, EaseOutQuad(0.5))
	assert.Equal(t, 1.0, EaseOutQuad(1))
}
