package lobby

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WGrassw/Paw-aware/constants"
	"github.com/WGrassw/Paw-aware/input"
	"github.com/WGrassw/Paw-aware/minigame"
	"github.com/WGrassw/Paw-aware/quest"
)

type fakeEncounters struct {
	busy   bool
	resets []int
	rolls  []int
}

func (f *fakeEncounters) Busy() bool              { return f.busy }
func (f *fakeEncounters) ResetVisit(departed int) { f.resets = append(f.resets, departed) }
func (f *fakeEncounters) RollScene(scene int, _ time.Time) bool {
	f.rolls = append(f.rolls, scene)
	return false
}

type fakeSteps struct {
	starts []bool
	stops  int
}

func (f *fakeSteps) StartFootsteps(sprint bool) { f.starts = append(f.starts, sprint) }
func (f *fakeSteps) StopFootsteps()             { f.stops++ }

var (
	t0    = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	right = input.State{Right: true}
	left  = input.State{Left: true}
	idle  = input.State{}
)

func newLobby(t *testing.T) (*Controller, *quest.Tracker, *fakeEncounters, *fakeSteps) {
	t.Helper()
	tr := quest.NewTracker()
	steps := &fakeSteps{}
	c, err := NewController(DefaultConfig(), tr, steps)
	require.NoError(t, err)
	enc := &fakeEncounters{}
	c.Attach(enc)
	return c, tr, enc, steps
}

func TestSceneRing(t *testing.T) {
	tests := []struct {
		scene, n, next, prev int
	}{
		{1, 4, 2, 4},
		{4, 4, 1, 3},
		{2, 4, 3, 1},
		{1, 5, 2, 5},
		{5, 5, 1, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.next, NextScene(tt.scene, tt.n), "next of %d/%d", tt.scene, tt.n)
		assert.Equal(t, tt.prev, PrevScene(tt.scene, tt.n), "prev of %d/%d", tt.scene, tt.n)
	}
}

func TestStartPosition(t *testing.T) {
	c, tr, _, _ := newLobby(t)
	scene, x := c.Position()
	assert.Equal(t, constants.SceneDog, scene)
	assert.Equal(t, constants.PlayerStartX, x)
	assert.True(t, tr.Visited(constants.SceneDog))
}

func TestWalkAndSprintSpeed(t *testing.T) {
	c, _, _, _ := newLobby(t)

	c.Advance(t0, time.Second, right)
	_, x := c.Position()
	assert.InDelta(t, 500, x, 1e-9)

	c.Advance(t0.Add(time.Second), 300*time.Millisecond, input.State{Left: true, Sprint: true})
	_, x = c.Position()
	assert.InDelta(t, 200, x, 1e-9)
}

func TestRightEdgeWrapsToNextScene(t *testing.T) {
	c, tr, enc, _ := newLobby(t)

	c.Advance(t0, time.Second, input.State{Right: true, Sprint: true})
	scene, x := c.Position()
	assert.Equal(t, 3, scene)
	assert.Equal(t, constants.LobbyLeftEdge, x)
	assert.True(t, tr.Visited(3))
	assert.Equal(t, []int{2}, enc.resets)
	assert.Empty(t, enc.rolls, "no rolls while exploring")
	assert.Equal(t, 1, c.SceneSwitches())
}

func TestLeftEdgeWrapsToPreviousScene(t *testing.T) {
	c, _, _, _ := newLobby(t)

	c.Advance(t0, time.Second, left)
	scene, x := c.Position()
	assert.Equal(t, 1, scene)
	assert.Equal(t, constants.LobbyRightEdge, x)
	assert.Equal(t, 1, c.SceneSwitches())

	c.Advance(t0.Add(time.Second), 10*time.Millisecond, left)
	assert.Equal(t, 1, c.SceneSwitches(), "walking inside a scene is not a switch")
}

func TestBusyEncounterBlocksMovement(t *testing.T) {
	c, _, enc, _ := newLobby(t)
	enc.busy = true

	c.Advance(t0, time.Second, right)
	_, x := c.Position()
	assert.Equal(t, constants.PlayerStartX, x)
}

func TestRestoreLocksMovement(t *testing.T) {
	c, _, _, _ := newLobby(t)
	c.Advance(t0, 0, idle)
	c.Restore(3, 450)

	c.Advance(t0.Add(100*time.Millisecond), 100*time.Millisecond, right)
	scene, x := c.Position()
	assert.Equal(t, 3, scene)
	assert.Equal(t, 450.0, x, "locked window suppresses movement")

	c.Advance(t0.Add(300*time.Millisecond), 100*time.Millisecond, right)
	_, x = c.Position()
	assert.InDelta(t, 490, x, 1e-9)
}

func TestExploreCompletionRollsEnteredScene(t *testing.T) {
	c, tr, enc, _ := newLobby(t)
	now := t0

	// 2 -> 3 -> 4 -> 1 completes exploration on entering scene 1
	for i := 0; i < 3; i++ {
		c.Advance(now, time.Second, input.State{Right: true, Sprint: true})
		now = now.Add(time.Second)
	}
	assert.Equal(t, 1, c.Scene())
	assert.Equal(t, quest.PhaseChallenging, tr.Phase())
	assert.Equal(t, []int{1}, enc.rolls)
	assert.Equal(t, []int{2, 3, 4}, enc.resets)

	// Next entry rolls too
	c.Advance(now, time.Second, input.State{Right: true, Sprint: true})
	assert.Equal(t, []int{1, 2}, enc.rolls)
}

func TestLockedFinalSceneFallsBack(t *testing.T) {
	c, tr, _, _ := newLobby(t)
	require.False(t, tr.Unlocked())

	c.Restore(constants.SceneFinal, 300)
	c.Advance(t0, 0, idle)

	scene, x := c.Position()
	assert.Equal(t, constants.SceneJump, scene)
	assert.Equal(t, constants.LobbyRightEdge-1, x)
}

func TestUnlockedFinalSceneReachable(t *testing.T) {
	c, tr, _, _ := newLobby(t)
	for _, k := range []minigame.Kind{minigame.KindDog, minigame.KindMaze, minigame.KindMatch3} {
		tr.ApplyResult(k, minigame.Win)
	}
	require.True(t, tr.Unlocked())

	c.Restore(4, 850)
	c.Advance(t0.Add(time.Second), 200*time.Millisecond, right)
	assert.Equal(t, constants.SceneFinal, c.Scene())

	f := c.Frame()
	assert.True(t, f.Story)
	assert.Equal(t, 5, f.SceneCount)
}

func TestFootstepsFollowMovement(t *testing.T) {
	c, _, _, steps := newLobby(t)
	now := t0

	c.Advance(now, 16*time.Millisecond, right)
	now = now.Add(16 * time.Millisecond)
	c.Advance(now, 16*time.Millisecond, right)
	assert.Equal(t, []bool{false}, steps.starts, "walk loop starts once")

	now = now.Add(16 * time.Millisecond)
	c.Advance(now, 16*time.Millisecond, input.State{Right: true, Sprint: true})
	assert.Equal(t, []bool{false, true}, steps.starts, "sprint swaps the loop")

	now = now.Add(16 * time.Millisecond)
	c.Advance(now, 16*time.Millisecond, idle)
	assert.Equal(t, 1, steps.stops)

	c.Advance(now.Add(16*time.Millisecond), 16*time.Millisecond, idle)
	assert.Equal(t, 1, steps.stops, "stop only on halt")
}

func TestFrameSnapshot(t *testing.T) {
	c, _, _, _ := newLobby(t)
	c.Advance(t0, 100*time.Millisecond, left)

	f := c.Frame()
	assert.Equal(t, constants.SceneDog, f.Scene)
	assert.Equal(t, 4, f.SceneCount)
	assert.True(t, f.FaceLeft)
	assert.Equal(t, constants.MaxHealth, f.Health)
	assert.False(t, f.Story)
	require.Len(t, f.Panel, 1)
	assert.Contains(t, f.Panel[0].Text, "Explore all available scenes")
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.StartScene = 5
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.WalkSpeed = 0
	assert.Error(t, cfg.Validate())
}
