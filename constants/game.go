package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single simulation step after a stall (resize, minigame return)
	MaxFrameDelta = 100 * time.Millisecond
)

// Progression
const (
	MaxHealth     = 9
	StartLevel    = 1
	StartQuestLvl = 1

	// UnlockLevel is the level every gating skill must reach before scene 5 opens
	UnlockLevel = 2
)

// Scene identifiers
const (
	SceneMatch3 = 1
	SceneDog    = 2
	SceneMaze   = 3
	SceneJump   = 4
	SceneFinal  = 5

	BaseSceneCount     = 4
	UnlockedSceneCount = 5

	DefaultStartScene = SceneDog
)
