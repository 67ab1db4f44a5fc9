package constants

import "time"

// Lobby world geometry, in world units
const (
	LobbyLeftEdge   = 0.0
	LobbyRightEdge  = 900.0
	LobbySafeMargin = 20.0
	LobbyWidth      = 1200.0
	LobbyHeight     = 800.0

	PlayerStartX = 100.0
	PlayerWidth  = 300.0
)

// Lobby movement
const (
	// WalkSpeed is world units per second (5 units per frame at 80 FPS)
	WalkSpeed = 400.0

	// SprintSpeed is world units per second (10 units per frame at 100 FPS)
	SprintSpeed = 1000.0

	// SceneSwitchLock suppresses movement after returning from a minigame
	SceneSwitchLock = 220 * time.Millisecond

	// Walk animation frame advance per tick
	WalkFrameStep   = 0.1
	SprintFrameStep = 0.2
	WalkFrameCount  = 4
)

// Keyboard hold emulation; terminals deliver key repeat but never key release
const (
	KeyHoldInitial = 520 * time.Millisecond
	KeyHoldRepeat  = 90 * time.Millisecond
)

// Lobby presentation
const (
	LobbyTitle = "Runner"
)
