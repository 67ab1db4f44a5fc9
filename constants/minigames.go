package constants

import "time"

// ResultHold is how long a decided minigame keeps its banner on screen
const ResultHold = 1200 * time.Millisecond

// MinigameFrameRate is the rate the per-frame tuning values below were authored at
const MinigameFrameRate = 60.0

// Dog chase arena, in world units
const (
	DogArenaWidth  = 1200.0
	DogArenaHeight = 800.0

	DogFishSize    = 32.0
	DogCatSize     = 90.0
	DogSize        = 300.0
	DogThiefWidth  = 80.0
	DogThiefHeight = 120.0

	DogCatchRadius   = 120.0
	DogChaseRadius   = 260.0
	DogLoseRadius    = 330.0
	DogPickupRadius  = 50.0
	DogStealDistance = 12.0
)

// Dog chase pacing; speeds are world units per frame
const (
	DogCatSpeedBase   = 4.0
	DogBaseSpeed      = 2.0
	DogExtraSpeed     = 3.0
	DogSpeedLevelStep = 0.5
	DogChaseFactor    = 1.6
	DogRampTime       = 2 * time.Minute

	DogThiefWander = 1.5
	DogThiefChase  = 2.5

	DogFishBase      = 5
	DogFishStep      = 3
	DogRotBase       = 30 * time.Second
	DogRotStep       = 15 * time.Second
	DogStealBase     = 8000 * time.Millisecond
	DogStealStep     = 1500 * time.Millisecond
	DogStealMin      = 2500 * time.Millisecond
	DogThiefCooldown = 3 * time.Second
)

// Maze
const (
	// MazeCellPixels converts the beam range and light radius to maze cells
	MazeCellPixels = 26.0

	// Largest odd grid that fits a 1200x800 window at 26px cells
	MazeWidth  = 45
	MazeHeight = 29

	MazeLightRadius   = 135.0 / MazeCellPixels
	MazeExitGlow      = 2.0
	MazeMoveDelay     = 90 * time.Millisecond
	MazeBeamRange     = 720.0 / MazeCellPixels
	MazeBeamHalfAngle = 18.0
	MazeBeamSpeed     = 20.0
	MazeBeamLevelStep = 5.0
)

// Jump course, in world units
const (
	JumpGroundY    = 620.0
	JumpBasePlats  = 5
	JumpExtraPlats = 5

	JumpStartLeft  = 120.0
	JumpStartWidth = 320.0
	JumpStartInset = 60.0

	JumpWidthBigMin = 240
	JumpWidthBigMax = 340
	JumpWidthCap    = 90
	JumpWidthDecay  = 28

	JumpReachMargin = 55.0
	JumpGapMin      = 120.0
	JumpGapMax      = 520.0
	JumpTakeoffBack = 18.0

	JumpAimMin   = 80.0
	JumpAimMax   = 420.0
	JumpAimHz    = 0.6
	JumpArcMin   = 120.0
	JumpArcMax   = 320.0
	JumpArcPower = 0.7

	JumpDurationMin = 750 * time.Millisecond
	JumpDurationMax = 1050 * time.Millisecond

	JumpGravity    = 1800.0
	JumpCatSize    = 72.0
	JumpFallFloor  = 800.0 + JumpCatSize + 40
	JumpCamPadding = 170.0
	JumpCamSmooth  = 7.5
)
