package constants

import "time"

// Encounter animation timing
const (
	SuspenseDelay = 2000 * time.Millisecond
	GrowDuration  = 850 * time.Millisecond
)

// Encounter icon geometry, in world units
const (
	IconNativeWidth  = 120.0
	IconNativeHeight = 120.0
	IconGrowWidth    = 1400.0
	IconGrowHeight   = 1000.0

	// Icon anchor (top-left) in the lobby world
	IconX = 540.0
	IconY = 340.0
)

// Default trigger chances per slot
const (
	ChanceMatch3 = 0.20
	ChanceDog    = 0.40
	ChanceMaze   = 0.20
	ChanceJump   = 0.40
)
