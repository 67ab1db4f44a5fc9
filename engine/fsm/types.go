package fsm

import "time"

// StateID is a unique identifier for a node
type StateID int

const (
	StateNone StateID = 0
	StateRoot StateID = 1
)

// EventType identifies an external event routed into the machine
// Zero is reserved for tick (automatic) transitions
type EventType int

const EventTick EventType = 0

// Machine is a generic hierarchical finite state machine runtime
// T is the context passed to actions and guards
type Machine[T any] struct {
	nodes map[StateID]*Node[T]

	activeStateID StateID
	timeInState   time.Duration
	activePath    []StateID // Root -> ... -> Leaf
}

// Node represents a state in the hierarchy
type Node[T any] struct {
	ID       StateID
	Name     string
	ParentID StateID

	// Path from root to this node, filled by CompilePaths
	Path []StateID

	OnEnter  []ActionFunc[T]
	OnUpdate []ActionFunc[T]
	OnExit   []ActionFunc[T]

	// Evaluated in insertion order
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    EventType    // EventTick = evaluated every Update
	Guard    GuardFunc[T] // nil = always true
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T, timeInState time.Duration) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)
