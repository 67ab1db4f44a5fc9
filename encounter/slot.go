package encounter

import (
	"time"

	"github.com/WGrassw/Paw-aware/engine/fsm"
	"github.com/WGrassw/Paw-aware/minigame"
)

// Slot is the encounter state for one minigame
type Slot struct {
	Kind  minigame.Kind
	Scene int

	triggered        bool
	started          bool // single-invocation guard
	rolledThisVisit  bool
	clearedThisVisit bool
	animStart        time.Time
	id               string

	machine *fsm.Machine[*Slot]
	ctrl    *Controller
}

// State returns the current phase
func (s *Slot) State() fsm.StateID { return s.machine.State() }

// StateName returns the current phase name
func (s *Slot) StateName() string { return s.machine.StateName() }

// Triggered reports whether the encounter sequence is running
func (s *Slot) Triggered() bool { return s.triggered }

// RolledThisVisit reports whether the entry draw already happened during this visit
func (s *Slot) RolledThisVisit() bool { return s.rolledThisVisit }

// ClearedThisVisit reports whether the minigame already ran during this visit
func (s *Slot) ClearedThisVisit() bool { return s.clearedThisVisit }
