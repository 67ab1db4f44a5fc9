// Package quest tracks player progression across the lobby and its minigames
package quest

import (
	"fmt"
	"log"

	"github.com/zyedidia/generic/mapset"

	"github.com/WGrassw/Paw-aware/constants"
	"github.com/WGrassw/Paw-aware/minigame"
)

// Phase is the quest stage
type Phase int

const (
	PhaseExploring Phase = iota
	PhaseChallenging
)

func (p Phase) String() string {
	if p == PhaseChallenging {
		return "challenging"
	}
	return "exploring"
}

// Tracker owns health, per-minigame levels, quest phase and the visited scene set
type Tracker struct {
	health     int
	levels     [minigame.KindCount]int
	phase      Phase
	questLevel int
	visited    mapset.Set[int]
}

// NewTracker returns fresh progress: full health, every level at 1, exploring
func NewTracker() *Tracker {
	t := &Tracker{
		health:     constants.MaxHealth,
		phase:      PhaseExploring,
		questLevel: constants.StartQuestLvl,
		visited:    mapset.New[int](),
	}
	for i := range t.levels {
		t.levels[i] = constants.StartLevel
	}
	return t
}

// Health returns remaining health in [0, MaxHealth]
func (t *Tracker) Health() int { return t.health }

// Phase returns the current quest phase
func (t *Tracker) Phase() Phase { return t.phase }

// QuestLevel returns the synchronized level quest
func (t *Tracker) QuestLevel() int { return t.questLevel }

// Level returns the next level to be played for kind
func (t *Tracker) Level(kind minigame.Kind) int {
	return t.levels[kind]
}

// ClearedLevel is the highest level of kind already won
func (t *Tracker) ClearedLevel(kind minigame.Kind) int {
	return max(0, t.levels[kind]-1)
}

// Unlocked reports whether the final scene is reachable
// Jump is intentionally not part of the gate
func (t *Tracker) Unlocked() bool {
	return t.levels[minigame.KindDog] >= constants.UnlockLevel &&
		t.levels[minigame.KindMaze] >= constants.UnlockLevel &&
		t.levels[minigame.KindMatch3] >= constants.UnlockLevel
}

// AvailableSceneCount is 4, or 5 once the final scene unlocks
func (t *Tracker) AvailableSceneCount() int {
	if t.Unlocked() {
		return constants.UnlockedSceneCount
	}
	return constants.BaseSceneCount
}

// Visit records a scene entry
func (t *Tracker) Visit(scene int) {
	t.visited.Put(scene)
}

// Visited reports whether scene has been entered
func (t *Tracker) Visited(scene int) bool {
	return t.visited.Has(scene)
}

// VisitedCount returns the number of distinct scenes entered
func (t *Tracker) VisitedCount() int {
	return t.visited.Size()
}

// UpdateExploreCompletion moves Exploring to Challenging once every available scene was visited
// Returns true only on the call that performs the transition
func (t *Tracker) UpdateExploreCompletion() bool {
	if t.phase != PhaseExploring {
		return false
	}
	for scene := 1; scene <= t.AvailableSceneCount(); scene++ {
		if !t.visited.Has(scene) {
			return false
		}
	}
	t.phase = PhaseChallenging
	log.Printf("quest: all %d scenes explored, challenges open", t.AvailableSceneCount())
	return true
}

// ApplyResult folds a minigame outcome into progression
// A win advances exactly that level; anything else costs one unit of health
func (t *Tracker) ApplyResult(kind minigame.Kind, res minigame.Result) {
	if res.Won() {
		t.levels[kind]++
		log.Printf("quest: %s cleared, next level %d", kind, t.levels[kind])
		return
	}
	t.Damage(1)
	log.Printf("quest: %s %s, health %d", kind, res, t.health)
}

// Damage removes n units of health, clamped at zero
func (t *Tracker) Damage(n int) {
	if n <= 0 {
		return
	}
	t.health = max(0, t.health-n)
}

// SyncQuestLevel advances the level quest while every minigame has cleared it
// Only meaningful in the challenging phase
func (t *Tracker) SyncQuestLevel() int {
	if t.phase != PhaseChallenging {
		return t.questLevel
	}
	for t.questLevel <= t.minCleared() {
		t.questLevel++
		log.Printf("quest: level quest advanced to %d", t.questLevel)
	}
	return t.questLevel
}

func (t *Tracker) minCleared() int {
	m := t.ClearedLevel(minigame.Kinds[0])
	for _, k := range minigame.Kinds[1:] {
		m = min(m, t.ClearedLevel(k))
	}
	return m
}

// PanelLine is one row of the quest panel
type PanelLine struct {
	Text string
	Done bool
}

// Panel builds the quest panel for the renderer
func (t *Tracker) Panel() []PanelLine {
	if t.phase == PhaseExploring {
		return []PanelLine{{
			Text: fmt.Sprintf("Explore all available scenes (%d/%d)", t.visitedAvailable(), t.AvailableSceneCount()),
		}}
	}

	order := []minigame.Kind{minigame.KindMaze, minigame.KindDog, minigame.KindMatch3, minigame.KindJump}
	lines := make([]PanelLine, 0, len(order))
	for _, k := range order {
		lines = append(lines, PanelLine{
			Text: fmt.Sprintf("Complete Level %d of %s", t.questLevel, k.Title()),
			Done: t.ClearedLevel(k) >= t.questLevel,
		})
	}
	return lines
}

func (t *Tracker) visitedAvailable() int {
	n := 0
	for scene := 1; scene <= t.AvailableSceneCount(); scene++ {
		if t.visited.Has(scene) {
			n++
		}
	}
	return n
}
