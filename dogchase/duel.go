package dogchase

import (
	"fmt"

	"github.com/WGrassw/Paw-aware/minigame"
)

// Hand is a rock-paper-scissors throw
type Hand int

const (
	Rock Hand = iota + 1
	Paper
	Scissors
)

func (h Hand) String() string {
	switch h {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	default:
		return "?"
	}
}

// beats reports whether h wins against o
func (h Hand) beats(o Hand) bool {
	return (h == Rock && o == Scissors) ||
		(h == Paper && o == Rock) ||
		(h == Scissors && o == Paper)
}

// DuelOutcome is the result of one throw
type DuelOutcome int

const (
	DuelTie DuelOutcome = iota
	DuelWon
	DuelLost
)

// Duel plays h against the thief; it is a no-op outside PhaseDuel
func (w *World) Duel(h Hand) (Hand, DuelOutcome, bool) {
	if w.phase != PhaseDuel || h < Rock || h > Scissors {
		return 0, DuelTie, false
	}
	cpu := Hand(w.rng.Intn(3) + 1)

	switch {
	case h == cpu:
		w.duelMsg = fmt.Sprintf("Both threw %s. Tie! Try again.", h)
		return cpu, DuelTie, true
	case h.beats(cpu):
		w.clearTarget()
		w.Thief.Active = false
		w.Thief.Pos = Vec{X: -999, Y: -999}
		w.duelMsg = fmt.Sprintf("%s beats %s. The thief runs off!", h, cpu)
		w.phase = PhasePlay
		return cpu, DuelWon, true
	default:
		w.duelMsg = fmt.Sprintf("%s beats %s.", cpu, h)
		w.finish(minigame.Lose, "You lost the fight!")
		return cpu, DuelLost, true
	}
}
