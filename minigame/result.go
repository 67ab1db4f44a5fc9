package minigame

// Result is the definite outcome every minigame returns
type Result int

const (
	Lose Result = iota
	Win
	LoseByTheft
	LoseBySurveillance
)

func (r Result) String() string {
	switch r {
	case Win:
		return "win"
	case Lose:
		return "lose"
	case LoseByTheft:
		return "lose_thief"
	case LoseBySurveillance:
		return "lose_half"
	default:
		return "unknown"
	}
}

// Won reports whether r counts as a win; every other value costs one unit of health
func (r Result) Won() bool {
	return r == Win
}

// Kind identifies a minigame and the progression skill it levels
type Kind int

const (
	KindMatch3 Kind = iota
	KindDog
	KindMaze
	KindJump
	KindCount
)

// Kinds lists all minigames in slot order
var Kinds = [KindCount]Kind{KindMatch3, KindDog, KindMaze, KindJump}

func (k Kind) String() string {
	switch k {
	case KindMatch3:
		return "match3"
	case KindDog:
		return "dog"
	case KindMaze:
		return "maze"
	case KindJump:
		return "jump"
	default:
		return "unknown"
	}
}

// Title is the human label shown in the quest panel and window title
func (k Kind) Title() string {
	switch k {
	case KindMatch3:
		return "Match-Three"
	case KindDog:
		return "Dog"
	case KindMaze:
		return "Maze"
	case KindJump:
		return "Jumpers"
	default:
		return "?"
	}
}
