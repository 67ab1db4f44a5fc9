package input

// State is the per-frame key snapshot consumed by the lobby and minigames
type State struct {
	Left, Right, Up, Down bool
	Sprint                bool
	Primary               bool
	Quit                  bool
}

// Direction returns -1, 0 or 1 along the horizontal axis
func (s State) Direction() float64 {
	switch {
	case s.Left && !s.Right:
		return -1
	case s.Right && !s.Left:
		return 1
	default:
		return 0
	}
}

// Moving reports whether any horizontal movement is requested
func (s State) Moving() bool {
	return s.Direction() != 0
}

// Vertical returns -1 for up, 1 for down, 0 otherwise
func (s State) Vertical() float64 {
	switch {
	case s.Up && !s.Down:
		return -1
	case s.Down && !s.Up:
		return 1
	default:
		return 0
	}
}
