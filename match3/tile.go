// Package match3 implements the fish-sorting match-three minigame: board
// rules (runs, specials, chains, gravity, shuffles) and a terminal front-end
package match3

// Color is a fish color
type Color int8

const (
	Blue Color = iota
	Green
	Pink
	Purple
	White
	Yellow
	ColorCount
)

var colorNames = [ColorCount]string{"Blue", "Green", "Pink", "Purple", "White", "Yellow"}

func (c Color) String() string {
	if c < 0 || c >= ColorCount {
		return "None"
	}
	return colorNames[c]
}

// Kind is the tile variant
type Kind uint8

const (
	KindNormal Kind = iota
	KindStriped
	KindBomb
	KindRainbow
	KindTrash
)

func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindStriped:
		return "striped"
	case KindBomb:
		return "bomb"
	case KindRainbow:
		return "rainbow"
	case KindTrash:
		return "trash"
	default:
		return "unknown"
	}
}

// Axis is the line a striped tile clears
type Axis uint8

const (
	AxisRow Axis = iota
	AxisCol
)

// Tile is one board piece; Color is meaningless for Rainbow and Trash, Axis only for Striped
// Tiles are immutable once placed; conversions replace the pointer
type Tile struct {
	Kind  Kind
	Color Color
	Axis  Axis
}

func Normal(c Color) *Tile             { return &Tile{Kind: KindNormal, Color: c} }
func Striped(c Color, axis Axis) *Tile { return &Tile{Kind: KindStriped, Color: c, Axis: axis} }
func Bomb(c Color) *Tile               { return &Tile{Kind: KindBomb, Color: c} }
func Rainbow() *Tile                   { return &Tile{Kind: KindRainbow, Color: -1} }
func Trash() *Tile                     { return &Tile{Kind: KindTrash, Color: -1} }

// MatchColor is the color the tile matches as; holes, trash and rainbows never match
func (t *Tile) MatchColor() (Color, bool) {
	if t == nil || t.Kind == KindTrash || t.Kind == KindRainbow {
		return 0, false
	}
	return t.Color, true
}

// IsTrash is nil-safe
func (t *Tile) IsTrash() bool {
	return t != nil && t.Kind == KindTrash
}

// IsRainbow is nil-safe
func (t *Tile) IsRainbow() bool {
	return t != nil && t.Kind == KindRainbow
}

// Swappable reports whether the tile may take part in a player swap
func (t *Tile) Swappable() bool {
	return t != nil && t.Kind != KindTrash
}

// Counts reports whether clearing the tile counts toward the target color
func (t *Tile) Counts(target Color) bool {
	c, ok := t.MatchColor()
	return ok && c == target
}

// Template returns a fresh copy for rainbow conversion; nil for kinds that cannot be copied
func (t *Tile) Template() *Tile {
	if t == nil {
		return nil
	}
	switch t.Kind {
	case KindNormal, KindStriped, KindBomb:
		cp := *t
		return &cp
	default:
		return nil
	}
}
