package twistycube

import (
	"fmt"
	"strings"
)

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved

	// Colorless marks an introvert face that is never visible.
	Colorless Color = 0xFF
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	case Colorless:
		return "-"
	default:
		return "?"
	}
}

// Name returns the lowercase color name.
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Red:
		return "red"
	case Orange:
		return "orange"
	case Colorless:
		return "colorless"
	default:
		return "unknown"
	}
}

// ParseColor accepts a color initial or full name.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "w", "white":
		return White, nil
	case "y", "yellow":
		return Yellow, nil
	case "g", "green":
		return Green, nil
	case "b", "blue":
		return Blue, nil
	case "r", "red":
		return Red, nil
	case "o", "orange":
		return Orange, nil
	}
	return Colorless, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// Palette assigns a sticker color to each direction, indexed by Direction.
type Palette [6]Color

// DefaultPalette is the standard Western color scheme.
var DefaultPalette = Palette{
	Front: Green,
	Up:    White,
	Right: Red,
	Down:  Yellow,
	Left:  Orange,
	Back:  Blue,
}

// ColorOf returns the color shown on face d when solved.
func (p Palette) ColorOf(d Direction) Color {
	return p[d]
}

// DirectionOf returns the face whose solved color is c.
func (p Palette) DirectionOf(c Color) (Direction, bool) {
	for _, d := range AllDirections {
		if p[d] == c {
			return d, true
		}
	}
	return 0, false
}

// Validate checks that every direction has a distinct, real color.
func (p Palette) Validate() error {
	seen := make(map[Color]bool, 6)
	for _, d := range AllDirections {
		c := p[d]
		if c > Orange {
			return fmt.Errorf("%w: face %s has no color", ErrInvalidColor, d)
		}
		if seen[c] {
			return fmt.Errorf("%w: %s used twice", ErrInvalidColor, c.Name())
		}
		seen[c] = true
	}
	return nil
}
