package twistycube

import (
	"fmt"
	"math"
	"strconv"
)

// Twist is one rotation command: a base letter, a signed number of
// clockwise quarter turns and a 1-indexed layer range.
//
// Bases F U R D L B turn layers StartLayer..EndLayer from that face.
// Lowercase f u r d l b are wide turns covering one extra inner layer.
// M, E and S turn every inner layer and follow L, D and F respectively.
// X, Y and Z turn the whole cube and follow R, U and F. Layer fields are
// ignored for M E S X Y Z.
//
// Twists are values; treat a constructed twist as immutable.
type Twist struct {
	Base       byte
	Amount     int
	StartLayer int
	EndLayer   int
}

// NewTwist returns an outer-layer twist.
func NewTwist(base byte, amount int) Twist {
	return Twist{Base: base, Amount: amount, StartLayer: 1, EndLayer: 1}
}

// NewLayerTwist returns a twist of layers [start, end] below face d.
func NewLayerTwist(d Direction, amount, start, end int) Twist {
	return Twist{Base: d.Initial(), Amount: amount, StartLayer: start, EndLayer: end}
}

// TwistFromDegrees builds a twist from an arbitrary angle, rounding to
// the nearest quarter turn.
func TwistFromDegrees(base byte, degrees float64) Twist {
	return NewTwist(base, int(math.Round(degrees/90)))
}

// ValidBase reports whether b is one of the 18 twist letters.
func ValidBase(b byte) bool {
	switch b {
	case 'F', 'U', 'R', 'D', 'L', 'B',
		'f', 'u', 'r', 'd', 'l', 'b',
		'E', 'M', 'S', 'X', 'Y', 'Z':
		return true
	}
	return false
}

// Validate checks the base letter and layer range.
func (t Twist) Validate() error {
	if !ValidBase(t.Base) {
		return fmt.Errorf("%w: unknown base %q", ErrInvalidTwist, t.Base)
	}
	if t.StartLayer < 1 || t.EndLayer < t.StartLayer {
		return fmt.Errorf("%w: layers %d..%d", ErrInvalidTwist, t.StartLayer, t.EndLayer)
	}
	return nil
}

// Inverse returns the twist undoing t.
func (t Twist) Inverse() Twist {
	t.Amount = -t.Amount
	return t
}

// Degrees returns the rotation angle, clockwise positive.
func (t Twist) Degrees() int {
	return t.Amount * 90
}

// Quarters returns the amount normalized into [0, 4).
func (t Twist) Quarters() int {
	return mod(t.Amount, 4)
}

// IsIdentity reports whether the net rotation is a multiple of 360°.
func (t Twist) IsIdentity() bool {
	return t.Quarters() == 0
}

// Axis returns the direction the twist rotates around, clockwise when
// viewed from outside that face.
func (t Twist) Axis() (Direction, bool) {
	switch t.Base {
	case 'M':
		return Left, true
	case 'E':
		return Down, true
	case 'S':
		return Front, true
	case 'X':
		return Right, true
	case 'Y':
		return Up, true
	case 'Z':
		return Front, true
	}
	return DirectionByInitial(t.Base)
}

// Layers resolves the twist into an axis and a 1-indexed layer range for
// a cube of the given order.
func (t Twist) Layers(order int) (axis Direction, start, end int, ok bool) {
	axis, ok = t.Axis()
	if !ok {
		return 0, 0, 0, false
	}
	switch t.Base {
	case 'M', 'E', 'S':
		return axis, 2, order - 1, true
	case 'X', 'Y', 'Z':
		return axis, 1, order, true
	case 'f', 'u', 'r', 'd', 'l', 'b':
		end = t.EndLayer + 1
		if end > order {
			end = order
		}
		return axis, t.StartLayer, end, true
	}
	return axis, t.StartLayer, t.EndLayer, true
}

// IsReorientation reports whether the twist turns the whole cube.
func (t Twist) IsReorientation(order int) bool {
	_, start, end, ok := t.Layers(order)
	return ok && start == 1 && end == order
}

// Counts reports whether the twist contributes to the move counter.
func (t Twist) Counts(order int) bool {
	return !t.IsIdentity() && !t.IsReorientation(order)
}

// Notation renders the twist in parseable notation. Layer ranges other
// than the default are dropped; String keeps them.
func (t Twist) Notation() string {
	return t.render(string(t.Base))
}

// String renders the twist like Notation, adding a layer range such as
// "R[2..3]'" when the layers differ from the default. The result parses
// back to the same twist for uppercase bases.
func (t Twist) String() string {
	if t.StartLayer == 1 && t.EndLayer == 1 {
		return t.Notation()
	}
	return t.render(fmt.Sprintf("%c[%d..%d]", t.Base, t.StartLayer, t.EndLayer))
}

func (t Twist) render(head string) string {
	switch {
	case t.Amount == 1:
		return head
	case t.Amount == -1:
		return head + "'"
	case t.Amount >= 0:
		return head + strconv.Itoa(t.Amount)
	default:
		return "(" + head + strconv.Itoa(-t.Amount) + ")'"
	}
}

// sameSlice reports whether a and b turn the same layers the same way.
func sameSlice(a, b Twist) bool {
	return a.Base == b.Base && a.StartLayer == b.StartLayer && a.EndLayer == b.EndLayer
}

// Merge combines t followed by o when both turn the same slice.
// A merged Amount of 0 means the pair cancels out.
func (t Twist) Merge(o Twist) (Twist, bool) {
	if !sameSlice(t, o) {
		return Twist{}, false
	}
	t.Amount = normalizeAmount(t.Amount + o.Amount)
	return t, true
}

// IsCancellation reports whether o exactly undoes t.
func (t Twist) IsCancellation(o Twist) bool {
	m, ok := t.Merge(o)
	return ok && m.Amount == 0
}

// normalizeAmount maps a quarter count onto -1, 1 or 2, or 0 for identity.
func normalizeAmount(n int) int {
	switch mod(n, 4) {
	case 1:
		return 1
	case 2:
		return 2
	case 3:
		return -1
	default:
		return 0
	}
}
