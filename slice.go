package twistycube

// Slice is the set of pieces in a layer range along one axis, captured
// at the moment it was taken.
type Slice struct {
	Axis       Direction
	StartLayer int
	EndLayer   int
	Pieces     []*Piece

	order int
}

// Len returns the number of pieces.
func (s Slice) Len() int {
	return len(s.Pieces)
}

// Face returns the outer face this slice is, if it is one.
func (s Slice) Face() (Direction, bool) {
	if s.StartLayer != s.EndLayer {
		return 0, false
	}
	switch s.StartLayer {
	case 1:
		return s.Axis, true
	case s.order:
		return s.Axis.Opposite(), true
	}
	return 0, false
}

// IsUniform reports whether every sticker of the slice facing d has the
// same color.
func (s Slice) IsUniform(d Direction) bool {
	return IsFaceUniform(s.Pieces, d)
}

// IsSolved reports whether the slice is an outer face showing one color.
func (s Slice) IsSolved() bool {
	d, ok := s.Face()
	return ok && s.IsUniform(d)
}

// ByType groups the slice's pieces by classification.
func (s Slice) ByType() map[PieceType][]*Piece {
	return GroupByType(s.Pieces)
}
