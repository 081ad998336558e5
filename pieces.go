package twistycube

// FilterByType returns the pieces of type t, preserving order.
func FilterByType(pieces []*Piece, t PieceType) []*Piece {
	var out []*Piece
	for _, p := range pieces {
		if p.kind == t {
			out = append(out, p)
		}
	}
	return out
}

// GroupByType buckets pieces by classification.
func GroupByType(pieces []*Piece) map[PieceType][]*Piece {
	out := make(map[PieceType][]*Piece)
	for _, p := range pieces {
		out[p.kind] = append(out[p.kind], p)
	}
	return out
}

// FilterByColors returns the pieces carrying every color in cs.
func FilterByColors(pieces []*Piece, cs ...Color) []*Piece {
	var out []*Piece
	for _, p := range pieces {
		if p.HasColors(cs...) {
			out = append(out, p)
		}
	}
	return out
}

// FaceColors returns the colors the pieces show toward d. Pieces with an
// introvert face toward d are skipped.
func FaceColors(pieces []*Piece, d Direction) []Color {
	out := make([]Color, 0, len(pieces))
	for _, p := range pieces {
		f := p.FaceAt(d)
		if f.Introvert {
			continue
		}
		out = append(out, f.Color)
	}
	return out
}

// IsFaceUniform reports whether all visible stickers toward d share one color.
func IsFaceUniform(pieces []*Piece, d Direction) bool {
	colors := FaceColors(pieces, d)
	for _, c := range colors {
		if c != colors[0] {
			return false
		}
	}
	return true
}
