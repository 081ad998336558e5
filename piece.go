package twistycube

import (
	"fmt"
	"strings"
)

// PieceType classifies a piece by how many of its faces are visible.
type PieceType int

const (
	PieceUnknown PieceType = iota
	PieceInner
	PieceCenter
	PieceEdge
	PieceCorner
	PieceUnitary
)

func (t PieceType) String() string {
	switch t {
	case PieceInner:
		return "inner"
	case PieceCenter:
		return "center"
	case PieceEdge:
		return "edge"
	case PieceCorner:
		return "corner"
	case PieceUnitary:
		return "unitary"
	default:
		return "unknown"
	}
}

// pieceTypeByVisible is indexed by the number of visible faces.
var pieceTypeByVisible = [7]PieceType{
	PieceInner, PieceCenter, PieceEdge, PieceCorner,
	PieceUnknown, PieceUnknown, PieceUnitary,
}

// Face is one orientation-labeled color slot of a piece.
type Face struct {
	Solved    Direction // direction at construction
	Current   Direction // direction now
	Color     Color
	Introvert bool
}

// Piece is one of the order³ sub-cubes.
// Only the owning Cube mutates a piece.
type Piece struct {
	id      int
	address int
	kind    PieceType
	faces   [6]Face // indexed by solved direction
	facing  [6]int  // current direction -> index into faces
}

func newPiece(id int, visible []Direction, palette Palette) *Piece {
	p := &Piece{id: id, address: id}
	for _, d := range AllDirections {
		p.faces[d] = Face{Solved: d, Current: d, Color: Colorless, Introvert: true}
		p.facing[d] = int(d)
	}
	for _, d := range visible {
		p.faces[d].Color = palette[d]
		p.faces[d].Introvert = false
	}
	p.kind = pieceTypeByVisible[len(visible)]
	return p
}

// ID returns the permanent identity of the piece.
func (p *Piece) ID() int { return p.id }

// Address returns the current linear position.
func (p *Piece) Address() int { return p.address }

// Type returns the classification fixed at construction.
func (p *Piece) Type() PieceType { return p.kind }

// Faces returns a copy of the faces, indexed by solved direction.
func (p *Piece) Faces() [6]Face { return p.faces }

// FaceAt returns the face currently pointing toward d.
func (p *Piece) FaceAt(d Direction) Face {
	return p.faces[p.facing[d]]
}

// Front returns the face currently pointing front.
func (p *Piece) Front() Face { return p.FaceAt(Front) }

// Up returns the face currently pointing up.
func (p *Piece) Up() Face { return p.FaceAt(Up) }

// Right returns the face currently pointing right.
func (p *Piece) Right() Face { return p.FaceAt(Right) }

// Down returns the face currently pointing down.
func (p *Piece) Down() Face { return p.FaceAt(Down) }

// Left returns the face currently pointing left.
func (p *Piece) Left() Face { return p.FaceAt(Left) }

// Back returns the face currently pointing back.
func (p *Piece) Back() Face { return p.FaceAt(Back) }

// HasColor returns the current direction of the visible face carrying c.
// Introvert faces never match, so HasColor(Colorless) is always false.
func (p *Piece) HasColor(c Color) (Direction, bool) {
	for _, f := range p.faces {
		if !f.Introvert && f.Color == c {
			return f.Current, true
		}
	}
	return 0, false
}

// HasColors reports whether the piece carries every given color.
func (p *Piece) HasColors(cs ...Color) bool {
	for _, c := range cs {
		if _, ok := p.HasColor(c); !ok {
			return false
		}
	}
	return true
}

// Colors returns the visible colors in solved-direction order.
func (p *Piece) Colors() []Color {
	var out []Color
	for _, f := range p.faces {
		if !f.Introvert {
			out = append(out, f.Color)
		}
	}
	return out
}

// InPlace reports whether the piece sits at its home address with every
// face pointing its solved direction.
func (p *Piece) InPlace() bool {
	if p.address != p.id {
		return false
	}
	for _, f := range p.faces {
		if f.Current != f.Solved {
			return false
		}
	}
	return true
}

func (p *Piece) clone() *Piece {
	cp := *p
	return &cp
}

// reindex rebuilds the current-direction index from the faces.
func (p *Piece) reindex() {
	var seen [6]bool
	for i, f := range p.faces {
		if seen[f.Current] {
			panic(fmt.Sprintf("twistycube: piece %d has two faces pointing %s", p.id, f.Current.Name()))
		}
		seen[f.Current] = true
		p.facing[f.Current] = i
	}
}

func (p *Piece) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "#%d@%d %s [", p.id, p.address, p.kind)
	for i, d := range AllDirections {
		if i > 0 {
			sb.WriteByte(' ')
		}
		f := p.FaceAt(d)
		sb.WriteString(d.String())
		sb.WriteByte(':')
		sb.WriteString(f.Color.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// PieceState is a read-only snapshot of a piece.
type PieceState struct {
	ID      int
	Address int
	Type    PieceType
	Faces   [6]Face // indexed by solved direction
}

func (p *Piece) state() PieceState {
	return PieceState{ID: p.id, Address: p.address, Type: p.kind, Faces: p.faces}
}
