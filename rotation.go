package twistycube

import "fmt"

// Matrix is a 3×3 integer rotation matrix.
type Matrix [3][3]int

// Identity is the identity matrix.
var Identity = Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// QuarterTurn returns the matrix turning 90° clockwise as seen from
// outside face d: v' = (n·v)n − n×v.
func QuarterTurn(d Direction) Matrix {
	n := d.Normal()
	var m Matrix
	basis := [3]Vector{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for j, e := range basis {
		c := n.Cross(e)
		k := n.Dot(e)
		col := Vector{k*n.X - c.X, k*n.Y - c.Y, k*n.Z - c.Z}
		m[0][j], m[1][j], m[2][j] = col.X, col.Y, col.Z
	}
	return m
}

// TurnMatrix returns the rotation for the given number of clockwise
// quarter turns about d.
func TurnMatrix(d Direction, quarters int) Matrix {
	q := QuarterTurn(d)
	m := Identity
	for i := 0; i < mod(quarters, 4); i++ {
		m = q.Mul(m)
	}
	return m
}

// Mul returns m·o.
func (m Matrix) Mul(o Matrix) Matrix {
	var r Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				r[i][j] += m[i][k] * o[k][j]
			}
		}
	}
	return r
}

// Apply returns m·v.
func (m Matrix) Apply(v Vector) Vector {
	return Vector{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Relocation records one piece moved by a twist.
type Relocation struct {
	PieceID int
	From    int
	To      int
}

// rotate applies t to the piece array and returns the relocations.
// The piece array is replaced, never updated in place.
func (c *Cube) rotate(t Twist) []Relocation {
	quarters := t.Quarters()
	if quarters == 0 {
		return nil
	}
	axis, start, end, ok := t.Layers(c.order)
	if !ok {
		return nil
	}
	addrs := c.grid.Select(axis, start, end)
	if len(addrs) == 0 {
		return nil
	}

	m := TurnMatrix(axis, quarters)
	n := c.order

	affected := make([]bool, len(c.pieces))
	for _, a := range addrs {
		affected[a] = true
	}

	snapshot := make([]*Piece, len(c.pieces))
	copy(snapshot, c.pieces)
	next := make([]*Piece, len(c.pieces))
	copy(next, c.pieces)

	taken := make([]bool, len(c.pieces))
	moves := make([]Relocation, 0, len(addrs))
	for _, from := range addrs {
		p := c.grid.Coord(from)
		// Doubled offsets from the center keep even orders on integers.
		r := m.Apply(Vector{2*p.X - (n - 1), 2*p.Y - (n - 1), 2*p.Z - (n - 1)})
		dst := Coord{(r.X + n - 1) / 2, (r.Y + n - 1) / 2, (r.Z + n - 1) / 2}
		if !c.grid.Contains(dst) {
			panic(fmt.Sprintf("twistycube: %s sends address %d outside the lattice", t, from))
		}
		to := c.grid.Address(dst)
		if !affected[to] || taken[to] {
			panic(fmt.Sprintf("twistycube: %s is not a bijection at address %d -> %d", t, from, to))
		}
		taken[to] = true
		next[to] = snapshot[from]
		moves = append(moves, Relocation{PieceID: snapshot[from].id, From: from, To: to})
	}

	for _, mv := range moves {
		piece := next[mv.To]
		piece.address = mv.To
		for i := range piece.faces {
			f := &piece.faces[i]
			d, ok := DirectionByNormal(m.Apply(f.Current.Normal()))
			if !ok {
				panic(fmt.Sprintf("twistycube: %s rotates face %s of piece %d off every axis", t, f.Solved, piece.id))
			}
			f.Current = d
		}
		piece.reindex()
	}

	c.pieces = next
	return moves
}
