package twistycube

import (
	"math"
	"strings"
)

// Direction identifies one of the six face directions of the cube.
type Direction int

const (
	Front Direction = iota
	Up
	Right
	Down
	Left
	Back
)

// AllDirections lists the six directions in id order.
var AllDirections = [6]Direction{Front, Up, Right, Down, Left, Back}

// Vector is an integer vector in the cube frame.
// X grows toward Right, Y toward Up and Z toward Front.
type Vector struct {
	X, Y, Z int
}

// Neg returns the negated vector.
func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(o Vector) int {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o.
func (v Vector) Cross(o Vector) Vector {
	return Vector{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

type directionInfo struct {
	name      string
	initial   byte
	normal    Vector
	opposite  Direction
	neighbors [4]Direction // up, right, down, left when looking at the face
}

var directionTable = [6]directionInfo{
	Front: {"front", 'F', Vector{0, 0, 1}, Back, [4]Direction{Up, Right, Down, Left}},
	Up:    {"up", 'U', Vector{0, 1, 0}, Down, [4]Direction{Back, Right, Front, Left}},
	Right: {"right", 'R', Vector{1, 0, 0}, Left, [4]Direction{Up, Back, Down, Front}},
	Down:  {"down", 'D', Vector{0, -1, 0}, Up, [4]Direction{Front, Right, Back, Left}},
	Left:  {"left", 'L', Vector{-1, 0, 0}, Right, [4]Direction{Up, Front, Down, Back}},
	Back:  {"back", 'B', Vector{0, 0, -1}, Front, [4]Direction{Up, Left, Down, Right}},
}

// Valid reports whether d is one of the six directions.
func (d Direction) Valid() bool {
	return d >= Front && d <= Back
}

// Name returns the lowercase name ("front", "up", ...).
func (d Direction) Name() string {
	if !d.Valid() {
		return "unknown"
	}
	return directionTable[d].name
}

// Initial returns the single-letter face initial.
func (d Direction) Initial() byte {
	if !d.Valid() {
		return '?'
	}
	return directionTable[d].initial
}

// String returns the face initial.
func (d Direction) String() string {
	return string(d.Initial())
}

// Normal returns the outward unit normal of the face.
func (d Direction) Normal() Vector {
	return directionTable[d].normal
}

// Opposite returns the antipodal direction.
func (d Direction) Opposite() Direction {
	return directionTable[d].opposite
}

// Neighbors returns the four adjacent directions in clockwise order
// starting from the face's default up.
func (d Direction) Neighbors() [4]Direction {
	return directionTable[d].neighbors
}

// Positive reports whether the normal points along a positive axis.
func (d Direction) Positive() bool {
	n := d.Normal()
	return n.X+n.Y+n.Z > 0
}

// Rotation returns the neighbor reached by stepping clockwise around d
// from the given neighbor. It fails when from is d or its opposite.
func (d Direction) Rotation(from Direction, steps int) (Direction, bool) {
	ns := directionTable[d].neighbors
	for i, n := range ns {
		if n == from {
			return ns[mod(i+steps, 4)], true
		}
	}
	return 0, false
}

// Clockwise returns the neighbor one quarter turn clockwise from from.
func (d Direction) Clockwise(from Direction) (Direction, bool) {
	return d.Rotation(from, 1)
}

// Anticlockwise returns the neighbor one quarter turn anticlockwise from from.
func (d Direction) Anticlockwise(from Direction) (Direction, bool) {
	return d.Rotation(from, -1)
}

// Up returns the default screen-up neighbor when viewing face d.
func (d Direction) Up() Direction {
	return directionTable[d].neighbors[0]
}

// Right returns the neighbor to the right of up when viewing face d.
func (d Direction) Right(up Direction) (Direction, bool) {
	return d.Rotation(up, 1)
}

// Down returns the neighbor opposite up when viewing face d.
func (d Direction) Down(up Direction) (Direction, bool) {
	return d.Rotation(up, 2)
}

// Left returns the neighbor to the left of up when viewing face d.
func (d Direction) Left(up Direction) (Direction, bool) {
	return d.Rotation(up, 3)
}

// DirectionByNormal finds the direction whose normal equals v exactly.
func DirectionByNormal(v Vector) (Direction, bool) {
	for _, d := range AllDirections {
		if directionTable[d].normal == v {
			return d, true
		}
	}
	return 0, false
}

// DirectionByNormalF rounds each component before matching.
func DirectionByNormalF(x, y, z float64) (Direction, bool) {
	return DirectionByNormal(Vector{
		X: int(math.Round(x)),
		Y: int(math.Round(y)),
		Z: int(math.Round(z)),
	})
}

// DirectionByInitial resolves a face letter, case-insensitive.
func DirectionByInitial(c byte) (Direction, bool) {
	switch c {
	case 'F', 'f':
		return Front, true
	case 'U', 'u':
		return Up, true
	case 'R', 'r':
		return Right, true
	case 'D', 'd':
		return Down, true
	case 'L', 'l':
		return Left, true
	case 'B', 'b':
		return Back, true
	}
	return 0, false
}

// DirectionByName resolves a full direction name, case-insensitive.
func DirectionByName(name string) (Direction, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, d := range AllDirections {
		if directionTable[d].name == name {
			return d, true
		}
	}
	return 0, false
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
