package twistycube

// Coord is a lattice position, each component in [0, order).
type Coord struct {
	X, Y, Z int
}

// Along returns the component on the axis of d.
func (c Coord) Along(d Direction) int {
	n := d.Normal()
	switch {
	case n.X != 0:
		return c.X
	case n.Y != 0:
		return c.Y
	default:
		return c.Z
	}
}

// Grid maps between linear addresses and lattice coordinates for a cube
// of a given order.
type Grid struct {
	Order int
}

// Size returns the number of pieces, order³.
func (g Grid) Size() int {
	return g.Order * g.Order * g.Order
}

// Address returns (x·N + y)·N + z.
func (g Grid) Address(c Coord) int {
	n := g.Order
	return (c.X*n+c.Y)*n + c.Z
}

// Coord is the inverse of Address.
func (g Grid) Coord(a int) Coord {
	n := g.Order
	return Coord{
		X: a / (n * n),
		Y: (a % (n * n)) / n,
		Z: a % n,
	}
}

// Contains reports whether c lies inside the lattice.
func (g Grid) Contains(c Coord) bool {
	n := g.Order
	return c.X >= 0 && c.X < n &&
		c.Y >= 0 && c.Y < n &&
		c.Z >= 0 && c.Z < n
}

// Visible returns the directions in which a piece at c sits on the
// outer surface.
func (g Grid) Visible(c Coord) []Direction {
	var out []Direction
	for _, d := range AllDirections {
		if g.Depth(d, c) == 0 {
			out = append(out, d)
		}
	}
	return out
}

// Depth returns how far c lies inward from face d, 0 being the outer layer.
func (g Grid) Depth(d Direction, c Coord) int {
	v := c.Along(d)
	if d.Positive() {
		return g.Order - 1 - v
	}
	return v
}

// DepthAddresses enumerates the order² addresses at one depth below face d.
func (g Grid) DepthAddresses(d Direction, depth int) []int {
	n := g.Order
	if depth < 0 || depth >= n {
		return nil
	}
	fixed := depth
	if d.Positive() {
		fixed = n - 1 - depth
	}
	out := make([]int, 0, n*n)
	norm := d.Normal()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var c Coord
			switch {
			case norm.X != 0:
				c = Coord{fixed, i, j}
			case norm.Y != 0:
				c = Coord{i, fixed, j}
			default:
				c = Coord{i, j, fixed}
			}
			out = append(out, g.Address(c))
		}
	}
	return out
}

// Select returns the addresses in layers [start, end] counted from face d,
// 1-indexed. An out-of-range request selects nothing.
func (g Grid) Select(d Direction, start, end int) []int {
	if !d.Valid() || start < 1 || end < start || end > g.Order {
		return nil
	}
	out := make([]int, 0, (end-start+1)*g.Order*g.Order)
	for depth := start - 1; depth <= end-1; depth++ {
		out = append(out, g.DepthAddresses(d, depth)...)
	}
	return out
}

// InLayers reports whether the piece at address a falls in layers
// [start, end] from face d.
func (g Grid) InLayers(d Direction, start, end, a int) bool {
	if start < 1 || end < start || end > g.Order {
		return false
	}
	depth := g.Depth(d, g.Coord(a))
	return depth >= start-1 && depth <= end-1
}
