package twistycube

import "strings"

// Algorithm is an immutable ordered sequence of twists. All methods
// return new values and never modify the receiver.
type Algorithm struct {
	twists []Twist
}

// NewAlgorithm builds an algorithm from the given twists.
func NewAlgorithm(twists ...Twist) Algorithm {
	return Algorithm{twists: append([]Twist(nil), twists...)}
}

// Len returns the number of twists.
func (a Algorithm) Len() int {
	return len(a.twists)
}

// IsEmpty reports whether the algorithm has no twists.
func (a Algorithm) IsEmpty() bool {
	return len(a.twists) == 0
}

// At returns the i-th twist.
func (a Algorithm) At(i int) Twist {
	return a.twists[i]
}

// Twists returns a copy of the twist list.
func (a Algorithm) Twists() []Twist {
	return append([]Twist(nil), a.twists...)
}

// Append returns a followed by each of others.
func (a Algorithm) Append(others ...Algorithm) Algorithm {
	n := len(a.twists)
	for _, o := range others {
		n += len(o.twists)
	}
	out := make([]Twist, 0, n)
	out = append(out, a.twists...)
	for _, o := range others {
		out = append(out, o.twists...)
	}
	return Algorithm{twists: out}
}

// Then returns a followed by the given twists.
func (a Algorithm) Then(twists ...Twist) Algorithm {
	return a.Append(Algorithm{twists: twists})
}

// Inverse reverses the order and inverts every twist.
func (a Algorithm) Inverse() Algorithm {
	out := make([]Twist, len(a.twists))
	for i, t := range a.twists {
		out[len(a.twists)-1-i] = t.Inverse()
	}
	return Algorithm{twists: out}
}

// Repeat returns a concatenated n times. n <= 0 yields an empty algorithm.
func (a Algorithm) Repeat(n int) Algorithm {
	if n <= 0 || len(a.twists) == 0 {
		return Algorithm{}
	}
	out := make([]Twist, 0, len(a.twists)*n)
	for i := 0; i < n; i++ {
		out = append(out, a.twists...)
	}
	return Algorithm{twists: out}
}

// Simplify merges adjacent twists of the same slice and drops pairs that
// cancel. A cancellation exposes the previous twist to further merging,
// so "R U U' R'" simplifies to nothing.
func (a Algorithm) Simplify() Algorithm {
	out := make([]Twist, 0, len(a.twists))
	for _, t := range a.twists {
		t.Amount = normalizeAmount(t.Amount)
		if t.Amount == 0 {
			continue
		}
		if n := len(out); n > 0 {
			if m, ok := out[n-1].Merge(t); ok {
				if m.Amount == 0 {
					out = out[:n-1]
				} else {
					out[n-1] = m
				}
				continue
			}
		}
		out = append(out, t)
	}
	return Algorithm{twists: out}
}

// Equal reports whether both algorithms hold the same twists in order.
func (a Algorithm) Equal(o Algorithm) bool {
	if len(a.twists) != len(o.twists) {
		return false
	}
	for i := range a.twists {
		if a.twists[i] != o.twists[i] {
			return false
		}
	}
	return true
}

// Notation renders the algorithm as space-separated notation.
func (a Algorithm) Notation() string {
	parts := make([]string, len(a.twists))
	for i, t := range a.twists {
		parts[i] = t.Notation()
	}
	return strings.Join(parts, " ")
}

// String renders the algorithm like Notation but keeps layer ranges,
// so "R[2..2] U" parses back to the same twists.
func (a Algorithm) String() string {
	parts := make([]string, len(a.twists))
	for i, t := range a.twists {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
