package twistycube

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// MaxAlgorithmLength bounds the number of twists a notation string may
// expand to, group repeats included.
const MaxAlgorithmLength = 100000

// Notation grammar:
//
//	algorithm := (move | group)*
//	move      := face layers? suffix?
//	layers    := '[' digits '..' digits ']'
//	group     := '(' algorithm ')' suffix?
//	suffix    := "'" | digits
//
// Faces are F U R D L B E M S X Y Z in either case. Only one suffix is
// accepted, so "R2'" is rejected. A layer range such as "R[2..3]'" turns
// layers 2 to 3 below the face; without one a move turns layer 1.
type notationAST struct {
	Items []*itemAST `parser:"@@*"`
}

type itemAST struct {
	Group *groupAST `parser:"  @@"`
	Move  *moveAST  `parser:"| @@"`
}

type moveAST struct {
	Face   string     `parser:"@Face"`
	Layers *layersAST `parser:"@@?"`
	Suffix *suffixAST `parser:"@@?"`
}

type layersAST struct {
	Start int `parser:"'[' @Number"`
	End   int `parser:"Range @Number ']'"`
}

type groupAST struct {
	Body   *notationAST `parser:"'(' @@ ')'"`
	Suffix *suffixAST   `parser:"@@?"`
}

type suffixAST struct {
	Prime bool `parser:"  @Prime"`
	Count *int `parser:"| @Number"`
}

var notationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Face", Pattern: `[FURDLBEMSXYZfurdlbemsxyz]`},
	{Name: "Number", Pattern: `[0-9]+`},
	{Name: "Prime", Pattern: `'`},
	{Name: "Range", Pattern: `\.\.`},
	{Name: "Punct", Pattern: `[()\[\]]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var notationParser = participle.MustBuild[notationAST](
	participle.Lexer(notationLexer),
	participle.Elide("Whitespace"),
)

// ParseAlgorithm parses move notation such as "R U R' U'" or "(RU)2 F'".
// On failure it returns an empty algorithm and an error wrapping
// ErrInvalidNotation.
func ParseAlgorithm(s string) (Algorithm, error) {
	ast, err := notationParser.ParseString("notation", s)
	if err != nil {
		return Algorithm{}, fmt.Errorf("%w: %v", ErrInvalidNotation, err)
	}
	a, err := ast.algorithm()
	if err != nil {
		return Algorithm{}, err
	}
	return a, nil
}

// MustParseAlgorithm is like ParseAlgorithm but panics on error.
func MustParseAlgorithm(s string) Algorithm {
	a, err := ParseAlgorithm(s)
	if err != nil {
		panic(err)
	}
	return a
}

// ParseTwist parses a single move such as "R", "U'" or "F2".
func ParseTwist(s string) (Twist, error) {
	a, err := ParseAlgorithm(s)
	if err != nil {
		return Twist{}, err
	}
	if a.Len() != 1 {
		return Twist{}, fmt.Errorf("%w: %q is not a single twist", ErrInvalidNotation, s)
	}
	return a.At(0), nil
}

func errTooLong(n int) error {
	return fmt.Errorf("%w: expands to more than %d twists", ErrInvalidNotation, n)
}

func (n *notationAST) algorithm() (Algorithm, error) {
	var out Algorithm
	if n == nil {
		return out, nil
	}
	for _, it := range n.Items {
		switch {
		case it.Move != nil:
			t, err := it.Move.twist()
			if err != nil {
				return Algorithm{}, err
			}
			out = out.Then(t)
		case it.Group != nil:
			g, err := it.Group.algorithm()
			if err != nil {
				return Algorithm{}, err
			}
			out = out.Append(g)
		}
		if out.Len() > MaxAlgorithmLength {
			return Algorithm{}, errTooLong(MaxAlgorithmLength)
		}
	}
	return out, nil
}

func (m *moveAST) twist() (Twist, error) {
	base := strings.ToUpper(m.Face)[0]
	amount := 1
	if m.Suffix != nil {
		amount = m.Suffix.amount()
	}
	t := NewTwist(base, amount)
	if m.Layers != nil {
		t.StartLayer, t.EndLayer = m.Layers.Start, m.Layers.End
		if err := t.Validate(); err != nil {
			return Twist{}, fmt.Errorf("%w: layers [%d..%d]", ErrInvalidNotation, m.Layers.Start, m.Layers.End)
		}
	}
	return t, nil
}

func (g *groupAST) algorithm() (Algorithm, error) {
	body, err := g.Body.algorithm()
	if err != nil {
		return Algorithm{}, err
	}
	switch {
	case g.Suffix == nil:
		return body, nil
	case g.Suffix.Prime:
		return body.Inverse(), nil
	}
	count := *g.Suffix.Count
	if body.Len() > 0 && count > MaxAlgorithmLength/body.Len() {
		return Algorithm{}, errTooLong(MaxAlgorithmLength)
	}
	return body.Repeat(count), nil
}

func (s *suffixAST) amount() int {
	if s.Prime {
		return -1
	}
	return *s.Count
}
