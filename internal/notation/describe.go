// Package notation renders twists as plain-language instructions.
package notation

import (
	"fmt"
	"strings"

	"github.com/SeamusWaldron/twistycube"
)

// Reference frame: Up on top, Front facing you.
//
// Mapping for a clockwise quarter turn:
//
//	R -> "R up"                 L -> "L down"
//	U -> "T rotate right"       D -> "B rotate right"
//	F -> "F rotate clockwise"   B -> "Back rotate clockwise"
//	M -> "middle down"          E -> "equator right"
//	S -> "standing clockwise"
//	X -> "tilt cube up"         Y -> "turn cube left"
//	Z -> "roll cube clockwise"
var phrases = map[byte][2]string{
	'R': {"R up", "R down"},
	'L': {"L down", "L up"},
	'U': {"T rotate right", "T rotate left"},
	'D': {"B rotate right", "B rotate left"},
	'F': {"F rotate clockwise", "F rotate anti-clockwise"},
	'B': {"Back rotate clockwise", "Back rotate anti-clockwise"},
	'M': {"middle down", "middle up"},
	'E': {"equator right", "equator left"},
	'S': {"standing clockwise", "standing anti-clockwise"},
	'X': {"tilt cube up", "tilt cube down"},
	'Y': {"turn cube left", "turn cube right"},
	'Z': {"roll cube clockwise", "roll cube anti-clockwise"},
}

// Describe converts a twist to a spoken instruction.
func Describe(t twistycube.Twist) string {
	base := t.Base
	wide := base >= 'a' && base <= 'z'
	if wide {
		base -= 'a' - 'A'
	}
	p, ok := phrases[base]
	if !ok {
		return t.String() // Fallback to standard notation
	}

	q := t.Quarters()
	if q == 0 {
		return "no-op " + t.String()
	}
	text := p[0]
	if q == 3 {
		text = p[1]
	}

	switch {
	case wide:
		text = fmt.Sprintf("%s (layers %d-%d)", text, t.StartLayer, t.EndLayer+1)
	case t.StartLayer != 1 || t.EndLayer != 1:
		if isFaceBase(base) {
			if t.StartLayer == t.EndLayer {
				text = fmt.Sprintf("%s (layer %d)", text, t.StartLayer)
			} else {
				text = fmt.Sprintf("%s (layers %d-%d)", text, t.StartLayer, t.EndLayer)
			}
		}
	}

	if q == 2 {
		text += " x 2"
	}
	return text
}

func isFaceBase(b byte) bool {
	return strings.IndexByte("FURDLB", b) >= 0
}

// DescribeSequence converts each twist of an algorithm.
func DescribeSequence(alg twistycube.Algorithm) []string {
	twists := alg.Twists()
	result := make([]string, len(twists))
	for i, t := range twists {
		result[i] = Describe(t)
	}
	return result
}

// FormatSequence formats an algorithm as a comma-separated description.
func FormatSequence(alg twistycube.Algorithm) string {
	return strings.Join(DescribeSequence(alg), ", ")
}
