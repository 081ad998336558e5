package analysis

import "github.com/SeamusWaldron/twistycube"

// Metrics counts an algorithm under the usual turn metrics.
type Metrics struct {
	Twists     int     `json:"twists"`
	QTM        int     `json:"qtm"` // quarter turns
	HTM        int     `json:"htm"` // any face turn counts once
	STM        int     `json:"stm"` // slice turn metric
	Rotations  int     `json:"rotations"`
	Optimized  int     `json:"optimized"`
	Efficiency float64 `json:"efficiency"`
	Simplified string  `json:"simplified"`
	Identity   bool    `json:"identity"`
}

// Measure computes Metrics for alg on a cube of the given order.
func Measure(alg twistycube.Algorithm, order int) Metrics {
	var m Metrics
	twists := alg.Twists()
	m.Twists = len(twists)

	for _, t := range twists {
		if t.IsIdentity() {
			continue
		}
		if t.IsReorientation(order) {
			m.Rotations++
			continue
		}
		q := t.Quarters()
		if q == 3 {
			q = 1
		}
		m.QTM += q
		m.STM++
		if isSliceTwist(t, order) {
			// A slice twist is two outer turns in HTM
			m.HTM += 2
		} else {
			m.HTM++
		}
	}

	simplified := alg.Simplify()
	m.Optimized = simplified.Len()
	m.Simplified = simplified.String()
	m.Efficiency = CalculateEfficiency(m.Twists, m.Optimized)
	m.Identity = simplified.IsEmpty()
	return m
}

func isSliceTwist(t twistycube.Twist, order int) bool {
	_, start, end, ok := t.Layers(order)
	return ok && start > 1 && end < order
}

// CalculateEfficiency calculates the efficiency ratio (optimized/original).
func CalculateEfficiency(original, optimized int) float64 {
	if original == 0 {
		return 1.0
	}
	return float64(optimized) / float64(original)
}
