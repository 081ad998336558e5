package analysis

import "github.com/SeamusWaldron/twistycube"

// Cancellation represents an immediate cancellation (e.g., R followed by R').
type Cancellation struct {
	Index1 int    `json:"index1"`
	Index2 int    `json:"index2"`
	Twist1 string `json:"twist1"`
	Twist2 string `json:"twist2"`
}

// MergeOpportunity represents adjacent same-slice twists that could be merged.
type MergeOpportunity struct {
	Index1      int    `json:"index1"`
	Index2      int    `json:"index2"`
	Twist1      string `json:"twist1"`
	Twist2      string `json:"twist2"`
	MergedTwist string `json:"merged_twist"`
}

// BackAndForthPattern represents an alternating pair like R U R U R U.
type BackAndForthPattern struct {
	StartIndex int      `json:"start_index"`
	EndIndex   int      `json:"end_index"`
	Pattern    []string `json:"pattern"`
	Count      int      `json:"count"`
}

// RepetitionReport contains wasted-move analysis for an algorithm.
type RepetitionReport struct {
	ImmediateCancellations []Cancellation        `json:"immediate_cancellations"`
	MergeOpportunities     []MergeOpportunity    `json:"merge_opportunities"`
	BackAndForthPatterns   []BackAndForthPattern `json:"back_and_forth_patterns"`
	TotalWastedTwists      int                   `json:"total_wasted_twists"`
}

// AnalyzeRepetitions finds cancellations, merge opportunities and
// alternating patterns between adjacent twists.
func AnalyzeRepetitions(alg twistycube.Algorithm) *RepetitionReport {
	report := &RepetitionReport{
		ImmediateCancellations: []Cancellation{},
		MergeOpportunities:     []MergeOpportunity{},
		BackAndForthPatterns:   []BackAndForthPattern{},
	}
	twists := alg.Twists()

	for i := 0; i < len(twists)-1; i++ {
		t1, t2 := twists[i], twists[i+1]
		merged, ok := t1.Merge(t2)
		if !ok {
			continue
		}
		if merged.Amount == 0 {
			report.ImmediateCancellations = append(report.ImmediateCancellations, Cancellation{
				Index1: i,
				Index2: i + 1,
				Twist1: t1.String(),
				Twist2: t2.String(),
			})
			report.TotalWastedTwists += 2
			continue
		}
		report.MergeOpportunities = append(report.MergeOpportunities, MergeOpportunity{
			Index1:      i,
			Index2:      i + 1,
			Twist1:      t1.String(),
			Twist2:      t2.String(),
			MergedTwist: merged.String(),
		})
		report.TotalWastedTwists++
	}

	report.BackAndForthPatterns = findBackAndForth(twists)
	return report
}

// findBackAndForth finds alternating patterns repeated at least 3 times.
func findBackAndForth(twists []twistycube.Twist) []BackAndForthPattern {
	patterns := []BackAndForthPattern{}
	if len(twists) < 4 {
		return patterns
	}

	i := 0
	for i < len(twists)-3 {
		a, b := twists[i], twists[i+1]
		if a == b {
			i++
			continue
		}

		count := 1
		j := i + 2
		for j < len(twists)-1 && twists[j] == a && twists[j+1] == b {
			count++
			j += 2
		}

		if count >= 3 {
			patterns = append(patterns, BackAndForthPattern{
				StartIndex: i,
				EndIndex:   i + count*2 - 1,
				Pattern:    []string{a.String(), b.String()},
				Count:      count,
			})
			i = j
		} else {
			i++
		}
	}
	return patterns
}
