package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/twistycube"
)

func TestMineNGrams(t *testing.T) {
	alg := twistycube.MustParseAlgorithm("R U R U R U F")
	report := MineNGrams(alg, 2, 3, 5)

	pairs := report.TopNGrams[2]
	require.Len(t, pairs, 2)
	assert.Equal(t, "R U", pairs[0].Key())
	assert.Equal(t, 3, pairs[0].Count)
	assert.Equal(t, []int{0, 2, 4}, pairs[0].Occurrences)
	assert.Equal(t, "U R", pairs[1].Key())
	assert.Equal(t, 2, pairs[1].Count)

	triples := report.TopNGrams[3]
	require.Len(t, triples, 2)
	assert.Equal(t, "R U R", triples[0].Key())
	assert.Equal(t, "U R U", triples[1].Key())
}

func TestMineNGrams_TooShort(t *testing.T) {
	report := MineNGrams(twistycube.MustParseAlgorithm("R"), 2, 4, 3)
	assert.Empty(t, report.TopNGrams)
}

func TestMineNGrams_TopK(t *testing.T) {
	report := MineNGrams(twistycube.MustParseAlgorithm("R U R U R U F"), 2, 2, 1)
	require.Len(t, report.TopNGrams[2], 1)
	assert.Equal(t, "R U", report.TopNGrams[2][0].Key())
}

func TestRollingHash_MatchesFreshHash(t *testing.T) {
	tokens := []uint32{4, 8, 15, 16, 23, 42}
	rolling := NewRollingHash(3)
	for i, tok := range tokens {
		rolling.Roll(tok)
		if i < 2 {
			assert.False(t, rolling.Ready())
			continue
		}
		fresh := NewRollingHash(3)
		for _, w := range tokens[i-2 : i+1] {
			fresh.Roll(w)
		}
		assert.Equal(t, fresh.Hash(), rolling.Hash())
		assert.Equal(t, tokens[i-2:i+1], rolling.Window())
	}
}

func TestAnalyzeRepetitions(t *testing.T) {
	report := AnalyzeRepetitions(twistycube.MustParseAlgorithm("R R' U U F"))

	require.Len(t, report.ImmediateCancellations, 1)
	assert.Equal(t, Cancellation{Index1: 0, Index2: 1, Twist1: "R", Twist2: "R'"}, report.ImmediateCancellations[0])

	require.Len(t, report.MergeOpportunities, 1)
	assert.Equal(t, "U2", report.MergeOpportunities[0].MergedTwist)
	assert.Equal(t, 3, report.TotalWastedTwists)
	assert.Empty(t, report.BackAndForthPatterns)
}

func TestAnalyzeRepetitions_BackAndForth(t *testing.T) {
	report := AnalyzeRepetitions(twistycube.MustParseAlgorithm("F (R U)3 D"))
	require.Len(t, report.BackAndForthPatterns, 1)
	p := report.BackAndForthPatterns[0]
	assert.Equal(t, 1, p.StartIndex)
	assert.Equal(t, 6, p.EndIndex)
	assert.Equal(t, 3, p.Count)
	assert.Equal(t, []string{"R", "U"}, p.Pattern)
}

func TestMeasure(t *testing.T) {
	m := Measure(twistycube.MustParseAlgorithm("R U2 M x R4"), 3)
	assert.Equal(t, 5, m.Twists)
	assert.Equal(t, 4, m.QTM)
	assert.Equal(t, 4, m.HTM)
	assert.Equal(t, 3, m.STM)
	assert.Equal(t, 1, m.Rotations)
	assert.Equal(t, 4, m.Optimized)
	assert.InDelta(t, 0.8, m.Efficiency, 1e-9)
	assert.False(t, m.Identity)
}

func TestMeasure_IdentityAlgorithm(t *testing.T) {
	m := Measure(twistycube.MustParseAlgorithm("R U U' R'"), 3)
	assert.True(t, m.Identity)
	assert.Equal(t, 0, m.Optimized)
	assert.Equal(t, 1.0, CalculateEfficiency(0, 0))
}
