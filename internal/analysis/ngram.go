package analysis

import (
	"sort"
	"strings"

	"github.com/SeamusWaldron/twistycube"
)

// NGram represents a repeated twist sequence.
type NGram struct {
	N           int      `json:"n"`
	Sequence    []string `json:"sequence"`
	Tokens      []uint32 `json:"-"`
	Count       int      `json:"count"`
	Occurrences []int    `json:"occurrences,omitempty"` // start indexes
}

// NGramReport contains the results of n-gram mining.
type NGramReport struct {
	TopNGrams map[int][]NGram `json:"top_ngrams"` // Keyed by n
}

// RollingHash implements Rabin-Karp rolling hash for efficient n-gram detection.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1) for removal
	window []uint32
	n      int
}

// NewRollingHash creates a new rolling hash for window size n.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{
		base:   1000003,
		n:      n,
		window: make([]uint32, 0, n),
	}
	rh.pow = 1
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}
	return rh
}

// Roll pushes a token, dropping the oldest once the window is full.
func (rh *RollingHash) Roll(token uint32) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, token)
		rh.hash = rh.hash*rh.base + uint64(token)
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-uint64(old)*rh.pow)*rh.base + uint64(token)

	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = token
}

// Hash returns the current hash value.
func (rh *RollingHash) Hash() uint64 {
	return rh.hash
}

// Window returns a copy of the current window.
func (rh *RollingHash) Window() []uint32 {
	return append([]uint32(nil), rh.window...)
}

// Ready returns true if the window is full.
func (rh *RollingHash) Ready() bool {
	return len(rh.window) == rh.n
}

// vocabulary assigns a small token to each distinct twist.
type vocabulary struct {
	ids    map[twistycube.Twist]uint32
	twists []twistycube.Twist
}

func tokenize(twists []twistycube.Twist) ([]uint32, *vocabulary) {
	v := &vocabulary{ids: make(map[twistycube.Twist]uint32)}
	tokens := make([]uint32, len(twists))
	for i, t := range twists {
		id, ok := v.ids[t]
		if !ok {
			id = uint32(len(v.twists)) + 1
			v.ids[t] = id
			v.twists = append(v.twists, t)
		}
		tokens[i] = id
	}
	return tokens, v
}

func (v *vocabulary) twist(token uint32) twistycube.Twist {
	return v.twists[token-1]
}

type ngramEntry struct {
	tokens      []uint32
	count       int
	occurrences []int
}

// MineNGrams finds the top-K most frequent n-grams for each n in [minN, maxN].
// Only sequences seen at least twice are reported.
func MineNGrams(alg twistycube.Algorithm, minN, maxN, topK int) *NGramReport {
	report := &NGramReport{
		TopNGrams: make(map[int][]NGram),
	}
	twists := alg.Twists()
	if minN < 1 || len(twists) < minN {
		return report
	}

	tokens, vocab := tokenize(twists)
	for n := minN; n <= maxN && n <= len(tokens); n++ {
		if ngrams := mineNGramsForN(tokens, vocab, n, topK); len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}
	return report
}

func mineNGramsForN(tokens []uint32, vocab *vocabulary, n, topK int) []NGram {
	counts := make(map[uint64][]*ngramEntry)
	var order []*ngramEntry
	rh := NewRollingHash(n)

	for i, tok := range tokens {
		rh.Roll(tok)
		if !rh.Ready() {
			continue
		}
		start := i - n + 1
		window := rh.Window()

		var found *ngramEntry
		for _, e := range counts[rh.Hash()] {
			// Hash collisions are resolved by comparing tokens
			if tokensEqual(e.tokens, window) {
				found = e
				break
			}
		}
		if found == nil {
			found = &ngramEntry{tokens: window}
			counts[rh.Hash()] = append(counts[rh.Hash()], found)
			order = append(order, found)
		}
		found.count++
		if len(found.occurrences) < 10 {
			found.occurrences = append(found.occurrences, start)
		}
	}

	entries := make([]*ngramEntry, 0, len(order))
	for _, e := range order {
		if e.count >= 2 {
			entries = append(entries, e)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})
	if len(entries) > topK {
		entries = entries[:topK]
	}

	result := make([]NGram, len(entries))
	for i, e := range entries {
		seq := make([]string, len(e.tokens))
		for j, tok := range e.tokens {
			seq[j] = vocab.twist(tok).String()
		}
		result[i] = NGram{
			N:           n,
			Sequence:    seq,
			Tokens:      e.tokens,
			Count:       e.count,
			Occurrences: e.occurrences,
		}
	}
	return result
}

func tokensEqual(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Key joins the sequence into one notation string.
func (g NGram) Key() string {
	return strings.Join(g.Sequence, " ")
}
