package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/twistycube"
	"github.com/SeamusWaldron/twistycube/internal/analysis"
	"github.com/SeamusWaldron/twistycube/internal/notation"
)

var (
	parseDescribe bool
	parseStats    bool
	parseJSON     bool
	parseTopK     int
)

var parseCmd = &cobra.Command{
	Use:   "parse <notation>...",
	Short: "Parse and analyse move notation",
	Long: `Parse move notation and print it in canonical form.

Examples:
  twistycube parse "R U R' U'"
  twistycube parse "(R U R' U')6" --stats
  twistycube parse "M2 U M2 U2 M2 U M2" --describe
  twistycube parse "R U R' U' R U R' U'" --stats --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVarP(&parseDescribe, "describe", "d", false, "Describe each twist in words")
	parseCmd.Flags().BoolVarP(&parseStats, "stats", "s", false, "Show turn metrics and repetition analysis")
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Print the report as JSON")
	parseCmd.Flags().IntVar(&parseTopK, "top", 3, "Repeated sequences to report per length")
}

// parseReport is the JSON shape of the parse command.
type parseReport struct {
	Notation    string                     `json:"notation"`
	Inverse     string                     `json:"inverse"`
	Description []string                   `json:"description,omitempty"`
	Metrics     *analysis.Metrics          `json:"metrics,omitempty"`
	Repetitions *analysis.RepetitionReport `json:"repetitions,omitempty"`
	NGrams      *analysis.NGramReport      `json:"ngrams,omitempty"`
}

func runParse(cmd *cobra.Command, args []string) error {
	alg, err := twistycube.ParseAlgorithm(strings.Join(args, " "))
	if err != nil {
		return err
	}
	logger.Debug("parsed notation", zap.Int("twists", alg.Len()))

	report := parseReport{
		Notation: alg.Notation(),
		Inverse:  alg.Inverse().Notation(),
	}
	if parseDescribe {
		report.Description = notation.DescribeSequence(alg)
	}
	if parseStats {
		m := analysis.Measure(alg, cfg.Cube.Order)
		report.Metrics = &m
		report.Repetitions = analysis.AnalyzeRepetitions(alg)
		report.NGrams = analysis.MineNGrams(alg, 2, 6, parseTopK)
	}

	out := cmd.OutOrStdout()
	if parseJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	printParseReport(out, report)
	return nil
}

func printParseReport(w io.Writer, r parseReport) {
	fmt.Fprintf(w, "Notation: %s\n", r.Notation)
	fmt.Fprintf(w, "Inverse:  %s\n", r.Inverse)

	if len(r.Description) > 0 {
		fmt.Fprintln(w)
		for i, d := range r.Description {
			fmt.Fprintf(w, "%3d. %s\n", i+1, d)
		}
	}

	if m := r.Metrics; m != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Twists: %d  QTM: %d  HTM: %d  STM: %d  Rotations: %d\n",
			m.Twists, m.QTM, m.HTM, m.STM, m.Rotations)
		switch {
		case m.Identity:
			fmt.Fprintln(w, "Simplified: (identity)")
		default:
			fmt.Fprintf(w, "Simplified: %s (%d twists, %.0f%% efficient)\n",
				m.Simplified, m.Optimized, m.Efficiency*100)
		}
	}

	if rep := r.Repetitions; rep != nil && rep.TotalWastedTwists > 0 {
		fmt.Fprintf(w, "Wasted twists: %d\n", rep.TotalWastedTwists)
		for _, c := range rep.ImmediateCancellations {
			fmt.Fprintf(w, "  cancel  #%d %s / #%d %s\n", c.Index1+1, c.Twist1, c.Index2+1, c.Twist2)
		}
		for _, mo := range rep.MergeOpportunities {
			fmt.Fprintf(w, "  merge   #%d %s + #%d %s -> %s\n", mo.Index1+1, mo.Twist1, mo.Index2+1, mo.Twist2, mo.MergedTwist)
		}
		for _, p := range rep.BackAndForthPatterns {
			fmt.Fprintf(w, "  repeat  %s x%d from #%d\n", strings.Join(p.Pattern, " "), p.Count, p.StartIndex+1)
		}
	}

	if ng := r.NGrams; ng != nil && len(ng.TopNGrams) > 0 {
		fmt.Fprintln(w, "Repeated sequences:")
		lengths := make([]int, 0, len(ng.TopNGrams))
		for n := range ng.TopNGrams {
			lengths = append(lengths, n)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(lengths)))
		for _, n := range lengths {
			for _, g := range ng.TopNGrams[n] {
				fmt.Fprintf(w, "  %-24s x%d\n", strings.Join(g.Sequence, " "), g.Count)
			}
		}
	}
}
