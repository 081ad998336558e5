package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/twistycube"
)

var (
	applyUndo    int
	applyVerbose bool
)

var applyCmd = &cobra.Command{
	Use:   "apply <notation>...",
	Short: "Apply twists to a solved cube and print the result",
	Long: `Apply move notation to a solved cube and print its net.

Examples:
  twistycube apply "R U R' U'"
  twistycube apply -n 4 "R U2 M E2"
  twistycube apply "(R U R' U')6"         # back to solved
  twistycube apply "R U F" --undo 1      # undo the last twist`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().IntVar(&applyUndo, "undo", 0, "Twists to undo after applying")
	applyCmd.Flags().BoolVar(&applyVerbose, "steps", false, "Print every applied twist")
}

func runApply(cmd *cobra.Command, args []string) error {
	cube, engine, err := newCube(cfg.Cube.Order, true)
	if err != nil {
		return err
	}
	if engine != nil {
		defer engine.Close()
	}

	out := cmd.OutOrStdout()
	if applyVerbose {
		cube.OnTwist(func(r twistycube.TwistResult) {
			fmt.Fprintf(out, "  %-8s moved %d pieces (moves: %d)\n", r.Twist, len(r.Relocations), r.MoveCounter)
		})
	}

	queued, err := cube.TwistNotation(strings.Join(args, " "))
	if err != nil {
		return err
	}
	cube.Settle()

	for i := 0; i < applyUndo; i++ {
		if !cube.Undo() {
			logger.Warn("nothing left to undo", zap.Int("requested", applyUndo), zap.Int("undone", i))
			break
		}
	}
	cube.Settle()

	logger.Info("applied",
		zap.Int("queued", len(queued)),
		zap.Int("moves", cube.MoveCounter()),
	)
	printCube(out, cube)
	return nil
}

func printCube(w io.Writer, c *twistycube.Cube) {
	fmt.Fprintf(w, "%dx%dx%d cube\n\n", c.Order(), c.Order(), c.Order())
	fmt.Fprint(w, c.String())
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Moves:    %d\n", c.MoveCounter())
	fmt.Fprintf(w, "Progress: %s\n", c.Progress())
	switch {
	case c.IsSolved():
		fmt.Fprintln(w, "Solved:   yes")
	case c.IsSolvedAnyOrientation():
		fmt.Fprintln(w, "Solved:   yes (reoriented)")
	default:
		fmt.Fprintln(w, "Solved:   no")
	}
}
