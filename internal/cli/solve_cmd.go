package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var solveCmd = &cobra.Command{
	Use:   "solve <scramble>...",
	Short: "Run the Lua solver against a scrambled cube",
	Long: `Apply a scramble, ask the Lua solver in <scripts>/solve for a
solution, apply it and report whether the cube ended up solved.

Examples:
  twistycube solve "R U R' U' F2"
  twistycube solve --scripts ./myscripts "(R U)5"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg.Scripts.Solver = true
	cube, engine, err := newCube(cfg.Cube.Order, true)
	if err != nil {
		return err
	}
	defer engine.Close()

	if _, err := cube.TwistNotation(strings.Join(args, " ")); err != nil {
		return err
	}
	cube.Settle()

	solution, err := cube.Solve()
	if err != nil {
		return err
	}
	applied := cube.Settle()
	logger.Info("solver finished",
		zap.Int("twists", solution.Len()),
		zap.Int("applied", applied),
		zap.Bool("solved", cube.IsSolved()),
	)

	out := cmd.OutOrStdout()
	if solution.IsEmpty() {
		fmt.Fprintln(out, "Solution: (none)")
	} else {
		fmt.Fprintf(out, "Solution: %s\n", solution.Notation())
	}
	fmt.Fprintln(out)
	printCube(out, cube)
	if !cube.IsSolved() {
		return fmt.Errorf("solver left the cube unsolved")
	}
	return nil
}
