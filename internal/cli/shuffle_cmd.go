package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var shuffleQuiet bool

var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Generate a random shuffle",
	Long: `Generate a random shuffle for the configured cube order and print it.
The same --seed always yields the same shuffle. Inner layers on bigger
cubes are printed as ranges, e.g. "R[2..2]'", which apply accepts.

Examples:
  twistycube shuffle
  twistycube shuffle -n 5 --shuffle 60 --seed 42
  twistycube shuffle --quiet`,
	Args: cobra.NoArgs,
	RunE: runShuffle,
}

func init() {
	rootCmd.AddCommand(shuffleCmd)
	shuffleCmd.Flags().BoolVarP(&shuffleQuiet, "quiet", "q", false, "Print only the notation")
}

func runShuffle(cmd *cobra.Command, args []string) error {
	cube, _, err := newCube(cfg.Cube.Order, false)
	if err != nil {
		return err
	}

	alg := cube.Shuffle(cfg.Cube.ShuffleLength)
	cube.Settle()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, alg.String())
	if shuffleQuiet {
		return nil
	}
	fmt.Fprintln(out)
	printCube(out, cube)
	return nil
}
