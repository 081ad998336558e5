// Package cli implements the command-line interface for twistycube.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/twistycube"
	"github.com/SeamusWaldron/twistycube/internal/config"
	"github.com/SeamusWaldron/twistycube/internal/scripting"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string

	cfg    *config.Config
	logger = zap.NewNop()
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "twistycube",
	Short: "Order-N twisty cube simulator",
	Long: `twistycube - simulate Rubik's-style cubes of any order.

Parse and analyse move notation, apply algorithms to a cube and print
its net, shuffle with a reproducible seed, run Lua solver scripts, or
play interactively in the terminal.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default: ./twistycube.yaml)")
	flags.IntP("order", "n", 3, "Cube order")
	flags.Uint64("seed", 0, "Shuffle seed (0 picks a random seed)")
	flags.Int("shuffle", 25, "Shuffle length")
	flags.Duration("tick", 0, "Interval between applied twists in play mode")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.Bool("log-json", false, "Log as JSON")
	flags.String("scripts", "scripts", "Directory holding validate/ and solve/ Lua scripts")
}

func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}
	l, err := newLogger(c.Logging)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	cfg, logger = c, l
	return nil
}

// newCube builds a cube from the loaded configuration. When scripts are
// enabled the returned engine must be closed by the caller.
func newCube(order int, withScripts bool) (*twistycube.Cube, *scripting.Engine, error) {
	opts, err := cfg.CubeOptions()
	if err != nil {
		return nil, nil, err
	}
	opts = append(opts, twistycube.WithLogger(logger))

	var engine *scripting.Engine
	if withScripts && (cfg.Scripts.Validator || cfg.Scripts.Solver) {
		engine, err = scripting.NewEngine(cfg.Scripts.Dir, logger)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Scripts.Validator && engine.HasValidator() {
			opts = append(opts, twistycube.WithValidator(engine.Validate))
		}
		if cfg.Scripts.Solver && engine.HasSolver() {
			opts = append(opts, twistycube.WithSolver(engine))
		}
	}

	c, err := twistycube.New(order, opts...)
	if err != nil {
		if engine != nil {
			engine.Close()
		}
		return nil, nil, err
	}
	return c, engine, nil
}
