package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/goldgrid/grid"
	"github.com/katalvlaran/goldgrid/harvest"
)

var algoFlag string

func newSolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve a grid file and print the best path",
		Long: `Solve reads a glyph grid file, runs the selected solver, and prints the
best path's steps, visited cells, and total gold.

The exhaustive solver is exponential and only accepts grids with
rows+columns-2 < 64; use it to cross-check the default solver on small inputs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(args[0])
		},
	}

	cmd.Flags().StringVarP(&algoFlag, "algo", "a", "dp", "solver to use: dp or exhaustive")

	return cmd
}

// parseAlgorithm maps the --algo flag to a harvest.Algorithm.
func parseAlgorithm(name string) (harvest.Algorithm, error) {
	switch strings.ToLower(name) {
	case "dp", "dynprog", "dynamic-programming":
		return harvest.AlgoDynProg, nil
	case "exhaustive", "brute", "brute-force":
		return harvest.AlgoExhaustive, nil
	default:
		return 0, fmt.Errorf("%w: %q (want dp or exhaustive)", harvest.ErrUnknownAlgorithm, name)
	}
}

// loadGrid reads a glyph grid file, skipping blank lines.
func loadGrid(file string) (*grid.Grid, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read grid file: %w", err)
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	return grid.Parse(lines)
}

func runSolve(file string) error {
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	algo, err := parseAlgorithm(algoFlag)
	if err != nil {
		return err
	}

	g, err := loadGrid(file)
	if err != nil {
		return err
	}
	log.Debug().
		Int("rows", g.Rows()).
		Int("columns", g.Columns()).
		Int("max_steps", g.MaxSteps()).
		Stringer("algorithm", algo).
		Msg("grid loaded")

	p, err := harvest.Solve(g, harvest.WithAlgorithm(algo))
	if errors.Is(err, harvest.ErrNoPath) {
		// Infeasibility is a reportable outcome, not a failure.
		fmt.Println("no feasible path: the start cell is blocked")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("steps: %s (%d)\n", p, p.Len())
	var cells []string
	for _, rc := range p.Cells() {
		cells = append(cells, fmt.Sprintf("(%d,%d)", rc.Row, rc.Col))
	}
	fmt.Println("cells:", strings.Join(cells, " -> "))
	fmt.Println("gold: ", p.TotalGold())

	return nil
}
