package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sixdegrees/builder"
	"github.com/katalvlaran/sixdegrees/loader"
)

type generateFlags struct {
	topology  string
	n         int
	rows      int
	cols      int
	p         float64
	seed      int64
	weights   string
	minWeight float64
	maxWeight float64
	weight    float64
	mean      float64
	stddev    float64
	rate      float64
	output    string
}

func newGenerateCmd(fs afero.Fs) *cobra.Command {
	var gf generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic graph in the edge list format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.OutOrStdout(), fs, gf)
		},
	}

	f := cmd.Flags()
	f.StringVar(&gf.topology, "topology", "random", "star, path, cycle, wheel, complete, grid or random")
	f.IntVar(&gf.n, "n", 100, "Vertex count (all topologies except grid)")
	f.IntVar(&gf.rows, "rows", 10, "Grid rows")
	f.IntVar(&gf.cols, "cols", 10, "Grid columns")
	f.Float64Var(&gf.p, "p", 0.05, "Edge probability for random")
	f.Int64Var(&gf.seed, "seed", 1, "RNG seed")
	f.StringVar(&gf.weights, "weights", "uniform", "Edge length distribution: uniform, constant, normal or exponential")
	f.Float64Var(&gf.minWeight, "min-weight", 1, "Smallest edge length (uniform)")
	f.Float64Var(&gf.maxWeight, "max-weight", 1, "Largest edge length (uniform)")
	f.Float64Var(&gf.weight, "weight", 1, "Edge length (constant)")
	f.Float64Var(&gf.mean, "mean", 10, "Mean edge length (normal)")
	f.Float64Var(&gf.stddev, "stddev", 3, "Edge length standard deviation (normal)")
	f.Float64Var(&gf.rate, "rate", 0.1, "Rate λ, mean length 1/λ (exponential)")
	f.StringVar(&gf.output, "output", "", "Output file (stdout when empty or -)")

	return cmd
}

func constructorFor(gf generateFlags) (builder.Constructor, error) {
	switch strings.ToLower(gf.topology) {
	case "star":
		return builder.Star(gf.n), nil
	case "path":
		return builder.Path(gf.n), nil
	case "cycle":
		return builder.Cycle(gf.n), nil
	case "wheel":
		return builder.Wheel(gf.n), nil
	case "complete":
		return builder.Complete(gf.n), nil
	case "grid":
		return builder.Grid(gf.rows, gf.cols), nil
	case "random":
		return builder.RandomSparse(gf.n, gf.p), nil
	default:
		return nil, fmt.Errorf("unknown topology %q", gf.topology)
	}
}

func runGenerate(stdout io.Writer, fs afero.Fs, gf generateFlags) error {
	cons, err := constructorFor(gf)
	if err != nil {
		return err
	}
	weights, err := weightOption(gf)
	if err != nil {
		return err
	}

	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(gf.seed), weights}, cons)
	if err != nil {
		return err
	}

	if gf.output == "" || gf.output == "-" {
		return loader.Write(stdout, g)
	}

	out, err := fs.Create(gf.output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", gf.output, err)
	}
	if err := loader.Write(out, g); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// weightOption validates the distribution parameters up front so the
// panicking option constructors in builder only ever see legal values.
func weightOption(gf generateFlags) (builder.BuilderOption, error) {
	switch strings.ToLower(gf.weights) {
	case "uniform":
		if !finite(gf.minWeight, gf.maxWeight) || gf.minWeight < 0 || gf.maxWeight < gf.minWeight {
			return nil, fmt.Errorf("weights: require finite 0 <= min-weight <= max-weight, got %g and %g", gf.minWeight, gf.maxWeight)
		}
		return builder.WithUniformWeight(gf.minWeight, gf.maxWeight), nil
	case "constant":
		if !finite(gf.weight) || gf.weight < 0 {
			return nil, fmt.Errorf("weights: require finite weight >= 0, got %g", gf.weight)
		}
		return builder.WithConstantWeight(gf.weight), nil
	case "normal":
		if !finite(gf.mean, gf.stddev) || gf.stddev < 0 {
			return nil, fmt.Errorf("weights: require finite mean and stddev >= 0, got %g and %g", gf.mean, gf.stddev)
		}
		return builder.WithNormalWeight(gf.mean, gf.stddev), nil
	case "exponential":
		if !finite(gf.rate) || gf.rate <= 0 {
			return nil, fmt.Errorf("weights: require finite rate > 0, got %g", gf.rate)
		}
		return builder.WithExponentialWeight(gf.rate), nil
	default:
		return nil, fmt.Errorf("unknown weight distribution %q", gf.weights)
	}
}
