// Command sixdegrees analyzes degrees of separation in a weighted undirected
// graph and reports the most important node for each hop count.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd(afero.NewOsFs(), os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// newRootCmd wires the subcommands against fs and the given streams.
func newRootCmd(fs afero.Fs, stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "sixdegrees",
		Short: "Degrees-of-separation analysis for weighted graphs",
		Long: `sixdegrees computes, for every vertex, how many vertices lie at exactly
k hops (k = 1..max degree) on a shortest path and their average distance,
then picks the most important node for each hop count.

Examples:
  # Analyze the default input with six degrees
  sixdegrees analyze

  # JSON report with eight workers
  sixdegrees analyze --input roads.txt --workers 8 --format json

  # Generate a seeded random graph
  sixdegrees generate --topology random --n 1000 --p 0.005 --seed 7 --output random.txt`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(newAnalyzeCmd(fs))
	root.AddCommand(newGenerateCmd(fs))

	return root
}
