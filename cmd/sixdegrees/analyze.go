package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sixdegrees/graph"
	"github.com/katalvlaran/sixdegrees/importance"
	"github.com/katalvlaran/sixdegrees/internal/config"
	"github.com/katalvlaran/sixdegrees/internal/logging"
	"github.com/katalvlaran/sixdegrees/loader"
	"github.com/katalvlaran/sixdegrees/report"
	"github.com/katalvlaran/sixdegrees/separation"
)

func newAnalyzeCmd(fs afero.Fs) *cobra.Command {
	var (
		configPath string
		lenient    bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the degrees-of-separation analysis on an edge list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, config.WithFs(fs), config.WithFlags(cmd.Flags()))
			if err != nil {
				return err
			}
			if lenient {
				cfg.Loader.Strict = false
			}
			for _, w := range cfg.Validate() {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}

			return runAnalyze(cmd, fs, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "Config file path (yaml)")
	f.BoolVar(&lenient, "lenient", false, "Skip edge lines with unparsable numbers instead of failing")
	f.String("input", "San-Joaquin.txt", "Edge list file")
	f.Int("max-degree", 6, "Largest hop count to analyze")
	f.Int("workers", 1, "Concurrent per-source searches")
	f.Float64("cutoff", importance.DefaultCutoffFraction, "Share of ranked sources considered per degree")
	f.String("format", string(report.FormatText), "Report format: text, json or yaml")
	f.Bool("color", false, "Colored headings in the text report")
	f.Int("max-vertices", loader.DefaultMaxVertices, "Reject inputs with vertex ids at or above this count")
	f.String("log-level", "info", "Log level: debug, info, warn or error")
	f.String("log-format", "text", "Log format: text or json")

	return cmd
}

func runAnalyze(cmd *cobra.Command, fs afero.Fs, cfg *config.Config) error {
	runID := uuid.NewString()
	logger := logging.New(cfg.Log, cmd.ErrOrStderr()).With(slog.String("run_id", runID))

	format, err := report.ParseFormat(cfg.Report.Format)
	if err != nil {
		return err
	}

	g, err := loader.Load(cfg.Input,
		loader.WithFs(fs),
		loader.WithStrict(cfg.Loader.Strict),
		loader.WithMaxVertices(cfg.Loader.MaxVertices),
		loader.WithLogger(logger))
	if err != nil {
		return err
	}
	adj, err := graph.NewAdjacencyList(g)
	if err != nil {
		return fmt.Errorf("building adjacency: %w", err)
	}

	start := time.Now()
	table, err := separation.Analyze(adj, cfg.Analysis.MaxDegree,
		separation.WithContext(cmd.Context()),
		separation.WithWorkers(cfg.Analysis.Workers),
		separation.WithLogger(logger),
		separation.WithOnSource(progressLogger(logger, adj.Len())),
	)
	if err != nil {
		return err
	}

	profiles := importance.Select(table,
		importance.WithContext(cmd.Context()),
		importance.WithCutoffFraction(cfg.Analysis.CutoffFraction),
		importance.WithLogger(logger))
	logger.Info("analysis complete", slog.Duration("elapsed", time.Since(start)))

	res := report.New(runID, cfg.Input, table, profiles)

	return report.Write(cmd.OutOrStdout(), res, format, report.Options{Color: cfg.Report.Color})
}

// progressLogger reports roughly every tenth of the sources at debug level.
func progressLogger(logger *slog.Logger, n int) func(graph.Vertex, int, int) {
	step := max(1, n/10)

	return func(_ graph.Vertex, done, total int) {
		if done%step == 0 || done == total {
			logger.Debug("sources analyzed", slog.Int("done", done), slog.Int("total", total))
		}
	}
}
