package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", WithFs(afero.NewMemMapFs()))
	require.NoError(t, err)

	assert.Equal(t, "San-Joaquin.txt", cfg.Input)
	assert.Equal(t, 6, cfg.Analysis.MaxDegree)
	assert.Equal(t, 1, cfg.Analysis.Workers)
	assert.Equal(t, 0.1, cfg.Analysis.CutoffFraction)
	assert.True(t, cfg.Loader.Strict)
	assert.Equal(t, 1<<24, cfg.Loader.MaxVertices)
	assert.Equal(t, "text", cfg.Report.Format)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FileEnvFlags(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/sixdegrees.yaml", []byte(`
input: roads.txt
analysis:
  max_degree: 3
  workers: 2
report:
  format: json
`), 0o644))

	t.Setenv("SIXDEGREES_ANALYSIS_WORKERS", "4")

	flags := pflag.NewFlagSet("analyze", pflag.ContinueOnError)
	flags.Int("max-degree", 6, "")
	flags.String("format", "text", "")
	require.NoError(t, flags.Parse([]string{"--max-degree=5"}))

	cfg, err := Load("/etc/sixdegrees.yaml", WithFs(fs), WithFlags(flags))
	require.NoError(t, err)

	assert.Equal(t, "roads.txt", cfg.Input)
	assert.Equal(t, 5, cfg.Analysis.MaxDegree, "explicit flag beats file")
	assert.Equal(t, 4, cfg.Analysis.Workers, "env beats file")
	assert.Equal(t, "json", cfg.Report.Format, "unset flag does not override file")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nope.yaml", WithFs(afero.NewMemMapFs()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  string
		val  string
		want string
	}{
		{"negative_degree", "SIXDEGREES_ANALYSIS_MAX_DEGREE", "-1", "max_degree"},
		{"zero_workers", "SIXDEGREES_ANALYSIS_WORKERS", "0", "workers"},
		{"cutoff_zero", "SIXDEGREES_ANALYSIS_CUTOFF_FRACTION", "0", "cutoff_fraction"},
		{"cutoff_big", "SIXDEGREES_ANALYSIS_CUTOFF_FRACTION", "1.5", "cutoff_fraction"},
		{"max_vertices_zero", "SIXDEGREES_LOADER_MAX_VERTICES", "0", "max_vertices"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.val)
			_, err := Load("", WithFs(afero.NewMemMapFs()))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_Empty(t *testing.T) {
	cfg := &Config{Loader: LoaderConfig{Strict: true}}
	assert.Empty(t, cfg.Validate())
}

func TestValidate_Warnings(t *testing.T) {
	cfg := &Config{
		Analysis: AnalysisConfig{MaxDegree: 50, Workers: 1 << 20},
		Loader:   LoaderConfig{Strict: false},
	}
	warnings := cfg.Validate()
	require.Len(t, warnings, 3)
	assert.True(t, strings.Contains(warnings[0], "max_degree"))
	assert.True(t, strings.Contains(warnings[1], "workers"))
	assert.True(t, strings.Contains(warnings[2], "strict"))
}
