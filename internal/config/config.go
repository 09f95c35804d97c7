package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalid indicates a configuration value the analysis cannot run with.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all application configuration.
type Config struct {
	Input    string         `mapstructure:"input"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Loader   LoaderConfig   `mapstructure:"loader"`
	Report   ReportConfig   `mapstructure:"report"`
	Log      LogConfig      `mapstructure:"log"`
}

type AnalysisConfig struct {
	MaxDegree      int     `mapstructure:"max_degree"`
	Workers        int     `mapstructure:"workers"`
	CutoffFraction float64 `mapstructure:"cutoff_fraction"`
}

type LoaderConfig struct {
	Strict      bool `mapstructure:"strict"`
	MaxVertices int  `mapstructure:"max_vertices"`
}

type ReportConfig struct {
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// defaults mirror the reference run: San-Joaquin.txt, six hops, sequential.
var defaults = map[string]any{
	"input":                    "San-Joaquin.txt",
	"analysis.max_degree":      6,
	"analysis.workers":         1,
	"analysis.cutoff_fraction": 0.1,
	"loader.strict":            true,
	"loader.max_vertices":      1 << 24,
	"report.format":            "text",
	"report.color":             false,
	"log.level":                "info",
	"log.format":               "text",
}

// FlagKeys maps command-line flag names to configuration keys. Flags absent
// from the FlagSet given to WithFlags are ignored.
var FlagKeys = map[string]string{
	"input":        "input",
	"max-degree":   "analysis.max_degree",
	"workers":      "analysis.workers",
	"cutoff":       "analysis.cutoff_fraction",
	"format":       "report.format",
	"color":        "report.color",
	"max-vertices": "loader.max_vertices",
	"log-level":    "log.level",
	"log-format":   "log.format",
}

// Option customizes Load.
type Option func(*loadOptions)

type loadOptions struct {
	fs    afero.Fs
	flags *pflag.FlagSet
}

// WithFs sets the filesystem the config file is read from.
func WithFs(fs afero.Fs) Option {
	return func(o *loadOptions) {
		if fs != nil {
			o.fs = fs
		}
	}
}

// WithFlags binds the flags listed in FlagKeys. A flag set on the command
// line beats environment and file values.
func WithFlags(fs *pflag.FlagSet) Option {
	return func(o *loadOptions) {
		o.flags = fs
	}
}

// Validate checks configuration for issues and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if c.Analysis.MaxDegree > 20 {
		warnings = append(warnings, fmt.Sprintf("analysis max_degree %d is large; most graphs saturate well before that", c.Analysis.MaxDegree))
	}
	if limit := 4 * runtime.NumCPU(); c.Analysis.Workers > limit {
		warnings = append(warnings, fmt.Sprintf("analysis workers %d exceeds 4x CPU count (%d)", c.Analysis.Workers, limit))
	}
	if !c.Loader.Strict {
		warnings = append(warnings, "loader strict mode is off; malformed edge lines will be skipped")
	}

	return warnings
}

// check rejects values the analysis cannot run with.
func (c *Config) check() error {
	switch {
	case c.Analysis.MaxDegree < 0:
		return fmt.Errorf("%w: analysis.max_degree %d is negative", ErrInvalid, c.Analysis.MaxDegree)
	case c.Analysis.Workers < 1:
		return fmt.Errorf("%w: analysis.workers %d must be >= 1", ErrInvalid, c.Analysis.Workers)
	case !(c.Analysis.CutoffFraction > 0 && c.Analysis.CutoffFraction <= 1):
		return fmt.Errorf("%w: analysis.cutoff_fraction %g not in (0, 1]", ErrInvalid, c.Analysis.CutoffFraction)
	case c.Loader.MaxVertices < 1:
		return fmt.Errorf("%w: loader.max_vertices %d must be >= 1", ErrInvalid, c.Loader.MaxVertices)
	case strings.TrimSpace(c.Input) == "":
		return fmt.Errorf("%w: input is empty", ErrInvalid)
	}

	return nil
}

// Load reads configuration from defaults, an optional file, environment
// (SIXDEGREES_ prefix, dots become underscores) and bound flags, in
// increasing order of precedence. An empty path skips the file.
func Load(path string, opts ...Option) (*Config, error) {
	o := loadOptions{fs: afero.NewOsFs()}
	for _, opt := range opts {
		opt(&o)
	}

	v := viper.New()
	v.SetFs(o.fs)
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.SetEnvPrefix("SIXDEGREES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if o.flags != nil {
		for name, key := range FlagKeys {
			if f := o.flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.check(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
