// Package config loads the gohyd settings file.
//
// The file is TOML. Every value is optional; anything left out falls back to
// the solver defaults, and a missing file in one of the default locations is
// not an error. Command-line flags override whatever is loaded here.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/alexiusacademia/gohyd/internal/exact"
	"github.com/alexiusacademia/gohyd/internal/friction"
	"github.com/alexiusacademia/gohyd/internal/pipe"
)

// EnvVar names the environment variable that points at a settings file
const EnvVar = "GOHYD_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General  GeneralConfig  `toml:"general"`
	Friction FrictionConfig `toml:"friction"`
	Pipe     PipeConfig     `toml:"pipe"`

	// Path is the file the configuration was read from, empty for defaults
	Path string `toml:"-"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel string `toml:"log_level"`
	Format   string `toml:"format"` // table, json or yaml
}

// FrictionConfig holds the friction-factor solver settings
type FrictionConfig struct {
	Equation  string `toml:"equation"`
	Precision uint32 `toml:"precision"`
	Rounding  string `toml:"rounding"`
}

// PipeConfig holds the fluid defaults and the discharge solver settings
type PipeConfig struct {
	Gravity    float64         `toml:"gravity"`
	Viscosity  float64         `toml:"viscosity"`
	TolHf      float64         `toml:"tol_hf"`
	TolRelQ    float64         `toml:"tol_rel_q"`
	MaxIter    int             `toml:"max_iter"`
	Relaxation pipe.Relaxation `toml:"relaxation"`
}

// Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("unknown keys in config %s: %s", path, strings.Join(keys, ", "))
	}

	cfg.applyDefaults()
	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Resolve loads the explicit path if one is given, then the file named by
// GOHYD_CONFIG, then the first of DefaultPaths that exists. When none
// applies the defaults are returned.
func Resolve(explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}
	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// DefaultPaths lists the locations searched when no file is named
func DefaultPaths() []string {
	paths := []string{"./gohyd.toml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "gohyd", "gohyd.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.Format == "" {
		c.General.Format = "table"
	}

	// Friction
	dec := exact.DefaultConfig()
	if c.Friction.Equation == "" {
		c.Friction.Equation = string(friction.ColebrookWhite)
	}
	if c.Friction.Precision == 0 {
		c.Friction.Precision = dec.Precision
	}
	if c.Friction.Rounding == "" {
		c.Friction.Rounding = string(dec.Rounding)
	}

	// Pipe
	opts := pipe.DefaultOptions()
	if c.Pipe.Gravity == 0 {
		c.Pipe.Gravity = 9.81
	}
	if c.Pipe.Viscosity == 0 {
		c.Pipe.Viscosity = 1e-6
	}
	if c.Pipe.TolHf == 0 {
		c.Pipe.TolHf = opts.TolHf
	}
	if c.Pipe.TolRelQ == 0 {
		c.Pipe.TolRelQ = opts.TolRelQ
	}
	if c.Pipe.MaxIter == 0 {
		c.Pipe.MaxIter = opts.MaxIter
	}

	r := &c.Pipe.Relaxation
	if r.Min == 0 {
		r.Min = opts.Relaxation.Min
	}
	if r.Max == 0 {
		r.Max = opts.Relaxation.Max
	}
	if r.Shrink == 0 {
		r.Shrink = opts.Relaxation.Shrink
	}
	if r.Grow == 0 {
		r.Grow = opts.Relaxation.Grow
	}
	if r.Patience == 0 {
		r.Patience = opts.Relaxation.Patience
	}
}

// Validate checks that every section can be turned into solver settings
func (c *Config) Validate() error {
	switch c.General.Format {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("general.format must be table, json or yaml, got %q", c.General.Format)
	}
	if _, err := friction.ParseEquation(c.Friction.Equation); err != nil {
		return fmt.Errorf("friction.equation: %w", err)
	}
	if _, err := c.Exact(); err != nil {
		return fmt.Errorf("friction: %w", err)
	}
	if !(c.Pipe.Gravity > 0) {
		return fmt.Errorf("pipe.gravity must be positive, got %v", c.Pipe.Gravity)
	}
	if !(c.Pipe.Viscosity > 0) {
		return fmt.Errorf("pipe.viscosity must be positive, got %v", c.Pipe.Viscosity)
	}
	if err := c.PipeOptions().Validate(); err != nil {
		return fmt.Errorf("pipe: %w", err)
	}
	return nil
}

// Equation returns the configured default friction equation
func (c *Config) Equation() (friction.Equation, error) {
	return friction.ParseEquation(c.Friction.Equation)
}

// Exact returns the decimal precision settings of the friction section
func (c *Config) Exact() (exact.Config, error) {
	rounding, err := exact.ParseRounding(c.Friction.Rounding)
	if err != nil {
		return exact.Config{}, err
	}
	cfg := exact.Config{Precision: c.Friction.Precision, Rounding: rounding}
	if err := cfg.Validate(); err != nil {
		return exact.Config{}, err
	}
	return cfg, nil
}

// PipeOptions returns the discharge solver settings of the pipe section
func (c *Config) PipeOptions() pipe.Options {
	return pipe.Options{
		TolHf:      c.Pipe.TolHf,
		TolRelQ:    c.Pipe.TolRelQ,
		MaxIter:    c.Pipe.MaxIter,
		Relaxation: c.Pipe.Relaxation,
	}
}
