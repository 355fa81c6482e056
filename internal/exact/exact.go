// Package exact provides the arbitrary-precision decimal context used by the
// friction-factor formulas.
//
// The precision and rounding mode are bound to a Context when it is created.
// Nothing here is process-wide, so contexts with different settings can be
// used side by side from several goroutines.
package exact

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Rounding names a decimal rounding mode
type Rounding string

const (
	RoundHalfEven Rounding = "half-even" // banker's rounding
	RoundHalfUp   Rounding = "half-up"
	RoundHalfDown Rounding = "half-down"
	RoundDown     Rounding = "down" // toward zero
	RoundUp       Rounding = "up"   // away from zero
	RoundCeiling  Rounding = "ceiling"
	RoundFloor    Rounding = "floor"
)

var rounders = map[Rounding]apd.Rounder{
	RoundHalfEven: apd.RoundHalfEven,
	RoundHalfUp:   apd.RoundHalfUp,
	RoundHalfDown: apd.RoundHalfDown,
	RoundDown:     apd.RoundDown,
	RoundUp:       apd.RoundUp,
	RoundCeiling:  apd.RoundCeiling,
	RoundFloor:    apd.RoundFloor,
}

const (
	// DefaultPrecision is the number of significant digits used by the friction solvers
	DefaultPrecision = 50

	// MaxPrecision bounds the configurable precision
	MaxPrecision = 1000
)

// Config holds the precision settings of a decimal context
type Config struct {
	Precision uint32   // significant digits
	Rounding  Rounding // rounding applied to every inexact result
}

// DefaultConfig returns 50 significant digits with round-half-to-even
func DefaultConfig() Config {
	return Config{
		Precision: DefaultPrecision,
		Rounding:  RoundHalfEven,
	}
}

// Validate checks the configuration
func (c Config) Validate() error {
	if c.Precision == 0 || c.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 1 and %d, got %d", MaxPrecision, c.Precision)
	}
	if _, ok := rounders[c.Rounding]; !ok {
		return fmt.Errorf("unknown rounding mode %q", c.Rounding)
	}
	return nil
}

// ParseRounding parses a rounding mode name such as "half-even"
func ParseRounding(s string) (Rounding, error) {
	r := Rounding(strings.ToLower(strings.TrimSpace(s)))
	r = Rounding(strings.ReplaceAll(string(r), "_", "-"))
	if _, ok := rounders[r]; !ok {
		return "", fmt.Errorf("unknown rounding mode %q", s)
	}
	return r, nil
}

// Context is an immutable decimal arithmetic context
type Context struct {
	cfg Config
	ctx *apd.Context
}

// New creates a context bound to cfg. An invalid configuration falls back to
// DefaultConfig; call cfg.Validate first to reject it instead.
func New(cfg Config) *Context {
	if cfg.Validate() != nil {
		cfg = DefaultConfig()
	}
	ctx := apd.BaseContext.WithPrecision(cfg.Precision)
	ctx.Rounding = rounders[cfg.Rounding]
	return &Context{cfg: cfg, ctx: ctx}
}

// Default returns a new context with DefaultConfig
func Default() *Context {
	return New(DefaultConfig())
}

// Config returns the settings the context was created with
func (c *Context) Config() Config {
	return c.cfg
}

// FromFloat converts f through its shortest round-trip text, so 0.1 becomes
// exactly 0.1 rather than the nearest binary fraction.
func (c *Context) FromFloat(f float64) (*apd.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("non-finite value %v", f)
	}
	d, _, err := apd.NewFromString(strconv.FormatFloat(f, 'g', -1, 64))
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Float64 converts d to the nearest float64
func Float64(d *apd.Decimal) float64 {
	f, err := d.Float64()
	if err != nil {
		return math.NaN()
	}
	return f
}

// MustParse parses a decimal literal, panicking on malformed input.
// Use it for constants only.
func MustParse(s string) *apd.Decimal {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		panic(fmt.Sprintf("exact: bad literal %q: %v", s, err))
	}
	return d
}

// Fixed renders d with exactly places fractional digits, rounded with the
// context's rounding mode.
func (c *Context) Fixed(d *apd.Decimal, places int32) (string, error) {
	fc := *c.ctx
	fc.Precision = MaxPrecision
	out := new(apd.Decimal)
	if _, err := fc.Quantize(out, d, -places); err != nil {
		return "", err
	}
	return out.Text('f'), nil
}

// Trimmed renders d with places fractional digits and strips trailing
// fractional zeros.
func (c *Context) Trimmed(d *apd.Decimal, places int32) (string, error) {
	s, err := c.Fixed(d, places)
	if err != nil {
		return "", err
	}
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s, nil
}

// Calc starts a chain of operations in this context
func (c *Context) Calc() *Calc {
	return &Calc{ctx: c.ctx}
}
