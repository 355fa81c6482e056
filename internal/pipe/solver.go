// Package pipe solves for the steady discharge through a single pipe joining
// two reservoirs, balancing the available head against friction and minor
// losses with an adaptively relaxed fixed-point iteration.
//
// The solver works in float64 throughout. It does not share the decimal
// context of the friction package and derives its own turbulent velocity.
package pipe

import (
	"math"
)

// Regime labels recorded in the iteration table. The strings are kept as
// stored in existing calculation histories.
type Regime string

const (
	Laminar   Regime = "Laminar"
	Turbulent Regime = "Turbulento"
)

// CriticalReynolds separates laminar from turbulent flow
const CriticalReynolds = 2000

// Input holds the pipe and fluid data, all in one consistent unit system (SI)
type Input struct {
	Length    float64 `json:"length" yaml:"length"`         // L (m)
	Diameter  float64 `json:"diameter" yaml:"diameter"`     // D (m)
	Roughness float64 `json:"roughness" yaml:"roughness"`   // ks, absolute roughness (m)
	Viscosity float64 `json:"viscosity" yaml:"viscosity"`   // ν, kinematic viscosity (m²/s)
	MinorLoss float64 `json:"minor_loss" yaml:"minor_loss"` // Km, lumped minor-loss coefficient
	Z1        float64 `json:"z1" yaml:"z1"`                 // upstream elevation (m)
	Z2        float64 `json:"z2" yaml:"z2"`                 // downstream elevation (m)
	Gravity   float64 `json:"gravity" yaml:"gravity"`       // g (m/s²)
}

// Head is the available head |z1 - z2|
func (in Input) Head() float64 {
	return math.Abs(in.Z1 - in.Z2)
}

// Area is the pipe cross-section πD²/4
func (in Input) Area() float64 {
	return math.Pi * in.Diameter * in.Diameter / 4
}

// Relaxation controls how the damping factor λ adapts between iterations
type Relaxation struct {
	Min      float64 `toml:"min" json:"min" yaml:"min"`
	Max      float64 `toml:"max" json:"max" yaml:"max"`
	Shrink   float64 `toml:"shrink" json:"shrink" yaml:"shrink"`       // applied on sign change or stalled residual
	Grow     float64 `toml:"grow" json:"grow" yaml:"grow"`             // applied after Patience improving steps
	Patience int     `toml:"patience" json:"patience" yaml:"patience"` // consecutive improving steps before growing
}

// Options are the solver tolerances and iteration budget
type Options struct {
	TolHf      float64    // absolute tolerance on the head-loss update
	TolRelQ    float64    // relative tolerance on successive discharges
	MaxIter    int        // iteration budget
	Relaxation Relaxation // adaptive damping
}

// DefaultRelaxation returns λ in [0.3, 1.0], shrink 0.5, grow 1.1, patience 2
func DefaultRelaxation() Relaxation {
	return Relaxation{
		Min:      0.3,
		Max:      1.0,
		Shrink:   0.5,
		Grow:     1.1,
		Patience: 2,
	}
}

// DefaultOptions returns TolHf 1e-6, TolRelQ 1e-4 and 300 iterations
func DefaultOptions() Options {
	return Options{
		TolHf:      1e-6,
		TolRelQ:    1e-4,
		MaxIter:    300,
		Relaxation: DefaultRelaxation(),
	}
}

// IterationRow records one solver step. Hf is the head loss the step
// started from, not the updated estimate.
type IterationRow struct {
	Iter   int     `json:"iter" yaml:"iter"`
	Lambda float64 `json:"lambda" yaml:"lambda"`
	Hf     float64 `json:"hf" yaml:"hf"`
	V      float64 `json:"v" yaml:"v"`
	Q      float64 `json:"q" yaml:"q"`
	Re     float64 `json:"re" yaml:"re"`
	Regime Regime  `json:"regimen" yaml:"regimen"`
}

// Result holds the discharge and the full iteration trace
type Result struct {
	Q         float64        // discharge of the last row, 0 if no row was recorded
	Table     []IterationRow // one row per step, in order
	Converged bool           // false when the iteration budget ran out
	Head      float64        // available head H
	Area      float64        // pipe cross-section
}

// Last returns the final iteration row
func (r *Result) Last() (IterationRow, bool) {
	if len(r.Table) == 0 {
		return IterationRow{}, false
	}
	return r.Table[len(r.Table)-1], true
}

// Iterations is the number of recorded steps
func (r *Result) Iterations() int {
	return len(r.Table)
}

// Solve iterates the energy balance H = hf + Km·V²/(2g) for the discharge.
//
// Each step derives V from the current hf with the turbulent relation, and
// falls back to the laminar relation when that trial velocity gives Re < 2000.
// The head-loss estimate is moved toward H - hm by a factor λ that shrinks
// when the residual oscillates or stalls and grows after steady improvement.
//
// Inputs are not validated; call Input.Validate first. Running out of
// iterations is not an error: the last row is returned with Converged false.
func Solve(in Input, opts Options) *Result {
	H := in.Head()
	area := in.Area()
	rel := opts.Relaxation

	result := &Result{
		Head:  H,
		Area:  area,
		Table: make([]IterationRow, 0, max(opts.MaxIter, 0)),
	}

	lambda := 1.0
	hf := H
	var rPrev, qPrev float64
	improving := 0

	for iter := 1; iter <= opts.MaxIter; iter++ {
		// Regime is decided from the turbulent trial velocity even when the
		// laminar relation ends up being used.
		v := VelocityTurbulent(hf, in.Length, in.Diameter, in.Roughness, in.Viscosity, in.Gravity)
		reTrial := math.Abs(v) * in.Diameter / in.Viscosity
		regime := Turbulent
		if reTrial < CriticalReynolds {
			v = VelocityLaminar(hf, in.Length, in.Diameter, in.Viscosity, in.Gravity)
			regime = Laminar
		}

		q := area * v
		hm := in.MinorLoss * v * v / (2 * in.Gravity)
		r := (H - hm) - hf
		hfNext := hf + lambda*r

		result.Table = append(result.Table, IterationRow{
			Iter:   iter,
			Lambda: lambda,
			Hf:     hf,
			V:      v,
			Q:      q,
			Re:     math.Abs(v) * in.Diameter / in.Viscosity,
			Regime: regime,
		})

		if math.Abs(hfNext-hf) < opts.TolHf ||
			(iter > 1 && math.Abs(q-qPrev)/math.Max(math.Abs(q), 1e-30) < opts.TolRelQ) {
			result.Converged = true
			break
		}

		if iter > 1 {
			switch {
			case r*rPrev < 0 || math.Abs(r) > 0.9*math.Abs(rPrev):
				lambda = math.Max(lambda*rel.Shrink, rel.Min)
				improving = 0
			case math.Abs(r) < 0.5*math.Abs(rPrev):
				improving++
				if improving >= rel.Patience {
					lambda = math.Min(lambda*rel.Grow, rel.Max)
					improving = 0
				}
			default:
				improving = 0
			}
		}

		rPrev = r
		qPrev = q
		hf = math.Max(hfNext, 0)
	}

	if last, ok := result.Last(); ok {
		result.Q = last.Q
	}
	return result
}
