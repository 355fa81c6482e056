// Package friction computes the Darcy-Weisbach friction factor f from the
// Reynolds number and the relative roughness ε/D.
//
// All arithmetic runs in an exact decimal context (50 significant digits,
// round-half-to-even by default) so the Colebrook-White convergence test is
// not perturbed by binary floating-point error.
package friction

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gohyd/internal/exact"
	"github.com/cockroachdb/apd/v3"
)

// Colebrook-White iteration settings
const (
	ColebrookMaxIter   = 200
	ColebrookSeed      = "0.02"  // used when the Haaland seed cannot be evaluated
	ColebrookTolerance = "1e-20" // |f_next - f| at which the iteration stops
)

// Status tells how a friction factor was obtained
type Status string

const (
	StatusClosedForm     Status = "closed-form"     // direct evaluation
	StatusConverged      Status = "converged"       // fixed point reached within tolerance
	StatusIterationLimit Status = "iteration-limit" // ran out of iterations, last iterate returned
	StatusTruncated      Status = "truncated"       // log argument became non-positive, current iterate returned
)

// Input describes one friction-factor calculation. The relative roughness is
// taken from RelativeRoughness unless Roughness or Diameter is set, in which
// case it is Roughness/Diameter and both must share a length unit.
type Input struct {
	Equation          Equation
	Reynolds          float64 // Re, ignored by von Kármán
	RelativeRoughness float64 // ε/D, ignored by Blasius
	Roughness         float64 // ε, absolute roughness
	Diameter          float64 // D, internal diameter
}

// Warning is a non-blocking advisory, e.g. an input outside the range a
// correlation was fitted for.
type Warning struct {
	Equation Equation
	Message  string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Equation.Title(), w.Message)
}

// Result holds a computed friction factor
type Result struct {
	Equation          Equation
	Reynolds          float64
	RelativeRoughness float64

	Value      *apd.Decimal // f
	Iterations int          // fixed-point steps taken (Colebrook-White only)
	Status     Status
	Warnings   []Warning
}

// Float64 returns f as a float64
func (r *Result) Float64() float64 {
	return exact.Float64(r.Value)
}

// Converged is false when an iterative solve stopped without meeting its
// tolerance. The value is still the solver's best estimate.
func (r *Result) Converged() bool {
	return r.Status == StatusClosedForm || r.Status == StatusConverged
}

// Solver evaluates friction-factor correlations in a fixed decimal context.
// It holds no mutable state and may be shared between goroutines.
type Solver struct {
	ctx     *exact.Context
	maxIter int
	tol     *apd.Decimal
	seed    *apd.Decimal
}

// NewSolver creates a solver bound to the given decimal configuration
func NewSolver(cfg exact.Config) *Solver {
	return &Solver{
		ctx:     exact.New(cfg),
		maxIter: ColebrookMaxIter,
		tol:     exact.MustParse(ColebrookTolerance),
		seed:    exact.MustParse(ColebrookSeed),
	}
}

// Context returns the solver's decimal context
func (s *Solver) Context() *exact.Context {
	return s.ctx
}

var defaultSolver = NewSolver(exact.DefaultConfig())

// Compute evaluates eq with the default 50-digit half-even context
func Compute(eq Equation, re, epsOverD float64) (*Result, error) {
	return defaultSolver.Factor(eq, re, epsOverD)
}

// Factor evaluates eq for a Reynolds number and relative roughness
func (s *Solver) Factor(eq Equation, re, epsOverD float64) (*Result, error) {
	return s.Compute(Input{Equation: eq, Reynolds: re, RelativeRoughness: epsOverD})
}

// Compute evaluates the friction factor described by in
func (s *Solver) Compute(in Input) (*Result, error) {
	eq := in.Equation
	if !eq.valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEquation, eq)
	}

	rr, err := in.relativeRoughness()
	if err != nil {
		return nil, err
	}

	result := &Result{
		Equation:          eq,
		Reynolds:          in.Reynolds,
		RelativeRoughness: rr,
		Status:            StatusClosedForm,
	}

	var re, eps *apd.Decimal
	if eq.NeedsReynolds() {
		if in.Reynolds == 0 {
			return nil, fmt.Errorf("%s: %w: Reynolds number", eq, ErrMissingInput)
		}
		if !(in.Reynolds > 0) || math.IsInf(in.Reynolds, 0) {
			return nil, domainError(eq, nil, "Reynolds number must be positive and finite, got %v", in.Reynolds)
		}
		if re, err = s.ctx.FromFloat(in.Reynolds); err != nil {
			return nil, domainError(eq, err, "Reynolds number")
		}
	}
	if eq.NeedsRoughness() {
		if !(rr >= 0) || math.IsInf(rr, 0) {
			return nil, domainError(eq, nil, "relative roughness must be non-negative and finite, got %v", rr)
		}
		if eps, err = s.ctx.FromFloat(rr); err != nil {
			return nil, domainError(eq, err, "relative roughness")
		}
	}

	switch eq {
	case ColebrookWhite:
		result.Value, result.Iterations, result.Status, err = s.colebrookWhite(re, eps)
	case Haaland:
		result.Value, err = s.haaland(re, eps)
	case SwameeJain:
		result.Value, err = s.swameeJain(re, eps)
	case Churchill:
		result.Value, err = s.churchill(re, eps)
	case Serghides:
		result.Value, err = s.serghides(re, eps)
	case Blasius:
		result.Value, err = s.blasius(re)
	case VonKarman:
		result.Value, err = s.vonKarman(eps)
	}
	if err != nil {
		return nil, err
	}

	result.Warnings = advisories(eq, in.Reynolds, rr)
	return result, nil
}

func (in Input) relativeRoughness() (float64, error) {
	if in.Roughness == 0 && in.Diameter == 0 {
		return in.RelativeRoughness, nil
	}
	if !(in.Diameter > 0) {
		return 0, domainError(in.Equation, nil, "diameter must be positive, got %v", in.Diameter)
	}
	if !(in.Roughness >= 0) {
		return 0, domainError(in.Equation, nil, "roughness must be non-negative, got %v", in.Roughness)
	}
	return in.Roughness / in.Diameter, nil
}

// advisories flags inputs outside the fitted range of a correlation
func advisories(eq Equation, re, rr float64) []Warning {
	var warnings []Warning
	switch eq {
	case SwameeJain:
		if rr < 1e-6 || rr > 1e-2 {
			warnings = append(warnings, Warning{eq, fmt.Sprintf("ε/D = %g outside fitted range 1e-6 to 1e-2", rr)})
		}
		if re < 5000 || re > 1e8 {
			warnings = append(warnings, Warning{eq, fmt.Sprintf("Re = %g outside fitted range 5000 to 1e8", re)})
		}
	case Blasius:
		if re < 4000 || re > 1e5 {
			warnings = append(warnings, Warning{eq, fmt.Sprintf("Re = %g outside fitted range 4000 to 1e5 (smooth pipe)", re)})
		}
	}
	return warnings
}
