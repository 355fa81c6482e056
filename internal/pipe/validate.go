package pipe

import (
	"fmt"
	"math"
	"strings"
)

// ValidationError lists every invalid field of an Input
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid pipe input: " + strings.Join(e.Fields, "; ")
}

// Validate rejects inputs the solver cannot give a physical answer for:
// L <= 0, D <= 0, ks < 0, ν <= 0, Km < 0, g <= 0, or any non-finite value.
// Solve does not call it; callers should.
func (in Input) Validate() error {
	var fields []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			fields = append(fields, fmt.Sprintf(format, args...))
		}
	}

	check(in.Length > 0, "length must be positive, got %v", in.Length)
	check(in.Diameter > 0, "diameter must be positive, got %v", in.Diameter)
	check(in.Roughness >= 0, "roughness must be non-negative, got %v", in.Roughness)
	check(in.Viscosity > 0, "viscosity must be positive, got %v", in.Viscosity)
	check(in.MinorLoss >= 0, "minor-loss coefficient must be non-negative, got %v", in.MinorLoss)
	check(in.Gravity > 0, "gravity must be positive, got %v", in.Gravity)
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"length", in.Length},
		{"diameter", in.Diameter},
		{"roughness", in.Roughness},
		{"viscosity", in.Viscosity},
		{"minor-loss coefficient", in.MinorLoss},
		{"z1", in.Z1},
		{"z2", in.Z2},
		{"gravity", in.Gravity},
	} {
		check(!math.IsInf(f.value, 0) && !math.IsNaN(f.value), "%s must be finite, got %v", f.name, f.value)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Validate checks the tolerances and relaxation bounds
func (o Options) Validate() error {
	r := o.Relaxation
	switch {
	case !(o.TolHf > 0):
		return fmt.Errorf("head-loss tolerance must be positive, got %v", o.TolHf)
	case !(o.TolRelQ > 0):
		return fmt.Errorf("discharge tolerance must be positive, got %v", o.TolRelQ)
	case o.MaxIter < 1:
		return fmt.Errorf("iteration budget must be at least 1, got %d", o.MaxIter)
	case !(r.Min > 0) || r.Min > r.Max || r.Max > 1:
		return fmt.Errorf("relaxation bounds must satisfy 0 < min <= max <= 1, got [%v, %v]", r.Min, r.Max)
	case !(r.Shrink > 0 && r.Shrink < 1):
		return fmt.Errorf("relaxation shrink factor must be in (0, 1), got %v", r.Shrink)
	case !(r.Grow >= 1):
		return fmt.Errorf("relaxation grow factor must be at least 1, got %v", r.Grow)
	case r.Patience < 1:
		return fmt.Errorf("relaxation patience must be at least 1, got %d", r.Patience)
	}
	return nil
}
