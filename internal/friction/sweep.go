package friction

import "math"

// Point is one (Re, f) sample of a friction-factor curve
type Point struct {
	Reynolds float64
	Factor   float64
}

// Curve is a friction-factor curve at fixed relative roughness
type Curve struct {
	Equation          Equation
	RelativeRoughness float64
	Points            []Point
}

// Sweep evaluates eq at every Reynolds number for a fixed ε/D.
// Points where the correlation fails are left out.
func (s *Solver) Sweep(eq Equation, reynolds []float64, epsOverD float64) Curve {
	curve := Curve{
		Equation:          eq,
		RelativeRoughness: epsOverD,
		Points:            make([]Point, 0, len(reynolds)),
	}
	for _, re := range reynolds {
		r, err := s.Factor(eq, re, epsOverD)
		if err != nil {
			continue
		}
		curve.Points = append(curve.Points, Point{Reynolds: re, Factor: r.Float64()})
	}
	return curve
}

// LogSpace returns n values spaced evenly in log10 between lo and hi inclusive
func LogSpace(lo, hi float64, n int) []float64 {
	if n <= 0 || lo <= 0 || hi <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	a, b := math.Log10(lo), math.Log10(hi)
	step := (b - a) / float64(n-1)
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Pow(10, a+step*float64(i))
	}
	out[n-1] = hi
	return out
}

// LaminarFactor is the Hagen-Poiseuille friction factor 64/Re
func LaminarFactor(re float64) float64 {
	return 64 / re
}
