package pipe

import "math"

// hfFloor keeps the square roots below away from zero head loss
const hfFloor = 1e-30

// VelocityTurbulent returns the mean velocity for a friction head loss hf,
// from the Colebrook relation written explicitly in V:
//
//	A = ks/(3.7D)
//	B = 2.51·ν·√L / (D·√(2g·hf·D))
//	V = -2·log10(A+B)·√(2g·hf·D)/√L
//
// The result is clamped to V >= 0, and is 0 when A+B is not a positive
// finite number.
func VelocityTurbulent(hf, L, D, ks, nu, g float64) float64 {
	hf = math.Max(hf, hfFloor)
	root := math.Sqrt(2 * g * hf * D)

	a := ks / (3.7 * D)
	denom := D * root
	if denom == 0 {
		return 0
	}
	b := 2.51 * nu * math.Sqrt(L) / denom

	arg := a + b
	if !(arg > 0) || math.IsInf(arg, 0) {
		return 0
	}

	v := -2 * math.Log10(arg) * root / math.Sqrt(L)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Max(v, 0)
}

// VelocityLaminar is the Hagen-Poiseuille velocity V = g·D²·hf/(32·ν·L),
// clamped to V >= 0.
func VelocityLaminar(hf, L, D, nu, g float64) float64 {
	v := g * D * D * hf / (32 * nu * L)
	return math.Max(v, 0)
}
