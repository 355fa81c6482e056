package friction

import (
	"github.com/alexiusacademia/gohyd/internal/exact"
	"github.com/cockroachdb/apd/v3"
)

// Correlation constants, kept as decimal literals
var (
	c3_7      = exact.MustParse("3.7")
	c2_51     = exact.MustParse("2.51")
	c1_11     = exact.MustParse("1.11")
	c6_9      = exact.MustParse("6.9")
	c5_74     = exact.MustParse("5.74")
	c0_9      = exact.MustParse("0.9")
	c0_25     = exact.MustParse("0.25")
	c0_27     = exact.MustParse("0.27")
	c0_316    = exact.MustParse("0.316")
	c1_5      = exact.MustParse("1.5")
	cNeg2_457 = exact.MustParse("-2.457")
	cNeg1_8   = exact.MustParse("-1.8")
	cNeg2     = exact.MustParse("-2")
	c2        = exact.MustParse("2")
	c7        = exact.MustParse("7")
	c8        = exact.MustParse("8")
	c12       = exact.MustParse("12")
	c16       = exact.MustParse("16")
	c37530    = exact.MustParse("37530")
	cOne      = exact.MustParse("1")
)

// haaland: 1/√f = -1.8·log10((ε/D/3.7)^1.11 + 6.9/Re)
func (s *Solver) haaland(re, rr *apd.Decimal) (*apd.Decimal, error) {
	k := s.ctx.Calc()
	arg := k.Add(k.Pow(k.Quo(rr, c3_7), c1_11), k.Quo(c6_9, re))
	if k.Failed() {
		return nil, domainError(Haaland, k.Err(), "evaluating log argument")
	}
	if arg.Sign() <= 0 {
		return nil, domainError(Haaland, nil, "log argument %s is not positive", arg)
	}

	x := k.Mul(cNeg1_8, k.Log10(arg))
	if k.Failed() {
		return nil, domainError(Haaland, k.Err(), "evaluating 1/√f")
	}
	if x.IsZero() {
		return nil, domainError(Haaland, nil, "1/√f is zero")
	}

	f := k.InvSquare(x)
	if k.Failed() {
		return nil, domainError(Haaland, k.Err(), "evaluating f")
	}
	return f, nil
}

// colebrookWhite solves 1/√f = -2·log10(ε/D/3.7 + 2.51/(Re·√f)) by
// fixed-point iteration seeded with Haaland.
func (s *Solver) colebrookWhite(re, rr *apd.Decimal) (*apd.Decimal, int, Status, error) {
	f, err := s.haaland(re, rr)
	if err != nil {
		f = new(apd.Decimal).Set(s.seed)
	}

	for i := 0; i < s.maxIter; i++ {
		k := s.ctx.Calc()
		arg := k.Add(k.Quo(rr, c3_7), k.Quo(c2_51, k.Mul(re, k.Sqrt(f))))
		if k.Failed() {
			return nil, i, "", domainError(ColebrookWhite, k.Err(), "evaluating log argument")
		}
		if arg.Sign() <= 0 {
			return f, i, StatusTruncated, nil
		}

		next := k.InvSquare(k.Mul(cNeg2, k.Log10(arg)))
		if k.Failed() {
			// 1/√f collapsed to zero; keep the current iterate
			return f, i, StatusTruncated, nil
		}

		diff := k.Abs(k.Sub(next, f))
		f = next
		if k.Failed() {
			return nil, i + 1, "", domainError(ColebrookWhite, k.Err(), "evaluating step")
		}
		if diff.Cmp(s.tol) <= 0 {
			return f, i + 1, StatusConverged, nil
		}
	}
	return f, s.maxIter, StatusIterationLimit, nil
}

// swameeJain: f = 0.25 / [log10(ε/D/3.7 + 5.74/Re^0.9)]²
func (s *Solver) swameeJain(re, rr *apd.Decimal) (*apd.Decimal, error) {
	k := s.ctx.Calc()
	arg := k.Add(k.Quo(rr, c3_7), k.Quo(c5_74, k.Pow(re, c0_9)))
	if k.Failed() {
		return nil, domainError(SwameeJain, k.Err(), "evaluating log argument")
	}
	if arg.Sign() <= 0 {
		return nil, domainError(SwameeJain, nil, "log argument %s is not positive", arg)
	}

	l := k.Log10(arg)
	f := k.Quo(c0_25, k.Mul(l, l))
	if k.Failed() {
		return nil, domainError(SwameeJain, k.Err(), "evaluating f")
	}
	return f, nil
}

// churchill blends the laminar and turbulent branches without switching:
//
//	A = (-2.457·ln((7/Re)^0.9 + 0.27·ε/D))^16
//	B = (37530/Re)^16
//	f = 8·((8/Re)^12 + 1/(A+B)^1.5)^(1/12)
func (s *Solver) churchill(re, rr *apd.Decimal) (*apd.Decimal, error) {
	k := s.ctx.Calc()
	inner := k.Add(k.Pow(k.Quo(c7, re), c0_9), k.Mul(c0_27, rr))
	if k.Failed() {
		return nil, domainError(Churchill, k.Err(), "evaluating ln argument")
	}
	if inner.Sign() <= 0 {
		return nil, domainError(Churchill, nil, "ln argument %s is not positive", inner)
	}

	a := k.Pow(k.Mul(cNeg2_457, k.Ln(inner)), c16)
	b := k.Pow(k.Quo(c37530, re), c16)
	laminar := k.Pow(k.Quo(c8, re), c12)
	turbulent := k.Quo(cOne, k.Pow(k.Add(a, b), c1_5))
	f := k.Mul(c8, k.Pow(k.Add(laminar, turbulent), k.Quo(cOne, c12)))
	if k.Failed() {
		return nil, domainError(Churchill, k.Err(), "evaluating f")
	}
	return f, nil
}

// serghides accelerates three Colebrook-style evaluations (Steffensen):
//
//	A = -2·log10(ε/D/3.7 + 12/Re)
//	B = -2·log10(ε/D/3.7 + 2.51·A/Re)
//	C = -2·log10(ε/D/3.7 + 2.51·B/Re)
//	f = (A - (B-A)²/(C-2B+A))^-2
func (s *Solver) serghides(re, rr *apd.Decimal) (*apd.Decimal, error) {
	k := s.ctx.Calc()
	rough := k.Quo(rr, c3_7)

	term := func(num *apd.Decimal) *apd.Decimal {
		return k.Mul(cNeg2, k.Log10(k.Add(rough, k.Quo(num, re))))
	}
	a := term(c12)
	b := term(k.Mul(c2_51, a))
	c := term(k.Mul(c2_51, b))
	if k.Failed() {
		return nil, domainError(Serghides, k.Err(), "evaluating A, B, C")
	}

	denom := k.Add(k.Sub(c, k.Mul(c2, b)), a)
	if denom.IsZero() {
		return nil, domainError(Serghides, nil, "denominator C-2B+A is zero")
	}

	ba := k.Sub(b, a)
	x := k.Sub(a, k.Quo(k.Mul(ba, ba), denom))
	f := k.InvSquare(x)
	if k.Failed() {
		return nil, domainError(Serghides, k.Err(), "evaluating f")
	}
	return f, nil
}

// blasius: f = 0.316 / Re^0.25
func (s *Solver) blasius(re *apd.Decimal) (*apd.Decimal, error) {
	k := s.ctx.Calc()
	f := k.Quo(c0_316, k.Pow(re, c0_25))
	if k.Failed() {
		return nil, domainError(Blasius, k.Err(), "evaluating f")
	}
	return f, nil
}

// vonKarman: f = 1 / (-2·log10(ε/D/3.7))²
func (s *Solver) vonKarman(rr *apd.Decimal) (*apd.Decimal, error) {
	k := s.ctx.Calc()
	arg := k.Quo(rr, c3_7)
	if k.Failed() {
		return nil, domainError(VonKarman, k.Err(), "evaluating log argument")
	}
	if arg.Sign() <= 0 {
		return nil, domainError(VonKarman, nil, "log argument %s is not positive", arg)
	}

	f := k.InvSquare(k.Mul(cNeg2, k.Log10(arg)))
	if k.Failed() {
		return nil, domainError(VonKarman, k.Err(), "evaluating f")
	}
	return f, nil
}
