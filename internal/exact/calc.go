package exact

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Calc chains decimal operations. The first failing operation records its
// error; every later operation is skipped and returns zero, so a formula can
// be written straight through and checked once with Err.
type Calc struct {
	ctx *apd.Context
	err error
}

// Err returns the first error recorded by the chain
func (k *Calc) Err() error {
	return k.err
}

// Failed reports whether an operation has failed
func (k *Calc) Failed() bool {
	return k.err != nil
}

func (k *Calc) do(op string, f func(d *apd.Decimal) (apd.Condition, error)) *apd.Decimal {
	d := new(apd.Decimal)
	if k.err != nil {
		return d
	}
	if _, err := f(d); err != nil {
		k.err = fmt.Errorf("%s: %w", op, err)
	}
	return d
}

func (k *Calc) Add(x, y *apd.Decimal) *apd.Decimal {
	return k.do("add", func(d *apd.Decimal) (apd.Condition, error) { return k.ctx.Add(d, x, y) })
}

func (k *Calc) Sub(x, y *apd.Decimal) *apd.Decimal {
	return k.do("sub", func(d *apd.Decimal) (apd.Condition, error) { return k.ctx.Sub(d, x, y) })
}

func (k *Calc) Mul(x, y *apd.Decimal) *apd.Decimal {
	return k.do("mul", func(d *apd.Decimal) (apd.Condition, error) { return k.ctx.Mul(d, x, y) })
}

// Quo divides x by y; a zero divisor fails the chain
func (k *Calc) Quo(x, y *apd.Decimal) *apd.Decimal {
	return k.do("quo", func(d *apd.Decimal) (apd.Condition, error) {
		if y.IsZero() {
			return 0, fmt.Errorf("division by zero")
		}
		return k.ctx.Quo(d, x, y)
	})
}

// Pow raises x to y. Zero to a positive power is zero.
func (k *Calc) Pow(x, y *apd.Decimal) *apd.Decimal {
	return k.do("pow", func(d *apd.Decimal) (apd.Condition, error) {
		if x.IsZero() && y.Sign() > 0 {
			d.SetInt64(0)
			return 0, nil
		}
		return k.ctx.Pow(d, x, y)
	})
}

func (k *Calc) Sqrt(x *apd.Decimal) *apd.Decimal {
	return k.do("sqrt", func(d *apd.Decimal) (apd.Condition, error) { return k.ctx.Sqrt(d, x) })
}

// Ln is the natural logarithm; x must be positive
func (k *Calc) Ln(x *apd.Decimal) *apd.Decimal {
	return k.do("ln", func(d *apd.Decimal) (apd.Condition, error) {
		if x.Sign() <= 0 {
			return 0, fmt.Errorf("logarithm of non-positive value %s", x)
		}
		return k.ctx.Ln(d, x)
	})
}

// Log10 is the base-10 logarithm; x must be positive
func (k *Calc) Log10(x *apd.Decimal) *apd.Decimal {
	return k.do("log10", func(d *apd.Decimal) (apd.Condition, error) {
		if x.Sign() <= 0 {
			return 0, fmt.Errorf("logarithm of non-positive value %s", x)
		}
		return k.ctx.Log10(d, x)
	})
}

func (k *Calc) Abs(x *apd.Decimal) *apd.Decimal {
	return k.do("abs", func(d *apd.Decimal) (apd.Condition, error) { return k.ctx.Abs(d, x) })
}

func (k *Calc) Neg(x *apd.Decimal) *apd.Decimal {
	return k.do("neg", func(d *apd.Decimal) (apd.Condition, error) { return k.ctx.Neg(d, x) })
}

// InvSquare returns 1/x², the step shared by every 1/√f correlation
func (k *Calc) InvSquare(x *apd.Decimal) *apd.Decimal {
	return k.Quo(one, k.Mul(x, x))
}

var one = apd.New(1, 0)
