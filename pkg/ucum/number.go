package ucum

import "github.com/shopspring/decimal"

// Number is the evaluator's internal arithmetic type. It wraps
// shopspring/decimal so that chains of prefix and unit factors compose
// without the rounding drift plain float64 multiplication accumulates over
// long expressions, while still exposing a float64 view at the public
// boundary (Analyse, Convert).
type Number struct {
	d decimal.Decimal
}

// NumberZero is the additive identity.
var NumberZero = Number{d: decimal.Zero}

// NumberOne is the multiplicative identity.
var NumberOne = Number{d: decimal.NewFromInt(1)}

// NumberFromFloat builds a Number from a float64.
func NumberFromFloat(f float64) Number {
	return Number{d: decimal.NewFromFloat(f)}
}

// NumberFromInt builds a Number from an int64.
func NumberFromInt(i int64) Number {
	return Number{d: decimal.NewFromInt(i)}
}

// Float64 returns the closest float64 representation of n.
func (n Number) Float64() float64 {
	f, _ := n.d.Float64()
	return f
}

// Add returns n + o.
func (n Number) Add(o Number) Number { return Number{d: n.d.Add(o.d)} }

// Sub returns n - o.
func (n Number) Sub(o Number) Number { return Number{d: n.d.Sub(o.d)} }

// Mul returns n * o.
func (n Number) Mul(o Number) Number { return Number{d: n.d.Mul(o.d)} }

// Div returns n / o. Division by zero panics, matching decimal's own
// behavior; callers must not call Div with a zero divisor.
func (n Number) Div(o Number) Number { return Number{d: n.d.Div(o.d)} }

// Pow raises n to an integer power, including negative exponents, by
// repeated multiplication and taking the reciprocal when exp is negative
// (mirrors the original evaluator's NumericOps::pow for negative exponents,
// since decimal.Decimal has no native integer-power operator).
func (n Number) Pow(exp int) Number {
	if exp == 0 {
		return NumberOne
	}
	neg := exp < 0
	if neg {
		exp = -exp
	}
	result := NumberOne
	base := n
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exp >>= 1
	}
	if neg {
		return NumberOne.Div(result)
	}
	return result
}

// Abs returns the absolute value of n.
func (n Number) Abs() Number { return Number{d: n.d.Abs()} }

// IsZero reports whether n is exactly zero.
func (n Number) IsZero() bool { return n.d.IsZero() }

// Sign returns -1, 0, or 1.
func (n Number) Sign() int { return n.d.Sign() }

// String renders n in decimal notation.
func (n Number) String() string { return n.d.String() }
