// Package ucum implements the Unified Code for Units of Measure: parsing
// unit expressions, evaluating them to a canonical dimensional form, and
// converting quantities between commensurable units.
package ucum

import "fmt"

// Dimension is the exponent vector of the seven SI base quantities, in
// fixed order: mass, length, time, electric current, thermodynamic
// temperature, amount of substance, luminous intensity.
type Dimension [7]int8

// Base quantity indices into a Dimension.
const (
	DimMass = iota
	DimLength
	DimTime
	DimCurrent
	DimTemperature
	DimAmount
	DimLuminous
)

// IsZero reports whether every exponent is zero (a dimensionless quantity).
func (d Dimension) IsZero() bool {
	return d == Dimension{}
}

// Add returns the component-wise sum of two dimensions, saturating at the
// int8 range rather than overflowing.
func (d Dimension) Add(o Dimension) Dimension {
	var r Dimension
	for i := range d {
		r[i] = saturatingAdd(d[i], o[i])
	}
	return r
}

// Sub returns the component-wise difference d - o, saturating.
func (d Dimension) Sub(o Dimension) Dimension {
	var r Dimension
	for i := range d {
		r[i] = saturatingAdd(d[i], -o[i])
	}
	return r
}

// Negate returns the component-wise negation of d.
func (d Dimension) Negate() Dimension {
	var r Dimension
	for i := range d {
		r[i] = -d[i]
	}
	return r
}

// Scale returns d with every exponent multiplied by n, saturating.
func (d Dimension) Scale(n int) Dimension {
	var r Dimension
	for i := range d {
		v := int(d[i]) * n
		switch {
		case v > 127:
			r[i] = 127
		case v < -128:
			r[i] = -128
		default:
			r[i] = int8(v)
		}
	}
	return r
}

func saturatingAdd(a, b int8) int8 {
	v := int(a) + int(b)
	switch {
	case v > 127:
		return 127
	case v < -128:
		return -128
	default:
		return int8(v)
	}
}

var dimLabels = [7]byte{'M', 'L', 'T', 'I', 'H', 'N', 'J'}

// String renders a dimension as e.g. "M.L2.T-1", omitting zero exponents;
// a fully dimensionless vector renders as "1".
func (d Dimension) String() string {
	out := ""
	for i, e := range d {
		if e == 0 {
			continue
		}
		if out != "" {
			out += "."
		}
		if e == 1 {
			out += string(dimLabels[i])
		} else {
			out += fmt.Sprintf("%c%d", dimLabels[i], e)
		}
	}
	if out == "" {
		return "1"
	}
	return out
}

// SpecialKind identifies a unit whose relationship to its canonical base is
// not a simple linear factor.
type SpecialKind uint8

const (
	// SpecialNone is an ordinary linear unit: canonical = value*factor.
	SpecialNone SpecialKind = iota
	// SpecialLinearOffset is an affine unit: canonical = value*factor + offset
	// (degree Celsius, degree Fahrenheit, degree Reaumur).
	SpecialLinearOffset
	// SpecialLog10 is a base-10 logarithmic unit (bel family, pH family).
	SpecialLog10
	// SpecialLn is a natural-logarithm unit (neper).
	SpecialLn
	// SpecialTanTimes100 is the prism diopter: canonical = tan(value/100).
	SpecialTanTimes100
	// SpecialArbitrary is a unit with no physical dimension conversion,
	// defined only relative to itself (international unit and the like).
	SpecialArbitrary
)

func (k SpecialKind) String() string {
	switch k {
	case SpecialNone:
		return "none"
	case SpecialLinearOffset:
		return "linear-offset"
	case SpecialLog10:
		return "log10"
	case SpecialLn:
		return "ln"
	case SpecialTanTimes100:
		return "tan-times-100"
	case SpecialArbitrary:
		return "arbitrary"
	default:
		return "unknown"
	}
}

// Prefix is a UCUM metric prefix (k, m, M, u, ...).
type Prefix struct {
	Symbol   string
	Name     string
	Factor   float64
	Exponent int
}

// UnitRecord is a single entry of the compiled unit registry: a code, its
// canonical dimension, the factor and offset that relate one of the unit to
// its canonical base, and the special-conversion kind it requires, if any.
type UnitRecord struct {
	Code     string
	Name     string
	Dim      Dimension
	Factor   float64
	Offset   float64
	Special  SpecialKind
	Metric   bool // whether a metric prefix may combine with this unit
	PrintSym string
}

// IsArbitrary reports whether this unit has no physical dimension
// conversion and is defined only relative to itself ([IU], [arb'U]).
func (u UnitRecord) IsArbitrary() bool {
	return u.Special == SpecialArbitrary
}
