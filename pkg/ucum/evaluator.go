package ucum

// Canonical is the result of evaluating an expression tree: either an
// ordinary affine unit (canonical = value*Factor + Offset, Special ==
// SpecialNone) or a special, non-linear unit, in which case Unit identifies
// the registry record whose formula (see special_units.go) must be applied
// directly to the external value, after scaling it by ArgScale (the
// metric prefix factor applied to the special symbol, or 1 if none).
type Canonical struct {
	Factor   float64
	Offset   float64
	Dim      Dimension
	Special  SpecialKind
	Unit     UnitRecord
	ArgScale float64
}

// ToCanonical applies this Canonical to an external quantity value,
// returning the canonical linear value (in the dimension Dim).
func (c Canonical) ToCanonical(value float64) (float64, error) {
	if c.Special == SpecialNone {
		return value*c.Factor + c.Offset, nil
	}
	return toCanonicalSpecial(c.Unit, specialArg{value: value, prefix: c.ArgScale})
}

// FromCanonical is the inverse of ToCanonical: given a canonical linear
// value, it returns the value expressed in this unit.
func (c Canonical) FromCanonical(canonical float64) (float64, error) {
	if c.Special == SpecialNone {
		return (canonical - c.Offset) / c.Factor, nil
	}
	v, err := fromCanonicalSpecial(c.Unit, canonical)
	if err != nil {
		return 0, err
	}
	if c.ArgScale != 0 {
		v /= c.ArgScale
	}
	return v, nil
}

// Evaluate walks an expression tree and produces its Canonical
// description.
func Evaluate(expr Expr) (Canonical, error) {
	switch e := expr.(type) {
	case Numeric:
		return Canonical{Factor: e.Value, ArgScale: 1}, nil
	case Symbol:
		return evaluateSymbol(e)
	case Power:
		return evaluatePower(e)
	case Product:
		return evaluateProduct(e)
	case Quotient:
		return evaluateQuotient(e)
	default:
		return Canonical{}, newError(ErrInvalidExpression, "unrecognized expression node")
	}
}

func evaluateSymbol(s Symbol) (Canonical, error) {
	rec, prefix, ok := resolveSymbol(s.Code)
	if !ok {
		if isBracketedArbitraryShape(s.Code) {
			// An unregistered bracketed code names a local, institution-
			// specific arbitrary unit UCUM never enumerates (e.g. a lab's
			// own assay unit). Rather than failing, treat it leniently as
			// dimensionless with factor 1 so expressions built from it still
			// parse and evaluate. The code itself is not kept: Convert and
			// IsComparable treat it like any other dimensionless unit, so it
			// is comparable with a different unregistered code as well.
			return Canonical{Factor: 1, ArgScale: 1}, nil
		}
		return Canonical{}, newUnitNotFoundError(s.Code, Span{})
	}
	prefixFactor := 1.0
	if prefix.Symbol != "" {
		prefixFactor = prefix.Factor
	}
	if rec.Special == SpecialNone {
		factor := NumberFromFloat(rec.Factor).Mul(NumberFromFloat(prefixFactor))
		return Canonical{Factor: factor.Float64(), Offset: rec.Offset, Dim: rec.Dim, ArgScale: 1}, nil
	}
	return Canonical{Dim: rec.Dim, Special: rec.Special, Unit: rec, ArgScale: prefixFactor}, nil
}

func evaluatePower(p Power) (Canonical, error) {
	base, err := Evaluate(p.Base)
	if err != nil {
		return Canonical{}, err
	}
	if base.Special != SpecialNone {
		if p.Exponent == 1 {
			return base, nil
		}
		return Canonical{}, newConversionError(p.Base.String(), p.Base.String(), "special unit cannot be exponentiated")
	}
	if base.Offset != 0 && p.Exponent != 1 {
		return Canonical{}, newConversionError(p.Base.String(), p.Base.String(), "unit with an offset cannot be exponentiated")
	}
	return Canonical{
		Factor:   NumberFromFloat(base.Factor).Pow(p.Exponent).Float64(),
		Dim:      base.Dim.Scale(p.Exponent),
		ArgScale: 1,
	}, nil
}

func evaluateProduct(p Product) (Canonical, error) {
	if special, ok := tryLoneSpecialProduct(p); ok {
		return special()
	}

	factor := NumberOne
	var d Dimension
	for _, f := range p.Factors {
		c, err := evaluateFactor(f)
		if err != nil {
			return Canonical{}, err
		}
		if c.Special != SpecialNone {
			return Canonical{}, newConversionError(p.String(), p.String(), "special units cannot be combined in a product")
		}
		if c.Offset != 0 {
			return Canonical{}, newConversionError(p.String(), p.String(), "a unit with an offset cannot be combined in a product")
		}
		factor = factor.Mul(NumberFromFloat(c.Factor))
		d = d.Add(c.Dim)
	}
	return Canonical{Factor: factor.Float64(), Dim: d, ArgScale: 1}, nil
}

func evaluateFactor(f Factor) (Canonical, error) {
	c, err := Evaluate(f.Expr)
	if err != nil {
		return Canonical{}, err
	}
	if f.Exponent == 1 {
		return c, nil
	}
	if c.Special != SpecialNone {
		return Canonical{}, newConversionError(f.Expr.String(), f.Expr.String(), "special unit cannot be exponentiated")
	}
	return Canonical{Factor: NumberFromFloat(c.Factor).Pow(f.Exponent).Float64(), Dim: c.Dim.Scale(f.Exponent), ArgScale: 1}, nil
}

// tryLoneSpecialProduct recognizes the one product shape the special-unit
// formulas can absorb: a numeric literal and a single special-unit symbol,
// each with exponent 1, in either order. This shape names a complete,
// already-evaluated non-linear quantity (e.g. "20.dB" names the quantity
// whose canonical value is 100, not a unit that itself still has 20 to
// apply to some later external value) so the numeric is applied through
// the special unit's own formula right here, and the result is returned
// as an ordinary resolved linear Canonical: Factor carries the canonical
// value directly, and Special reverts to SpecialNone since the
// non-linearity has already been consumed.
func tryLoneSpecialProduct(p Product) (func() (Canonical, error), bool) {
	if len(p.Factors) != 2 {
		return nil, false
	}
	a, b := p.Factors[0], p.Factors[1]
	if a.Exponent != 1 || b.Exponent != 1 {
		return nil, false
	}
	num, sym, ok := splitNumericAndSymbol(a, b)
	if !ok {
		return nil, false
	}
	rec, prefix, ok := resolveSymbol(sym.Code)
	if !ok || rec.Special == SpecialNone {
		return nil, false
	}
	prefixFactor := 1.0
	if prefix.Symbol != "" {
		prefixFactor = prefix.Factor
	}
	return func() (Canonical, error) {
		factor, err := toCanonicalSpecial(rec, specialArg{value: num.Value, prefix: prefixFactor})
		if err != nil {
			return Canonical{}, err
		}
		return Canonical{Factor: factor, Dim: rec.Dim, ArgScale: 1}, nil
	}, true
}

// isBracketedArbitraryShape reports whether code has the "[...]" shape UCUM
// reserves for arbitrary units, without checking registration.
func isBracketedArbitraryShape(code string) bool {
	return len(code) >= 2 && code[0] == '[' && code[len(code)-1] == ']'
}

func splitNumericAndSymbol(a, b Factor) (Numeric, Symbol, bool) {
	if n, ok := a.Expr.(Numeric); ok {
		if s, ok := b.Expr.(Symbol); ok {
			return n, s, true
		}
	}
	if n, ok := b.Expr.(Numeric); ok {
		if s, ok := a.Expr.(Symbol); ok {
			return n, s, true
		}
	}
	return Numeric{}, Symbol{}, false
}

func evaluateQuotient(q Quotient) (Canonical, error) {
	num, err := Evaluate(q.Numerator)
	if err != nil {
		return Canonical{}, err
	}
	den, err := Evaluate(q.Denominator)
	if err != nil {
		return Canonical{}, err
	}

	if num.Special == SpecialArbitrary && den.Special == SpecialNone {
		// Pragmatic, non-strict-UCUM rule: an arbitrary unit in the
		// numerator of a quotient adopts the negated dimension of the
		// denominator, so expressions like "[IU]/mL" become dimensionally
		// comparable to "[IU]/L" even though [IU] itself carries no
		// physical dimension.
		if den.Offset != 0 {
			return Canonical{}, newConversionError(q.String(), q.String(), "a unit with an offset cannot appear in a quotient denominator")
		}
		return Canonical{Factor: NumberOne.Div(NumberFromFloat(den.Factor)).Float64(), Dim: den.Dim.Negate(), ArgScale: 1}, nil
	}

	if num.Special != SpecialNone || den.Special != SpecialNone {
		return Canonical{}, newConversionError(q.String(), q.String(), "special units cannot be combined in a quotient")
	}
	if num.Offset != 0 || den.Offset != 0 {
		return Canonical{}, newConversionError(q.String(), q.String(), "a unit with an offset cannot appear in a quotient")
	}
	factor := NumberFromFloat(num.Factor).Div(NumberFromFloat(den.Factor))
	return Canonical{Factor: factor.Float64(), Dim: num.Dim.Sub(den.Dim), ArgScale: 1}, nil
}
