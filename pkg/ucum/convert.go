package ucum

// Analysis is the result of Analyse: a structural description of a parsed
// unit expression's canonical form, without reference to any particular
// quantity value.
type Analysis struct {
	Expression      string
	Factor          float64
	Offset          float64
	Dimension       Dimension
	IsDimensionless bool
	HasOffset       bool
}

// CanonicalUnit describes the canonical base an expression reduces to: its
// dimension and the factor/offset that relate one unit of the expression
// to one canonical unit of that dimension.
type CanonicalUnit struct {
	Dimension Dimension
	Factor    float64
	Offset    float64
}

// Validate reports whether expr is a syntactically and semantically valid
// unit expression: it parses and every symbol it references resolves
// against the registry.
func Validate(expr string) error {
	_, err := parseAndEvaluate(expr)
	return err
}

// Analyse parses and evaluates expr, returning a structural description of
// its canonical form.
func Analyse(expr string) (Analysis, error) {
	c, err := parseAndEvaluate(expr)
	if err != nil {
		return Analysis{}, err
	}
	factor := c.Factor
	offset := c.Offset
	if c.Special != SpecialNone {
		// A bare special-unit symbol (as opposed to a resolved
		// numeric-literal product such as "20.dB") has no value to apply
		// its non-linear formula to yet; report the registry's own linear
		// reference factor/offset instead of the zero value Factor/Offset
		// would otherwise carry.
		factor = c.Unit.Factor
		offset = c.Unit.Offset
	}
	return Analysis{
		Expression:      expr,
		Factor:          factor,
		Offset:          offset,
		Dimension:       c.Dim,
		IsDimensionless: c.Dim.IsZero(),
		HasOffset:       offset != 0,
	}, nil
}

// Convert converts value, expressed in the unit from, into the unit to.
// It returns ErrIncompatibleDimensions if the two units do not share a
// dimension.
//
// The conversion goes through canonical space: v0 = value*from.factor +
// from.offset; result = (v0 - to.offset) / to.factor. Special (non-linear)
// units substitute their own formula for the affine one at either end.
func Convert(value float64, from, to string) (float64, error) {
	fromC, err := parseAndEvaluate(from)
	if err != nil {
		return 0, wrapConvertErr(from, to, err)
	}
	toC, err := parseAndEvaluate(to)
	if err != nil {
		return 0, wrapConvertErr(from, to, err)
	}
	if fromC.Dim != toC.Dim {
		return 0, newIncompatibleDimensionsError(from, to, fromC.Dim, toC.Dim)
	}
	canonical, err := fromC.ToCanonical(value)
	if err != nil {
		return 0, wrapConvertErr(from, to, err)
	}
	result, err := toC.FromCanonical(canonical)
	if err != nil {
		return 0, wrapConvertErr(from, to, err)
	}
	return result, nil
}

func wrapConvertErr(from, to string, err error) error {
	if e, ok := err.(*Error); ok && e.Kind == ErrConversionFailed {
		return e
	}
	wrapped := wrapAt(from+" -> "+to, err)
	return &Error{Kind: ErrConversionFailed, Message: wrapped.Error(), cause: wrapped}
}

// IsComparable reports whether two unit expressions share a canonical
// dimension, and so can be passed to Convert. A parse or lookup error on
// either expression is returned as the error rather than folded into a
// false result, so callers can distinguish "not comparable" from "not
// valid."
func IsComparable(a, b string) (bool, error) {
	ac, err := parseAndEvaluate(a)
	if err != nil {
		return false, err
	}
	bc, err := parseAndEvaluate(b)
	if err != nil {
		return false, err
	}
	return ac.Dim == bc.Dim, nil
}

// UnitMultiply returns the canonical description of the product of two
// unit expressions (e.g. multiplying "kg" by "m/s2" describes "N").
// Neither operand may be a special (non-linear) unit: special units have
// no linear factor to combine algebraically.
func UnitMultiply(a, b string) (Analysis, error) {
	ac, bc, err := evaluateLinearPair(a, b, "multiply")
	if err != nil {
		return Analysis{}, err
	}
	factor := ac.Factor * bc.Factor
	d := ac.Dim.Add(bc.Dim)
	return Analysis{
		Expression:      a + "." + b,
		Factor:          factor,
		Dimension:       d,
		IsDimensionless: d.IsZero(),
	}, nil
}

// UnitDivide returns the canonical description of the quotient of two unit
// expressions (e.g. dividing "kg.m" by "s2" describes "N").
func UnitDivide(a, b string) (Analysis, error) {
	ac, bc, err := evaluateLinearPair(a, b, "divide")
	if err != nil {
		return Analysis{}, err
	}
	factor := ac.Factor / bc.Factor
	d := ac.Dim.Sub(bc.Dim)
	return Analysis{
		Expression:      a + "/" + b,
		Factor:          factor,
		Dimension:       d,
		IsDimensionless: d.IsZero(),
	}, nil
}

func evaluateLinearPair(a, b, op string) (Canonical, Canonical, error) {
	ac, err := parseAndEvaluate(a)
	if err != nil {
		return Canonical{}, Canonical{}, err
	}
	bc, err := parseAndEvaluate(b)
	if err != nil {
		return Canonical{}, Canonical{}, err
	}
	if ac.Special != SpecialNone || bc.Special != SpecialNone {
		return Canonical{}, Canonical{}, newConversionError(a, b, "cannot "+op+" a special (non-linear) unit")
	}
	if ac.Offset != 0 || bc.Offset != 0 {
		return Canonical{}, Canonical{}, newConversionError(a, b, "cannot "+op+" a unit with an offset")
	}
	return ac, bc, nil
}

// GetCanonicalUnits returns the canonical dimension and factor/offset pair
// an expression reduces to, independent of any quantity value.
func GetCanonicalUnits(expr string) (CanonicalUnit, error) {
	c, err := parseAndEvaluate(expr)
	if err != nil {
		return CanonicalUnit{}, err
	}
	factor := c.Factor
	offset := c.Offset
	if c.Special != SpecialNone {
		factor = c.Unit.Factor
		offset = c.Unit.Offset
	}
	return CanonicalUnit{Dimension: c.Dim, Factor: factor, Offset: offset}, nil
}
