package ucumgen

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ucum-go/ucum/pkg/ucum"
)

// Resolved is a unit or prefix as computed by the fixed-point pass, in the
// exact shape pkg/ucum.UnitRecord/Prefix expect.
type Resolved struct {
	Units    []ucum.UnitRecord
	Prefixes []ucum.Prefix
}

// dimIndex maps a UCUM essence base-unit dim letter to this module's
// Dimension slot.
var dimIndex = map[string]int{
	"M": ucum.DimMass,
	"L": ucum.DimLength,
	"T": ucum.DimTime,
	"I": ucum.DimCurrent,
	"H": ucum.DimTemperature,
	"N": ucum.DimAmount,
	"J": ucum.DimLuminous,
}

var specialKindByName = map[string]ucum.SpecialKind{
	"":              ucum.SpecialNone,
	"linear-offset": ucum.SpecialLinearOffset,
	"log10":         ucum.SpecialLog10,
	"ln":            ucum.SpecialLn,
	"tan-times-100": ucum.SpecialTanTimes100,
	"arbitrary":     ucum.SpecialArbitrary,
}

// Resolve runs the fixed-point factor-graph resolution: base units seed the
// table with factor 1 and their declared dimension; every other unit is
// defined relative to an expression of already-resolved codes, so passes
// repeat until every unit resolves or no progress is made in a full pass
// (bounded at 10 passes, matching the original crate's own bound for this
// kind of definitional graph, which in practice never needs more than two
// or three passes since the essence file lists units in roughly
// dependency order already).
func Resolve(spec *Spec) (*Resolved, error) {
	prefixFactors := map[string]float64{}
	for _, p := range spec.Prefixes {
		f, err := strconv.ParseFloat(p.Value.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("prefix %s: invalid value %q: %w", p.Code, p.Value.Value, err)
		}
		prefixFactors[p.Code] = f
	}

	resolved := map[string]ucum.UnitRecord{}

	for _, b := range spec.BaseUnits {
		var d ucum.Dimension
		if b.Dim != "" {
			idx, ok := dimIndex[b.Dim]
			if !ok {
				return nil, fmt.Errorf("base-unit %s: unknown dim %q", b.Code, b.Dim)
			}
			d[idx] = 1
		}
		resolved[b.Code] = ucum.UnitRecord{Code: b.Code, Name: b.Name, Dim: d, Factor: 1, Metric: true}
	}

	pending := append([]UnitXML{}, spec.Units...)
	for pass := 0; pass < 10 && len(pending) > 0; pass++ {
		var stillPending []UnitXML
		progressed := false
		for _, u := range pending {
			rec, ok, err := tryResolveUnit(u, resolved, prefixFactors)
			if err != nil {
				return nil, err
			}
			if !ok {
				stillPending = append(stillPending, u)
				continue
			}
			resolved[u.Code] = rec
			progressed = true
		}
		pending = stillPending
		if !progressed {
			break
		}
	}

	for _, u := range pending {
		slog.Warn("ucumgen: could not resolve unit against known codes, skipping", "code", u.Code, "formula", u.Value.Unit)
	}

	r := &Resolved{}
	for _, rec := range resolved {
		r.Units = append(r.Units, rec)
	}
	for _, p := range spec.Prefixes {
		factor, err := strconv.ParseFloat(p.Value.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("prefix %s: invalid value %q: %w", p.Code, p.Value.Value, err)
		}
		r.Prefixes = append(r.Prefixes, ucum.Prefix{Symbol: p.Code, Name: p.Name, Factor: factor, Exponent: exponentOf(factor)})
	}
	return r, nil
}

func exponentOf(factor float64) int {
	e := 0
	f := factor
	if f >= 1 {
		for f >= 10 {
			f /= 10
			e++
		}
		return e
	}
	for f < 1 {
		f *= 10
		e--
	}
	return e
}

// tryResolveUnit attempts to resolve one unit definition given the units
// resolved so far. It returns ok=false (not an error) when the definition
// references a code that has not been resolved yet, so the caller can
// retry it in a later pass.
func tryResolveUnit(u UnitXML, resolved map[string]ucum.UnitRecord, prefixFactors map[string]float64) (ucum.UnitRecord, bool, error) {
	special := specialKindByName[u.Special]
	metric := u.Metric == "yes"

	// Hard-coded overrides: physical-constant-derived factors the XML
	// expresses as a bare numeric multiplier of a reference unit rather
	// than as a pure product/quotient graph (mercury column density and
	// standard gravity for mm[Hg]; the exact Fahrenheit/Rankine scale
	// factor 5/9 rounded in the essence file). Value.Unit is resolved as a
	// single code, not as a formula; its factor is multiplied by the
	// declared value (hardCodedOverride substitutes the exact 5/9 for
	// [degF]/[degR]) and the offset comes from overrideOffset.
	if u.Value.Override == "true" {
		baseDim, baseFactor, ok := resolveCode(u.Value.Unit, resolved, prefixFactors)
		if !ok {
			return ucum.UnitRecord{}, false, nil
		}
		factor, err := strconv.ParseFloat(u.Value.Value, 64)
		if err != nil {
			return ucum.UnitRecord{}, false, fmt.Errorf("unit %s: invalid value %q: %w", u.Code, u.Value.Value, err)
		}
		offset := overrideOffset(u)
		return ucum.UnitRecord{
			Code: u.Code, Name: u.Name, Dim: baseDim, Factor: hardCodedOverride(u.Code, factor) * baseFactor,
			Offset: offset, Special: special, Metric: metric,
		}, true, nil
	}

	dim, factor, ok, err := evaluateFormula(u.Value.Unit, resolved, prefixFactors)
	if err != nil {
		return ucum.UnitRecord{}, false, err
	}
	if !ok {
		return ucum.UnitRecord{}, false, nil
	}

	mult, err := strconv.ParseFloat(u.Value.Value, 64)
	if err != nil {
		return ucum.UnitRecord{}, false, fmt.Errorf("unit %s: invalid value %q: %w", u.Code, u.Value.Value, err)
	}

	offset := 0.0
	if u.Value.Offset != "" {
		offset, err = strconv.ParseFloat(u.Value.Offset, 64)
		if err != nil {
			return ucum.UnitRecord{}, false, fmt.Errorf("unit %s: invalid offset %q: %w", u.Code, u.Value.Offset, err)
		}
	}

	total := factor * mult
	if u.Code == "[in_i]" {
		// Exact, instead of the float product 2.54 * 0.01.
		total = 0.0254
	}
	return ucum.UnitRecord{
		Code: u.Code, Name: u.Name, Dim: dim, Factor: total, Offset: offset,
		Special: special, Metric: metric,
	}, true, nil
}

// overrideOffset reads an explicit offset attribute for an override unit,
// defaulting to zero. [degF] gets the exact 459.67*5/9 instead of the
// essence file's rounded offset.
func overrideOffset(u UnitXML) float64 {
	if u.Code == "[degF]" {
		return 459.67 * 5.0 / 9.0
	}
	if u.Value.Offset == "" {
		return 0
	}
	v, err := strconv.ParseFloat(u.Value.Offset, 64)
	if err != nil {
		return 0
	}
	return v
}

// hardCodedOverride replaces an essence-file-declared factor with the
// exact constant this module's registry uses for the handful of units
// where the essence file's own decimal rounding (e.g. "0.5556" for the
// Fahrenheit/Rankine scale) would otherwise lose precision relative to
// the exact rational value.
func hardCodedOverride(code string, declared float64) float64 {
	switch code {
	case "[degF]", "[degR]":
		return 5.0 / 9.0
	default:
		return declared
	}
}

// evaluateFormula evaluates a small expression of already-resolved codes:
// a dot-product of factors, each an optional exponent suffix, divided by
// at most one more such product. "1" denotes the dimensionless reference
// unit (factor 1, zero dimension), used by percent, the arbitrary-unit
// family, and the logarithmic family's own reference definitions.
func evaluateFormula(expr string, resolved map[string]ucum.UnitRecord, prefixFactors map[string]float64) (ucum.Dimension, float64, bool, error) {
	if expr == "1" {
		return ucum.Dimension{}, 1, true, nil
	}
	num, den, found := cutTopLevelSlash(expr)
	if !found {
		return evaluateProductFormula(expr, resolved, prefixFactors)
	}
	nd, nf, ok, err := evaluateProductFormula(num, resolved, prefixFactors)
	if err != nil || !ok {
		return ucum.Dimension{}, 0, ok, err
	}
	dd, df, ok, err := evaluateProductFormula(den, resolved, prefixFactors)
	if err != nil || !ok {
		return ucum.Dimension{}, 0, ok, err
	}
	return nd.Sub(dd), nf / df, true, nil
}

func cutTopLevelSlash(s string) (left, right string, found bool) {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}

func evaluateProductFormula(expr string, resolved map[string]ucum.UnitRecord, prefixFactors map[string]float64) (ucum.Dimension, float64, bool, error) {
	var d ucum.Dimension
	factor := 1.0
	for _, term := range strings.Split(expr, ".") {
		code, exp, err := splitTrailingExponent(term)
		if err != nil {
			return ucum.Dimension{}, 0, false, err
		}
		termDim, termFactor, ok := resolveCode(code, resolved, prefixFactors)
		if !ok {
			return ucum.Dimension{}, 0, false, nil
		}
		d = d.Add(termDim.Scale(exp))
		factor *= pow(termFactor, exp)
	}
	return d, factor, true, nil
}

// resolveCode resolves a single formula term against the units resolved so
// far, the same way pkg/ucum's registry resolves a parsed symbol: try the
// bare code first, then strip a one-, two-, or three-character metric
// prefix and resolve the remainder, since a derived unit's formula may
// reference a prefixed code (newton's "kg") that is never itself a
// registered base or derived unit — only its prefix ("k") and bare unit
// ("g") are.
func resolveCode(code string, resolved map[string]ucum.UnitRecord, prefixFactors map[string]float64) (ucum.Dimension, float64, bool) {
	if rec, ok := resolved[code]; ok {
		return rec.Dim, rec.Factor, true
	}
	for plen := 1; plen <= 3 && plen < len(code); plen++ {
		pf, ok := prefixFactors[code[:plen]]
		if !ok {
			continue
		}
		rec, ok := resolved[code[plen:]]
		if !ok || !rec.Metric {
			continue
		}
		return rec.Dim, rec.Factor * pf, true
	}
	return ucum.Dimension{}, 0, false
}

func splitTrailingExponent(term string) (code string, exp int, err error) {
	i := len(term)
	for i > 0 && isDigitByte(term[i-1]) {
		i--
	}
	if i > 0 && i < len(term) && term[i-1] == '-' {
		i--
	}
	if i == len(term) {
		return term, 1, nil
	}
	if i == 0 {
		return "", 0, fmt.Errorf("malformed term %q", term)
	}
	exp, err = strconv.Atoi(term[i:])
	if err != nil {
		return "", 0, fmt.Errorf("malformed exponent in %q: %w", term, err)
	}
	return term[:i], exp, nil
}

func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }

func pow(base float64, exp int) float64 {
	result := 1.0
	neg := exp < 0
	if neg {
		exp = -exp
	}
	for i := 0; i < exp; i++ {
		result *= base
	}
	if neg {
		return 1 / result
	}
	return result
}
