// Package ucumfhir adapts pkg/ucum to the FHIR Quantity data type, letting
// callers parse a Quantity's `value`/`unit`/`system`/`code` fields out of
// raw JSON and convert or compare it against another Quantity through
// UCUM's canonical dimension/factor model.
package ucumfhir

import (
	"errors"
	"fmt"

	"github.com/buger/jsonparser"

	"github.com/ucum-go/ucum/pkg/common"
	"github.com/ucum-go/ucum/pkg/ucum"
)

// System is the coding system URI FHIR uses for UCUM-coded quantities.
const System = "http://unitsofmeasure.org"

// ErrMissingCode is returned when a Quantity has no `code` field to
// resolve against the UCUM registry.
var ErrMissingCode = errors.New("ucumfhir: quantity has no code")

// ErrNotUCUM is returned when a Quantity's `system` is not the UCUM
// coding system, so its `code` cannot be interpreted as a UCUM expression.
var ErrNotUCUM = errors.New("ucumfhir: quantity system is not " + System)

// Quantity is a FHIR Quantity data type, restricted to the fields this
// adapter needs: http://hl7.org/fhir/datatypes.html#Quantity.
type Quantity struct {
	Value      float64
	Unit       string
	System     string
	Code       string
	Comparator string
}

// IsUCUM reports whether this quantity's system is the UCUM coding
// system, and so its Code can be parsed as a UCUM expression.
func (q Quantity) IsUCUM() bool {
	return q.System == System
}

// WithUCUMCode builds a Quantity carrying a UCUM code, setting system to
// the UCUM coding system and unit/code to the same expression.
func WithUCUMCode(value float64, code string) Quantity {
	return Quantity{Value: value, Unit: code, System: System, Code: code}
}

// ParseQuantity extracts a Quantity from the raw JSON body of a FHIR
// Quantity object. Fields absent in the JSON are left at their zero
// value; comparator, unit and system are optional in FHIR and are not
// required here.
func ParseQuantity(raw []byte) (Quantity, error) {
	var q Quantity

	if v, err := jsonparser.GetFloat(raw, "value"); err == nil {
		q.Value = v
	} else if !errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return Quantity{}, fmt.Errorf("%w: value: %v", common.ErrInvalidJSON, err)
	}

	for _, field := range []struct {
		key string
		dst *string
	}{
		{"unit", &q.Unit},
		{"system", &q.System},
		{"code", &q.Code},
		{"comparator", &q.Comparator},
	} {
		v, err := jsonparser.GetString(raw, field.key)
		switch {
		case err == nil:
			*field.dst = v
		case errors.Is(err, jsonparser.KeyPathNotFoundError):
			// optional field, left zero
		default:
			return Quantity{}, fmt.Errorf("%w: %s: %v", common.ErrInvalidJSON, field.key, err)
		}
	}

	return q, nil
}

// ConvertQuantity converts q into the target UCUM unit, returning a new
// Quantity with the converted value and the target unit as both its unit
// and code. It fails if q and targetUnit are not dimensionally
// comparable.
func ConvertQuantity(q Quantity, targetUnit string) (Quantity, error) {
	if !q.IsUCUM() {
		return Quantity{}, fmt.Errorf("%w: %q", ErrNotUCUM, q.System)
	}
	if q.Code == "" {
		return Quantity{}, ErrMissingCode
	}
	result, err := ucum.Convert(q.Value, q.Code, targetUnit)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{
		Value:      result,
		Unit:       targetUnit,
		System:     System,
		Code:       targetUnit,
		Comparator: q.Comparator,
	}, nil
}

// AreEquivalent reports whether a and b describe the same measured
// quantity once converted to a common unit, within a relative tolerance
// of 1e-6. It returns an error if either quantity is not UCUM-coded or
// if their units are not dimensionally comparable.
func AreEquivalent(a, b Quantity) (bool, error) {
	const epsilon = 1e-6

	if !a.IsUCUM() {
		return false, fmt.Errorf("%w: %q", ErrNotUCUM, a.System)
	}
	if !b.IsUCUM() {
		return false, fmt.Errorf("%w: %q", ErrNotUCUM, b.System)
	}

	bInA, err := ucum.Convert(b.Value, b.Code, a.Code)
	if err != nil {
		return false, err
	}

	diff := abs(a.Value - bInA)
	max := maxAbs(a.Value, bInA)
	if max < epsilon {
		return diff < epsilon, nil
	}
	return diff/max < epsilon, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func maxAbs(a, b float64) float64 {
	aa, ab := abs(a), abs(b)
	if aa > ab {
		return aa
	}
	return ab
}
