package ucum

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertMassPrefix(t *testing.T) {
	v, err := Convert(1, "kg", "g")
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, v, 1e-9)
}

func TestConvertTemperature(t *testing.T) {
	v, err := Convert(0, "Cel", "[degF]")
	require.NoError(t, err)
	assert.InDelta(t, 32.0, v, 1e-9)

	v, err = Convert(100, "Cel", "[degF]")
	require.NoError(t, err)
	assert.InDelta(t, 212.0, v, 1e-9)
}

func TestConvertPressure(t *testing.T) {
	v, err := Convert(1, "mm[Hg]", "Pa")
	require.NoError(t, err)
	assert.InDelta(t, 133.322387415, v, 1e-6)
}

func TestConvertConcentration(t *testing.T) {
	v, err := Convert(100, "mg/dL", "g/L")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, 1e-9)
}

func TestConvertMolar(t *testing.T) {
	v, err := Convert(1000, "umol/L", "mmol/L")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, 1e-9)
}

func TestConvertIncompatibleDimensions(t *testing.T) {
	_, err := Convert(1, "kg", "m")
	require.Error(t, err)
	var ucumErr *Error
	require.ErrorAs(t, err, &ucumErr)
	assert.Equal(t, ErrIncompatibleDimensions, ucumErr.Kind)
}

func TestConvertLogarithmicRoundTrip(t *testing.T) {
	v, err := Convert(42, "dB[SPL]", "B[SPL]")
	require.NoError(t, err)
	back, err := Convert(v, "B[SPL]", "dB[SPL]")
	require.NoError(t, err)
	assert.InDelta(t, 42.0, back, 1e-6)
}

func TestConvertThreeDecibelIsSqrt2(t *testing.T) {
	v, err := Convert(3, "dB[SPL]", "Pa")
	require.NoError(t, err)
	assert.InDelta(t, 2e-5*math.Sqrt2, v, 1e-12)
	back, err := Convert(v, "Pa", "dB[SPL]")
	require.NoError(t, err)
	assert.InDelta(t, 3.0, back, 1e-6)
}

func TestConvertNeperRoundTrip(t *testing.T) {
	v, err := Convert(2.5, "Np", "Np")
	require.NoError(t, err)
	assert.InDelta(t, 2.5, v, 1e-9)
}

func TestConvertPrismDiopterZero(t *testing.T) {
	v, err := Convert(0, "[p'diop]", "[p'diop]")
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestConvertArbitraryUnitComparable(t *testing.T) {
	comparable, err := IsComparable("[IU]/mL", "[IU]/L")
	require.NoError(t, err)
	assert.True(t, comparable)
}

func TestIsComparableFalseAcrossDimensions(t *testing.T) {
	comparable, err := IsComparable("kg", "m")
	require.NoError(t, err)
	assert.False(t, comparable)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("kg.m/s2"))
	assert.Error(t, Validate("kg//m"))
	assert.Error(t, Validate("not_a_unit"))
}

func TestAnalyse(t *testing.T) {
	a, err := Analyse("Cel")
	require.NoError(t, err)
	assert.True(t, a.HasOffset)
	assert.False(t, a.IsDimensionless)

	a, err = Analyse("rad")
	require.NoError(t, err)
	assert.True(t, a.IsDimensionless)
}

func TestAnalyseLoneSpecialProductLiterals(t *testing.T) {
	a, err := Analyse("20.dB")
	require.NoError(t, err)
	assert.InDelta(t, 100.0, a.Factor, 1e-9)

	a, err = Analyse("1.Np")
	require.NoError(t, err)
	assert.InDelta(t, math.E, a.Factor, 1e-9)

	a, err = Analyse("100.[p'diop]")
	require.NoError(t, err)
	assert.InDelta(t, math.Tan(1), a.Factor, 1e-9)
}

func TestAnalyseBareSpecialUnitReportsRegistryFactor(t *testing.T) {
	a, err := Analyse("B[SPL]")
	require.NoError(t, err)
	assert.InDelta(t, 0.02, a.Factor, 1e-12)
}

func TestConvertWrapsLookupErrorWithPath(t *testing.T) {
	_, err := Convert(1, "bogus_unit", "m")
	require.Error(t, err)
	var ucumErr *Error
	require.ErrorAs(t, err, &ucumErr)
	assert.Equal(t, ErrConversionFailed, ucumErr.Kind)
	assert.Contains(t, ucumErr.Error(), "bogus_unit -> m")

	var inner *Error
	require.ErrorAs(t, errors.Unwrap(ucumErr), &inner)
	assert.Equal(t, ErrUnitNotFound, inner.Kind)
}

func TestUnitMultiply(t *testing.T) {
	a, err := UnitMultiply("kg", "m")
	require.NoError(t, err)
	assert.Equal(t, dim(1, 1, 0, 0, 0, 0, 0), a.Dimension)
}

func TestUnitDivide(t *testing.T) {
	a, err := UnitDivide("kg.m", "s2")
	require.NoError(t, err)
	assert.Equal(t, dim(1, 1, -2, 0, 0, 0, 0), a.Dimension)
}

func TestUnitMultiplyRejectsSpecialUnit(t *testing.T) {
	_, err := UnitMultiply("Cel", "m")
	require.Error(t, err)
}

func TestGetCanonicalUnits(t *testing.T) {
	cu, err := GetCanonicalUnits("kPa")
	require.NoError(t, err)
	assert.Equal(t, dim(1, -1, -2, 0, 0, 0, 0), cu.Dimension)
	assert.InDelta(t, 1_000_000.0, cu.Factor, 1e-6)
}
