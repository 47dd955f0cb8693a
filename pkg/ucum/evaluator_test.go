package ucum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEvaluate(t *testing.T, expr string) Canonical {
	t.Helper()
	c, err := parseAndEvaluate(expr)
	require.NoError(t, err)
	return c
}

func TestEvaluateBaseUnit(t *testing.T) {
	c := mustEvaluate(t, "m")
	assert.Equal(t, dim(0, 1, 0, 0, 0, 0, 0), c.Dim)
	assert.Equal(t, 1.0, c.Factor)
}

func TestEvaluatePrefixedUnit(t *testing.T) {
	c := mustEvaluate(t, "kg")
	assert.Equal(t, dim(1, 0, 0, 0, 0, 0, 0), c.Dim)
	assert.InDelta(t, 1000.0, c.Factor, 1e-9)
}

func TestEvaluateDerivedProduct(t *testing.T) {
	c := mustEvaluate(t, "kg.m")
	assert.Equal(t, dim(1, 1, 0, 0, 0, 0, 0), c.Dim)
}

func TestEvaluateDerivedQuotient(t *testing.T) {
	c := mustEvaluate(t, "kg.m/s2")
	assert.Equal(t, dim(1, 1, -2, 0, 0, 0, 0), c.Dim)
	assert.Equal(t, c.Dim, mustEvaluate(t, "N").Dim)
}

func TestEvaluateUnknownUnit(t *testing.T) {
	_, err := parseAndEvaluate("bogus_unit")
	require.Error(t, err)
	var ucumErr *Error
	require.ErrorAs(t, err, &ucumErr)
	assert.Equal(t, ErrUnitNotFound, ucumErr.Kind)
}

func TestEvaluateTemperatureOffset(t *testing.T) {
	c := mustEvaluate(t, "Cel")
	canon, err := c.ToCanonical(0)
	require.NoError(t, err)
	assert.InDelta(t, 273.15, canon, 1e-9)
}

func TestEvaluateArbitraryQuotientDimension(t *testing.T) {
	c := mustEvaluate(t, "[IU]/mL")
	assert.Equal(t, mustEvaluate(t, "mL").Dim.Negate(), c.Dim)
}

func TestEvaluateUnregisteredBracketUnitIsLenientDimensionless(t *testing.T) {
	c := mustEvaluate(t, "[BAU]")
	assert.Equal(t, Dimension{}, c.Dim)
	assert.Equal(t, SpecialNone, c.Special)
	assert.Equal(t, 1.0, c.Factor)

	comparable, err := IsComparable("[BAU]/mL", "[BAU]/L")
	require.NoError(t, err)
	assert.True(t, comparable)
}

func TestEvaluateLoneSpecialProductResolvesFactor(t *testing.T) {
	c := mustEvaluate(t, "20.dB")
	assert.Equal(t, SpecialNone, c.Special)
	assert.InDelta(t, 100.0, c.Factor, 1e-9)

	c = mustEvaluate(t, "1.Np")
	assert.Equal(t, SpecialNone, c.Special)
	assert.InDelta(t, math.E, c.Factor, 1e-9)

	c = mustEvaluate(t, "100.[p'diop]")
	assert.Equal(t, SpecialNone, c.Special)
	assert.InDelta(t, math.Tan(1), c.Factor, 1e-9)
}
