package ucum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearOffsetRoundTrip(t *testing.T) {
	cel, _ := FindUnit("Cel")
	canon, err := toCanonicalSpecial(cel, specialArg{value: 37, prefix: 1})
	require.NoError(t, err)
	assert.InDelta(t, 310.15, canon, 1e-9)

	back, err := fromCanonicalSpecial(cel, canon)
	require.NoError(t, err)
	assert.InDelta(t, 37.0, back, 1e-9)
}

func TestLogarithmicThreeDecibelConvention(t *testing.T) {
	rec, _ := FindUnit("B[SPL]")
	canon, err := toCanonicalSpecial(rec, specialArg{value: 0.3, prefix: 1})
	require.NoError(t, err)
	assert.InDelta(t, rec.Factor*math.Sqrt2, canon, 1e-12)
}

func TestLogarithmicNonConventionValue(t *testing.T) {
	rec, _ := FindUnit("B[SPL]")
	canon, err := toCanonicalSpecial(rec, specialArg{value: 1, prefix: 1})
	require.NoError(t, err)
	assert.InDelta(t, rec.Factor*10, canon, 1e-9)
}

func TestPHSignConvention(t *testing.T) {
	rec, _ := FindUnit("pH")
	canonHigh, err := toCanonicalSpecial(rec, specialArg{value: 7, prefix: 1})
	require.NoError(t, err)
	canonLow, err := toCanonicalSpecial(rec, specialArg{value: 3, prefix: 1})
	require.NoError(t, err)
	// A higher pH is a lower canonical concentration.
	assert.Less(t, canonHigh, canonLow)
}

func TestNeperZeroSpecialCase(t *testing.T) {
	rec, _ := FindUnit("Np")
	canon, err := toCanonicalSpecial(rec, specialArg{value: 0, prefix: 1})
	require.NoError(t, err)
	assert.Equal(t, rec.Factor, canon)
}

func TestPrismDiopterZeroSpecialCase(t *testing.T) {
	rec, _ := FindUnit("[p'diop]")
	canon, err := toCanonicalSpecial(rec, specialArg{value: 0, prefix: 1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, canon)
}

func TestArbitraryUnitScalesLinearly(t *testing.T) {
	rec, _ := FindUnit("[IU]")
	canon, err := toCanonicalSpecial(rec, specialArg{value: 5, prefix: 2})
	require.NoError(t, err)
	assert.Equal(t, 10.0, canon)
}
