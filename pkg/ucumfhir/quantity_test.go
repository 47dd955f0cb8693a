package ucumfhir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuantity(t *testing.T) {
	raw := []byte(`{
		"value": 10,
		"unit": "mg",
		"system": "http://unitsofmeasure.org",
		"code": "mg"
	}`)

	q, err := ParseQuantity(raw)
	require.NoError(t, err)
	assert.Equal(t, 10.0, q.Value)
	assert.Equal(t, "mg", q.Unit)
	assert.Equal(t, System, q.System)
	assert.Equal(t, "mg", q.Code)
	assert.Empty(t, q.Comparator)
}

func TestParseQuantityOptionalFields(t *testing.T) {
	raw := []byte(`{"value": 5}`)

	q, err := ParseQuantity(raw)
	require.NoError(t, err)
	assert.Equal(t, 5.0, q.Value)
	assert.Empty(t, q.Unit)
	assert.Empty(t, q.System)
	assert.Empty(t, q.Code)
}

func TestParseQuantityComparator(t *testing.T) {
	raw := []byte(`{"value": 3, "comparator": ">=", "code": "mg", "system": "http://unitsofmeasure.org"}`)

	q, err := ParseQuantity(raw)
	require.NoError(t, err)
	assert.Equal(t, ">=", q.Comparator)
}

func TestQuantityIsUCUM(t *testing.T) {
	q := WithUCUMCode(10, "mg")
	assert.True(t, q.IsUCUM())

	other := Quantity{Value: 10, System: "http://example.org", Code: "mg"}
	assert.False(t, other.IsUCUM())
}

func TestConvertQuantity(t *testing.T) {
	q := WithUCUMCode(1000, "mg")
	converted, err := ConvertQuantity(q, "g")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, converted.Value, 1e-10)
	assert.Equal(t, "g", converted.Code)
	assert.Equal(t, System, converted.System)
}

func TestConvertQuantityNotUCUM(t *testing.T) {
	q := Quantity{Value: 10, System: "http://example.org", Code: "mg"}
	_, err := ConvertQuantity(q, "g")
	assert.ErrorIs(t, err, ErrNotUCUM)
}

func TestConvertQuantityMissingCode(t *testing.T) {
	q := Quantity{Value: 10, System: System}
	_, err := ConvertQuantity(q, "g")
	assert.ErrorIs(t, err, ErrMissingCode)
}

func TestConvertQuantityIncompatibleDimensions(t *testing.T) {
	q := WithUCUMCode(10, "g")
	_, err := ConvertQuantity(q, "s")
	assert.Error(t, err)
}

func TestAreEquivalent(t *testing.T) {
	a := WithUCUMCode(1, "g")
	b := WithUCUMCode(1000, "mg")

	ok, err := AreEquivalent(a, b)
	require.NoError(t, err)
	assert.True(t, ok)

	c := WithUCUMCode(2, "g")
	ok, err = AreEquivalent(a, c)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAreEquivalentIncompatibleDimensions(t *testing.T) {
	a := WithUCUMCode(1, "g")
	b := WithUCUMCode(1, "s")

	_, err := AreEquivalent(a, b)
	assert.Error(t, err)
}

func TestAreEquivalentNotUCUM(t *testing.T) {
	a := WithUCUMCode(1, "g")
	b := Quantity{Value: 1, System: "http://example.org", Code: "g"}

	_, err := AreEquivalent(a, b)
	assert.ErrorIs(t, err, ErrNotUCUM)
}
