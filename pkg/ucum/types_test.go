package ucum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDimensionArithmetic(t *testing.T) {
	a := dim(1, 2, -1, 0, 0, 0, 0)
	b := dim(0, 1, 1, 0, 0, 0, 0)

	assert.Equal(t, dim(1, 3, 0, 0, 0, 0, 0), a.Add(b))
	assert.Equal(t, dim(1, 1, -2, 0, 0, 0, 0), a.Sub(b))
	assert.Equal(t, dim(-1, -2, 1, 0, 0, 0, 0), a.Negate())
	assert.Equal(t, dim(2, 4, -2, 0, 0, 0, 0), a.Scale(2))
}

func TestDimensionIsZero(t *testing.T) {
	assert.True(t, Dimension{}.IsZero())
	assert.False(t, dim(1, 0, 0, 0, 0, 0, 0).IsZero())
}

func TestDimensionString(t *testing.T) {
	assert.Equal(t, "1", Dimension{}.String())
	assert.Equal(t, "M.L2.T-1", dim(1, 2, -1, 0, 0, 0, 0).String())
}

func TestDimensionSaturatingAdd(t *testing.T) {
	a := Dimension{127, 0, 0, 0, 0, 0, 0}
	b := Dimension{1, 0, 0, 0, 0, 0, 0}
	assert.Equal(t, int8(127), a.Add(b)[0])
}

func TestSpecialKindString(t *testing.T) {
	assert.Equal(t, "log10", SpecialLog10.String())
	assert.Equal(t, "arbitrary", SpecialArbitrary.String())
}
