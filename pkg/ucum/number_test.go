package ucum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberArithmetic(t *testing.T) {
	a := NumberFromFloat(2.5)
	b := NumberFromFloat(1.5)

	assert.InDelta(t, 4.0, a.Add(b).Float64(), 1e-9)
	assert.InDelta(t, 1.0, a.Sub(b).Float64(), 1e-9)
	assert.InDelta(t, 3.75, a.Mul(b).Float64(), 1e-9)
	assert.InDelta(t, 2.5/1.5, a.Div(b).Float64(), 1e-9)
}

func TestNumberPow(t *testing.T) {
	n := NumberFromFloat(2)
	assert.InDelta(t, 8.0, n.Pow(3).Float64(), 1e-9)
	assert.InDelta(t, 1.0, n.Pow(0).Float64(), 1e-9)
	assert.InDelta(t, 0.125, n.Pow(-3).Float64(), 1e-9)
}

func TestNumberAbsAndSign(t *testing.T) {
	n := NumberFromFloat(-4)
	assert.InDelta(t, 4.0, n.Abs().Float64(), 1e-9)
	assert.Equal(t, -1, n.Sign())
	assert.Equal(t, 0, NumberZero.Sign())
}

func TestNumberIsZero(t *testing.T) {
	assert.True(t, NumberZero.IsZero())
	assert.False(t, NumberOne.IsZero())
}
