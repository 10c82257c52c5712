package densityfunction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bits0rcerer/valence-worldgen/pkg/blockpos"
)

// boundsStub is a DensityFunction with fixed, independently settable
// bounds and a constant compute value, used to exercise interval
// arithmetic without needing a full compiled tree.
type boundsStub struct {
	value, min, max float64
}

func (s boundsStub) Compute(blockpos.Pos) float64          { return s.value }
func (s boundsStub) Fill(slice []float64, _ ContextProvider) {
	for i := range slice {
		slice[i] = s.value
	}
}
func (s boundsStub) Min() float64 { return s.min }
func (s boundsStub) Max() float64 { return s.max }

func TestCommutative_Bounds(t *testing.T) {
	a := boundsStub{min: -2, max: 3}
	b := boundsStub{min: -1, max: 4}

	tests := []struct {
		name     string
		f        DensityFunction
		wantMin  float64
		wantMax  float64
	}{
		{"add", Add(a, b), -3, 7},
		{"multiply", Mul(a, b), -8, 12},
		{"min", Min(a, b), -2, 3},
		{"max", Max(a, b), -1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMin, tt.f.Min())
			assert.Equal(t, tt.wantMax, tt.f.Max())
		})
	}
}

func TestCommutative_MultiplyBothPositive(t *testing.T) {
	a := boundsStub{min: 1, max: 3}
	b := boundsStub{min: 2, max: 5}
	f := Mul(a, b)
	assert.Equal(t, 2.0, f.Min())
	assert.Equal(t, 15.0, f.Max())
}

func TestCommutative_MultiplyBothNegative(t *testing.T) {
	a := boundsStub{min: -5, max: -2}
	b := boundsStub{min: -4, max: -1}
	f := Mul(a, b)
	assert.Equal(t, 2.0, f.Min())
	assert.Equal(t, 20.0, f.Max())
}

func TestCommutative_ComputeAppliesOp(t *testing.T) {
	a := boundsStub{value: 3, min: 0, max: 10}
	b := boundsStub{value: 4, min: 0, max: 10}
	pos := blockpos.New(0, 0, 0)

	require.Equal(t, 7.0, Add(a, b).Compute(pos))
	require.Equal(t, 12.0, Mul(a, b).Compute(pos))
	require.Equal(t, 3.0, Min(a, b).Compute(pos))
	require.Equal(t, 4.0, Max(a, b).Compute(pos))
}
