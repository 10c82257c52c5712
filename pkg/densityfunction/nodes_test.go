package densityfunction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bits0rcerer/valence-worldgen/pkg/blockpos"
)

func TestConstant(t *testing.T) {
	c := NewConstant(1.5)
	pos := blockpos.New(1, 2, 3)
	assert.Equal(t, 1.5, c.Compute(pos))
	assert.Equal(t, 1.5, c.Min())
	assert.Equal(t, 1.5, c.Max())

	slice := make([]float64, 4)
	c.Fill(slice, NewSliceContext(func(int) blockpos.Pos { return pos }))
	for _, v := range slice {
		assert.Equal(t, 1.5, v)
	}
}

func TestTransformers(t *testing.T) {
	pos := blockpos.New(0, 0, 0)

	tests := []struct {
		name string
		f    DensityFunction
		want float64
	}{
		{"abs_negative", Abs(NewConstant(-2)), 2},
		{"square", Square(NewConstant(-3)), 9},
		{"cube", Cube(NewConstant(-2)), -8},
		{"half_negative", HalfNegative(NewConstant(4)), -2},
		{"quarter_negative", QuarterNegative(NewConstant(4)), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.f.Compute(pos))
		})
	}
}

func TestSqueeze_ClampsBeforeFalloff(t *testing.T) {
	pos := blockpos.New(0, 0, 0)
	f := Squeeze(NewConstant(5)) // clamps to 1 before the cubic term
	assert.InDelta(t, 1.0/2.0-1.0/24.0, f.Compute(pos), 1e-12)
}

func TestClamp(t *testing.T) {
	c := NewClamp(NewConstant(10), -1, 1)
	pos := blockpos.New(0, 0, 0)
	assert.Equal(t, 1.0, c.Compute(pos))
	assert.Equal(t, -1.0, c.Min())
	assert.Equal(t, 1.0, c.Max())
}

func TestRangeChoice(t *testing.T) {
	input := NewConstant(5)
	inRange := NewConstant(1)
	outOfRange := NewConstant(-1)
	r := NewRangeChoice(input, 0, 10, inRange, outOfRange)

	pos := blockpos.New(0, 0, 0)
	assert.Equal(t, 1.0, r.Compute(pos))

	r2 := NewRangeChoice(NewConstant(20), 0, 10, inRange, outOfRange)
	assert.Equal(t, -1.0, r2.Compute(pos))
}

func TestYClampedGradient(t *testing.T) {
	g, err := NewYClampedGradient(0, 10, 0, 1)
	require.NoError(t, err)

	assert.Equal(t, 0.0, g.Compute(blockpos.New(0, -5, 0)))
	assert.Equal(t, 1.0, g.Compute(blockpos.New(0, 50, 0)))
	assert.Equal(t, 0.5, g.Compute(blockpos.New(0, 5, 0)))

	_, err = NewYClampedGradient(10, 10, 0, 1)
	assert.Error(t, err)
}

func TestFlatCache_ZeroesY(t *testing.T) {
	inner := &yRecordingFunction{}
	c := NewFlatCache(inner)
	c.Compute(blockpos.New(1, 99, 1))
	require.Len(t, inner.seen, 1)
	assert.Equal(t, int32(0), inner.seen[0].Y)
}

// yRecordingFunction records the positions it's asked to Compute, to
// assert FlatCache actually zeroes Y before delegating.
type yRecordingFunction struct {
	seen []blockpos.Pos
}

func (f *yRecordingFunction) Compute(pos blockpos.Pos) float64 {
	f.seen = append(f.seen, pos)
	return 0
}
func (f *yRecordingFunction) Fill(slice []float64, _ ContextProvider) {}
func (f *yRecordingFunction) Min() float64                            { return 0 }
func (f *yRecordingFunction) Max() float64                            { return 0 }
