package densityfunction

import (
	"math"

	"github.com/bits0rcerer/valence-worldgen/pkg/blockpos"
)

// RangeChoice picks between two children depending on whether Input falls
// in [MinInclusive, MaxExclusive).
type RangeChoice struct {
	input                          DensityFunction
	minInclusive, maxExclusive     float64
	whenInRange, whenOutOfRange    DensityFunction
}

func NewRangeChoice(input DensityFunction, minInclusive, maxExclusive float64, whenInRange, whenOutOfRange DensityFunction) *RangeChoice {
	return &RangeChoice{
		input:          input,
		minInclusive:   minInclusive,
		maxExclusive:   maxExclusive,
		whenInRange:    whenInRange,
		whenOutOfRange: whenOutOfRange,
	}
}

func (r *RangeChoice) Compute(pos blockpos.Pos) float64 {
	choice := r.input.Compute(pos)
	if choice >= r.minInclusive && choice < r.maxExclusive {
		return r.whenInRange.Compute(pos)
	}
	return r.whenOutOfRange.Compute(pos)
}

func (r *RangeChoice) Fill(slice []float64, ctx ContextProvider) {
	r.input.Fill(slice, ctx)
	for i, v := range slice {
		if v >= r.minInclusive && v < r.maxExclusive {
			slice[i] = r.whenInRange.Compute(ctx.PositionFor(i))
		} else {
			slice[i] = r.whenOutOfRange.Compute(ctx.PositionFor(i))
		}
	}
}

func (r *RangeChoice) Min() float64 {
	return math.Min(r.whenInRange.Min(), r.whenOutOfRange.Min())
}

func (r *RangeChoice) Max() float64 {
	return math.Max(r.whenInRange.Max(), r.whenOutOfRange.Max())
}
