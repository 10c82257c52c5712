package densityfunction

import (
	"github.com/bits0rcerer/valence-worldgen/pkg/blockpos"
	"github.com/bits0rcerer/valence-worldgen/pkg/spline"
)

// SplineFunction wraps a compiled spline.Spline as a DensityFunction. Any
// DensityFunction already satisfies spline.Coordinate, which is how the
// channel a spline is driven by (e.g. continentalness) gets threaded in
// during Compile without this package importing anything spline-specific
// beyond the Spline type itself.
type SplineFunction struct {
	baseFill
	spline   spline.Spline
	min, max float64
}

// NewSplineFunction wraps s as a DensityFunction.
func NewSplineFunction(s spline.Spline) *SplineFunction {
	return &SplineFunction{spline: s, min: float64(s.Min()), max: float64(s.Max())}
}

func (s *SplineFunction) Compute(pos blockpos.Pos) float64 {
	return float64(s.spline.Compute(pos))
}

func (s *SplineFunction) Fill(slice []float64, ctx ContextProvider) {
	s.baseFill.fill(s, slice, ctx)
}

func (s *SplineFunction) Min() float64 { return s.min }
func (s *SplineFunction) Max() float64 { return s.max }
