package densityfunction

import (
	"math"

	"github.com/bits0rcerer/valence-worldgen/pkg/blockpos"
)

// transformer applies a pure, order-preserving-or-reversing scalar
// transform to a single child's output. Bounds are derived once at
// construction by applying the transform to the child's own min and max
// and re-sorting. When the child's range straddles zero, the lower bound
// is also widened to transform(0), which covers abs and square, the two
// registered transforms that are not monotonic (both turn at zero).
type transformer struct {
	baseFill
	child     DensityFunction
	transform func(float64) float64
	min, max  float64
}

func newTransformer(child DensityFunction, transform func(float64) float64) *transformer {
	min, max := sortMinMax(transform(child.Min()), transform(child.Max()))
	if child.Min() < 0 && child.Max() > 0 {
		min = math.Min(min, transform(0))
	}
	return &transformer{child: child, transform: transform, min: min, max: max}
}

func (t *transformer) Compute(pos blockpos.Pos) float64 {
	return t.transform(t.child.Compute(pos))
}

func (t *transformer) Fill(slice []float64, ctx ContextProvider) {
	t.child.Fill(slice, ctx)
	for i := range slice {
		slice[i] = t.transform(slice[i])
	}
}

func (t *transformer) Min() float64 { return t.min }
func (t *transformer) Max() float64 { return t.max }

// Abs wraps f so it evaluates to the absolute value of f's output.
func Abs(f DensityFunction) DensityFunction {
	return newTransformer(f, math.Abs)
}

// Square wraps f so it evaluates to f's output squared.
func Square(f DensityFunction) DensityFunction {
	return newTransformer(f, func(x float64) float64 { return x * x })
}

// Cube wraps f so it evaluates to f's output cubed.
func Cube(f DensityFunction) DensityFunction {
	return newTransformer(f, func(x float64) float64 { return x * x * x })
}

// HalfNegative wraps f so it evaluates to -0.5 * f's output.
func HalfNegative(f DensityFunction) DensityFunction {
	return newTransformer(f, func(x float64) float64 { return 0.5 * (-x) })
}

// QuarterNegative wraps f so it evaluates to -0.25 * f's output.
func QuarterNegative(f DensityFunction) DensityFunction {
	return newTransformer(f, func(x float64) float64 { return 0.25 * (-x) })
}

// Squeeze wraps f, compressing its output into roughly [-0.5, 0.5] with a
// cubic falloff past the clamped range.
func Squeeze(f DensityFunction) DensityFunction {
	return newTransformer(f, func(x float64) float64 {
		clamped := math.Min(1.0, math.Max(-1.0, x))
		return (clamped / 2.0) - (clamped*clamped*clamped)/24.0
	})
}
