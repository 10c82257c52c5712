package densityfunction

import (
	"fmt"
	"math"

	"github.com/bits0rcerer/valence-worldgen/pkg/blockpos"
)

// YClampedGradient linearly ramps between FromValue (at FromY) and ToValue
// (at ToY), clamped to that range outside [FromY,ToY]. FromY must be
// strictly less than ToY.
type YClampedGradient struct {
	baseFill
	fromY, toY         int32
	fromValue, toValue float64
}

// NewYClampedGradient builds a YClampedGradient node.
func NewYClampedGradient(fromY, toY int32, fromValue, toValue float64) (*YClampedGradient, error) {
	if fromY >= toY {
		return nil, fmt.Errorf("densityfunction: y_clamped_gradient requires from_y < to_y, got %d >= %d", fromY, toY)
	}
	return &YClampedGradient{fromY: fromY, toY: toY, fromValue: fromValue, toValue: toValue}, nil
}

func (g *YClampedGradient) Compute(pos blockpos.Pos) float64 {
	t := float64(pos.Y-g.fromY) / float64(g.toY-g.fromY)
	t = math.Min(1, math.Max(0, t))
	return g.fromValue + t*(g.toValue-g.fromValue)
}

func (g *YClampedGradient) Fill(slice []float64, ctx ContextProvider) {
	g.baseFill.fill(g, slice, ctx)
}

func (g *YClampedGradient) Min() float64 {
	return math.Min(g.fromValue, g.toValue)
}

func (g *YClampedGradient) Max() float64 {
	return math.Max(g.fromValue, g.toValue)
}
