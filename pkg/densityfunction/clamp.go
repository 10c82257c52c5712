package densityfunction

import (
	"math"

	"github.com/bits0rcerer/valence-worldgen/pkg/blockpos"
)

// Clamp restricts a child's output to [min,max]. Unlike most nodes, its
// own Min()/Max() ARE min/max -- the clamp range is definitionally the
// node's bounds, regardless of what the child can produce.
type Clamp struct {
	child    DensityFunction
	min, max float64
}

// NewClamp builds a Clamp node.
func NewClamp(child DensityFunction, min, max float64) *Clamp {
	return &Clamp{child: child, min: min, max: max}
}

func (c *Clamp) Compute(pos blockpos.Pos) float64 {
	return math.Min(c.max, math.Max(c.min, c.child.Compute(pos)))
}

func (c *Clamp) Fill(slice []float64, ctx ContextProvider) {
	c.child.Fill(slice, ctx)
	for i, v := range slice {
		slice[i] = math.Min(c.max, math.Max(c.min, v))
	}
}

func (c *Clamp) Min() float64 { return c.min }
func (c *Clamp) Max() float64 { return c.max }
