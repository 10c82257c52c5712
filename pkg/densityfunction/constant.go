package densityfunction

import "github.com/bits0rcerer/valence-worldgen/pkg/blockpos"

// Constant always evaluates to the same value, with Min()==Max()==that value.
type Constant struct {
	value float64
}

// NewConstant wraps a fixed value as a DensityFunction.
func NewConstant(value float64) *Constant {
	return &Constant{value: value}
}

func (c *Constant) Compute(blockpos.Pos) float64 { return c.value }

func (c *Constant) Fill(slice []float64, _ ContextProvider) {
	for i := range slice {
		slice[i] = c.value
	}
}

func (c *Constant) Min() float64 { return c.value }
func (c *Constant) Max() float64 { return c.value }
