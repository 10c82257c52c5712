// Package densityfunction implements the density-function DAG: a
// declarative tree of terrain-shaping nodes, deserialized from an
// untagged-union JSON form and compiled against a seeded random state
// into an evaluable, immutable graph safe for concurrent reads.
package densityfunction

import "github.com/bits0rcerer/valence-worldgen/pkg/blockpos"

// DensityFunction is a compiled node: a pure function of a block position
// with statically known bounds. Implementations hold no mutable state, so
// a compiled tree may be read concurrently from multiple goroutines.
type DensityFunction interface {
	Compute(pos blockpos.Pos) float64
	Fill(slice []float64, ctx ContextProvider)
	Min() float64
	Max() float64
}

// ContextProvider supplies positions for a bulk Fill pass and lets a
// stateless node (FlatCache) take over the whole loop instead of being
// asked for one index at a time.
type ContextProvider interface {
	PositionFor(i int) blockpos.Pos
	FillDirect(slice []float64, f DensityFunction)
}

// sliceContext is the straightforward ContextProvider used whenever a
// caller just wants to fill a dense run of positions along the Y axis (or
// any caller-supplied index-to-position mapping) without special-casing
// flat caches.
type sliceContext struct {
	positionFor func(i int) blockpos.Pos
}

// NewSliceContext builds a ContextProvider from a plain index-to-position
// function. FillDirect falls back to the default per-index loop.
func NewSliceContext(positionFor func(i int) blockpos.Pos) ContextProvider {
	return sliceContext{positionFor: positionFor}
}

func (c sliceContext) PositionFor(i int) blockpos.Pos {
	return c.positionFor(i)
}

func (c sliceContext) FillDirect(slice []float64, f DensityFunction) {
	for i := range slice {
		slice[i] = f.Compute(c.PositionFor(i))
	}
}

// baseFill is embedded by node kinds that have no cheaper bulk strategy
// than evaluating Compute once per position.
type baseFill struct{}

func (baseFill) fill(f DensityFunction, slice []float64, ctx ContextProvider) {
	for i := range slice {
		slice[i] = f.Compute(ctx.PositionFor(i))
	}
}

func sortMinMax(a, b float64) (float64, float64) {
	if a < b {
		return a, b
	}
	return b, a
}
