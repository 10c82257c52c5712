package densityfunction

import "github.com/bits0rcerer/valence-worldgen/pkg/blockpos"

// Cache2D is, for now, a pass-through wrapper: memoizing per-(x,z) column
// is left for a future revision, but the node still needs to exist so
// compiled trees shaped around it behave identically either way.
type Cache2D struct {
	child DensityFunction
}

func NewCache2D(child DensityFunction) *Cache2D { return &Cache2D{child: child} }

func (c *Cache2D) Compute(pos blockpos.Pos) float64          { return c.child.Compute(pos) }
func (c *Cache2D) Fill(slice []float64, ctx ContextProvider) { c.child.Fill(slice, ctx) }
func (c *Cache2D) Min() float64                              { return c.child.Min() }
func (c *Cache2D) Max() float64                              { return c.child.Max() }

// CacheOnce is, for now, also a pass-through: it exists to mark a subtree
// that should be evaluated at most once per outer sampling pass, but this
// revision does not yet implement that memoization.
type CacheOnce struct {
	child DensityFunction
}

func NewCacheOnce(child DensityFunction) *CacheOnce { return &CacheOnce{child: child} }

func (c *CacheOnce) Compute(pos blockpos.Pos) float64          { return c.child.Compute(pos) }
func (c *CacheOnce) Fill(slice []float64, ctx ContextProvider) { c.child.Fill(slice, ctx) }
func (c *CacheOnce) Min() float64                              { return c.child.Min() }
func (c *CacheOnce) Max() float64                              { return c.child.Max() }

// FlatCache zeroes the Y coordinate before delegating to its child --
// the function it wraps is assumed not to vary with height. Its Fill is
// the one place a node hands control back to the ContextProvider, since a
// height-independent subtree can be filled far more cheaply than one
// column sample per index.
type FlatCache struct {
	child DensityFunction
}

func NewFlatCache(child DensityFunction) *FlatCache { return &FlatCache{child: child} }

func (c *FlatCache) Compute(pos blockpos.Pos) float64 {
	return c.child.Compute(pos.WithY(0))
}

func (c *FlatCache) Fill(slice []float64, ctx ContextProvider) {
	ctx.FillDirect(slice, c)
}

func (c *FlatCache) Min() float64 { return c.child.Min() }
func (c *FlatCache) Max() float64 { return c.child.Max() }
