// Package worldgen ties the sampling pipeline together: resolve a named
// noise generator settings document from a Registry, derive a RandomState
// for a world seed, compile its noise router, and sample terrain-shaping
// channels at a block position. Everything else lives in pkg/random,
// pkg/noise, pkg/spline, pkg/densityfunction, and pkg/registry; this
// package just re-exports the names callers touch most often so a simple
// embedding game can depend on one import.
package worldgen

import (
	"fmt"

	"github.com/bits0rcerer/valence-worldgen/pkg/blockpos"
	"github.com/bits0rcerer/valence-worldgen/pkg/densityfunction"
	"github.com/bits0rcerer/valence-worldgen/pkg/registry"
)

type (
	BlockPos               = blockpos.Pos
	Identifier             = densityfunction.Identifier
	RandomState            = densityfunction.RandomState
	NoiseRouter            = densityfunction.NoiseRouter
	CompiledNoiseRouter    = densityfunction.CompiledNoiseRouter
	NoiseGeneratorSettings = densityfunction.NoiseGeneratorSettings
	Registry               = registry.Registry
	MemoryRegistry         = registry.MemoryRegistry
	FileRegistry           = registry.FileRegistry
)

var (
	NewBlockPos       = blockpos.New
	ParseIdentifier   = densityfunction.ParseIdentifier
	NewMemoryRegistry = registry.NewMemoryRegistry
	NewFileRegistry   = registry.NewFileRegistry
)

// Dimension is a fully prepared sampling pipeline for one world seed and
// one noise generator settings document: a compiled noise router ready to
// be sampled at any block position.
type Dimension struct {
	RandomState *RandomState
	Router      *CompiledNoiseRouter
}

// NewDimension resolves settingsID from reg, derives a RandomState for
// seed, and compiles its noise router.
func NewDimension(reg Registry, settingsID Identifier, seed int64) (*Dimension, error) {
	settings, err := reg.NoiseGeneratorSettings(settingsID)
	if err != nil {
		return nil, fmt.Errorf("worldgen: resolving %s: %w", settingsID, err)
	}

	rs := densityfunction.NewRandomState(settings.RandomSourceKind, seed, reg)

	router, err := settings.NoiseRouter.Compile(rs)
	if err != nil {
		return nil, fmt.Errorf("worldgen: compiling noise router for %s: %w", settingsID, err)
	}

	return &Dimension{RandomState: rs, Router: router}, nil
}

// Sample evaluates every channel of the compiled router at pos.
func (d *Dimension) Sample(pos BlockPos) map[string]float64 {
	return map[string]float64{
		"barrier":                            d.Router.Barrier.Compute(pos),
		"continents":                         d.Router.Continents.Compute(pos),
		"depth":                              d.Router.Depth.Compute(pos),
		"erosion":                            d.Router.Erosion.Compute(pos),
		"final_density":                      d.Router.FinalDensity.Compute(pos),
		"fluid_level_floodedness":            d.Router.FluidLevelFloodedness.Compute(pos),
		"fluid_level_spread":                 d.Router.FluidLevelSpread.Compute(pos),
		"initial_density_without_jaggedness": d.Router.InitialDensityWithoutJaggedness.Compute(pos),
		"lava":                               d.Router.Lava.Compute(pos),
		"ridges":                             d.Router.Ridges.Compute(pos),
		"temperature":                        d.Router.Temperature.Compute(pos),
		"vegetation":                         d.Router.Vegetation.Compute(pos),
		"vein_gap":                           d.Router.VeinGap.Compute(pos),
		"vein_ridged":                        d.Router.VeinRidged.Compute(pos),
		"vein_toggle":                        d.Router.VeinToggle.Compute(pos),
	}
}
