// Package registry implements document lookup for named density functions,
// noises, and noise generator settings: an in-memory registry for tests
// and programmatically built graphs, and a JSON-file-backed registry that
// mirrors the on-disk layout of a vanilla data pack.
package registry

import (
	"github.com/bits0rcerer/valence-worldgen/pkg/densityfunction"
	"github.com/bits0rcerer/valence-worldgen/pkg/noise"
)

// Registry is the full lookup surface: the narrow subset
// densityfunction.Compile needs (DensityFunction, Noise) plus RootRegistry
// and NoiseGeneratorSettings, which only a top-level caller building a
// RandomState needs. Any Registry satisfies densityfunction.Registry
// structurally, with no import back from densityfunction to this package.
type Registry interface {
	RootRegistry() Registry
	DensityFunction(id densityfunction.Identifier) (densityfunction.Tree, error)
	Noise(id densityfunction.Identifier) (noise.Parameters, error)
	NoiseGeneratorSettings(id densityfunction.Identifier) (densityfunction.NoiseGeneratorSettings, error)
}
