package densityfunction

import (
	"github.com/bits0rcerer/valence-worldgen/pkg/noise"
	"github.com/bits0rcerer/valence-worldgen/pkg/random"
)

// Registry is the lookup surface Compile needs to resolve named references
// inside a density function tree. A concrete registry (in-memory or
// file-backed) lives in package registry; this interface is declared here,
// next to the compiler that consumes it, to keep this package import-free
// of its own concrete implementations. Root-registry layering is a
// top-level concern Compile never touches, so it's intentionally not part
// of this interface -- that keeps registry.Registry's wider surface
// (whose RootRegistry returns registry.Registry, not this type)
// structurally assignable here.
type Registry interface {
	DensityFunction(id Identifier) (Tree, error)
	Noise(id Identifier) (noise.Parameters, error)
}

// RandomState bundles the per-(settings,seed) derived randomness that a
// Compile pass threads through every node: the root positional factory,
// the registry used to resolve References and Noise lookups, and the two
// sub-factories aquifers and ore veins are seeded from.
type RandomState struct {
	Seed          int64
	Registry      Registry
	Random        random.PositionalFactory
	AquiferRandom random.PositionalFactory
	OreRandom     random.PositionalFactory
}

// NewRandomState derives a RandomState for seed under the given Kind,
// forking the aquifer and ore sub-factories off hashed labels the same way
// the reference client partitions its root random source.
func NewRandomState(kind random.Kind, seed int64, reg Registry) *RandomState {
	root := kind.New(seed)
	rootFactory := root.ForkPositional()

	aquifer := rootFactory.WithHashOf("aquifer").ForkPositional()
	ore := rootFactory.WithHashOf("ore").ForkPositional()

	return &RandomState{
		Seed:          seed,
		Registry:      reg,
		Random:        rootFactory,
		AquiferRandom: aquifer,
		OreRandom:     ore,
	}
}

// NormalNoise resolves and constructs the named NormalNoise, deriving its
// Source from WithHashOf(id.String()).
func (rs *RandomState) NormalNoise(id Identifier) (*noise.NormalNoise, error) {
	params, err := rs.Registry.Noise(id)
	if err != nil {
		return nil, err
	}
	return noise.NewNormalNoise(rs.Random.WithHashOf(id.String()), params)
}
