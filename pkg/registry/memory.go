package registry

import (
	"fmt"
	"sync"

	"github.com/bits0rcerer/valence-worldgen/pkg/densityfunction"
	"github.com/bits0rcerer/valence-worldgen/pkg/noise"
)

// MemoryRegistry is a map-backed Registry for tests and for graphs built
// programmatically instead of loaded from disk.
type MemoryRegistry struct {
	mu               sync.RWMutex
	densityFunctions map[densityfunction.Identifier]densityfunction.Tree
	noises           map[densityfunction.Identifier]noise.Parameters
	settings         map[densityfunction.Identifier]densityfunction.NoiseGeneratorSettings
}

// NewMemoryRegistry builds an empty MemoryRegistry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		densityFunctions: make(map[densityfunction.Identifier]densityfunction.Tree),
		noises:           make(map[densityfunction.Identifier]noise.Parameters),
		settings:         make(map[densityfunction.Identifier]densityfunction.NoiseGeneratorSettings),
	}
}

func (r *MemoryRegistry) RootRegistry() Registry { return r }

// PutDensityFunction registers a Tree under id, overwriting any prior entry.
func (r *MemoryRegistry) PutDensityFunction(id densityfunction.Identifier, t densityfunction.Tree) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.densityFunctions[id] = t
}

// PutNoise registers noise Parameters under id.
func (r *MemoryRegistry) PutNoise(id densityfunction.Identifier, p noise.Parameters) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.noises[id] = p
}

// PutNoiseGeneratorSettings registers a settings document under id.
func (r *MemoryRegistry) PutNoiseGeneratorSettings(id densityfunction.Identifier, s densityfunction.NoiseGeneratorSettings) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings[id] = s
}

func (r *MemoryRegistry) DensityFunction(id densityfunction.Identifier) (densityfunction.Tree, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.densityFunctions[id]
	if !ok {
		return densityfunction.Tree{}, fmt.Errorf("registry: no density function registered for %s", id)
	}
	return t, nil
}

func (r *MemoryRegistry) Noise(id densityfunction.Identifier) (noise.Parameters, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.noises[id]
	if !ok {
		return noise.Parameters{}, fmt.Errorf("registry: no noise registered for %s", id)
	}
	return p, nil
}

func (r *MemoryRegistry) NoiseGeneratorSettings(id densityfunction.Identifier) (densityfunction.NoiseGeneratorSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.settings[id]
	if !ok {
		return densityfunction.NoiseGeneratorSettings{}, fmt.Errorf("registry: no noise generator settings registered for %s", id)
	}
	return s, nil
}
