// Package config holds process-wide runtime settings for the sampling
// pipeline: where the registry reads its documents from and a default
// random source Kind.
package config

import (
	"sync"

	"github.com/bits0rcerer/valence-worldgen/pkg/random"
)

type settings struct {
	mu sync.RWMutex

	registryRoot string
	defaultKind  random.Kind
}

var global = &settings{
	registryRoot: "./data",
	defaultKind:  random.KindXoroshiro,
}

// GetRegistryRoot returns the directory a FileRegistry resolves documents
// relative to.
func GetRegistryRoot() string {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.registryRoot
}

// SetRegistryRoot changes the directory a FileRegistry resolves documents
// relative to.
func SetRegistryRoot(path string) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.registryRoot = path
}

// GetDefaultRandomKind returns the process-wide default Kind. No code in
// this module reads it: a decoded NoiseGeneratorSettings always takes its
// Kind from legacy_random_source, an absent field meaning Xoroshiro.
func GetDefaultRandomKind() random.Kind {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.defaultKind
}

// SetDefaultRandomKind changes the default Kind.
func SetDefaultRandomKind(kind random.Kind) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.defaultKind = kind
}
