package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bits0rcerer/valence-worldgen/pkg/densityfunction"
)

func writeFixture(t *testing.T, root, relPath, contents string) {
	t.Helper()
	full := filepath.Join(root, relPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(contents), 0o644))
}

func TestFileRegistry_LoadsAndCachesDensityFunction(t *testing.T) {
	root := t.TempDir()
	id := densityfunction.Identifier{Namespace: "minecraft", Path: "flat"}
	writeFixture(t, root, id.DataPath("density_function"), `2.5`)

	reg := NewFileRegistry(root, nil)

	tree, err := reg.DensityFunction(id)
	require.NoError(t, err)

	rs := densityfunction.NewRandomState(0, 1, reg)
	f, err := tree.Compile(rs)
	require.NoError(t, err)
	assert.Equal(t, 2.5, f.Min())

	// Removing the fixture must not affect a subsequent cached lookup.
	require.NoError(t, os.Remove(filepath.Join(root, id.DataPath("density_function"))))
	_, err = reg.DensityFunction(id)
	assert.NoError(t, err)
}

func TestFileRegistry_MissingFileErrors(t *testing.T) {
	root := t.TempDir()
	reg := NewFileRegistry(root, nil)
	_, err := reg.DensityFunction(densityfunction.Identifier{Namespace: "minecraft", Path: "absent"})
	assert.Error(t, err)
}

func TestFileRegistry_RootRegistryDefersWhenSet(t *testing.T) {
	root := t.TempDir()
	memRoot := NewMemoryRegistry()
	reg := NewFileRegistry(root, memRoot)
	assert.Same(t, Registry(memRoot), reg.RootRegistry())
}

func TestFileRegistry_NoiseGeneratorSettings(t *testing.T) {
	root := t.TempDir()
	id := densityfunction.Identifier{Namespace: "minecraft", Path: "overworld"}
	writeFixture(t, root, id.DataPath("noise_settings"), `{
		"legacy_random_source": true,
		"noise_router": {
			"barrier": 0, "continents": 0, "depth": 0, "erosion": 0,
			"final_density": 0, "fluid_level_floodedness": 0, "fluid_level_spread": 0,
			"initial_density_without_jaggedness": 0, "lava": 0, "ridges": 0,
			"temperature": 0, "vegetation": 0, "vein_gap": 0, "vein_ridged": 0,
			"vein_toggle": 0
		}
	}`)

	reg := NewFileRegistry(root, nil)
	settings, err := reg.NoiseGeneratorSettings(id)
	require.NoError(t, err)

	rs := densityfunction.NewRandomState(settings.RandomSourceKind, 7, reg)
	_, err = settings.NoiseRouter.Compile(rs)
	require.NoError(t, err)
}
