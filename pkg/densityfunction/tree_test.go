package densityfunction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bits0rcerer/valence-worldgen/pkg/blockpos"
	"github.com/bits0rcerer/valence-worldgen/pkg/noise"
	"github.com/bits0rcerer/valence-worldgen/pkg/random"
)

// stubRegistry is a minimal densityfunction.Registry for tests that don't
// need the real file- or memory-backed registries from package registry.
type stubRegistry struct {
	densityFunctions map[Identifier]Tree
	noises           map[Identifier]noise.Parameters
}

func newStubRegistry() *stubRegistry {
	return &stubRegistry{
		densityFunctions: map[Identifier]Tree{},
		noises:           map[Identifier]noise.Parameters{},
	}
}

func (r *stubRegistry) RootRegistry() Registry { return r }

func (r *stubRegistry) DensityFunction(id Identifier) (Tree, error) {
	t, ok := r.densityFunctions[id]
	if !ok {
		return Tree{}, assert.AnError
	}
	return t, nil
}

func (r *stubRegistry) Noise(id Identifier) (noise.Parameters, error) {
	p, ok := r.noises[id]
	if !ok {
		return noise.Parameters{}, assert.AnError
	}
	return p, nil
}

func newTestRandomState(reg Registry) *RandomState {
	return NewRandomState(random.KindXoroshiro, 42, reg)
}

func TestTree_UnmarshalJSON_Constant(t *testing.T) {
	var tree Tree
	require.NoError(t, treeJSON.Unmarshal([]byte(`1.5`), &tree))
	require.NotNil(t, tree.constant)
	assert.Equal(t, 1.5, *tree.constant)
}

func TestTree_UnmarshalJSON_Reference(t *testing.T) {
	var tree Tree
	require.NoError(t, treeJSON.Unmarshal([]byte(`"minecraft:overworld/continents"`), &tree))
	require.NotNil(t, tree.reference)
	assert.Equal(t, "minecraft:overworld/continents", *tree.reference)
}

func TestTree_UnmarshalJSON_InlineAdd(t *testing.T) {
	var tree Tree
	require.NoError(t, treeJSON.Unmarshal([]byte(`{
		"type": "minecraft:add",
		"argument1": 1.0,
		"argument2": 2.0
	}`), &tree))
	require.NotNil(t, tree.inline)
	assert.Equal(t, typeAdd, tree.inline.Type)

	rs := newTestRandomState(newStubRegistry())
	f, err := tree.Compile(rs)
	require.NoError(t, err)
	assert.Equal(t, 3.0, f.Compute(blockPosOrigin()))
}

func TestTree_Compile_ReferenceResolvesThroughRegistry(t *testing.T) {
	reg := newStubRegistry()
	reg.densityFunctions[Identifier{Namespace: "minecraft", Path: "flat"}] = *NewConstantTree(7.0)

	tree := NewReferenceTree("minecraft:flat")
	rs := newTestRandomState(reg)

	f, err := tree.Compile(rs)
	require.NoError(t, err)
	assert.Equal(t, 7.0, f.Compute(blockPosOrigin()))
}

func TestTree_Compile_UnknownReferenceErrors(t *testing.T) {
	tree := NewReferenceTree("minecraft:missing")
	rs := newTestRandomState(newStubRegistry())
	_, err := tree.Compile(rs)
	assert.Error(t, err)
}

func TestTree_Compile_BlendOffsetAndAlphaFoldToConstants(t *testing.T) {
	rs := newTestRandomState(newStubRegistry())

	var offset Tree
	require.NoError(t, treeJSON.Unmarshal([]byte(`{"type":"minecraft:blend_offset"}`), &offset))
	f, err := offset.Compile(rs)
	require.NoError(t, err)
	assert.Equal(t, 0.0, f.Compute(blockPosOrigin()))

	var alpha Tree
	require.NoError(t, treeJSON.Unmarshal([]byte(`{"type":"minecraft:blend_alpha"}`), &alpha))
	f, err = alpha.Compile(rs)
	require.NoError(t, err)
	assert.Equal(t, 1.0, f.Compute(blockPosOrigin()))
}

func TestTree_Compile_UnimplementedNodesError(t *testing.T) {
	rs := newTestRandomState(newStubRegistry())

	unimplemented := []string{
		`{"type":"minecraft:cache_all_in_cell","argument":1.0}`,
		`{"type":"minecraft:interpolated","argument":1.0}`,
		`{"type":"minecraft:blend_density","argument":1.0}`,
		`{"type":"minecraft:slide","argument":1.0}`,
		`{"type":"minecraft:old_blended_noise","xz_scale":1,"y_scale":1,"xz_factor":1,"y_factor":1,"smear_scale_multiplier":4}`,
	}

	for _, raw := range unimplemented {
		var tree Tree
		require.NoError(t, treeJSON.Unmarshal([]byte(raw), &tree))
		_, err := tree.Compile(rs)
		assert.Error(t, err)
	}
}

func TestTree_Compile_Noise(t *testing.T) {
	reg := newStubRegistry()
	reg.noises[Identifier{Namespace: "minecraft", Path: "test"}] = noise.Parameters{
		FirstOctave: -4,
		Amplitudes:  []float64{1, 1},
	}

	var tree Tree
	require.NoError(t, treeJSON.Unmarshal([]byte(`{
		"type": "minecraft:noise",
		"noise": "minecraft:test",
		"xz_scale": 1,
		"y_scale": 1
	}`), &tree))

	rs := newTestRandomState(reg)
	f, err := tree.Compile(rs)
	require.NoError(t, err)

	// Deterministic: compiling the same tree twice against an equivalent
	// RandomState must produce identical samples.
	rs2 := newTestRandomState(reg)
	f2, err := tree.Compile(rs2)
	require.NoError(t, err)

	pos := blockpos.New(10, 20, 30)
	assert.Equal(t, f.Compute(pos), f2.Compute(pos))
	assert.True(t, f.Min() <= f.Compute(pos) && f.Compute(pos) <= f.Max())
}

func blockPosOrigin() blockpos.Pos {
	return blockpos.New(0, 0, 0)
}
