package densityfunction

import (
	"fmt"

	"github.com/bits0rcerer/valence-worldgen/pkg/random"
)

// NoiseRouter is the uncompiled bundle of named density function trees a
// noise generator settings document wires together. Field names match the
// vanilla settings JSON keys.
type NoiseRouter struct {
	Barrier                         *Tree `json:"barrier"`
	Continents                      *Tree `json:"continents"`
	Depth                           *Tree `json:"depth"`
	Erosion                         *Tree `json:"erosion"`
	FinalDensity                    *Tree `json:"final_density"`
	FluidLevelFloodedness           *Tree `json:"fluid_level_floodedness"`
	FluidLevelSpread                *Tree `json:"fluid_level_spread"`
	InitialDensityWithoutJaggedness *Tree `json:"initial_density_without_jaggedness"`
	Lava                            *Tree `json:"lava"`
	Ridges                          *Tree `json:"ridges"`
	Temperature                     *Tree `json:"temperature"`
	Vegetation                      *Tree `json:"vegetation"`
	VeinGap                         *Tree `json:"vein_gap"`
	VeinRidged                      *Tree `json:"vein_ridged"`
	VeinToggle                      *Tree `json:"vein_toggle"`
}

// CompiledNoiseRouter is a NoiseRouter with every channel resolved against
// a RandomState, ready to be sampled.
type CompiledNoiseRouter struct {
	Barrier                         DensityFunction
	Continents                      DensityFunction
	Depth                           DensityFunction
	Erosion                         DensityFunction
	FinalDensity                    DensityFunction
	FluidLevelFloodedness           DensityFunction
	FluidLevelSpread                DensityFunction
	InitialDensityWithoutJaggedness DensityFunction
	Lava                            DensityFunction
	Ridges                          DensityFunction
	Temperature                     DensityFunction
	Vegetation                      DensityFunction
	VeinGap                         DensityFunction
	VeinRidged                      DensityFunction
	VeinToggle                      DensityFunction
}

// routerChannel names one named field of a NoiseRouter/CompiledNoiseRouter
// pair, for Compile's field-by-field loop.
type routerChannel struct {
	name string
	tree *Tree
	dest *DensityFunction
}

// Compile resolves every channel of r against rs, naming the failing
// channel if any compilation step fails.
func (r *NoiseRouter) Compile(rs *RandomState) (*CompiledNoiseRouter, error) {
	out := &CompiledNoiseRouter{}
	channels := [...]routerChannel{
		{"barrier", r.Barrier, &out.Barrier},
		{"continents", r.Continents, &out.Continents},
		{"depth", r.Depth, &out.Depth},
		{"erosion", r.Erosion, &out.Erosion},
		{"final_density", r.FinalDensity, &out.FinalDensity},
		{"fluid_level_floodedness", r.FluidLevelFloodedness, &out.FluidLevelFloodedness},
		{"fluid_level_spread", r.FluidLevelSpread, &out.FluidLevelSpread},
		{"initial_density_without_jaggedness", r.InitialDensityWithoutJaggedness, &out.InitialDensityWithoutJaggedness},
		{"lava", r.Lava, &out.Lava},
		{"ridges", r.Ridges, &out.Ridges},
		{"temperature", r.Temperature, &out.Temperature},
		{"vegetation", r.Vegetation, &out.Vegetation},
		{"vein_gap", r.VeinGap, &out.VeinGap},
		{"vein_ridged", r.VeinRidged, &out.VeinRidged},
		{"vein_toggle", r.VeinToggle, &out.VeinToggle},
	}

	for _, ch := range channels {
		if ch.tree == nil {
			return nil, fmt.Errorf("densityfunction: noise router missing %s", ch.name)
		}
		f, err := ch.tree.Compile(rs)
		if err != nil {
			return nil, fmt.Errorf("densityfunction: noise router %s: %w", ch.name, err)
		}
		*ch.dest = f
	}

	return out, nil
}

// NoiseGeneratorSettings is the deserialized document naming which random
// source kind a dimension uses and the noise router that shapes it. Only
// the two fields this library acts on are kept; block palettes, surface
// rules, and spawn targets are out of scope.
type NoiseGeneratorSettings struct {
	RandomSourceKind random.Kind
	NoiseRouter      NoiseRouter
}

// noiseGeneratorSettingsJSON mirrors the vanilla document shape: a boolean
// "legacy_random_source" selects between the 48-bit LCG and xoroshiro128.
type noiseGeneratorSettingsJSON struct {
	LegacyRandomSource bool        `json:"legacy_random_source"`
	NoiseRouter        NoiseRouter `json:"noise_router"`
}

func (s *NoiseGeneratorSettings) UnmarshalJSON(data []byte) error {
	var raw noiseGeneratorSettingsJSON
	if err := treeJSON.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.NoiseRouter = raw.NoiseRouter
	if raw.LegacyRandomSource {
		s.RandomSourceKind = random.KindLegacy
	} else {
		s.RandomSourceKind = random.KindXoroshiro
	}
	return nil
}

func (s NoiseGeneratorSettings) MarshalJSON() ([]byte, error) {
	return treeJSON.Marshal(noiseGeneratorSettingsJSON{
		LegacyRandomSource: s.RandomSourceKind == random.KindLegacy,
		NoiseRouter:        s.NoiseRouter,
	})
}
