package noise

import (
	"fmt"
	"math"

	"github.com/bits0rcerer/valence-worldgen/pkg/random"
)

// inputFactor is the frequency offset applied to the second Perlin layer
// of a NormalNoise, chosen so the two layers never perfectly correlate.
const inputFactor = 1.0181268882175227

// Parameters is the deserializable document backing a named noise
// ("firstOctave" + "amplitudes"), found at
// data/<namespace>/worldgen/noise/<path>.json.
type Parameters struct {
	FirstOctave int32     `json:"firstOctave"`
	Amplitudes  []float64 `json:"amplitudes"`
}

// NormalNoise ("double Perlin noise") is built from two back-to-back
// PerlinNoise instances, the second sampled at a slightly offset frequency.
type NormalNoise struct {
	valueFactor  float64
	max          float64
	first, second *PerlinNoise
}

// NewNormalNoise constructs a NormalNoise from r, which must be freshly
// positioned (it is consumed twice, once per internal Perlin layer).
func NewNormalNoise(r random.Source, params Parameters) (*NormalNoise, error) {
	var first, second *PerlinNoise

	switch r.Kind() {
	case random.KindXoroshiro:
		first = NewPerlinNoise(r, params.FirstOctave, params.Amplitudes)
		second = NewPerlinNoise(r, params.FirstOctave, params.Amplitudes)
	case random.KindLegacy:
		f, err := NewPerlinNoiseLegacyNether(r, params.FirstOctave, params.Amplitudes)
		if err != nil {
			return nil, err
		}
		s, err := NewPerlinNoiseLegacyNether(r, params.FirstOctave, params.Amplitudes)
		if err != nil {
			return nil, err
		}
		first, second = f, s
	default:
		return nil, fmt.Errorf("noise: unknown random kind %s", r.Kind())
	}

	minAmp := int32(math.MaxInt32)
	maxAmp := int32(math.MinInt32)
	for i, amp := range params.Amplitudes {
		if amp != 0 {
			if int32(i) < minAmp {
				minAmp = int32(i)
			}
			if int32(i) > maxAmp {
				maxAmp = int32(i)
			}
		}
	}

	expectedDeviation := 0.1 * (1.0 + 1.0/float64(maxAmp-minAmp+1))
	valueFactor := (1.0 / 6.0) / expectedDeviation

	return &NormalNoise{
		valueFactor: valueFactor,
		max:         (first.Max() + second.Max()) * valueFactor,
		first:       first,
		second:      second,
	}, nil
}

func (n *NormalNoise) GetValue(x, y, z float64) float64 {
	return (n.first.GetValue(x, y, z) + n.second.GetValue(x*inputFactor, y*inputFactor, z*inputFactor)) * n.valueFactor
}

func (n *NormalNoise) Max() float64 {
	return n.max
}
