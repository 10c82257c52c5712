package noise

import (
	"fmt"
	"math"

	"github.com/bits0rcerer/valence-worldgen/pkg/random"
)

// PerlinNoise aggregates one ImprovedNoise layer per nonzero-amplitude
// octave, each seeded independently from a positional factory hash of
// "octave_<N>" where N is the octave's absolute index (firstOctave+i).
type PerlinNoise struct {
	layers                []*ImprovedNoise // nil entry where the amplitude was zero
	amplitudes            []float64
	lowestFreqInputFactor float64
	lowestFreqValueFactor float64
	max                   float64
}

// NewPerlinNoise builds the octave stack from r: r is forked positionally
// once, and each octave's layer is seeded from that factory's hash of its
// label.
func NewPerlinNoise(r random.Source, firstOctave int32, amplitudes []float64) *PerlinNoise {
	factory := r.ForkPositional()

	layers := make([]*ImprovedNoise, len(amplitudes))
	for i, amp := range amplitudes {
		if amp == 0 {
			continue
		}
		layers[i] = NewImprovedNoise(factory.WithHashOf(fmt.Sprintf("octave_%d", firstOctave+int32(i))))
	}

	lowestFreqInputFactor := math.Pow(2, float64(firstOctave))
	lowestFreqValueFactor := math.Pow(2, float64(len(amplitudes)-1)) / (math.Pow(2, float64(len(amplitudes))) - 1)

	p := &PerlinNoise{
		layers:                layers,
		amplitudes:            append([]float64(nil), amplitudes...),
		lowestFreqInputFactor: lowestFreqInputFactor,
		lowestFreqValueFactor: lowestFreqValueFactor,
	}
	p.max = edgeValue(2.0, amplitudes, lowestFreqValueFactor)
	return p
}

// NewPerlinNoiseLegacyNether exists to mirror the reference implementation's
// Kind::Legacy branch for double-Perlin noise, which was never finished
// upstream either. It always fails.
func NewPerlinNoiseLegacyNether(r random.Source, firstOctave int32, amplitudes []float64) (*PerlinNoise, error) {
	return nil, fmt.Errorf("noise: legacy-random nether perlin noise is not implemented (kind=%s, firstOctave=%d, %d amplitudes)", r.Kind(), firstOctave, len(amplitudes))
}

func (p *PerlinNoise) Max() float64 {
	return p.max
}

// GetValue samples every octave layer at x,y,z and sums the weighted result.
func (p *PerlinNoise) GetValue(x, y, z float64) float64 {
	inputFactor := p.lowestFreqInputFactor
	valueFactor := p.lowestFreqValueFactor

	var total float64
	for i, layer := range p.layers {
		amp := p.amplitudes[i] * valueFactor
		if layer != nil {
			wx := wrap(x * inputFactor)
			wy := wrap(y * inputFactor)
			wz := wrap(z * inputFactor)
			total += amp * layer.Sample(wx, wy, wz)
		}
		inputFactor *= 2
		valueFactor *= 0.5
	}
	return total
}

func edgeValue(x float64, amplitudes []float64, lowestFreqValueFactor float64) float64 {
	valueFactor := lowestFreqValueFactor
	var total float64
	for _, amp := range amplitudes {
		total += amp * x * valueFactor
		valueFactor /= 2
	}
	return total
}
