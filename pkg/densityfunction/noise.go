package densityfunction

import (
	"github.com/bits0rcerer/valence-worldgen/pkg/blockpos"
	"github.com/bits0rcerer/valence-worldgen/pkg/noise"
)

// inputScrambler reorders (x,y,z) before it reaches the underlying
// NormalNoise -- the shift variants sample a 2D slice of the same noise
// field by zeroing out one axis.
type inputScrambler func(x, y, z float64) (float64, float64, float64)

func scrambleIdentity(x, y, z float64) (float64, float64, float64) { return x, y, z }
func scrambleShiftA(x, y, z float64) (float64, float64, float64)   { return x, 0, z }
func scrambleShiftB(x, y, z float64) (float64, float64, float64)   { return z, x, 0 }

// Noise samples a named NormalNoise at a position scaled by (xzScale,
// yScale, xzScale) and optionally displaced by up to three compiled shift
// sub-functions, then multiplies the result by valueFactor.
type Noise struct {
	baseFill
	noise                *noise.NormalNoise
	xzScale, yScale      float64
	valueFactor          float64
	scrambler            inputScrambler
	shiftX, shiftY, shiftZ DensityFunction
}

// NewNoise builds the plain "minecraft:noise" node.
func NewNoise(n *noise.NormalNoise, xzScale, yScale float64) *Noise {
	return &Noise{noise: n, xzScale: xzScale, yScale: yScale, valueFactor: 1.0, scrambler: scrambleIdentity}
}

// NewShift builds "minecraft:shift": value factor 4, quarter-scale input,
// identity scrambler.
func NewShift(n *noise.NormalNoise) *Noise {
	return &Noise{noise: n, xzScale: 0.25, yScale: 0.25, valueFactor: 4.0, scrambler: scrambleIdentity}
}

// NewShiftA builds "minecraft:shift_a": same as Shift but samples the
// (x,0,z) plane.
func NewShiftA(n *noise.NormalNoise) *Noise {
	return &Noise{noise: n, xzScale: 0.25, yScale: 0.25, valueFactor: 4.0, scrambler: scrambleShiftA}
}

// NewShiftB builds "minecraft:shift_b": samples the (z,x,0) plane.
func NewShiftB(n *noise.NormalNoise) *Noise {
	return &Noise{noise: n, xzScale: 0.25, yScale: 0.25, valueFactor: 4.0, scrambler: scrambleShiftB}
}

// NewShiftedNoise builds "minecraft:shifted_noise": a plain noise sample
// whose scaled input position is displaced by three compiled shift
// sub-functions.
func NewShiftedNoise(n *noise.NormalNoise, xzScale, yScale float64, shiftX, shiftY, shiftZ DensityFunction) *Noise {
	return &Noise{
		noise: n, xzScale: xzScale, yScale: yScale, valueFactor: 1.0, scrambler: scrambleIdentity,
		shiftX: shiftX, shiftY: shiftY, shiftZ: shiftZ,
	}
}

func (n *Noise) sample(pos blockpos.Pos) float64 {
	x, y, z := float64(pos.X), float64(pos.Y), float64(pos.Z)
	x, y, z = x*n.xzScale, y*n.yScale, z*n.xzScale

	if n.shiftX != nil {
		x += n.shiftX.Compute(pos)
	}
	if n.shiftY != nil {
		y += n.shiftY.Compute(pos)
	}
	if n.shiftZ != nil {
		z += n.shiftZ.Compute(pos)
	}

	x, y, z = n.scrambler(x, y, z)
	return n.noise.GetValue(x, y, z) * n.valueFactor
}

func (n *Noise) Compute(pos blockpos.Pos) float64 { return n.sample(pos) }

func (n *Noise) Fill(slice []float64, ctx ContextProvider) {
	n.baseFill.fill(n, slice, ctx)
}

func (n *Noise) Max() float64 { return n.noise.Max() * n.valueFactor }
func (n *Noise) Min() float64 { return -n.Max() }
