// Package noise implements the improved (gradient) Perlin noise primitive
// and the octave/double-octave noise stacks built on top of it.
package noise

import (
	"math"

	"github.com/bits0rcerer/valence-worldgen/pkg/random"
)

const permutationSize = 256

// gradients is the fixed 16-entry gradient table shared by every
// ImprovedNoise instance. The last four entries repeat earlier ones,
// matching the reference client's table exactly.
var gradients = [16][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
	{1, 1, 0}, {0, -1, 1}, {-1, 1, 0}, {0, -1, -1},
}

// ImprovedNoise is a single gradient-noise layer: a shuffled permutation
// table plus a random (x,y,z) origin, sampled with smoothstep interpolation.
type ImprovedNoise struct {
	points              [permutationSize]byte
	xOrigin, yOrigin, zOrigin float64
}

// NewImprovedNoise draws the origin and shuffles the permutation table
// from r. r is consumed in the process and should not be reused afterward.
func NewImprovedNoise(r random.Source) *ImprovedNoise {
	n := &ImprovedNoise{
		xOrigin: r.NextFloat64() * permutationSize,
		yOrigin: r.NextFloat64() * permutationSize,
		zOrigin: r.NextFloat64() * permutationSize,
	}

	for i := 0; i < permutationSize; i++ {
		n.points[i] = byte(i)
	}

	for i := 0; i < permutationSize; i++ {
		j := i + int(r.NextInt32Bound(int32(permutationSize-i)))
		n.points[i], n.points[j] = n.points[j], n.points[i]
	}

	return n
}

func (n *ImprovedNoise) p(idx int) int {
	// idx is routinely negative (world coordinates can be negative); Go's %
	// keeps the operand's sign, so -1 % 256 == -1 and would index the slice
	// out of bounds. permutationSize is a power of two, so masking wraps the
	// same way an unsigned cast would.
	return int(n.points[idx&(permutationSize-1)]) % permutationSize
}

// Sample evaluates the gradient field at x,y,z after shifting the input by
// the stored origin.
func (n *ImprovedNoise) Sample(x, y, z float64) float64 {
	x += n.xOrigin
	y += n.yOrigin
	z += n.zOrigin

	i := int(math.Floor(x))
	j := int(math.Floor(y))
	k := int(math.Floor(z))

	a := x - float64(i)
	b := y - float64(j)
	c := z - float64(k)

	return n.sampleAndLerp(i, j, k, a, b, c)
}

func (n *ImprovedNoise) sampleAndLerp(i, j, k int, a, b, c float64) float64 {
	i2 := n.p(i)
	j2 := n.p(i + 1)
	k2 := n.p(i2 + j)
	l := n.p(i2 + j + 1)
	i1 := n.p(j2 + j)
	j1 := n.p(j2 + j + 1)

	d0 := gradDot(n.p(k2+k), a, b, c)
	d1 := gradDot(n.p(i1+k), a-1, b, c)
	d2 := gradDot(n.p(l+k), a, b-1, c)
	d3 := gradDot(n.p(j1+k), a-1, b-1, c)
	d4 := gradDot(n.p(k2+k+1), a, b, c-1)
	d5 := gradDot(n.p(i1+k+1), a-1, b, c-1)
	d6 := gradDot(n.p(l+k+1), a, b-1, c-1)
	d7 := gradDot(n.p(j1+k+1), a-1, b-1, c-1)

	d8 := smoothStep(a)
	d9 := smoothStep(b)
	d10 := smoothStep(c)

	return lerp3(d8, d9, d10, d0, d1, d2, d3, d4, d5, d6, d7)
}

func gradDot(gradIdx int, a, b, c float64) float64 {
	g := gradients[gradIdx&(len(gradients)-1)]
	return g[0]*a + g[1]*b + g[2]*c
}

func smoothStep(x float64) float64 {
	return x * x * x * (x*(x*6-15) + 10)
}

func lerp(t, u0, u1 float64) float64 {
	return u0 + t*(u1-u0)
}

func lerp2(s, t, v00, v10, v01, v11 float64) float64 {
	return lerp(t, lerp(s, v00, v10), lerp(s, v01, v11))
}

func lerp3(r, s, t, v000, v001, v100, v101, v010, v011, v110, v111 float64) float64 {
	return lerp(t, lerp2(r, s, v000, v001, v100, v101), lerp2(r, s, v010, v011, v110, v111))
}

// wrapCoordinateSpan is the span past which noise input is folded back
// toward zero to avoid float precision loss at large world coordinates.
const wrapCoordinateSpan = 3.3554432e7

// wrap folds v into a smaller range around zero, preserving the
// fractional lattice position exactly the way the reference client does
// for coordinates far from the origin.
func wrap(v float64) float64 {
	return v - math.Floor(v/wrapCoordinateSpan+0.5)*wrapCoordinateSpan
}
