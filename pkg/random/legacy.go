package random

import "github.com/bits0rcerer/valence-worldgen/pkg/blockpos"

const (
	legacyModulusBits = 48
	legacyModulusMask = (1 << legacyModulusBits) - 1
	legacyMultiplier  = 0x5DEECE66D
	legacyIncrement   = 0xB
)

// Legacy is a 1:1 port of java.util.Random's 48-bit linear congruential
// generator, used by every pre-1.18 noise generator settings document.
type Legacy struct {
	seed int64
}

// NewLegacy constructs a Legacy source seeded with seed.
func NewLegacy(seed int64) *Legacy {
	return &Legacy{seed: (seed ^ legacyMultiplier) & legacyModulusMask}
}

func (r *Legacy) Kind() Kind { return KindLegacy }

// nextBits advances the LCG state and returns the top bits of the new
// state, matching java.util.Random.next(int).
func (r *Legacy) nextBits(bits uint) int32 {
	r.seed = (r.seed*legacyMultiplier + legacyIncrement) & legacyModulusMask
	return int32(uint64(r.seed) >> (legacyModulusBits - bits))
}

func (r *Legacy) Fork() Source {
	return NewLegacy(r.NextInt64())
}

func (r *Legacy) ForkPositional() PositionalFactory {
	return &legacyPositionalFactory{seed: r.NextInt64()}
}

func (r *Legacy) SetSeed(seed int64) {
	r.seed = (seed ^ legacyMultiplier) & legacyModulusMask
}

func (r *Legacy) NextInt32() int32 {
	return r.nextBits(32)
}

func (r *Legacy) NextInt32Bound(bound int32) int32 {
	if bound <= 0 {
		panic("random: bound must be positive")
	}

	if bound&(bound-1) == 0 {
		return int32((int64(bound) * int64(r.nextBits(31))) >> 31)
	}

	for {
		i := r.nextBits(31)
		j := i % bound
		if i-j+(bound-1) >= 0 {
			return j
		}
	}
}

func (r *Legacy) NextInt32BetweenInclusive(lo, hi int32) int32 {
	return nextInt32BetweenInclusive(r, lo, hi)
}

func (r *Legacy) NextInt64() int64 {
	// The high word is drawn first: (next_bits(32) << 32) + next_bits(32).
	hi := r.NextInt32()
	lo := r.NextInt32()
	return (int64(hi) << 32) + int64(lo)
}

func (r *Legacy) NextBool() bool {
	return r.nextBits(1) != 0
}

func (r *Legacy) NextFloat32() float32 {
	return float32(r.nextBits(24)) * floatMultiplier
}

func (r *Legacy) NextFloat64() float64 {
	i := r.nextBits(26)
	j := r.nextBits(27)
	return float64((int64(i)<<27)+int64(j)) * doubleMultiplier
}

func (r *Legacy) Consume(count int) {
	consume(r, count)
}

type legacyPositionalFactory struct {
	seed int64
}

func (f *legacyPositionalFactory) At(x, y, z int32) Source {
	i := blockSeed(x, y, z)
	return NewLegacy(i ^ f.seed)
}

func (f *legacyPositionalFactory) AtBlock(pos blockpos.Pos) Source {
	return f.At(pos.X, pos.Y, pos.Z)
}

func (f *legacyPositionalFactory) WithHashOf(s string) Source {
	return NewLegacy(int64(JavaStringHash(s)) ^ f.seed)
}
