// Package random implements the deterministic random sources that drive
// world generation: the legacy 48-bit LCG compatible with java.util.Random,
// and a 128-bit xoroshiro128 variant used by modern noise settings.
package random

import "github.com/bits0rcerer/valence-worldgen/pkg/blockpos"

const (
	floatMultiplier  = 5.9604645e-8
	doubleMultiplier = 1.110223e-16
)

// Kind selects which concrete Source a NoiseGeneratorSettings document asks for.
type Kind int

const (
	KindLegacy Kind = iota
	KindXoroshiro
)

// New constructs the concrete Source for this Kind, seeded with seed.
func (k Kind) New(seed int64) Source {
	switch k {
	case KindLegacy:
		return NewLegacy(seed)
	case KindXoroshiro:
		return NewXoroshiro(seed)
	default:
		panic("random: unknown kind")
	}
}

func (k Kind) String() string {
	switch k {
	case KindLegacy:
		return "legacy"
	case KindXoroshiro:
		return "xoroshiro"
	default:
		return "unknown"
	}
}

// Source is a positionable, forkable stream of deterministic randomness.
type Source interface {
	Kind() Kind
	Fork() Source
	ForkPositional() PositionalFactory
	SetSeed(seed int64)
	NextInt32() int32
	NextInt32Bound(bound int32) int32
	NextInt32BetweenInclusive(lo, hi int32) int32
	NextInt64() int64
	NextBool() bool
	NextFloat32() float32
	NextFloat64() float64
	Consume(count int)
}

// PositionalFactory derives fresh Sources from a fixed base seed and a
// block position or string, without disturbing the factory's own state.
type PositionalFactory interface {
	At(x, y, z int32) Source
	AtBlock(pos blockpos.Pos) Source
	WithHashOf(s string) Source
}

// consume is shared by every Source implementation: burn count values of
// NextInt32 without retaining them.
func consume(s Source, count int) {
	for i := 0; i < count; i++ {
		s.NextInt32()
	}
}

// nextInt32BetweenInclusive is the default implementation every Source shares.
func nextInt32BetweenInclusive(s Source, lo, hi int32) int32 {
	return s.NextInt32Bound(hi-lo+1) + lo
}

// JavaStringHash reproduces java.lang.String.hashCode(): a 31-multiplier
// polynomial hash over the string's bytes, wrapping as a signed 32-bit int.
func JavaStringHash(s string) int32 {
	var hash int32
	for i := 0; i < len(s); i++ {
		hash = 31*hash + int32(s[i]&0xff)
	}
	return hash
}

// blockSeed is the integer position hash shared by both the legacy and
// xoroshiro positional factories (Mth.getSeed in the reference client).
func blockSeed(x, y, z int32) int64 {
	i := int64(x)*3129871 ^ int64(z)*116129781 ^ int64(y)
	i = i*i*42317861 + i*11
	return i >> 16
}
