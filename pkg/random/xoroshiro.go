package random

import (
	"crypto/md5"
	"encoding/binary"
	"math/bits"

	"github.com/bits0rcerer/valence-worldgen/pkg/blockpos"
)

const (
	goldenRatio64 int64 = -7046029254386353131
	silverRatio64 int64 = 7640891576956012809
)

// Xoroshiro is a 128-bit xoroshiro128 random source seeded via a Stafford
// mix-13 upgrade from a single 64-bit seed. It is the random kind used by
// every noise generator settings document from 1.18 onward.
type Xoroshiro struct {
	seedLo, seedHi int64
}

// NewXoroshiro upgrades a single 64-bit seed to the 128-bit xoroshiro state.
func NewXoroshiro(seed int64) *Xoroshiro {
	lo, hi := upgradeSeedTo128Bit(seed)
	return newXoroshiro128(lo, hi)
}

// newXoroshiro128 constructs a Xoroshiro directly from a 128-bit state,
// substituting the golden/silver ratio constants if both halves are zero.
func newXoroshiro128(seedLo, seedHi int64) *Xoroshiro {
	if seedLo == 0 && seedHi == 0 {
		return &Xoroshiro{seedLo: goldenRatio64, seedHi: silverRatio64}
	}
	return &Xoroshiro{seedLo: seedLo, seedHi: seedHi}
}

func mixStafford13(seed int64) int64 {
	seed = (seed ^ int64(uint64(seed)>>30)) * -4658895280553007687
	seed = (seed ^ int64(uint64(seed)>>27)) * -7723592293110705685
	seed = seed ^ int64(uint64(seed)>>31)
	return seed
}

func upgradeSeedTo128Bit(seed int64) (lo, hi int64) {
	l := seed ^ silverRatio64
	m := l + goldenRatio64
	return mixStafford13(l), mixStafford13(m)
}

func (r *Xoroshiro) Kind() Kind { return KindXoroshiro }

func (r *Xoroshiro) nextBits(bitCount uint) int64 {
	i := r.seedLo
	j := r.seedHi
	k := bits.RotateLeft64(uint64(i+j), 17) + uint64(i)
	j ^= i

	r.seedLo = int64(bits.RotateLeft64(uint64(i), 49)) ^ j ^ (j << 21)
	r.seedHi = int64(bits.RotateLeft64(uint64(j), 28))

	return int64(k >> (64 - bitCount))
}

func (r *Xoroshiro) Fork() Source {
	return newXoroshiro128(r.NextInt64(), r.NextInt64())
}

func (r *Xoroshiro) ForkPositional() PositionalFactory {
	return &xoroshiroPositionalFactory{seedLo: r.NextInt64(), seedHi: r.NextInt64()}
}

func (r *Xoroshiro) SetSeed(seed int64) {
	r.seedLo, r.seedHi = upgradeSeedTo128Bit(seed)
}

func (r *Xoroshiro) NextInt32() int32 {
	return int32(r.NextInt64())
}

func (r *Xoroshiro) NextInt32Bound(bound int32) int32 {
	if bound < 0 {
		panic("random: bound must be non-negative")
	}

	i := int64(uint32(r.NextInt32()))
	j := i * int64(bound)
	k := j & 4294967295

	if k < int64(bound) {
		l := int64(uint32(-bound) % uint32(bound))
		for k < l {
			i = int64(uint32(r.NextInt32()))
			j = i * int64(bound)
			k = j & 4294967295
		}
	}

	return int32(j >> 32)
}

func (r *Xoroshiro) NextInt32BetweenInclusive(lo, hi int32) int32 {
	return nextInt32BetweenInclusive(r, lo, hi)
}

func (r *Xoroshiro) NextInt64() int64 {
	return r.nextBits(64)
}

func (r *Xoroshiro) NextBool() bool {
	return r.NextInt64()&1 != 0
}

func (r *Xoroshiro) NextFloat32() float32 {
	return float32(r.nextBits(24)) * floatMultiplier
}

func (r *Xoroshiro) NextFloat64() float64 {
	return float64(r.nextBits(53)) * doubleMultiplier
}

func (r *Xoroshiro) Consume(count int) {
	consume(r, count)
}

type xoroshiroPositionalFactory struct {
	seedLo, seedHi int64
}

func (f *xoroshiroPositionalFactory) At(x, y, z int32) Source {
	return newXoroshiro128(blockSeed(x, y, z)^f.seedLo, f.seedHi)
}

func (f *xoroshiroPositionalFactory) AtBlock(pos blockpos.Pos) Source {
	return f.At(pos.X, pos.Y, pos.Z)
}

func (f *xoroshiroPositionalFactory) WithHashOf(s string) Source {
	sum := md5.Sum([]byte(s))
	lo := int64(binary.BigEndian.Uint64(sum[0:8]))
	hi := int64(binary.BigEndian.Uint64(sum[8:16]))
	return newXoroshiro128(lo^f.seedLo, hi^f.seedHi)
}
