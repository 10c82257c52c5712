package spline

import (
	"testing"

	"github.com/bits0rcerer/valence-worldgen/pkg/blockpos"
	"github.com/bits0rcerer/valence-worldgen/pkg/random"
)

// yClampedGradient is a minimal, self-contained stand-in for the
// minecraft:y_clamped_gradient density function node, used here only to
// drive the spline without importing the densityfunction package (which
// itself depends on this package).
type yClampedGradient struct {
	fromY, toY       int32
	fromValue, toValue float64
}

func (g yClampedGradient) Compute(pos blockpos.Pos) float64 {
	t := float64(pos.Y-g.fromY) / float64(g.toY-g.fromY)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return g.fromValue + t*(g.toValue-g.fromValue)
}

// TestSpline_HermiteFixture reproduces the 128-value reference series
// generated against a fixed XoroshiroRandom seed in the upstream spline
// regression test: a 5-point spline over one y-clamped-gradient coordinate
// with a nested 3-point sub-spline over a second, independent coordinate.
func TestSpline_HermiteFixture(t *testing.T) {
	subSpline, err := NewMultipoint(yClampedGradient{-64, 64, 32, -32}, []Point{
		{Location: -32, Derivative: 0, Value: NewConstant(-16)},
		{Location: 0, Derivative: 0, Value: NewConstant(8)},
		{Location: 32, Derivative: 0, Value: NewConstant(-16)},
	})
	if err != nil {
		t.Fatal(err)
	}

	top, err := NewMultipoint(yClampedGradient{-64, 64, -64, 64}, []Point{
		{Location: -64, Derivative: 0, Value: NewConstant(-32)},
		{Location: -32, Derivative: 0, Value: NewConstant(32)},
		{Location: 0, Derivative: 0, Value: subSpline},
		{Location: 32, Derivative: 0, Value: NewConstant(-128)},
		{Location: 64, Derivative: 0, Value: NewConstant(128)},
	})
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{
		-103.14118957519531, -30.41796875, 128, 23.875, -32, -61.875, 127.265625, -128, 128, 9.185474395751953,
		-9.37687873840332, -32, 111.203125, 2.99609375, 19.66015625, 128, 9.185474395751953, 7.592517852783203,
		7.592517852783203, -32, 96.609375, -86.72999572753906, -32, -32, -96.609375, 128, 128, 128, 13.189469337463379,
		-47, 17.051692962646484, 26.09375, 0, 128, 128, -32, 23.875, 16.015825271606445, 121.671875, -117, 128,
		9.185474395751953, -19.263723373413086, 30.549301147460938, 26.009201049804688, 128, 12.356926918029785,
		117, 121.671875, 2.99609375, 7.592517852783203, -126.59480285644531, -36.54530334472656, -17.15625,
		-127.265625, -61.875, 128, -117, 128, -80.73841094970703, 128, 32, -32, 128, 125.125, -32, -32, 26.09375,
		128, -116.24882507324219, -32, -97.97807312011719, -14.1201171875, 1.8983001708984375, 128, -19.66015625,
		128, -1.3125734329223633, -32, 4.488712310791016, -9.37687873840332, -126.59480285644531, 31.89834213256836,
		-127.265625, 31.81640625, -5.089293479919434, -32, -32, -32, -9.37687873840332, 9.185474395751953, 128,
		35.578125, -32, 16.015825271606445, -126.59480285644531, 0, 0, 128, -107.9365234375, -112.32005310058594,
		-32, 21.497920989990234, -30.41796875, -19.263723373413086, 28.985546112060547, -32, 10.242262840270996,
		-112.32005310058594, 0, 2.99609375, -26.09375, -128, 8.201457023620605, -32, -14.1201171875, 11.984375,
		-32, 8.201457023620605, -32, 31.608320236206055, 128, -47, 96.609375, 128, 0, -29.25, -116.24882507324219,
	}

	r := random.NewXoroshiro(0x786b544d6f473757)
	for i, w := range want {
		y := r.NextInt32BetweenInclusive(-96, 96)
		got := float64(top.Compute(blockpos.New(0, y, 0)))
		if got != w {
			t.Errorf("sample %d: got %v, want %v", i, got, w)
		}
	}
}
