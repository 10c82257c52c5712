package noise

import (
	"testing"

	"github.com/bits0rcerer/valence-worldgen/pkg/random"
)

func TestImprovedNoise_Deterministic(t *testing.T) {
	a := NewImprovedNoise(random.NewXoroshiro(1234))
	b := NewImprovedNoise(random.NewXoroshiro(1234))

	for _, c := range [][3]float64{{0, 0, 0}, {1.5, -2.25, 10}, {1000.1, 0, -1000.1}} {
		va := a.Sample(c[0], c[1], c[2])
		vb := b.Sample(c[0], c[1], c[2])
		if va != vb {
			t.Fatalf("Sample(%v) diverged: %f != %f", c, va, vb)
		}
	}
}

func TestImprovedNoise_NegativeCoordinatesDoNotPanic(t *testing.T) {
	n := NewImprovedNoise(random.NewXoroshiro(1))
	for _, c := range [][3]float64{{-1, -1, -1}, {-257, -512, -1000}, {-0.1, -0.1, -0.1}} {
		_ = n.Sample(c[0], c[1], c[2])
	}
}

func TestImprovedNoise_BoundedOutput(t *testing.T) {
	n := NewImprovedNoise(random.NewXoroshiro(1))
	for x := -4.0; x <= 4.0; x += 0.5 {
		v := n.Sample(x, x*2, x*3)
		if v < -2 || v > 2 {
			t.Fatalf("Sample(%f,...) = %f, outside expected gradient noise range", x, v)
		}
	}
}

func TestPerlinNoise_SkipsZeroAmplitudeOctaves(t *testing.T) {
	p := NewPerlinNoise(random.NewXoroshiro(1), -4, []float64{0, 1, 0, 1})
	for i, l := range p.layers {
		wantNil := p.amplitudes[i] == 0
		if (l == nil) != wantNil {
			t.Fatalf("layer %d: nil=%v, want nil=%v", i, l == nil, wantNil)
		}
	}
}

func TestNormalNoise_DeterministicAndVarying(t *testing.T) {
	paramsFor := func() (random.Source, Parameters) {
		return random.NewXoroshiro(6646468147532173577), Parameters{
			FirstOctave: -10,
			Amplitudes:  []float64{1, 1, 1, 1, 1, 1},
		}
	}

	ra, pa := paramsFor()
	rb, pb := paramsFor()

	na, err := NewNormalNoise(ra, pa)
	if err != nil {
		t.Fatal(err)
	}
	nb, err := NewNormalNoise(rb, pb)
	if err != nil {
		t.Fatal(err)
	}

	if na.Max() != nb.Max() {
		t.Fatalf("Max() diverged across identical construction: %f != %f", na.Max(), nb.Max())
	}

	seen := map[float64]bool{}
	for x := -50.0; x <= 50.0; x += 7.0 {
		for z := -50.0; z <= 50.0; z += 11.0 {
			va := na.GetValue(x, 0, z)
			vb := nb.GetValue(x, 0, z)
			if va != vb {
				t.Fatalf("GetValue(%f,0,%f) diverged: %f != %f", x, z, va, vb)
			}
			seen[va] = true
		}
	}
	if len(seen) < 2 {
		t.Fatal("NormalNoise produced a constant field across a coordinate sweep")
	}
}

func TestNormalNoise_LegacyKindUnsupported(t *testing.T) {
	_, err := NewNormalNoise(random.NewLegacy(0), Parameters{FirstOctave: 0, Amplitudes: []float64{1}})
	if err == nil {
		t.Fatal("expected an error for legacy-random nether perlin noise, got nil")
	}
}
