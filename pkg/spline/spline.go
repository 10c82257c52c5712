// Package spline implements the cubic (Hermite) spline used by density
// functions to map a coordinate channel onto a value through a sequence
// of hand-authored control points.
package spline

import (
	"fmt"
	"math"
	"sort"

	"github.com/bits0rcerer/valence-worldgen/pkg/blockpos"
)

// Coordinate is the minimal surface a spline needs from its driving
// density function: just enough to evaluate a position into a channel
// value, which the spline converts to float32.
// densityfunction.DensityFunction satisfies this directly.
type Coordinate interface {
	Compute(pos blockpos.Pos) float64
}

// Spline is a compiled (Built) cubic spline: either a flat constant or a
// multipoint curve driven by a resolved Coordinate.
type Spline struct {
	constant   bool
	value      float32
	coordinate Coordinate
	points     []Point
}

// Point is one control point of a compiled multipoint spline.
type Point struct {
	Location   float32
	Derivative float32
	Value      Spline
}

// NewConstant builds a flat spline that always evaluates to value.
func NewConstant(value float32) Spline {
	return Spline{constant: true, value: value}
}

// NewMultipoint builds a multipoint spline. Points must be sorted by
// Location ascending and must not be empty.
func NewMultipoint(coordinate Coordinate, points []Point) (Spline, error) {
	if len(points) == 0 {
		return Spline{}, fmt.Errorf("spline: points must not be empty")
	}
	return Spline{coordinate: coordinate, points: points}, nil
}

// Compute evaluates the spline at pos.
func (s Spline) Compute(pos blockpos.Pos) float32 {
	if s.constant {
		return s.value
	}

	x := float32(s.coordinate.Compute(pos))

	i := sort.Search(len(s.points), func(i int) bool {
		return s.points[i].Location > x
	}) - 1

	if i < 0 {
		p := s.points[0]
		return p.Value.Compute(pos) + p.Derivative*(x-p.Location)
	}
	if i == len(s.points)-1 {
		p := s.points[len(s.points)-1]
		return p.Value.Compute(pos) + p.Derivative*(x-p.Location)
	}

	p0 := s.points[i]
	p1 := s.points[i+1]

	t := (x - p0.Location) / (p1.Location - p0.Location)

	y0 := p0.Value.Compute(pos)
	y1 := p1.Value.Compute(pos)

	u := p0.Derivative*(p1.Location-p0.Location) - (y1 - y0)
	v := -p1.Derivative*(p1.Location-p0.Location) + (y1 - y0)

	return lerp32(t, y0, y1) + t*(1-t)*lerp32(t, u, v)
}

// Min folds the minimum possible value across every reachable point.
func (s Spline) Min() float32 {
	if s.constant {
		return s.value
	}
	min := float32(math.Inf(1))
	for _, p := range s.points {
		if v := p.Value.Min(); v < min {
			min = v
		}
	}
	return min
}

// Max folds the maximum possible value across every reachable point.
func (s Spline) Max() float32 {
	if s.constant {
		return s.value
	}
	max := float32(math.Inf(-1))
	for _, p := range s.points {
		if v := p.Value.Max(); v > max {
			max = v
		}
	}
	return max
}

func lerp32(t, u0, u1 float32) float32 {
	return u0 + t*(u1-u0)
}
