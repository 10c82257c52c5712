package densityfunction

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/bits0rcerer/valence-worldgen/pkg/spline"
)

// SplineBlueprint is the uncompiled JSON shape of a cubic spline: either a
// flat constant number, or an object naming the coordinate density
// function and a list of control points whose own values are nested
// blueprints.
type SplineBlueprint struct {
	constant *float32
	coordinate *Tree
	points     []splineBlueprintPoint
}

type splineBlueprintPoint struct {
	Location   float32         `json:"location"`
	Derivative float32         `json:"derivative"`
	Value      SplineBlueprint `json:"value"`
}

func (b *SplineBlueprint) UnmarshalJSON(data []byte) error {
	var c float32
	if err := treeJSON.Unmarshal(data, &c); err == nil {
		b.constant = &c
		return nil
	}

	var raw struct {
		Coordinate *Tree                  `json:"coordinate"`
		Points     []splineBlueprintPoint `json:"points"`
	}
	if err := treeJSON.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("densityfunction: spline blueprint: %w", err)
	}
	if raw.Coordinate == nil || len(raw.Points) == 0 {
		return fmt.Errorf("densityfunction: spline blueprint missing coordinate or points")
	}
	b.coordinate = raw.Coordinate
	b.points = raw.Points
	return nil
}

// Compile resolves the blueprint's coordinate reference and every nested
// point against random_state, producing a ready-to-evaluate spline.Spline.
func (b *SplineBlueprint) Compile(rs *RandomState) (spline.Spline, error) {
	if b.constant != nil {
		return spline.NewConstant(*b.constant), nil
	}

	coordinate, err := b.coordinate.Compile(rs)
	if err != nil {
		return spline.Spline{}, fmt.Errorf("densityfunction: spline coordinate: %w", err)
	}

	points := make([]spline.Point, 0, len(b.points))
	for i, p := range b.points {
		value, err := p.Value.Compile(rs)
		if err != nil {
			return spline.Spline{}, fmt.Errorf("densityfunction: spline point %d: %w", i, err)
		}
		points = append(points, spline.Point{Location: p.Location, Derivative: p.Derivative, Value: value})
	}

	return spline.NewMultipoint(coordinate, points)
}
