package densityfunction

import "fmt"

// Compile resolves t against rs into an evaluable DensityFunction,
// looking up References in rs.Registry and recursively compiling Inline
// children.
func (t *Tree) Compile(rs *RandomState) (DensityFunction, error) {
	switch {
	case t.constant != nil:
		return NewConstant(*t.constant), nil

	case t.reference != nil:
		id, err := ParseIdentifier(*t.reference)
		if err != nil {
			return nil, err
		}
		referenced, err := rs.Registry.DensityFunction(id)
		if err != nil {
			return nil, fmt.Errorf("densityfunction: resolving reference %s: %w", id, err)
		}
		return referenced.Compile(rs)

	case t.inline != nil:
		return t.inline.Compile(rs)

	default:
		return nil, fmt.Errorf("densityfunction: empty tree")
	}
}

// compileChild is a convenience used throughout Compile for "compile this
// sub-tree or propagate its error, naming which node failed".
func compileChild(t *Tree, rs *RandomState, label string) (DensityFunction, error) {
	if t == nil {
		return nil, fmt.Errorf("densityfunction: %s: missing child", label)
	}
	f, err := t.Compile(rs)
	if err != nil {
		return nil, fmt.Errorf("densityfunction: %s: %w", label, err)
	}
	return f, nil
}

func (t *InlineTree) Compile(rs *RandomState) (DensityFunction, error) {
	switch t.Type {
	case typeAbs:
		child, err := compileChild(t.Child, rs, "abs")
		if err != nil {
			return nil, err
		}
		return Abs(child), nil

	case typeSquare:
		child, err := compileChild(t.Child, rs, "square")
		if err != nil {
			return nil, err
		}
		return Square(child), nil

	case typeCube:
		child, err := compileChild(t.Child, rs, "cube")
		if err != nil {
			return nil, err
		}
		return Cube(child), nil

	case typeHalfNegative:
		child, err := compileChild(t.Child, rs, "half_negative")
		if err != nil {
			return nil, err
		}
		return HalfNegative(child), nil

	case typeQuarterNegative:
		child, err := compileChild(t.Child, rs, "quarter_negative")
		if err != nil {
			return nil, err
		}
		return QuarterNegative(child), nil

	case typeSqueeze:
		child, err := compileChild(t.Child, rs, "squeeze")
		if err != nil {
			return nil, err
		}
		return Squeeze(child), nil

	case typeConstant:
		return NewConstant(t.ConstantValue), nil

	case typeAdd, typeMul, typeMin, typeMax:
		a, err := compileChild(t.Argument1, rs, t.Type+".argument1")
		if err != nil {
			return nil, err
		}
		b, err := compileChild(t.Argument2, rs, t.Type+".argument2")
		if err != nil {
			return nil, err
		}
		switch t.Type {
		case typeAdd:
			return Add(a, b), nil
		case typeMul:
			return Mul(a, b), nil
		case typeMin:
			return Min(a, b), nil
		default:
			return Max(a, b), nil
		}

	case typeClamp:
		input, err := compileChild(t.ClampInput, rs, "clamp.input")
		if err != nil {
			return nil, err
		}
		return NewClamp(input, t.ClampMin, t.ClampMax), nil

	case typeCache2D:
		child, err := compileChild(t.Child, rs, "cache_2d")
		if err != nil {
			return nil, err
		}
		return NewCache2D(child), nil

	case typeFlatCache:
		child, err := compileChild(t.Child, rs, "flat_cache")
		if err != nil {
			return nil, err
		}
		return NewFlatCache(child), nil

	case typeCacheOnce:
		child, err := compileChild(t.Child, rs, "cache_once")
		if err != nil {
			return nil, err
		}
		return NewCacheOnce(child), nil

	case typeRangeChoice:
		input, err := compileChild(t.RangeInput, rs, "range_choice.input")
		if err != nil {
			return nil, err
		}
		inRange, err := compileChild(t.WhenInRange, rs, "range_choice.when_in_range")
		if err != nil {
			return nil, err
		}
		outOfRange, err := compileChild(t.WhenOutOfRange, rs, "range_choice.when_out_of_range")
		if err != nil {
			return nil, err
		}
		return NewRangeChoice(input, t.MinInclusive, t.MaxExclusive, inRange, outOfRange), nil

	case typeYClampedGradient:
		return NewYClampedGradient(t.FromY, t.ToY, t.FromValue, t.ToValue)

	case typeNoise:
		id, err := ParseIdentifier(t.NoiseID)
		if err != nil {
			return nil, err
		}
		n, err := rs.NormalNoise(id)
		if err != nil {
			return nil, fmt.Errorf("densityfunction: noise %s: %w", id, err)
		}
		return NewNoise(n, t.XZScale, t.YScale), nil

	case typeShift:
		id, err := ParseIdentifier(t.NoiseID)
		if err != nil {
			return nil, err
		}
		n, err := rs.NormalNoise(id)
		if err != nil {
			return nil, fmt.Errorf("densityfunction: shift %s: %w", id, err)
		}
		return NewShift(n), nil

	case typeShiftA:
		id, err := ParseIdentifier(t.NoiseID)
		if err != nil {
			return nil, err
		}
		n, err := rs.NormalNoise(id)
		if err != nil {
			return nil, fmt.Errorf("densityfunction: shift_a %s: %w", id, err)
		}
		return NewShiftA(n), nil

	case typeShiftB:
		id, err := ParseIdentifier(t.NoiseID)
		if err != nil {
			return nil, err
		}
		n, err := rs.NormalNoise(id)
		if err != nil {
			return nil, fmt.Errorf("densityfunction: shift_b %s: %w", id, err)
		}
		return NewShiftB(n), nil

	case typeShiftedNoise:
		id, err := ParseIdentifier(t.NoiseID)
		if err != nil {
			return nil, err
		}
		n, err := rs.NormalNoise(id)
		if err != nil {
			return nil, fmt.Errorf("densityfunction: shifted_noise %s: %w", id, err)
		}
		shiftX, err := compileChild(t.ShiftX, rs, "shifted_noise.shift_x")
		if err != nil {
			return nil, err
		}
		shiftY, err := compileChild(t.ShiftY, rs, "shifted_noise.shift_y")
		if err != nil {
			return nil, err
		}
		shiftZ, err := compileChild(t.ShiftZ, rs, "shifted_noise.shift_z")
		if err != nil {
			return nil, err
		}
		return NewShiftedNoise(n, t.XZScale, t.YScale, shiftX, shiftY, shiftZ), nil

	case typeSpline:
		s, err := t.Spline.Compile(rs)
		if err != nil {
			return nil, err
		}
		return NewSplineFunction(s), nil

	case typeBlendOffset:
		// The reference client folds blending offset to a no-op outside a
		// chunk-blending context; this revision never blends, so zero.
		return NewConstant(0.0), nil

	case typeBlendAlpha:
		return NewConstant(1.0), nil

	case typeCacheAllInCell, typeInterpolated, typeBlendDensity, typeOldBlendNoise, typeWeirdScaled, typeSlide:
		return nil, fmt.Errorf("densityfunction: %s is not implemented", t.Type)

	default:
		return nil, fmt.Errorf("densityfunction: unknown node type %q", t.Type)
	}
}
