package densityfunction

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var treeJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// Tree is the uncompiled, deserialized shape of a density function: a raw
// JSON number is a Constant, a raw JSON string is a Reference to a named
// document in the registry, and a JSON object carries a "type" tag
// selecting one of the Inline node kinds.
type Tree struct {
	constant  *float64
	reference *string
	inline    *InlineTree
}

// NewConstantTree wraps a literal value as a Tree, for building graphs
// programmatically instead of from JSON.
func NewConstantTree(v float64) *Tree { return &Tree{constant: &v} }

// NewReferenceTree wraps an identifier string as a Tree.
func NewReferenceTree(id string) *Tree { return &Tree{reference: &id} }

// NewInlineTree wraps an already-built InlineTree.
func NewInlineTree(t InlineTree) *Tree { return &Tree{inline: &t} }

func (t *Tree) UnmarshalJSON(data []byte) error {
	var num float64
	if err := treeJSON.Unmarshal(data, &num); err == nil {
		t.constant = &num
		return nil
	}

	var ref string
	if err := treeJSON.Unmarshal(data, &ref); err == nil {
		t.reference = &ref
		return nil
	}

	var inline InlineTree
	if err := treeJSON.Unmarshal(data, &inline); err != nil {
		return fmt.Errorf("densityfunction: tree is neither a number, a string, nor an object: %w", err)
	}
	t.inline = &inline
	return nil
}

func (t *Tree) MarshalJSON() ([]byte, error) {
	switch {
	case t.constant != nil:
		return treeJSON.Marshal(*t.constant)
	case t.reference != nil:
		return treeJSON.Marshal(*t.reference)
	case t.inline != nil:
		return treeJSON.Marshal(*t.inline)
	default:
		return nil, fmt.Errorf("densityfunction: empty tree")
	}
}

// rawInlineTree mirrors the JSON shape of every Inline node kind so a
// single decode pass can pick out whichever fields its "type" needs,
// without the field-name collisions a single tagged struct with shared
// json keys (e.g. "argument" meaning a float for Constant but a child
// Tree everywhere else) would create.
type rawInlineTree struct {
	Type string `json:"type"`

	Argument  *jsoniter.RawMessage `json:"argument"`
	Argument1 *Tree                `json:"argument1"`
	Argument2 *Tree                `json:"argument2"`

	Input *Tree    `json:"input"`
	Min   float64  `json:"min"`
	Max   float64  `json:"max"`

	Noise   string  `json:"noise"`
	XZScale float64 `json:"xz_scale"`
	YScale  float64 `json:"y_scale"`

	MinInclusive   float64 `json:"min_inclusive"`
	MaxExclusive   float64 `json:"max_exclusive"`
	WhenInRange    *Tree   `json:"when_in_range"`
	WhenOutOfRange *Tree   `json:"when_out_of_range"`

	ShiftX *Tree `json:"shift_x"`
	ShiftY *Tree `json:"shift_y"`
	ShiftZ *Tree `json:"shift_z"`

	FromY     int32   `json:"from_y"`
	ToY       int32   `json:"to_y"`
	FromValue float64 `json:"from_value"`
	ToValue   float64 `json:"to_value"`

	Spline *SplineBlueprint `json:"spline"`

	RarityValueMapper string `json:"rarity_value_mapper"`

	XZFactor             float64 `json:"xz_factor"`
	YFactor              float64 `json:"y_factor"`
	SmearScaleMultiplier uint8   `json:"smear_scale_multiplier"`
}

// InlineTree is one compile-ready node of a deserialized density function
// graph, tagged by Type (e.g. "minecraft:add", "minecraft:y_clamped_gradient").
type InlineTree struct {
	Type string

	Child     *Tree // unary node argument
	Argument1 *Tree
	Argument2 *Tree

	ConstantValue float64

	ClampInput *Tree
	ClampMin   float64
	ClampMax   float64

	NoiseID string
	XZScale float64
	YScale  float64
	ShiftX  *Tree
	ShiftY  *Tree
	ShiftZ  *Tree

	RangeInput     *Tree
	MinInclusive   float64
	MaxExclusive   float64
	WhenInRange    *Tree
	WhenOutOfRange *Tree

	FromY     int32
	ToY       int32
	FromValue float64
	ToValue   float64

	Spline *SplineBlueprint

	WeirdInput        *Tree
	RarityValueMapper string

	XZFactor             float64
	YFactor              float64
	SmearScaleMultiplier uint8
}

const (
	typeAbs              = "minecraft:abs"
	typeAdd              = "minecraft:add"
	typeBlendDensity     = "minecraft:blend_density"
	typeCache2D          = "minecraft:cache_2d"
	typeCacheAllInCell   = "minecraft:cache_all_in_cell"
	typeCacheOnce        = "minecraft:cache_once"
	typeFlatCache        = "minecraft:flat_cache"
	typeClamp            = "minecraft:clamp"
	typeConstant         = "minecraft:constant"
	typeCube             = "minecraft:cube"
	typeHalfNegative     = "minecraft:half_negative"
	typeInterpolated     = "minecraft:interpolated"
	typeMax              = "minecraft:max"
	typeMin              = "minecraft:min"
	typeMul              = "minecraft:mul"
	typeNoise            = "minecraft:noise"
	typeOldBlendNoise    = "minecraft:old_blended_noise"
	typeQuarterNegative  = "minecraft:quarter_negative"
	typeRangeChoice      = "minecraft:range_choice"
	typeShift            = "minecraft:shift"
	typeShiftA           = "minecraft:shift_a"
	typeShiftB           = "minecraft:shift_b"
	typeShiftedNoise     = "minecraft:shifted_noise"
	typeSlide            = "minecraft:slide"
	typeSpline           = "minecraft:spline"
	typeSquare           = "minecraft:square"
	typeSqueeze          = "minecraft:squeeze"
	typeWeirdScaled      = "minecraft:weird_scaled_sampler"
	typeYClampedGradient = "minecraft:y_clamped_gradient"
	typeBlendOffset      = "minecraft:blend_offset"
	typeBlendAlpha       = "minecraft:blend_alpha"
)

func (t *InlineTree) UnmarshalJSON(data []byte) error {
	var raw rawInlineTree
	if err := treeJSON.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("densityfunction: inline tree: %w", err)
	}

	t.Type = raw.Type
	switch raw.Type {
	case typeAbs, typeSquare, typeCube, typeHalfNegative, typeQuarterNegative,
		typeSqueeze, typeCacheAllInCell, typeCache2D, typeFlatCache, typeCacheOnce,
		typeInterpolated, typeBlendDensity, typeSlide:
		if raw.Argument == nil {
			return fmt.Errorf("densityfunction: %s missing argument", raw.Type)
		}
		var child Tree
		if err := treeJSON.Unmarshal(*raw.Argument, &child); err != nil {
			return fmt.Errorf("densityfunction: %s argument: %w", raw.Type, err)
		}
		t.Child = &child

	case typeConstant:
		if raw.Argument == nil {
			return fmt.Errorf("densityfunction: constant missing argument")
		}
		if err := treeJSON.Unmarshal(*raw.Argument, &t.ConstantValue); err != nil {
			return fmt.Errorf("densityfunction: constant argument: %w", err)
		}

	case typeAdd, typeMul, typeMin, typeMax:
		t.Argument1 = raw.Argument1
		t.Argument2 = raw.Argument2

	case typeClamp:
		t.ClampInput = raw.Input
		t.ClampMin = raw.Min
		t.ClampMax = raw.Max

	case typeNoise:
		t.NoiseID = raw.Noise
		t.XZScale = raw.XZScale
		t.YScale = raw.YScale

	case typeShift, typeShiftA, typeShiftB:
		// Unlike every other noise variant, the vanilla document keys these
		// three under "argument" rather than "noise".
		if raw.Argument == nil {
			return fmt.Errorf("densityfunction: %s missing argument", raw.Type)
		}
		if err := treeJSON.Unmarshal(*raw.Argument, &t.NoiseID); err != nil {
			return fmt.Errorf("densityfunction: %s argument: %w", raw.Type, err)
		}

	case typeShiftedNoise:
		t.NoiseID = raw.Noise
		t.XZScale = raw.XZScale
		t.YScale = raw.YScale
		t.ShiftX = raw.ShiftX
		t.ShiftY = raw.ShiftY
		t.ShiftZ = raw.ShiftZ

	case typeRangeChoice:
		t.RangeInput = raw.Input
		t.MinInclusive = raw.MinInclusive
		t.MaxExclusive = raw.MaxExclusive
		t.WhenInRange = raw.WhenInRange
		t.WhenOutOfRange = raw.WhenOutOfRange

	case typeYClampedGradient:
		t.FromY = raw.FromY
		t.ToY = raw.ToY
		t.FromValue = raw.FromValue
		t.ToValue = raw.ToValue

	case typeSpline:
		t.Spline = raw.Spline

	case typeWeirdScaled:
		t.NoiseID = raw.Noise
		t.WeirdInput = raw.Input
		t.RarityValueMapper = raw.RarityValueMapper

	case typeOldBlendNoise:
		t.XZScale = raw.XZScale
		t.YScale = raw.YScale
		t.XZFactor = raw.XZFactor
		t.YFactor = raw.YFactor
		t.SmearScaleMultiplier = raw.SmearScaleMultiplier

	case typeBlendOffset, typeBlendAlpha:
		// no fields

	default:
		return fmt.Errorf("densityfunction: unknown node type %q", raw.Type)
	}

	return nil
}
