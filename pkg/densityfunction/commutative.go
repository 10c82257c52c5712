package densityfunction

import (
	"math"

	"github.com/bits0rcerer/valence-worldgen/pkg/blockpos"
)

// operation identifies which commutative binary op a Commutative node applies.
type operation int

const (
	opAdd operation = iota
	opMultiply
	opMin
	opMax
)

func (op operation) apply(a, b float64) float64 {
	switch op {
	case opAdd:
		return a + b
	case opMultiply:
		return a * b
	case opMin:
		return math.Min(a, b)
	case opMax:
		return math.Max(a, b)
	default:
		panic("densityfunction: unknown operation")
	}
}

// boundsMin computes the node's Min() from its two operands' own bounds.
// The Multiply case is interval arithmetic: sign-pure operand pairs take
// the straightforward product of their extremes; sign-mixed pairs must
// consider the cross terms since the sign of the product can flip.
func (op operation) boundsMin(a, b DensityFunction) float64 {
	switch op {
	case opAdd:
		return a.Min() + b.Min()
	case opMin:
		return math.Min(a.Min(), b.Min())
	case opMax:
		return math.Max(a.Min(), b.Min())
	case opMultiply:
		switch {
		case a.Min() > 0 && b.Min() > 0:
			return a.Min() * b.Min()
		case a.Max() < 0 && b.Max() < 0:
			return a.Max() * b.Max()
		default:
			return math.Min(a.Min()*b.Max(), a.Max()*b.Min())
		}
	default:
		panic("densityfunction: unknown operation")
	}
}

func (op operation) boundsMax(a, b DensityFunction) float64 {
	switch op {
	case opAdd:
		return a.Max() + b.Max()
	case opMin:
		return math.Min(a.Max(), b.Max())
	case opMax:
		return math.Max(a.Max(), b.Max())
	case opMultiply:
		switch {
		case a.Min() > 0 && b.Min() > 0:
			return a.Max() * b.Max()
		case a.Max() < 0 && b.Max() < 0:
			return a.Min() * b.Min()
		default:
			return math.Max(a.Min()*b.Min(), a.Max()*b.Max())
		}
	default:
		panic("densityfunction: unknown operation")
	}
}

// Commutative applies a symmetric binary operation to two children, with
// bounds precomputed once at construction via interval arithmetic.
type Commutative struct {
	baseFill
	f1, f2   DensityFunction
	op       operation
	min, max float64
}

func newCommutative(f1, f2 DensityFunction, op operation) *Commutative {
	return &Commutative{
		f1:  f1,
		f2:  f2,
		op:  op,
		min: op.boundsMin(f1, f2),
		max: op.boundsMax(f1, f2),
	}
}

func (c *Commutative) Compute(pos blockpos.Pos) float64 {
	return c.op.apply(c.f1.Compute(pos), c.f2.Compute(pos))
}

func (c *Commutative) Fill(slice []float64, ctx ContextProvider) {
	c.baseFill.fill(c, slice, ctx)
}

func (c *Commutative) Min() float64 { return c.min }
func (c *Commutative) Max() float64 { return c.max }

// Add returns a DensityFunction computing f1+f2.
func Add(f1, f2 DensityFunction) DensityFunction {
	return newCommutative(f1, f2, opAdd)
}

// Mul returns a DensityFunction computing f1*f2.
func Mul(f1, f2 DensityFunction) DensityFunction {
	return newCommutative(f1, f2, opMultiply)
}

// Min returns a DensityFunction computing min(f1,f2).
func Min(f1, f2 DensityFunction) DensityFunction {
	return newCommutative(f1, f2, opMin)
}

// Max returns a DensityFunction computing max(f1,f2).
func Max(f1, f2 DensityFunction) DensityFunction {
	return newCommutative(f1, f2, opMax)
}
