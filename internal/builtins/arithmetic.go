// ==============================================================================================
// FILE: internal/builtins/arithmetic.go
// ==============================================================================================
// PACKAGE: builtins
// PURPOSE: The *Arithmetic* group of §6: add sub mul div mod pow minus abs int pi sqrt sin cos
//          rad deg hypot min max. Each is, per §1, "a trivial one-line bridge to a host
//          facility" — the only engineering decision is which results stay Int and which widen
//          to Float; add/sub/mul/min/max preserve Int when both operands are Int, the
//          transcendental functions always produce Float.
// ==============================================================================================

package builtins

import (
	"math"

	"lunar/internal/eval"
	"lunar/internal/object"
)

func registerArithmetic() {
	define("add", 2, biAdd)
	define("sub", 2, biSub)
	define("mul", 2, biMul)
	define("div", 2, biDiv)
	define("mod", 2, biMod)
	define("pow", 2, biPow)
	define("minus", 1, biMinus)
	define("abs", 1, biAbs)
	define("int", 1, biInt)
	define("pi", 0, biPi)
	define("sqrt", 1, biSqrt)
	define("sin", 1, biSin)
	define("cos", 1, biCos)
	define("rad", 1, biRad)
	define("deg", 1, biDeg)
	define("hypot", 2, biHypot)
	define("min", 2, biMin)
	define("max", 2, biMax)
}

// arithBinary keeps Int+Int arithmetic exact and widens to Float the moment either operand is
// (or both are) Float.
func arithBinary(a, b object.Value, intOp func(x, y int64) int64, floatOp func(x, y float64) float64) (object.Value, *eval.Error) {
	ai, aIsInt := a.(object.Int)
	bi, bIsInt := b.(object.Int)
	if aIsInt && bIsInt {
		return object.Int{Value: intOp(ai.Value, bi.Value)}, nil
	}
	af, err := asFloat(a)
	if err != nil {
		return nil, err
	}
	bf, err := asFloat(b)
	if err != nil {
		return nil, err
	}
	return object.Float{Value: floatOp(af, bf)}, nil
}

func biAdd(scope *object.Scope, args []object.Value) (object.Value, error) {
	return arithBinary(args[0], args[1], func(x, y int64) int64 { return x + y }, func(x, y float64) float64 { return x + y })
}

func biSub(scope *object.Scope, args []object.Value) (object.Value, error) {
	return arithBinary(args[0], args[1], func(x, y int64) int64 { return x - y }, func(x, y float64) float64 { return x - y })
}

func biMul(scope *object.Scope, args []object.Value) (object.Value, error) {
	return arithBinary(args[0], args[1], func(x, y int64) int64 { return x * y }, func(x, y float64) float64 { return x * y })
}

func biDiv(scope *object.Scope, args []object.Value) (object.Value, error) {
	bf, err := asFloat(args[1])
	if err != nil {
		return nil, err
	}
	if bf == 0 {
		return nil, eval.Errorf("division by zero")
	}
	af, err := asFloat(args[0])
	if err != nil {
		return nil, err
	}
	return object.Float{Value: af / bf}, nil
}

func biMod(scope *object.Scope, args []object.Value) (object.Value, error) {
	a, err := asInt(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asInt(args[1])
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, eval.Errorf("division by zero")
	}
	return object.Int{Value: a % b}, nil
}

func biPow(scope *object.Scope, args []object.Value) (object.Value, error) {
	ai, aIsInt := args[0].(object.Int)
	bi, bIsInt := args[1].(object.Int)
	if aIsInt && bIsInt && bi.Value >= 0 {
		var result int64 = 1
		for i := int64(0); i < bi.Value; i++ {
			result *= ai.Value
		}
		return object.Int{Value: result}, nil
	}
	af, err := asFloat(args[0])
	if err != nil {
		return nil, err
	}
	bf, err := asFloat(args[1])
	if err != nil {
		return nil, err
	}
	return object.Float{Value: math.Pow(af, bf)}, nil
}

func biMinus(scope *object.Scope, args []object.Value) (object.Value, error) {
	switch v := args[0].(type) {
	case object.Int:
		return object.Int{Value: -v.Value}, nil
	case object.Float:
		return object.Float{Value: -v.Value}, nil
	default:
		return nil, eval.TypeErrorf("minus expects a number, got %s", args[0].Type())
	}
}

func biAbs(scope *object.Scope, args []object.Value) (object.Value, error) {
	switch v := args[0].(type) {
	case object.Int:
		if v.Value < 0 {
			return object.Int{Value: -v.Value}, nil
		}
		return v, nil
	case object.Float:
		return object.Float{Value: math.Abs(v.Value)}, nil
	default:
		return nil, eval.TypeErrorf("abs expects a number, got %s", args[0].Type())
	}
}

func biInt(scope *object.Scope, args []object.Value) (object.Value, error) {
	f, err := asFloat(args[0])
	if err != nil {
		return nil, err
	}
	return object.Int{Value: int64(f)}, nil
}

func biPi(scope *object.Scope, args []object.Value) (object.Value, error) {
	return object.Float{Value: math.Pi}, nil
}

func biSqrt(scope *object.Scope, args []object.Value) (object.Value, error) {
	f, err := asFloat(args[0])
	if err != nil {
		return nil, err
	}
	return object.Float{Value: math.Sqrt(f)}, nil
}

func biSin(scope *object.Scope, args []object.Value) (object.Value, error) {
	f, err := asFloat(args[0])
	if err != nil {
		return nil, err
	}
	return object.Float{Value: math.Sin(f)}, nil
}

func biCos(scope *object.Scope, args []object.Value) (object.Value, error) {
	f, err := asFloat(args[0])
	if err != nil {
		return nil, err
	}
	return object.Float{Value: math.Cos(f)}, nil
}

func biRad(scope *object.Scope, args []object.Value) (object.Value, error) {
	f, err := asFloat(args[0])
	if err != nil {
		return nil, err
	}
	return object.Float{Value: f * math.Pi / 180}, nil
}

func biDeg(scope *object.Scope, args []object.Value) (object.Value, error) {
	f, err := asFloat(args[0])
	if err != nil {
		return nil, err
	}
	return object.Float{Value: f * 180 / math.Pi}, nil
}

func biHypot(scope *object.Scope, args []object.Value) (object.Value, error) {
	af, err := asFloat(args[0])
	if err != nil {
		return nil, err
	}
	bf, err := asFloat(args[1])
	if err != nil {
		return nil, err
	}
	return object.Float{Value: math.Hypot(af, bf)}, nil
}

func biMin(scope *object.Scope, args []object.Value) (object.Value, error) {
	return arithBinary(args[0], args[1],
		func(x, y int64) int64 {
			if x < y {
				return x
			}
			return y
		},
		math.Min)
}

func biMax(scope *object.Scope, args []object.Value) (object.Value, error) {
	return arithBinary(args[0], args[1],
		func(x, y int64) int64 {
			if x > y {
				return x
			}
			return y
		},
		math.Max)
}
