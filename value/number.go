// ==============================================================================================
// FILE: value/number.go
// ==============================================================================================
// PACKAGE: value
// PURPOSE: Number's method table: arithmetic, bitwise (truncated to a pinned 32-bit signed
//          width per the resolution of Open Question (b)), comparison, and the predicate/
//          rounding methods ported from the original Number.cpp (round away from zero per the
//          resolution of Open Question (a); next_float/prev_float/finite?/infinite?/nan?/zero?).
// ==============================================================================================

package value

import "math"

func asNumber(v Value) (*Number, error) {
	n, ok := v.(*Number)
	if !ok {
		return nil, &TypeError{Msg: "expected a Number"}
	}
	return n, nil
}

func binaryNumber(name string, fn func(a, b float64) float64) Method {
	return func(recv Value, args []Value) (Value, error) {
		if len(args) != 1 {
			return nil, &ArgumentError{Receiver: NumberType, Method: name}
		}
		rhs, err := asNumber(args[0])
		if err != nil {
			return nil, err
		}
		return MakeNumber(fn(recv.(*Number).Value, rhs.Value)), nil
	}
}

// roundAwayFromZero rounds v to ndigits decimal places, ties away from
// zero (the away-from-zero resolution of Open Question (a)), replicating
// the original round_f's scale-round-descale formula exactly: the scale
// factor is normalized to v's own magnitude
// (10**(ndigits - ceil(log10(|v|)))), not a flat 10**ndigits, so the
// requested digit count is relative to v's decimal point. math.Round
// itself already ties away from zero, so the only remaining work is this
// scale/round/descale.
func roundAwayFromZero(v, ndigits float64) float64 {
	if v == 0 {
		return 0
	}
	factor := math.Pow(10.0, ndigits-math.Ceil(math.Log10(math.Abs(v))))
	return math.Round(v*factor) / factor
}

var numberTable = func() *MethodTable {
	t := NewMethodTable(baseTable)

	t.RegisterFunc("+", binaryNumber("+", func(a, b float64) float64 { return a + b }))
	t.RegisterFunc("-", binaryNumber("-", func(a, b float64) float64 { return a - b }))
	t.RegisterFunc("*", binaryNumber("*", func(a, b float64) float64 { return a * b }))
	t.RegisterFunc("/", binaryNumber("/", func(a, b float64) float64 { return a / b }))
	t.RegisterFunc("%", func(recv Value, args []Value) (Value, error) {
		if len(args) != 1 {
			return nil, &ArgumentError{Receiver: NumberType, Method: "%"}
		}
		rhs, err := asNumber(args[0])
		if err != nil {
			return nil, err
		}
		if rhs.Value == 0 {
			return nil, &ZeroDivisionError{}
		}
		return MakeNumber(math.Mod(recv.(*Number).Value, rhs.Value)), nil
	})
	t.RegisterFunc("**", binaryNumber("**", func(a, b float64) float64 { return math.Pow(a, b) }))

	t.RegisterFunc("-@", func(recv Value, args []Value) (Value, error) {
		return MakeNumber(-recv.(*Number).Value), nil
	})

	t.RegisterFunc("<<", func(recv Value, args []Value) (Value, error) {
		if len(args) != 1 {
			return nil, &ArgumentError{Receiver: NumberType, Method: "<<"}
		}
		rhs, err := asNumber(args[0])
		if err != nil {
			return nil, err
		}
		return MakeNumber(float64(recv.(*Number).Int32() << uint(rhs.Int32()))), nil
	})
	t.RegisterFunc(">>", func(recv Value, args []Value) (Value, error) {
		if len(args) != 1 {
			return nil, &ArgumentError{Receiver: NumberType, Method: ">>"}
		}
		rhs, err := asNumber(args[0])
		if err != nil {
			return nil, err
		}
		return MakeNumber(float64(recv.(*Number).Int32() >> uint(rhs.Int32()))), nil
	})
	t.RegisterFunc("&", func(recv Value, args []Value) (Value, error) {
		if len(args) != 1 {
			return nil, &ArgumentError{Receiver: NumberType, Method: "&"}
		}
		rhs, err := asNumber(args[0])
		if err != nil {
			return nil, err
		}
		return MakeNumber(float64(recv.(*Number).Int32() & rhs.Int32())), nil
	})
	t.RegisterFunc("|", func(recv Value, args []Value) (Value, error) {
		if len(args) != 1 {
			return nil, &ArgumentError{Receiver: NumberType, Method: "|"}
		}
		rhs, err := asNumber(args[0])
		if err != nil {
			return nil, err
		}
		return MakeNumber(float64(recv.(*Number).Int32() | rhs.Int32())), nil
	})
	t.RegisterFunc("^", func(recv Value, args []Value) (Value, error) {
		if len(args) != 1 {
			return nil, &ArgumentError{Receiver: NumberType, Method: "^"}
		}
		rhs, err := asNumber(args[0])
		if err != nil {
			return nil, err
		}
		return MakeNumber(float64(recv.(*Number).Int32() ^ rhs.Int32())), nil
	})
	t.RegisterFunc("~", func(recv Value, args []Value) (Value, error) {
		return MakeNumber(float64(^recv.(*Number).Int32())), nil
	})

	t.RegisterFunc("<=>", func(recv Value, args []Value) (Value, error) {
		if len(args) != 1 {
			return nil, &ArgumentError{Receiver: NumberType, Method: "<=>"}
		}
		c, ok := Compare(recv, args[0])
		if !ok {
			return NilValue, nil
		}
		return MakeNumber(float64(c)), nil
	})
	cmp := func(op func(c int) bool) Method {
		return func(recv Value, args []Value) (Value, error) {
			if len(args) != 1 {
				return nil, &ArgumentError{Receiver: NumberType, Method: "compare"}
			}
			c, ok := Compare(recv, args[0])
			if !ok {
				return nil, &TypeError{Msg: "comparison of Number with non-Number failed"}
			}
			return MakeBoolean(op(c)), nil
		}
	}
	t.RegisterFunc("<", cmp(func(c int) bool { return c < 0 }))
	t.RegisterFunc("<=", cmp(func(c int) bool { return c <= 0 }))
	t.RegisterFunc(">", cmp(func(c int) bool { return c > 0 }))
	t.RegisterFunc(">=", cmp(func(c int) bool { return c >= 0 }))

	t.RegisterFunc("to_f", func(recv Value, args []Value) (Value, error) { return recv, nil })
	t.Alias("to_d", "to_f")
	t.RegisterFunc("to_i", func(recv Value, args []Value) (Value, error) {
		return MakeNumber(math.Trunc(recv.(*Number).Value)), nil
	})
	t.Alias("truncate", "to_i")
	t.Alias("to_int", "to_i")

	t.RegisterFunc("abs", func(recv Value, args []Value) (Value, error) {
		return MakeNumber(math.Abs(recv.(*Number).Value)), nil
	})
	t.Alias("magnitude", "abs")

	t.RegisterFunc("next_float", func(recv Value, args []Value) (Value, error) {
		return MakeNumber(math.Nextafter(recv.(*Number).Value, math.Inf(1))), nil
	})
	t.RegisterFunc("prev_float", func(recv Value, args []Value) (Value, error) {
		return MakeNumber(math.Nextafter(recv.(*Number).Value, math.Inf(-1))), nil
	})

	t.RegisterFunc("ceil", func(recv Value, args []Value) (Value, error) {
		return MakeNumber(math.Ceil(recv.(*Number).Value)), nil
	})
	t.RegisterFunc("floor", func(recv Value, args []Value) (Value, error) {
		return MakeNumber(math.Floor(recv.(*Number).Value)), nil
	})

	t.RegisterFunc("round", func(recv Value, args []Value) (Value, error) {
		v := recv.(*Number).Value
		ndigits := 0.0
		if len(args) == 1 {
			n, err := asNumber(args[0])
			if err != nil {
				return nil, err
			}
			ndigits = n.Value
		} else if len(args) > 1 {
			return nil, &ArgumentError{Receiver: NumberType, Method: "round"}
		}
		if v == 0 {
			return recv, nil
		}
		if ndigits == 0 {
			return MakeNumber(math.Round(v)), nil
		}
		if ndigits > 0 {
			return MakeNumber(roundAwayFromZero(v, ndigits)), nil
		}
		return MakeNumber(math.Round(roundAwayFromZero(v, -ndigits))), nil
	})

	t.RegisterFunc("finite?", func(recv Value, args []Value) (Value, error) {
		return MakeBoolean(!math.IsInf(recv.(*Number).Value, 0) && !math.IsNaN(recv.(*Number).Value)), nil
	})
	t.RegisterFunc("infinite?", func(recv Value, args []Value) (Value, error) {
		v := recv.(*Number).Value
		if math.IsInf(v, 0) {
			if v < 0 {
				return MakeNumber(-1), nil
			}
			return MakeNumber(1), nil
		}
		return NilValue, nil
	})
	t.RegisterFunc("nan?", func(recv Value, args []Value) (Value, error) {
		return MakeBoolean(math.IsNaN(recv.(*Number).Value)), nil
	})
	t.RegisterFunc("zero?", func(recv Value, args []Value) (Value, error) {
		return MakeBoolean(recv.(*Number).Value == 0), nil
	})

	return t
}()
