// ==============================================================================================
// FILE: value/base.go
// ==============================================================================================
// PACKAGE: value
// PURPOSE: The universal base table every per-variant table extends, plus the structural
//          equality and three-way comparison helpers used throughout §4.1.
// ==============================================================================================

package value

// baseTable holds methods common to every value: equality, inspection,
// truthiness-flavored predicates. Every other table is built with this
// (or a table descending from it) as its base layer.
var baseTable = func() *MethodTable {
	t := NewMethodTable(nil)
	t.RegisterFunc("==", func(recv Value, args []Value) (Value, error) {
		if len(args) != 1 {
			return nil, &ArgumentError{Receiver: recv.Type(), Method: "=="}
		}
		return MakeBoolean(Equals(recv, args[0])), nil
	})
	t.RegisterFunc("!=", func(recv Value, args []Value) (Value, error) {
		if len(args) != 1 {
			return nil, &ArgumentError{Receiver: recv.Type(), Method: "!="}
		}
		return MakeBoolean(!Equals(recv, args[0])), nil
	})
	t.RegisterFunc("inspect", func(recv Value, args []Value) (Value, error) {
		return MakeString(recv.Inspect()), nil
	})
	t.RegisterFunc("to_s", func(recv Value, args []Value) (Value, error) {
		return MakeString(recv.ToS()), nil
	})
	t.RegisterFunc("nil?", func(recv Value, args []Value) (Value, error) {
		_, isNil := recv.(*Nil)
		return MakeBoolean(isNil), nil
	})
	return t
}()

var nilTable = func() *MethodTable {
	t := NewMethodTable(baseTable)
	t.RegisterFunc("to_a", func(recv Value, args []Value) (Value, error) {
		return NewArray(nil), nil
	})
	return t
}()

var booleanTable = func() *MethodTable {
	t := NewMethodTable(baseTable)
	t.RegisterFunc("!", func(recv Value, args []Value) (Value, error) {
		return MakeBoolean(!recv.(*Boolean).Value), nil
	})
	return t
}()

var symbolTable = func() *MethodTable {
	t := NewMethodTable(baseTable)
	t.RegisterFunc("to_s", func(recv Value, args []Value) (Value, error) {
		return MakeString(recv.(*Symbol).Name), nil
	})
	t.RegisterFunc("to_sym", func(recv Value, args []Value) (Value, error) {
		return recv, nil
	})
	return t
}()

// Equals implements the structural equality of §4.1: numeric for
// Number-Number, code-point-wise for String, identity for Symbol/Boolean/
// Nil, recursive structural comparison for Array/Hash.
func Equals(a, b Value) bool {
	switch av := a.(type) {
	case *Nil:
		_, ok := b.(*Nil)
		return ok
	case *Boolean:
		bv, ok := b.(*Boolean)
		return ok && av.Value == bv.Value
	case *Number:
		bv, ok := b.(*Number)
		return ok && av.Value == bv.Value
	case *String:
		bv, ok := b.(*String)
		return ok && av.Value == bv.Value
	case *Symbol:
		bv, ok := b.(*Symbol)
		return ok && av == bv
	case *Array:
		bv, ok := b.(*Array)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equals(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Hash:
		bv, ok := b.(*Hash)
		if !ok || len(av.keys) != len(bv.keys) {
			return false
		}
		for _, k := range av.keys {
			otherVal, ok := bv.get(av.hashKeyFor(k))
			if !ok || !Equals(av.mustGet(k), otherVal) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

// Compare implements the three-way ordering of §4.1 for ordered types
// (Number, String, Array lexicographic); other pairs are unordered and
// report ok=false so callers can raise a TypeError/NoMethodError.
func Compare(a, b Value) (result int, ok bool) {
	switch av := a.(type) {
	case *Number:
		bv, isNum := b.(*Number)
		if !isNum {
			return 0, false
		}
		switch {
		case av.Value < bv.Value:
			return -1, true
		case av.Value > bv.Value:
			return 1, true
		default:
			return 0, true
		}
	case *String:
		bv, isStr := b.(*String)
		if !isStr {
			return 0, false
		}
		switch {
		case av.Value < bv.Value:
			return -1, true
		case av.Value > bv.Value:
			return 1, true
		default:
			return 0, true
		}
	case *Array:
		bv, isArr := b.(*Array)
		if !isArr {
			return 0, false
		}
		n := len(av.Elements)
		if len(bv.Elements) < n {
			n = len(bv.Elements)
		}
		for i := 0; i < n; i++ {
			c, ok := Compare(av.Elements[i], bv.Elements[i])
			if !ok {
				return 0, false
			}
			if c != 0 {
				return c, true
			}
		}
		switch {
		case len(av.Elements) < len(bv.Elements):
			return -1, true
		case len(av.Elements) > len(bv.Elements):
			return 1, true
		default:
			return 0, true
		}
	default:
		return 0, false
	}
}
