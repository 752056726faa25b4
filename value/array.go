// ==============================================================================================
// FILE: value/array.go
// ==============================================================================================
// PACKAGE: value
// PURPOSE: The Array variant: an ordered, mutable sequence of Values, plus its method table
//          (indexing, mutation) layered on top of the shared Enumerable combinators.
// ==============================================================================================

package value

import (
	"strings"
)

type Array struct {
	Elements []Value
}

func NewArray(elements []Value) *Array {
	if elements == nil {
		elements = []Value{}
	}
	return &Array{Elements: elements}
}

func (a *Array) Type() Type { return ArrayType }
func (a *Array) ToS() string  { return a.Inspect() }
func (a *Array) Inspect() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Each invokes fn for each element, in order, stopping early if fn returns
// false (used by enumerable combinators for laziness, per §4.7).
func (a *Array) Each(fn func(Value) bool) {
	for _, e := range a.Elements {
		if !fn(e) {
			return
		}
	}
}

var arrayTable = func() *MethodTable {
	t := NewMethodTable(enumerableTable)
	t.RegisterFunc("length", func(recv Value, args []Value) (Value, error) {
		return MakeNumber(float64(len(recv.(*Array).Elements))), nil
	})
	t.Alias("size", "length")
	t.RegisterFunc("[]", func(recv Value, args []Value) (Value, error) {
		arr := recv.(*Array)
		if len(args) != 1 {
			return nil, &ArgumentError{Receiver: ArrayType, Method: "[]"}
		}
		idxNum, ok := args[0].(*Number)
		if !ok {
			return nil, &TypeError{Msg: "index must be a Number"}
		}
		idx := int(idxNum.Value)
		if idx < 0 {
			idx += len(arr.Elements)
		}
		if idx < 0 || idx >= len(arr.Elements) {
			return NilValue, nil
		}
		return arr.Elements[idx], nil
	})
	t.RegisterFunc("[]=", func(recv Value, args []Value) (Value, error) {
		arr := recv.(*Array)
		if len(args) != 2 {
			return nil, &ArgumentError{Receiver: ArrayType, Method: "[]="}
		}
		idxNum, ok := args[0].(*Number)
		if !ok {
			return nil, &TypeError{Msg: "index must be a Number"}
		}
		idx := int(idxNum.Value)
		if idx < 0 {
			idx += len(arr.Elements)
		}
		if idx < 0 {
			return nil, &IndexError{Index: idx}
		}
		for idx >= len(arr.Elements) {
			arr.Elements = append(arr.Elements, NilValue)
		}
		arr.Elements[idx] = args[1]
		return args[1], nil
	})
	t.RegisterFunc("push", func(recv Value, args []Value) (Value, error) {
		arr := recv.(*Array)
		arr.Elements = append(arr.Elements, args...)
		return arr, nil
	})
	t.Alias("<<", "push")
	t.RegisterFunc("first", func(recv Value, args []Value) (Value, error) {
		arr := recv.(*Array)
		if len(arr.Elements) == 0 {
			return NilValue, nil
		}
		return arr.Elements[0], nil
	})
	t.RegisterFunc("last", func(recv Value, args []Value) (Value, error) {
		arr := recv.(*Array)
		if len(arr.Elements) == 0 {
			return NilValue, nil
		}
		return arr.Elements[len(arr.Elements)-1], nil
	})
	t.RegisterFunc("empty?", func(recv Value, args []Value) (Value, error) {
		return MakeBoolean(len(recv.(*Array).Elements) == 0), nil
	})
	t.RegisterFunc("reverse", func(recv Value, args []Value) (Value, error) {
		arr := recv.(*Array)
		out := make([]Value, len(arr.Elements))
		for i, e := range arr.Elements {
			out[len(out)-1-i] = e
		}
		return NewArray(out), nil
	})
	t.RegisterFunc("join", func(recv Value, args []Value) (Value, error) {
		arr := recv.(*Array)
		sep := ""
		if len(args) == 1 {
			s, ok := args[0].(*String)
			if !ok {
				return nil, &TypeError{Msg: "join separator must be a String"}
			}
			sep = s.Value
		} else if len(args) > 1 {
			return nil, &ArgumentError{Receiver: ArrayType, Method: "join"}
		}
		parts := make([]string, len(arr.Elements))
		for i, e := range arr.Elements {
			parts[i] = e.ToS()
		}
		return MakeString(strings.Join(parts, sep)), nil
	})
	t.RegisterFunc("<=>", func(recv Value, args []Value) (Value, error) {
		if len(args) != 1 {
			return nil, &ArgumentError{Receiver: ArrayType, Method: "<=>"}
		}
		c, ok := Compare(recv, args[0])
		if !ok {
			return NilValue, nil
		}
		return MakeNumber(float64(c)), nil
	})
	return t
}()
