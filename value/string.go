// ==============================================================================================
// FILE: value/string.go
// ==============================================================================================
// PACKAGE: value
// PURPOSE: String's method table: concatenation, repetition, case conversion, splitting, and
//          the each_char Enumerable entry point.
// ==============================================================================================

package value

import (
	"strconv"
	"strings"
)

var stringTable = func() *MethodTable {
	t := NewMethodTable(baseTable)

	t.RegisterFunc("+", func(recv Value, args []Value) (Value, error) {
		if len(args) != 1 {
			return nil, &ArgumentError{Receiver: StringType, Method: "+"}
		}
		rhs, ok := args[0].(*String)
		if !ok {
			return nil, &TypeError{Msg: "String can only be concatenated with a String"}
		}
		return MakeString(recv.(*String).Value + rhs.Value), nil
	})
	t.RegisterFunc("*", func(recv Value, args []Value) (Value, error) {
		if len(args) != 1 {
			return nil, &ArgumentError{Receiver: StringType, Method: "*"}
		}
		n, ok := args[0].(*Number)
		if !ok {
			return nil, &TypeError{Msg: "String can only be repeated by a Number"}
		}
		if n.Value < 0 {
			return nil, &ArgumentError{Receiver: StringType, Method: "*", Msg: "negative repeat count"}
		}
		return MakeString(strings.Repeat(recv.(*String).Value, int(n.Value))), nil
	})

	t.RegisterFunc("length", func(recv Value, args []Value) (Value, error) {
		return MakeNumber(float64(len([]rune(recv.(*String).Value)))), nil
	})
	t.Alias("size", "length")

	t.RegisterFunc("upcase", func(recv Value, args []Value) (Value, error) {
		return MakeString(strings.ToUpper(recv.(*String).Value)), nil
	})
	t.RegisterFunc("downcase", func(recv Value, args []Value) (Value, error) {
		return MakeString(strings.ToLower(recv.(*String).Value)), nil
	})
	t.RegisterFunc("strip", func(recv Value, args []Value) (Value, error) {
		return MakeString(strings.TrimSpace(recv.(*String).Value)), nil
	})
	t.RegisterFunc("empty?", func(recv Value, args []Value) (Value, error) {
		return MakeBoolean(recv.(*String).Value == ""), nil
	})
	t.RegisterFunc("reverse", func(recv Value, args []Value) (Value, error) {
		r := []rune(recv.(*String).Value)
		for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
			r[i], r[j] = r[j], r[i]
		}
		return MakeString(string(r)), nil
	})

	t.RegisterFunc("split", func(recv Value, args []Value) (Value, error) {
		s := recv.(*String).Value
		sep := ""
		if len(args) == 1 {
			sepStr, ok := args[0].(*String)
			if !ok {
				return nil, &TypeError{Msg: "split separator must be a String"}
			}
			sep = sepStr.Value
		} else if len(args) > 1 {
			return nil, &ArgumentError{Receiver: StringType, Method: "split"}
		}
		var parts []string
		if sep == "" {
			parts = strings.Fields(s)
		} else {
			parts = strings.Split(s, sep)
		}
		out := make([]Value, len(parts))
		for i, p := range parts {
			out[i] = MakeString(p)
		}
		return NewArray(out), nil
	})

	t.RegisterFunc("[]", func(recv Value, args []Value) (Value, error) {
		r := []rune(recv.(*String).Value)
		if len(args) != 1 {
			return nil, &ArgumentError{Receiver: StringType, Method: "[]"}
		}
		n, ok := args[0].(*Number)
		if !ok {
			return nil, &TypeError{Msg: "String index must be a Number"}
		}
		idx := int(n.Value)
		if idx < 0 {
			idx += len(r)
		}
		if idx < 0 || idx >= len(r) {
			return NilValue, nil
		}
		return MakeString(string(r[idx])), nil
	})

	t.RegisterFunc("to_i", func(recv Value, args []Value) (Value, error) {
		s := strings.TrimSpace(recv.(*String).Value)
		var digits strings.Builder
		for i, r := range s {
			if r == '-' && i == 0 {
				digits.WriteRune(r)
				continue
			}
			if r < '0' || r > '9' {
				break
			}
			digits.WriteRune(r)
		}
		n, _ := strconv.ParseInt(digits.String(), 10, 64)
		return MakeNumber(float64(n)), nil
	})

	t.RegisterFunc("to_f", func(recv Value, args []Value) (Value, error) {
		s := strings.TrimSpace(recv.(*String).Value)
		end := 0
		seenDot := false
		for i, r := range s {
			if r == '-' && i == 0 {
				end = i + 1
				continue
			}
			if r == '.' && !seenDot {
				seenDot = true
				end = i + 1
				continue
			}
			if r < '0' || r > '9' {
				break
			}
			end = i + 1
		}
		n, _ := strconv.ParseFloat(s[:end], 64)
		return MakeNumber(n), nil
	})

	t.RegisterFunc("to_s", func(recv Value, args []Value) (Value, error) { return recv, nil })

	t.RegisterFunc("<=>", func(recv Value, args []Value) (Value, error) {
		if len(args) != 1 {
			return nil, &ArgumentError{Receiver: StringType, Method: "<=>"}
		}
		c, ok := Compare(recv, args[0])
		if !ok {
			return NilValue, nil
		}
		return MakeNumber(float64(c)), nil
	})

	t.RegisterFunc("each_char", func(recv Value, args []Value) (Value, error) {
		block, _ := blockFrom(args)
		s := recv.(*String)
		if block == nil {
			return NewEnumerator(s, "each_char"), nil
		}
		for _, r := range s.Value {
			if _, err := block.Invoke([]Value{MakeString(string(r))}); err != nil {
				return nil, err
			}
		}
		return recv, nil
	})

	return t
}()
