// ==============================================================================================
// FILE: value/enumerable.go
// ==============================================================================================
// PACKAGE: value
// PURPOSE: The Enumerable combinators of §4.7 (all?, any?, none?, map, select, reject,
//          reduce/inject, find, to_a, to_h, count, min, max, sort, sort_by, group_by, include?,
//          each_with_index, with_index), default-implemented once in terms of Enumerate and
//          shared as a base layer by arrayTable, hashTable, and enumeratorTable.
// ==============================================================================================

package value

// blockFrom extracts a trailing Proc block from args, if the last element
// is one, per §4.1's "callers distinguish this by inspecting the last
// argument" dispatch contract.
func blockFrom(args []Value) (*Proc, []Value) {
	if len(args) == 0 {
		return nil, args
	}
	if p, ok := args[len(args)-1].(*Proc); ok {
		return p, args[:len(args)-1]
	}
	return nil, args
}

var enumerableTable = func() *MethodTable {
	t := NewMethodTable(baseTable)

	t.RegisterFunc("each", func(recv Value, args []Value) (Value, error) {
		block, _ := blockFrom(args)
		if block == nil {
			return NewEnumerator(recv, "each"), nil
		}
		var callErr error
		err := Enumerate(recv, func(a []Value) bool {
			_, callErr = block.Invoke(a)
			return callErr == nil
		})
		if callErr != nil {
			return nil, callErr
		}
		if err != nil {
			return nil, err
		}
		return recv, nil
	})

	t.RegisterFunc("each_with_index", func(recv Value, args []Value) (Value, error) {
		block, _ := blockFrom(args)
		if block == nil {
			return &Enumerator{Forward: NewEnumerator(recv, "each"), Selector: "with_index"}, nil
		}
		idx := 0
		var callErr error
		err := Enumerate(recv, func(a []Value) bool {
			callArgs := append(append([]Value{}, a...), MakeNumber(float64(idx)))
			idx++
			_, callErr = block.Invoke(callArgs)
			return callErr == nil
		})
		if callErr != nil {
			return nil, callErr
		}
		if err != nil {
			return nil, err
		}
		return recv, nil
	})

	t.RegisterFunc("with_index", func(recv Value, args []Value) (Value, error) {
		prefix := args
		block, rest := blockFrom(args)
		if block == nil {
			base, isEnum := recv.(*Enumerator)
			if !isEnum {
				base = NewEnumerator(recv, "each")
			}
			return &Enumerator{Forward: base, Selector: "with_index", Prefix: prefix}, nil
		}
		start := 0
		if len(rest) == 1 {
			if n, ok := rest[0].(*Number); ok {
				start = int(n.Value)
			}
		}
		idx := start
		var callErr error
		err := Enumerate(recv, func(a []Value) bool {
			callArgs := append(append([]Value{}, a...), MakeNumber(float64(idx)))
			idx++
			_, callErr = block.Invoke(callArgs)
			return callErr == nil
		})
		if callErr != nil {
			return nil, callErr
		}
		if err != nil {
			return nil, err
		}
		return recv, nil
	})

	t.RegisterFunc("all?", func(recv Value, args []Value) (Value, error) {
		block, _ := blockFrom(args)
		result := true
		var callErr error
		err := Enumerate(recv, func(a []Value) bool {
			v := single(a)
			ok := Truthy(v)
			if block != nil {
				var bv Value
				bv, callErr = block.Invoke([]Value{v})
				if callErr != nil {
					return false
				}
				ok = Truthy(bv)
			}
			if !ok {
				result = false
				return false
			}
			return true
		})
		if callErr != nil {
			return nil, callErr
		}
		if err != nil {
			return nil, err
		}
		return MakeBoolean(result), nil
	})

	t.RegisterFunc("any?", func(recv Value, args []Value) (Value, error) {
		block, _ := blockFrom(args)
		result := false
		var callErr error
		err := Enumerate(recv, func(a []Value) bool {
			v := single(a)
			ok := Truthy(v)
			if block != nil {
				var bv Value
				bv, callErr = block.Invoke([]Value{v})
				if callErr != nil {
					return false
				}
				ok = Truthy(bv)
			}
			if ok {
				result = true
				return false
			}
			return true
		})
		if callErr != nil {
			return nil, callErr
		}
		if err != nil {
			return nil, err
		}
		return MakeBoolean(result), nil
	})

	t.RegisterFunc("none?", func(recv Value, args []Value) (Value, error) {
		anyRes, err := t.local["any?"](recv, args)
		if err != nil {
			return nil, err
		}
		return MakeBoolean(!anyRes.(*Boolean).Value), nil
	})

	t.RegisterFunc("map", func(recv Value, args []Value) (Value, error) {
		block, _ := blockFrom(args)
		if block == nil {
			return nil, &ArgumentError{Receiver: recv.Type(), Method: "map", Msg: "map requires a block"}
		}
		out := []Value{}
		var callErr error
		err := Enumerate(recv, func(a []Value) bool {
			var v Value
			v, callErr = block.Invoke([]Value{single(a)})
			if callErr != nil {
				return false
			}
			out = append(out, v)
			return true
		})
		if callErr != nil {
			return nil, callErr
		}
		if err != nil {
			return nil, err
		}
		return NewArray(out), nil
	})
	t.Alias("collect", "map")

	t.RegisterFunc("select", func(recv Value, args []Value) (Value, error) {
		block, _ := blockFrom(args)
		if block == nil {
			return nil, &ArgumentError{Receiver: recv.Type(), Method: "select", Msg: "select requires a block"}
		}
		out := []Value{}
		var callErr error
		err := Enumerate(recv, func(a []Value) bool {
			v := single(a)
			var bv Value
			bv, callErr = block.Invoke([]Value{v})
			if callErr != nil {
				return false
			}
			if Truthy(bv) {
				out = append(out, v)
			}
			return true
		})
		if callErr != nil {
			return nil, callErr
		}
		if err != nil {
			return nil, err
		}
		return NewArray(out), nil
	})
	t.Alias("filter", "select")

	t.RegisterFunc("reject", func(recv Value, args []Value) (Value, error) {
		block, _ := blockFrom(args)
		if block == nil {
			return nil, &ArgumentError{Receiver: recv.Type(), Method: "reject", Msg: "reject requires a block"}
		}
		out := []Value{}
		var callErr error
		err := Enumerate(recv, func(a []Value) bool {
			v := single(a)
			var bv Value
			bv, callErr = block.Invoke([]Value{v})
			if callErr != nil {
				return false
			}
			if !Truthy(bv) {
				out = append(out, v)
			}
			return true
		})
		if callErr != nil {
			return nil, callErr
		}
		if err != nil {
			return nil, err
		}
		return NewArray(out), nil
	})

	t.RegisterFunc("find", func(recv Value, args []Value) (Value, error) {
		block, _ := blockFrom(args)
		if block == nil {
			return nil, &ArgumentError{Receiver: recv.Type(), Method: "find", Msg: "find requires a block"}
		}
		var result Value = NilValue
		var callErr error
		err := Enumerate(recv, func(a []Value) bool {
			v := single(a)
			var bv Value
			bv, callErr = block.Invoke([]Value{v})
			if callErr != nil {
				return false
			}
			if Truthy(bv) {
				result = v
				return false
			}
			return true
		})
		if callErr != nil {
			return nil, callErr
		}
		if err != nil {
			return nil, err
		}
		return result, nil
	})
	t.Alias("detect", "find")

	t.RegisterFunc("include?", func(recv Value, args []Value) (Value, error) {
		if len(args) != 1 {
			return nil, &ArgumentError{Receiver: recv.Type(), Method: "include?"}
		}
		target := args[0]
		found := false
		err := Enumerate(recv, func(a []Value) bool {
			if Equals(single(a), target) {
				found = true
				return false
			}
			return true
		})
		if err != nil {
			return nil, err
		}
		return MakeBoolean(found), nil
	})
	t.Alias("member?", "include?")

	t.RegisterFunc("count", func(recv Value, args []Value) (Value, error) {
		block, _ := blockFrom(args)
		n := 0
		var callErr error
		err := Enumerate(recv, func(a []Value) bool {
			if block == nil {
				n++
				return true
			}
			var bv Value
			bv, callErr = block.Invoke([]Value{single(a)})
			if callErr != nil {
				return false
			}
			if Truthy(bv) {
				n++
			}
			return true
		})
		if callErr != nil {
			return nil, callErr
		}
		if err != nil {
			return nil, err
		}
		return MakeNumber(float64(n)), nil
	})

	t.RegisterFunc("reduce", func(recv Value, args []Value) (Value, error) {
		block, rest := blockFrom(args)
		if block == nil {
			return nil, &ArgumentError{Receiver: recv.Type(), Method: "reduce", Msg: "reduce requires a block"}
		}
		var acc Value
		haveAcc := false
		if len(rest) == 1 {
			acc = rest[0]
			haveAcc = true
		} else if len(rest) > 1 {
			return nil, &ArgumentError{Receiver: recv.Type(), Method: "reduce"}
		}
		var callErr error
		err := Enumerate(recv, func(a []Value) bool {
			v := single(a)
			if !haveAcc {
				acc = v
				haveAcc = true
				return true
			}
			acc, callErr = block.Invoke([]Value{acc, v})
			return callErr == nil
		})
		if callErr != nil {
			return nil, callErr
		}
		if err != nil {
			return nil, err
		}
		if !haveAcc {
			return NilValue, nil
		}
		return acc, nil
	})
	t.Alias("inject", "reduce")

	t.RegisterFunc("to_a", func(recv Value, args []Value) (Value, error) {
		out := []Value{}
		err := Enumerate(recv, func(a []Value) bool {
			out = append(out, single(a))
			return true
		})
		if err != nil {
			return nil, err
		}
		return NewArray(out), nil
	})

	t.RegisterFunc("to_h", func(recv Value, args []Value) (Value, error) {
		h := NewHash()
		var opErr error
		err := Enumerate(recv, func(a []Value) bool {
			pair := single(a)
			arr, ok := pair.(*Array)
			if !ok {
				opErr = &TypeError{Msg: "to_h element must be a 2-element array"}
				return false
			}
			if len(arr.Elements) != 2 {
				opErr = &ArgumentError{Receiver: recv.Type(), Method: "to_h", Msg: "to_h element must have exactly 2 elements"}
				return false
			}
			h.Set(arr.Elements[0], arr.Elements[1])
			return true
		})
		if opErr != nil {
			return nil, opErr
		}
		if err != nil {
			return nil, err
		}
		return h, nil
	})

	t.RegisterFunc("min", func(recv Value, args []Value) (Value, error) {
		var best Value
		var opErr error
		err := Enumerate(recv, func(a []Value) bool {
			v := single(a)
			if best == nil {
				best = v
				return true
			}
			c, ok := Compare(v, best)
			if !ok {
				opErr = &TypeError{Msg: "comparison failed"}
				return false
			}
			if c < 0 {
				best = v
			}
			return true
		})
		if opErr != nil {
			return nil, opErr
		}
		if err != nil {
			return nil, err
		}
		if best == nil {
			return NilValue, nil
		}
		return best, nil
	})

	t.RegisterFunc("max", func(recv Value, args []Value) (Value, error) {
		var best Value
		var opErr error
		err := Enumerate(recv, func(a []Value) bool {
			v := single(a)
			if best == nil {
				best = v
				return true
			}
			c, ok := Compare(v, best)
			if !ok {
				opErr = &TypeError{Msg: "comparison failed"}
				return false
			}
			if c > 0 {
				best = v
			}
			return true
		})
		if opErr != nil {
			return nil, opErr
		}
		if err != nil {
			return nil, err
		}
		if best == nil {
			return NilValue, nil
		}
		return best, nil
	})

	t.RegisterFunc("sort", func(recv Value, args []Value) (Value, error) {
		block, _ := blockFrom(args)
		elems, err := collect(recv)
		if err != nil {
			return nil, err
		}
		var sortErr error
		sortSlice(elems, func(a, b Value) bool {
			if sortErr != nil {
				return false
			}
			if block != nil {
				r, err := block.Invoke([]Value{a, b})
				if err != nil {
					sortErr = err
					return false
				}
				n, ok := r.(*Number)
				if !ok {
					sortErr = &TypeError{Msg: "sort block must return a Number"}
					return false
				}
				return n.Value < 0
			}
			c, ok := Compare(a, b)
			if !ok {
				sortErr = &TypeError{Msg: "comparison failed"}
				return false
			}
			return c < 0
		})
		if sortErr != nil {
			return nil, sortErr
		}
		return NewArray(elems), nil
	})

	t.RegisterFunc("sort_by", func(recv Value, args []Value) (Value, error) {
		block, _ := blockFrom(args)
		if block == nil {
			return nil, &ArgumentError{Receiver: recv.Type(), Method: "sort_by", Msg: "sort_by requires a block"}
		}
		elems, err := collect(recv)
		if err != nil {
			return nil, err
		}
		keys := make([]Value, len(elems))
		for i, e := range elems {
			k, err := block.Invoke([]Value{e})
			if err != nil {
				return nil, err
			}
			keys[i] = k
		}
		var sortErr error
		idx := make([]int, len(elems))
		for i := range idx {
			idx[i] = i
		}
		sortIndices(idx, func(i, j int) bool {
			if sortErr != nil {
				return false
			}
			c, ok := Compare(keys[i], keys[j])
			if !ok {
				sortErr = &TypeError{Msg: "comparison failed"}
				return false
			}
			return c < 0
		})
		if sortErr != nil {
			return nil, sortErr
		}
		out := make([]Value, len(elems))
		for i, j := range idx {
			out[i] = elems[j]
		}
		return NewArray(out), nil
	})

	t.RegisterFunc("group_by", func(recv Value, args []Value) (Value, error) {
		block, _ := blockFrom(args)
		if block == nil {
			return nil, &ArgumentError{Receiver: recv.Type(), Method: "group_by", Msg: "group_by requires a block"}
		}
		h := NewHash()
		var callErr error
		err := Enumerate(recv, func(a []Value) bool {
			v := single(a)
			var key Value
			key, callErr = block.Invoke([]Value{v})
			if callErr != nil {
				return false
			}
			existing, ok := h.Get(key)
			var arr *Array
			if ok {
				arr = existing.(*Array)
			} else {
				arr = NewArray(nil)
			}
			arr.Elements = append(arr.Elements, v)
			h.Set(key, arr)
			return true
		})
		if callErr != nil {
			return nil, callErr
		}
		if err != nil {
			return nil, err
		}
		return h, nil
	})

	t.RegisterFunc("first", func(recv Value, args []Value) (Value, error) {
		var result Value = NilValue
		err := Enumerate(recv, func(a []Value) bool {
			result = single(a)
			return false
		})
		if err != nil {
			return nil, err
		}
		return result, nil
	})

	return t
}()

// collect materializes every element Enumerate would yield, single-valued,
// for combinators (sort, sort_by) that inherently need all elements at once.
func collect(recv Value) ([]Value, error) {
	out := []Value{}
	err := Enumerate(recv, func(a []Value) bool {
		out = append(out, single(a))
		return true
	})
	return out, err
}

// sortSlice is a small insertion sort sufficient for template-scale arrays,
// using less(a, b) as the strict less-than predicate.
func sortSlice(elems []Value, less func(a, b Value) bool) {
	for i := 1; i < len(elems); i++ {
		for j := i; j > 0 && less(elems[j], elems[j-1]); j-- {
			elems[j], elems[j-1] = elems[j-1], elems[j]
		}
	}
}

func sortIndices(idx []int, less func(i, j int) bool) {
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0 && less(idx[j], idx[j-1]); j-- {
			idx[j], idx[j-1] = idx[j-1], idx[j]
		}
	}
}
