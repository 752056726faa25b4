// ==============================================================================================
// FILE: value/hash.go
// ==============================================================================================
// PACKAGE: value
// PURPOSE: The Hash variant: an insertion-ordered mapping from Value to Value. Keys are compared
//          by value equality (content-hashed for String/Symbol/Number/Boolean/Nil, recursively
//          for Array/Hash-valued keys), per §3.
// ==============================================================================================

package value

import "strings"

// Hash preserves insertion order: reassigning an existing key updates its
// value in place without moving it, per §3's invariant.
type Hash struct {
	keys   []Value
	values map[string]Value
	index  map[string]int // hashKey -> position in keys, for reassignment-in-place
}

func NewHash() *Hash {
	return &Hash{values: make(map[string]Value), index: make(map[string]int)}
}

func (h *Hash) Type() Type { return HashType }
func (h *Hash) ToS() string  { return h.Inspect() }
func (h *Hash) Inspect() string {
	parts := make([]string, 0, len(h.keys))
	for _, k := range h.keys {
		v, _ := h.get(h.hashKeyFor(k))
		parts = append(parts, k.Inspect()+" => "+v.Inspect())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// hashKeyFor computes the content hash key for v, per §3: Number/String/
// Symbol/Boolean/Nil hash by content; Array/Hash hash recursively; any
// other value is keyed by its to_s text, so two distinct values with the
// same to_s (e.g. two Procs) share one key.
func (h *Hash) hashKeyFor(v Value) string {
	switch vv := v.(type) {
	case *Nil:
		return "nil:"
	case *Boolean:
		if vv.Value {
			return "bool:true"
		}
		return "bool:false"
	case *Number:
		return "num:" + MakeNumber(vv.Value).Inspect()
	case *String:
		return "str:" + vv.Value
	case *Symbol:
		return "sym:" + vv.Name
	case *Array:
		parts := make([]string, len(vv.Elements))
		for i, e := range vv.Elements {
			parts[i] = h.hashKeyFor(e)
		}
		return "arr:[" + strings.Join(parts, ",") + "]"
	case *Hash:
		parts := make([]string, 0, len(vv.keys))
		for _, k := range vv.keys {
			sub, _ := vv.get(vv.hashKeyFor(k))
			parts = append(parts, h.hashKeyFor(k)+"="+h.hashKeyFor(sub))
		}
		return "hash:{" + strings.Join(parts, ",") + "}"
	default:
		return "obj:" + v.ToS()
	}
}

func (h *Hash) get(hk string) (Value, bool) {
	v, ok := h.values[hk]
	return v, ok
}

func (h *Hash) mustGet(key Value) Value {
	v, _ := h.get(h.hashKeyFor(key))
	return v
}

// Set assigns value under key, preserving key's existing position if
// already present.
func (h *Hash) Set(key, val Value) {
	hk := h.hashKeyFor(key)
	if _, exists := h.values[hk]; !exists {
		h.index[hk] = len(h.keys)
		h.keys = append(h.keys, key)
	}
	h.values[hk] = val
}

// Get returns the value bound to key, or (nil, false) if absent.
func (h *Hash) Get(key Value) (Value, bool) {
	return h.get(h.hashKeyFor(key))
}

// Keys returns the keys in insertion order.
func (h *Hash) Keys() []Value { return h.keys }

// Len reports the number of entries.
func (h *Hash) Len() int { return len(h.keys) }

// Each invokes fn with (key, value) pairs in insertion order, stopping
// early if fn returns false.
func (h *Hash) Each(fn func(k, v Value) bool) {
	for _, k := range h.keys {
		v, _ := h.get(h.hashKeyFor(k))
		if !fn(k, v) {
			return
		}
	}
}

var hashTable = func() *MethodTable {
	t := NewMethodTable(enumerableTable)
	t.RegisterFunc("[]", func(recv Value, args []Value) (Value, error) {
		if len(args) != 1 {
			return nil, &ArgumentError{Receiver: HashType, Method: "[]"}
		}
		v, ok := recv.(*Hash).Get(args[0])
		if !ok {
			return NilValue, nil
		}
		return v, nil
	})
	t.RegisterFunc("[]=", func(recv Value, args []Value) (Value, error) {
		if len(args) != 2 {
			return nil, &ArgumentError{Receiver: HashType, Method: "[]="}
		}
		recv.(*Hash).Set(args[0], args[1])
		return args[1], nil
	})
	t.RegisterFunc("length", func(recv Value, args []Value) (Value, error) {
		return MakeNumber(float64(recv.(*Hash).Len())), nil
	})
	t.Alias("size", "length")
	t.RegisterFunc("keys", func(recv Value, args []Value) (Value, error) {
		return NewArray(append([]Value{}, recv.(*Hash).Keys()...)), nil
	})
	t.RegisterFunc("values", func(recv Value, args []Value) (Value, error) {
		h := recv.(*Hash)
		out := make([]Value, 0, h.Len())
		h.Each(func(k, v Value) bool { out = append(out, v); return true })
		return NewArray(out), nil
	})
	t.RegisterFunc("include?", func(recv Value, args []Value) (Value, error) {
		if len(args) != 1 {
			return nil, &ArgumentError{Receiver: HashType, Method: "include?"}
		}
		_, ok := recv.(*Hash).Get(args[0])
		return MakeBoolean(ok), nil
	})
	t.Alias("key?", "include?")
	t.Alias("has_key?", "include?")
	t.RegisterFunc("empty?", func(recv Value, args []Value) (Value, error) {
		return MakeBoolean(recv.(*Hash).Len() == 0), nil
	})
	return t
}()
