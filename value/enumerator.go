// ==============================================================================================
// FILE: value/enumerator.go
// ==============================================================================================
// PACKAGE: value
// PURPOSE: Enumerator, the deferred-iteration value of §4.7. Rather than materializing an
//          intermediate array, it remembers a receiver, a method selector, any bound prefix
//          arguments, and optionally a forwarding target, and only performs work once a consumer
//          (each, with a block; or a combinator built on top of it) asks for elements.
// ==============================================================================================

package value

import "errors"

// Enumerator holds enough state to replay a deferred `each` call, collapsing
// the source's MethodEnumerator ("bound to a concrete receiver/selector")
// and FunctionEnumerator ("bound to a free function") split into one
// struct: a free function is just a Receiver/Selector pair over a closure
// value when needed, so no second struct is required in Go.
type Enumerator struct {
	Receiver Value
	Selector string
	Prefix   []Value
	Forward  *Enumerator
}

func NewEnumerator(receiver Value, selector string, prefix ...Value) *Enumerator {
	return &Enumerator{Receiver: receiver, Selector: selector, Prefix: prefix}
}

func (e *Enumerator) Type() Type      { return EnumeratorType }
func (e *Enumerator) ToS() string      { return "#<Enumerator>" }
func (e *Enumerator) Inspect() string { return "#<Enumerator>" }

// enumerate replays the deferred call, invoking yield once per produced
// tuple of values. It stops issuing further work once yield returns false,
// satisfying the early-termination requirement of §4.7 for any?/all?/
// find/include?.
func (e *Enumerator) enumerate(yield func(args []Value) bool) error {
	if e.Forward != nil {
		switch e.Selector {
		case "with_index", "each_with_index":
			idx := 0
			if len(e.Prefix) == 1 {
				if n, ok := e.Prefix[0].(*Number); ok {
					idx = int(n.Value)
				}
			}
			return e.Forward.enumerate(func(args []Value) bool {
				out := append(append([]Value{}, args...), MakeNumber(float64(idx)))
				idx++
				return yield(out)
			})
		default:
			return e.Forward.enumerate(yield)
		}
	}

	proc := &Proc{Invoke: func(args []Value) (Value, error) {
		if !yield(args) {
			// Fails the block so the underlying method ends its loop.
			return nil, errStopEnumeration
		}
		return NilValue, nil
	}}
	callArgs := append(append([]Value{}, e.Prefix...), Value(proc))
	_, err := Dispatch(e.Receiver, e.Selector, callArgs)
	if err == errStopEnumeration {
		return nil
	}
	return err
}

var errStopEnumeration = errors.New("enumeration stopped")

// Enumerate iterates recv, which may be an Array, Hash, Enumerator, or any
// ViewModel/value exposing its own `each` method, invoking yield with the
// tuple of values produced per step (a single element for Array; a
// [key, value] pair for Hash; whatever the underlying `each` yields to its
// block otherwise). It stops once yield returns false.
func Enumerate(recv Value, yield func(args []Value) bool) error {
	switch v := recv.(type) {
	case *Array:
		for _, e := range v.Elements {
			if !yield([]Value{e}) {
				return nil
			}
		}
		return nil
	case *Hash:
		for _, k := range v.keys {
			val, _ := v.get(v.hashKeyFor(k))
			if !yield([]Value{k, val}) {
				return nil
			}
		}
		return nil
	case *Enumerator:
		return v.enumerate(yield)
	default:
		stopped := false
		proc := &Proc{Invoke: func(args []Value) (Value, error) {
			if !stopped && !yield(args) {
				stopped = true
			}
			return NilValue, nil
		}}
		_, err := Dispatch(recv, "each", []Value{proc})
		return err
	}
}

// single collapses a yielded tuple to the value a block parameter list of
// arity 1 would see: the lone value, or an Array wrapping multiple values.
func single(args []Value) Value {
	if len(args) == 1 {
		return args[0]
	}
	return NewArray(append([]Value{}, args...))
}

var enumeratorTable = func() *MethodTable {
	t := NewMethodTable(enumerableTable)
	return t
}()
