// ==============================================================================================
// FILE: value/enumerator_test.go
// ==============================================================================================

package value

import "testing"

func TestEnumerateArray(t *testing.T) {
	a := numArr(1, 2, 3)
	var seen []float64
	err := Enumerate(a, func(args []Value) bool {
		seen = append(seen, args[0].(*Number).Value)
		return true
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seen) != 3 || seen[0] != 1 || seen[2] != 3 {
		t.Errorf("Enumerate(array) visited %v, want [1 2 3]", seen)
	}
}

func TestEnumerateHashYieldsKeyValuePairs(t *testing.T) {
	h := NewHash()
	h.Set(MakeString("a"), MakeNumber(1))
	h.Set(MakeString("b"), MakeNumber(2))

	var pairs [][2]Value
	err := Enumerate(h, func(args []Value) bool {
		pairs = append(pairs, [2]Value{args[0], args[1]})
		return true
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	if pairs[0][0].(*String).Value != "a" || pairs[0][1].(*Number).Value != 1 {
		t.Errorf("first pair = %v, want [a, 1]", pairs[0])
	}
}

func TestEnumerateStopsEarly(t *testing.T) {
	a := numArr(1, 2, 3, 4, 5)
	count := 0
	err := Enumerate(a, func(args []Value) bool {
		count++
		return count < 2
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("Enumerate should stop once yield returns false, visited %d elements", count)
	}
}

func TestNewEnumeratorDeferredEach(t *testing.T) {
	a := numArr(10, 20)
	e := NewEnumerator(a, "each")
	var seen []float64
	err := Enumerate(e, func(args []Value) bool {
		seen = append(seen, args[0].(*Number).Value)
		return true
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seen) != 2 || seen[0] != 10 {
		t.Errorf("Enumerate(Enumerator) visited %v, want [10 20]", seen)
	}
}

func TestEnumeratorWithIndexForward(t *testing.T) {
	a := NewArray([]Value{MakeString("x"), MakeString("y")})
	base := NewEnumerator(a, "each")
	wrapped := &Enumerator{Forward: base, Selector: "with_index"}

	var indices []float64
	err := Enumerate(wrapped, func(args []Value) bool {
		indices = append(indices, args[len(args)-1].(*Number).Value)
		return true
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(indices) != 2 || indices[0] != 0 || indices[1] != 1 {
		t.Errorf("with_index indices = %v, want [0 1]", indices)
	}
}

func TestEnumeratorWithIndexCustomStart(t *testing.T) {
	a := NewArray([]Value{MakeString("x"), MakeString("y")})
	base := NewEnumerator(a, "each")
	wrapped := &Enumerator{Forward: base, Selector: "with_index", Prefix: []Value{MakeNumber(5)}}

	var indices []float64
	err := Enumerate(wrapped, func(args []Value) bool {
		indices = append(indices, args[len(args)-1].(*Number).Value)
		return true
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(indices) != 2 || indices[0] != 5 || indices[1] != 6 {
		t.Errorf("with_index(5) indices = %v, want [5 6]", indices)
	}
}

func TestSingleCollapsesTuples(t *testing.T) {
	if got := single([]Value{MakeNumber(1)}); got.(*Number).Value != 1 {
		t.Errorf("single([1]) = %v, want 1", got)
	}
	got := single([]Value{MakeString("a"), MakeNumber(1)})
	arr, ok := got.(*Array)
	if !ok || len(arr.Elements) != 2 {
		t.Errorf("single of a multi-value tuple should wrap in an Array, got %v", got)
	}
}

func TestEnumeratorInspectAndToS(t *testing.T) {
	e := NewEnumerator(numArr(1), "each")
	if e.Inspect() != "#<Enumerator>" {
		t.Errorf("Inspect() = %q, want #<Enumerator>", e.Inspect())
	}
	if e.ToS() != "#<Enumerator>" {
		t.Errorf("ToS() = %q, want #<Enumerator>", e.ToS())
	}
}

func TestEnumeratorInheritsEnumerableMethods(t *testing.T) {
	e := NewEnumerator(numArr(1, 2, 3), "each")
	result, err := Dispatch(e, "to_a", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.(*Array).Elements) != 3 {
		t.Errorf("Enumerator.to_a = %v, want 3 elements", result.(*Array).Inspect())
	}
}
