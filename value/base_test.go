// ==============================================================================================
// FILE: value/base_test.go
// ==============================================================================================

package value

import "testing"

func TestEquals(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"nil == nil", NilValue, NilValue, true},
		{"nil != false", NilValue, False, false},
		{"true == true", True, True, true},
		{"numbers equal", MakeNumber(1.5), MakeNumber(1.5), true},
		{"numbers differ", MakeNumber(1), MakeNumber(2), false},
		{"strings equal", MakeString("a"), MakeString("a"), true},
		{"strings differ", MakeString("a"), MakeString("b"), false},
		{"symbols identical", MakeSymbol("x"), MakeSymbol("x"), true},
		{"arrays structurally equal", NewArray([]Value{MakeNumber(1)}), NewArray([]Value{MakeNumber(1)}), true},
		{"arrays differ by length", NewArray([]Value{MakeNumber(1)}), NewArray(nil), false},
		{"different types never equal", MakeNumber(1), MakeString("1"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equals(tt.a, tt.b); got != tt.want {
				t.Errorf("Equals(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEqualsHash(t *testing.T) {
	h1 := NewHash()
	h1.Set(MakeString("a"), MakeNumber(1))
	h2 := NewHash()
	h2.Set(MakeString("a"), MakeNumber(1))
	if !Equals(h1, h2) {
		t.Error("structurally identical hashes should be equal")
	}

	h3 := NewHash()
	h3.Set(MakeString("a"), MakeNumber(2))
	if Equals(h1, h3) {
		t.Error("hashes with differing values should not be equal")
	}
}

func TestCompareNumbers(t *testing.T) {
	tests := []struct {
		a, b float64
		want int
	}{
		{1, 2, -1},
		{2, 1, 1},
		{2, 2, 0},
	}
	for _, tt := range tests {
		c, ok := Compare(MakeNumber(tt.a), MakeNumber(tt.b))
		if !ok {
			t.Fatalf("Compare(%v, %v) reported ok=false", tt.a, tt.b)
		}
		if c != tt.want {
			t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, c, tt.want)
		}
	}
}

func TestCompareStrings(t *testing.T) {
	c, ok := Compare(MakeString("a"), MakeString("b"))
	if !ok || c >= 0 {
		t.Errorf("Compare(\"a\", \"b\") = %d, %v; want negative, true", c, ok)
	}
}

func TestCompareArraysLexicographic(t *testing.T) {
	a := NewArray([]Value{MakeNumber(1), MakeNumber(2)})
	b := NewArray([]Value{MakeNumber(1), MakeNumber(3)})
	c, ok := Compare(a, b)
	if !ok || c >= 0 {
		t.Errorf("Compare(a, b) = %d, %v; want negative, true", c, ok)
	}

	short := NewArray([]Value{MakeNumber(1)})
	c, ok = Compare(short, a)
	if !ok || c >= 0 {
		t.Errorf("Compare(short, a) = %d, %v; want negative (shorter prefix sorts first)", c, ok)
	}
}

func TestCompareUnorderedPairReportsNotOK(t *testing.T) {
	if _, ok := Compare(MakeNumber(1), MakeString("1")); ok {
		t.Error("Compare(Number, String) should report ok=false")
	}
	if _, ok := Compare(True, False); ok {
		t.Error("Compare(Boolean, Boolean) should report ok=false (no ordering defined)")
	}
}

func TestBaseTableMethods(t *testing.T) {
	n := MakeNumber(5)

	result, err := Dispatch(n, "==", []Value{MakeNumber(5)})
	if err != nil || !result.(*Boolean).Value {
		t.Errorf("5 == 5 should be true, got %v, %v", result, err)
	}

	result, err = Dispatch(n, "!=", []Value{MakeNumber(6)})
	if err != nil || !result.(*Boolean).Value {
		t.Errorf("5 != 6 should be true, got %v, %v", result, err)
	}

	result, err = Dispatch(n, "to_s", nil)
	if err != nil || result.(*String).Value != "5" {
		t.Errorf("5.to_s should be \"5\", got %v, %v", result, err)
	}

	result, err = Dispatch(NilValue, "nil?", nil)
	if err != nil || !result.(*Boolean).Value {
		t.Errorf("nil.nil? should be true, got %v, %v", result, err)
	}
	result, err = Dispatch(n, "nil?", nil)
	if err != nil || result.(*Boolean).Value {
		t.Errorf("5.nil? should be false, got %v, %v", result, err)
	}
}
