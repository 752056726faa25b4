// ==============================================================================================
// FILE: value/number_test.go
// ==============================================================================================

package value

import (
	"math"
	"testing"
)

func dispatchNum(t *testing.T, name string, recv *Number, args ...Value) *Number {
	t.Helper()
	result, err := Dispatch(recv, name, args)
	if err != nil {
		t.Fatalf("Dispatch(%s) error: %v", name, err)
	}
	n, ok := result.(*Number)
	if !ok {
		t.Fatalf("Dispatch(%s) returned %T, want *Number", name, result)
	}
	return n
}

func TestNumberArithmetic(t *testing.T) {
	tests := []struct {
		op       string
		a, b     float64
		want     float64
	}{
		{"+", 2, 3, 5},
		{"-", 5, 3, 2},
		{"*", 4, 3, 12},
		{"/", 10, 4, 2.5},
		{"**", 2, 10, 1024},
	}
	for _, tt := range tests {
		got := dispatchNum(t, tt.op, MakeNumber(tt.a), MakeNumber(tt.b))
		if got.Value != tt.want {
			t.Errorf("%v %s %v = %v, want %v", tt.a, tt.op, tt.b, got.Value, tt.want)
		}
	}
}

func TestNumberModulo(t *testing.T) {
	got := dispatchNum(t, "%", MakeNumber(10), MakeNumber(3))
	if got.Value != 1 {
		t.Errorf("10 %% 3 = %v, want 1", got.Value)
	}

	_, err := Dispatch(MakeNumber(1), "%", []Value{MakeNumber(0)})
	if _, ok := err.(*ZeroDivisionError); !ok {
		t.Errorf("expected ZeroDivisionError, got %v", err)
	}
}

func TestNumberNegation(t *testing.T) {
	got := dispatchNum(t, "-@", MakeNumber(5))
	if got.Value != -5 {
		t.Errorf("-5 negated = %v, want -5", got.Value)
	}
}

func TestNumberBitwiseOps(t *testing.T) {
	tests := []struct {
		op       string
		a, b     float64
		want     int32
	}{
		{"&", 12, 10, 8},
		{"|", 12, 10, 14},
		{"^", 12, 10, 6},
		{"<<", 1, 4, 16},
		{">>", 16, 4, 1},
	}
	for _, tt := range tests {
		got := dispatchNum(t, tt.op, MakeNumber(tt.a), MakeNumber(tt.b))
		if int32(got.Value) != tt.want {
			t.Errorf("%v %s %v = %v, want %v", tt.a, tt.op, tt.b, got.Value, tt.want)
		}
	}
}

func TestNumberBitwiseNot(t *testing.T) {
	got := dispatchNum(t, "~", MakeNumber(0))
	if int32(got.Value) != -1 {
		t.Errorf("~0 = %v, want -1", got.Value)
	}
}

func TestNumberComparisons(t *testing.T) {
	tests := []struct {
		op   string
		a, b float64
		want bool
	}{
		{"<", 1, 2, true},
		{"<", 2, 1, false},
		{"<=", 2, 2, true},
		{">", 3, 2, true},
		{">=", 2, 2, true},
	}
	for _, tt := range tests {
		result, err := Dispatch(MakeNumber(tt.a), tt.op, []Value{MakeNumber(tt.b)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.(*Boolean).Value != tt.want {
			t.Errorf("%v %s %v = %v, want %v", tt.a, tt.op, tt.b, result.(*Boolean).Value, tt.want)
		}
	}
}

func TestNumberRoundTiesAwayFromZero(t *testing.T) {
	tests := []struct {
		v    float64
		want float64
	}{
		{2.5, 3},
		{-2.5, -3},
		{0.5, 1},
		{0, 0},
	}
	for _, tt := range tests {
		got := dispatchNum(t, "round", MakeNumber(tt.v))
		if got.Value != tt.want {
			t.Errorf("round(%v) = %v, want %v", tt.v, got.Value, tt.want)
		}
	}
}

// TestNumberRoundWithDigits checks against the original round_f's
// magnitude-normalized scale factor (10**(ndigits - ceil(log10(|v|)))),
// not a flat 10**ndigits: for 3.14159 the normalizing term is
// ceil(log10(3.14159)) = 1, so round(3.14159, 2) scales by 10**(2-1) = 10,
// giving 3.1, not 3.14.
func TestNumberRoundWithDigits(t *testing.T) {
	got := dispatchNum(t, "round", MakeNumber(3.14159), MakeNumber(2))
	if got.Value != 3.1 {
		t.Errorf("round(3.14159, 2) = %v, want 3.1", got.Value)
	}
}

// TestNumberRoundWithNegativeDigits follows the original's negative-ndigits
// branch, round(round_f(v, -ndigits)): for 12345, -ndigits = 2, and
// round_f's own magnitude-normalized factor is 10**(2 - ceil(log10(12345)))
// = 10**(2-5) = 0.001, giving round(12.345)/0.001 = 12000.
func TestNumberRoundWithNegativeDigits(t *testing.T) {
	got := dispatchNum(t, "round", MakeNumber(12345), MakeNumber(-2))
	if got.Value != 12000 {
		t.Errorf("round(12345, -2) = %v, want 12000", got.Value)
	}
}

func TestNumberCeilFloorAbs(t *testing.T) {
	if got := dispatchNum(t, "ceil", MakeNumber(1.2)); got.Value != 2 {
		t.Errorf("ceil(1.2) = %v, want 2", got.Value)
	}
	if got := dispatchNum(t, "floor", MakeNumber(1.8)); got.Value != 1 {
		t.Errorf("floor(1.8) = %v, want 1", got.Value)
	}
	if got := dispatchNum(t, "abs", MakeNumber(-5)); got.Value != 5 {
		t.Errorf("abs(-5) = %v, want 5", got.Value)
	}
}

func TestNumberToIToF(t *testing.T) {
	if got := dispatchNum(t, "to_i", MakeNumber(3.9)); got.Value != 3 {
		t.Errorf("to_i(3.9) = %v, want 3", got.Value)
	}
	if got := dispatchNum(t, "to_f", MakeNumber(3)); got.Value != 3 {
		t.Errorf("to_f(3) = %v, want 3", got.Value)
	}
}

func TestNumberPredicates(t *testing.T) {
	finite, _ := Dispatch(MakeNumber(1), "finite?", nil)
	if !finite.(*Boolean).Value {
		t.Error("finite?(1) should be true")
	}

	inf, _ := Dispatch(MakeNumber(math.Inf(1)), "finite?", nil)
	if inf.(*Boolean).Value {
		t.Error("finite?(Inf) should be false")
	}

	nanResult, _ := Dispatch(MakeNumber(math.NaN()), "nan?", nil)
	if !nanResult.(*Boolean).Value {
		t.Error("nan?(NaN) should be true")
	}

	zero, _ := Dispatch(MakeNumber(0), "zero?", nil)
	if !zero.(*Boolean).Value {
		t.Error("zero?(0) should be true")
	}

	infiniteResult, _ := Dispatch(MakeNumber(math.Inf(1)), "infinite?", nil)
	if n, ok := infiniteResult.(*Number); !ok || n.Value != 1 {
		t.Errorf("infinite?(+Inf) = %v, want 1", infiniteResult)
	}
	infiniteResult, _ = Dispatch(MakeNumber(1), "infinite?", nil)
	if _, ok := infiniteResult.(*Nil); !ok {
		t.Errorf("infinite?(1) = %v, want Nil", infiniteResult)
	}
}

func TestNumberNextPrevFloat(t *testing.T) {
	next := dispatchNum(t, "next_float", MakeNumber(1))
	if next.Value <= 1 {
		t.Errorf("next_float(1) = %v, want > 1", next.Value)
	}
	prev := dispatchNum(t, "prev_float", MakeNumber(1))
	if prev.Value >= 1 {
		t.Errorf("prev_float(1) = %v, want < 1", prev.Value)
	}
}
