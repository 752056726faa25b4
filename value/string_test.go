// ==============================================================================================
// FILE: value/string_test.go
// ==============================================================================================

package value

import "testing"

func TestStringConcatAndRepeat(t *testing.T) {
	result, err := Dispatch(MakeString("foo"), "+", []Value{MakeString("bar")})
	if err != nil || result.(*String).Value != "foobar" {
		t.Errorf("\"foo\" + \"bar\" = %v, %v; want \"foobar\", nil", result, err)
	}

	result, err = Dispatch(MakeString("ab"), "*", []Value{MakeNumber(3)})
	if err != nil || result.(*String).Value != "ababab" {
		t.Errorf("\"ab\" * 3 = %v, %v; want \"ababab\", nil", result, err)
	}

	_, err = Dispatch(MakeString("ab"), "*", []Value{MakeNumber(-1)})
	if _, ok := err.(*ArgumentError); !ok {
		t.Errorf("negative repeat count should raise ArgumentError, got %v", err)
	}
}

func TestStringLength(t *testing.T) {
	result, _ := Dispatch(MakeString("héllo"), "length", nil)
	if result.(*Number).Value != 5 {
		t.Errorf("length of \"héllo\" = %v, want 5 (rune count)", result)
	}
}

func TestStringCaseConversion(t *testing.T) {
	up, _ := Dispatch(MakeString("abc"), "upcase", nil)
	if up.(*String).Value != "ABC" {
		t.Errorf("upcase(\"abc\") = %v, want ABC", up)
	}
	down, _ := Dispatch(MakeString("ABC"), "downcase", nil)
	if down.(*String).Value != "abc" {
		t.Errorf("downcase(\"ABC\") = %v, want abc", down)
	}
}

func TestStringStripAndEmpty(t *testing.T) {
	stripped, _ := Dispatch(MakeString("  hi  "), "strip", nil)
	if stripped.(*String).Value != "hi" {
		t.Errorf("strip() = %q, want %q", stripped.(*String).Value, "hi")
	}
	empty, _ := Dispatch(MakeString(""), "empty?", nil)
	if !empty.(*Boolean).Value {
		t.Error("empty?(\"\") should be true")
	}
}

func TestStringReverse(t *testing.T) {
	result, _ := Dispatch(MakeString("abc"), "reverse", nil)
	if result.(*String).Value != "cba" {
		t.Errorf("reverse(\"abc\") = %v, want cba", result)
	}
}

func TestStringSplit(t *testing.T) {
	result, _ := Dispatch(MakeString("a,b,c"), "split", []Value{MakeString(",")})
	arr := result.(*Array)
	if len(arr.Elements) != 3 || arr.Elements[1].(*String).Value != "b" {
		t.Errorf("split(\",\") = %v, want [a, b, c]", arr.Inspect())
	}

	result, _ = Dispatch(MakeString("a b  c"), "split", nil)
	arr = result.(*Array)
	if len(arr.Elements) != 3 {
		t.Errorf("split() on whitespace = %v, want 3 elements", arr.Inspect())
	}
}

func TestStringIndexing(t *testing.T) {
	result, _ := Dispatch(MakeString("abc"), "[]", []Value{MakeNumber(1)})
	if result.(*String).Value != "b" {
		t.Errorf("\"abc\"[1] = %v, want b", result)
	}
	result, _ = Dispatch(MakeString("abc"), "[]", []Value{MakeNumber(-1)})
	if result.(*String).Value != "c" {
		t.Errorf("\"abc\"[-1] = %v, want c", result)
	}
	result, _ = Dispatch(MakeString("abc"), "[]", []Value{MakeNumber(99)})
	if _, ok := result.(*Nil); !ok {
		t.Errorf("out-of-range string index should return Nil, got %v", result)
	}
}

func TestStringToIToF(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"42", 42},
		{"-7", -7},
		{"3abc", 3},
		{"abc", 0},
	}
	for _, tt := range tests {
		result, _ := Dispatch(MakeString(tt.input), "to_i", nil)
		if result.(*Number).Value != tt.want {
			t.Errorf("%q.to_i = %v, want %v", tt.input, result, tt.want)
		}
	}

	result, _ := Dispatch(MakeString("3.14abc"), "to_f", nil)
	if result.(*Number).Value != 3.14 {
		t.Errorf("\"3.14abc\".to_f = %v, want 3.14", result)
	}
}

func TestStringEachChar(t *testing.T) {
	var seen []string
	block := &Proc{Invoke: func(args []Value) (Value, error) {
		seen = append(seen, args[0].(*String).Value)
		return NilValue, nil
	}}
	_, err := Dispatch(MakeString("ab"), "each_char", []Value{block})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seen) != 2 || seen[0] != "a" || seen[1] != "b" {
		t.Errorf("each_char visited %v, want [a, b]", seen)
	}
}

func TestStringEachCharWithoutBlockReturnsEnumerator(t *testing.T) {
	result, err := Dispatch(MakeString("ab"), "each_char", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := result.(*Enumerator); !ok {
		t.Errorf("each_char without a block should return an Enumerator, got %T", result)
	}
}
