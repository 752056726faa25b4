// ==============================================================================================
// FILE: value/json_test.go
// ==============================================================================================

package value

import "testing"

func TestFromJSONObject(t *testing.T) {
	vm, err := FromJSON([]byte(`{"name": "Ada", "age": 36, "active": true, "tags": ["a", "b"]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	name, ok := vm.Lookup("name")
	if !ok || name.(*String).Value != "Ada" {
		t.Errorf("Lookup(name) = %v, %v; want Ada, true", name, ok)
	}

	age, ok := vm.Lookup("age")
	if !ok || age.(*Number).Value != 36 {
		t.Errorf("Lookup(age) = %v, %v; want 36, true", age, ok)
	}

	active, ok := vm.Lookup("active")
	if !ok || !active.(*Boolean).Value {
		t.Errorf("Lookup(active) = %v, %v; want true, true", active, ok)
	}

	tags, ok := vm.Lookup("tags")
	if !ok {
		t.Fatal("Lookup(tags) not found")
	}
	arr := tags.(*Array)
	if len(arr.Elements) != 2 || arr.Elements[0].(*String).Value != "a" {
		t.Errorf("Lookup(tags) = %v, want [a, b]", arr.Inspect())
	}
}

func TestFromJSONNonObjectIsError(t *testing.T) {
	_, err := FromJSON([]byte(`[1, 2, 3]`))
	if err == nil {
		t.Error("a top-level JSON array should fail to decode as a ViewModel")
	}
}

func TestFromJSONMalformedIsError(t *testing.T) {
	_, err := FromJSON([]byte(`{not valid json`))
	if err == nil {
		t.Error("malformed JSON should return an error")
	}
}

func TestFromJSONValueNested(t *testing.T) {
	result := FromJSONValue(map[string]any{
		"x": float64(1),
		"y": []any{"a", nil, true},
	})
	h, ok := result.(*Hash)
	if !ok {
		t.Fatalf("FromJSONValue(map) = %T, want *Hash", result)
	}
	y, ok := h.Get(MakeString("y"))
	if !ok {
		t.Fatal("expected key y in decoded hash")
	}
	arr := y.(*Array)
	if len(arr.Elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(arr.Elements))
	}
	if _, ok := arr.Elements[1].(*Nil); !ok {
		t.Errorf("null should decode to Nil, got %v", arr.Elements[1])
	}
	if !arr.Elements[2].(*Boolean).Value {
		t.Errorf("true should decode to Boolean(true), got %v", arr.Elements[2])
	}
}

func TestFromJSONValueScalars(t *testing.T) {
	if _, ok := FromJSONValue(nil).(*Nil); !ok {
		t.Error("nil should decode to Nil")
	}
	if got := FromJSONValue("hi").(*String).Value; got != "hi" {
		t.Errorf("string decode = %v, want hi", got)
	}
	if got := FromJSONValue(float64(3.5)).(*Number).Value; got != 3.5 {
		t.Errorf("number decode = %v, want 3.5", got)
	}
}
