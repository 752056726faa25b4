// ==============================================================================================
// FILE: value/json.go
// ==============================================================================================
// PACKAGE: value
// PURPOSE: Converts a decoded JSON document into Value/ViewModel instances, the bridge
//          cmd/slimrender's `render` subcommand uses to load a view-model file.
// ==============================================================================================

package value

import "encoding/json"

// FromJSON decodes data as a JSON object and returns it as a MapViewModel,
// suitable for use as a render root. A top-level non-object document is an
// error: a ViewModel needs named fields for bare-identifier dispatch.
func FromJSON(data []byte) (*MapViewModel, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, &TypeError{Msg: "view-model JSON must be an object"}
	}
	fields := make(map[string]Value, len(raw))
	for k, v := range raw {
		fields[k] = FromJSONValue(v)
	}
	return NewMapViewModel(fields), nil
}

// FromJSONValue converts a single decoded JSON value (as produced by
// encoding/json into `any`) into the corresponding Value variant.
func FromJSONValue(v any) Value {
	switch vv := v.(type) {
	case nil:
		return NilValue
	case bool:
		return MakeBoolean(vv)
	case float64:
		return MakeNumber(vv)
	case string:
		return MakeString(vv)
	case []any:
		elems := make([]Value, len(vv))
		for i, e := range vv {
			elems[i] = FromJSONValue(e)
		}
		return NewArray(elems)
	case map[string]any:
		h := NewHash()
		for k, e := range vv {
			h.Set(MakeString(k), FromJSONValue(e))
		}
		return h
	default:
		return NilValue
	}
}
