package evalexpr

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v2"
)

// MarshalJSON renders v as JSON. Int and Float render as JSON numbers,
// Boolean and String render naturally, Tuple renders as a JSON array, and
// Empty renders as JSON null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case String:
		return json.Marshal(v.str)
	case Int:
		return json.Marshal(v.i)
	case Float:
		return json.Marshal(v.f)
	case Boolean:
		return json.Marshal(v.b)
	case Tuple:
		return json.Marshal(v.tup)
	case Empty:
		return json.Marshal(nil)
	default:
		return nil, fmt.Errorf("evalexpr: cannot marshal %s", v.kind)
	}
}

// UnmarshalJSON decodes v from JSON. JSON numbers that parse as an int64
// (no fractional part or exponent, and within int64 range) become Int; all
// other JSON numbers become Float.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	w, err := valueFromAny(raw)
	if err != nil {
		return err
	}
	*v = w
	return nil
}

func valueFromAny(raw any) (Value, error) {
	switch x := raw.(type) {
	case nil:
		return EmptyValue, nil
	case string:
		return StringValue(x), nil
	case bool:
		return BooleanValue(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return IntValue(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return Value{}, err
		}
		return FloatValue(f), nil
	case []any:
		elems := make([]Value, len(x))
		for i, e := range x {
			v, err := valueFromAny(e)
			if err != nil {
				return Value{}, err
			}
			elems[i] = v
		}
		return TupleValue(elems), nil
	default:
		return Value{}, fmt.Errorf("evalexpr: cannot unmarshal %T into Value", raw)
	}
}

// MarshalYAML renders v for gopkg.in/yaml.v2, following the same mapping as
// MarshalJSON.
func (v Value) MarshalYAML() (any, error) {
	switch v.kind {
	case String:
		return v.str, nil
	case Int:
		return v.i, nil
	case Float:
		return v.f, nil
	case Boolean:
		return v.b, nil
	case Tuple:
		return v.tup, nil
	case Empty:
		return nil, nil
	default:
		return nil, fmt.Errorf("evalexpr: cannot marshal %s", v.kind)
	}
}

// UnmarshalYAML decodes v from a YAML node, following the decode-then-rewrap
// pattern: the node is decoded into plain Go data with yaml.v2's native
// typing, then wrapped into a Value.
func (v *Value) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	w, err := valueFromYAMLAny(raw)
	if err != nil {
		return err
	}
	*v = w
	return nil
}

func valueFromYAMLAny(raw any) (Value, error) {
	switch x := raw.(type) {
	case nil:
		return EmptyValue, nil
	case string:
		return StringValue(x), nil
	case bool:
		return BooleanValue(x), nil
	case int:
		return IntValue(int64(x)), nil
	case int64:
		return IntValue(x), nil
	case float64:
		return FloatValue(x), nil
	case []any:
		elems := make([]Value, len(x))
		for i, e := range x {
			w, err := valueFromYAMLAny(e)
			if err != nil {
				return Value{}, err
			}
			elems[i] = w
		}
		return TupleValue(elems), nil
	default:
		return Value{}, fmt.Errorf("evalexpr: cannot unmarshal %T into Value", raw)
	}
}

// ParseYAMLValue decodes a single YAML document into a Value, wiring
// gopkg.in/yaml.v2 directly for callers that are not decoding a larger
// structure that already embeds Value fields. A null document yields Empty.
func ParseYAMLValue(data []byte) (Value, error) {
	// Decoding into plain Go data first: yaml.v2 does not call
	// UnmarshalYAML for a null document.
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Value{}, err
	}
	return valueFromYAMLAny(raw)
}
