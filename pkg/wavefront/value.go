package wavefront

import (
	"encoding/json"
	"fmt"
)

// Value is a dynamically typed JSON value with safe, non-panicking lookup.
// The API returns freely nested structures that downstream code probes for
// keys like "items", "moreItems" or "cursor" without knowing the exact
// shape, so lookups on absent keys return an absent Value instead of
// failing.
//
// The underlying representation follows encoding/json: nil, bool, float64,
// string, []interface{} and map[string]interface{}.
type Value struct {
	data    interface{}
	present bool
}

// ValueOf wraps a decoded JSON value.
func ValueOf(data interface{}) Value {
	return Value{data: data, present: true}
}

// AbsentValue returns the sentinel for a missing value.
func AbsentValue() Value {
	return Value{}
}

// Present reports whether the value exists at all. A JSON null is present;
// a missing key is not.
func (v Value) Present() bool {
	return v.present
}

// IsNull reports whether the value is an explicit JSON null.
func (v Value) IsNull() bool {
	return v.present && v.data == nil
}

// Interface returns the raw underlying value.
func (v Value) Interface() interface{} {
	return v.data
}

// Get looks up a key in a JSON object. It returns the absent sentinel when
// the value is not an object or the key is missing.
func (v Value) Get(key string) Value {
	obj, ok := v.data.(map[string]interface{})
	if !ok {
		return AbsentValue()
	}

	inner, ok := obj[key]
	if !ok {
		return AbsentValue()
	}

	return ValueOf(inner)
}

// Index returns the i-th element of a JSON array, or the absent sentinel
// when the value is not an array or the index is out of range.
func (v Value) Index(i int) Value {
	arr, ok := v.data.([]interface{})
	if !ok || i < 0 || i >= len(arr) {
		return AbsentValue()
	}

	return ValueOf(arr[i])
}

// Len returns the number of elements for arrays, the number of keys for
// objects, and 0 for everything else.
func (v Value) Len() int {
	switch data := v.data.(type) {
	case []interface{}:
		return len(data)
	case map[string]interface{}:
		return len(data)
	default:
		return 0
	}
}

// String returns the value as a string.
func (v Value) String() (string, bool) {
	s, ok := v.data.(string)

	return s, ok
}

// Float returns the value as a float64.
func (v Value) Float() (float64, bool) {
	f, ok := v.data.(float64)

	return f, ok
}

// Int returns the value as an int, truncating the JSON number.
func (v Value) Int() (int, bool) {
	f, ok := v.data.(float64)
	if !ok {
		return 0, false
	}

	return int(f), true
}

// Bool returns the value as a bool.
func (v Value) Bool() (bool, bool) {
	b, ok := v.data.(bool)

	return b, ok
}

// Map returns the value as a JSON object.
func (v Value) Map() (map[string]interface{}, bool) {
	m, ok := v.data.(map[string]interface{})

	return m, ok
}

// Array returns the elements of a JSON array wrapped as Values.
func (v Value) Array() ([]Value, bool) {
	arr, ok := v.data.([]interface{})
	if !ok {
		return nil, false
	}

	values := make([]Value, len(arr))
	for i, item := range arr {
		values[i] = ValueOf(item)
	}

	return values, true
}

// Truthy reports whether the value would be considered set: absent, null,
// false, zero and the empty string are falsy, everything else is truthy.
func (v Value) Truthy() bool {
	if !v.present || v.data == nil {
		return false
	}

	switch data := v.data.(type) {
	case bool:
		return data
	case float64:
		return data != 0
	case string:
		return data != ""
	default:
		return true
	}
}

// Decode converts the value into a typed struct by round-tripping through
// JSON. It is the boundary where the schema-less envelope becomes a
// concrete resource type.
func (v Value) Decode(target interface{}) error {
	if !v.present {
		return ErrValueAbsent
	}

	raw, err := json.Marshal(v.data)
	if err != nil {
		return fmt.Errorf("encoding value: %w", err)
	}

	err = json.Unmarshal(raw, target)
	if err != nil {
		return fmt.Errorf("decoding value: %w", err)
	}

	return nil
}
