// Package valueobject contains small immutable domain values.
package valueobject

import "encoding/json"

// Optional is a tri-state JSON field: absent, explicit null, or a value.
// Partial updates need the distinction because an omitted field leaves the
// record unchanged while an explicit null clears it.
type Optional[T any] struct {
	present bool
	null    bool
	value   T
}

// Some returns an Optional holding the given value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{present: true, value: value}
}

// Null returns an Optional that was explicitly set to null.
func Null[T any]() Optional[T] {
	return Optional[T]{present: true, null: true}
}

// Present reports whether the field appeared in the request at all.
func (o Optional[T]) Present() bool {
	return o.present
}

// IsNull reports whether the field was explicitly set to null.
func (o Optional[T]) IsNull() bool {
	return o.present && o.null
}

// Value returns the held value and whether a non-null value is present.
func (o Optional[T]) Value() (T, bool) {
	if !o.present || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

// UnmarshalJSON is only invoked for keys present in the payload, which is
// what makes the absent state representable.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.present = true
	if string(data) == "null" {
		o.null = true
		return nil
	}
	o.null = false
	return json.Unmarshal(data, &o.value)
}

// MarshalJSON encodes the value, or null when unset.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present || o.null {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
