// Package patch provides a tri-state optional field type for partial
// update payloads. A Field distinguishes between three JSON states that
// a plain pointer cannot: the key being absent (leave unchanged), the
// key being explicit null (clear the value), and the key carrying a
// value (replace the value).
package patch

import "encoding/json"

// Field is an optional patch value with absent / null / value states.
// The zero value is the absent state, so a struct of Fields unmarshals
// correctly from any partial JSON object.
type Field[T any] struct {
	set   bool
	null  bool
	value T
}

// Of returns a Field in the value state. Intended for tests and
// programmatic patch construction.
func Of[T any](v T) Field[T] {
	return Field[T]{set: true, value: v}
}

// Null returns a Field in the explicit-null state.
func Null[T any]() Field[T] {
	return Field[T]{set: true, null: true}
}

// IsSet reports whether the key was present in the patch at all.
func (f Field[T]) IsSet() bool { return f.set }

// IsNull reports whether the key was present with an explicit null.
func (f Field[T]) IsNull() bool { return f.set && f.null }

// Get returns the value and whether it should be applied (present and
// not null).
func (f Field[T]) Get() (T, bool) {
	return f.value, f.set && !f.null
}

// Apply writes the field into dst: a value replaces *dst, an explicit
// null resets *dst to the zero value, and an absent field leaves *dst
// unchanged.
func (f Field[T]) Apply(dst *T) {
	switch {
	case !f.set:
	case f.null:
		var zero T
		*dst = zero
	default:
		*dst = f.value
	}
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked when the
// key is present, which is what flips the field out of the absent state.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.set = true
	if string(data) == "null" {
		f.null = true
		var zero T
		f.value = zero
		return nil
	}
	f.null = false
	return json.Unmarshal(data, &f.value)
}

// MarshalJSON implements json.Marshaler. Absent and null fields both
// marshal as null; Fields are not intended for response bodies.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.set || f.null {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
