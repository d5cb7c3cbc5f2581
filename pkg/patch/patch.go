// Package patch implements three-valued JSON patch fields: a request body
// field can be absent (leave the stored value alone), null (clear it), or
// present with a value (set it). encoding/json alone cannot tell absent from
// null, so patch.Field records which of the three it saw.
package patch

import "encoding/json"

// Field wraps one optional patch value. The zero Field means the key was
// absent from the request body.
type Field[T any] struct {
	value   T
	present bool
	null    bool
}

// Set returns a field carrying a value, as if the client sent it.
func Set[T any](v T) Field[T] {
	return Field[T]{value: v, present: true}
}

// Clear returns a field carrying an explicit null.
func Clear[T any]() Field[T] {
	return Field[T]{present: true, null: true}
}

// Present reports whether the key appeared in the request at all.
func (f Field[T]) Present() bool {
	return f.present
}

// Null reports whether the key was an explicit JSON null.
func (f Field[T]) Null() bool {
	return f.present && f.null
}

// Value returns the carried value and whether one was actually set
// (present and not null).
func (f Field[T]) Value() (T, bool) {
	if !f.present || f.null {
		var zero T
		return zero, false
	}
	return f.value, true
}

// Or returns the carried value, or fallback when the field does not carry one.
func (f Field[T]) Or(fallback T) T {
	if v, ok := f.Value(); ok {
		return v
	}
	return fallback
}

// UnmarshalJSON is only called by encoding/json when the key is present, so
// reaching it at all marks the field present; a literal null marks it null.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.present = true
	if string(data) == "null" {
		f.null = true
		return nil
	}
	return json.Unmarshal(data, &f.value)
}

// MarshalJSON renders the carried value, or null when the field is null or
// absent.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if v, ok := f.Value(); ok {
		return json.Marshal(v)
	}
	return []byte("null"), nil
}
