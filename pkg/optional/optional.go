// Package optional holds patch fields that distinguish "absent" from an
// explicit JSON null.
package optional

import (
	"bytes"
	"encoding/json"
)

// Value is absent until decoded. A decoded null leaves Valid false.
type Value[T any] struct {
	Set   bool
	Valid bool
	V     T
}

func Of[T any](v T) Value[T] { return Value[T]{Set: true, Valid: true, V: v} }

func Null[T any]() Value[T] { return Value[T]{Set: true} }

func (o *Value[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		var zero T
		o.Valid = false
		o.V = zero
		return nil
	}
	if err := json.Unmarshal(b, &o.V); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// MarshalJSON writes null unless a value is held.
func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.V)
}

// Apply merges into a nullable field: null clears it, absent keeps it.
func (o Value[T]) Apply(dst **T) {
	if !o.Set {
		return
	}
	if !o.Valid {
		*dst = nil
		return
	}
	v := o.V
	*dst = &v
}

// ApplyZero merges into a plain field: null resets it to the zero value.
func (o Value[T]) ApplyZero(dst *T) {
	if !o.Set {
		return
	}
	*dst = o.V
}
