package models

import (
	"encoding/json"
)

// Optional distinguishes a value that was not provided from a provided zero value.
// A provided nil slice or null value is still "provided".
type Optional[T any] struct {
	Value T
	Set   bool
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{Value: value, Set: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// ValueOr returns the provided value, or fallback when nothing was provided.
func (o Optional[T]) ValueOr(fallback T) T {
	if !o.Set {
		return fallback
	}
	return o.Value
}

// UnmarshalJSON is only called by encoding/json when the key is present in the payload,
// which is what marks the value as provided.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	return json.Unmarshal(data, &o.Value)
}
