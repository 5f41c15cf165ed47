package pkg

import "encoding/json"

// Patch distinguishes the three states of an optional field in a partial
// update payload: absent (no change), explicit null (clear), and a value.
// The zero value means "absent". It is meant for nullable fields where
// a plain pointer cannot tell "omitted" from "null".
type Patch[T any] struct {
	set   bool
	null  bool
	value T
}

// PatchValue builds a set Patch carrying v. Intended for tests and internal callers.
func PatchValue[T any](v T) Patch[T] {
	return Patch[T]{set: true, value: v}
}

// PatchNull builds a Patch representing an explicit null.
func PatchNull[T any]() Patch[T] {
	return Patch[T]{set: true, null: true}
}

// IsSet reports whether the field was present in the payload at all.
func (p Patch[T]) IsSet() bool { return p.set }

// IsNull reports whether the field was present as an explicit null.
func (p Patch[T]) IsNull() bool { return p.set && p.null }

// Value returns the decoded value; meaningful only when IsSet and not IsNull.
func (p Patch[T]) Value() T { return p.value }

// UnmarshalJSON implements json.Unmarshaler. It is only invoked when the key
// is present in the payload, which is what makes the absent state detectable.
func (p *Patch[T]) UnmarshalJSON(b []byte) error {
	p.set = true
	if string(b) == "null" {
		p.null = true
		return nil
	}
	return json.Unmarshal(b, &p.value)
}

// MarshalJSON implements json.Marshaler for symmetry in tests and logging.
func (p Patch[T]) MarshalJSON() ([]byte, error) {
	if !p.set || p.null {
		return []byte("null"), nil
	}
	return json.Marshal(p.value)
}
