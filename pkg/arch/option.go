package arch

import "slices"

// Optional wraps an ordered slice whose extraction may not have happened.
// Unknown means "not extracted for this node"; Known with an empty slice
// means "extracted, and there are none". The two must never be conflated.
type Optional[T any] struct {
	items []T
	known bool
}

// Known wraps an extracted slice. The slice is copied, so later mutation of
// the argument does not leak into the value.
func Known[T any](items []T) Optional[T] {
	return Optional[T]{items: slices.Clone(items), known: true}
}

// Unknown marks the information as not extracted.
func Unknown[T any]() Optional[T] {
	return Optional[T]{}
}

// IsKnown reports whether the information was extracted at all.
func (o Optional[T]) IsKnown() bool {
	return o.known
}

// Get returns a copy of the items and whether they are known.
func (o Optional[T]) Get() ([]T, bool) {
	if !o.known {
		return nil, false
	}
	return slices.Clone(o.items), true
}

// Len returns the number of known items, zero when unknown.
func (o Optional[T]) Len() int {
	return len(o.items)
}

func equalOptional[T comparable](a, b Optional[T]) bool {
	return a.known == b.known && slices.Equal(a.items, b.items)
}
