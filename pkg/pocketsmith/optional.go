package pocketsmith

// Optional is a tri-state value for JSON body fields: omitted, explicit
// null, or set. Only set fields appear in an outgoing payload; the remote
// API distinguishes an omitted field from one sent as null, so a nullable
// pointer is not enough here (clearing a category's parent sends
// "parent_id": null, while leaving it alone sends no key at all).
type Optional[T any] struct {
	value T
	set   bool
	null  bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Null returns an Optional that serializes as an explicit JSON null.
func Null[T any]() Optional[T] {
	return Optional[T]{set: true, null: true}
}

// IsSet reports whether the value was supplied (including explicit null).
func (o Optional[T]) IsSet() bool {
	return o.set
}

// IsNull reports whether the value is an explicit null.
func (o Optional[T]) IsNull() bool {
	return o.set && o.null
}

// Value returns the held value and whether a non-null value is present.
func (o Optional[T]) Value() (T, bool) {
	if !o.set || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

// addTo writes the field into body under key: nothing when unset, a nil
// (JSON null) when explicitly nulled, the value otherwise.
func (o Optional[T]) addTo(body map[string]any, key string) {
	if !o.set {
		return
	}
	if o.null {
		body[key] = nil
		return
	}
	body[key] = o.value
}
