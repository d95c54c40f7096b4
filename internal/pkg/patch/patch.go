// Package patch resolves the optional fields of partial updates such as
// repricing and staff status changes, where nil means "leave as is".
package patch

// Coalesce returns *ptr, or current when the field was omitted.
func Coalesce[T any](ptr *T, current T) T {
	if ptr != nil {
		return *ptr
	}
	return current
}

// Apply is Coalesce for comparable fields and also reports whether the
// update moves the value; resending the current value is not a change.
func Apply[T comparable](ptr *T, current T) (next T, changed bool) {
	if ptr == nil || *ptr == current {
		return current, false
	}
	return *ptr, true
}
