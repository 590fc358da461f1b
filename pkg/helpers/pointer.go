package helpers

// Ptr is for optional fields in literals.
func Ptr[T any](val T) *T {
	return &val
}

// Deref returns *val, or fallback when val is nil.
func Deref[T any](val *T, fallback T) T {
	if val == nil {
		return fallback
	}
	return *val
}
