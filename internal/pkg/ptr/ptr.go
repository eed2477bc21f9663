package ptr

// To returns a pointer to a copy of v, for optional DTO fields.
func To[T any](v T) *T {
	return &v
}
