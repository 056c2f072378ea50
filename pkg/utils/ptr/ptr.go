// Package ptr has helpers for working with pointers to values.
package ptr

// To returns a pointer to v.
func To[T any](v T) *T {
	return &v
}
