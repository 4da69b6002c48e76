// Package collections has small generic helpers for slices of view models.
package collections

import "golang.org/x/exp/constraints"

// Apply maps every item through fn, preserving order.
func Apply[T, V any](items []T, fn func(T) V) []V {
	result := make([]V, len(items))
	for i, item := range items {
		result[i] = fn(item)
	}
	return result
}

// ApplyIndexed is Apply with the item's position passed to fn.
func ApplyIndexed[T, V any](items []T, fn func(int, T) V) []V {
	result := make([]V, len(items))
	for i, item := range items {
		result[i] = fn(i, item)
	}
	return result
}

// Clamp bounds v to the closed range [lo, hi].
func Clamp[N constraints.Ordered](v, lo, hi N) N {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
