package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Keys returns the keys of a map in unspecified order.
func Keys[A comparable, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// Dedupe returns the distinct values, sorted ascending.
func Dedupe[A constraints.Ordered](values []A) []A {
	seen := make(map[A]bool, len(values))
	out := make([]A, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Min returns the smaller of two values.
func Min[A constraints.Ordered](a, b A) A {
	if a > b {
		return b
	}
	return a
}

// Max returns the larger of two values.
func Max[A constraints.Ordered](a, b A) A {
	if a > b {
		return a
	}
	return b
}
