// Package utils provides generic helper functions shared across the library.
package utils

import (
	"golang.org/x/exp/constraints"
)

// EqualSlice returns true if x and y have the same length and identical
// elements.
func EqualSlice[V comparable](x, y []V) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Min returns the smaller of x and y.
func Min[V constraints.Ordered](x, y V) V {
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of x and y.
func Max[V constraints.Ordered](x, y V) V {
	if x > y {
		return x
	}
	return y
}
