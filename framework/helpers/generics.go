package helpers

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// IfElse returns valueIfTrue or valueIfFalse depending on isTrue.
func IfElse[V any](isTrue bool, valueIfTrue, valueIfFalse V) V {
	if isTrue {
		return valueIfTrue
	}
	return valueIfFalse
}

// SliceContains returns true if and only if the slice has an element that equals the value.
func SliceContains[V comparable](value V, slice []V) bool {
	return slices.Contains(slice, value)
}

// CopyOf returns a shallow copy of a slice.
func CopyOf[V any](slice []V) []V {
	return append([]V(nil), slice...)
}

// Sorted returns a sorted copy of a slice without modifying the original.
func Sorted[V constraints.Ordered](slice []V) []V {
	ret := CopyOf(slice)
	slices.Sort(ret)
	return ret
}
