// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package seq complements the standard [iter] and [slices] packages with small
generic helpers over [iter.Seq].

Every helper is lazy or short-circuiting: a membership test stops the underlying
walk at the first match.
*/
package seq

import "iter"

// Any reports whether predicate holds for at least one value of s.
// It stops pulling from s as soon as a match is found.
func Any[T any](s iter.Seq[T], predicate func(T) bool) bool {
	for v := range s {
		if predicate(v) {
			return true
		}
	}
	return false
}

// Contains reports whether target appears in s, stopping at the first match.
func Contains[T comparable](s iter.Seq[T], target T) bool {
	return Any(s, func(v T) bool { return v == target })
}

// Filter returns a sequence of the values of s where predicate holds, in order.
func Filter[T any](s iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if predicate(v) && !yield(v) {
				return
			}
		}
	}
}

// Skip returns a sequence over the values of s after the first n.
func Skip[T any](s iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		i := 0
		for v := range s {
			if i < n {
				i++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}
