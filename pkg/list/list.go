// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package list provides a generic, prepend-only, singly-linked collection.

It is the only storage structure of the movie catalog: records, the languages of
each record, and the scratch state of the queries all live in a [List].

Contract:

  - Insertion: [List.Prepend] is the only way to add a value. It is O(1).
  - Ordering: values are traversed head to tail, which is the reverse of the
    order in which they were prepended.
  - Traversal: [List.All] returns a lazy, restartable [iter.Seq]. It never mutates
    the list, so any number of traversals may run over the same list at once.

There is deliberately no removal, search, or indexed access. Searching is a
concern of the caller (see package seq).
*/
package list

import "iter"

// node holds one value and the link to the next node. A nil next ends the chain.
type node[T any] struct {
	value T
	next  *node[T]
}

// List is a prepend-only singly-linked list.
//
// # Invariant
//
// length always equals the number of nodes reachable from head. The chain cannot
// contain a cycle because links are only ever set once, on the new head.
//
// The zero value is an empty list ready to use.
type List[T any] struct {
	head   *node[T]
	length int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Prepend links value ahead of the current head.
func (l *List[T]) Prepend(value T) {
	l.head = &node[T]{value: value, next: l.head}
	l.length++
}

// Len returns the number of values in the list. A nil list has length 0.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// All returns a sequence over the values from head to tail.
//
// Stopping the range loop early stops the walk.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// From builds a list by prepending values in the given order, so the resulting
// traversal order is the reverse of values.
func From[T any](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.Prepend(v)
	}
	return l
}
