// Copyright 2014 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rrb implements a persistent (immutable) indexed sequence:
// a Relaxed-Radix-Balanced-style tree of strict radix shape (no size
// tables) plus a mutable-batch tail that accelerates sequential
// append and bulk construction.
//
// Array[T] supports O(1)-amortized append, O(log_B n) get/set
// (B=32, so effectively constant in practice), O(n) slice, structural sharing on
// every update, and a Builder for assembling large arrays without
// repeated tail promotion.
//
// This is a drop-in structural cousin of a hand-rolled Clojure-style
// persistent vector: Get/Set/Append/Concat/Init/FromList/Slice carry
// the algorithmic detail; the rest of the operation surface (ForEach,
// Map, Reduce, Filter, Contains, Find, Zip, Join, Unique, Cycle,
// Reverse, Sort, Rotate) are thin, total wrappers over ToList/FromList
// and marray.Array, since their correctness never depends on tree shape.
package rrb

import (
	"errors"
	"fmt"
)

// B is the branching factor: the maximum number of children of any
// node, and the maximum tail size.
const B = 32

// Bbits is log2(B), the number of index bits consumed per tree level.
const Bbits = 5

// mask extracts the low Bbits bits of an index.
const mask = B - 1

// appendBuilderThreshold is the right-hand-side size (in elements)
// above which Append switches from incremental tail-fusion to
// rebuilding through a Builder, calibrated so the constant overhead
// of arrayToBuilder only pays for itself against sufficiently large
// right operands.
const appendBuilderThreshold = 4 * B

// ErrIndexOutOfBounds is returned by Get/Set when the (possibly
// negative-wrapped) index falls outside [0, Length(a)).
var ErrIndexOutOfBounds = errors.New("rrb: index out of bounds")

// ErrInvalidArgument is returned by Init/Make when the requested
// length is negative.
var ErrInvalidArgument = errors.New("rrb: invalid argument")

// Array[T] is a persistent indexed sequence of elements of type T.
// The zero value is not valid; use Empty[T]().
type Array[T any] struct {
	length int
	shift  uint
	root   []Node[T]
	tail   []T
}

// Empty returns the canonical empty array.
func Empty[T any]() Array[T] {
	return Array[T]{shift: Bbits}
}

// Length returns the number of elements in a.
func (a Array[T]) Length() int {
	return a.length
}

// IsEmpty reports whether a has no elements.
func (a Array[T]) IsEmpty() bool {
	return a.length == 0
}

// tailStart returns the index of the first element held in the tail,
// i.e. the number of elements held in the tree.
func tailStart(length int) int {
	return (length >> Bbits) << Bbits
}

func resolveIndex(i, length int) int {
	if i < 0 {
		return length + i
	}
	return i
}

func outOfBounds(i, length int) error {
	return fmt.Errorf("rrb: index %d out of bounds for length %d: %w", i, length, ErrIndexOutOfBounds)
}
