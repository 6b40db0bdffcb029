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

package rrb

import (
	"fmt"

	"github.com/google/rrb/internal/plist"
)

// Make returns an array of length n with every element set to v.
// Fails with ErrInvalidArgument if n is negative.
func Make[T any](n int, v T) (Array[T], error) {
	return Init(n, func(int) T { return v })
}

// Init returns an array of length n with element i set to f(i).
// Fails with ErrInvalidArgument if n is negative.
func Init[T any](n int, f func(i int) T) (Array[T], error) {
	if n < 0 {
		return Array[T]{}, fmt.Errorf("rrb.Init: length %d: %w", n, ErrInvalidArgument)
	}
	chunk := make([]T, n)
	for i := range chunk {
		chunk[i] = f(i)
	}
	b := newBuilder[T](NewNodeFreeList[T](DefaultNodeFreeListSize))
	b.appendToBuilder(chunk)
	return builderToArray(b), nil
}

// FromList builds an array from a persistent list, taking B elements
// at a time off the front, matching the builder's own chunking.
func FromList[T any](l *plist.List[T]) Array[T] {
	b := newBuilder[T](NewNodeFreeList[T](DefaultNodeFreeListSize))
	b.appendToBuilder(plist.ToSlice(l))
	return builderToArray(b)
}

// ToList converts a to a persistent list, in ascending index order.
func (a Array[T]) ToList() *plist.List[T] {
	return plist.FromSlice(collectAll(a))
}

// collectAll flattens a's tree and tail into a single slice, in
// ascending index order.
func collectAll[T any](a Array[T]) []T {
	out := make([]T, 0, a.length)
	for _, leaf := range collectLeaves(a.root) {
		out = append(out, leaf.values...)
	}
	out = append(out, a.tail...)
	return out
}

// Slice returns the elements of a in [start, end). Negative bounds
// wrap from the end, then both are clamped to [0, Length(a)]; the
// result is empty if end <= start after clamping.
func (a Array[T]) Slice(start, end int) Array[T] {
	start = clampIndex(resolveIndex(start, a.length), a.length)
	end = clampIndex(resolveIndex(end, a.length), a.length)
	if end <= start {
		return Empty[T]()
	}
	l := plist.Drop(start, a.ToList())
	l = plist.Take(end-start, l)
	return FromList(l)
}

func clampIndex(i, length int) int {
	if i < 0 {
		return 0
	}
	if i > length {
		return length
	}
	return i
}
