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

// Package marray implements a flat, length-prefixed mutable array:
// O(1) indexed read/write, copy-to-new, slice-to-new, in-place fill,
// an in-place quicksort and a battery of higher-order traversals.
//
// rrb.Array computes its derived traversals (Map, Filter, Sort, ...)
// over an Array[T]; its tree nodes hold plain Go slices.
// Negative indices wrap from the end, the same convention rrb.Array
// uses for its own public indices.
package marray

import (
	"errors"
	"fmt"

	"github.com/google/rrb/internal/plist"
)

// ErrInvalidArgument is returned by Make/Init when the requested
// length is negative.
var ErrInvalidArgument = errors.New("marray: invalid argument")

// Array[T] is a flat mutable buffer of fixed length chosen at
// allocation. The zero value is an empty array.
type Array[T any] struct {
	vals []T
}

// Make allocates an array of length n filled with v. It fails if n is negative.
func Make[T any](n int, v T) (Array[T], error) {
	return Init(n, func(int) T { return v })
}

// Init allocates an array of length n filled with f(i) for each index i.
// It fails if n is negative.
func Init[T any](n int, f func(i int) T) (Array[T], error) {
	if n < 0 {
		return Array[T]{}, fmt.Errorf("marray.Init: length %d: %w", n, ErrInvalidArgument)
	}
	vals := make([]T, n)
	for i := range vals {
		vals[i] = f(i)
	}
	return Array[T]{vals: vals}, nil
}

// Of wraps an existing slice as an Array without copying. Callers must
// not mutate s afterwards; Array methods that would otherwise mutate
// in place (Fill, FillRange, Sort, Rotate) only ever touch arrays they
// themselves allocated or that the caller has handed over exclusively.
func Of[T any](s []T) Array[T] {
	return Array[T]{vals: s}
}

// Length returns the number of elements in a.
func (a Array[T]) Length() int {
	return len(a.vals)
}

// resolve wraps a negative index relative to length n.
func resolve(i, n int) int {
	if i < 0 {
		return n + i
	}
	return i
}

// Get returns the element at index i, wrapping negative i from the end.
// Out-of-range access is undefined at this layer per spec.
func (a Array[T]) Get(i int) T {
	return a.vals[resolve(i, len(a.vals))]
}

// Set returns a new array identical to a except index i holds v.
func (a Array[T]) Set(i int, v T) Array[T] {
	out := a.Copy()
	out.vals[resolve(i, len(a.vals))] = v
	return out
}

// SetInPlace mutates a at index i. The caller must own a exclusively.
func (a Array[T]) SetInPlace(i int, v T) {
	a.vals[resolve(i, len(a.vals))] = v
}

// Copy returns a shallow copy of a.
func (a Array[T]) Copy() Array[T] {
	vals := make([]T, len(a.vals))
	copy(vals, a.vals)
	return Array[T]{vals: vals}
}

// Slice returns a new array holding a[start:end). Negative bounds
// wrap from the end; end is clamped to Length(a); the result is empty
// if end-start <= 0 after clamping.
func (a Array[T]) Slice(start, end int) Array[T] {
	n := len(a.vals)
	start = resolve(start, n)
	end = resolve(end, n)
	if end > n {
		end = n
	}
	if end-start <= 0 {
		return Array[T]{}
	}
	if start < 0 {
		start = 0
	}
	vals := make([]T, end-start)
	copy(vals, a.vals[start:end])
	return Array[T]{vals: vals}
}

// Append returns a new array of length Length(a)+Length(b).
func Append[T any](a, b Array[T]) Array[T] {
	vals := make([]T, len(a.vals)+len(b.vals))
	n := copy(vals, a.vals)
	copy(vals[n:], b.vals)
	return Array[T]{vals: vals}
}

// Reverse returns a new array with elements in reverse order.
func (a Array[T]) Reverse() Array[T] {
	n := len(a.vals)
	vals := make([]T, n)
	for i, v := range a.vals {
		vals[n-1-i] = v
	}
	return Array[T]{vals: vals}
}

// Map returns a new array of f applied to every element, in order.
func Map[T, U any](f func(T) U, a Array[T]) Array[U] {
	vals := make([]U, len(a.vals))
	for i, v := range a.vals {
		vals[i] = f(v)
	}
	return Array[U]{vals: vals}
}

// Filter returns a new array holding the elements for which pred holds, in order.
func (a Array[T]) Filter(pred func(T) bool) Array[T] {
	var vals []T
	for _, v := range a.vals {
		if pred(v) {
			vals = append(vals, v)
		}
	}
	return Array[T]{vals: vals}
}

// ForEach calls f on every element in ascending order.
func (a Array[T]) ForEach(f func(T)) {
	for _, v := range a.vals {
		f(v)
	}
}

// Reduce folds f over the elements from left to right, starting at z.
func Reduce[T, A any](f func(A, T) A, z A, a Array[T]) A {
	acc := z
	for _, v := range a.vals {
		acc = f(acc, v)
	}
	return acc
}

// ReduceRight folds f over the elements from right to left, starting at z.
func ReduceRight[T, A any](f func(T, A) A, z A, a Array[T]) A {
	acc := z
	for i := len(a.vals) - 1; i >= 0; i-- {
		acc = f(a.vals[i], acc)
	}
	return acc
}

// Every reports whether pred holds for every element (vacuously true when empty).
func (a Array[T]) Every(pred func(T) bool) bool {
	for _, v := range a.vals {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Some reports whether pred holds for at least one element.
func (a Array[T]) Some(pred func(T) bool) bool {
	for _, v := range a.vals {
		if pred(v) {
			return true
		}
	}
	return false
}

// Count returns the number of elements for which pred holds.
func (a Array[T]) Count(pred func(T) bool) int {
	n := 0
	for _, v := range a.vals {
		if pred(v) {
			n++
		}
	}
	return n
}

// Find returns the first element for which pred holds.
func (a Array[T]) Find(pred func(T) bool) (_ T, _ bool) {
	for _, v := range a.vals {
		if pred(v) {
			return v, true
		}
	}
	return
}

// FindIndex returns the index of the first element for which pred holds, or -1.
func (a Array[T]) FindIndex(pred func(T) bool) int {
	for i, v := range a.vals {
		if pred(v) {
			return i
		}
	}
	return -1
}

// Contains reports whether any element equals v under eq.
func (a Array[T]) Contains(v T, eq func(T, T) bool) bool {
	return a.Some(func(x T) bool { return eq(x, v) })
}

// FlatMap applies f to every element and concatenates the results, in order.
func FlatMap[T, U any](f func(T) Array[U], a Array[T]) Array[U] {
	var vals []U
	for _, v := range a.vals {
		vals = append(vals, f(v).vals...)
	}
	return Array[U]{vals: vals}
}

// Zip pairs up elements of a and b, sized by the shorter input.
func Zip[T, U any](a Array[T], b Array[U]) Array[[2]any] {
	return ZipWith(func(x T, y U) [2]any { return [2]any{x, y} }, a, b)
}

// ZipWith combines a and b elementwise with f, sized by the shorter input.
func ZipWith[T, U, V any](f func(T, U) V, a Array[T], b Array[U]) Array[V] {
	n := len(a.vals)
	if len(b.vals) < n {
		n = len(b.vals)
	}
	vals := make([]V, n)
	for i := 0; i < n; i++ {
		vals[i] = f(a.vals[i], b.vals[i])
	}
	return Array[V]{vals: vals}
}

// Unzip splits an array of pairs into two arrays.
func Unzip[T, U any](a Array[[2]any]) (Array[T], Array[U]) {
	xs := make([]T, len(a.vals))
	ys := make([]U, len(a.vals))
	for i, p := range a.vals {
		xs[i] = p[0].(T)
		ys[i] = p[1].(U)
	}
	return Array[T]{vals: xs}, Array[U]{vals: ys}
}

// Product returns every pair (x, y) with x from a and y from b, row-major.
func Product[T, U any](a Array[T], b Array[U]) Array[[2]any] {
	vals := make([][2]any, 0, len(a.vals)*len(b.vals))
	for _, x := range a.vals {
		for _, y := range b.vals {
			vals = append(vals, [2]any{x, y})
		}
	}
	return Array[[2]any]{vals: vals}
}

// Join renders the elements separated by sep using toString.
func (a Array[T]) Join(sep string, toString func(T) string) string {
	out := ""
	for i, v := range a.vals {
		if i > 0 {
			out += sep
		}
		out += toString(v)
	}
	return out
}

// Unique returns a new array with duplicate elements removed, keeping
// the first occurrence, using eq for equality.
func (a Array[T]) Unique(eq func(T, T) bool) Array[T] {
	var vals []T
	for _, v := range a.vals {
		dup := false
		for _, u := range vals {
			if eq(u, v) {
				dup = true
				break
			}
		}
		if !dup {
			vals = append(vals, v)
		}
	}
	return Array[T]{vals: vals}
}

// ToList converts a to a persistent list in ascending index order.
func (a Array[T]) ToList() *plist.List[T] {
	return plist.FromSlice(a.vals)
}

// FromList builds an array from a persistent list, in list order.
func FromList[T any](l *plist.List[T]) Array[T] {
	return Array[T]{vals: plist.ToSlice(l)}
}

// Fill sets every element of a to v, in place.
func (a Array[T]) Fill(v T) {
	for i := range a.vals {
		a.vals[i] = v
	}
}

// FillRange sets a[start:stop) to v, in place. Negative bounds wrap
// from the end; it fails if start > Length(a) or start > stop after
// wrapping; stop is clamped to Length(a).
func (a Array[T]) FillRange(v T, start, stop int) error {
	n := len(a.vals)
	start = resolve(start, n)
	stop = resolve(stop, n)
	if stop > n {
		stop = n
	}
	if start > n {
		return fmt.Errorf("marray.FillRange: start %d exceeds length %d: %w", start, n, ErrInvalidArgument)
	}
	if start > stop {
		return fmt.Errorf("marray.FillRange: start %d exceeds stop %d: %w", start, stop, ErrInvalidArgument)
	}
	for i := start; i < stop; i++ {
		a.vals[i] = v
	}
	return nil
}
