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
	"github.com/google/rrb/internal/plist"
	"github.com/google/rrb/marray"
)

// toMarray flattens a into a marray.Array, the substrate every derived
// traversal below is actually computed over (rrb.go's package doc
// explains why: these operations' correctness never depends on tree
// shape, only on element order).
func toMarray[T any](a Array[T]) marray.Array[T] {
	return marray.Of(collectAll(a))
}

// ForEach calls f on every element of a in ascending index order.
func (a Array[T]) ForEach(f func(T)) {
	toMarray(a).ForEach(f)
}

// Map returns a new array of f applied to every element of a, in order.
func Map[T, U any](f func(T) U, a Array[T]) Array[U] {
	return FromList(marray.Map(f, toMarray(a)).ToList())
}

// Filter returns a new array holding the elements of a for which pred holds, in order.
func (a Array[T]) Filter(pred func(T) bool) Array[T] {
	return FromList(toMarray(a).Filter(pred).ToList())
}

// Reduce folds f over a's elements from left to right, starting at z.
func Reduce[T, A any](f func(A, T) A, z A, a Array[T]) A {
	return marray.Reduce(f, z, toMarray(a))
}

// ReduceRight folds f over a's elements from right to left, starting at z.
func ReduceRight[T, A any](f func(T, A) A, z A, a Array[T]) A {
	return marray.ReduceRight(f, z, toMarray(a))
}

// Every reports whether pred holds for every element of a (vacuously true when empty).
func (a Array[T]) Every(pred func(T) bool) bool {
	return toMarray(a).Every(pred)
}

// Some reports whether pred holds for at least one element of a.
func (a Array[T]) Some(pred func(T) bool) bool {
	return toMarray(a).Some(pred)
}

// Count returns the number of elements of a for which pred holds.
func (a Array[T]) Count(pred func(T) bool) int {
	return toMarray(a).Count(pred)
}

// Find returns the first element of a for which pred holds.
func (a Array[T]) Find(pred func(T) bool) (T, bool) {
	return toMarray(a).Find(pred)
}

// FindIndex returns the index of the first element of a for which pred holds, or -1.
func (a Array[T]) FindIndex(pred func(T) bool) int {
	return toMarray(a).FindIndex(pred)
}

// Contains reports whether any element of a equals v under eq.
func (a Array[T]) Contains(v T, eq func(T, T) bool) bool {
	return toMarray(a).Contains(v, eq)
}

// FlatMap applies f to every element of a and concatenates the results, in order.
func FlatMap[T, U any](f func(T) Array[U], a Array[T]) Array[U] {
	mf := func(v T) marray.Array[U] { return toMarray(f(v)) }
	return FromList(marray.FlatMap(mf, toMarray(a)).ToList())
}

// Zip pairs up elements of a and b, sized by the shorter input.
func Zip[T, U any](a Array[T], b Array[U]) Array[[2]any] {
	return FromList(marray.Zip(toMarray(a), toMarray(b)).ToList())
}

// ZipWith combines a and b elementwise with f, sized by the shorter input.
func ZipWith[T, U, V any](f func(T, U) V, a Array[T], b Array[U]) Array[V] {
	return FromList(marray.ZipWith(f, toMarray(a), toMarray(b)).ToList())
}

// Unzip splits an array of pairs into two arrays.
func Unzip[T, U any](a Array[[2]any]) (Array[T], Array[U]) {
	xs, ys := marray.Unzip[T, U](toMarray(a))
	return FromList(xs.ToList()), FromList(ys.ToList())
}

// Product returns every pair (x, y) with x from a and y from b, row-major.
func Product[T, U any](a Array[T], b Array[U]) Array[[2]any] {
	return FromList(marray.Product(toMarray(a), toMarray(b)).ToList())
}

// Join renders a's elements separated by sep using toString.
func (a Array[T]) Join(sep string, toString func(T) string) string {
	return toMarray(a).Join(sep, toString)
}

// Unique returns a new array with duplicate elements of a removed,
// keeping the first occurrence, using eq for equality.
func (a Array[T]) Unique(eq func(T, T) bool) Array[T] {
	return FromList(toMarray(a).Unique(eq).ToList())
}

// Reverse returns a new array with a's elements in reverse order.
func (a Array[T]) Reverse() Array[T] {
	return FromList(toMarray(a).Reverse().ToList())
}

// Sort returns a new array with a's elements ordered by cmp (negative
// if x < y, zero if equal, positive if x > y); not guaranteed stable.
func (a Array[T]) Sort(cmp func(x, y T) int) Array[T] {
	m := toMarray(a).Copy()
	m.Sort(cmp)
	return FromList(m.ToList())
}

// Rotate returns a new array with elements shifted left by n positions
// (negative n shifts right), wrapping around; equivalent to
// Append(Slice(a, n mod Length(a), Length(a)), Slice(a, 0, n mod Length(a))).
func (a Array[T]) Rotate(n int) Array[T] {
	if a.length == 0 {
		return a
	}
	k := ((n % a.length) + a.length) % a.length
	return Append(a.Slice(k, a.length), a.Slice(0, k))
}

// Cycle returns a new array of length n holding a's elements repeated
// (and truncated) to fill it; Cycle with n <= 0 or an empty a returns Empty.
func Cycle[T any](a Array[T], n int) Array[T] {
	if n <= 0 || a.IsEmpty() {
		return Empty[T]()
	}
	src := collectAll(a)
	out := make([]T, n)
	for i := range out {
		out[i] = src[i%len(src)]
	}
	return FromList(plist.FromSlice(out))
}

// Pop returns a new array with its last element removed, or Empty if a
// is already empty. It mirrors tail promotion in reverse: when a's
// tail is empty, the rightmost Leaf is pulled back out of the tree and
// becomes the new tail, collapsing the root by one level whenever that
// leaves a single Internal child remaining.
func Pop[T any](a Array[T]) Array[T] {
	if a.length == 0 {
		return a
	}
	if len(a.tail) > 0 {
		newTail := a.tail[:len(a.tail)-1]
		cp := make([]T, len(newTail))
		copy(cp, newTail)
		return Array[T]{length: a.length - 1, shift: a.shift, root: a.root, tail: cp}
	}

	root, shift, leaf := popLastLeaf(a.root, a.shift)
	for shift > Bbits && len(root) == 1 {
		root = root[0].children
		shift -= Bbits
	}
	newTail := make([]T, len(leaf.values)-1)
	copy(newTail, leaf.values)
	return Array[T]{length: a.length - 1, shift: shift, root: root, tail: newTail}
}

// popLastLeaf removes and returns the rightmost Leaf reachable from
// children, along with the (possibly shrunk) sibling slice and its shift.
func popLastLeaf[T any](children []Node[T], shift uint) ([]Node[T], uint, Node[T]) {
	last := len(children) - 1
	child := children[last]
	if child.isLeaf() {
		out := make([]Node[T], last)
		copy(out, children[:last])
		return out, shift, child
	}
	newGrandchildren, _, leaf := popLastLeaf(child.children, shift-Bbits)
	out := make([]Node[T], len(children))
	copy(out, children)
	if len(newGrandchildren) == 0 {
		out = out[:last]
	} else {
		out[last] = newInternal(newGrandchildren)
	}
	return out, shift, leaf
}
