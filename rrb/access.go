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

// Get returns the element at index i, wrapping negative i from the
// end, or ErrIndexOutOfBounds if i is outside [0, Length(a)).
func (a Array[T]) Get(i int) (T, error) {
	idx := resolveIndex(i, a.length)
	if idx < 0 || idx >= a.length {
		var zero T
		return zero, outOfBounds(i, a.length)
	}
	if idx >= tailStart(a.length) {
		return a.tail[idx&mask], nil
	}
	return getFromRoot(a.root, a.shift, idx), nil
}

// getFromRoot descends from the root, held as its own children slice,
// to the leaf holding index idx.
func getFromRoot[T any](root []Node[T], shift uint, idx int) T {
	slot := (idx >> shift) & mask
	child := root[slot]
	return getFromNode(child, shift-Bbits, idx)
}

func getFromNode[T any](n Node[T], shift uint, idx int) T {
	if n.isLeaf() {
		return n.values[idx&mask]
	}
	slot := (idx >> shift) & mask
	return getFromNode(n.children[slot], shift-Bbits, idx)
}

// Set returns a new array identical to a except index i holds v,
// wrapping negative i from the end. Fails with ErrIndexOutOfBounds if
// i is outside [0, Length(a)). Only the spine from root to the
// touched leaf is copied; every off-path node and the root's other
// top-level children are shared.
func (a Array[T]) Set(i int, v T) (Array[T], error) {
	idx := resolveIndex(i, a.length)
	if idx < 0 || idx >= a.length {
		return Array[T]{}, outOfBounds(i, a.length)
	}
	if idx >= tailStart(a.length) {
		newTail := make([]T, len(a.tail))
		copy(newTail, a.tail)
		newTail[idx&mask] = v
		return Array[T]{length: a.length, shift: a.shift, root: a.root, tail: newTail}, nil
	}
	newRoot := make([]Node[T], len(a.root))
	copy(newRoot, a.root)
	slot := (idx >> a.shift) & mask
	newRoot[slot] = setInNode(a.root[slot], a.shift-Bbits, idx, v)
	return Array[T]{length: a.length, shift: a.shift, root: newRoot, tail: a.tail}, nil
}

func setInNode[T any](n Node[T], shift uint, idx int, v T) Node[T] {
	if n.isLeaf() {
		values := n.cloneValues()
		values[idx&mask] = v
		return newLeaf(values)
	}
	slot := (idx >> shift) & mask
	children := n.cloneChildren()
	children[slot] = setInNode(children[slot], shift-Bbits, idx, v)
	return newInternal(children)
}
