//go:build goexperiment.arenas

package rrb

import "arena"

// DeepCopyWithArena returns a copy of a with every Node and backing
// slice allocated out of ar, rather than the garbage-collected heap.
// Useful when an Array is about to be held for a long, bounded
// lifetime (e.g. one request) and the caller wants its backing memory
// released in bulk when ar is freed, instead of piecemeal by the collector.
func (a Array[T]) DeepCopyWithArena(ar *arena.Arena) Array[T] {
	root := arena.MakeSlice[Node[T]](ar, len(a.root), len(a.root))
	for i, n := range a.root {
		root[i] = n.deepCopyWithArena(ar)
	}
	tail := arena.MakeSlice[T](ar, len(a.tail), len(a.tail))
	copy(tail, a.tail)
	return Array[T]{length: a.length, shift: a.shift, root: root, tail: tail}
}

// deepCopyWithArena recursively copies n and its descendants into ar.
func (n Node[T]) deepCopyWithArena(ar *arena.Arena) Node[T] {
	if n.isLeaf() {
		values := arena.MakeSlice[T](ar, len(n.values), len(n.values))
		copy(values, n.values)
		return Node[T]{values: values}
	}
	children := arena.MakeSlice[Node[T]](ar, len(n.children), len(n.children))
	for i, c := range n.children {
		children[i] = c.deepCopyWithArena(ar)
	}
	return Node[T]{children: children}
}
