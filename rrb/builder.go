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

// Builder is the short-lived scratch value used to assemble a large
// Array without repeated tail promotion: Init, FromList, and the
// bulk-append path of Append all route through one. It is owned
// exclusively by the call that constructs it and is never shared or
// published.
//
// nodes holds completed Leaves in left-to-right logical order, grown
// by plain append; builderToArray compresses them into Internal nodes
// in a local slice. No reversal is ever needed, at construction time
// or at finalization.
type Builder[T any] struct {
	btail    []T
	nodes    []Node[T]
	numNodes int
	freelist *NodeFreeList[T]
}

// newBuilder creates an empty Builder, drawing scratch buffers from freelist.
func newBuilder[T any](freelist *NodeFreeList[T]) *Builder[T] {
	return &Builder[T]{freelist: freelist}
}

// appendToBuilder packs chunk into b.btail, B elements at a time,
// converting each full btail into a completed Leaf. The scratch btail
// buffer itself is returned to the free list once its contents are
// copied into the Leaf, so one pooled buffer can be reused across
// every Leaf a single Builder produces.
func (b *Builder[T]) appendToBuilder(chunk []T) {
	for len(chunk) > 0 {
		if b.btail == nil {
			b.btail = b.freelist.newLeafBuf()
		}
		room := B - len(b.btail)
		take := room
		if take > len(chunk) {
			take = len(chunk)
		}
		b.btail = append(b.btail, chunk[:take]...)
		chunk = chunk[take:]
		if len(b.btail) == B {
			values := make([]T, B)
			copy(values, b.btail)
			b.nodes = append(b.nodes, newLeaf(values))
			b.numNodes++
			b.freelist.freeLeafBuf(b.btail)
			b.btail = nil
		}
	}
}

// builderToArray finalizes b into an Array, consuming it.
func builderToArray[T any](b *Builder[T]) Array[T] {
	tail := make([]T, len(b.btail))
	copy(tail, b.btail)

	if b.numNodes == 0 {
		return Array[T]{length: len(tail), shift: Bbits, tail: tail}
	}

	nodes := b.nodes
	pooled := false
	passes := 0
	for {
		next := compressNodes(nodes, b.freelist)
		if pooled {
			b.freelist.freeChildBuf(nodes)
		}
		nodes = next
		pooled = true
		passes++
		if len(nodes) <= 1 {
			break
		}
	}
	root := nodes[0].children
	shift := uint(passes) * Bbits
	treeSize := b.numNodes * B
	return Array[T]{length: treeSize + len(tail), shift: shift, root: root, tail: tail}
}

// compressNodes partitions nodes into chunks of at most B, wrapping
// each chunk in a new Internal node, yielding a list of length
// ceil(len(nodes)/B).
func compressNodes[T any](nodes []Node[T], freelist *NodeFreeList[T]) []Node[T] {
	out := make([]Node[T], 0, (len(nodes)+B-1)/B)
	for i := 0; i < len(nodes); i += B {
		end := i + B
		if end > len(nodes) {
			end = len(nodes)
		}
		chunk := freelist.newChildBuf()
		chunk = append(chunk, nodes[i:end]...)
		out = append(out, newInternal(chunk))
	}
	return out
}

// arrayToBuilder flattens a's tree into the Leaves it currently holds,
// in left-to-right order, seeding a Builder with a's tail as its
// partial btail.
func arrayToBuilder[T any](a Array[T], freelist *NodeFreeList[T]) *Builder[T] {
	b := newBuilder[T](freelist)
	b.nodes = collectLeaves(a.root)
	b.numNodes = a.length >> Bbits
	if len(a.tail) > 0 {
		b.btail = append([]T(nil), a.tail...)
	}
	return b
}

// collectLeaves walks root (the tree portion of an Array) and returns
// its Leaves in left-to-right order.
func collectLeaves[T any](root []Node[T]) []Node[T] {
	var leaves []Node[T]
	var walk func(Node[T])
	walk = func(n Node[T]) {
		if n.isLeaf() {
			leaves = append(leaves, n)
			return
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	for _, n := range root {
		walk(n)
	}
	return leaves
}
