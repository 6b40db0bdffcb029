// Package plist implements the minimal persistent singly-linked list
// collaborator that the PersistentArray builder and slice operations
// consume: cons, empty, take, drop, reverse, foldLeft and foldRight.
//
// The list is immutable; every operation returns a new list sharing
// the tail of its argument. It is plumbing for the list conversions of
// marray.Array and rrb.Array — nothing outside this module's own
// packages is expected to import it.
package plist

// List[T] is a persistent singly-linked list, or nil for the empty list.
type List[T any] struct {
	head T
	tail *List[T]
}

// Empty returns the empty list.
func Empty[T any]() *List[T] {
	return nil
}

// Cons prepends v to l without modifying l.
func Cons[T any](v T, l *List[T]) *List[T] {
	return &List[T]{head: v, tail: l}
}

// Head returns the first element and true, or the zero value and
// false if l is empty.
func Head[T any](l *List[T]) (_ T, _ bool) {
	if l == nil {
		return
	}
	return l.head, true
}

// Tail returns the list with the first element removed. Tail(nil) is nil.
func Tail[T any](l *List[T]) *List[T] {
	if l == nil {
		return nil
	}
	return l.tail
}

// Len returns the number of elements in l.
func Len[T any](l *List[T]) int {
	n := 0
	for ; l != nil; l = l.tail {
		n++
	}
	return n
}

// Take returns the first k elements of l (or all of l if k >= Len(l)).
// k < 0 is treated as 0.
func Take[T any](k int, l *List[T]) *List[T] {
	if k <= 0 || l == nil {
		return nil
	}
	vals := make([]T, 0, k)
	for ; l != nil && len(vals) < k; l = l.tail {
		vals = append(vals, l.head)
	}
	return FromSlice(vals)
}

// Drop returns l with the first k elements removed. k < 0 is treated as 0.
func Drop[T any](k int, l *List[T]) *List[T] {
	for ; k > 0 && l != nil; k-- {
		l = l.tail
	}
	return l
}

// Reverse returns l with its elements in reverse order.
func Reverse[T any](l *List[T]) *List[T] {
	var out *List[T]
	for ; l != nil; l = l.tail {
		out = Cons(l.head, out)
	}
	return out
}

// FoldLeft folds f over l from head to tail: f(...f(f(z, l[0]), l[1])..., l[n-1]).
func FoldLeft[T, A any](f func(A, T) A, z A, l *List[T]) A {
	acc := z
	for ; l != nil; l = l.tail {
		acc = f(acc, l.head)
	}
	return acc
}

// FoldRight folds f over l from tail to head: f(l[0], f(l[1], ...f(l[n-1], z)...)).
func FoldRight[T, A any](f func(T, A) A, z A, l *List[T]) A {
	if l == nil {
		return z
	}
	return f(l.head, FoldRight(f, z, l.tail))
}

// FromSlice builds a list containing the elements of s in order.
func FromSlice[T any](s []T) *List[T] {
	var l *List[T]
	for i := len(s) - 1; i >= 0; i-- {
		l = Cons(s[i], l)
	}
	return l
}

// ToSlice collects l into a slice in head-to-tail order.
func ToSlice[T any](l *List[T]) []T {
	out := make([]T, 0, Len(l))
	for ; l != nil; l = l.tail {
		out = append(out, l.head)
	}
	return out
}
