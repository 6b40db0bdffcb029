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

package marray

// Sort sorts a in place using a Lomuto-partition quicksort. It is not
// stable; worst case O(n^2), expected O(n log n). cmp follows the
// usual contract: negative when x < y, zero when equal, positive when x > y.
func (a Array[T]) Sort(cmp func(x, y T) int) {
	quicksort(a.vals, 0, len(a.vals)-1, cmp)
}

func quicksort[T any](vals []T, lo, hi int, cmp func(T, T) int) {
	if lo >= hi {
		return
	}
	p := lomutoPartition(vals, lo, hi, cmp)
	quicksort(vals, lo, p-1, cmp)
	quicksort(vals, p+1, hi, cmp)
}

// lomutoPartition partitions vals[lo:hi+1] around the pivot vals[hi]
// and returns the pivot's final index.
func lomutoPartition[T any](vals []T, lo, hi int, cmp func(T, T) int) int {
	pivot := vals[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if cmp(vals[j], pivot) < 0 {
			vals[i], vals[j] = vals[j], vals[i]
			i++
		}
	}
	vals[i], vals[hi] = vals[hi], vals[i]
	return i
}
