package rrb

import (
	"flag"
	"math/rand"
	"reflect"
	"testing"

	"github.com/google/rrb/internal/plist"
)

var arraySize = flag.Int("rrbsize", 5000, "array size for randomized rrb tests")

func toSlice[T any](a Array[T]) []T {
	return collectAll(a)
}

func intCmp(a, b int) int { return a - b }

func TestInitAndGet(t *testing.T) {
	a, err := Init(5, func(i int) int { return i + 3 })
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if a.Length() != 5 {
		t.Fatalf("Length = %d, want 5", a.Length())
	}
	want := []int{3, 4, 5, 6, 7}
	if got := toSlice(a); !reflect.DeepEqual(got, want) {
		t.Fatalf("Init = %v, want %v", got, want)
	}

	if _, err := Init(-1, func(int) int { return 0 }); err == nil {
		t.Fatalf("Init(-1, ...) should fail")
	}
}

func TestEmpty(t *testing.T) {
	e := Empty[int]()
	if !e.IsEmpty() || e.Length() != 0 {
		t.Fatalf("Empty() is not empty: length=%d", e.Length())
	}
	if _, err := e.Get(0); err == nil {
		t.Fatalf("Get(0) on empty should fail")
	}
}

func TestGetSetNegativeIndex(t *testing.T) {
	a, _ := Init(5, func(i int) int { return i })
	v, err := a.Get(-1)
	if err != nil || v != 4 {
		t.Fatalf("Get(-1) = %d, %v; want 4, nil", v, err)
	}
	b, err := a.Set(-1, 99)
	if err != nil {
		t.Fatalf("Set(-1, 99): %v", err)
	}
	if v, _ := b.Get(4); v != 99 {
		t.Fatalf("Set(-1,99) then Get(4) = %d, want 99", v)
	}
	if v, _ := a.Get(4); v != 4 {
		t.Fatalf("original array mutated: Get(4) = %d, want 4", v)
	}
	if _, err := a.Get(5); err == nil {
		t.Fatalf("Get(5) out of bounds should fail")
	}
	if _, err := a.Set(-6, 0); err == nil {
		t.Fatalf("Set(-6, ...) out of bounds should fail")
	}
}

// TestAppendAcrossLeafBoundary walks an array through 0, B-1, B, B+1 and
// a handful of Leaf promotions, checking every element after each step.
func TestAppendAcrossLeafBoundary(t *testing.T) {
	a := Empty[int]()
	for i := 0; i < B*3+5; i++ {
		a = appendOne(a, i)
		if a.Length() != i+1 {
			t.Fatalf("after appending %d elements, Length = %d", i+1, a.Length())
		}
		for j := 0; j <= i; j++ {
			v, err := a.Get(j)
			if err != nil || v != j {
				t.Fatalf("Get(%d) after %d appends = %d, %v; want %d, nil", j, i+1, v, err, j)
			}
		}
	}
}

// appendOne appends a single value via the same tail-fusion path Append
// itself uses (a length-1 right-hand side always takes the incremental route).
func appendOne[T any](a Array[T], v T) Array[T] {
	one, _ := Init(1, func(int) T { return v })
	return Append(a, one)
}

func TestAppendBuilderPath(t *testing.T) {
	a, _ := Init(10, func(i int) int { return i })
	b, _ := Init(appendBuilderThreshold+50, func(i int) int { return i + 1000 })
	c := Append(a, b)
	if c.Length() != a.Length()+b.Length() {
		t.Fatalf("Length = %d, want %d", c.Length(), a.Length()+b.Length())
	}
	want := append(toSlice(a), toSlice(b)...)
	if got := toSlice(c); !reflect.DeepEqual(got, want) {
		t.Fatalf("Append (builder path) mismatch")
	}
}

func TestConcat(t *testing.T) {
	a, _ := Init(3, func(i int) int { return i })
	b, _ := Init(3, func(i int) int { return i + 10 })
	c, _ := Init(3, func(i int) int { return i + 20 })
	got := toSlice(Concat([]Array[int]{a, b, c}))
	want := []int{0, 1, 2, 10, 11, 12, 20, 21, 22}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Concat = %v, want %v", got, want)
	}
}

func TestSequentialAppendMatchesReferenceSlice(t *testing.T) {
	n := *arraySize
	a := Empty[int]()
	var ref []int
	for i := 0; i < n; i++ {
		a = appendOne(a, i)
		ref = append(ref, i)
		if i%97 == 0 {
			if got := toSlice(a); !reflect.DeepEqual(got, ref) {
				t.Fatalf("mismatch at length %d", i+1)
			}
		}
	}
	if got := toSlice(a); !reflect.DeepEqual(got, ref) {
		t.Fatalf("final mismatch")
	}
}

func TestFromListToList(t *testing.T) {
	a, _ := Init(10, func(i int) int { return i * i })
	l := a.ToList()
	b := FromList(l)
	if !reflect.DeepEqual(toSlice(a), toSlice(b)) {
		t.Fatalf("ToList/FromList round trip mismatch")
	}
}

func TestSlice(t *testing.T) {
	a, _ := Init(10, func(i int) int { return i })
	cases := []struct {
		start, end int
		want       []int
	}{
		{0, 10, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{2, 5, []int{2, 3, 4}},
		{-3, 10, []int{7, 8, 9}},
		{5, 5, nil},
		{8, 2, nil},
		{0, 1000, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
	}
	for _, c := range cases {
		got := toSlice(a.Slice(c.start, c.end))
		if len(got) == 0 && len(c.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Slice(%d,%d) = %v, want %v", c.start, c.end, got, c.want)
		}
	}
}

func TestRotate(t *testing.T) {
	a, _ := Init(5, func(i int) int { return i + 1 })
	if got := toSlice(a.Rotate(2)); !reflect.DeepEqual(got, []int{3, 4, 5, 1, 2}) {
		t.Fatalf("Rotate(2) = %v, want [3 4 5 1 2]", got)
	}
	if got := toSlice(a.Rotate(-1)); !reflect.DeepEqual(got, []int{5, 1, 2, 3, 4}) {
		t.Fatalf("Rotate(-1) = %v, want [5 1 2 3 4]", got)
	}
	if got := toSlice(a.Rotate(0)); !reflect.DeepEqual(got, toSlice(a)) {
		t.Fatalf("Rotate(0) should be a no-op, got %v", got)
	}
	empty := Empty[int]()
	if got := empty.Rotate(3); got.Length() != 0 {
		t.Fatalf("Rotate on empty must stay empty, got length %d", got.Length())
	}
}

func TestSort(t *testing.T) {
	n := *arraySize
	vals := make([]int, n)
	for i := range vals {
		vals[i] = rand.Intn(n * 10)
	}
	a := FromList(plist.FromSlice(vals))
	sorted := a.Sort(intCmp)
	got := toSlice(sorted)
	for i := 1; i < len(got); i++ {
		if got[i-1] > got[i] {
			t.Fatalf("not sorted at %d: %v", i, got[i-1:i+1])
		}
	}
	orig := toSlice(a)
	if !reflect.DeepEqual(orig, vals) {
		t.Fatalf("Sort mutated the original array")
	}
}

func TestMapFilterReduce(t *testing.T) {
	a, _ := Init(10, func(i int) int { return i })
	doubled := Map(func(x int) int { return x * 2 }, a)
	want := []int{0, 2, 4, 6, 8, 10, 12, 14, 16, 18}
	if got := toSlice(doubled); !reflect.DeepEqual(got, want) {
		t.Fatalf("Map = %v, want %v", got, want)
	}

	evens := a.Filter(func(x int) bool { return x%2 == 0 })
	if got := toSlice(evens); !reflect.DeepEqual(got, []int{0, 2, 4, 6, 8}) {
		t.Fatalf("Filter = %v, want [0 2 4 6 8]", got)
	}

	sum := Reduce(func(acc, x int) int { return acc + x }, 0, a)
	if sum != 45 {
		t.Fatalf("Reduce sum = %d, want 45", sum)
	}

	diffs := ReduceRight(func(x int, acc string) string {
		if acc == "" {
			return itoa(x)
		}
		return itoa(x) + "," + acc
	}, "", a.Slice(0, 3))
	if diffs != "0,1,2" {
		t.Fatalf("ReduceRight = %q, want %q", diffs, "0,1,2")
	}
}

func itoa(x int) string {
	if x == 0 {
		return "0"
	}
	neg := x < 0
	if neg {
		x = -x
	}
	var buf [20]byte
	i := len(buf)
	for x > 0 {
		i--
		buf[i] = byte('0' + x%10)
		x /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func TestFindContainsCount(t *testing.T) {
	a, _ := Init(10, func(i int) int { return i })
	v, ok := a.Find(func(x int) bool { return x > 5 })
	if !ok || v != 6 {
		t.Fatalf("Find = %d, %v; want 6, true", v, ok)
	}
	if idx := a.FindIndex(func(x int) bool { return x == 7 }); idx != 7 {
		t.Fatalf("FindIndex = %d, want 7", idx)
	}
	if !a.Contains(3, func(x, y int) bool { return x == y }) {
		t.Fatalf("Contains(3) = false, want true")
	}
	if a.Count(func(x int) bool { return x%3 == 0 }) != 4 {
		t.Fatalf("Count multiples of 3 != 4")
	}
	if !a.Every(func(x int) bool { return x >= 0 }) {
		t.Fatalf("Every should hold")
	}
	if !a.Some(func(x int) bool { return x == 9 }) {
		t.Fatalf("Some should hold")
	}
}

func TestZipWithUnzip(t *testing.T) {
	a, _ := Init(3, func(i int) int { return i + 1 })
	b, _ := Init(2, func(i int) int { return i + 4 })
	got := toSlice(ZipWith(func(x, y int) int { return x * y }, a, b))
	want := []int{4, 10}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ZipWith = %v, want %v", got, want)
	}

	pairs := Zip(a, b)
	xs, ys := Unzip[int, int](pairs)
	if !reflect.DeepEqual(toSlice(xs), []int{1, 2}) || !reflect.DeepEqual(toSlice(ys), []int{4, 5}) {
		t.Fatalf("Unzip mismatch: xs=%v ys=%v", toSlice(xs), toSlice(ys))
	}
}

func TestUnique(t *testing.T) {
	a := FromList(plist.FromSlice([]int{1, 2, 2, 3, 1, 4}))
	got := toSlice(a.Unique(func(x, y int) bool { return x == y }))
	want := []int{1, 2, 3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Unique = %v, want %v", got, want)
	}
}

func TestReverse(t *testing.T) {
	a, _ := Init(5, func(i int) int { return i })
	got := toSlice(a.Reverse())
	want := []int{4, 3, 2, 1, 0}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Reverse = %v, want %v", got, want)
	}
}

func TestCycle(t *testing.T) {
	a, _ := Init(3, func(i int) int { return i })
	got := toSlice(Cycle(a, 7))
	want := []int{0, 1, 2, 0, 1, 2, 0}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Cycle = %v, want %v", got, want)
	}
	if got := Cycle(a, 0); !got.IsEmpty() {
		t.Fatalf("Cycle with n=0 should be empty")
	}
	if got := Cycle(Empty[int](), 5); !got.IsEmpty() {
		t.Fatalf("Cycle of empty should be empty")
	}
}

func TestPop(t *testing.T) {
	a := Empty[int]()
	for i := 0; i < B*3+7; i++ {
		a = appendOne(a, i)
	}
	for a.Length() > 0 {
		want := a.Length() - 1
		a = Pop(a)
		if a.Length() != want {
			t.Fatalf("Pop: Length = %d, want %d", a.Length(), want)
		}
		got := toSlice(a)
		for i, v := range got {
			if v != i {
				t.Fatalf("Pop left stale element at %d: %d", i, v)
			}
		}
	}
	if popped := Pop(Empty[int]()); popped.Length() != 0 {
		t.Fatalf("Pop on empty should stay empty")
	}
}

func TestJoin(t *testing.T) {
	a, _ := Init(3, func(i int) int { return i })
	got := a.Join(",", itoa)
	if got != "0,1,2" {
		t.Fatalf("Join = %q, want %q", got, "0,1,2")
	}
}
