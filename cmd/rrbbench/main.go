// Command rrbbench exercises rrb.Array end to end: it builds a large
// array via Init, appends in both the incremental and bulk-threshold
// regimes, slices and sorts it, and logs how long each step took. It
// has no bearing on the library's correctness; it exists to give the
// package a runnable surface, the way a library sometimes ships a
// small demo binary alongside its tests.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/google/rrb/rrb"
)

func main() {
	size := flag.Int("size", 1_000_000, "number of elements to build")
	flag.Parse()

	start := time.Now()
	a, err := rrb.Init(*size, func(i int) int { return i })
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	log.Printf("init %d elements: %s", *size, time.Since(start))

	start = time.Now()
	for i := 0; i < rrb.B+1; i++ {
		a, err = a.Set(i, -i)
		if err != nil {
			log.Fatalf("set: %v", err)
		}
	}
	log.Printf("%d incremental sets: %s", rrb.B+1, time.Since(start))

	start = time.Now()
	small, err := rrb.Init(8, func(i int) int { return i })
	if err != nil {
		log.Fatalf("init small: %v", err)
	}
	a = rrb.Append(a, small)
	log.Printf("append %d elements: %s", small.Length(), time.Since(start))

	start = time.Now()
	bulk, err := rrb.Init(rrb.B*64, func(i int) int { return i })
	if err != nil {
		log.Fatalf("init bulk: %v", err)
	}
	a = rrb.Append(a, bulk)
	log.Printf("append %d elements (builder path): %s", bulk.Length(), time.Since(start))

	start = time.Now()
	mid := a.Slice(a.Length()/4, a.Length()/2)
	log.Printf("slice %d elements: %s", mid.Length(), time.Since(start))

	start = time.Now()
	sorted := mid.Sort(func(x, y int) int { return x - y })
	log.Printf("sort %d elements: %s", sorted.Length(), time.Since(start))

	log.Printf("final length: %d", a.Length())
}
