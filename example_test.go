package idset_test

import (
	"fmt"

	"github.com/hupe1980/idset"
	"github.com/hupe1980/idset/slotcount"
)

func ExampleAllocator() {
	ids := idset.NewAllocator(slotcount.FromBits(128))

	ids.Reserve(0)

	index, ok := ids.Acquire()
	fmt.Println(index, ok)

	ids.Release(index)

	index, ok = ids.Acquire()
	fmt.Println(index, ok)
	// Output:
	// 1 true
	// 1 true
}

func ExampleAtomicSet() {
	s := idset.NewAtomicSet(slotcount.FromBits(64))

	prev, _ := s.Insert(42)
	fmt.Println(prev, s.Has(42))

	prev, _ = s.Insert(42)
	fmt.Println(prev, s.Size())
	// Output:
	// false true
	// true 1
}

func ExampleVec() {
	var v idset.Vec

	v.Insert(1_000_000) // grows to fit
	fmt.Println(v.Has(1_000_000), v.Size())
	// Output: true 1
}
