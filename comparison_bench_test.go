package idset

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
)

// Comparative benchmarks: idset vs roaring vs bits-and-blooms.
// Run with: go test -bench=. -benchmem .

const benchBits = 1 << 16

// ==============================================================================
// Insert comparison
// ==============================================================================

func BenchmarkComparison_Insert_AtomicSet(b *testing.B) {
	s := NewAtomicSet(benchBits / SlotBits)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Insert(uint64(i) % benchBits)
	}
}

func BenchmarkComparison_Insert_Roaring(b *testing.B) {
	rb := roaring.New()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		rb.Add(uint32(i % benchBits))
	}
}

func BenchmarkComparison_Insert_BitsAndBlooms(b *testing.B) {
	s := bitset.New(benchBits)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Set(uint(i) % benchBits)
	}
}

// ==============================================================================
// Has comparison
// ==============================================================================

func BenchmarkComparison_Has_AtomicSet(b *testing.B) {
	s := NewAtomicSet(benchBits / SlotBits)
	for i := uint64(0); i < benchBits; i += 2 {
		s.Insert(i)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Has(uint64(i) % benchBits)
	}
}

func BenchmarkComparison_Has_Roaring(b *testing.B) {
	rb := roaring.New()
	for i := uint32(0); i < benchBits; i += 2 {
		rb.Add(i)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		rb.Contains(uint32(i % benchBits))
	}
}

func BenchmarkComparison_Has_BitsAndBlooms(b *testing.B) {
	s := bitset.New(benchBits)
	for i := uint(0); i < benchBits; i += 2 {
		s.Set(i)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Test(uint(i) % benchBits)
	}
}

// ==============================================================================
// Allocation
// ==============================================================================

func BenchmarkAllocator_AcquireRelease(b *testing.B) {
	a := NewAllocator(benchBits / SlotBits)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		index, ok := a.Acquire()
		if !ok {
			b.Fatal("exhausted")
		}
		a.Release(index)
	}
}

func BenchmarkAllocator_AcquireRelease_Parallel(b *testing.B) {
	a := NewAllocator(benchBits / SlotBits)

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			index, ok := a.Acquire()
			if !ok {
				continue
			}
			a.Release(index)
		}
	})
}

func BenchmarkAtomicSet_Size(b *testing.B) {
	s := NewAtomicSet(benchBits / SlotBits)
	for i := uint64(0); i < benchBits; i += 3 {
		s.Insert(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Size()
	}
}
