// Package idset provides fixed-capacity bit-index sets with a lock-free
// index allocator.
//
// An idset stores boolean membership for integer indexes in a sequence of
// 64-bit slots declared once at construction. Three capability tiers share
// one operation surface:
//
//   - Reader: Capacity, Has, IsEmpty, Size
//   - Mutator: single-owner Clear, Insert, Remove (Set, Vec)
//   - SharedMutator: concurrent Clear, Insert, Remove via atomic
//     read-modify-write (AtomicSet, Allocator)
//
// # Quick Start
//
// Claim unique indexes from many goroutines without locks:
//
//	ids := idset.NewAllocator(slotcount.FromBits(1024))
//
//	index, ok := ids.Acquire() // lowest free bit, rotated scan
//	if !ok {
//	    // every index is taken
//	}
//	defer ids.Release(index)
//
// Single-owner membership tracking:
//
//	seen := idset.NewSet(slotcount.FromKilobytes(4))
//	prev, err := seen.Insert(42)
//
// Growable variant (the zero value is ready to use):
//
//	var v idset.Vec
//	v.Insert(1 << 20) // grows to fit
//
// # Concurrency Model
//
// Every slot is independently atomic; the set as a whole is not. Shared
// mutation and allocation complete via bounded CAS retries and never
// block. Aggregate operations (Size, IsEmpty, Clear) walk the slots one
// atomic step at a time and observe a valid but not linearizable snapshot
// under concurrent mutation. Set and Vec perform no synchronization and
// require exclusive access.
//
// # Allocation
//
// Allocator.Acquire scans the slots starting at an advisory rotation
// cursor, skips saturated words, and claims the lowest free bit of the
// first claimable word with a compare-and-swap. The cursor only spreads
// contention across slots; correctness comes from the per-word CAS alone.
// Exhaustion is an expected outcome, reported as ok=false, and may become
// satisfiable again once indexes are released.
package idset
