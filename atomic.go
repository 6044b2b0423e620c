package idset

import (
	"math/bits"
	"sync/atomic"
)

// AtomicSet is a fixed-capacity bit-index set safe for concurrent use
// without locks.
//
// Every slot is an independently atomic 64-bit word; Insert is an atomic
// OR, Remove an atomic AND-NOT. Racing inserts of the same index hand
// previous=false to exactly one caller. Aggregate operations (Size,
// IsEmpty, Clear) walk the slots one atomic step at a time and are not
// linearizable against concurrent mutation: the result is a valid but
// possibly stale snapshot, never a torn word.
type AtomicSet struct {
	slots []atomic.Uint64
}

// NewAtomicSet creates an AtomicSet backed by the given number of 64-bit
// slots. The capacity is fixed at slots*64 for the lifetime of the set.
func NewAtomicSet(slots int) *AtomicSet {
	return &AtomicSet{slots: make([]atomic.Uint64, slots)}
}

// Capacity returns the number of bit indexes the set can hold.
func (s *AtomicSet) Capacity() uint64 {
	return uint64(len(s.slots)) * SlotBits
}

// MemSize returns the size of the backing storage in bytes.
func (s *AtomicSet) MemSize() int {
	return len(s.slots) * SlotBits / 8
}

// Has reports whether index is present. Out-of-range indexes are never
// present.
func (s *AtomicSet) Has(index uint64) bool {
	slot, mask := slotFor(index)
	if slot >= uint64(len(s.slots)) {
		return false
	}
	return s.slots[slot].Load()&mask != 0
}

// IsEmpty reports whether no index is present.
func (s *AtomicSet) IsEmpty() bool {
	for i := range s.slots {
		if s.slots[i].Load() != 0 {
			return false
		}
	}
	return true
}

// Size returns the number of indexes present.
func (s *AtomicSet) Size() uint64 {
	var n int
	for i := range s.slots {
		n += bits.OnesCount64(s.slots[i].Load())
	}
	return uint64(n)
}

// Clear removes every index, one slot at a time. A concurrent Insert may
// land in an already cleared slot and survive.
func (s *AtomicSet) Clear() {
	for i := range s.slots {
		s.slots[i].Store(0)
	}
}

// Insert adds index to the set and returns whether it was already
// present. An index beyond the capacity returns ErrOutOfRange.
func (s *AtomicSet) Insert(index uint64) (bool, error) {
	slot, mask := slotFor(index)
	if slot >= uint64(len(s.slots)) {
		return false, ErrOutOfRange
	}
	prev := s.slots[slot].Or(mask)
	return prev&mask != 0, nil
}

// Remove deletes index from the set and returns whether it was present.
// An index beyond the capacity returns ErrOutOfRange.
func (s *AtomicSet) Remove(index uint64) (bool, error) {
	slot, mask := slotFor(index)
	if slot >= uint64(len(s.slots)) {
		return false, ErrOutOfRange
	}
	prev := s.slots[slot].And(^mask)
	return prev&mask != 0, nil
}
