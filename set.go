package idset

import "math/bits"

// Set is a fixed-capacity bit-index set for single-owner use.
//
// Set performs no synchronization. Use AtomicSet when the set is shared
// between goroutines, and Vec when the capacity has to grow.
type Set struct {
	slots []uint64
}

// NewSet creates a Set backed by the given number of 64-bit slots. The
// capacity is fixed at slots*64 for the lifetime of the set.
func NewSet(slots int) *Set {
	return &Set{slots: make([]uint64, slots)}
}

// Capacity returns the number of bit indexes the set can hold.
func (s *Set) Capacity() uint64 {
	return uint64(len(s.slots)) * SlotBits
}

// Has reports whether index is present. Out-of-range indexes are never
// present.
func (s *Set) Has(index uint64) bool {
	slot, mask := slotFor(index)
	if slot >= uint64(len(s.slots)) {
		return false
	}
	return s.slots[slot]&mask != 0
}

// IsEmpty reports whether no index is present.
func (s *Set) IsEmpty() bool {
	for _, word := range s.slots {
		if word != 0 {
			return false
		}
	}
	return true
}

// Size returns the number of indexes present.
func (s *Set) Size() uint64 {
	var n int
	for _, word := range s.slots {
		n += bits.OnesCount64(word)
	}
	return uint64(n)
}

// Clear removes every index.
func (s *Set) Clear() {
	for i := range s.slots {
		s.slots[i] = 0
	}
}

// Insert adds index to the set and returns whether it was already
// present. An index beyond the capacity returns a *SlotBoundsError naming
// the slot the storage would need.
func (s *Set) Insert(index uint64) (bool, error) {
	slot, mask := slotFor(index)
	if slot >= uint64(len(s.slots)) {
		return false, &SlotBoundsError{RequiredSlot: int(slot)}
	}
	prev := s.slots[slot]&mask != 0
	s.slots[slot] |= mask
	return prev, nil
}

// Remove deletes index from the set and returns whether it was present.
// An index beyond the capacity returns ErrOutOfRange.
func (s *Set) Remove(index uint64) (bool, error) {
	slot, mask := slotFor(index)
	if slot >= uint64(len(s.slots)) {
		return false, ErrOutOfRange
	}
	prev := s.slots[slot]&mask != 0
	s.slots[slot] &^= mask
	return prev, nil
}
