package idset

import "errors"

// Vec is a growable bit-index set for single-owner use.
//
// Unlike Set, an Insert beyond the current capacity grows the backing
// slots to fit and then succeeds. Has and Remove never grow: they treat
// indexes past the current capacity as out of range, exactly like Set.
//
// The zero value is an empty set with zero capacity, ready for use.
type Vec struct {
	set Set
}

// NewVec creates a Vec with an initial backing of the given number of
// 64-bit slots.
func NewVec(slots int) *Vec {
	return &Vec{set: Set{slots: make([]uint64, slots)}}
}

// Capacity returns the current number of bit indexes the set can hold
// without growing.
func (v *Vec) Capacity() uint64 { return v.set.Capacity() }

// Has reports whether index is present.
func (v *Vec) Has(index uint64) bool { return v.set.Has(index) }

// IsEmpty reports whether no index is present.
func (v *Vec) IsEmpty() bool { return v.set.IsEmpty() }

// Size returns the number of indexes present.
func (v *Vec) Size() uint64 { return v.set.Size() }

// Clear removes every index. The backing storage is kept for reuse.
func (v *Vec) Clear() { v.set.Clear() }

// Insert adds index to the set and returns whether it was already
// present, growing the backing slots when index lies beyond the current
// capacity. New slots start empty.
func (v *Vec) Insert(index uint64) (bool, error) {
	prev, err := v.set.Insert(index)
	var sbe *SlotBoundsError
	if errors.As(err, &sbe) {
		v.grow(sbe.RequiredSlot + 1)
		return v.set.Insert(index)
	}
	return prev, err
}

// Remove deletes index from the set and returns whether it was present.
// An index beyond the current capacity returns ErrOutOfRange.
func (v *Vec) Remove(index uint64) (bool, error) {
	return v.set.Remove(index)
}

// grow extends the backing storage to at least the given slot count,
// doubling to keep repeated small growth amortized.
func (v *Vec) grow(slots int) {
	if slots <= len(v.set.slots) {
		return
	}
	newLen := len(v.set.slots) * 2
	if newLen < slots {
		newLen = slots
	}
	grown := make([]uint64, newLen)
	copy(grown, v.set.slots)
	v.set.slots = grown
}
