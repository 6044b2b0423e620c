package idset

import (
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"
)

// Bitmap returns the set's contents as a roaring bitmap, for set-algebra
// composition (And/Or against filter bitmaps) outside the hot path. The
// snapshot is taken slot by slot and is not linearizable against
// concurrent mutation.
//
// The roaring universe is 32-bit; sets with a capacity above 1<<32 bits
// cannot be snapshotted this way.
func (s *AtomicSet) Bitmap() *roaring.Bitmap {
	rb := roaring.New()
	for slot := range s.slots {
		addSlot(rb, uint64(slot), s.slots[slot].Load())
	}
	return rb
}

// Bitmap returns the set's contents as a roaring bitmap. See
// AtomicSet.Bitmap.
func (s *Set) Bitmap() *roaring.Bitmap {
	rb := roaring.New()
	for slot, word := range s.slots {
		addSlot(rb, uint64(slot), word)
	}
	return rb
}

// Bitmap returns the set's contents as a roaring bitmap. See
// AtomicSet.Bitmap.
func (v *Vec) Bitmap() *roaring.Bitmap {
	return v.set.Bitmap()
}

func addSlot(rb *roaring.Bitmap, slot, word uint64) {
	base := slot * SlotBits
	for word != 0 {
		offset := uint64(bits.TrailingZeros64(word))
		rb.Add(uint32(base + offset))
		word &= word - 1
	}
}

// NewVecFromBitmap builds a growable set containing every index of rb.
func NewVecFromBitmap(rb *roaring.Bitmap) *Vec {
	var v Vec
	if !rb.IsEmpty() {
		slot, _ := slotFor(uint64(rb.Maximum()))
		v.grow(int(slot) + 1)
	}

	it := rb.Iterator()
	for it.HasNext() {
		// Vec.Insert grows to fit, so it cannot fail here.
		_, _ = v.Insert(uint64(it.Next()))
	}

	return &v
}
