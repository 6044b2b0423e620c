package idset

// SlotBits is the number of bits stored in one slot (one 64-bit word).
const SlotBits = 64

// saturated is a slot with every bit occupied.
const saturated = ^uint64(0)

// slotFor maps a global bit index to its slot index and intra-slot mask.
func slotFor(index uint64) (slot uint64, mask uint64) {
	return index / SlotBits, 1 << (index % SlotBits)
}
