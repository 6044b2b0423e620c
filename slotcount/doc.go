// Package slotcount converts storage budgets into slot counts for idset
// constructors.
//
// A slot is one 64-bit word holding 64 bit indexes. The helpers are pure
// arithmetic, rounding up, and usable in constant expressions:
//
//	ids := idset.NewAllocator(slotcount.FromBits(4096))
//	big := idset.NewAtomicSet(slotcount.FromMegabytes(1)) // 8M indexes
package slotcount
