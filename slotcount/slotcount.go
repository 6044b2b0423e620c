package slotcount

// slotBytes is the size of one 64-bit slot in bytes.
const slotBytes = 8

// FromBits returns the number of slots needed to store n bits, rounding
// up.
func FromBits(n int) int {
	return (n + slotBytes*8 - 1) / (slotBytes * 8)
}

// FromBytes returns the number of slots available in n bytes.
func FromBytes(n int) int {
	return (n + slotBytes - 1) / slotBytes
}

// FromKilobytes returns the number of slots available in n kilobytes.
func FromKilobytes(n int) int {
	return FromBytes(n * 1024)
}

// FromMegabytes returns the number of slots available in n megabytes.
func FromMegabytes(n int) int {
	return FromBytes(n * 1024 * 1024)
}
