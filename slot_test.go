package idset

import "testing"

func TestSlotFor(t *testing.T) {
	tests := []struct {
		index uint64
		slot  uint64
		mask  uint64
	}{
		{0, 0, 1},
		{1, 0, 2},
		{63, 0, 1 << 63},
		{64, 1, 1},
		{127, 1, 1 << 63},
		{130, 2, 4},
	}

	for _, tt := range tests {
		slot, mask := slotFor(tt.index)
		if slot != tt.slot || mask != tt.mask {
			t.Errorf("slotFor(%d) = (%d, %#x), want (%d, %#x)", tt.index, slot, mask, tt.slot, tt.mask)
		}
	}
}
