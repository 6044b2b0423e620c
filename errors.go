package idset

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when an index lies beyond the fixed capacity
// of a set. It is always distinguishable from a "previous bit was false"
// result.
var ErrOutOfRange = errors.New("index out of range")

// SlotBoundsError reports an exclusive Insert whose index lies beyond the
// backing slots. RequiredSlot is the slot index the storage would need for
// the insert to succeed; growable owners extend to RequiredSlot+1 slots,
// retry, and the retry must succeed.
//
// SlotBoundsError unwraps to ErrOutOfRange.
type SlotBoundsError struct {
	RequiredSlot int
}

func (e *SlotBoundsError) Error() string {
	return fmt.Sprintf("index out of range: slot %d required", e.RequiredSlot)
}

func (e *SlotBoundsError) Unwrap() error { return ErrOutOfRange }
