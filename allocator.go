package idset

import (
	"math/bits"
	"sync/atomic"
	"time"

	"golang.org/x/sys/cpu"
)

// Allocator hands out free bit indexes from a shared AtomicSet.
//
// Acquire claims the lowest free bit of the first claimable slot in a
// scan that starts at an advisory rotation cursor and wraps through every
// slot exactly once. It is safe for unbounded concurrent callers: no two
// successful calls return the same index, and a call that finds every
// reachable bit taken returns ok=false instead of spinning.
//
// The embedded AtomicSet is the full read and shared-mutate surface;
// Reserve and Release are the instrumented forms of Insert and Remove.
type Allocator struct {
	*AtomicSet

	// rotation records the slot of the most recent successful claim so
	// the next scan starts away from slots that racing callers are
	// filling. It is purely advisory: the claim CAS never consults it,
	// and a stale or lost cursor update only costs extra scanning.
	_        cpu.CacheLinePad
	rotation atomic.Uint64
	_        cpu.CacheLinePad

	logger  *Logger
	metrics MetricsCollector
}

// NewAllocator creates an Allocator backed by the given number of 64-bit
// slots.
func NewAllocator(slots int, opts ...Option) *Allocator {
	o := applyOptions(opts)

	return &Allocator{
		AtomicSet: NewAtomicSet(slots),
		logger:    o.logger,
		metrics:   o.metrics,
	}
}

// Acquire atomically claims a currently free bit and returns its index.
// ok is false when every bit was taken at the moment the scan completed;
// that is an expected outcome and may become satisfiable again after a
// Release.
func (a *Allocator) Acquire() (index uint64, ok bool) {
	if a.metrics == nil {
		index, ok = a.acquire()
	} else {
		start := time.Now()
		index, ok = a.acquire()
		a.metrics.RecordAcquire(time.Since(start), ok)
	}

	if !ok {
		a.logger.Debug("acquire exhausted", "slots", len(a.slots))
	}

	return index, ok
}

func (a *Allocator) acquire() (uint64, bool) {
	slots := a.slots
	start := a.rotation.Load()

	for n, slot := 0, start; n < len(slots); n++ {
		curr := slots[slot].Load()
		for curr != saturated {
			free := uint64(bits.TrailingZeros64(^curr))
			if slots[slot].CompareAndSwap(curr, curr|1<<free) {
				if slot != start {
					a.rotation.Store(slot)
				}
				return slot*SlotBits + free, true
			}
			// Lost the word to a racing writer; re-read and retry
			// unless it saturated meanwhile.
			curr = slots[slot].Load()
		}

		slot++
		if slot >= uint64(len(slots)) {
			slot = 0
		}
	}

	return 0, false
}

// Reserve claims a specific index, for callers that dedicate part of the
// index space. It returns whether the index was already taken, or
// ErrOutOfRange for indexes beyond the capacity.
func (a *Allocator) Reserve(index uint64) (bool, error) {
	prev, err := a.AtomicSet.Insert(index)
	if a.metrics != nil {
		a.metrics.RecordReserve(err)
	}
	if err != nil {
		a.logger.WithIndex(index).Debug("reserve out of range", "slots", len(a.slots))
	}
	return prev, err
}

// Release frees a previously acquired or reserved index so Acquire can
// hand it out again. It returns whether the index was taken, or
// ErrOutOfRange for indexes beyond the capacity.
func (a *Allocator) Release(index uint64) (bool, error) {
	prev, err := a.AtomicSet.Remove(index)
	if a.metrics != nil {
		a.metrics.RecordRelease(err)
	}
	if err != nil {
		a.logger.WithIndex(index).Debug("release out of range", "slots", len(a.slots))
	}
	return prev, err
}
