package idset

// Reader is the read-only view of a bit-index set.
//
// Readers never report indexes at or beyond the capacity as present.
type Reader interface {
	// Capacity returns the number of bit indexes the set can hold.
	Capacity() uint64

	// Has reports whether index is present.
	Has(index uint64) bool

	// IsEmpty reports whether no index is present.
	IsEmpty() bool

	// Size returns the number of indexes present.
	Size() uint64
}

// Mutator is the mutation surface of a single-owner set. Implementations
// perform no synchronization; calling them while another goroutine holds
// the set is a caller contract violation.
type Mutator interface {
	Reader

	// Clear removes every index.
	Clear()

	// Insert adds index and returns its previous presence. Fixed-size
	// implementations return a *SlotBoundsError for out-of-range
	// indexes; growable ones extend the storage instead.
	Insert(index uint64) (bool, error)

	// Remove deletes index and returns its previous presence, or
	// ErrOutOfRange for indexes beyond the capacity.
	Remove(index uint64) (bool, error)
}

// SharedMutator is the mutation surface of a concurrently shared set.
// Every operation is an atomic read-modify-write: racing inserts of the
// same index hand previous=false to exactly one caller.
type SharedMutator interface {
	Reader

	// Clear removes every index, one slot at a time. It is not atomic
	// across slots.
	Clear()

	// Insert adds index and returns its previous presence, or
	// ErrOutOfRange for indexes beyond the capacity.
	Insert(index uint64) (bool, error)

	// Remove deletes index and returns its previous presence, or
	// ErrOutOfRange for indexes beyond the capacity.
	Remove(index uint64) (bool, error)
}

var (
	_ Mutator = (*Set)(nil)
	_ Mutator = (*Vec)(nil)

	_ SharedMutator = (*AtomicSet)(nil)
	_ SharedMutator = (*Allocator)(nil)
)
