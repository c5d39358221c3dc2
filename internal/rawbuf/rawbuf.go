// Package rawbuf manages the single slot array behind a Deque. It owns
// capacity arithmetic, growth and shrinking, but never looks at occupancy:
// which slots are live is the caller's business.
//
// Slots outside the caller's live regions are expected to hold the zero
// value. Move keeps that property by zeroing what it vacates.
package rawbuf

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"runtime"
	"unsafe"

	"fortio.org/safecast"
)

// Unbounded is the capacity reported for zero-sized element types.
const Unbounded = math.MaxInt

// ErrCapacityOverflow is returned when a requested capacity cannot be
// represented, either as an element count or as a byte size.
var ErrCapacityOverflow = errors.New("capacity overflow")

// ErrAllocationFailure is returned when the runtime refuses an allocation.
var ErrAllocationFailure = errors.New("memory allocation failed")

// Buffer is a fixed-length slot array. The zero value is an empty buffer
// with capacity 0, even for zero-sized types; the first growth of a
// zero-sized buffer makes it Unbounded.
type Buffer[T any] struct {
	slots []T
}

// New returns an empty buffer. For zero-sized T the capacity is Unbounded
// and nothing is allocated.
func New[T any]() Buffer[T] {
	return WithCapacity[T](0)
}

// WithCapacity returns a buffer with exactly n slots. It panics if n slots
// of T cannot be allocated.
func WithCapacity[T any](n int) Buffer[T] {
	b, err := TryWithCapacity[T](n)
	if err != nil {
		panic(err)
	}
	return b
}

// TryWithCapacity is WithCapacity, but returns the error instead.
func TryWithCapacity[T any](n int) (Buffer[T], error) {
	if zeroSized[T]() {
		return Buffer[T]{slots: make([]T, Unbounded)}, nil
	}
	slots, err := allocate[T](n)
	if err != nil {
		return Buffer[T]{}, err
	}
	return Buffer[T]{slots: slots}, nil
}

// FromSlice adopts the backing array of s, extended to its capacity. No
// element is copied.
func FromSlice[T any](s []T) Buffer[T] {
	if zeroSized[T]() {
		return New[T]()
	}
	return Buffer[T]{slots: s[:cap(s)]}
}

// Cap returns the number of slots.
func (b *Buffer[T]) Cap() int { return len(b.slots) }

// Slots returns the whole slot array. Its length is Cap.
func (b *Buffer[T]) Slots() []T { return b.slots }

// Unbounded reports whether T is zero-sized, in which case the buffer never
// needs to allocate.
func (b *Buffer[T]) Unbounded() bool { return zeroSized[T]() }

// Reserve makes room for at least length+additional slots, growing to at
// least double the current capacity so repeated calls are amortized O(1).
// It panics on overflow or allocation failure.
func (b *Buffer[T]) Reserve(length, additional int) {
	if b.needsToGrow(length, additional) {
		handleReserve(b.growAmortized(length, additional))
	}
}

// ReserveForPush is Reserve(length, 1) for callers that already know the
// buffer is full.
func (b *Buffer[T]) ReserveForPush(length int) {
	handleReserve(b.growAmortized(length, 1))
}

// TryReserve is Reserve, but returns the error instead of panicking.
func (b *Buffer[T]) TryReserve(length, additional int) error {
	if b.needsToGrow(length, additional) {
		return b.growAmortized(length, additional)
	}
	return nil
}

// ReserveExact makes room for at least length+additional slots without
// speculative over-allocation. It panics on overflow or allocation failure.
func (b *Buffer[T]) ReserveExact(length, additional int) {
	handleReserve(b.TryReserveExact(length, additional))
}

// TryReserveExact is ReserveExact, but returns the error instead.
func (b *Buffer[T]) TryReserveExact(length, additional int) error {
	if b.needsToGrow(length, additional) {
		return b.growExact(length, additional)
	}
	return nil
}

// ShrinkTo reallocates the buffer down to exactly capacity slots, keeping
// the prefix. Shrinking to 0 frees the slots. It panics if capacity is
// larger than the current one.
func (b *Buffer[T]) ShrinkTo(capacity int) {
	if capacity > b.Cap() || capacity < 0 {
		panic("rawbuf: tried to shrink to a larger capacity")
	}
	if zeroSized[T]() || capacity == b.Cap() {
		return
	}
	if capacity == 0 {
		b.slots = nil
		return
	}
	slots, err := allocate[T](capacity)
	handleReserve(err)
	copy(slots, b.slots[:capacity])
	b.slots = slots
}

// Release drops the slot array. Elements are not inspected.
func (b *Buffer[T]) Release() { b.slots = nil }

// Move copies n slots from from to to. The ranges may overlap. Source slots
// that the destination does not cover are zeroed afterwards.
func (b *Buffer[T]) Move(from, to, n int) {
	if n <= 0 || from == to {
		return
	}
	s := b.slots
	copy(s[to:to+n], s[from:from+n])
	if to > from {
		clear(s[from:min(from+n, to)])
	} else {
		clear(s[max(to+n, from) : from+n])
	}
}

func (b *Buffer[T]) needsToGrow(length, additional int) bool {
	return additional > b.Cap()-length
}

func (b *Buffer[T]) growAmortized(length, additional int) error {
	if zeroSized[T]() {
		return b.growUnbounded()
	}
	if additional > math.MaxInt-length {
		return ErrCapacityOverflow
	}
	required := length + additional

	doubled := math.MaxInt
	if b.Cap() <= math.MaxInt/2 {
		doubled = b.Cap() * 2
	}
	return b.realloc(max(doubled, required, minNonZeroCap[T]()))
}

func (b *Buffer[T]) growExact(length, additional int) error {
	if zeroSized[T]() {
		return b.growUnbounded()
	}
	if additional > math.MaxInt-length {
		return ErrCapacityOverflow
	}
	return b.realloc(length + additional)
}

// A zero-sized buffer is either unallocated (the zero value) or already
// Unbounded, in which case asking for more can only mean overflow.
func (b *Buffer[T]) growUnbounded() error {
	if b.Cap() == Unbounded {
		return ErrCapacityOverflow
	}
	b.slots = make([]T, Unbounded)
	return nil
}

func (b *Buffer[T]) realloc(capacity int) error {
	slots, err := allocate[T](capacity)
	if err != nil {
		return err
	}
	copy(slots, b.slots)
	b.slots = slots
	return nil
}

// allocate checks the byte size of n slots and makes them. The runtime
// reports oversized requests (beyond the heap's arena limit) by panicking
// with a runtime.Error; that is turned into ErrAllocationFailure.
func allocate[T any](n int) (slots []T, err error) {
	if err := checkLayout[T](n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			slots, err = nil, fmt.Errorf("%w: %d slots: %v", ErrAllocationFailure, n, re)
		}
	}()
	return make([]T, n), nil
}

// checkLayout fails if n is negative or n*sizeof(T) bytes is not a valid
// object size, i.e. exceeds math.MaxInt.
func checkLayout[T any](n int) error {
	count, err := safecast.Convert[uint64](n)
	if err != nil {
		return ErrCapacityOverflow
	}
	var zero T
	hi, lo := bits.Mul64(uint64(unsafe.Sizeof(zero)), count)
	if hi != 0 {
		return ErrCapacityOverflow
	}
	if _, err := safecast.Convert[int](lo); err != nil {
		return ErrCapacityOverflow
	}
	return nil
}

func handleReserve(err error) {
	if err != nil {
		panic(err)
	}
}

func zeroSized[T any]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 0
}

// Tiny buffers are wasteful: any allocator rounds small requests up, so skip
// straight to 8 one-byte slots, 4 moderate ones, or 1 huge one.
func minNonZeroCap[T any]() int {
	var zero T
	switch size := unsafe.Sizeof(zero); {
	case size == 1:
		return 8
	case size <= 1024:
		return 4
	default:
		return 1
	}
}
