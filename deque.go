// Package altdeque implements a double-ended queue on top of two stacks that
// share one buffer, instead of a ring buffer.
//
// The back stack grows up from the start of the buffer and the front stack
// grows down from its end:
//
//	        growth ->               <- growth
//	+- back stack --+               +- front stack -+
//	|               |               |               |
//	v               v               v               v
//	+---+---+---+---+---+---+---+---+---+---+---+---+
//	| 4 | 5 | 6 | 7 |   |   |   |   | 0 | 1 | 2 | 3 |
//	+---+---+---+---+---+---+---+---+---+---+---+---+
//	                  |               |
//	            head -+               +- tail
//
// Compared to a ring buffer there are no masks, no power of two capacities
// and no slot kept empty. In exchange, popping from a side whose stack is
// empty moves the whole other stack over first (a stack flip). That is O(n)
// for the one call but amortized O(1), unless pops keep alternating sides.
package altdeque

import (
	"fmt"

	"github.com/lucasgdosr/altdeque/internal/rawbuf"
)

// Deque is a double-ended queue that can be used for either LIFO or FIFO
// ordering, or something in between.
//
// The zero value is an empty Deque ready to use. A Deque must not be copied
// after first use, and it is not safe for concurrent use.
//
// Slots that hold no element are always zeroed, so popped and removed
// elements are never kept alive by the Deque.
type Deque[T any] struct {
	buf rawbuf.Buffer[T]
	// tail is the offset of the first element of the front stack, head is
	// one past the last element of the back stack.
	// 0 <= head <= tail <= cap. head == tail means full, head == 0 and
	// tail == cap means empty.
	tail, head int

	opts  options[T]
	stats Stats
}

/*****************************************************************************
 * CONSTRUCTORS
 *****************************************************************************/

// MakeDeque returns an empty Deque. It doesn't allocate until the first
// push.
func MakeDeque[T any](opts ...Option[T]) *Deque[T] {
	return newDeque(rawbuf.New[T](), applyOptions(opts...))
}

// MakeDequeWithCapacity returns an empty Deque with room for exactly
// capacity elements. It returns ErrNegativeCapacity for a negative capacity,
// and ErrCapacityOverflow or ErrAllocationFailure if the buffer cannot be
// allocated.
func MakeDequeWithCapacity[T any](capacity int, opts ...Option[T]) (*Deque[T], error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	buf, err := rawbuf.TryWithCapacity[T](capacity)
	if err != nil {
		return nil, fmt.Errorf("altdeque: allocating %d slots: %w", capacity, err)
	}
	return newDeque(buf, applyOptions(opts...)), nil
}

// withCapacity is MakeDequeWithCapacity for internal callers whose capacity
// is already known to be sane. It panics on failure.
func withCapacity[T any](capacity int, opts options[T]) *Deque[T] {
	return newDeque(rawbuf.WithCapacity[T](capacity), opts)
}

// newDeque wraps buf as an empty Deque.
func newDeque[T any](buf rawbuf.Buffer[T], opts options[T]) *Deque[T] {
	d := &Deque[T]{buf: buf, tail: buf.Cap(), opts: opts}
	d.opts.metrics.addCapacity(d.cap(), d.buf.Unbounded())
	return d
}

/*****************************************************************************
 * DEQUE API
 *****************************************************************************/

// Len returns the number of elements in the Deque or 0 if nil.
func (d *Deque[T]) Len() int {
	if d == nil {
		return 0
	}
	return d.cap() - d.tail + d.head
}

// Cap returns the number of elements the Deque can hold without
// reallocating. Zero-sized element types report an unbounded capacity.
func (d *Deque[T]) Cap() int { return d.cap() }

// Empty returns whether the Deque is empty.
func (d *Deque[T]) Empty() bool { return d.head == 0 && d.tail == d.cap() }

// Full returns whether the Deque is full. Pushing to a full Deque
// reallocates.
func (d *Deque[T]) Full() bool { return d.tail == d.head }

// Slices returns the front stack and the back stack. Together, in order,
// they hold every element. The slices alias the Deque's buffer, so writes to
// them are visible in the Deque, until the next call that moves elements.
//
// After MakeContiguous every element is in front and back is empty.
func (d *Deque[T]) Slices() (front, back []T) {
	s := d.buf.Slots()
	return s[d.tail:d.cap():d.cap()], s[:d.head:d.head]
}

// PushBack puts its arguments at the back of the Deque, in order. The last
// argument is the new back. Use PushBack and PopFront for FIFO ordering, or
// PushBack and PopBack for LIFO ordering.
//
// PushBack reallocates at most once, no matter how many arguments.
func (d *Deque[T]) PushBack(ts ...T) {
	if len(ts) == 1 && d.Full() {
		d.grow()
	} else if d.tail-d.head < len(ts) {
		d.Reserve(len(ts))
	}
	s := d.buf.Slots()
	d.head += copy(s[d.head:d.tail], ts)
}

// PushFront puts its arguments at the front of the Deque, one after the
// other, so the last argument is the new front.
//
// PushFront reallocates at most once, no matter how many arguments.
func (d *Deque[T]) PushFront(ts ...T) {
	if len(ts) == 1 && d.Full() {
		d.grow()
	} else if d.tail-d.head < len(ts) {
		d.Reserve(len(ts))
	}
	s := d.buf.Slots()
	for _, t := range ts {
		d.tail--
		s[d.tail] = t
	}
}

// PeekFront returns the first element in the Deque. If the Deque is empty,
// it returns false.
func (d *Deque[T]) PeekFront() (t T, ok bool) {
	if p := d.PeekFrontPtr(); p != nil {
		return *p, true
	}
	return
}

// PeekFrontPtr returns a pointer to the first element, or nil if the Deque
// is empty. The pointer is valid until the next call that moves elements.
func (d *Deque[T]) PeekFrontPtr() *T {
	s := d.buf.Slots()
	switch {
	case d.tail != d.cap():
		return &s[d.tail]
	case d.head != 0:
		return &s[0]
	default:
		return nil
	}
}

// PeekBack returns the last element in the Deque. If the Deque is empty, it
// returns false.
func (d *Deque[T]) PeekBack() (t T, ok bool) {
	if p := d.PeekBackPtr(); p != nil {
		return *p, true
	}
	return
}

// PeekBackPtr returns a pointer to the last element, or nil if the Deque is
// empty. The pointer is valid until the next call that moves elements.
func (d *Deque[T]) PeekBackPtr() *T {
	s := d.buf.Slots()
	switch {
	case d.head != 0:
		return &s[d.head-1]
	case d.tail != d.cap():
		return &s[d.cap()-1]
	default:
		return nil
	}
}

// PopFront removes the first element in the Deque and returns it. If it's
// empty, returns false. The vacated slot is zeroed.
//
// If the front stack is empty, the back stack is moved over to the end of
// the buffer first. That call is O(n), but the following n-1 PopFront calls
// are O(1). Popping alternately from both ends defeats this; prefer a ring
// buffer for that pattern.
func (d *Deque[T]) PopFront() (t T, ok bool) {
	s := d.buf.Slots()
	var zero T
	switch {
	case d.tail != d.cap():
		t, s[d.tail] = s[d.tail], zero
		d.tail++
		return t, true
	case d.head != 0:
		// the first element is returned, the rest are flipped over
		d.tail = d.cap() - d.head + 1
		t, s[0] = s[0], zero
		d.buf.Move(1, d.tail, d.head-1)
		d.head = 0
		d.recordFlip()
		return t, true
	default:
		return
	}
}

// PopBack removes the last element in the Deque and returns it. If it's
// empty, returns false. The vacated slot is zeroed.
//
// Like PopFront, it flips the front stack over when the back stack is empty.
func (d *Deque[T]) PopBack() (t T, ok bool) {
	s := d.buf.Slots()
	var zero T
	switch {
	case d.head != 0:
		d.head--
		t, s[d.head] = s[d.head], zero
		return t, true
	case d.tail != d.cap():
		last := d.cap() - 1
		t, s[last] = s[last], zero
		d.head = d.cap() - d.tail - 1
		d.buf.Move(d.tail, 0, d.head)
		d.tail = d.cap()
		d.recordFlip()
		return t, true
	default:
		return
	}
}

/*****************************************************************************
 * INDEXING
 *****************************************************************************/

// Get returns the i-th element, or false if i is out of bounds.
func (d *Deque[T]) Get(i int) (t T, ok bool) {
	if p := d.GetPtr(i); p != nil {
		return *p, true
	}
	return
}

// GetPtr returns a pointer to the i-th element, or nil if i is out of
// bounds. The pointer is valid until the next call that moves elements.
func (d *Deque[T]) GetPtr(i int) *T {
	if off, ok := d.offset(i); ok {
		return &d.buf.Slots()[off]
	}
	return nil
}

// At returns the i-th element. Panics if out of bounds.
func (d *Deque[T]) At(i int) T {
	return d.buf.Slots()[d.mustOffset(i)]
}

// Set writes t to the i-th position. The element it replaces is handed to
// the drop function, if any. Panics if out of bounds.
func (d *Deque[T]) Set(i int, t T) {
	s := d.buf.Slots()
	off := d.mustOffset(i)
	old := s[off]
	s[off] = t
	if d.opts.drop != nil {
		d.opts.drop(old)
	}
}

// offset translates a logical index into a buffer offset.
func (d *Deque[T]) offset(i int) (int, bool) {
	frontLen := d.cap() - d.tail
	switch {
	case i < 0:
		return 0, false
	case i < frontLen:
		return d.tail + i, true
	case i-frontLen < d.head:
		return i - frontLen, true
	default:
		return 0, false
	}
}

func (d *Deque[T]) mustOffset(i int) int {
	off, ok := d.offset(i)
	if !ok {
		indexOutOfBounds(d.Len(), i)
	}
	return off
}

/*****************************************************************************
 * CAPACITY
 *****************************************************************************/

// Reserve ensures there's room to add at least n more elements, growing the
// buffer to at least twice its capacity if it must grow at all. It panics
// with ErrNegativeCapacity, ErrCapacityOverflow or an ErrAllocationFailure.
func (d *Deque[T]) Reserve(n int) {
	if err := d.TryReserve(n); err != nil {
		panic(err)
	}
}

// TryReserve is Reserve, but returns the error instead of panicking.
func (d *Deque[T]) TryReserve(n int) error {
	if n < 0 {
		return ErrNegativeCapacity
	}
	oldCap := d.cap()
	if err := d.buf.TryReserve(d.Len(), n); err != nil {
		return err
	}
	d.handleCapacityIncrease(oldCap)
	return nil
}

// ReserveExact ensures there's room to add at least n more elements without
// speculative over-allocation. Prefer Reserve if more pushes are expected.
// It panics on the same errors as Reserve.
func (d *Deque[T]) ReserveExact(n int) {
	if err := d.TryReserveExact(n); err != nil {
		panic(err)
	}
}

// TryReserveExact is ReserveExact, but returns the error instead of
// panicking.
func (d *Deque[T]) TryReserveExact(n int) error {
	if n < 0 {
		return ErrNegativeCapacity
	}
	oldCap := d.cap()
	if err := d.buf.TryReserveExact(d.Len(), n); err != nil {
		return err
	}
	d.handleCapacityIncrease(oldCap)
	return nil
}

// ShrinkTo reallocates the buffer so its capacity is the larger of
// minCapacity and Len. It does nothing if the capacity is already at most
// minCapacity.
func (d *Deque[T]) ShrinkTo(minCapacity int) {
	if minCapacity >= d.cap() || d.buf.Unbounded() {
		return
	}
	oldCap := d.cap()
	target := max(minCapacity, d.Len())
	frontLen := d.cap() - d.tail
	newTail := target - frontLen
	d.buf.Move(d.tail, newTail, frontLen)
	d.tail = newTail
	d.buf.ShrinkTo(target)
	d.recordRealloc(oldCap, d.cap())
}

// ShrinkToFit reallocates the buffer to hold exactly Len elements.
func (d *Deque[T]) ShrinkToFit() { d.ShrinkTo(0) }

func (d *Deque[T]) cap() int { return d.buf.Cap() }

func (d *Deque[T]) grow() {
	oldCap := d.cap()
	d.buf.ReserveForPush(oldCap)
	d.handleCapacityIncrease(oldCap)
}

// handleCapacityIncrease moves the front stack, which ended at oldCap, so it
// ends at the new capacity again. When the growth is at least the front
// stack's length the two ranges don't overlap.
func (d *Deque[T]) handleCapacityIncrease(oldCap int) {
	newCap := d.cap()
	if newCap == oldCap {
		return
	}
	frontLen := oldCap - d.tail
	newTail := d.tail + newCap - oldCap
	d.buf.Move(d.tail, newTail, frontLen)
	d.tail = newTail
	d.recordRealloc(oldCap, newCap)
}

/*****************************************************************************
 * HELPERS
 *****************************************************************************/

func indexOutOfBounds(length, index int) {
	panic(fmt.Sprintf("index out of bounds: the len is %d but the index is %d", length, index))
}

// checkRange panics unless 0 <= start <= end <= Len.
func (d *Deque[T]) checkRange(start, end int) {
	if length := d.Len(); end > length {
		panic(fmt.Sprintf("range end %d should be <= length %d", end, length))
	}
	if start < 0 {
		panic(fmt.Sprintf("range start %d should be >= 0", start))
	}
	if start > end {
		panic(fmt.Sprintf("range start %d should be <= range end %d", start, end))
	}
}
