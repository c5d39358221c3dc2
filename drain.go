package altdeque

import "iter"

// Drain removes a range of elements from a Deque, handing them out one by
// one from either end. It is created by (*Deque).Drain.
//
// While a Drain is open its Deque looks empty and must not be used. Close
// puts the elements outside the range back in place. A Drain that is never
// closed leaves the Deque empty and the elements outside the range lost.
type Drain[T any] struct {
	d *Deque[T]
	// cursors of d when the drain started
	oldHead, oldTail int
	// the drained range
	start, end int
	// what's left to hand out
	next, back int
	closed     bool
}

// Drain starts removing the elements in [start, end). It panics before
// touching the Deque if the range is invalid.
//
//	dr := d.Drain(1, 3)
//	defer dr.Close()
//	for t := range dr.All() {
//		...
//	}
func (d *Deque[T]) Drain(start, end int) *Drain[T] {
	d.checkRange(start, end)
	dr := &Drain[T]{
		d:       d,
		oldHead: d.head,
		oldTail: d.tail,
		start:   start,
		end:     end,
		next:    start,
		back:    end,
	}
	d.head, d.tail = 0, d.cap()
	return dr
}

// Len returns the number of elements left to hand out.
func (dr *Drain[T]) Len() int { return dr.back - dr.next }

// Next removes and returns the first element left in the range, or false if
// there is none.
func (dr *Drain[T]) Next() (t T, ok bool) {
	if dr.next == dr.back {
		return
	}
	t = dr.take(dr.next)
	dr.next++
	return t, true
}

// NextBack removes and returns the last element left in the range, or false
// if there is none.
func (dr *Drain[T]) NextBack() (t T, ok bool) {
	if dr.next == dr.back {
		return
	}
	dr.back--
	return dr.take(dr.back), true
}

// All returns an iterator over the elements left, front to back. The Drain
// is closed when the loop ends, even on break.
func (dr *Drain[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer dr.Close()
		for {
			t, ok := dr.Next()
			if !ok || !yield(t) {
				return
			}
		}
	}
}

// Backward is All, back to front.
func (dr *Drain[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer dr.Close()
		for {
			t, ok := dr.NextBack()
			if !ok || !yield(t) {
				return
			}
		}
	}
}

// Close hands the elements that were not taken to the drop function and
// closes the gap left by the range. The Deque is usable again afterwards,
// even if the drop function panics. Calling Close more than once does
// nothing.
func (dr *Drain[T]) Close() {
	if dr.closed {
		return
	}
	dr.closed = true

	first, second := dr.remaining()
	dr.next = dr.back
	defer dr.compact()
	defer dr.d.dropAll(second)
	dr.d.dropAll(first)
}

// take removes the element at logical index i, as laid out before the drain.
func (dr *Drain[T]) take(i int) T {
	s := dr.d.buf.Slots()
	off := dr.offset(i)
	var zero T
	t := s[off]
	s[off] = zero
	return t
}

func (dr *Drain[T]) offset(i int) int {
	frontLen := dr.d.cap() - dr.oldTail
	if i < frontLen {
		return dr.oldTail + i
	}
	return i - frontLen
}

// remaining returns the elements not handed out yet, in the front stack and
// in the back stack.
func (dr *Drain[T]) remaining() (front, back []T) {
	s := dr.d.buf.Slots()
	frontLen := dr.d.cap() - dr.oldTail
	if dr.next < frontLen {
		front = s[dr.oldTail+dr.next : dr.oldTail+min(dr.back, frontLen)]
	}
	if dr.back > frontLen {
		back = s[max(dr.next, frontLen)-frontLen : dr.back-frontLen]
	}
	return front, back
}

// compact closes the gap [start, end) with at most two moves and restores
// the cursors.
func (dr *Drain[T]) compact() {
	d := dr.d
	frontLen := d.cap() - dr.oldTail
	start, end := dr.start, dr.end
	switch {
	case end <= frontLen:
		// only the front stack loses elements: its prefix slides up
		newTail := dr.oldTail + end - start
		d.buf.Move(dr.oldTail, newTail, start)
		d.head, d.tail = dr.oldHead, newTail
	case start < frontLen:
		// both stacks lose elements: the front prefix slides up to the end
		// of the buffer and the back suffix slides down to its start
		newTail := d.cap() - start
		newHead := dr.oldHead - (end - frontLen)
		d.buf.Move(dr.oldTail, newTail, start)
		d.buf.Move(end-frontLen, 0, newHead)
		d.head, d.tail = newHead, newTail
	default:
		// only the back stack loses elements: its suffix slides down
		d.buf.Move(end-frontLen, start-frontLen, dr.oldHead-(end-frontLen))
		d.head, d.tail = dr.oldHead-(end-start), dr.oldTail
	}
}
