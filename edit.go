package altdeque

/*****************************************************************************
 * POSITIONAL EDITS
 *****************************************************************************/

// Insert puts t at index i, shifting the elements after it within the stack
// that holds i. Only the part of that stack between i and its open end
// moves. Panics if i > Len.
func (d *Deque[T]) Insert(i int, t T) {
	if i < 0 || i > d.Len() {
		indexOutOfBounds(d.Len(), i)
	}
	if d.Full() {
		d.grow()
	}
	s := d.buf.Slots()
	if frontLen := d.cap() - d.tail; i < frontLen {
		d.buf.Move(d.tail, d.tail-1, i)
		d.tail--
		s[d.tail+i] = t
	} else {
		i -= frontLen
		d.buf.Move(i, i+1, d.head-i)
		d.head++
		s[i] = t
	}
}

// Remove removes the element at index i and returns it, or returns false if
// i is out of bounds.
func (d *Deque[T]) Remove(i int) (t T, ok bool) {
	off, ok := d.offset(i)
	if !ok {
		return
	}
	s := d.buf.Slots()
	var zero T
	t, s[off] = s[off], zero
	if off >= d.tail {
		d.buf.Move(d.tail, d.tail+1, off-d.tail)
		d.tail++
	} else {
		d.head--
		d.buf.Move(off+1, off, d.head-off)
	}
	return t, true
}

// Swap swaps the elements at indexes i and j. Panics if either is out of
// bounds.
func (d *Deque[T]) Swap(i, j int) {
	s := d.buf.Slots()
	a, b := d.mustOffset(i), d.mustOffset(j)
	s[a], s[b] = s[b], s[a]
}

// SwapRemoveFront removes the element at index i and returns it, replacing
// it with the first element. It doesn't preserve order. Returns false if i
// is out of bounds.
func (d *Deque[T]) SwapRemoveFront(i int) (t T, ok bool) {
	if i < 0 || i >= d.Len() {
		return
	}
	d.Swap(i, 0)
	return d.PopFront()
}

// SwapRemoveBack removes the element at index i and returns it, replacing
// it with the last element. It doesn't preserve order. Returns false if i is
// out of bounds.
func (d *Deque[T]) SwapRemoveBack(i int) (t T, ok bool) {
	length := d.Len()
	if i < 0 || i >= length {
		return
	}
	d.Swap(i, length-1)
	return d.PopBack()
}

// Append moves every element of other to the back of d, in order, leaving
// other empty. It panics with ErrCapacityOverflow if the combined length
// overflows.
func (d *Deque[T]) Append(other *Deque[T]) {
	if other == d {
		panic("altdeque: cannot append a Deque to itself")
	}
	front, back := other.Slices()
	d.Reserve(len(front) + len(back))

	s := d.buf.Slots()
	d.head += copy(s[d.head:], front)
	d.head += copy(s[d.head:], back)

	clear(front)
	clear(back)
	other.head, other.tail = 0, other.cap()
}

// SplitOff splits the Deque in two at index at. d keeps the elements
// [0, at) and the returned Deque, which gets d's options, holds [at, Len)
// in its front stack. Panics if at > Len.
func (d *Deque[T]) SplitOff(at int) *Deque[T] {
	frontLen := d.cap() - d.tail
	length := frontLen + d.head
	if at < 0 || at > length {
		indexOutOfBounds(length, at)
	}

	otherLen := length - at
	other := withCapacity[T](otherLen, d.opts)
	other.tail = other.cap() - otherLen
	s, o := d.buf.Slots(), other.buf.Slots()

	if at < frontLen {
		// the whole back stack and the front stack from at go over; the kept
		// front prefix slides up to the end of the buffer
		copy(o[other.cap()-d.head:], s[:d.head])
		clear(s[:d.head])
		d.head = 0

		copy(o[other.tail:], s[d.tail+at:])
		clear(s[d.tail+at:])

		newTail := d.cap() - at
		d.buf.Move(d.tail, newTail, at)
		d.tail = newTail
	} else {
		// at is in the back stack or right at the boundary
		d.head = at - frontLen
		copy(o[other.tail:], s[d.head:d.head+otherLen])
		clear(s[d.head : d.head+otherLen])
	}
	return other
}

// RotateLeft rotates the Deque n places to the left, so the element at
// index n becomes the first one. Only the elements that cross between the
// two stacks move. Panics if n > Len.
func (d *Deque[T]) RotateLeft(n int) {
	frontLen := d.cap() - d.tail
	if n < 0 || n > frontLen+d.head {
		indexOutOfBounds(d.Len(), n)
	}
	if n < frontLen {
		// the first n front elements go on top of the back stack
		d.buf.Move(d.tail, d.head, n)
		d.head += n
		d.tail += n
		return
	}
	// the back stack from n on goes under the front stack
	n -= frontLen
	count := d.head - n
	d.head = n
	d.tail -= count
	d.buf.Move(n, d.tail, count)
}

// RotateRight rotates the Deque n places to the right, so the element that
// was last-n+1 becomes the first one. Panics if n > Len.
func (d *Deque[T]) RotateRight(n int) {
	frontLen := d.cap() - d.tail
	if n < 0 || n > frontLen+d.head {
		indexOutOfBounds(d.Len(), n)
	}
	if n <= d.head {
		// the last n back elements go under the front stack
		d.head -= n
		d.tail -= n
		d.buf.Move(d.head, d.tail, n)
		return
	}
	// the front stack up to its last n-head elements goes on the back stack
	count := frontLen - (n - d.head)
	d.buf.Move(d.tail, d.head, count)
	d.head += count
	d.tail += count
}

/*****************************************************************************
 * BULK REMOVAL
 *****************************************************************************/

// Truncate keeps the first n elements and drops the rest. It does nothing if
// n >= Len.
//
// Every dropped element reaches the drop function exactly once, even if the
// drop function panics on one of them. The Deque is consistent again before
// such a panic propagates.
func (d *Deque[T]) Truncate(n int) {
	if n < 0 {
		indexOutOfBounds(d.Len(), n)
	}
	if n >= d.Len() {
		return
	}
	front, back := d.Slices()
	if n > len(front) {
		begin := n - len(front)
		d.head = begin
		d.dropAll(back[begin:])
		return
	}

	// Nothing may be reachable while elements are dropped; the kept front
	// prefix is moved to the end of the buffer once they are.
	oldTail := d.tail
	d.head, d.tail = 0, d.cap()
	defer func() {
		d.tail = d.cap() - n
		d.buf.Move(oldTail, d.tail, n)
	}()
	defer d.dropAll(back)
	d.dropAll(front[n:])
}

// Clear drops every element, keeping the capacity.
func (d *Deque[T]) Clear() { d.Truncate(0) }

// Release drops every element and frees the buffer, leaving d as its zero
// value with the same options. Like Truncate, it reaches every element once
// even if the drop function panics.
func (d *Deque[T]) Release() {
	front, back := d.Slices()
	oldCap := d.cap()
	d.head, d.tail = 0, oldCap
	defer func() {
		d.buf.Release()
		d.head, d.tail = 0, 0
		d.recordRealloc(oldCap, 0)
	}()
	defer d.dropAll(back)
	d.dropAll(front)
}

// Resize changes Len to n, either by truncating or by pushing copies of t to
// the back.
func (d *Deque[T]) Resize(n int, t T) {
	d.ResizeFunc(n, func() T { return t })
}

// ResizeFunc changes Len to n, either by truncating or by pushing values
// returned by gen to the back.
func (d *Deque[T]) ResizeFunc(n int, gen func() T) {
	length := d.Len()
	if n <= length {
		d.Truncate(n)
		return
	}
	d.Reserve(n - length)
	s := d.buf.Slots()
	for ; length < n; length++ {
		s[d.head] = gen()
		d.head++
	}
}

// Retain keeps only the elements for which f returns true, in their
// original order. Every element is visited exactly once. Rejected elements
// are handed to the drop function.
func (d *Deque[T]) Retain(f func(T) bool) {
	d.RetainPtr(func(t *T) bool { return f(*t) })
}

// RetainPtr is Retain with a pointer, so f may modify the elements it
// visits.
func (d *Deque[T]) RetainPtr(f func(*T) bool) {
	length := d.Len()
	s := d.buf.Slots()

	// leave the retained prefix alone
	cur := 0
	for cur < length && f(&s[d.mustOffset(cur)]) {
		cur++
	}
	if cur == length {
		return
	}

	// swap every later retained element into place
	kept := cur
	for cur++; cur < length; cur++ {
		if f(&s[d.mustOffset(cur)]) {
			d.Swap(kept, cur)
			kept++
		}
	}
	d.Truncate(kept)
}
