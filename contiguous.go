package altdeque

// MakeContiguous rearranges the elements in place so they form one run in
// the front stack, and returns that run. It uses only the free slots between
// the stacks as scratch space and runs in O(Len).
//
// Once the Deque is contiguous, calling it again does nothing until the back
// stack gets new elements.
func (d *Deque[T]) MakeContiguous() []T {
	if d.head == 0 {
		front, _ := d.Slices()
		return front
	}
	free := d.tail - d.head
	d.rearrange(d.head, free, d.cap()-d.tail)
	d.head, d.tail = 0, free
	d.recordRearrange()
	front, _ := d.Slices()
	return front
}

// rearrange turns the prefix [0, back+free+front) of the buffer, laid out as
//
//	[ back | free | front ]
//
// into
//
//	[ free | front | back ]
//
// which is a rotation of the prefix by back places. Free slots hold zero
// values and may be swapped around freely.
//
// When the free slots can hold either stack, a couple of block moves do.
// Otherwise blocks of equal size are swapped across the boundary, each swap
// putting part of the back stack into its final place and leaving a smaller
// instance of the same layout, until the free slots suffice.
func (d *Deque[T]) rearrange(back, free, front int) {
	s := d.buf.Slots()
	for {
		switch {
		case back == 0:
			return
		case front == 0:
			// ABCD.. -> ..ABCD
			d.buf.Move(0, free, back)
			return
		case free >= back:
			// EF...ABCD -> EF.ABCD.. -> ...ABCDEF
			d.buf.Move(back+free, free, front)
			copy(s[free+front:], s[:back])
			clear(s[:back])
			return
		case free >= front:
			// CDEF...AB -> ..CDEF.AB -> ABCDEF... -> ...ABCDEF
			d.buf.Move(0, front, back)
			copy(s[:front], s[back+free:back+free+front])
			clear(s[back+free : back+free+front])
			d.buf.Move(0, free, front+back)
			return
		}

		// free < back and free < front from here on
		count := free + front
		switch {
		case back >= count:
			// swap the last count back elements with free+front, which
			// settles them and keeps the layout:
			// EFGHIJ.ABCD -> E.ABCDFGHIJ
			swapBlocks(s, back-count, back, count)
			back -= count
		case front >= back:
			// swap the back stack with the last back elements of front, which
			// settles it and leaves those elements in front of the free
			// slots, which is the same layout again:
			// DE.ABC -> BC.ADE
			swapBlocks(s, 0, count, back)
			front -= back
		default:
			// front < back < count: the swap settles the back stack and
			// leaves front behind some free slots, a single move away:
			// DEFG..ABC -> .ABC.DEFG -> ..ABCDEFG
			swapBlocks(s, 0, count, back)
			d.buf.Move(back-front, free, front)
			return
		}
	}
}

// swapBlocks swaps s[i:i+n] with s[j:j+n]. The blocks must not overlap.
func swapBlocks[T any](s []T, i, j, n int) {
	a, b := s[i:i+n], s[j:j+n]
	for k := range a {
		a[k], b[k] = b[k], a[k]
	}
}
