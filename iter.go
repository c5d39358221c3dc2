package altdeque

import "iter"

/*****************************************************************************
 * ITER API
 *****************************************************************************/

// ForEach takes in a function that returns a bool and calls it in order for
// every element in the Deque, or until the first call that returns false.
func (d *Deque[T]) ForEach(f func(T) bool) {
	for t := range d.Iter() {
		if !f(t) {
			return
		}
	}
}

// All returns an iterator over index-value pairs in order. It has the same
// semantics as slices.All. If you don't need indexes, use Iter instead.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if d == nil {
			return
		}
		front, back := d.Slices()
		for i, t := range front {
			if !yield(i, t) {
				return
			}
		}
		for i, t := range back {
			if !yield(len(front)+i, t) {
				return
			}
		}
	}
}

// Iter returns an iterator over values only in order. If you need indexes,
// use All instead.
func (d *Deque[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if d == nil {
			return
		}
		front, back := d.Slices()
		for _, t := range front {
			if !yield(t) {
				return
			}
		}
		for _, t := range back {
			if !yield(t) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs from the back to the
// front, like slices.Backward.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if d == nil {
			return
		}
		front, back := d.Slices()
		for i := len(back) - 1; i >= 0; i-- {
			if !yield(len(front)+i, back[i]) {
				return
			}
		}
		for i := len(front) - 1; i >= 0; i-- {
			if !yield(i, front[i]) {
				return
			}
		}
	}
}

// AllPtr is All with pointers into the Deque, so the loop body may modify
// the elements. It must not push, pop or otherwise move elements.
func (d *Deque[T]) AllPtr() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		if d == nil {
			return
		}
		front, back := d.Slices()
		for i := range front {
			if !yield(i, &front[i]) {
				return
			}
		}
		for i := range back {
			if !yield(len(front)+i, &back[i]) {
				return
			}
		}
	}
}

// Range returns an iterator over the index-value pairs in [start, end). It
// panics right away if the range is invalid.
func (d *Deque[T]) Range(start, end int) iter.Seq2[int, T] {
	d.checkRange(start, end)
	return func(yield func(int, T) bool) {
		for i := start; i < end; i++ {
			if !yield(i, d.At(i)) {
				return
			}
		}
	}
}

// RangePtr is Range with pointers into the Deque.
func (d *Deque[T]) RangePtr(start, end int) iter.Seq2[int, *T] {
	d.checkRange(start, end)
	return func(yield func(int, *T) bool) {
		for i := start; i < end; i++ {
			if !yield(i, d.GetPtr(i)) {
				return
			}
		}
	}
}

// IterPopFront returns an iterator that pops elements from the front until
// the Deque is empty or the loop stops. Elements not reached stay in the
// Deque.
func (d *Deque[T]) IterPopFront() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			t, ok := d.PopFront()
			if !ok || !yield(t) {
				return
			}
		}
	}
}

// IterPopBack is IterPopFront, popping from the back.
func (d *Deque[T]) IterPopBack() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			t, ok := d.PopBack()
			if !ok || !yield(t) {
				return
			}
		}
	}
}

// AppendSeq pushes every value of seq to the back, in order.
func (d *Deque[T]) AppendSeq(seq iter.Seq[T]) {
	for t := range seq {
		d.PushBack(t)
	}
}

// Collect returns a new Deque holding the values of seq in order.
func Collect[T any](seq iter.Seq[T], opts ...Option[T]) *Deque[T] {
	d := MakeDeque(opts...)
	d.AppendSeq(seq)
	return d
}
