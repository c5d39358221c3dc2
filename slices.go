package altdeque

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/lucasgdosr/altdeque/internal/rawbuf"
)

/*****************************************************************************
 * CONVERSIONS
 *****************************************************************************/

// FromSlice turns s into the back stack of a new Deque without copying. The
// Deque takes over the backing array of s up to its capacity, so s must not
// be used afterwards. Elements past len(s) are zeroed.
func FromSlice[T any](s []T, opts ...Option[T]) *Deque[T] {
	d := newDeque(rawbuf.FromSlice(s), applyOptions(opts...))
	d.head = len(s)
	clear(d.buf.Slots()[d.head:])
	return d
}

// CopySliceToDeque allocates a buffer of exactly len(s) elements and copies
// s into its front stack. The slice's capacity is irrelevant to
// CopySliceToDeque, and memory is not shared.
func CopySliceToDeque[T any](s []T, opts ...Option[T]) *Deque[T] {
	return FromSlices(s, nil, opts...)
}

// FromSlices returns a Deque of exactly len(front)+len(back) capacity whose
// front stack is a copy of front and whose back stack is a copy of back.
// Panics with ErrCapacityOverflow if the lengths add up past math.MaxInt.
func FromSlices[T any](front, back []T, opts ...Option[T]) *Deque[T] {
	if len(back) > math.MaxInt-len(front) {
		panic(ErrCapacityOverflow)
	}
	d := withCapacity[T](len(front)+len(back), applyOptions(opts...))
	s := d.buf.Slots()
	d.tail = d.cap() - len(front)
	copy(s[d.tail:], front)
	d.head = copy(s, back)
	return d
}

// IntoSlice returns the elements as a slice, giving up the buffer, which
// the slice keeps using. d is left empty with no capacity.
//
// If the front stack is empty it is O(1). Otherwise the elements are made
// contiguous first and then shifted to the start of the buffer.
func (d *Deque[T]) IntoSlice() []T {
	length := d.Len()
	if d.tail != d.cap() {
		d.MakeContiguous()
		d.buf.Move(d.tail, 0, length)
	}
	s := d.buf.Slots()[:length]

	oldCap := d.cap()
	d.buf.Release()
	d.head, d.tail = 0, 0
	d.recordRealloc(oldCap, 0)
	return s
}

/*****************************************************************************
 * COPYING
 *****************************************************************************/

// Clone returns a shallow copy of the Deque with exactly Len capacity. It
// shares d's options.
func (d *Deque[T]) Clone() *Deque[T] {
	c := withCapacity[T](d.Len(), d.opts)
	c.head = d.CopySlice(0, c.buf.Slots())
	return c
}

// MakeSliceCopy allocates a slice to hold every Deque element and copies
// them. Prefer passing a buffer to CopySlice for memory reuse.
func (d *Deque[T]) MakeSliceCopy() []T {
	s := make([]T, d.Len())
	_ = d.CopySlice(0, s)
	return s
}

// MakeSliceIndexCopy allocates a slice and copies the elements from the
// start index (inclusive) to the end index (non-inclusive). This is regular
// slice semantics, except it's a copy, and doesn't share memory with the
// Deque. This means it also panics with invalid indexes.
func (d *Deque[T]) MakeSliceIndexCopy(start, end int) []T {
	d.checkRange(start, end)
	s := make([]T, end-start)
	_ = d.CopySlice(start, s)
	return s
}

// CopySlice has the same semantics as the copy() built-in function. It
// copies elements in the Deque starting at the start index up until buf is
// full or the Deque is over, whichever happens first. Panics if start is out
// of [0, Len].
//
// CopySlice returns the number of elements copied.
func (d *Deque[T]) CopySlice(start int, buf []T) int {
	front, back := d.Slices()
	if start < 0 || start > len(front)+len(back) {
		indexOutOfBounds(len(front)+len(back), start)
	}
	if start < len(front) {
		n := copy(buf, front[start:])
		return n + copy(buf[n:], back)
	}
	return copy(buf, back[start-len(front):])
}

/*****************************************************************************
 * SEARCH
 *****************************************************************************/

// Contains returns whether the element is in the Deque. This must not be a
// method, otherwise Deque would be constrained to comparable elements. It
// has the same semantics as slices.Contains.
func Contains[T comparable](d *Deque[T], t T) bool {
	return Index(d, t) != -1
}

// ContainsFunc returns whether an element satisfying f is in the Deque.
func (d *Deque[T]) ContainsFunc(f func(T) bool) bool {
	return d.IndexFunc(f) != -1
}

// Index returns the index of the first occurrence of t in the Deque or -1
// if absent. It has the same semantics as slices.Index.
func Index[T comparable](d *Deque[T], t T) int {
	return d.IndexFunc(func(u T) bool { return u == t })
}

// IndexFunc returns the index of the first element that satisfies f in the
// Deque or -1 if none do.
func (d *Deque[T]) IndexFunc(f func(T) bool) int {
	front, back := d.Slices()
	if i := slices.IndexFunc(front, f); i != -1 {
		return i
	}
	if i := slices.IndexFunc(back, f); i != -1 {
		return i + len(front)
	}
	return -1
}

// Max returns the maximum element in the Deque. It has the same semantics
// as slices.Max, so it panics on an empty Deque.
func Max[T cmp.Ordered](d *Deque[T]) T {
	front, back := d.Slices()
	switch {
	case len(front) == 0:
		return slices.Max(back)
	case len(back) == 0:
		return slices.Max(front)
	default:
		return max(slices.Max(front), slices.Max(back))
	}
}

// MaxFunc returns the maximum element according to cmp, the first one if
// there are several. It panics on an empty Deque.
func (d *Deque[T]) MaxFunc(cmp func(a, b T) int) T {
	front, back := d.Slices()
	switch {
	case len(front) == 0:
		return slices.MaxFunc(back, cmp)
	case len(back) == 0:
		return slices.MaxFunc(front, cmp)
	}
	a, b := slices.MaxFunc(front, cmp), slices.MaxFunc(back, cmp)
	if cmp(b, a) > 0 {
		return b
	}
	return a
}

// Min returns the minimum element in the Deque. It has the same semantics
// as slices.Min, so it panics on an empty Deque.
func Min[T cmp.Ordered](d *Deque[T]) T {
	front, back := d.Slices()
	switch {
	case len(front) == 0:
		return slices.Min(back)
	case len(back) == 0:
		return slices.Min(front)
	default:
		return min(slices.Min(front), slices.Min(back))
	}
}

// MinFunc returns the minimum element according to cmp, the first one if
// there are several. It panics on an empty Deque.
func (d *Deque[T]) MinFunc(cmp func(a, b T) int) T {
	front, back := d.Slices()
	switch {
	case len(front) == 0:
		return slices.MinFunc(back, cmp)
	case len(back) == 0:
		return slices.MinFunc(front, cmp)
	}
	a, b := slices.MinFunc(front, cmp), slices.MinFunc(back, cmp)
	if cmp(b, a) < 0 {
		return b
	}
	return a
}

// BinarySearch searches for target in a sorted Deque and returns the
// position where target is found, or the position where it would appear in
// the sort order, and whether it was found. Among equal elements any of
// their positions may be returned.
func BinarySearch[T cmp.Ordered](d *Deque[T], target T) (int, bool) {
	return BinarySearchFunc(d, target, cmp.Compare[T])
}

// BinarySearchFunc is BinarySearch with a custom comparison, which must
// return a negative number when its element sorts before target.
//
// The first element of the back stack decides which stack gets searched.
func BinarySearchFunc[T, E any](d *Deque[T], target E, cmp func(T, E) int) (int, bool) {
	front, back := d.Slices()
	if len(back) > 0 {
		switch c := cmp(back[0], target); {
		case c == 0:
			return len(front), true
		case c < 0:
			i, found := slices.BinarySearchFunc(back, target, cmp)
			return i + len(front), found
		}
	}
	return slices.BinarySearchFunc(front, target, cmp)
}

// BinarySearchByKey searches a Deque sorted by key(element) for the given
// key.
func BinarySearchByKey[T any, K cmp.Ordered](d *Deque[T], key K, f func(T) K) (int, bool) {
	return BinarySearchFunc(d, key, func(t T, k K) int {
		return cmp.Compare(f(t), k)
	})
}

// PartitionPoint returns the index of the first element for which pred is
// false, assuming pred is true for some prefix of the Deque and false for
// the rest.
func (d *Deque[T]) PartitionPoint(pred func(T) bool) int {
	front, back := d.Slices()
	if len(back) > 0 && pred(back[0]) {
		return len(front) + sort.Search(len(back), func(i int) bool { return !pred(back[i]) })
	}
	return sort.Search(len(front), func(i int) bool { return !pred(front[i]) })
}

/*****************************************************************************
 * COMPARISON
 *****************************************************************************/

// Equal returns whether both Deques have the same length and the same
// elements in the same order, no matter how they are split between the
// stacks. Two nil Deques are equal, but an empty Deque and nil are not.
// This must not be a method, otherwise Deque would be constrained to
// comparable elements.
func Equal[T comparable](d1, d2 *Deque[T]) bool {
	return d1.EqualFunc(d2, func(a, b T) bool { return a == b })
}

// EqualFunc is Equal with a custom equality function. It has the same nil
// semantics as Equal.
func (d1 *Deque[T]) EqualFunc(d2 *Deque[T], f func(T, T) bool) bool {
	if d1 == nil || d2 == nil {
		return d1 == d2
	}
	if d1.Len() != d2.Len() {
		return false
	}

	// walk the three sections where neither deque switches stacks
	a1, a2 := d1.Slices()
	b1, b2 := d2.Slices()
	if len(a1) > len(b1) {
		k := len(a1) - len(b1)
		return slices.EqualFunc(a1[:len(b1)], b1, f) &&
			slices.EqualFunc(a1[len(b1):], b2[:k], f) &&
			slices.EqualFunc(a2, b2[k:], f)
	}
	k := len(b1) - len(a1)
	return slices.EqualFunc(a1, b1[:len(a1)], f) &&
		slices.EqualFunc(a2[:k], b1[len(a1):], f) &&
		slices.EqualFunc(a2[k:], b2, f)
}

// Compare compares the elements of both Deques lexicographically, like
// slices.Compare.
func Compare[T cmp.Ordered](d1, d2 *Deque[T]) int {
	return CompareFunc(d1, d2, cmp.Compare[T])
}

// CompareFunc is Compare with a custom comparison function.
func CompareFunc[T, U any](d1 *Deque[T], d2 *Deque[U], cmp func(T, U) int) int {
	n := min(d1.Len(), d2.Len())
	for i := range n {
		if c := cmp(d1.At(i), d2.At(i)); c != 0 {
			return c
		}
	}
	switch l1, l2 := d1.Len(), d2.Len(); {
	case l1 < l2:
		return -1
	case l1 > l2:
		return 1
	default:
		return 0
	}
}

// String formats the elements like a slice, e.g. [1 2 3].
func (d *Deque[T]) String() string {
	if d == nil {
		return "<nil>"
	}
	return fmt.Sprint(d.MakeSliceCopy())
}
