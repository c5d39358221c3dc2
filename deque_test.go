package altdeque

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stacks returns copies of both stacks that are never nil, so empty stacks
// compare equal to []T{}.
func stacks[T any](d *Deque[T]) (front, back []T) {
	f, b := d.Slices()
	return append([]T{}, f...), append([]T{}, b...)
}

// requireInvariants checks the cursor bounds and that every free slot is
// zero.
func requireInvariants(t *testing.T, d *Deque[int]) {
	t.Helper()
	require.True(t, 0 <= d.head && d.head <= d.tail && d.tail <= d.cap(),
		"head %d, tail %d, cap %d", d.head, d.tail, d.cap())
	for i, v := range d.buf.Slots()[d.head:d.tail] {
		require.Zerof(t, v, "free slot %d holds %d", d.head+i, v)
	}
	front, back := d.Slices()
	require.Equal(t, d.Len(), len(front)+len(back))
}

func seq(from, to int) []int {
	s := make([]int, 0, max(to-from, 0))
	for i := from; i < to; i++ {
		s = append(s, i)
	}
	return s
}

func TestZeroValue(t *testing.T) {
	var d Deque[int]
	assert.True(t, d.Empty())
	assert.True(t, d.Full())
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, 0, d.Cap())

	_, ok := d.PopFront()
	assert.False(t, ok)
	_, ok = d.PopBack()
	assert.False(t, ok)
	_, ok = d.PeekFront()
	assert.False(t, ok)
	assert.Nil(t, d.PeekBackPtr())

	d.PushBack(1)
	assert.Equal(t, 4, d.Cap())
	assert.Equal(t, []int{1}, d.MakeSliceCopy())
	requireInvariants(t, &d)
}

func TestNilLen(t *testing.T) {
	var d *Deque[int]
	assert.Equal(t, 0, d.Len())
}

func TestMakeDeque(t *testing.T) {
	d := MakeDeque[uint64]()
	assert.Equal(t, 0, d.Cap())
	assert.Equal(t, 0, d.Len())

	d, err := MakeDequeWithCapacity[uint64](8)
	require.NoError(t, err)
	assert.Equal(t, 8, d.Cap())
	assert.Equal(t, 0, d.Len())
	assert.True(t, d.Empty())
}

func TestMakeDequeWithCapacityErrors(t *testing.T) {
	_, err := MakeDequeWithCapacity[int](-1)
	require.ErrorIs(t, err, ErrNegativeCapacity)

	_, err = MakeDequeWithCapacity[int](math.MaxInt)
	require.ErrorIs(t, err, ErrCapacityOverflow)

	t.Run("allocation failure", func(t *testing.T) {
		if math.MaxInt == math.MaxInt32 {
			t.Skip("needs a 64-bit address space")
		}
		_, err := MakeDequeWithCapacity[byte](math.MaxInt / 2)
		require.ErrorIs(t, err, ErrAllocationFailure)
		assert.Contains(t, err.Error(), "altdeque: allocating")
	})
}

func TestLenAndEmpty(t *testing.T) {
	d := CopySliceToDeque([]int{1, 2, 3})
	assert.Equal(t, 3, d.Len())
	assert.False(t, d.Empty())
	for _, want := range []int{1, 2, 3} {
		got, ok := d.PopFront()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 0, d.Len())
	assert.True(t, d.Empty())
}

func TestSlices(t *testing.T) {
	d := MakeDeque[int]()
	d.PushBack(0)
	d.PushBack(1)
	d.PushBack(2)
	front, back := stacks(d)
	assert.Equal(t, []int{}, front)
	assert.Equal(t, []int{0, 1, 2}, back)

	d.PushFront(3)
	d.PushFront(4)
	front, back = stacks(d)
	assert.Equal(t, []int{4, 3}, front)
	assert.Equal(t, []int{0, 1, 2}, back)
	requireInvariants(t, d)
}

func TestScenarioB(t *testing.T) {
	d := FromSlices([]int{1, 2, 3}, []int{4, 5, 6})
	front, back := stacks(d)
	assert.Equal(t, []int{1, 2, 3}, front)
	assert.Equal(t, []int{4, 5, 6}, back)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, d.MakeSliceCopy())
}

func TestGet(t *testing.T) {
	d := FromSlices([]int{1, 2}, []int{3, 4})
	for i, want := range []int{1, 2, 3, 4} {
		got, ok := d.Get(i)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := d.Get(5)
	assert.False(t, ok)
	_, ok = d.Get(-1)
	assert.False(t, ok)
	assert.Nil(t, d.GetPtr(4))

	*d.GetPtr(2) = 30
	assert.Equal(t, 30, d.At(2))
}

func TestAtSet(t *testing.T) {
	var dropped []int
	d := CopySliceToDeque([]int{1, 2, 3}, WithDropFunc(func(v int) { dropped = append(dropped, v) }))
	assert.Equal(t, 2, d.At(1))

	d.Set(1, d.At(1)+10)
	assert.Equal(t, []int{1, 12, 3}, d.MakeSliceCopy())
	assert.Equal(t, []int{2}, dropped)

	assert.PanicsWithValue(t, "index out of bounds: the len is 3 but the index is 3", func() {
		d.At(3)
	})
	assert.PanicsWithValue(t, "index out of bounds: the len is 3 but the index is 3", func() {
		d.Set(3, 0)
	})
	assert.PanicsWithValue(t, "index out of bounds: the len is 3 but the index is -1", func() {
		d.At(-1)
	})
}

func TestReserveAndExact(t *testing.T) {
	d := CopySliceToDeque([]int{1, 2, 3, 4})
	d.ReserveExact(3)
	assert.Equal(t, 7, d.Cap())
	d.Reserve(4)
	assert.Equal(t, 14, d.Cap())
	assert.Equal(t, []int{1, 2, 3, 4}, d.MakeSliceCopy())
	requireInvariants(t, d)

	// enough room already
	d.Reserve(10)
	assert.Equal(t, 14, d.Cap())
	assert.Equal(t, 2, d.Stats().Grows)
}

func TestReserveErrors(t *testing.T) {
	d := CopySliceToDeque([]int{1})
	require.ErrorIs(t, d.TryReserve(-1), ErrNegativeCapacity)
	require.ErrorIs(t, d.TryReserveExact(-1), ErrNegativeCapacity)
	require.ErrorIs(t, d.TryReserve(math.MaxInt), ErrCapacityOverflow)
	require.ErrorIs(t, d.TryReserveExact(math.MaxInt/2), ErrCapacityOverflow)

	assert.PanicsWithError(t, "capacity cannot be negative", func() { d.Reserve(-1) })
	assert.PanicsWithError(t, "capacity overflow", func() { d.ReserveExact(math.MaxInt) })

	// failed reservations leave the deque alone
	assert.Equal(t, 1, d.Cap())
	assert.Equal(t, []int{1}, d.MakeSliceCopy())
}

func TestShrink(t *testing.T) {
	d := MakeDeque[int8]()
	d.PushFront(-1)
	d.PushBack(1)
	front, back := stacks(d)
	assert.Equal(t, []int8{-1}, front)
	assert.Equal(t, []int8{1}, back)
	assert.Equal(t, 8, d.Cap())

	d.ShrinkTo(0)
	front, back = stacks(d)
	assert.Equal(t, []int8{-1}, front)
	assert.Equal(t, []int8{1}, back)
	assert.Equal(t, 2, d.Cap())
	assert.Equal(t, 1, d.Stats().Shrinks)

	// never grows
	d.ShrinkTo(10)
	assert.Equal(t, 2, d.Cap())
}

func TestShrinkToKeepsMinimum(t *testing.T) {
	d := FromSlices([]int{1, 2}, []int{3})
	d.Reserve(20)
	d.ShrinkTo(10)
	assert.Equal(t, 10, d.Cap())
	assert.Equal(t, []int{1, 2, 3}, d.MakeSliceCopy())
	requireInvariants(t, d)

	d.ShrinkToFit()
	assert.Equal(t, 3, d.Cap())
	assert.True(t, d.Full())
	assert.Equal(t, []int{1, 2, 3}, d.MakeSliceCopy())
}

func TestFront(t *testing.T) {
	d := MakeDeque[int]()
	d.PushBack(1)
	d.PushBack(2)
	v, _ := d.PeekFront()
	assert.Equal(t, 1, v)
	d.PushFront(3)
	d.PushFront(4)
	v, _ = d.PeekFront()
	assert.Equal(t, 4, v)

	*d.PeekFrontPtr() = 40
	assert.Equal(t, 40, d.At(0))

	d.Clear()
	_, ok := d.PeekFront()
	assert.False(t, ok)
	assert.Nil(t, d.PeekFrontPtr())
}

func TestBack(t *testing.T) {
	d := MakeDeque[int]()
	d.PushFront(1)
	d.PushFront(2)
	v, _ := d.PeekBack()
	assert.Equal(t, 1, v)
	d.PushBack(3)
	d.PushBack(4)
	v, _ = d.PeekBack()
	assert.Equal(t, 4, v)

	*d.PeekBackPtr() = 40
	assert.Equal(t, 40, d.At(d.Len()-1))

	d.Clear()
	_, ok := d.PeekBack()
	assert.False(t, ok)
}

func TestPopFrontFlips(t *testing.T) {
	d := MakeDeque[int]()
	d.PushBack(1)
	d.PushBack(2)
	d.PushBack(3)
	v, _ := d.PopFront()
	assert.Equal(t, 1, v)
	v, _ = d.PopFront()
	assert.Equal(t, 2, v)
	front, back := stacks(d)
	assert.Equal(t, []int{3}, front)
	assert.Equal(t, []int{}, back)
	assert.Equal(t, 1, d.Stats().StackFlips)
	requireInvariants(t, d)
}

func TestPopBackFlips(t *testing.T) {
	d := MakeDeque[int]()
	d.PushFront(1)
	d.PushFront(2)
	d.PushFront(3)
	v, _ := d.PopBack()
	assert.Equal(t, 1, v)
	v, _ = d.PopBack()
	assert.Equal(t, 2, v)
	front, back := stacks(d)
	assert.Equal(t, []int{}, front)
	assert.Equal(t, []int{3}, back)
	assert.Equal(t, 1, d.Stats().StackFlips)
	requireInvariants(t, d)
}

func TestPushVariadic(t *testing.T) {
	d := MakeDeque[int]()
	d.PushFront(1, 2, 3)
	front, _ := stacks(d)
	assert.Equal(t, []int{3, 2, 1}, front)

	d = MakeDeque[int]()
	d.PushBack(seq(0, 10)...)
	_, back := stacks(d)
	assert.Equal(t, seq(0, 10), back)
	assert.Equal(t, 10, d.Cap())
	assert.Equal(t, 1, d.Stats().Grows)
}

func TestScenarioA(t *testing.T) {
	d := MakeDeque[int]()
	for i := 0; i <= 1000; i++ {
		d.PushBack(i)
	}
	sum := 0
	for v := range d.IterPopFront() {
		sum += v
	}
	assert.Equal(t, 500500, sum)
	assert.True(t, d.Empty())
	assert.Equal(t, 1, d.Stats().StackFlips)
}

func TestAmortizedGrowth(t *testing.T) {
	const n = 1 << 12
	d := MakeDeque[int]()
	for i := range n {
		d.PushFront(i)
	}
	// 4, 8, ..., 4096
	assert.Equal(t, 11, d.Stats().Grows)
	assert.Equal(t, n, d.Cap())

	for i := range n {
		v, ok := d.PopBack()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	assert.Equal(t, 1, d.Stats().StackFlips)
}

func TestGrowthMovesFrontStack(t *testing.T) {
	d, err := MakeDequeWithCapacity[int](4)
	require.NoError(t, err)
	d.PushFront(2, 1)
	d.PushBack(3, 4)
	require.True(t, d.Full())

	d.PushBack(5)
	assert.Equal(t, 8, d.Cap())
	front, back := stacks(d)
	assert.Equal(t, []int{1, 2}, front)
	assert.Equal(t, []int{3, 4, 5}, back)
	assert.Equal(t, 6, d.tail)
	requireInvariants(t, d)
}

func TestPoppedSlotsAreZeroed(t *testing.T) {
	d := MakeDeque[*int]()
	for i := range 8 {
		d.PushBack(&i)
		d.PushFront(&i)
	}
	for !d.Empty() {
		d.PopFront()
		if !d.Empty() {
			d.PopBack()
		}
	}
	for i, p := range d.buf.Slots() {
		assert.Nilf(t, p, "slot %d", i)
	}
}

func TestZeroSized(t *testing.T) {
	d := MakeDeque[struct{}]()
	assert.Equal(t, math.MaxInt, d.Cap())
	d.PushBack(struct{}{}, struct{}{}, struct{}{})
	d.PushFront(struct{}{}, struct{}{})
	assert.Equal(t, 5, d.Len())
	assert.Equal(t, 0, d.Stats().Grows)

	for range 5 {
		_, ok := d.PopBack()
		require.True(t, ok)
	}
	assert.True(t, d.Empty())
	assert.Equal(t, 1, d.Stats().StackFlips)

	var zero Deque[struct{}]
	zero.PushFront(struct{}{})
	assert.Equal(t, math.MaxInt, zero.Cap())
	assert.Equal(t, 1, zero.Len())
}

func TestAppendZeroSizedOverflow(t *testing.T) {
	d := FromSlice(make([]struct{}, math.MaxInt/2))
	d.Append(d.Clone())
	assert.Equal(t, math.MaxInt/2*2, d.Len())
	assert.PanicsWithError(t, "capacity overflow", func() {
		d.Append(d.Clone())
	})
}
