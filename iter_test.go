package altdeque

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIter(t *testing.T) {
	d := sample()
	assert.Equal(t, []int{-3, -2, -1, 1, 2, 3}, collect(d.Iter()))

	sum := 0
	d.ForEach(func(v int) bool {
		sum += max(v, -v)
		return true
	})
	assert.Equal(t, 12, sum)

	var seen []int
	d.ForEach(func(v int) bool {
		seen = append(seen, v)
		return v != -1
	})
	assert.Equal(t, []int{-3, -2, -1}, seen)
}

func TestAll(t *testing.T) {
	d := sample()
	for i, v := range d.All() {
		assert.Equal(t, d.At(i), v)
	}
	indexes := slices.Collect(func(yield func(int) bool) {
		for i := range d.All() {
			if !yield(i) {
				return
			}
		}
	})
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, indexes)

	var back []int
	for i, v := range d.Backward() {
		assert.Equal(t, d.At(i), v)
		back = append(back, v)
	}
	assert.Equal(t, []int{3, 2, 1, -1, -2, -3}, back)
}

func TestAllPtr(t *testing.T) {
	d := sample()
	for _, p := range d.AllPtr() {
		*p *= 2
	}
	assert.Equal(t, []int{-6, -4, -2, 2, 4, 6}, d.MakeSliceCopy())

	for i, p := range d.AllPtr() {
		if i >= 4 {
			*p *= 2
		}
	}
	assert.Equal(t, []int{-6, -4, -2, 2, 8, 12}, d.MakeSliceCopy())
}

func TestRange(t *testing.T) {
	d := sample()
	values := func(start, end int) []int {
		var s []int
		for _, v := range d.Range(start, end) {
			s = append(s, v)
		}
		return s
	}
	assert.Equal(t, []int{-3, -2, -1, 1, 2, 3}, values(0, 6))
	assert.Equal(t, []int{-1, 1}, values(2, 4))
	assert.Equal(t, []int{2, 3}, values(4, 6))
	assert.Equal(t, []int{-3, -2}, values(0, 2))
	assert.Nil(t, values(3, 3))

	for i, p := range d.RangePtr(2, 4) {
		*p = i * 10
	}
	assert.Equal(t, []int{-3, -2, 20, 30, 2, 3}, d.MakeSliceCopy())
}

func TestRangeInvalid(t *testing.T) {
	d := CopySliceToDeque([]int{1, 2, 3})
	assert.PanicsWithValue(t, "range end 5 should be <= length 3", func() { d.Range(4, 5) })
	assert.PanicsWithValue(t, "range end 4 should be <= length 3", func() { d.Range(0, 4) })
	assert.PanicsWithValue(t, "range start 2 should be <= range end 1", func() { d.RangePtr(2, 1) })
}

func TestIterPop(t *testing.T) {
	d := sample()
	var got []int
	for v := range d.IterPopFront() {
		got = append(got, v)
		if v == 1 {
			break
		}
	}
	assert.Equal(t, []int{-3, -2, -1, 1}, got)
	assert.Equal(t, []int{2, 3}, d.MakeSliceCopy())

	d = sample()
	assert.Equal(t, []int{3, 2, 1, -1, -2, -3}, collect(d.IterPopBack()))
	assert.True(t, d.Empty())
}

func TestAppendSeq(t *testing.T) {
	d := MakeDeque[int]()
	d.PushFront(1)
	d.PushBack(2)
	d.AppendSeq(slices.Values([]int{3, 4, 5, 6, 7, 8, 9}))
	front, back := stacks(d)
	assert.Equal(t, []int{1}, front)
	assert.Equal(t, []int{2, 3, 4, 5, 6, 7, 8, 9}, back)
}

func TestCollect(t *testing.T) {
	d := Collect(slices.Values([]int{1, 2, 3}))
	assert.True(t, Equal(d, CopySliceToDeque([]int{1, 2, 3})))
}

func TestNilIterators(t *testing.T) {
	var d *Deque[int]
	for range d.All() {
		assert.Fail(t, "nil Deque yielded")
	}
	for range d.Iter() {
		assert.Fail(t, "nil Deque yielded")
	}
	for range d.Backward() {
		assert.Fail(t, "nil Deque yielded")
	}
	for range d.AllPtr() {
		assert.Fail(t, "nil Deque yielded")
	}
}
