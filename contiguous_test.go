package altdeque

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeContiguous(t *testing.T) {
	d := MakeDeque[int]()
	d.PushBack(1)
	d.PushBack(2)
	// everything is in the back stack
	assert.Equal(t, []int{1, 2}, d.MakeContiguous())
	// everything is in the front stack
	assert.Equal(t, []int{1, 2}, d.MakeContiguous())
	assert.Equal(t, 1, d.Stats().Rearrangements)

	d.PushBack(3)
	d.PushBack(4)
	d.Reserve(2)
	// the free slots can hold the back stack
	assert.Equal(t, []int{1, 2, 3, 4}, d.MakeContiguous())

	d.PushBack(5, 6, 7, 8)
	d.PopFront()
	d.PopFront()
	// the free slots can hold the front stack but not the back stack
	assert.Equal(t, 8, d.Cap())
	assert.Equal(t, []int{3, 4, 5, 6, 7, 8}, d.MakeContiguous())

	d.PushBack(9)
	d.PushBack(10)
	// the free slots can hold neither
	assert.Equal(t, 8, d.Cap())
	assert.Equal(t, []int{3, 4, 5, 6, 7, 8, 9, 10}, d.MakeContiguous())
	requireInvariants(t, d)
}

func TestMakeContiguousBlockSwaps(t *testing.T) {
	// CDEFGHI..AB
	d := FromSlices([]int{1, 2}, []int{3, 4, 5, 6, 7, 8, 9, 10, 11})
	d.PopBack()
	d.PopBack()
	assert.Equal(t, seq(1, 10), d.MakeContiguous())
	requireInvariants(t, d)

	// EFGHIJ.ABCD
	d = FromSlices([]int{1, 2, 3, 4}, []int{5, 6, 7, 8, 9, 10, 11})
	d.PopBack()
	assert.Equal(t, seq(1, 11), d.MakeContiguous())
	requireInvariants(t, d)

	// CDEFGH.AB
	d = FromSlices([]int{1, 2}, []int{3, 4, 5, 6, 7, 8, 9, 10})
	d.PopBack()
	assert.Equal(t, seq(1, 10), d.MakeContiguous())
	requireInvariants(t, d)
}

// Every layout of every buffer up to 12 slots.
func TestMakeContiguousExhaustive(t *testing.T) {
	for capacity := 0; capacity <= 12; capacity++ {
		for frontLen := 0; frontLen <= capacity; frontLen++ {
			for backLen := 0; frontLen+backLen <= capacity; backLen++ {
				name := fmt.Sprintf("cap=%d/front=%d/back=%d", capacity, frontLen, backLen)
				length := frontLen + backLen
				d := build(t, capacity, seq(1, frontLen+1), seq(frontLen+1, length+1))

				got := append([]int{}, d.MakeContiguous()...)
				require.Equal(t, seq(1, length+1), got, name)
				require.Equal(t, 0, d.head, name)
				require.Equal(t, capacity-length, d.tail, name)
				require.Equal(t, capacity, d.Cap(), name)
				requireInvariants(t, d)

				// a second call has nothing to do
				rearrangements := d.Stats().Rearrangements
				again := append([]int{}, d.MakeContiguous()...)
				require.Equal(t, got, again, name)
				require.Equal(t, rearrangements, d.Stats().Rearrangements, name)
			}
		}
	}
}
