package altdeque

import (
	"cmp"
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// HashFunc returns the xxhash64 of the Deque's length followed by its
// elements in order, each encoded by appendElem and prefixed with the
// encoding's length. Deques that are Equal hash the same no matter how
// their elements are split between the stacks, as long as appendElem
// encodes equal elements the same way.
func HashFunc[T any](d *Deque[T], appendElem func([]byte, T) []byte) uint64 {
	h := xxhash.New()
	var hdr [binary.MaxVarintLen64]byte
	_, _ = h.Write(binary.LittleEndian.AppendUint64(hdr[:0], uint64(d.Len())))

	var elem []byte
	for t := range d.Iter() {
		elem = appendElem(elem[:0], t)
		_, _ = h.Write(binary.AppendUvarint(hdr[:0], uint64(len(elem))))
		_, _ = h.Write(elem)
	}
	return h.Sum64()
}

// Hash is HashFunc for ordered elements, encoded as fmt prints them.
func Hash[T cmp.Ordered](d *Deque[T]) uint64 {
	return HashFunc(d, appendOrdered[T])
}

func appendOrdered[T cmp.Ordered](b []byte, t T) []byte {
	// -0.0 == 0.0 but prints differently
	var zero T
	if t == zero {
		t = zero
	}
	return fmt.Append(b, t)
}
