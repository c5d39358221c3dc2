package altdeque

import (
	"errors"

	"github.com/lucasgdosr/altdeque/internal/rawbuf"
)

/*****************************************************************************
 * SENTINEL ERRORS
 *****************************************************************************/

var (
	// ErrNegativeCapacity is returned when asking for a negative capacity or
	// a negative number of additional slots.
	ErrNegativeCapacity = errors.New("capacity cannot be negative")

	// ErrCapacityOverflow means a requested capacity doesn't fit in an int,
	// either as an element count or as a size in bytes.
	ErrCapacityOverflow = rawbuf.ErrCapacityOverflow

	// ErrAllocationFailure means the runtime refused to allocate the buffer.
	// It is always wrapped with the size that was asked for.
	ErrAllocationFailure = rawbuf.ErrAllocationFailure
)
