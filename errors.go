package safeseq

import (
	"github.com/npillmayer/safeseq/checked"
	"github.com/npillmayer/safeseq/ref"
)

// SeqError is an error type for the safeseq module.
type SeqError string

func (e SeqError) Error() string {
	return string(e)
}

// ErrIndexOutOfRange is flagged whenever an index is not smaller than the
// size of an array.
const ErrIndexOutOfRange = SeqError("index out of range")

// ErrEmptyContainer is flagged for Front or Back on an array of size 0.
const ErrEmptyContainer = SeqError("access to element of empty container")

// ErrInvalidIterator is flagged whenever an iterator is asked for an item
// while not pointing to one, or is moved across the beginning or the end marker.
const ErrInvalidIterator = SeqError("invalid iterator state")

// ErrOwnerMismatch is flagged when comparing or subtracting iterators which
// are bound to different arrays.
const ErrOwnerMismatch = SeqError("iterators bound to different owners")

// ErrIteratorBounds is flagged whenever an iterator would be moved to a position
// outside of [0, size].
const ErrIteratorBounds = SeqError("iterator position out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = SeqError("illegal arguments")

// Errors from the scalar and reference layers, re-exported so that callers
// find the complete taxonomy in one place.
var (
	ErrNullDereference = ref.ErrNullDereference
	ErrArithmeticRange = checked.ErrArithmeticRange
	ErrUseBeforeSet    = checked.ErrUseBeforeSet
)
