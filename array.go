package safeseq

import (
	"fmt"
	"iter"

	"github.com/npillmayer/safeseq/checked"
	"github.com/npillmayer/safeseq/ref"
)

// Array is a sequence of a fixed number of slots of type T.
//
// The number of slots is set at construction and never changes. All accessors
// check indices against it. Arrays are meant to be used by pointer; Clone
// creates an independent copy.
type Array[T any] struct {
	slots    []T
	size     checked.Size
	anchor   ref.Anchor
	trackers registry[T]
}

// New creates an array of n zero-valued slots.
func New[T any](n int) (*Array[T], error) {
	size, err := checked.SizeFrom(n)
	if err != nil {
		return nil, fmt.Errorf("%w: capacity %d: %w", ErrIllegalArguments, n, err)
	}
	return &Array[T]{
		slots: make([]T, n),
		size:  size,
	}, nil
}

// From creates an array of n slots, initialized from items. If there are fewer
// items than slots, the remaining slots hold the zero value of T. More items
// than slots is an error.
func From[T any](n int, items ...T) (*Array[T], error) {
	a, err := New[T](n)
	if err != nil {
		return nil, err
	}
	if len(items) > n {
		return nil, fmt.Errorf("%w: %d items for capacity %d", ErrIndexOutOfRange, len(items), n)
	}
	copy(a.slots, items)
	return a, nil
}

// Clone creates a copy of a. Iterators over a stay bound to a, and trackers
// are not copied.
func (a *Array[T]) Clone() (*Array[T], error) {
	if a == nil {
		return nil, ErrNullDereference
	}
	return From(len(a.slots), a.slots...)
}

// Len returns the number of slots.
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}
	return len(a.slots)
}

// Size returns the number of slots as a checked size.
func (a *Array[T]) Size() checked.Size {
	if a == nil {
		return checked.NewSize(0)
	}
	return a.size
}

// At returns the item at index i.
func (a *Array[T]) At(i int) (T, error) {
	p, err := a.Ref(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// AtSize returns the item at index i, given as a checked size.
func (a *Array[T]) AtSize(i checked.Size) (T, error) {
	var zero T
	if a == nil {
		return zero, ErrNullDereference
	}
	c, err := i.Cmp(a.size)
	if err != nil {
		return zero, err
	}
	if c >= 0 {
		return zero, fmt.Errorf("%w: index %s, size %s", ErrIndexOutOfRange, i, a.size)
	}
	return a.slots[sizeToInt(i)], nil
}

// Ref returns a pointer to the slot at index i. The pointer stays valid for
// the lifetime of a, as slots never move.
func (a *Array[T]) Ref(i int) (*T, error) {
	if err := a.checkIndex(i); err != nil {
		return nil, err
	}
	return &a.slots[i], nil
}

// Set stores v at index i.
func (a *Array[T]) Set(i int, v T) error {
	p, err := a.Ref(i)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Front returns the first item.
func (a *Array[T]) Front() (T, error) {
	var zero T
	if a == nil {
		return zero, ErrNullDereference
	}
	if len(a.slots) == 0 {
		return zero, fmt.Errorf("%w: Front()", ErrEmptyContainer)
	}
	return a.slots[0], nil
}

// Back returns the last item.
func (a *Array[T]) Back() (T, error) {
	var zero T
	if a == nil {
		return zero, ErrNullDereference
	}
	if len(a.slots) == 0 {
		return zero, fmt.Errorf("%w: Back()", ErrEmptyContainer)
	}
	return a.slots[len(a.slots)-1], nil
}

// All returns an iterator over index/item pairs, usable with range.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if a == nil {
			return
		}
		for it := a.CBegin(); it.PointsToAnItem(); {
			item, err := it.Item()
			assert(err == nil, "All: iterator lost its item")
			if !yield(it.Position(), item) {
				return
			}
			if err := it.SetToNext(); err != nil {
				return
			}
		}
	}
}

// Retire invalidates every iterator bound to a. Afterwards, existing iterators
// fail with ErrNullDereference. New iterators may be created as usual.
func (a *Array[T]) Retire() {
	if a == nil {
		return
	}
	a.anchor.Retire()
	a.trackers.clear()
	tracer().Debugf("array of size %d retired all iterators", len(a.slots))
}

func (a *Array[T]) checkIndex(i int) error {
	if a == nil {
		return ErrNullDereference
	}
	if i < 0 || i >= len(a.slots) {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, len(a.slots))
	}
	return nil
}

// --- Iterator factories ----------------------------------------------------

// cursorAt creates a cursor bound to a, positioned at the beginning or at
// the end marker. For a nil array the cursor has a null owner.
func (a *Array[T]) cursorAt(atEnd bool) *cursor[T] {
	c := &cursor[T]{}
	if a == nil {
		return c
	}
	c.owner = ref.Tracked(a, &a.anchor)
	if atEnd {
		c.moveToIndex(a, a.size)
	} else {
		c.moveToIndex(a, checked.NewSize(0))
	}
	return c
}

// Begin returns a mutable iterator at the first item (or the end marker for
// an empty array).
func (a *Array[T]) Begin() *Iterator[T] {
	return &Iterator[T]{a.cursorAt(false)}
}

// End returns a mutable iterator at the end marker.
func (a *Array[T]) End() *Iterator[T] {
	return &Iterator[T]{a.cursorAt(true)}
}

// CBegin returns a read-only iterator at the first item.
func (a *Array[T]) CBegin() *ConstIterator[T] {
	return &ConstIterator[T]{a.cursorAt(false)}
}

// CEnd returns a read-only iterator at the end marker.
func (a *Array[T]) CEnd() *ConstIterator[T] {
	return &ConstIterator[T]{a.cursorAt(true)}
}

// RBegin returns a mutable reverse iterator at the last item.
func (a *Array[T]) RBegin() *ReverseIterator[T] {
	return &ReverseIterator[T]{rcursor[T]{a.cursorAt(true)}}
}

// REnd returns a mutable reverse iterator past the first item.
func (a *Array[T]) REnd() *ReverseIterator[T] {
	return &ReverseIterator[T]{rcursor[T]{a.cursorAt(false)}}
}

// CRBegin returns a read-only reverse iterator at the last item.
func (a *Array[T]) CRBegin() *ConstReverseIterator[T] {
	return &ConstReverseIterator[T]{rcursor[T]{a.cursorAt(true)}}
}

// CREnd returns a read-only reverse iterator past the first item.
func (a *Array[T]) CREnd() *ConstReverseIterator[T] {
	return &ConstReverseIterator[T]{rcursor[T]{a.cursorAt(false)}}
}
