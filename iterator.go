package safeseq

import "fmt"

// Iterator is a mutable position-tracking iterator over an Array.
//
// Iterators are created by the factory methods of Array (Begin, End) and stay
// bound to that array for their lifetime. The zero value has no owner; every
// navigation on it fails with ErrNullDereference.
type Iterator[T any] struct {
	*cursor[T]
}

func (it *Iterator[T]) core() *cursor[T] {
	if it == nil {
		return nil
	}
	return it.cursor
}

func (it *Iterator[T]) forward() *cursor[T] {
	return it.core()
}

func (it *Iterator[T]) tracked() (*cursor[T], bool) {
	return it.core(), false
}

// ItemRef returns a pointer to the slot the iterator points to.
func (it *Iterator[T]) ItemRef() (*T, error) {
	return it.core().itemRef()
}

// SetItem replaces the item the iterator points to.
func (it *Iterator[T]) SetItem(v T) error {
	p, err := it.core().itemRef()
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Clone returns an independent copy of the iterator. The copy is not tracked.
func (it *Iterator[T]) Clone() *Iterator[T] {
	return &Iterator[T]{it.core().clone()}
}

// Plus returns a copy of the iterator, advanced by n.
func (it *Iterator[T]) Plus(n int) (*Iterator[T], error) {
	cl := it.Clone()
	if err := cl.Advance(n); err != nil {
		return nil, err
	}
	return cl, nil
}

// Minus returns a copy of the iterator, moved back by n.
func (it *Iterator[T]) Minus(n int) (*Iterator[T], error) {
	cl := it.Clone()
	if err := cl.Regress(n); err != nil {
		return nil, err
	}
	return cl, nil
}

// SetTo copies owner and position from o. Registrations of the receiver with
// its previous owner are not carried over.
func (it *Iterator[T]) SetTo(o *Iterator[T]) error {
	if it == nil {
		return fmt.Errorf("%w: SetTo on nil iterator", ErrIllegalArguments)
	}
	oc := o.core()
	if _, err := oc.array(); err != nil {
		return err
	}
	if it.cursor == nil {
		it.cursor = oc.clone()
		return nil
	}
	*it.cursor = *oc
	return nil
}

// Const returns a read-only iterator bound to the same array at the same
// position. The owner is validated before the conversion.
func (it *Iterator[T]) Const() (*ConstIterator[T], error) {
	c, err := it.core().rebuild()
	if err != nil {
		return nil, fmt.Errorf("conversion to read-only iterator: %w", err)
	}
	return &ConstIterator[T]{c}, nil
}

// ConstIterator is a read-only position-tracking iterator over an Array.
// It offers the navigation and comparison operations of Iterator, but no way
// to modify items.
type ConstIterator[T any] struct {
	*cursor[T]
}

func (it *ConstIterator[T]) core() *cursor[T] {
	if it == nil {
		return nil
	}
	return it.cursor
}

func (it *ConstIterator[T]) forward() *cursor[T] {
	return it.core()
}

func (it *ConstIterator[T]) tracked() (*cursor[T], bool) {
	return it.core(), false
}

// Clone returns an independent copy of the iterator. The copy is not tracked.
func (it *ConstIterator[T]) Clone() *ConstIterator[T] {
	return &ConstIterator[T]{it.core().clone()}
}

// Plus returns a copy of the iterator, advanced by n.
func (it *ConstIterator[T]) Plus(n int) (*ConstIterator[T], error) {
	cl := it.Clone()
	if err := cl.Advance(n); err != nil {
		return nil, err
	}
	return cl, nil
}

// Minus returns a copy of the iterator, moved back by n.
func (it *ConstIterator[T]) Minus(n int) (*ConstIterator[T], error) {
	cl := it.Clone()
	if err := cl.Regress(n); err != nil {
		return nil, err
	}
	return cl, nil
}

// SetTo copies owner and position from o, which may be a mutable or a
// read-only iterator.
func (it *ConstIterator[T]) SetTo(o Forward[T]) error {
	if it == nil {
		return fmt.Errorf("%w: SetTo on nil iterator", ErrIllegalArguments)
	}
	oc := forwardOf(o)
	if _, err := oc.array(); err != nil {
		return err
	}
	if it.cursor == nil {
		it.cursor = oc.clone()
		return nil
	}
	*it.cursor = *oc
	return nil
}
