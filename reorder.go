package safeseq

import (
	"fmt"
	"slices"
)

// Swap exchanges the items at indices i and j. Tracked iterators denoting
// one of them move along with their item.
func (a *Array[T]) Swap(i, j int) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	if err := a.checkIndex(j); err != nil {
		return err
	}
	if i == j {
		return nil
	}
	a.slots[i], a.slots[j] = a.slots[j], a.slots[i]
	tracer().Debugf("swapped items %d and %d", i, j)
	return a.notify(func(c *cursor[T], d int, reversed bool) error {
		switch d {
		case i:
			return c.shift(i, i, j-i, reversed)
		case j:
			return c.shift(j, j, i-j, reversed)
		}
		return nil
	})
}

// Reverse reverses the order of the items. Tracked iterators denoting an item
// move along with it.
func (a *Array[T]) Reverse() error {
	if a == nil {
		return ErrNullDereference
	}
	slices.Reverse(a.slots)
	n := len(a.slots)
	tracer().Debugf("reversed %d items", n)
	return a.notify(func(c *cursor[T], d int, reversed bool) error {
		if d < 0 || d >= n {
			return nil
		}
		return c.shift(d, d, n-1-2*d, reversed)
	})
}

// Rotate rotates the items to the left by k positions, such that the item at
// index k becomes the first one. Negative k rotates to the right. Tracked
// iterators denoting an item move along with it.
func (a *Array[T]) Rotate(k int) error {
	if a == nil {
		return ErrNullDereference
	}
	n := len(a.slots)
	if n == 0 {
		return nil
	}
	if k = k % n; k < 0 {
		k += n
	}
	if k == 0 {
		return nil
	}
	slices.Reverse(a.slots[:k])
	slices.Reverse(a.slots[k:])
	slices.Reverse(a.slots)
	tracer().Debugf("rotated %d items left by %d", n, k)
	return a.notify(func(c *cursor[T], d int, reversed bool) error {
		if d < 0 || d >= n {
			return nil
		}
		to := (d - k + n) % n
		return c.shift(d, d, to-d, reversed)
	})
}

// Fill sets every slot to v. Iterators are not affected.
func (a *Array[T]) Fill(v T) error {
	if a == nil {
		return ErrNullDereference
	}
	for i := range a.slots {
		a.slots[i] = v
	}
	return nil
}

// Clear resets the slots in [first, last] to the zero value of T. Tracked
// iterators denoting one of them are reset to their end marker.
func (a *Array[T]) Clear(first, last int) error {
	if err := a.checkIndex(first); err != nil {
		return err
	}
	if err := a.checkIndex(last); err != nil {
		return err
	}
	if first > last {
		return fmt.Errorf("%w: empty range [%d, %d]", ErrIllegalArguments, first, last)
	}
	clear(a.slots[first : last+1])
	tracer().Debugf("cleared items [%d, %d]", first, last)
	return a.notify(func(c *cursor[T], _ int, reversed bool) error {
		return c.invalidate(first, last, reversed)
	})
}

// SwapWith exchanges the contents of a and o, which must have the same size.
// Items are exchanged slot by slot: iterators and slot references stay bound
// to their own array and keep their positions, now denoting the items moved
// in from the other array.
func (a *Array[T]) SwapWith(o *Array[T]) error {
	if a == nil || o == nil {
		return ErrNullDereference
	}
	if len(a.slots) != len(o.slots) {
		return fmt.Errorf("%w: cannot swap arrays of size %d and %d", ErrIllegalArguments,
			len(a.slots), len(o.slots))
	}
	if a == o {
		return nil
	}
	for i := range a.slots {
		a.slots[i], o.slots[i] = o.slots[i], a.slots[i]
	}
	tracer().Debugf("swapped contents of two arrays of size %d", len(a.slots))
	return nil
}

// Equal reports whether a and b hold the same items in the same order.
// Arrays of different size are never equal.
func Equal[T comparable](a, b *Array[T]) (bool, error) {
	if a == nil || b == nil {
		return false, ErrNullDereference
	}
	return slices.Equal(a.slots, b.slots), nil
}
