package safeseq

import (
	"fmt"

	"github.com/npillmayer/safeseq/checked"
	"github.com/npillmayer/safeseq/ref"
)

// cursor is the position-tracking core shared by all iterator flavours.
//
// index is a logical position in [0, N], with N denoting the end marker.
// native is the traversal window slots[index:] of the owner. It is kept in sync
// with index: stepping forward re-slices it, every other move re-derives it
// from the owner.
type cursor[T any] struct {
	owner  ref.Ref[Array[T]]
	index  checked.Size
	native []T
}

// Forward is implemented by forward iterators, mutable or read-only.
// Comparisons accept any Forward over the same element type.
type Forward[T any] interface {
	forward() *cursor[T]
}

func (c *cursor[T]) array() (*Array[T], error) {
	if c == nil {
		return nil, ErrNullDereference
	}
	return c.owner.Get()
}

// at returns the index as a native int. Only valid once the cursor is bound.
func (c *cursor[T]) at() int {
	return sizeToInt(c.index)
}

func (c *cursor[T]) moveToIndex(a *Array[T], idx checked.Size) {
	c.index = idx
	c.sync(a)
}

func (c *cursor[T]) sync(a *Array[T]) {
	i := c.at()
	assert(i >= 0 && i <= len(a.slots), "iterator index outside of [0, size]")
	c.native = a.slots[i:]
}

func (c *cursor[T]) assertInSync(a *Array[T]) {
	assert(len(c.native) == len(a.slots)-c.at(), "iterator traversal window out of sync")
}

func (c *cursor[T]) clone() *cursor[T] {
	if c == nil {
		return &cursor[T]{}
	}
	cc := *c
	return &cc
}

func sizeToInt(s checked.Size) int {
	i, err := checked.NarrowSize[int](s)
	assert(err == nil, "array index does not fit into int")
	return i
}

// --- State queries ---------------------------------------------------------

// PointsToAnItem is true if the iterator denotes an item, i.e. is not at the
// end marker.
func (c *cursor[T]) PointsToAnItem() bool {
	a, err := c.array()
	if err != nil {
		return false
	}
	return c.at() < len(a.slots)
}

// PointsToEndMarker is true if the iterator is positioned past the last item.
func (c *cursor[T]) PointsToEndMarker() bool {
	a, err := c.array()
	if err != nil {
		return false
	}
	return c.at() == len(a.slots)
}

// PointsToBeginning is true if the iterator is at position 0.
// For an empty array, this coincides with the end marker.
func (c *cursor[T]) PointsToBeginning() bool {
	if _, err := c.array(); err != nil {
		return false
	}
	return c.at() == 0
}

// HasNext is an alias for PointsToAnItem.
func (c *cursor[T]) HasNext() bool {
	return c.PointsToAnItem()
}

// HasPrevious is true if there is an item before the current position.
func (c *cursor[T]) HasPrevious() bool {
	if _, err := c.array(); err != nil {
		return false
	}
	return c.at() > 0
}

// Position returns the logical position of the iterator. For iterators
// without an owner, Position returns 0.
func (c *cursor[T]) Position() int {
	if c == nil || !c.index.IsSet() {
		return 0
	}
	return c.at()
}

// Index returns the logical position of the iterator as a checked size.
// The result is unset for iterators without an owner.
func (c *cursor[T]) Index() checked.Size {
	if c == nil {
		return checked.Size{}
	}
	return c.index
}

// --- Navigation ------------------------------------------------------------

// SetToBeginning moves the iterator to position 0.
func (c *cursor[T]) SetToBeginning() error {
	a, err := c.array()
	if err != nil {
		return err
	}
	c.moveToIndex(a, checked.NewSize(0))
	return nil
}

// SetToEndMarker moves the iterator past the last item.
func (c *cursor[T]) SetToEndMarker() error {
	a, err := c.array()
	if err != nil {
		return err
	}
	c.moveToIndex(a, a.size)
	return nil
}

// Reset moves the iterator to the end marker, the "empty" state of an iterator.
func (c *cursor[T]) Reset() error {
	return c.SetToEndMarker()
}

// SetToNext moves the iterator one item forward. It is an error to call
// SetToNext at the end marker.
func (c *cursor[T]) SetToNext() error {
	a, err := c.array()
	if err != nil {
		return err
	}
	if c.at() >= len(a.slots) {
		return fmt.Errorf("%w: SetToNext() at end marker", ErrInvalidIterator)
	}
	if err := c.index.Inc(); err != nil {
		return err
	}
	c.native = c.native[1:]
	return nil
}

// SetToPrevious moves the iterator one item backwards. It is an error to call
// SetToPrevious at position 0.
func (c *cursor[T]) SetToPrevious() error {
	a, err := c.array()
	if err != nil {
		return err
	}
	if c.at() == 0 {
		return fmt.Errorf("%w: SetToPrevious() at beginning", ErrInvalidIterator)
	}
	if err := c.index.Dec(); err != nil {
		return err
	}
	c.sync(a)
	return nil
}

// Advance moves the iterator n positions forward (backwards for negative n).
// The resulting position must lie within [0, N].
func (c *cursor[T]) Advance(n int) error {
	a, err := c.array()
	if err != nil {
		return err
	}
	delta, err := checked.IntFrom(n)
	if err != nil {
		return err
	}
	idx, err := c.offsetIndex(a, delta)
	if err != nil {
		return err
	}
	c.moveToIndex(a, idx)
	return nil
}

// Regress moves the iterator n positions backwards (forward for negative n).
func (c *cursor[T]) Regress(n int) error {
	a, err := c.array()
	if err != nil {
		return err
	}
	delta, err := checked.IntFrom(n)
	if err != nil {
		return err
	}
	if delta, err = delta.Neg(); err != nil {
		return fmt.Errorf("%w: %w", ErrIteratorBounds, err)
	}
	idx, err := c.offsetIndex(a, delta)
	if err != nil {
		return err
	}
	c.moveToIndex(a, idx)
	return nil
}

// offsetIndex computes index+delta in the signed family and checks the
// result against [0, N].
func (c *cursor[T]) offsetIndex(a *Array[T], delta checked.Int) (checked.Size, error) {
	pos, err := delta.AddSize(c.index)
	if err != nil {
		return checked.Size{}, fmt.Errorf("%w: %w", ErrIteratorBounds, err)
	}
	below, err := pos.Less(checked.NewInt(0))
	if err != nil {
		return checked.Size{}, err
	}
	above, err := pos.CmpSize(a.size)
	if err != nil {
		return checked.Size{}, err
	}
	if below || above > 0 {
		return checked.Size{}, fmt.Errorf("%w: position %s, size %s", ErrIteratorBounds, pos, a.size)
	}
	return pos.AsSize()
}

// --- Item access -----------------------------------------------------------

// Item returns the item the iterator points to.
func (c *cursor[T]) Item() (T, error) {
	p, err := c.itemRef()
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// PreviousItem returns the item before the current position.
func (c *cursor[T]) PreviousItem() (T, error) {
	p, err := c.previousRef()
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

func (c *cursor[T]) previousRef() (*T, error) {
	a, err := c.array()
	if err != nil {
		return nil, err
	}
	if c.at() == 0 {
		return nil, fmt.Errorf("%w: no previous item at beginning", ErrInvalidIterator)
	}
	return &a.slots[c.at()-1], nil
}

// Offset returns the item n positions away from the current one, without
// moving the iterator.
func (c *cursor[T]) Offset(n int) (T, error) {
	var zero T
	a, err := c.array()
	if err != nil {
		return zero, err
	}
	delta, err := checked.IntFrom(n)
	if err != nil {
		return zero, err
	}
	idx, err := c.offsetIndex(a, delta)
	if err != nil {
		return zero, err
	}
	i := sizeToInt(idx)
	if i == len(a.slots) {
		return zero, fmt.Errorf("%w: Offset(%d) denotes end marker", ErrInvalidIterator, n)
	}
	return a.slots[i], nil
}

func (c *cursor[T]) itemRef() (*T, error) {
	a, err := c.array()
	if err != nil {
		return nil, err
	}
	if c.at() >= len(a.slots) {
		return nil, fmt.Errorf("%w: no item at end marker", ErrInvalidIterator)
	}
	c.assertInSync(a)
	return &c.native[0], nil
}

// --- Comparison ------------------------------------------------------------

// Compare returns -1, 0 or +1 if the iterator is positioned before, at or
// after o. Both iterators must be bound to the same array.
func (c *cursor[T]) Compare(o Forward[T]) (int, error) {
	return c.compareTo(forwardOf(o))
}

// Equal is true if both iterators denote the same position of the same array.
func (c *cursor[T]) Equal(o Forward[T]) (bool, error) {
	r, err := c.Compare(o)
	return err == nil && r == 0, err
}

// Less is true if the iterator is positioned before o.
func (c *cursor[T]) Less(o Forward[T]) (bool, error) {
	r, err := c.Compare(o)
	return err == nil && r < 0, err
}

// LessEqual is true if the iterator is not positioned after o.
func (c *cursor[T]) LessEqual(o Forward[T]) (bool, error) {
	r, err := c.Compare(o)
	return err == nil && r <= 0, err
}

// Greater is true if the iterator is positioned after o.
func (c *cursor[T]) Greater(o Forward[T]) (bool, error) {
	r, err := c.Compare(o)
	return err == nil && r > 0, err
}

// GreaterEqual is true if the iterator is not positioned before o.
func (c *cursor[T]) GreaterEqual(o Forward[T]) (bool, error) {
	r, err := c.Compare(o)
	return err == nil && r >= 0, err
}

// Distance returns the number of positions from o to the iterator,
// i.e. the difference c - o.
func (c *cursor[T]) Distance(o Forward[T]) (int, error) {
	return c.distanceTo(forwardOf(o))
}

func forwardOf[T any](o Forward[T]) *cursor[T] {
	if o == nil {
		return nil
	}
	return o.forward()
}

func (c *cursor[T]) compareTo(oc *cursor[T]) (int, error) {
	if err := c.sameOwner(oc); err != nil {
		return 0, err
	}
	return c.index.Cmp(oc.index)
}

func (c *cursor[T]) distanceTo(oc *cursor[T]) (int, error) {
	if err := c.sameOwner(oc); err != nil {
		return 0, err
	}
	d, err := c.index.Diff(oc.index)
	if err != nil {
		return 0, err
	}
	return checked.NarrowInt[int](d)
}

func (c *cursor[T]) sameOwner(oc *cursor[T]) error {
	a, err := c.array()
	if err != nil {
		return err
	}
	b, err := oc.array()
	if err != nil {
		return err
	}
	if a != b {
		return fmt.Errorf("%w: cannot relate positions %d and %d", ErrOwnerMismatch,
			c.at(), oc.at())
	}
	return nil
}

// rebuild creates a fresh cursor from the owner and index of c, validating
// the owner first.
func (c *cursor[T]) rebuild() (*cursor[T], error) {
	a, err := c.array()
	if err != nil {
		return nil, err
	}
	cc := &cursor[T]{owner: c.owner}
	cc.moveToIndex(a, c.index)
	return cc, nil
}

// --- Notification hooks ----------------------------------------------------

// InvalidateInclusiveRange resets the iterator to the end marker if it is
// positioned within [first, last]. Owners call it whenever the items in this
// range are removed or otherwise invalidated.
func (c *cursor[T]) InvalidateInclusiveRange(first, last int) error {
	return c.invalidate(first, last, false)
}

// ShiftInclusiveRange moves the iterator by delta if it is positioned within
// [first, last]. The new position must lie within [0, N]. The traversal window
// is re-derived from the owner afterwards.
func (c *cursor[T]) ShiftInclusiveRange(first, last, delta int) error {
	return c.shift(first, last, delta, false)
}

// denotes returns the index of the item an iterator denotes. A reversed
// cursor is the base of a reverse iterator and denotes the item before it.
func (c *cursor[T]) denotes(reversed bool) int {
	if reversed {
		return c.at() - 1
	}
	return c.at()
}

func (c *cursor[T]) invalidate(first, last int, reversed bool) error {
	a, err := c.array()
	if err != nil {
		return err
	}
	if d := c.denotes(reversed); d < first || d > last {
		return nil
	}
	tracer().Debugf("iterator at %d invalidated by range [%d, %d]", c.at(), first, last)
	if reversed {
		c.moveToIndex(a, checked.NewSize(0))
	} else {
		c.moveToIndex(a, a.size)
	}
	return nil
}

func (c *cursor[T]) shift(first, last, delta int, reversed bool) error {
	a, err := c.array()
	if err != nil {
		return err
	}
	if d := c.denotes(reversed); d < first || d > last {
		return nil
	}
	dd, err := checked.IntFrom(delta)
	if err != nil {
		return err
	}
	idx, err := c.offsetIndex(a, dd)
	if err != nil {
		return err
	}
	tracer().Debugf("iterator at %d shifted by %d to %s", c.at(), delta, idx)
	c.moveToIndex(a, idx)
	return nil
}
