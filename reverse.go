package safeseq

import "fmt"

// rcursor adapts a cursor for reverse traversal. The cursor is the base of
// the reverse iterator: a reverse iterator denotes the item just before its
// base, and reverse position p corresponds to base position N-p.
type rcursor[T any] struct {
	base *cursor[T]
}

// Reverse is implemented by reverse iterators, mutable or read-only.
type Reverse[T any] interface {
	reverse() *cursor[T]
}

func reverseOf[T any](o Reverse[T]) *cursor[T] {
	if o == nil {
		return nil
	}
	return o.reverse()
}

// PointsToAnItem is true if the reverse iterator denotes an item.
func (r *rcursor[T]) PointsToAnItem() bool {
	return r.base.HasPrevious()
}

// PointsToEndMarker is true if the reverse iterator is positioned before the
// first item of the array.
func (r *rcursor[T]) PointsToEndMarker() bool {
	return r.base.PointsToBeginning()
}

// PointsToBeginning is true if the reverse iterator denotes the last item of
// the array (or the end marker for an empty array).
func (r *rcursor[T]) PointsToBeginning() bool {
	return r.base.PointsToEndMarker()
}

// HasNext is an alias for PointsToAnItem.
func (r *rcursor[T]) HasNext() bool {
	return r.PointsToAnItem()
}

// HasPrevious is true if reverse traversal has visited at least one item.
func (r *rcursor[T]) HasPrevious() bool {
	return r.base.PointsToAnItem()
}

// Position returns the number of reverse steps from the last item.
// For iterators without an owner, Position returns 0.
func (r *rcursor[T]) Position() int {
	a, err := r.base.array()
	if err != nil {
		return 0
	}
	return len(a.slots) - r.base.at()
}

// SetToBeginning moves the reverse iterator to the last item.
func (r *rcursor[T]) SetToBeginning() error {
	return r.base.SetToEndMarker()
}

// SetToEndMarker moves the reverse iterator before the first item.
func (r *rcursor[T]) SetToEndMarker() error {
	return r.base.SetToBeginning()
}

// Reset is an alias for SetToEndMarker.
func (r *rcursor[T]) Reset() error {
	return r.SetToEndMarker()
}

// SetToNext moves the reverse iterator towards the front of the array.
func (r *rcursor[T]) SetToNext() error {
	return r.base.SetToPrevious()
}

// SetToPrevious moves the reverse iterator towards the back of the array.
func (r *rcursor[T]) SetToPrevious() error {
	return r.base.SetToNext()
}

// Advance moves the reverse iterator n steps towards the front of the array.
func (r *rcursor[T]) Advance(n int) error {
	return r.base.Regress(n)
}

// Regress moves the reverse iterator n steps towards the back of the array.
func (r *rcursor[T]) Regress(n int) error {
	return r.base.Advance(n)
}

// Item returns the item the reverse iterator denotes.
func (r *rcursor[T]) Item() (T, error) {
	return r.base.PreviousItem()
}

// PreviousItem returns the item visited by the last reverse step.
func (r *rcursor[T]) PreviousItem() (T, error) {
	return r.base.Item()
}

// Offset returns the item n reverse steps away from the current one.
// Offset(n) landing on the position before the first item denotes the reverse
// end marker and fails with ErrInvalidIterator.
func (r *rcursor[T]) Offset(n int) (T, error) {
	if _, err := r.base.array(); err == nil && r.base.at()-1-n == -1 {
		var zero T
		return zero, fmt.Errorf("%w: Offset(%d) denotes reverse end marker", ErrInvalidIterator, n)
	}
	return r.base.Offset(-1 - n)
}

// Compare returns -1, 0 or +1 if the reverse iterator is positioned before,
// at or after o in reverse order.
func (r *rcursor[T]) Compare(o Reverse[T]) (int, error) {
	c, err := r.base.compareTo(reverseOf(o))
	return -c, err
}

// Equal is true if both reverse iterators denote the same position.
func (r *rcursor[T]) Equal(o Reverse[T]) (bool, error) {
	c, err := r.Compare(o)
	return err == nil && c == 0, err
}

// Less is true if r is positioned before o in reverse order.
func (r *rcursor[T]) Less(o Reverse[T]) (bool, error) {
	c, err := r.Compare(o)
	return err == nil && c < 0, err
}

// LessEqual is true if r is not positioned after o in reverse order.
func (r *rcursor[T]) LessEqual(o Reverse[T]) (bool, error) {
	c, err := r.Compare(o)
	return err == nil && c <= 0, err
}

// Greater is true if r is positioned after o in reverse order.
func (r *rcursor[T]) Greater(o Reverse[T]) (bool, error) {
	c, err := r.Compare(o)
	return err == nil && c > 0, err
}

// GreaterEqual is true if r is not positioned before o in reverse order.
func (r *rcursor[T]) GreaterEqual(o Reverse[T]) (bool, error) {
	c, err := r.Compare(o)
	return err == nil && c >= 0, err
}

// Distance returns the number of reverse steps from o to r.
func (r *rcursor[T]) Distance(o Reverse[T]) (int, error) {
	oc := reverseOf(o)
	if _, err := r.base.array(); err != nil {
		return 0, err
	}
	return oc.distanceTo(r.base)
}

// InvalidateInclusiveRange resets the reverse iterator to its end marker if
// the item it denotes lies within [first, last].
func (r *rcursor[T]) InvalidateInclusiveRange(first, last int) error {
	return r.base.invalidate(first, last, true)
}

// ShiftInclusiveRange moves the reverse iterator by delta array positions if
// the item it denotes lies within [first, last].
func (r *rcursor[T]) ShiftInclusiveRange(first, last, delta int) error {
	return r.base.shift(first, last, delta, true)
}

// ReverseIterator is a mutable iterator traversing an Array from back to front.
type ReverseIterator[T any] struct {
	rcursor[T]
}

func (it *ReverseIterator[T]) reverse() *cursor[T] {
	if it == nil {
		return nil
	}
	return it.base
}

func (it *ReverseIterator[T]) tracked() (*cursor[T], bool) {
	return it.reverse(), true
}

// ItemRef returns a pointer to the slot the reverse iterator denotes.
func (it *ReverseIterator[T]) ItemRef() (*T, error) {
	return it.reverse().previousRef()
}

// SetItem replaces the item the reverse iterator denotes.
func (it *ReverseIterator[T]) SetItem(v T) error {
	p, err := it.reverse().previousRef()
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Base returns a forward iterator at the base position, i.e. just after the
// item the reverse iterator denotes.
func (it *ReverseIterator[T]) Base() *Iterator[T] {
	return &Iterator[T]{it.reverse().clone()}
}

// Clone returns an independent copy of the reverse iterator.
func (it *ReverseIterator[T]) Clone() *ReverseIterator[T] {
	return &ReverseIterator[T]{rcursor[T]{it.reverse().clone()}}
}

// Plus returns a copy of the reverse iterator, advanced by n.
func (it *ReverseIterator[T]) Plus(n int) (*ReverseIterator[T], error) {
	cl := it.Clone()
	if err := cl.Advance(n); err != nil {
		return nil, err
	}
	return cl, nil
}

// Minus returns a copy of the reverse iterator, moved back by n.
func (it *ReverseIterator[T]) Minus(n int) (*ReverseIterator[T], error) {
	cl := it.Clone()
	if err := cl.Regress(n); err != nil {
		return nil, err
	}
	return cl, nil
}

// Const returns a read-only reverse iterator at the same position.
func (it *ReverseIterator[T]) Const() (*ConstReverseIterator[T], error) {
	c, err := it.reverse().rebuild()
	if err != nil {
		return nil, fmt.Errorf("conversion to read-only iterator: %w", err)
	}
	return &ConstReverseIterator[T]{rcursor[T]{c}}, nil
}

// ConstReverseIterator is a read-only iterator traversing an Array from back
// to front.
type ConstReverseIterator[T any] struct {
	rcursor[T]
}

func (it *ConstReverseIterator[T]) reverse() *cursor[T] {
	if it == nil {
		return nil
	}
	return it.base
}

func (it *ConstReverseIterator[T]) tracked() (*cursor[T], bool) {
	return it.reverse(), true
}

// Base returns a read-only forward iterator at the base position.
func (it *ConstReverseIterator[T]) Base() *ConstIterator[T] {
	return &ConstIterator[T]{it.reverse().clone()}
}

// Clone returns an independent copy of the reverse iterator.
func (it *ConstReverseIterator[T]) Clone() *ConstReverseIterator[T] {
	return &ConstReverseIterator[T]{rcursor[T]{it.reverse().clone()}}
}

// Plus returns a copy of the reverse iterator, advanced by n.
func (it *ConstReverseIterator[T]) Plus(n int) (*ConstReverseIterator[T], error) {
	cl := it.Clone()
	if err := cl.Advance(n); err != nil {
		return nil, err
	}
	return cl, nil
}

// Minus returns a copy of the reverse iterator, moved back by n.
func (it *ConstReverseIterator[T]) Minus(n int) (*ConstReverseIterator[T], error) {
	cl := it.Clone()
	if err := cl.Regress(n); err != nil {
		return nil, err
	}
	return cl, nil
}
