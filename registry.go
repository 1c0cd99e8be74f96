package safeseq

import (
	"errors"
	"fmt"
	"weak"
)

// Trackable is implemented by every iterator flavour. Tracked iterators are
// kept consistent with structural edits of their array.
type Trackable[T any] interface {
	tracked() (*cursor[T], bool)
}

// tracker is a weak registration of an iterator core. reversed marks the base
// cursor of a reverse iterator.
type tracker[T any] struct {
	p        weak.Pointer[cursor[T]]
	reversed bool
}

// registry holds weak registrations of iterators. It never keeps an iterator
// alive; collected entries are pruned on the next walk.
type registry[T any] struct {
	entries []tracker[T]
}

func (r *registry[T]) add(c *cursor[T], reversed bool) {
	p := weak.Make(c)
	for _, e := range r.entries {
		if e.p == p {
			return
		}
	}
	r.entries = append(r.entries, tracker[T]{p: p, reversed: reversed})
}

func (r *registry[T]) remove(c *cursor[T]) bool {
	p := weak.Make(c)
	for i, e := range r.entries {
		if e.p == p {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return true
		}
	}
	return false
}

// forEach calls f for every live registration, pruning collected ones.
// Errors from f are collected, the walk is not interrupted.
func (r *registry[T]) forEach(f func(c *cursor[T], reversed bool) error) error {
	var errs []error
	live := r.entries[:0]
	for _, e := range r.entries {
		c := e.p.Value()
		if c == nil {
			continue
		}
		live = append(live, e)
		if err := f(c, e.reversed); err != nil {
			errs = append(errs, err)
		}
	}
	clear(r.entries[len(live):])
	r.entries = live
	return errors.Join(errs...)
}

func (r *registry[T]) clear() {
	r.entries = nil
}

// Track registers an iterator with a. Tracked iterators follow the items
// they denote through Swap, Reverse and Rotate, and are reset by Clear.
// The registration does not keep the iterator alive.
func (a *Array[T]) Track(it Trackable[T]) error {
	c, err := a.ownCursor(it)
	if err != nil {
		return err
	}
	_, reversed := it.tracked()
	a.trackers.add(c, reversed)
	return nil
}

// Untrack removes the registration of an iterator. Untracking an iterator
// which is not registered is a no-op.
func (a *Array[T]) Untrack(it Trackable[T]) error {
	c, err := a.ownCursor(it)
	if err != nil {
		return err
	}
	a.trackers.remove(c)
	return nil
}

// Tracked returns the number of live tracked iterators.
func (a *Array[T]) Tracked() int {
	if a == nil {
		return 0
	}
	n := 0
	_ = a.trackers.forEach(func(*cursor[T], bool) error {
		n++
		return nil
	})
	return n
}

func (a *Array[T]) ownCursor(it Trackable[T]) (*cursor[T], error) {
	if a == nil || it == nil {
		return nil, ErrNullDereference
	}
	c, _ := it.tracked()
	owner, err := c.array()
	if err != nil {
		return nil, err
	}
	if owner != a {
		return nil, fmt.Errorf("%w: iterator is bound to a different array", ErrOwnerMismatch)
	}
	return c, nil
}

// notify walks the tracked iterators still bound to a. f receives the index
// of the item an iterator denotes.
func (a *Array[T]) notify(f func(c *cursor[T], denoted int, reversed bool) error) error {
	return a.trackers.forEach(func(c *cursor[T], reversed bool) error {
		if !c.owner.Refers(a) || c.owner.IsNull() {
			return nil
		}
		return f(c, c.denotes(reversed), reversed)
	})
}
