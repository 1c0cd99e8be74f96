package ref

import (
	"errors"
	"fmt"
)

// ErrNullDereference signals an attempt to dereference a null or retired reference.
var ErrNullDereference = errors.New("ref: attempt to dereference null reference")

// Anchor is a generation counter to be embedded into a referenced object.
// The zero value is ready to use.
type Anchor struct {
	gen uint64
}

// Retire invalidates all references tracked by this anchor.
func (a *Anchor) Retire() {
	a.gen++
	tracer().Debugf("anchor retired, now at generation %d", a.gen)
}

// Generation returns the current generation of the anchor.
func (a *Anchor) Generation() uint64 {
	return a.gen
}

// Ref is a non-owning reference to a T. The zero value is a null reference.
type Ref[T any] struct {
	target *T
	anchor *Anchor
	gen    uint64
}

// To creates an untracked reference to p. p may be nil.
func To[T any](p *T) Ref[T] {
	return Ref[T]{target: p}
}

// Tracked creates a reference to p which becomes invalid as soon as anchor a
// is retired.
func Tracked[T any](p *T, a *Anchor) Ref[T] {
	r := Ref[T]{target: p, anchor: a}
	if a != nil {
		r.gen = a.gen
	}
	return r
}

// Get dereferences r.
func (r Ref[T]) Get() (*T, error) {
	if r.target == nil {
		return nil, ErrNullDereference
	}
	if r.anchor != nil && r.anchor.gen != r.gen {
		return nil, fmt.Errorf("%w: referent has been retired (generation %d, now %d)",
			ErrNullDereference, r.gen, r.anchor.gen)
	}
	return r.target, nil
}

// IsNull reports whether r would fail to dereference.
func (r Ref[T]) IsNull() bool {
	_, err := r.Get()
	return err != nil
}

// Same reports whether r and o refer to the same object. Two null references
// are the same.
func (r Ref[T]) Same(o Ref[T]) bool {
	return r.target == o.target
}

// Refers reports whether r refers to p.
func (r Ref[T]) Refers(p *T) bool {
	return r.target == p
}
