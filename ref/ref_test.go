package ref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type box struct {
	anchor Anchor
	n      int
}

func TestNullReference(t *testing.T) {
	var r Ref[box]
	assert.True(t, r.IsNull())
	_, err := r.Get()
	assert.ErrorIs(t, err, ErrNullDereference)

	r = To[box](nil)
	_, err = r.Get()
	assert.ErrorIs(t, err, ErrNullDereference)
}

func TestReferenceDereference(t *testing.T) {
	b := &box{n: 7}
	r := To(b)
	p, err := r.Get()
	require.NoError(t, err)
	assert.Equal(t, 7, p.n)
	assert.True(t, r.Refers(b))
	assert.True(t, r.Same(To(b)))
	assert.False(t, r.Same(To(&box{})))
}

func TestRetiredAnchor(t *testing.T) {
	b := &box{n: 1}
	r := Tracked(b, &b.anchor)
	_, err := r.Get()
	require.NoError(t, err)

	b.anchor.Retire()
	_, err = r.Get()
	assert.ErrorIs(t, err, ErrNullDereference)
	assert.True(t, r.IsNull())

	fresh := Tracked(b, &b.anchor)
	_, err = fresh.Get()
	assert.NoError(t, err, "references taken after retirement are valid")
	assert.True(t, fresh.Same(r), "identity does not depend on generation")
}
