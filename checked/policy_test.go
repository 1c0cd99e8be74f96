package checked

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUseBeforeSetDebug(t *testing.T) {
	prev := SetUseBeforeSetChecks(true)
	defer SetUseBeforeSetChecks(prev)
	//
	var i Int
	_, err := i.Int64()
	assert.ErrorIs(t, err, ErrUseBeforeSet)
	_, err = i.Add(NewInt(1))
	assert.ErrorIs(t, err, ErrUseBeforeSet)
	_, err = NewInt(1).Add(i)
	assert.ErrorIs(t, err, ErrUseBeforeSet, "operand must be checked, too")

	var s Size
	_, err = s.Uint64()
	assert.ErrorIs(t, err, ErrUseBeforeSet)
	_, err = NewSize(1).Cmp(s)
	assert.ErrorIs(t, err, ErrUseBeforeSet)

	var b Bool
	_, err = b.Value()
	assert.ErrorIs(t, err, ErrUseBeforeSet)
	assert.Equal(t, "<unset>", b.String())

	i.Set(0)
	v, err := i.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)
}

func TestUseBeforeSetRelease(t *testing.T) {
	prev := SetUseBeforeSetChecks(false)
	defer SetUseBeforeSetChecks(prev)
	//
	var i Int
	v, err := i.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)

	var s Size
	r, err := s.Add(NewSize(2))
	require.NoError(t, err)
	assert.True(t, r.IsSet(), "results of operations are always set")

	sh, err := s.Shl(3)
	require.NoError(t, err)
	assert.True(t, sh.IsSet(), "shifting an unset zero yields a set result")
	ish, err := i.Shl(3)
	require.NoError(t, err)
	assert.True(t, ish.IsSet(), "shifting an unset zero yields a set result")

	var b Bool
	bv, err := b.Value()
	require.NoError(t, err)
	assert.False(t, bv)
}

func TestBoolOps(t *testing.T) {
	tr, fa := NewBool(true), NewBool(false)
	r, err := tr.And(fa)
	require.NoError(t, err)
	assert.Equal(t, "false", r.String())
	r, err = tr.Or(fa)
	require.NoError(t, err)
	assert.Equal(t, "true", r.String())
	r, err = tr.Xor(tr)
	require.NoError(t, err)
	assert.Equal(t, "false", r.String())
	r, err = fa.Not()
	require.NoError(t, err)
	v, _ := r.Value()
	assert.True(t, v)
}
