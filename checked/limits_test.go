package checked

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigitsAndSignedness(t *testing.T) {
	assert.True(t, Signed[int8]())
	assert.True(t, Signed[int]())
	assert.False(t, Signed[uint8]())
	assert.False(t, Signed[uintptr]())

	assert.Equal(t, 7, Digits[int8]())
	assert.Equal(t, 8, Digits[uint8]())
	assert.Equal(t, 31, Digits[int32]())
	assert.Equal(t, 64, Digits[uint64]())
	assert.Equal(t, 63, Digits[int64]())
}

func TestRangeAnalysis(t *testing.T) {
	// same signedness, widening is always safe
	assert.False(t, CanExceedUpperBound[int64, int32]())
	assert.False(t, CanExceedLowerBound[int64, int32]())
	assert.False(t, CanExceedUpperBound[uint64, uint8]())
	// same signedness, narrowing
	assert.True(t, CanExceedUpperBound[int8, int16]())
	assert.True(t, CanExceedLowerBound[int8, int16]())
	assert.True(t, CanExceedUpperBound[uint8, uint16]())
	assert.False(t, CanExceedLowerBound[uint8, uint16]())
	// signed into unsigned: negative values always possible
	assert.True(t, CanExceedLowerBound[uint64, int8]())
	assert.False(t, CanExceedUpperBound[uint64, int64]())
	assert.True(t, CanExceedUpperBound[uint8, int16]())
	assert.False(t, CanExceedUpperBound[uint8, int8]())
	// unsigned into signed
	assert.True(t, CanExceedUpperBound[int64, uint64]())
	assert.True(t, CanExceedUpperBound[int8, uint8]())
	assert.False(t, CanExceedUpperBound[int16, uint8]())
	assert.False(t, CanExceedLowerBound[int8, uint64]())
}

func TestConvert(t *testing.T) {
	v, err := Convert[uint8](int64(255))
	require.NoError(t, err)
	assert.Equal(t, uint8(255), v)

	_, err = Convert[uint8](int64(256))
	assert.ErrorIs(t, err, ErrArithmeticRange)

	_, err = Convert[uint64](-1)
	assert.ErrorIs(t, err, ErrArithmeticRange)

	_, err = Convert[int8](int16(-129))
	assert.ErrorIs(t, err, ErrArithmeticRange)

	i8, err := Convert[int8](int16(-128))
	require.NoError(t, err)
	assert.Equal(t, int8(-128), i8)

	_, err = Convert[int64](uint64(math.MaxUint64))
	assert.ErrorIs(t, err, ErrArithmeticRange)

	i64, err := Convert[int64](uint64(math.MaxInt64))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), i64)

	u, err := Convert[uint32](uint8(200))
	require.NoError(t, err)
	assert.Equal(t, uint32(200), u)
}

type bounds struct {
	name string
	min  int64
	max  uint64
}

var (
	bInt     = bounds{"int", math.MinInt, math.MaxInt}
	bInt8    = bounds{"int8", math.MinInt8, math.MaxInt8}
	bInt16   = bounds{"int16", math.MinInt16, math.MaxInt16}
	bInt32   = bounds{"int32", math.MinInt32, math.MaxInt32}
	bInt64   = bounds{"int64", math.MinInt64, math.MaxInt64}
	bUint    = bounds{"uint", 0, math.MaxUint}
	bUint8   = bounds{"uint8", 0, math.MaxUint8}
	bUint16  = bounds{"uint16", 0, math.MaxUint16}
	bUint32  = bounds{"uint32", 0, math.MaxUint32}
	bUint64  = bounds{"uint64", 0, math.MaxUint64}
	bUintptr = bounds{"uintptr", 0, uint64(^uintptr(0))}
)

// checkPair compares the range analysis for S into D with the bounds of both
// types, and converts the extreme values of S.
func checkPair[D, S Integer](t *testing.T, d, s bounds) {
	t.Helper()
	upper, lower := s.max > d.max, s.min < d.min
	assert.Equal(t, upper, CanExceedUpperBound[D, S](), "upper bound %s into %s", s.name, d.name)
	assert.Equal(t, lower, CanExceedLowerBound[D, S](), "lower bound %s into %s", s.name, d.name)
	_, err := Convert[D](S(s.max))
	assert.Equal(t, upper, err != nil, "converting max %s into %s", s.name, d.name)
	_, err = Convert[D](S(s.min))
	assert.Equal(t, lower, err != nil, "converting min %s into %s", s.name, d.name)
}

func checkInto[S Integer](t *testing.T, s bounds) {
	t.Helper()
	checkPair[int, S](t, bInt, s)
	checkPair[int8, S](t, bInt8, s)
	checkPair[int16, S](t, bInt16, s)
	checkPair[int32, S](t, bInt32, s)
	checkPair[int64, S](t, bInt64, s)
	checkPair[uint, S](t, bUint, s)
	checkPair[uint8, S](t, bUint8, s)
	checkPair[uint16, S](t, bUint16, s)
	checkPair[uint32, S](t, bUint32, s)
	checkPair[uint64, S](t, bUint64, s)
	checkPair[uintptr, S](t, bUintptr, s)
}

func TestRangeAnalysisAllPairs(t *testing.T) {
	checkInto[int](t, bInt)
	checkInto[int8](t, bInt8)
	checkInto[int16](t, bInt16)
	checkInto[int32](t, bInt32)
	checkInto[int64](t, bInt64)
	checkInto[uint](t, bUint)
	checkInto[uint8](t, bUint8)
	checkInto[uint16](t, bUint16)
	checkInto[uint32](t, bUint32)
	checkInto[uint64](t, bUint64)
	checkInto[uintptr](t, bUintptr)
}
