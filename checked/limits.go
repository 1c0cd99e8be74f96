package checked

import (
	"fmt"
	"unsafe"
)

// Integer is the set of native Go integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Signed reports whether T is a signed integer type.
func Signed[T Integer]() bool {
	var z T
	return ^z < z
}

// Digits returns the number of value bits of T, not counting a sign bit.
func Digits[T Integer]() int {
	var z T
	bits := int(unsafe.Sizeof(z)) * 8
	if Signed[T]() {
		return bits - 1
	}
	return bits
}

// maxOf returns the largest value of T, as an unsigned magnitude.
func maxOf[T Integer]() uint64 {
	d := Digits[T]()
	if d == 64 {
		return ^uint64(0)
	}
	return uint64(1)<<uint(d) - 1
}

// minOf returns the smallest value of T.
func minOf[T Integer]() int64 {
	if !Signed[T]() {
		return 0
	}
	return -int64(maxOf[T]()) - 1
}

// CanExceedUpperBound reports whether some value of type S is larger than the
// largest value of type D.
func CanExceedUpperBound[D, S Integer]() bool {
	ss, ds := Signed[S](), Signed[D]()
	sd, dd := Digits[S](), Digits[D]()
	if ss == ds {
		return sd > dd
	}
	if ss {
		return sd > 1+dd
	}
	return 1+sd > dd
}

// CanExceedLowerBound reports whether some value of type S is smaller than the
// smallest value of type D.
func CanExceedLowerBound[D, S Integer]() bool {
	ss := Signed[S]()
	return (ss && !Signed[D]()) || (ss && Digits[S]() > Digits[D]())
}

// Convert converts x to type D.
//
// A runtime range check is performed only if the value range of S is able to
// exceed the value range of D. Out-of-range values are reported as
// ErrArithmeticRange, they are never truncated or reinterpreted.
func Convert[D, S Integer](x S) (D, error) {
	if CanExceedUpperBound[D, S]() {
		// negative values never exceed an upper bound
		if x >= 0 && uint64(x) > maxOf[D]() {
			return 0, rangeError(x, "above maximum of target type")
		}
	}
	if CanExceedLowerBound[D, S]() && x < 0 {
		if !Signed[D]() {
			return 0, rangeError(x, "negative value for unsigned target type")
		}
		if int64(x) < minOf[D]() {
			return 0, rangeError(x, "below minimum of target type")
		}
	}
	return D(x), nil
}

func rangeError[S Integer](x S, why string) error {
	tracer().Debugf("range check failed for %d: %s", x, why)
	return fmt.Errorf("%w: %d is %s", ErrArithmeticRange, x, why)
}
