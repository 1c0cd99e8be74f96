package checked

import (
	"cmp"
	"fmt"
	"math"
	"math/bits"
	"strconv"
)

// Size is an unsigned, size-like scalar with default zero-initialization,
// use-before-set detection and checked arithmetic. Subtraction never wraps:
// a subtrahend greater than the minuend is a range error.
//
// Size does not convert implicitly to anything; use Uint64, NarrowSize or
// AsInt to get at its value.
type Size struct {
	v   uint64
	set bool
}

// NewSize creates a set Size with value x.
func NewSize(x uint64) Size {
	return Size{v: x, set: true}
}

// SizeFrom creates a Size from any native integer, checking that x fits.
// Negative values are out of range.
func SizeFrom[S Integer](x S) (Size, error) {
	v, err := Convert[uint64](x)
	if err != nil {
		return Size{}, err
	}
	return NewSize(v), nil
}

// AssignSize assigns a native integer to dst, checking that x fits.
// dst is left untouched if the check fails.
func AssignSize[S Integer](dst *Size, x S) error {
	s, err := SizeFrom(x)
	if err != nil {
		return err
	}
	*dst = s
	return nil
}

// NarrowSize converts s to native integer type D, range checked.
func NarrowSize[D Integer](s Size) (D, error) {
	v, err := s.Uint64()
	if err != nil {
		return 0, err
	}
	return Convert[D](v)
}

// Set assigns x.
func (s *Size) Set(x uint64) {
	s.v = x
	s.set = true
}

// IsSet reports whether a value has been assigned.
func (s Size) IsSet() bool {
	return s.set
}

// Uint64 returns the native value.
func (s Size) Uint64() (uint64, error) {
	if err := requireSet(s.set, "Size read"); err != nil {
		return 0, err
	}
	return s.v, nil
}

// AsInt promotes s to the signed family, checking that its magnitude fits.
func (s Size) AsInt() (Int, error) {
	if err := requireSet(s.set, "Size.AsInt"); err != nil {
		return Int{}, err
	}
	if s.v > math.MaxInt64 {
		return Int{}, rangeError(s.v, "above maximum of signed family")
	}
	return NewInt(int64(s.v)), nil
}

func (s Size) String() string {
	if !s.set {
		return "<unset>"
	}
	return strconv.FormatUint(s.v, 10)
}

// --- Arithmetic ------------------------------------------------------------

// Add returns s+o.
func (s Size) Add(o Size) (Size, error) {
	if err := requireBoth(s.set, o.set, "Size.Add"); err != nil {
		return Size{}, err
	}
	r, carry := bits.Add64(s.v, o.v, 0)
	if carry != 0 {
		return Size{}, overflow("+", s.v, o.v)
	}
	return NewSize(r), nil
}

// Sub returns s-o. It fails with ErrArithmeticRange if o > s.
// Use Diff for a signed difference.
func (s Size) Sub(o Size) (Size, error) {
	if err := requireBoth(s.set, o.set, "Size.Sub"); err != nil {
		return Size{}, err
	}
	if o.v > s.v {
		return Size{}, fmt.Errorf("%w: %d - %d underflows unsigned size", ErrArithmeticRange, s.v, o.v)
	}
	return NewSize(s.v - o.v), nil
}

// Diff returns the signed difference s-o.
func (s Size) Diff(o Size) (Int, error) {
	a, err := s.AsInt()
	if err != nil {
		return Int{}, err
	}
	b, err := o.AsInt()
	if err != nil {
		return Int{}, err
	}
	return a.Sub(b)
}

// Mul returns s*o.
func (s Size) Mul(o Size) (Size, error) {
	if err := requireBoth(s.set, o.set, "Size.Mul"); err != nil {
		return Size{}, err
	}
	hi, lo := bits.Mul64(s.v, o.v)
	if hi != 0 {
		return Size{}, overflow("*", s.v, o.v)
	}
	return NewSize(lo), nil
}

// Div returns s/o.
func (s Size) Div(o Size) (Size, error) {
	if err := requireBoth(s.set, o.set, "Size.Div"); err != nil {
		return Size{}, err
	}
	if o.v == 0 {
		return Size{}, fmt.Errorf("%w: division by zero", ErrArithmeticRange)
	}
	return NewSize(s.v / o.v), nil
}

// Mod returns the remainder of s/o.
func (s Size) Mod(o Size) (Size, error) {
	if err := requireBoth(s.set, o.set, "Size.Mod"); err != nil {
		return Size{}, err
	}
	if o.v == 0 {
		return Size{}, fmt.Errorf("%w: division by zero", ErrArithmeticRange)
	}
	return NewSize(s.v % o.v), nil
}

// Neg returns -s, which is always a signed value.
func (s Size) Neg() (Int, error) {
	i, err := s.AsInt()
	if err != nil {
		return Int{}, err
	}
	return i.Neg()
}

// Inc increments s in place.
func (s *Size) Inc() error {
	r, err := s.Add(NewSize(1))
	if err != nil {
		return err
	}
	*s = r
	return nil
}

// Dec decrements s in place. Decrementing zero is a range error.
func (s *Size) Dec() error {
	r, err := s.Sub(NewSize(1))
	if err != nil {
		return err
	}
	*s = r
	return nil
}

// AddInt returns s+i. The result is signed, as i may be negative.
func (s Size) AddInt(i Int) (Int, error) {
	a, err := s.AsInt()
	if err != nil {
		return Int{}, err
	}
	return a.Add(i)
}

// SubInt returns s-i as a signed value.
func (s Size) SubInt(i Int) (Int, error) {
	a, err := s.AsInt()
	if err != nil {
		return Int{}, err
	}
	return a.Sub(i)
}

// --- Bit operations --------------------------------------------------------

// And returns the bitwise s&o.
func (s Size) And(o Size) (Size, error) {
	if err := requireBoth(s.set, o.set, "Size.And"); err != nil {
		return Size{}, err
	}
	return NewSize(s.v & o.v), nil
}

// Or returns the bitwise s|o.
func (s Size) Or(o Size) (Size, error) {
	if err := requireBoth(s.set, o.set, "Size.Or"); err != nil {
		return Size{}, err
	}
	return NewSize(s.v | o.v), nil
}

// Xor returns the bitwise s^o.
func (s Size) Xor(o Size) (Size, error) {
	if err := requireBoth(s.set, o.set, "Size.Xor"); err != nil {
		return Size{}, err
	}
	return NewSize(s.v ^ o.v), nil
}

// Not returns the bitwise complement of s.
func (s Size) Not() (Size, error) {
	if err := requireSet(s.set, "Size.Not"); err != nil {
		return Size{}, err
	}
	return NewSize(^s.v), nil
}

// Shl returns s<<n. Shifting set bits out is an error.
func (s Size) Shl(n uint) (Size, error) {
	if err := requireSet(s.set, "Size.Shl"); err != nil {
		return Size{}, err
	}
	if s.v == 0 {
		return NewSize(0), nil
	}
	if n >= 64 || bits.LeadingZeros64(s.v) < int(n) {
		return Size{}, fmt.Errorf("%w: %d << %d", ErrArithmeticRange, s.v, n)
	}
	return NewSize(s.v << n), nil
}

// Shr returns s>>n.
func (s Size) Shr(n uint) (Size, error) {
	if err := requireSet(s.set, "Size.Shr"); err != nil {
		return Size{}, err
	}
	return NewSize(s.v >> n), nil
}

// --- Comparison ------------------------------------------------------------

// Cmp compares s and o and returns -1, 0 or +1.
func (s Size) Cmp(o Size) (int, error) {
	if err := requireBoth(s.set, o.set, "Size.Cmp"); err != nil {
		return 0, err
	}
	return cmp.Compare(s.v, o.v), nil
}

// CmpInt compares s with an Int without reinterpreting either.
func (s Size) CmpInt(i Int) (int, error) {
	c, err := i.CmpSize(s)
	return -c, err
}

// Equal reports whether s == o.
func (s Size) Equal(o Size) (bool, error) {
	c, err := s.Cmp(o)
	return c == 0, err
}

// Less reports whether s < o.
func (s Size) Less(o Size) (bool, error) {
	c, err := s.Cmp(o)
	return c < 0, err
}
