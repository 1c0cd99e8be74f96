package checked

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
)

// Int is a signed integer scalar with default zero-initialization,
// use-before-set detection and overflow-checked arithmetic.
//
// The zero value reads as 0 and is unset.
type Int struct {
	v   int64
	set bool
}

// NewInt creates a set Int with value x.
func NewInt(x int64) Int {
	return Int{v: x, set: true}
}

// IntFrom creates an Int from any native integer, checking that x fits.
func IntFrom[S Integer](x S) (Int, error) {
	v, err := Convert[int64](x)
	if err != nil {
		return Int{}, err
	}
	return NewInt(v), nil
}

// AssignInt assigns a native integer to dst, checking that x fits.
// dst is left untouched if the check fails.
func AssignInt[S Integer](dst *Int, x S) error {
	i, err := IntFrom(x)
	if err != nil {
		return err
	}
	*dst = i
	return nil
}

// NarrowInt converts i to native integer type D. This is the only way to get
// at a narrower representation, and it is range checked.
func NarrowInt[D Integer](i Int) (D, error) {
	v, err := i.Int64()
	if err != nil {
		return 0, err
	}
	return Convert[D](v)
}

// Set assigns x.
func (i *Int) Set(x int64) {
	i.v = x
	i.set = true
}

// IsSet reports whether a value has been assigned.
func (i Int) IsSet() bool {
	return i.set
}

// Int64 returns the native value.
func (i Int) Int64() (int64, error) {
	if err := requireSet(i.set, "Int read"); err != nil {
		return 0, err
	}
	return i.v, nil
}

// AsSize converts i to the unsigned family. Negative values are out of range.
func (i Int) AsSize() (Size, error) {
	if err := requireSet(i.set, "Int.AsSize"); err != nil {
		return Size{}, err
	}
	if i.v < 0 {
		return Size{}, rangeError(i.v, "negative value for unsigned target type")
	}
	return NewSize(uint64(i.v)), nil
}

func (i Int) String() string {
	if !i.set {
		return "<unset>"
	}
	return strconv.FormatInt(i.v, 10)
}

// --- Arithmetic ------------------------------------------------------------

// Add returns i+o.
func (i Int) Add(o Int) (Int, error) {
	if err := requireBoth(i.set, o.set, "Int.Add"); err != nil {
		return Int{}, err
	}
	r, ok := addInt64(i.v, o.v)
	if !ok {
		return Int{}, overflow("+", i.v, o.v)
	}
	return NewInt(r), nil
}

// Sub returns i-o.
func (i Int) Sub(o Int) (Int, error) {
	if err := requireBoth(i.set, o.set, "Int.Sub"); err != nil {
		return Int{}, err
	}
	r, ok := subInt64(i.v, o.v)
	if !ok {
		return Int{}, overflow("-", i.v, o.v)
	}
	return NewInt(r), nil
}

// Mul returns i*o.
func (i Int) Mul(o Int) (Int, error) {
	if err := requireBoth(i.set, o.set, "Int.Mul"); err != nil {
		return Int{}, err
	}
	r, ok := mulInt64(i.v, o.v)
	if !ok {
		return Int{}, overflow("*", i.v, o.v)
	}
	return NewInt(r), nil
}

// Div returns i/o, truncated towards zero.
func (i Int) Div(o Int) (Int, error) {
	if err := requireBoth(i.set, o.set, "Int.Div"); err != nil {
		return Int{}, err
	}
	if o.v == 0 {
		return Int{}, fmt.Errorf("%w: division by zero", ErrArithmeticRange)
	}
	if i.v == math.MinInt64 && o.v == -1 {
		return Int{}, overflow("/", i.v, o.v)
	}
	return NewInt(i.v / o.v), nil
}

// Mod returns the remainder of i/o.
func (i Int) Mod(o Int) (Int, error) {
	if err := requireBoth(i.set, o.set, "Int.Mod"); err != nil {
		return Int{}, err
	}
	if o.v == 0 {
		return Int{}, fmt.Errorf("%w: division by zero", ErrArithmeticRange)
	}
	return NewInt(i.v % o.v), nil
}

// Neg returns -i.
func (i Int) Neg() (Int, error) {
	if err := requireSet(i.set, "Int.Neg"); err != nil {
		return Int{}, err
	}
	if i.v == math.MinInt64 {
		return Int{}, rangeError(i.v, "not negatable")
	}
	return NewInt(-i.v), nil
}

// Inc increments i in place.
func (i *Int) Inc() error {
	r, err := i.Add(NewInt(1))
	if err != nil {
		return err
	}
	*i = r
	return nil
}

// Dec decrements i in place.
func (i *Int) Dec() error {
	r, err := i.Sub(NewInt(1))
	if err != nil {
		return err
	}
	*i = r
	return nil
}

// AddSize returns i+s, computed in the signed family.
func (i Int) AddSize(s Size) (Int, error) {
	o, err := s.AsInt()
	if err != nil {
		return Int{}, err
	}
	return i.Add(o)
}

// SubSize returns i-s, computed in the signed family.
func (i Int) SubSize(s Size) (Int, error) {
	o, err := s.AsInt()
	if err != nil {
		return Int{}, err
	}
	return i.Sub(o)
}

// --- Bit operations --------------------------------------------------------

// And returns the bitwise i&o.
func (i Int) And(o Int) (Int, error) {
	if err := requireBoth(i.set, o.set, "Int.And"); err != nil {
		return Int{}, err
	}
	return NewInt(i.v & o.v), nil
}

// Or returns the bitwise i|o.
func (i Int) Or(o Int) (Int, error) {
	if err := requireBoth(i.set, o.set, "Int.Or"); err != nil {
		return Int{}, err
	}
	return NewInt(i.v | o.v), nil
}

// Xor returns the bitwise i^o.
func (i Int) Xor(o Int) (Int, error) {
	if err := requireBoth(i.set, o.set, "Int.Xor"); err != nil {
		return Int{}, err
	}
	return NewInt(i.v ^ o.v), nil
}

// Not returns the bitwise complement of i.
func (i Int) Not() (Int, error) {
	if err := requireSet(i.set, "Int.Not"); err != nil {
		return Int{}, err
	}
	return NewInt(^i.v), nil
}

// Shl returns i<<n. Shifting significant bits out of range is an error.
func (i Int) Shl(n uint) (Int, error) {
	if err := requireSet(i.set, "Int.Shl"); err != nil {
		return Int{}, err
	}
	if i.v == 0 {
		return NewInt(0), nil
	}
	r := i.v << n
	if n >= 64 || r>>n != i.v {
		return Int{}, fmt.Errorf("%w: %d << %d", ErrArithmeticRange, i.v, n)
	}
	return NewInt(r), nil
}

// Shr returns i>>n (arithmetic shift).
func (i Int) Shr(n uint) (Int, error) {
	if err := requireSet(i.set, "Int.Shr"); err != nil {
		return Int{}, err
	}
	return NewInt(i.v >> n), nil
}

// --- Comparison ------------------------------------------------------------

// Cmp compares i and o and returns -1, 0 or +1.
func (i Int) Cmp(o Int) (int, error) {
	if err := requireBoth(i.set, o.set, "Int.Cmp"); err != nil {
		return 0, err
	}
	return cmp.Compare(i.v, o.v), nil
}

// CmpSize compares i with a Size without reinterpreting either.
func (i Int) CmpSize(s Size) (int, error) {
	if err := requireBoth(i.set, s.set, "Int.CmpSize"); err != nil {
		return 0, err
	}
	if i.v < 0 {
		return -1, nil
	}
	return cmp.Compare(uint64(i.v), s.v), nil
}

// Equal reports whether i == o.
func (i Int) Equal(o Int) (bool, error) {
	c, err := i.Cmp(o)
	return c == 0, err
}

// Less reports whether i < o.
func (i Int) Less(o Int) (bool, error) {
	c, err := i.Cmp(o)
	return c < 0, err
}

// --- Helpers ---------------------------------------------------------------

func addInt64(a, b int64) (int64, bool) {
	switch {
	case b > 0 && a > math.MaxInt64-b:
		return 0, false
	case b < 0 && a < math.MinInt64-b:
		return 0, false
	default:
		return a + b, true
	}
}

func subInt64(a, b int64) (int64, bool) {
	switch {
	case b < 0 && a > math.MaxInt64+b:
		return 0, false
	case b > 0 && a < math.MinInt64+b:
		return 0, false
	default:
		return a - b, true
	}
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	switch {
	case a > 0 && b > 0:
		if a > math.MaxInt64/b {
			return 0, false
		}
	case a < 0 && b < 0:
		if a < math.MaxInt64/b {
			return 0, false
		}
	case a > 0 && b < 0:
		if b < math.MinInt64/a {
			return 0, false
		}
	case a < 0 && b > 0:
		if a < math.MinInt64/b {
			return 0, false
		}
	}
	return a * b, true
}

func overflow[T Integer](op string, a, b T) error {
	tracer().Debugf("arithmetic overflow for %d %s %d", a, op, b)
	return fmt.Errorf("%w: %d %s %d", ErrArithmeticRange, a, op, b)
}
