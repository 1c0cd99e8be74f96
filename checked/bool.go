package checked

import "strconv"

// Bool is a boolean scalar which starts out false and unset.
type Bool struct {
	v   bool
	set bool
}

// NewBool creates a set Bool with value b.
func NewBool(b bool) Bool {
	return Bool{v: b, set: true}
}

// Set assigns b.
func (b *Bool) Set(x bool) {
	b.v = x
	b.set = true
}

// IsSet reports whether a value has been assigned.
func (b Bool) IsSet() bool {
	return b.set
}

// Value returns the native value.
func (b Bool) Value() (bool, error) {
	if err := requireSet(b.set, "Bool read"); err != nil {
		return false, err
	}
	return b.v, nil
}

// And returns b && o.
func (b Bool) And(o Bool) (Bool, error) {
	if err := requireBoth(b.set, o.set, "Bool.And"); err != nil {
		return Bool{}, err
	}
	return NewBool(b.v && o.v), nil
}

// Or returns b || o.
func (b Bool) Or(o Bool) (Bool, error) {
	if err := requireBoth(b.set, o.set, "Bool.Or"); err != nil {
		return Bool{}, err
	}
	return NewBool(b.v || o.v), nil
}

// Xor returns b != o.
func (b Bool) Xor(o Bool) (Bool, error) {
	if err := requireBoth(b.set, o.set, "Bool.Xor"); err != nil {
		return Bool{}, err
	}
	return NewBool(b.v != o.v), nil
}

// Not returns !b.
func (b Bool) Not() (Bool, error) {
	if err := requireSet(b.set, "Bool.Not"); err != nil {
		return Bool{}, err
	}
	return NewBool(!b.v), nil
}

func (b Bool) String() string {
	if !b.set {
		return "<unset>"
	}
	return strconv.FormatBool(b.v)
}
