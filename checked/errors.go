package checked

import "errors"

var (
	// ErrArithmeticRange signals a conversion, assignment or arithmetic result
	// outside the representable range of the destination type.
	ErrArithmeticRange = errors.New("checked: value out of range of target type")
	// ErrUseBeforeSet signals a read of a scalar which has never been assigned.
	ErrUseBeforeSet = errors.New("checked: use of value before it has been set")
)
