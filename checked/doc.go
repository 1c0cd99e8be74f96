/*
Package checked provides integer and boolean scalars which never start out
uninitialized and never overflow silently.

Native Go integers are zero-initialized, but nothing records whether a zero has
been put there on purpose. Mixing signed and unsigned widths is explicit in Go,
yet an explicit conversion such as uint64(i) for a negative i silently wraps.
The types in this package close both holes:

  - Int is a signed scalar (backed by int64),
  - Size is an unsigned, size-like scalar (backed by uint64),
  - Bool is a boolean scalar.

The zero value of each type is usable, reads as zero, and is flagged as "unset".
Reading an unset value is a use-before-set error as long as use-before-set
checks are enabled (see SetUseBeforeSetChecks). Builds using the tag
`safeseq_release` disable the checks by default.

Conversions between native integer types go through Convert, which decides
from bit widths and signedness whether a value can possibly fall outside the
destination's range, and performs a runtime check only in that case.
Arithmetic never wraps: results outside the representable range, division by
zero, and unsigned underflow are reported as ErrArithmeticRange.

Whenever a Size meets an Int, the Size is promoted to the signed family after
its magnitude has been checked to fit; no operation reinterprets bits.

# BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package checked

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'safeseq'
func tracer() tracing.Trace {
	return tracing.Select("safeseq")
}
