/*
Package ref provides a non-owning, nullable reference which checks for null
before every dereference.

A Ref never extends the lifetime of its target. References may be tied to an
Anchor, a generation counter owned by the target. Retiring the anchor
invalidates every reference taken before, so a stale reference fails loudly
on its next dereference instead of silently reaching an object which has
been declared dead.

# BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package ref

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'safeseq'
func tracer() tracing.Trace {
	return tracing.Select("safeseq")
}
