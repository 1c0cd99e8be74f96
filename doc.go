/*
Package safeseq offers a fixed-capacity sequence container with bounds-checked
access and iterators which always know where they are.

Arrays

An Array holds a fixed number N of slots. N is set at construction time and can
never change. Every indexed access checks the index against N before touching
a slot; there is no way to reach the underlying storage without such a check.

Iterators

Iterators are position-tracking cursors bound to exactly one Array, their owner.
An iterator carries a logical position in [0, N]. A position p < N denotes the
item at index p, position N denotes the end marker. Every navigation step is
validated against the owner's bounds, and reading an item is an error unless
the iterator actually points to an item.

	arr, _ := safeseq.From(4, "a", "b", "c")
	for it := arr.Begin(); it.HasNext(); it.SetToNext() {
	    item, _ := it.Item()
	    fmt.Println(item)
	}

Iterators over different owners cannot be compared or subtracted.

Owners may reorder or clear ranges of their slots. Iterators registered with
the owner (see Array.Track) are kept consistent through two notification hooks:

  - InvalidateInclusiveRange(first, last) resets an iterator positioned inside
    [first, last] to the end marker,
  - ShiftInclusiveRange(first, last, delta) moves an iterator positioned inside
    [first, last] by delta, re-deriving its traversal window from the owner.

Containers with richer structural edits can drive the same hooks.

Iterators are not safe for concurrent use, neither is the Array. The owner
reference of an iterator does not keep the Array alive, and an Array does not
keep tracked iterators alive.

Errors

All contract violations are reported immediately as errors which may be tested
with errors.Is: ErrIndexOutOfRange, ErrEmptyContainer, ErrInvalidIterator,
ErrOwnerMismatch, ErrIteratorBounds, and the re-exported ErrNullDereference,
ErrArithmeticRange and ErrUseBeforeSet from packages ref and checked.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package safeseq

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer is used from within generic code, where T names a type parameter.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
