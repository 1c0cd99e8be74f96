/*
Package format renders arrays together with iterator positions, for debugging
and documentation.

Three renderings are available:

  - Console writes a fixed-width table of cells to a terminal, highlighting
    cells which are marked by an iterator,
  - Dot writes a Graphviz DOT graph of the slots and iterator marks,
  - HTML writes an HTML table.

Cell widths for console output are measured in terms of UAX#29 graphemes and
UAX#11 character widths, so items in East Asian scripts or with emoji line up
as well as plain Latin text does.

# BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package format

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'safeseq'
func tracer() tracing.Trace {
	return tracing.Select("safeseq")
}
