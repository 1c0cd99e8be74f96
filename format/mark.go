package format

import (
	"fmt"
	"strings"

	"github.com/npillmayer/safeseq"
)

// EndMarker is the cell text used for the end marker position of an array.
const EndMarker = "end"

// Mark labels a position in [0, N] of an array, usually the position of an
// iterator. Position N denotes the end marker.
type Mark struct {
	Label    string
	Position int
}

// Positioned is implemented by the forward iterators of package safeseq.
type Positioned interface {
	Position() int
}

// MarkOf creates a mark for the current position of a forward iterator.
// Reverse iterators should be marked through their base.
func MarkOf(label string, it Positioned) Mark {
	return Mark{Label: label, Position: it.Position()}
}

// cell is one slot of an array, or the end marker, prepared for output.
type cell struct {
	index  int
	text   string
	labels []string
}

func (c cell) marked() bool {
	return len(c.labels) > 0
}

func (c cell) label() string {
	return strings.Join(c.labels, ",")
}

// cellsOf returns N+1 cells for an array of size N, the last one standing for
// the end marker. Marks outside of [0, N] are an error.
func cellsOf[T any](a *safeseq.Array[T], marks []Mark) ([]cell, error) {
	if a == nil {
		return nil, safeseq.ErrNullDereference
	}
	n := a.Len()
	cells := make([]cell, n+1)
	for i, item := range a.All() {
		cells[i] = cell{index: i, text: fmt.Sprint(item)}
	}
	cells[n] = cell{index: n, text: EndMarker}
	for _, m := range marks {
		if m.Position < 0 || m.Position > n {
			return nil, fmt.Errorf("%w: mark %q at %d, size %d", safeseq.ErrIteratorBounds,
				m.Label, m.Position, n)
		}
		cells[m.Position].labels = append(cells[m.Position].labels, m.Label)
	}
	return cells, nil
}
