package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/safeseq"
)

// Dot outputs the slots of an array and the given marks in Graphviz DOT
// format (for debugging purposes). Slots are chained left to right, the end
// marker is drawn as a circle, and every mark is a plain-text node pointing
// to its slot.
func Dot[T any](w io.Writer, a *safeseq.Array[T], marks ...Mark) error {
	cells, err := cellsOf(a, marks)
	if err != nil {
		return err
	}
	var nodelist, edgelist strings.Builder
	for i, c := range cells {
		styles := slotDotStyles(c.index == len(cells)-1, c.marked())
		if c.index == len(cells)-1 {
			fmt.Fprintf(&nodelist, "\"s%d\" [label=\"%s\"%s];\n", c.index, EndMarker, styles)
		} else {
			label := fmt.Sprintf("%d\\n“%s”", c.index, dotEscape(c.text))
			fmt.Fprintf(&nodelist, "\"s%d\" [label=\"%s\"%s];\n", c.index, label, styles)
		}
		if i > 0 {
			fmt.Fprintf(&edgelist, "\"s%d\" -> \"s%d\";\n", cells[i-1].index, c.index)
		}
	}
	for i, m := range marks {
		fmt.Fprintf(&nodelist, "\"m%d\" [label=\"%s\",shape=plaintext];\n", i, dotEscape(m.Label))
		fmt.Fprintf(&edgelist, "\"m%d\" -> \"s%d\" [style=dashed];\n", i, m.Position)
	}
	var out strings.Builder
	out.WriteString("strict digraph {\n")
	out.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	out.WriteString("\trankdir=LR;\n")
	out.WriteString(nodelist.String())
	out.WriteString(edgelist.String())
	out.WriteString("}\n")
	_, err = io.WriteString(w, out.String())
	return err
}

func slotDotStyles(isEnd bool, highlight bool) string {
	s := ",style=filled"
	if isEnd {
		s += ",color=black,shape=circle,fixedsize=true,width=.5"
	} else {
		s += ",shape=box"
	}
	if highlight {
		s += ",fillcolor=\"#FFAA66\""
	} else {
		s += ",fillcolor=\"#a3d7e4\""
	}
	return s
}

var dotReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

func dotEscape(s string) string {
	return dotReplacer.Replace(s)
}
