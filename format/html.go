package format

import (
	"io"
	"strconv"

	"github.com/npillmayer/safeseq"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML writes the slots of an array as an HTML table to w. The first row
// holds the indices, the second one the items, and the third one the labels
// of marks. Marked item cells carry class "mark".
func HTML[T any](w io.Writer, a *safeseq.Array[T], marks ...Mark) error {
	cells, err := cellsOf(a, marks)
	if err != nil {
		return err
	}
	table := element(atom.Table, html.Attribute{Key: "class", Val: "safeseq"})
	indices, items, labels := element(atom.Tr), element(atom.Tr), element(atom.Tr)
	for _, c := range cells {
		indices.AppendChild(textElement(atom.Th, strconv.Itoa(c.index)))
		td := textElement(atom.Td, c.text)
		if c.marked() {
			td.Attr = append(td.Attr, html.Attribute{Key: "class", Val: "mark"})
		}
		items.AppendChild(td)
		labels.AppendChild(textElement(atom.Td, c.label()))
	}
	table.AppendChild(indices)
	table.AppendChild(items)
	table.AppendChild(labels)
	tracer().Debugf("html: table with %d cells", len(cells))
	return html.Render(w, table)
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func textElement(a atom.Atom, text string) *html.Node {
	n := element(a)
	if text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
	return n
}
