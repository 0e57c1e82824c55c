package markup

import (
	"strings"

	"github.com/beevik/etree"

	"uiml/utils/debug"
)

// Dump serializes the tree back to indented markup. It exists for the dump
// command and debug reports - output is normalized (text always rendered as
// the final child), not a byte-for-byte copy of the source file.
func (n *Node) Dump() (string, error) {
	doc := etree.NewDocument()
	if n != nil {
		appendElement(&doc.Element, n)
	}
	doc.Indent(2)
	return doc.WriteToString()
}

func appendElement(parent *etree.Element, n *Node) {
	el := parent.CreateElement(n.Tag)
	for _, attr := range n.Attrs {
		el.CreateAttr(attr.Key, attr.Value)
	}
	for _, child := range n.Children {
		appendElement(el, child)
	}
	if len(n.Text) > 0 {
		el.CreateText(n.Text)
	}
}

// Outline renders the tree as an indented text outline, one node per line.
// Handy in logs where full markup would be noise.
func (n *Node) Outline() string {
	tw := debug.NewTreeWriter()
	if n != nil {
		outlineNode(tw, 0, n)
	}
	return tw.String()
}

func outlineNode(tw *debug.TreeWriter, depth int, n *Node) {
	if len(n.Attrs) == 0 {
		tw.Line(depth, "<%s>", n.Tag)
	} else {
		parts := make([]string, 0, len(n.Attrs))
		for _, attr := range n.Attrs {
			parts = append(parts, attr.Key+"="+attr.Value)
		}
		tw.Line(depth, "<%s %s>", n.Tag, strings.Join(parts, " "))
	}
	if len(n.Text) > 0 {
		tw.TextBlock(depth+1, "text", n.Text)
	}
	for _, child := range n.Children {
		outlineNode(tw, depth+1, child)
	}
}
