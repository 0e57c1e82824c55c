// Package markup parses declarative UI markup into an element tree.
package markup

// Attr is a single key="value" attribute. Document order is preserved on the
// node so style resolution stays deterministic.
type Attr struct {
	Key   string
	Value string
}

// Node is one element of the parsed markup tree.
type Node struct {
	Tag      string
	Text     string
	Attrs    []Attr
	Children []*Node
}

// AttrValue returns the value of the named attribute. Keys are not required
// to be unique - the last occurrence wins.
func (n *Node) AttrValue(key string) (string, bool) {
	for i := len(n.Attrs) - 1; i >= 0; i-- {
		if n.Attrs[i].Key == key {
			return n.Attrs[i].Value, true
		}
	}
	return "", false
}

// Count returns the number of elements in the tree including the node itself.
func (n *Node) Count() int {
	if n == nil {
		return 0
	}
	total := 1
	for _, child := range n.Children {
		total += child.Count()
	}
	return total
}

// Walk calls fn for every node in document order, parents first.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// errorNode is what the builder publishes when input has no usable root - it
// keeps the reload pipeline alive through transient empty/invalid file states
// while an editor is mid-save.
func errorNode() *Node {
	return &Node{Tag: "error", Text: "error"}
}
