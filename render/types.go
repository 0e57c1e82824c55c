// Package render lowers the parsed markup tree into construction requests
// for the host rendering layer. A request names one of a small closed set of
// renderable kinds plus the style operations to apply - actual layout and
// drawing stay with the host.
package render

import (
	"image"

	"uiml/style"
)

// Renderable kind requested from the host layer.
// ENUM(container, image, vector)
type Kind int

// Request describes a single renderable to construct. Only the fields of
// the request's kind are populated: Source and Bitmap belong to image and
// vector kinds, everything else is shared.
type Request struct {
	Kind Kind
	Tag  string
	Text string
	Ops  []style.Op

	// Source is the resolved asset path (image source or vector asset).
	Source string
	// Bitmap holds decoded pixels when asset loading is enabled.
	Bitmap image.Image

	Children []*Request
}

// Count returns the number of requests in the tree including the request
// itself.
func (r *Request) Count() int {
	if r == nil {
		return 0
	}
	total := 1
	for _, child := range r.Children {
		total += child.Count()
	}
	return total
}

// kindForTag maps an element tag to its renderable kind. Unknown tags fall
// back to the generic container.
func kindForTag(tag string) Kind {
	switch tag {
	case "img", "image":
		return KindImage
	case "svg":
		return KindVector
	default:
		return KindContainer
	}
}
