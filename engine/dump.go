package engine

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"uiml/render"
)

// DumpRequests serializes a request tree to indented XML for inspection and
// testing. Style operations render in their debug form, one semicolon
// separated list per element.
func DumpRequests(req *render.Request) (string, error) {
	doc := etree.NewDocument()
	appendRequest(&doc.Element, req)
	doc.Indent(2)
	return doc.WriteToString()
}

func appendRequest(parent *etree.Element, req *render.Request) {
	el := parent.CreateElement(req.Tag)
	el.CreateAttr("kind", req.Kind.String())

	if len(req.Ops) > 0 {
		ops := make([]string, 0, len(req.Ops))
		for _, op := range req.Ops {
			ops = append(ops, op.String())
		}
		el.CreateAttr("style", strings.Join(ops, ";"))
	}
	if len(req.Source) > 0 {
		el.CreateAttr("source", req.Source)
	}
	if req.Bitmap != nil {
		b := req.Bitmap.Bounds()
		el.CreateAttr("bitmap", strconv.Itoa(b.Dx())+"x"+strconv.Itoa(b.Dy()))
	}

	for _, child := range req.Children {
		appendRequest(el, child)
	}
	if len(req.Text) > 0 {
		el.CreateText(req.Text)
	}
}
