package render

import (
	"path/filepath"

	"go.uber.org/zap"

	"uiml/markup"
	"uiml/style"
)

// Builder lowers element nodes into render requests. Style problems and
// missing required attributes never abort the lowering - offending style
// operations are dropped and broken elements degrade to visible error
// placeholders, with every incident logged.
type Builder struct {
	resolver *style.Resolver
	loader   *Loader
	baseDir  string
	log      *zap.Logger
}

// NewBuilder creates a builder for markup rooted at baseDir. Relative image
// and vector asset paths resolve against baseDir. Loader may be nil, in
// which case assets are referenced but not decoded.
func NewBuilder(baseDir string, loader *Loader, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{
		resolver: style.NewResolver(log),
		loader:   loader,
		baseDir:  baseDir,
		log:      log.Named("render"),
	}
}

// Build lowers the whole tree in document order. It never fails: a broken
// element is replaced, subtree and all, by an error placeholder.
func (b *Builder) Build(root *markup.Node) *Request {
	if root == nil {
		return errorRequest("nothing to render")
	}
	return b.build(root)
}

func (b *Builder) build(n *markup.Node) *Request {
	res := b.resolver.Resolve(n.Attrs)
	for _, err := range res.Errors {
		b.log.Warn("Dropping style operation", zap.String("tag", n.Tag), zap.Error(err))
	}

	req := &Request{
		Kind: kindForTag(n.Tag),
		Tag:  n.Tag,
		Text: n.Text,
		Ops:  res.Ops,
	}

	switch req.Kind {
	case KindImage:
		src, ok := n.AttrValue(style.AttrSrc)
		if !ok || src == "" {
			b.log.Warn("Image element has no source, rendering placeholder", zap.String("tag", n.Tag))
			return errorRequest("img element missing src attribute")
		}
		req.Source = b.assetPath(src)
		if b.loader != nil {
			img, err := b.loader.Load(req.Source)
			if err != nil {
				b.log.Warn("Unable to load image, rendering placeholder",
					zap.String("source", req.Source), zap.Error(err))
				return errorRequest("unable to load image " + src)
			}
			req.Bitmap = img
		}
	case KindVector:
		path, ok := n.AttrValue(style.AttrPath)
		if !ok || path == "" {
			b.log.Warn("Vector element has no asset path, rendering placeholder", zap.String("tag", n.Tag))
			return errorRequest("svg element missing path attribute")
		}
		req.Source = b.assetPath(path)
		if b.loader != nil {
			img, err := b.loader.Rasterize(req.Source)
			if err != nil {
				b.log.Warn("Unable to rasterize vector asset, rendering placeholder",
					zap.String("source", req.Source), zap.Error(err))
				return errorRequest("unable to rasterize " + path)
			}
			req.Bitmap = img
		}
	}

	for _, child := range n.Children {
		req.Children = append(req.Children, b.build(child))
	}
	return req
}

func (b *Builder) assetPath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(b.baseDir, p)
}

// errorRequest is the visible stand-in for an element that cannot be
// rendered as authored.
func errorRequest(msg string) *Request {
	return &Request{Kind: KindContainer, Tag: "error", Text: msg}
}
