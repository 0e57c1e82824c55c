package markup

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
	"go.uber.org/zap"
)

// The tree builder consumes the raw token stream and keeps a stack of open
// elements. Tokenization itself is left entirely to the lexer - we only
// enforce nesting and decide what survives into the tree.

// ParseFile reads the markup file and builds its element tree.
func ParseFile(path string, log *zap.Logger) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read markup file: %w", err)
	}
	return Parse(data, log)
}

// Parse builds the element tree from markup text.
//
// Recovery policy: input without a usable root element produces the "error"
// placeholder node instead of an error, structural problems (unmatched or
// unclosed tags) fail the whole parse. A node keeps a single run of text -
// when an element carries several text runs the last one wins.
func Parse(data []byte, log *zap.Logger) (*Node, error) {
	if log == nil {
		log = zap.NewNop()
	}

	input := parse.NewInputBytes(data)
	lexer := xml.NewLexer(input)

	var (
		stack   []*Node
		pending *Node
		inPI    bool
	)

	for {
		tt, raw := lexer.Next()
		switch tt {
		case xml.ErrorToken:
			if err := lexer.Err(); err != nil && err != io.EOF {
				return nil, &SyntaxError{Offset: input.Offset(), Err: err}
			}
			if n := len(stack); n > 1 {
				return nil, &UnclosedTagError{Tag: stack[n-1].Tag}
			} else if n == 0 {
				log.Warn("Markup has no root element, using placeholder")
				return errorNode(), nil
			}
			return stack[0], nil

		case xml.StartTagToken:
			pending = &Node{Tag: string(lexer.Text())}

		case xml.StartTagPIToken:
			inPI = true

		case xml.AttributeToken:
			if inPI || pending == nil {
				continue
			}
			pending.Attrs = append(pending.Attrs, Attr{
				Key:   string(lexer.Text()),
				Value: html.UnescapeString(unquote(string(lexer.AttrVal()))),
			})

		case xml.StartTagCloseToken:
			if pending == nil {
				continue
			}
			stack = append(stack, pending)
			pending = nil

		case xml.StartTagCloseVoidToken:
			if pending == nil {
				continue
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, pending)
			} else {
				// a self-closed element is a complete root - later
				// siblings nest under it like any post-root content
				stack = append(stack, pending)
			}
			pending = nil

		case xml.StartTagClosePIToken:
			inPI = false

		case xml.EndTagToken:
			name := string(lexer.Text())
			if len(stack) == 0 {
				return nil, &TagMismatchError{Close: name}
			}
			top := stack[len(stack)-1]
			if top.Tag != name {
				return nil, &TagMismatchError{Open: top.Tag, Close: name}
			}
			if len(stack) == 1 {
				// root element - there is no parent to append to
				continue
			}
			stack = stack[:len(stack)-1]
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, top)

		case xml.TextToken, xml.CDATAToken:
			text := raw
			if tt == xml.CDATAToken {
				text = cdataContent(raw)
			}
			value := strings.TrimSpace(html.UnescapeString(string(text)))
			if len(value) == 0 || len(stack) == 0 {
				continue
			}
			stack[len(stack)-1].Text = value
		}
	}
}

// unquote removes surrounding quotes from an attribute value.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}

// cdataContent strips the <![CDATA[ ... ]]> wrapper.
func cdataContent(raw []byte) []byte {
	const prefix, suffix = "<![CDATA[", "]]>"
	if len(raw) >= len(prefix)+len(suffix) {
		return raw[len(prefix) : len(raw)-len(suffix)]
	}
	return raw
}
