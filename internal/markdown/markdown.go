// Package markdown extracts page structure (headings and their anchors) from
// Markdown bodies using goldmark.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Heading is an ATX or setext heading found in a page.
type Heading struct {
	Level int
	Text  string
	ID    string // auto-generated anchor id
}

var md = goldmark.New(goldmark.WithParserOptions(parser.WithAutoHeadingID()))

// Headings returns the headings of body in document order.
func Headings(body []byte) []Heading {
	root := md.Parser().Parse(text.NewReader(body))

	var out []Heading
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		h, ok := n.(*gmast.Heading)
		if !ok {
			return gmast.WalkContinue, nil
		}
		heading := Heading{Level: h.Level, Text: plainText(h, body)}
		if id, ok := h.AttributeString("id"); ok {
			if b, ok := id.([]byte); ok {
				heading.ID = string(b)
			}
		}
		out = append(out, heading)
		return gmast.WalkSkipChildren, nil
	})
	return out
}

// Title returns the text of the first level-1 heading, or "".
func Title(body []byte) string {
	for _, h := range Headings(body) {
		if h.Level == 1 {
			return h.Text
		}
	}
	return ""
}

// HasAnchor reports whether any heading of body has the given anchor id.
func HasAnchor(body []byte, id string) bool {
	for _, h := range Headings(body) {
		if h.ID == id {
			return true
		}
	}
	return false
}

func plainText(n gmast.Node, src []byte) string {
	var buf bytes.Buffer
	var visit func(gmast.Node)
	visit = func(n gmast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch t := c.(type) {
			case *gmast.Text:
				buf.Write(t.Segment.Value(src))
				if t.SoftLineBreak() {
					buf.WriteByte(' ')
				}
			case *gmast.String:
				buf.Write(t.Value)
			default:
				visit(c)
			}
		}
	}
	visit(n)
	return buf.String()
}
