package notebook

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is a markdown heading found in a narrative block.
type Heading struct {
	Block int // index of the block containing the heading
	Level int
	Text  string
}

// Outline returns the headings of all narrative blocks in document order.
// Snippet blocks are skipped; a "#" there is a code comment.
func Outline(doc Document) []Heading {
	md := goldmark.New()

	var out []Heading
	for i, b := range doc.blocks {
		if b.kind != Narrative {
			continue
		}
		for _, h := range Headings(md, b.text) {
			h.Block = i
			out = append(out, h)
		}
	}
	return out
}

// Headings parses markdown src with md and returns its headings.
// Block is left zero.
func Headings(md goldmark.Markdown, src string) []Heading {
	source := []byte(src)
	root := md.Parser().Parse(text.NewReader(source))

	var out []Heading
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		out = append(out, Heading{Level: h.Level, Text: inlineText(h, source)})
		return ast.WalkSkipChildren, nil
	})
	return out
}

// inlineText concatenates the literal text under n.
func inlineText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
