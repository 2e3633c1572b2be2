package narrative

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// PlainText renders Markdown as plain text. Emphasis, headings, links and code
// markers are dropped and their text kept; list items keep a "- " or "N. "
// marker; blocks are separated by a blank line.
func PlainText(markdown string) string {
	src := []byte(markdown)
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))
	return strings.TrimSpace(strings.Join(renderBlocks(doc, src), "\n\n"))
}

func renderBlocks(parent ast.Node, src []byte) []string {
	var out []string
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		if s := renderBlock(c, src); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func renderBlock(n ast.Node, src []byte) string {
	switch node := n.(type) {
	case *ast.Paragraph, *ast.TextBlock, *ast.Heading:
		return strings.TrimSpace(renderInline(n, src))
	case *ast.List:
		items := make([]string, 0, node.ChildCount())
		number := node.Start
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			marker := "- "
			if node.IsOrdered() {
				marker = fmt.Sprintf("%d. ", number)
				number++
			}
			items = append(items, marker+strings.Join(renderBlocks(c, src), " "))
		}
		return strings.Join(items, "\n")
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		var b strings.Builder
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			b.Write(seg.Value(src))
		}
		return strings.TrimRight(b.String(), "\n")
	case *ast.ThematicBreak, *ast.HTMLBlock:
		return ""
	default:
		return strings.Join(renderBlocks(n, src), "\n\n")
	}
}

func renderInline(n ast.Node, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			b.Write(node.Segment.Value(src))
			switch {
			case node.HardLineBreak():
				b.WriteByte('\n')
			case node.SoftLineBreak():
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(node.Value)
		case *ast.AutoLink:
			b.Write(node.URL(src))
		case *ast.RawHTML:
		default:
			b.WriteString(renderInline(c, src))
		}
	}
	return b.String()
}
