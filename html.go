package markdown

import "strings"

// RenderHTML renders nodes to HTML. Text is written verbatim, without
// escaping.
func RenderHTML(nodes []Node) string {
	var b strings.Builder
	writeNodes(&b, nodes)
	return b.String()
}

func writeNodes(b *strings.Builder, nodes []Node) {
	for i := 0; i < len(nodes); i++ {
		if nodes[i].Kind == NodeListItem {
			i += writeList(b, nodes[i:]) - 1
			continue
		}
		writeNode(b, nodes[i])
	}
}

// writeList wraps the run of list items at the head of nodes in a single
// <ul> and returns the length of the run.
func writeList(b *strings.Builder, nodes []Node) int {
	n := 0
	for n < len(nodes) && nodes[n].Kind == NodeListItem {
		n++
	}
	b.WriteString("<ul>")
	for _, item := range nodes[:n] {
		writeNode(b, item)
	}
	b.WriteString("</ul>")
	return n
}

func writeNode(b *strings.Builder, n Node) {
	switch n.Kind {
	case NodeHeading:
		tag := headingLevel(int(n.Level)).String()
		writeElement(b, tag, n.Text)
	case NodeBlockQuote:
		writeElement(b, "blockquote", n.Text)
	case NodeListItem:
		writeElement(b, "li", n.Text)
	case NodeBold:
		writeElement(b, "b", n.Text)
	case NodeItalic:
		writeElement(b, "i", n.Text)
	case NodeNoteReference:
		b.WriteString("<sup id='ref-")
		b.WriteString(n.Label)
		b.WriteString("'><a href='#note-")
		b.WriteString(n.Label)
		b.WriteString("'>[")
		b.WriteString(n.Label)
		b.WriteString("]</a></sup>")
	case NodeNoteDefinition:
		b.WriteString("<p id='note-")
		b.WriteString(n.Label)
		b.WriteString("'><sup>")
		b.WriteString(n.Label)
		b.WriteString("</sup>: ")
		b.WriteString(n.Text)
		b.WriteString(" <a href='#ref-")
		b.WriteString(n.Label)
		b.WriteString("'>&#8617;</a></p>")
	case NodeParagraph:
		b.WriteString("<p>")
		writeNodes(b, n.Children)
		b.WriteString("</p>")
	default: // NodeText
		b.WriteString(n.Text)
	}
}

func writeElement(b *strings.Builder, tag, text string) {
	b.WriteByte('<')
	b.WriteString(tag)
	b.WriteByte('>')
	b.WriteString(text)
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}

// firstHeading returns the text of the first top-level heading of level.
func firstHeading(nodes []Node, level HeadingLevel) (string, bool) {
	for _, n := range nodes {
		if n.Kind == NodeHeading && n.Level == level {
			return n.Text, true
		}
	}
	return "", false
}
