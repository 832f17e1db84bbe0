package markdown

import "strconv"

// Node is a structural unit of a parsed document. Only paragraphs carry
// children, and a paragraph owns them exclusively.
type Node struct {
	Kind     NodeKind
	Level    HeadingLevel
	Text     string
	Label    string
	Children []Node
}

// NodeKind tags the structure a Node represents.
type NodeKind uint8

const (
	NodeText NodeKind = iota
	NodeHeading
	NodeBlockQuote
	NodeListItem
	NodeBold
	NodeItalic
	NodeNoteDefinition
	NodeNoteReference
	NodeParagraph
)

var nodeKindNames = [...]string{
	NodeText:           "Text",
	NodeHeading:        "Heading",
	NodeBlockQuote:     "BlockQuote",
	NodeListItem:       "ListItem",
	NodeBold:           "Bold",
	NodeItalic:         "Italic",
	NodeNoteDefinition: "NoteDefinition",
	NodeNoteReference:  "NoteReference",
	NodeParagraph:      "Paragraph",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "NodeKind(" + strconv.Itoa(int(k)) + ")"
}

// Paragraph returns a paragraph node owning children.
func Paragraph(children ...Node) Node {
	return Node{Kind: NodeParagraph, Children: children}
}

// TextNode returns a plain text node.
func TextNode(text string) Node { return Node{Kind: NodeText, Text: text} }

// BoldNode returns a bold node.
func BoldNode(text string) Node { return Node{Kind: NodeBold, Text: text} }

// ItalicNode returns an italic node.
func ItalicNode(text string) Node { return Node{Kind: NodeItalic, Text: text} }

// HeadingNode returns a heading node.
func HeadingNode(level HeadingLevel, text string) Node {
	return Node{Kind: NodeHeading, Level: level, Text: text}
}

// BlockQuoteNode returns a block quote node.
func BlockQuoteNode(text string) Node { return Node{Kind: NodeBlockQuote, Text: text} }

// ListItemNode returns a list item node.
func ListItemNode(text string) Node { return Node{Kind: NodeListItem, Text: text} }

// NoteDefinitionNode returns a footnote definition node.
func NoteDefinitionNode(label, content string) Node {
	return Node{Kind: NodeNoteDefinition, Label: label, Text: content}
}

// NoteReferenceNode returns a footnote reference node.
func NoteReferenceNode(label string) Node {
	return Node{Kind: NodeNoteReference, Label: label}
}
