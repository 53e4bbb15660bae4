// Copyright 2024-2026 Aiku AI

package flatfmt

// NodeType identifies what kind of markup construct a node represents. The
// vocabulary mirrors what the gomarkdown parser emits, plus TypeUnderline
// for callers that build trees directly and TypeLineBreak for line breaks
// and block separators.
type NodeType string

const (
	TypeText           NodeType = "text"
	TypeLineBreak      NodeType = "line_break"
	TypeParagraph      NodeType = "paragraph"
	TypeStrong         NodeType = "strong"
	TypeEmphasis       NodeType = "emphasis"
	TypeUnderline      NodeType = "underline"
	TypeStrikethrough  NodeType = "strikethrough"
	TypeCode           NodeType = "code"
	TypeCodeBlock      NodeType = "code_block"
	TypeHeading        NodeType = "heading"
	TypeList           NodeType = "list"
	TypeListItem       NodeType = "list_item"
	TypeBlockQuote     NodeType = "block_quote"
	TypeLink           NodeType = "link"
	TypeImage          NodeType = "image"
	TypeHorizontalRule NodeType = "horizontal_rule"
	TypeTable          NodeType = "table"
	TypeOther          NodeType = "other"
)

// Node is one unit of parsed markup: either a [Leaf] carrying literal text
// or a [Composite] carrying an ordered list of children. A parsed message
// is an ordered sequence of top-level block nodes.
type Node interface {
	Kind() NodeType
}

// Leaf is a node with literal text content and no children.
type Leaf struct {
	Type NodeType
	Text string
}

func (l Leaf) Kind() NodeType { return l.Type }

// Composite is a node whose content is an ordered sequence of child nodes.
type Composite struct {
	Type     NodeType
	Children []Node
}

func (c Composite) Kind() NodeType { return c.Type }
