// Copyright 2024-2026 Aiku AI

package flatfmt

import (
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

const parserExtensions = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock

// Parse runs the markdown parser over text and adapts the resulting AST
// into the local node model, returning the ordered top-level blocks. The
// parser is total: any string yields a tree, and the full text content of
// the input survives in the tree's leaves. Raw HTML in the input comes back
// as block/span leaves carrying the literal text, and the parser decodes
// &amp; and numeric entities into their characters, so leaf text must be
// treated as unescaped; [Converter.Convert] escapes it at emission.
//
// A fresh parser is constructed per call; gomarkdown parsers are single-use
// and keeping none around also keeps Parse safe for concurrent callers.
func Parse(text string) []Node {
	p := parser.NewWithExtensions(parserExtensions)
	doc := p.Parse([]byte(text))
	children := doc.GetChildren()
	blocks := make([]Node, 0, len(children))
	for _, child := range children {
		blocks = append(blocks, fromAST(child))
	}
	return blocks
}

func fromAST(n ast.Node) Node {
	switch n.(type) {
	case *ast.Softbreak, *ast.Hardbreak:
		return Leaf{Type: TypeLineBreak, Text: "\n"}
	}
	typ := nodeTypeOf(n)
	if leaf := n.AsLeaf(); leaf != nil {
		return Leaf{Type: typ, Text: string(leaf.Literal)}
	}
	kids := n.GetChildren()
	children := make([]Node, 0, len(kids))
	for _, kid := range kids {
		children = append(children, fromAST(kid))
	}
	return Composite{Type: typ, Children: children}
}

// nodeTypeOf enumerates the parser's node vocabulary. Anything the parser
// may grow in the future lands on TypeOther, which the tag table resolves
// to an empty pair, so new constructs degrade to plain text instead of
// breaking conversion.
func nodeTypeOf(n ast.Node) NodeType {
	switch n.(type) {
	case *ast.Text:
		return TypeText
	case *ast.Paragraph:
		return TypeParagraph
	case *ast.Strong:
		return TypeStrong
	case *ast.Emph:
		return TypeEmphasis
	case *ast.Del:
		return TypeStrikethrough
	case *ast.Code:
		return TypeCode
	case *ast.CodeBlock:
		return TypeCodeBlock
	case *ast.Heading:
		return TypeHeading
	case *ast.List:
		return TypeList
	case *ast.ListItem:
		return TypeListItem
	case *ast.BlockQuote:
		return TypeBlockQuote
	case *ast.Link:
		return TypeLink
	case *ast.Image:
		return TypeImage
	case *ast.HorizontalRule:
		return TypeHorizontalRule
	case *ast.Table, *ast.TableHeader, *ast.TableBody, *ast.TableRow, *ast.TableCell:
		return TypeTable
	default:
		return TypeOther
	}
}
