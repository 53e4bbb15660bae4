// Copyright 2024-2026 Aiku AI

package flatfmt

import "strings"

// blockSeparator joins adjacent top-level blocks; two of them form the
// blank line between blocks. It carries no tag.
var blockSeparator = Leaf{Type: TypeLineBreak, Text: "\n"}

// Flatten normalizes top-level blocks into a sequence of flattened units.
// Paragraph wrappers carry no formatting of their own, so they are replaced
// by their children; every other block stays a single unit whose tag will
// cover its entire extracted text. Two separator units go between adjacent
// blocks, none before the first or after the last.
func Flatten(blocks []Node) []Node {
	units := make([]Node, 0, len(blocks))
	for i, block := range blocks {
		if i > 0 {
			units = append(units, blockSeparator, blockSeparator)
		}
		if c, ok := block.(Composite); ok && c.Type == TypeParagraph {
			units = append(units, c.Children...)
			continue
		}
		units = append(units, block)
	}
	return units
}

// ExtractText concatenates the leaf text of n's subtree in source order,
// discarding all nested type information. This is what erases inner
// formatting: by the time a unit's own tag is applied, everything below it
// is plain text. Iterative with an explicit stack so hostile nesting depth
// cannot overflow the goroutine stack.
func ExtractText(n Node) string {
	var sb strings.Builder
	stack := []Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch t := cur.(type) {
		case Leaf:
			sb.WriteString(t.Text)
		case Composite:
			for i := len(t.Children) - 1; i >= 0; i-- {
				stack = append(stack, t.Children[i])
			}
		}
	}
	return sb.String()
}
