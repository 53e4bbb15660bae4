// Copyright 2024-2026 Aiku AI

package flatfmt

import "testing"

func TestFlattenUnwrapsParagraph(t *testing.T) {
	t.Parallel()
	blocks := []Node{
		Composite{Type: TypeParagraph, Children: []Node{
			Leaf{Type: TypeText, Text: "hello "},
			Composite{Type: TypeStrong, Children: []Node{Leaf{Type: TypeText, Text: "there"}}},
		}},
	}
	units := Flatten(blocks)
	if len(units) != 2 {
		t.Fatalf("units: got %d, want 2", len(units))
	}
	if units[0].Kind() != TypeText || units[1].Kind() != TypeStrong {
		t.Errorf("unit kinds: got %s, %s, want text, strong", units[0].Kind(), units[1].Kind())
	}
}

func TestFlattenKeepsNonParagraphBlocks(t *testing.T) {
	t.Parallel()
	blocks := []Node{Leaf{Type: TypeCodeBlock, Text: "x := 1\n"}}
	units := Flatten(blocks)
	if len(units) != 1 {
		t.Fatalf("units: got %d, want 1", len(units))
	}
	if units[0].Kind() != TypeCodeBlock {
		t.Errorf("unit kind: got %s, want code_block", units[0].Kind())
	}
}

func TestFlattenSeparatorsBetweenBlocksOnly(t *testing.T) {
	t.Parallel()
	blocks := []Node{
		Composite{Type: TypeParagraph, Children: []Node{Leaf{Type: TypeText, Text: "A"}}},
		Composite{Type: TypeParagraph, Children: []Node{Leaf{Type: TypeText, Text: "B"}}},
		Composite{Type: TypeParagraph, Children: []Node{Leaf{Type: TypeText, Text: "C"}}},
	}
	units := Flatten(blocks)
	// A, sep, sep, B, sep, sep, C
	if len(units) != 7 {
		t.Fatalf("units: got %d, want 7", len(units))
	}
	if units[0].Kind() == TypeLineBreak || units[len(units)-1].Kind() == TypeLineBreak {
		t.Error("separator units must not lead or trail the sequence")
	}
	for _, i := range []int{1, 2, 4, 5} {
		leaf, ok := units[i].(Leaf)
		if !ok || leaf.Type != TypeLineBreak || leaf.Text != "\n" {
			t.Errorf("unit %d: got %#v, want newline separator leaf", i, units[i])
		}
	}
}

func TestFlattenEmpty(t *testing.T) {
	t.Parallel()
	if units := Flatten(nil); len(units) != 0 {
		t.Errorf("Flatten(nil): got %d units, want 0", len(units))
	}
}

func TestExtractTextLeaf(t *testing.T) {
	t.Parallel()
	if got := ExtractText(Leaf{Type: TypeText, Text: "plain"}); got != "plain" {
		t.Errorf("ExtractText: got %q, want %q", got, "plain")
	}
}

func TestExtractTextPreservesOrder(t *testing.T) {
	t.Parallel()
	n := Composite{Type: TypeStrong, Children: []Node{
		Leaf{Type: TypeText, Text: "bold "},
		Composite{Type: TypeEmphasis, Children: []Node{Leaf{Type: TypeText, Text: "word"}}},
		Leaf{Type: TypeText, Text: " more"},
	}}
	if got := ExtractText(n); got != "bold word more" {
		t.Errorf("ExtractText: got %q, want %q", got, "bold word more")
	}
}

func TestExtractTextDiscardsAllNestedTypes(t *testing.T) {
	t.Parallel()
	n := Composite{Type: TypeBlockQuote, Children: []Node{
		Composite{Type: TypeParagraph, Children: []Node{
			Composite{Type: TypeLink, Children: []Node{Leaf{Type: TypeText, Text: "text"}}},
		}},
	}}
	if got := ExtractText(n); got != "text" {
		t.Errorf("ExtractText: got %q, want %q", got, "text")
	}
}

func TestExtractTextDeepNesting(t *testing.T) {
	t.Parallel()
	n := Node(Leaf{Type: TypeText, Text: "x"})
	for i := 0; i < 100000; i++ {
		n = Composite{Type: TypeStrong, Children: []Node{n}}
	}
	if got := ExtractText(n); got != "x" {
		t.Errorf("ExtractText on deep tree: got %q, want %q", got, "x")
	}
}
