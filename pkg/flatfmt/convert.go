// Copyright 2024-2026 Aiku AI

package flatfmt

import "strings"

// Converter converts markdown text to flat tag markup using a fixed tag
// table. The table is set at construction and never mutated afterwards, so
// a Converter is safe for concurrent use.
type Converter struct {
	tags map[NodeType]TagPair
}

// New returns a Converter using the built-in tag table.
func New() *Converter {
	return &Converter{tags: defaultTags}
}

// Convert turns markdown text into flat tag markup. The output uses only
// the converter's tag vocabulary, never nests tags, and has every literal
// &, < and > of the input escaped to its entity form. Identical inputs
// always produce identical outputs.
//
// Escaping happens at emission, after parsing: the parser decodes &amp;
// and numeric entities inside normal text, so escaping the raw input up
// front would be silently undone. Extracted leaf text is the parser's
// decoded view of the message, and escaping it here is the single point
// where the output becomes transport-safe.
func (c *Converter) Convert(text string) string {
	if text == "" {
		return ""
	}
	units := Flatten(Parse(text))
	var sb strings.Builder
	for _, unit := range units {
		pair := c.tags[unit.Kind()]
		sb.WriteString(pair.Start)
		sb.WriteString(EscapeText(ExtractText(unit)))
		sb.WriteString(pair.End)
	}
	return sb.String()
}

var defaultConverter = New()

// Convert is a package-level shorthand for converting with the built-in
// tag table.
func Convert(text string) string {
	return defaultConverter.Convert(text)
}
