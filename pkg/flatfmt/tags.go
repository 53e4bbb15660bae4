// Copyright 2024-2026 Aiku AI

package flatfmt

// TagPair is the start/end tag pair emitted around a flattened unit's text.
// The zero value means "no tag".
type TagPair struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// defaultTags is the built-in node-type → tag pair table, frozen after
// package init. Underline maps to bold because the transport has no
// underline tag. Lookup through a map is total: any type without an entry
// resolves to the zero pair, which is the degradation path for headings,
// lists, block quotes and every other unstyled construct.
var defaultTags = map[NodeType]TagPair{
	TypeUnderline: {Start: "<b>", End: "</b>"},
	TypeStrong:    {Start: "<b>", End: "</b>"},
	TypeEmphasis:  {Start: "<i>", End: "</i>"},
	TypeCode:      {Start: "<code>", End: "</code>"},
	TypeCodeBlock: {Start: "<pre>", End: "</pre>"},
}

// DefaultTags returns a copy of the built-in tag table, for callers that
// want to inspect or derive from it without aliasing the frozen original.
func DefaultTags() map[NodeType]TagPair {
	tags := make(map[NodeType]TagPair, len(defaultTags))
	for typ, pair := range defaultTags {
		tags[typ] = pair
	}
	return tags
}
