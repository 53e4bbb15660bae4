// Copyright 2024-2026 Aiku AI

package flatfmt

import "strings"

// htmlEscaper rewrites in a single pass, so the entities it emits for < and
// > are never re-escaped through their own & characters.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeText replaces the transport-reserved characters &, < and > with
// their entity forms. [Converter.Convert] applies it to each flattened
// unit's extracted text on the way out, after the parser has decoded any
// entities, so the only angle brackets in the final output are the tags
// the converter itself inserts.
func EscapeText(text string) string {
	return htmlEscaper.Replace(text)
}
