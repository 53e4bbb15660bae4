// Copyright 2024-2026 Aiku AI

// Package flatfmt converts Markdown-style chat messages into the flat tag
// markup used by transports that forbid nested formatting.
//
// The target transport understands only a fixed tag vocabulary — <b>, <i>,
// <code> and <pre> — and garbles any tag that appears inside another tag.
// flatfmt guarantees by construction that its output never nests: the parsed
// message tree is collapsed into a sequence of independent tagged text runs,
// so an emphasis run inside a bold run comes out as plain text wrapped in a
// single bold pair.
//
// The pipeline is parse → flatten → assemble-and-escape:
//
//   - [Parse] runs the gomarkdown parser and adapts its AST into the local
//     [Leaf]/[Composite] tree. Raw HTML survives as literal leaf text, and
//     entities like &amp; come back decoded.
//   - [Flatten] unwraps paragraph wrappers and joins top-level blocks with a
//     blank line.
//   - [Converter.Convert] maps each flattened unit's type to a tag pair,
//     extracts its plain text, runs it through [EscapeText], and concatenates
//     the results. Escaping at emission means the only angle brackets in the
//     final output are the tags flatfmt itself inserts.
//
// Conversion is a pure function of its input: it performs no I/O, holds no
// state between calls, and is safe for concurrent use. Node types without a
// tag mapping (headings, lists, block quotes, anything a future parser
// version may emit) degrade to their extracted plain text instead of
// failing.
package flatfmt
