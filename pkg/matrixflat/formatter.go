// Copyright 2024-2026 Aiku AI

// Package matrixflat converts Matrix message events to flat tag markup.
package matrixflat

import (
	"go.mau.fi/util/variationselector"
	"maunium.net/go/mautrix/event"

	"github.com/aiku/flatmark/pkg/flatfmt"
)

// Parse converts a Matrix message event to flat tag markup. The plain-text
// body is the conversion source: Matrix clients keep the user's original
// markup there alongside any rendered FormattedBody. Emoji in the result
// are fully qualified so the transport renders them in emoji presentation.
//
// A nil conv uses the built-in tag table.
func Parse(conv *flatfmt.Converter, content *event.MessageEventContent) string {
	if content == nil || content.Body == "" {
		return ""
	}
	var out string
	if conv != nil {
		out = conv.Convert(content.Body)
	} else {
		out = flatfmt.Convert(content.Body)
	}
	return variationselector.FullyQualify(out)
}
