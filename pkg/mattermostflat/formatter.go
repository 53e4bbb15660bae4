// Copyright 2024-2026 Aiku AI

// Package mattermostflat converts Mattermost posts to flat tag markup.
package mattermostflat

import (
	"github.com/mattermost/mattermost/server/public/model"

	"github.com/aiku/flatmark/pkg/flatfmt"
)

// Parse converts a Mattermost post's message text to flat tag markup.
// Attachments, props and metadata are ignored; only the markdown message
// body is converted.
//
// A nil conv uses the built-in tag table.
func Parse(conv *flatfmt.Converter, post *model.Post) string {
	if post == nil || post.Message == "" {
		return ""
	}
	if conv != nil {
		return conv.Convert(post.Message)
	}
	return flatfmt.Convert(post.Message)
}
