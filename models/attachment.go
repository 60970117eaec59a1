// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Content types of the rich cards the console knows how to render.
const (
	ContentTypeHeroCard      = "application/vnd.microsoft.card.hero"
	ContentTypeThumbnailCard = "application/vnd.microsoft.card.thumbnail"
	ContentTypeSigninCard    = "application/vnd.microsoft.card.signin"
)

// Attachment is a file or card attached to a message activity. Content is
// kept raw; card-typed attachments are decoded on demand with [Attachment.Card].
type Attachment struct {
	ContentType  string          `json:"contentType"`
	ContentURL   string          `json:"contentUrl,omitempty"`
	Content      json.RawMessage `json:"content,omitempty"`
	Name         string          `json:"name,omitempty"`
	ThumbnailURL string          `json:"thumbnailUrl,omitempty"`
}

// Card returns the attachment content decoded as a rich card. Hero, thumbnail
// and signin cards share the fields the console renders, so a single type
// covers all three.
func (a Attachment) Card() (Card, error) {
	var card Card
	if len(a.Content) == 0 {
		return card, nil
	}
	if err := json.Unmarshal(a.Content, &card); err != nil {
		return Card{}, fmt.Errorf("decode %s content: %w", a.ContentType, err)
	}

	return card, nil
}

// Card is the common shape of hero, thumbnail and signin cards.
type Card struct {
	Title    string       `json:"title,omitempty"`
	Subtitle string       `json:"subtitle,omitempty"`
	Text     string       `json:"text,omitempty"`
	Buttons  []CardAction `json:"buttons,omitempty"`
}

// CardAction is a clickable action on a card or a suggested action.
type CardAction struct {
	Type  string `json:"type"`
	Title string `json:"title,omitempty"`
	Image string `json:"image,omitempty"`

	// Value is whatever the bot put there: usually a string (imBack, openUrl),
	// sometimes an object (postBack, messageBack).
	Value json.RawMessage `json:"value,omitempty"`
}

// DisplayValue returns Value as text: a JSON string is unquoted, any other
// JSON value is returned as written.
func (c CardAction) DisplayValue() string {
	if len(c.Value) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(c.Value, &s); err == nil {
		return s
	}

	return strings.TrimSpace(string(c.Value))
}
