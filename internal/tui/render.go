// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/bot-console/models"
)

// renderer turns bot activities into terminal lines. It holds no state
// besides the styled bot prompt.
type renderer struct {
	botPrompt string
}

func newRenderer(botID string) renderer {
	return renderer{botPrompt: botPromptStyle.Render(botID + "> ")}
}

// message renders text, attachments and suggested actions, each only when
// present. An activity with none of them renders no line at all.
func (r renderer) message(a models.Activity) []string {
	var lines []string

	if a.Text != "" {
		lines = append(lines, r.text(a.Text))
	}
	if len(a.Attachments) > 0 {
		lines = append(lines, r.attachments(a.Attachments)...)
	}
	if a.SuggestedActions != nil && len(a.SuggestedActions.Actions) > 0 {
		lines = append(lines, r.suggestions(a.SuggestedActions.Actions))
	}

	return lines
}

func (r renderer) text(text string) string {
	return r.botPrompt + botTextStyle.Render(text)
}

func (r renderer) attachments(attachments []models.Attachment) []string {
	lines := []string{""}
	for _, attachment := range attachments {
		for _, line := range r.attachment(attachment) {
			lines = append(lines, indent+line)
		}
		lines = append(lines, "")
	}

	return lines
}

func (r renderer) attachment(attachment models.Attachment) []string {
	switch attachment.ContentType {
	case models.ContentTypeHeroCard, models.ContentTypeThumbnailCard, models.ContentTypeSigninCard:
		card, err := attachment.Card()
		if err != nil {
			return []string{errorStyle.Render(err.Error())}
		}
		return r.card(card)
	default:
		return []string{errorStyle.Render(fmt.Sprintf("Attachment of type %s is not supported", attachment.ContentType))}
	}
}

func (r renderer) card(card models.Card) []string {
	var lines []string

	if card.Title != "" {
		lines = append(lines, cardTitleStyle.Render(card.Title))
	}
	if card.Subtitle != "" {
		lines = append(lines, cardSubtitleStyle.Render(card.Subtitle))
	}
	if card.Text != "" {
		lines = append(lines, botTextStyle.Render(card.Text))
	}
	if len(card.Buttons) > 0 {
		lines = append(lines, r.buttons(card.Buttons))
	}

	return lines
}

// buttons renders "title-->value" per action on a single line.
func (r renderer) buttons(actions []models.CardAction) string {
	parts := make([]string, 0, len(actions))
	for _, action := range actions {
		parts = append(parts,
			botPromptStyle.Render(action.Title)+
				botTextStyle.Render("-->")+
				actionValueStyle.Render(action.DisplayValue()))
	}

	return strings.Join(parts, " ")
}

func (r renderer) suggestions(actions []models.CardAction) string {
	values := make([]string, 0, len(actions))
	for _, action := range actions {
		values = append(values, actionValueStyle.Render(action.DisplayValue()))
	}

	return indent + botPromptStyle.Render("Suggestions:") + " " + strings.Join(values, " ")
}

// handoff renders the raw channel data and transcript of a handoff activity.
func (r renderer) handoff(a models.Activity) []string {
	return []string{
		"Handoff data: " + rawJSON(a.ChannelData),
		"Conversation transcript: " + rawJSON(a.Transcript),
	}
}

// rawJSON prints raw compacted, or as received if it is not valid JSON.
func rawJSON(raw []byte) string {
	if len(raw) == 0 {
		return "null"
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
