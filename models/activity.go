// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Activity types exchanged over the Direct Line channel.
const (
	ActivityTypeMessage            = "message"
	ActivityTypeEvent              = "event"
	ActivityTypeHandoff            = "handoff"
	ActivityTypeConversationUpdate = "conversationUpdate"
	ActivityTypeTyping             = "typing"
)

// Activity is a single Bot Framework activity as it travels over Direct Line.
//
// Only the fields the console client reads or writes are declared; anything
// else the service sends is ignored on decode. Fields carrying arbitrary JSON
// (Value, ChannelData, Transcript) are kept raw so they can be forwarded or
// dumped without interpretation.
type Activity struct {
	// Type is the activity kind (see the ActivityType* constants).
	Type string `json:"type"`

	// ID is assigned by the service; empty on outbound activities.
	ID string `json:"id,omitempty"`

	// Timestamp is the service-side creation time.
	Timestamp *time.Time `json:"timestamp,omitempty"`

	// ChannelID identifies the channel, "directline" for this client.
	ChannelID string `json:"channelId,omitempty"`

	// From is the sender. Outbound activities always carry the configured user.
	From ChannelAccount `json:"from"`

	// Conversation references the conversation the activity belongs to.
	Conversation *ConversationAccount `json:"conversation,omitempty"`

	Text       string `json:"text,omitempty"`
	TextFormat string `json:"textFormat,omitempty"`
	Locale     string `json:"locale,omitempty"`

	Attachments      []Attachment      `json:"attachments,omitempty"`
	AttachmentLayout string            `json:"attachmentLayout,omitempty"`
	SuggestedActions *SuggestedActions `json:"suggestedActions,omitempty"`

	// Name is the event name for event activities.
	Name string `json:"name,omitempty"`

	// Value is the event payload for event activities.
	Value json.RawMessage `json:"value,omitempty"`

	// ChannelData holds channel-specific data. Outbound activities get a
	// clientActivityID stamped here by the channel.
	ChannelData json.RawMessage `json:"channelData,omitempty"`

	ReplyToID string `json:"replyToId,omitempty"`

	// Transcript is set by bots on handoff activities.
	Transcript json.RawMessage `json:"transcript,omitempty"`
}

// IsFrom reports whether the activity was sent by the account with the given id.
func (a Activity) IsFrom(id string) bool {
	return a.From.ID == id
}

// ChannelAccount identifies a participant of a conversation.
type ChannelAccount struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// ConversationAccount identifies a conversation inside an activity.
type ConversationAccount struct {
	ID string `json:"id"`
}

// SuggestedActions is the quick-reply block a bot attaches to a message.
type SuggestedActions struct {
	To      []string     `json:"to,omitempty"`
	Actions []CardAction `json:"actions,omitempty"`
}

// ActivitySet is the frame the service pushes over the stream socket and
// returns from GET conversations/{id}/activities.
type ActivitySet struct {
	Activities []Activity `json:"activities"`
	Watermark  string     `json:"watermark,omitempty"`
}

// ResourceResponse is returned by the service after an activity was posted.
type ResourceResponse struct {
	ID string `json:"id"`
}

// StringValue wraps s as a JSON string suitable for Activity.Value.
func StringValue(s string) json.RawMessage {
	b, _ := json.Marshal(s)
	return b
}
