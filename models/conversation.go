// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Conversation is the body the Direct Line REST API returns from token
// generation, token refresh, conversation start and reconnect. Not every call
// fills every field: token refresh, for instance, leaves StreamURL empty.
type Conversation struct {
	// ConversationID is the conversation the token is bound to.
	ConversationID string `json:"conversationId"`

	// Token is the short-lived Direct Line token.
	Token string `json:"token"`

	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int `json:"expires_in,omitempty"`

	// StreamURL is the websocket URL activities are pushed on.
	StreamURL string `json:"streamUrl,omitempty"`

	ReferenceGrammarID string `json:"referenceGrammarId,omitempty"`
	ETag               string `json:"eTag,omitempty"`
}

// Session is the token/conversation pair the client holds for the lifetime of
// a conversation. It is replaced wholesale when the token is refreshed.
type Session struct {
	Token          string
	ConversationID string
}
