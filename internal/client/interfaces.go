// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/bot-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// TokenService issues and renews Direct Line tokens. Each call is a single
// request; nothing is retried.
type TokenService interface {
	GenerateToken(ctx context.Context, secret string) (models.Conversation, error)
	RefreshToken(ctx context.Context, token string) (models.Conversation, error)
	ReconnectToConversation(ctx context.Context, conversationID, token string) (models.Conversation, error)
}

// Channel is a live conversation with the bot.
type Channel interface {
	// Statuses streams connection status changes, starting with Uninitialized.
	Statuses() <-chan models.ConnectionStatus
	// Activities streams every activity received on the conversation.
	Activities() <-chan models.Activity
	// Start joins the conversation. Failures are also reported as statuses.
	Start(ctx context.Context) error
	// PostActivity sends an activity and returns its service-assigned id.
	PostActivity(ctx context.Context, activity models.Activity) (string, error)
	// Reconnect reopens the conversation with a re-fetched conversation.
	Reconnect(conversation models.Conversation)
	ConversationID() string
	// End closes the conversation stream.
	End()
	// Close releases the channel.
	Close()
}

// ChannelFactory builds the channel for a freshly generated token.
type ChannelFactory func(token string) Channel

// Terminal is the console the user chats in.
type Terminal interface {
	// OnUserMessage registers a handler called with every submitted line.
	OnUserMessage(handler func(line string))
	ShowMessage(activity models.Activity)
	ShowHandoff(activity models.Activity)
	ShowInfo(text string)
	ShowError(text string)
	// PromptUser shows the input prompt.
	PromptUser()
	// JumpLine prints an empty line.
	JumpLine()
	// Close stops input capture and makes Run return.
	Close()
	// Run blocks until the terminal is closed.
	Run() error
}
