// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter wraps the Direct Line 3.0 REST API.
//
// The primary abstraction is [DirectLineAdapter]. Every method issues exactly
// one HTTP request to the configured base endpoint, authenticated with an
// "Authorization: Bearer" header carrying either the channel secret or a
// token, and returns the decoded response body as is. Nothing is retried and
// nothing is validated locally: a bad secret or token is rejected by the
// service.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrForbidden] for
// an expired token).
package adapter

import (
	"context"

	"github.com/MKhiriev/bot-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/direct_line_adapter_mock.go -package=mock

// DirectLineAdapter defines the Direct Line REST calls used by the client.
type DirectLineAdapter interface {
	// GenerateToken exchanges the channel secret for a token bound to a new
	// conversation (POST tokens/generate).
	GenerateToken(ctx context.Context, secret string) (models.Conversation, error)

	// RefreshToken exchanges a still-valid token for a new one with a fresh
	// lifetime (POST tokens/refresh).
	RefreshToken(ctx context.Context, token string) (models.Conversation, error)

	// ReconnectToConversation fetches a new stream URL for an existing
	// conversation (GET conversations/{id}).
	ReconnectToConversation(ctx context.Context, conversationID, token string) (models.Conversation, error)

	// ResumeConversation is ReconnectToConversation with a watermark, so the
	// new stream starts after the last activity already received
	// (GET conversations/{id}?watermark=).
	ResumeConversation(ctx context.Context, conversationID, token, watermark string) (models.Conversation, error)

	// StartConversation opens the conversation a token is bound to and
	// returns its stream URL (POST conversations).
	StartConversation(ctx context.Context, token string) (models.Conversation, error)

	// PostActivity sends an activity to the bot
	// (POST conversations/{id}/activities).
	PostActivity(ctx context.Context, conversationID, token string, activity models.Activity) (models.ResourceResponse, error)

	// GetActivities returns the activities after watermark
	// (GET conversations/{id}/activities?watermark=).
	GetActivities(ctx context.Context, conversationID, token, watermark string) (models.ActivitySet, error)
}
