// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/MKhiriev/bot-console/internal/config"
	"github.com/MKhiriev/bot-console/internal/logger"
	"github.com/MKhiriev/bot-console/internal/utils"
	"github.com/MKhiriev/bot-console/models"
	"github.com/go-resty/resty/v2"
)

type directLineAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewDirectLineAdapter constructs the resty implementation of
// [DirectLineAdapter] against cfg.Endpoint with cfg.RequestTimeout per call.
func NewDirectLineAdapter(cfg config.ClientDirectLine, log *logger.Logger) DirectLineAdapter {
	return &directLineAdapter{
		client: utils.NewHTTPClient(cfg.Endpoint, cfg.RequestTimeout),
		logger: log.GetChildLogger("adapter"),
	}
}

// GenerateToken implements [DirectLineAdapter].
func (d *directLineAdapter) GenerateToken(ctx context.Context, secret string) (models.Conversation, error) {
	resp, err := d.client.Bearer(ctx, secret).Post("/tokens/generate")
	if err != nil {
		return models.Conversation{}, fmt.Errorf("generate token request: %w", err)
	}

	return decodeConversation(resp)
}

// RefreshToken implements [DirectLineAdapter].
func (d *directLineAdapter) RefreshToken(ctx context.Context, token string) (models.Conversation, error) {
	resp, err := d.client.Bearer(ctx, token).Post("/tokens/refresh")
	if err != nil {
		return models.Conversation{}, fmt.Errorf("refresh token request: %w", err)
	}

	return decodeConversation(resp)
}

// ReconnectToConversation implements [DirectLineAdapter].
func (d *directLineAdapter) ReconnectToConversation(ctx context.Context, conversationID, token string) (models.Conversation, error) {
	return d.ResumeConversation(ctx, conversationID, token, "")
}

// ResumeConversation implements [DirectLineAdapter].
func (d *directLineAdapter) ResumeConversation(ctx context.Context, conversationID, token, watermark string) (models.Conversation, error) {
	req := d.client.Bearer(ctx, token)
	if watermark != "" {
		req.SetQueryParam("watermark", watermark)
	}

	resp, err := req.Get("/conversations/" + url.PathEscape(conversationID))
	if err != nil {
		return models.Conversation{}, fmt.Errorf("reconnect to conversation request: %w", err)
	}

	return decodeConversation(resp)
}

// StartConversation implements [DirectLineAdapter].
func (d *directLineAdapter) StartConversation(ctx context.Context, token string) (models.Conversation, error) {
	resp, err := d.client.Bearer(ctx, token).Post("/conversations")
	if err != nil {
		return models.Conversation{}, fmt.Errorf("start conversation request: %w", err)
	}

	return decodeConversation(resp)
}

// PostActivity implements [DirectLineAdapter].
func (d *directLineAdapter) PostActivity(ctx context.Context, conversationID, token string, activity models.Activity) (models.ResourceResponse, error) {
	resp, err := d.client.Bearer(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(activity).
		Post("/conversations/" + url.PathEscape(conversationID) + "/activities")
	if err != nil {
		return models.ResourceResponse{}, fmt.Errorf("post activity request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ResourceResponse{}, err
	}

	var rr models.ResourceResponse
	if err = decodeBody(resp, &rr); err != nil {
		return models.ResourceResponse{}, fmt.Errorf("decode post activity response: %w", err)
	}

	d.logger.Debug().Str("activity_id", rr.ID).Str("type", activity.Type).Msg("activity posted")
	return rr, nil
}

// GetActivities implements [DirectLineAdapter].
func (d *directLineAdapter) GetActivities(ctx context.Context, conversationID, token, watermark string) (models.ActivitySet, error) {
	req := d.client.Bearer(ctx, token)
	if watermark != "" {
		req.SetQueryParam("watermark", watermark)
	}

	resp, err := req.Get("/conversations/" + url.PathEscape(conversationID) + "/activities")
	if err != nil {
		return models.ActivitySet{}, fmt.Errorf("get activities request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ActivitySet{}, err
	}

	var set models.ActivitySet
	if err = decodeBody(resp, &set); err != nil {
		return models.ActivitySet{}, fmt.Errorf("decode activities response: %w", err)
	}

	return set, nil
}

func decodeConversation(resp *resty.Response) (models.Conversation, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Conversation{}, err
	}

	var conv models.Conversation
	if err := decodeBody(resp, &conv); err != nil {
		return models.Conversation{}, fmt.Errorf("decode conversation response: %w", err)
	}

	return conv, nil
}

// decodeBody unmarshals a JSON body. An empty body leaves v untouched.
func decodeBody(resp *resty.Response, v any) error {
	if len(resp.Body()) == 0 {
		return nil
	}

	return json.Unmarshal(resp.Body(), v)
}
