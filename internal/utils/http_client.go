package utils

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL (trailing slashes are
// trimmed) with the given per-request timeout. Every request asks for JSON.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}

// Bearer starts a request bound to ctx and authorized with
// "Authorization: Bearer <secretOrToken>". The header is sent even when the
// credential is empty.
func (c *HTTPClient) Bearer(ctx context.Context, secretOrToken string) *resty.Request {
	return c.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+secretOrToken)
}
