// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package directline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/bot-console/internal/adapter"
	"github.com/MKhiriev/bot-console/internal/logger"
	"github.com/MKhiriev/bot-console/internal/utils"
	"github.com/MKhiriev/bot-console/models"
	"github.com/gorilla/websocket"
)

const (
	defaultPollInterval    = time.Second
	defaultResumeAttempts  = 3
	defaultResumeDelay     = 2 * time.Second
	defaultRefreshFallback = 15 * time.Minute
	defaultRefreshRetry    = 30 * time.Second

	clientActivityIDKey = "clientActivityID"
)

// Config tunes a [Client]. Zero fields take the package defaults.
type Config struct {
	// WebSocket selects the stream socket; activities are polled otherwise.
	WebSocket bool
	// PollInterval is the delay between two GET activities calls.
	PollInterval time.Duration
	// ResumeAttempts bounds how often a lost stream is re-fetched before
	// the client gives up with FailedToConnect.
	ResumeAttempts int
	// ResumeDelay is the fixed wait before each resume attempt.
	ResumeDelay time.Duration
	// RefreshFallback is the refresh interval used when the token carries no
	// readable expiry.
	RefreshFallback time.Duration
	// RefreshRetry is the wait after a refresh failed for a reason other
	// than an expired token.
	RefreshRetry time.Duration
}

func (c Config) withDefaults() Config {
	if c.PollInterval <= 0 {
		c.PollInterval = defaultPollInterval
	}
	if c.ResumeAttempts <= 0 {
		c.ResumeAttempts = defaultResumeAttempts
	}
	if c.ResumeDelay <= 0 {
		c.ResumeDelay = defaultResumeDelay
	}
	if c.RefreshFallback <= 0 {
		c.RefreshFallback = defaultRefreshFallback
	}
	if c.RefreshRetry <= 0 {
		c.RefreshRetry = defaultRefreshRetry
	}
	return c
}

// Client is a Direct Line conversation channel.
type Client struct {
	adapter adapter.DirectLineAdapter
	dialer  *websocket.Dialer
	ids     *utils.IDGenerator
	cfg     Config
	logger  *logger.Logger

	statuses   *feed[models.ConnectionStatus]
	activities *feed[models.Activity]
	refresher  *refreshJob

	mu             sync.Mutex
	ctx            context.Context
	token          string
	conversationID string
	streamURL      string
	watermark      string

	// streamMu serializes stream restarts.
	streamMu     sync.Mutex
	streamCancel context.CancelFunc
	streamWG     sync.WaitGroup

	done      chan struct{}
	closeOnce sync.Once
}

// New constructs a Client holding token. Nothing is sent until Start is
// called; the status stream already carries Uninitialized.
func New(dl adapter.DirectLineAdapter, token string, cfg Config, log *logger.Logger) *Client {
	done := make(chan struct{})
	c := &Client{
		adapter:    dl,
		dialer:     websocket.DefaultDialer,
		ids:        utils.NewIDGenerator(),
		cfg:        cfg.withDefaults(),
		logger:     log.GetChildLogger("directline"),
		statuses:   newFeed[models.ConnectionStatus](done),
		activities: newFeed[models.Activity](done),
		ctx:        context.Background(),
		token:      token,
		done:       done,
	}
	c.refresher = newRefreshJob(c.refreshToken)
	c.statuses.push(models.Uninitialized)

	return c
}

// Statuses returns the connection status stream.
func (c *Client) Statuses() <-chan models.ConnectionStatus {
	return c.statuses.out
}

// Activities returns the stream of received activities, the client's own
// echoed posts included.
func (c *Client) Activities() <-chan models.Activity {
	return c.activities.out
}

// ConversationID returns the id of the joined conversation, empty before Start.
func (c *Client) ConversationID() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.conversationID
}

// Start joins the conversation the token is bound to and opens the stream.
// ctx bounds the lifetime of the stream and the refresh job. The client goes
// Online once the stream is up; a rejected token yields ExpiredToken, any
// other failure FailedToConnect.
func (c *Client) Start(ctx context.Context) error {
	c.mu.Lock()
	c.ctx = ctx
	token := c.token
	c.mu.Unlock()

	c.setStatus(models.Connecting)

	conv, err := c.adapter.StartConversation(ctx, token)
	if err != nil {
		if errors.Is(err, adapter.ErrForbidden) {
			c.setStatus(models.ExpiredToken)
		} else {
			c.setStatus(models.FailedToConnect)
		}
		return fmt.Errorf("start conversation: %w", err)
	}

	c.mu.Lock()
	c.conversationID = conv.ConversationID
	c.streamURL = conv.StreamURL
	if conv.Token != "" {
		c.token = conv.Token
	}
	token = c.token
	c.mu.Unlock()

	c.logger.Info().Str("conversation_id", conv.ConversationID).Msg("conversation started")

	c.restartStream()
	c.refresher.Start(ctx, c.refreshInterval(token))

	return nil
}

// PostActivity sends activity to the conversation and returns the id the
// service assigned. A clientActivityID is stamped into the channel data. A
// rejected token publishes ExpiredToken.
func (c *Client) PostActivity(ctx context.Context, activity models.Activity) (string, error) {
	c.mu.Lock()
	conversationID, token := c.conversationID, c.token
	c.mu.Unlock()

	if conversationID == "" {
		return "", ErrNotConnected
	}

	activity.ChannelData = stampClientActivityID(activity.ChannelData, c.ids.NewID())

	resp, err := c.adapter.PostActivity(ctx, conversationID, token, activity)
	if err != nil {
		if errors.Is(err, adapter.ErrForbidden) {
			c.setStatus(models.ExpiredToken)
		}
		return "", err
	}

	return resp.ID, nil
}

// Reconnect adopts the token and stream URL of a re-fetched conversation and
// reopens the stream. The client goes Online again once the stream is up.
func (c *Client) Reconnect(conversation models.Conversation) {
	select {
	case <-c.done:
		return
	default:
	}

	c.mu.Lock()
	if conversation.Token != "" {
		c.token = conversation.Token
	}
	if conversation.ConversationID != "" {
		c.conversationID = conversation.ConversationID
	}
	c.streamURL = conversation.StreamURL
	ctx, token := c.ctx, c.token
	c.mu.Unlock()

	c.logger.Info().Str("conversation_id", conversation.ConversationID).Msg("reconnecting")

	c.restartStream()
	c.refresher.Start(ctx, c.refreshInterval(token))
}

// End stops the stream and the refresh job and publishes Ended.
func (c *Client) End() {
	c.refresher.Stop()
	c.stopStream()
	c.setStatus(models.Ended)
}

// Close releases the stream, the refresh job and both feeds without a status
// change. Safe to call more than once.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.refresher.Stop()
		c.stopStream()
		close(c.done)
	})
}

func (c *Client) setStatus(status models.ConnectionStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.statuses.push(status)
	c.logger.Debug().Str("status", status.String()).Msg("connection status")
}

// publish sets status from a stream or refresh goroutine unless that
// goroutine was superseded.
func (c *Client) publish(ctx context.Context, status models.ConnectionStatus) {
	if ctx.Err() != nil {
		return
	}
	c.setStatus(status)
}

func (c *Client) deliver(set models.ActivitySet) {
	c.mu.Lock()
	if set.Watermark != "" {
		c.watermark = set.Watermark
	}
	c.mu.Unlock()

	for _, activity := range set.Activities {
		c.activities.push(activity)
	}
}

func (c *Client) refreshToken(ctx context.Context) time.Duration {
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()

	conv, err := c.adapter.RefreshToken(ctx, token)
	if err != nil {
		if ctx.Err() != nil {
			return 0
		}
		if errors.Is(err, adapter.ErrForbidden) {
			c.publish(ctx, models.ExpiredToken)
			return 0
		}
		c.logger.Warn().Err(err).Msg("token refresh failed")
		return c.cfg.RefreshRetry
	}

	c.mu.Lock()
	if conv.Token != "" {
		c.token = conv.Token
	}
	token = c.token
	c.mu.Unlock()

	c.logger.Debug().Msg("token refreshed")
	return c.refreshInterval(token)
}

func (c *Client) refreshInterval(token string) time.Duration {
	return utils.RefreshInterval(token, time.Now(), c.cfg.RefreshFallback)
}

// stampClientActivityID sets channelData.clientActivityID. Channel data that
// is not a JSON object is left untouched.
func stampClientActivityID(channelData json.RawMessage, id string) json.RawMessage {
	fields := map[string]json.RawMessage{}
	if len(channelData) > 0 && string(channelData) != "null" {
		if err := json.Unmarshal(channelData, &fields); err != nil {
			return channelData
		}
	}

	fields[clientActivityIDKey] = models.StringValue(id)
	stamped, err := json.Marshal(fields)
	if err != nil {
		return channelData
	}

	return stamped
}
