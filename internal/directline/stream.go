package directline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/bot-console/internal/adapter"
	"github.com/MKhiriev/bot-console/models"
)

// restartStream stops the running stream goroutine, if any, and starts a new
// one for the current transport.
func (c *Client) restartStream() {
	c.streamMu.Lock()
	defer c.streamMu.Unlock()

	c.stopStreamLocked()

	c.mu.Lock()
	ctx, cancel := context.WithCancel(c.ctx)
	streamURL := c.streamURL
	c.mu.Unlock()

	c.streamCancel = cancel
	c.streamWG.Add(1)
	go func() {
		defer c.streamWG.Done()
		if c.cfg.WebSocket {
			c.runWebSocket(ctx, streamURL)
		} else {
			c.runPolling(ctx)
		}
	}()
}

func (c *Client) stopStream() {
	c.streamMu.Lock()
	defer c.streamMu.Unlock()

	c.stopStreamLocked()
}

func (c *Client) stopStreamLocked() {
	if c.streamCancel != nil {
		c.streamCancel()
		c.streamCancel = nil
	}
	c.streamWG.Wait()
}

// runWebSocket reads the stream socket until ctx ends. A lost socket is
// resumed from the last watermark; the attempt budget is restored by every
// successful dial.
func (c *Client) runWebSocket(ctx context.Context, streamURL string) {
	online := false
	attempts := 0

	for {
		err := c.readStream(ctx, streamURL, func() {
			attempts = 0
			if !online {
				online = true
				c.publish(ctx, models.Online)
			}
		})
		if ctx.Err() != nil {
			return
		}
		c.logger.Warn().Err(err).Int("attempt", attempts+1).Msg("stream lost")

		next, ok := c.resume(ctx, &attempts)
		if !ok {
			return
		}
		streamURL = next
	}
}

// resume re-fetches the stream URL, waiting ResumeDelay before each attempt.
// It reports false after publishing ExpiredToken or FailedToConnect, or when
// ctx ends.
func (c *Client) resume(ctx context.Context, attempts *int) (string, bool) {
	for {
		*attempts++
		if *attempts > c.cfg.ResumeAttempts {
			c.publish(ctx, models.FailedToConnect)
			return "", false
		}

		select {
		case <-ctx.Done():
			return "", false
		case <-time.After(c.cfg.ResumeDelay):
		}

		c.mu.Lock()
		conversationID, token, watermark := c.conversationID, c.token, c.watermark
		c.mu.Unlock()

		conv, err := c.adapter.ResumeConversation(ctx, conversationID, token, watermark)
		switch {
		case ctx.Err() != nil:
			return "", false
		case errors.Is(err, adapter.ErrForbidden):
			c.publish(ctx, models.ExpiredToken)
			return "", false
		case err != nil:
			c.logger.Warn().Err(err).Int("attempt", *attempts).Msg("resume conversation failed")
			continue
		case conv.StreamURL == "":
			c.logger.Warn().Err(ErrStreamURLMissing).Int("attempt", *attempts).Msg("resume conversation failed")
			continue
		}

		c.mu.Lock()
		c.streamURL = conv.StreamURL
		c.mu.Unlock()

		return conv.StreamURL, true
	}
}

// readStream dials streamURL, calls connected once the socket is up, and
// delivers frames until the socket fails or ctx ends.
func (c *Client) readStream(ctx context.Context, streamURL string, connected func()) error {
	if streamURL == "" {
		return ErrStreamURLMissing
	}

	conn, resp, err := c.dialer.DialContext(ctx, streamURL, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return fmt.Errorf("dial stream: %w", err)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	connected()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("read stream: %w", err)
		}

		// empty frames are keepalives
		if len(bytes.TrimSpace(data)) == 0 {
			continue
		}

		var set models.ActivitySet
		if err = json.Unmarshal(data, &set); err != nil {
			c.logger.Warn().Err(err).Msg("skipping malformed stream frame")
			continue
		}
		c.deliver(set)
	}
}

// runPolling fetches activities every PollInterval. ResumeAttempts
// consecutive failures end the conversation with FailedToConnect.
func (c *Client) runPolling(ctx context.Context) {
	c.publish(ctx, models.Online)

	t := time.NewTicker(c.cfg.PollInterval)
	defer t.Stop()

	failures := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}

		c.mu.Lock()
		conversationID, token, watermark := c.conversationID, c.token, c.watermark
		c.mu.Unlock()

		set, err := c.adapter.GetActivities(ctx, conversationID, token, watermark)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if errors.Is(err, adapter.ErrForbidden) {
				c.publish(ctx, models.ExpiredToken)
				return
			}

			failures++
			c.logger.Warn().Err(err).Int("attempt", failures).Msg("poll activities failed")
			if failures >= c.cfg.ResumeAttempts {
				c.publish(ctx, models.FailedToConnect)
				return
			}
			continue
		}

		failures = 0
		c.deliver(set)
	}
}
