package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/bot-console/internal/config"
	"github.com/MKhiriev/bot-console/internal/logger"
	"github.com/MKhiriev/bot-console/models"
)

// ErrMissingDependency is returned by NewApp when a collaborator is nil.
var ErrMissingDependency = errors.New("missing dependency")

const completionsBuffer = 16

var _ Client = (*App)(nil)

// App relays messages between the terminal user and the bot.
type App struct {
	botID  string
	user   models.ChannelAccount
	secret string

	tokens     TokenService
	newChannel ChannelFactory
	terminal   Terminal
	logger     *logger.Logger

	// owned by the converse goroutine
	session  models.Session
	channel  Channel
	pending  []models.Activity
	renewing bool

	lines       chan string
	outbox      chan models.Activity
	completions chan func()
	inflight    sync.WaitGroup
	done        chan struct{}
}

// NewApp builds the client application. The channel is created by
// newChannel once a token has been generated.
func NewApp(cfg *config.ClientConfig, tokens TokenService, newChannel ChannelFactory, terminal Terminal, log *logger.Logger) (*App, error) {
	if cfg == nil || tokens == nil || newChannel == nil || terminal == nil || log == nil {
		return nil, ErrMissingDependency
	}

	return &App{
		botID:       cfg.BotID,
		user:        cfg.User,
		secret:      cfg.DirectLine.Secret,
		tokens:      tokens,
		newChannel:  newChannel,
		terminal:    terminal,
		logger:      log.GetChildLogger("app"),
		lines:       make(chan string),
		outbox:      make(chan models.Activity),
		completions: make(chan func(), completionsBuffer),
		done:        make(chan struct{}),
	}, nil
}

// Run shows the terminal and converses with the bot until the terminal is
// closed, by the user or after a terminal connection status. A terminal
// failure is returned first; otherwise the token generation failure, if any.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.terminal.OnUserMessage(a.enqueueLine)

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.converse(ctx)
	}()

	runErr := a.terminal.Run()
	cancel()

	convErr := <-errCh
	if runErr != nil {
		return runErr
	}
	return convErr
}

// enqueueLine hands a submitted line to the converse goroutine.
func (a *App) enqueueLine(line string) {
	select {
	case a.lines <- line:
	case <-a.done:
	}
}

func (a *App) converse(ctx context.Context) error {
	defer close(a.done)

	conv, err := a.tokens.GenerateToken(ctx, a.secret)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		a.logger.Error().Err(err).Msg("generate token")
		a.terminal.ShowError(fmt.Sprintf("Error generating token: %v", err))
		a.terminal.Close()
		return fmt.Errorf("generate token: %w", err)
	}

	a.session = models.Session{Token: conv.Token, ConversationID: conv.ConversationID}
	a.channel = a.newChannel(conv.Token)
	defer a.channel.Close()
	defer a.inflight.Wait()

	a.inflight.Add(2)
	go a.send(ctx)
	go func() {
		defer a.inflight.Done()
		if err := a.channel.Start(ctx); err != nil {
			a.logger.Error().Err(err).Msg("start channel")
		}
	}()

	statuses, activities := a.channel.Statuses(), a.channel.Activities()
	for {
		var outbox chan<- models.Activity
		var next models.Activity
		if len(a.pending) > 0 {
			outbox, next = a.outbox, a.pending[0]
		}

		select {
		case <-ctx.Done():
			a.channel.End()
			return nil
		case status := <-statuses:
			a.onStatus(ctx, status)
		case activity := <-activities:
			a.onActivity(activity)
		case line := <-a.lines:
			a.post(models.Activity{From: a.user, Type: models.ActivityTypeMessage, Text: line})
		case outbox <- next:
			a.pending = a.pending[1:]
		case complete := <-a.completions:
			complete()
		}
	}
}

func (a *App) onStatus(ctx context.Context, status models.ConnectionStatus) {
	a.logger.Info().Str("status", status.String()).Msg("connection status")
	line := "Connection Status: " + status.String()

	switch {
	case status == models.Online:
		a.terminal.ShowInfo(line)
		a.terminal.JumpLine()
		a.post(models.Activity{
			From:  a.user,
			Type:  models.ActivityTypeEvent,
			Name:  models.ActivityTypeConversationUpdate,
			Value: models.StringValue(""),
		})
		a.terminal.PromptUser()
	case status == models.ExpiredToken:
		a.terminal.ShowInfo(line)
		a.renewSession(ctx)
	case status.IsTerminal():
		a.terminal.ShowError(line)
		a.terminal.Close()
	default:
		a.terminal.ShowInfo(line)
	}
}

func (a *App) onActivity(activity models.Activity) {
	switch {
	case activity.Type == models.ActivityTypeMessage && activity.IsFrom(a.botID):
		a.terminal.ShowMessage(activity)
		a.terminal.PromptUser()
	case activity.Type == models.ActivityTypeHandoff && activity.IsFrom(a.botID):
		a.terminal.ShowHandoff(activity)
		a.terminal.PromptUser()
	default:
		a.logger.Debug().
			Str("type", activity.Type).
			Str("from", activity.From.ID).
			Msg("activity ignored")
	}
}

// post queues activity for the sender goroutine.
func (a *App) post(activity models.Activity) {
	a.pending = append(a.pending, activity)
}

// send posts queued activities one at a time, in queue order.
func (a *App) send(ctx context.Context) {
	defer a.inflight.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case activity := <-a.outbox:
			if _, err := a.channel.PostActivity(ctx, activity); err != nil {
				if ctx.Err() != nil {
					return
				}
				a.logger.Error().Err(err).Str("type", activity.Type).Msg("post activity")
				a.complete(ctx, func() {
					a.terminal.ShowError(fmt.Sprintf("Error posting activity: %v", err))
				})
			}
		}
	}
}

// renewSession refreshes the token and re-fetches the conversation off the
// converse goroutine, then reconnects the channel on it. A failure leaves
// the session and the channel as they are.
func (a *App) renewSession(ctx context.Context) {
	if a.renewing {
		return
	}
	a.renewing = true

	token := a.session.Token
	conversationID := a.channel.ConversationID()
	if conversationID == "" {
		conversationID = a.session.ConversationID
	}

	a.inflight.Add(1)
	go func() {
		defer a.inflight.Done()

		refreshed, err := a.tokens.RefreshToken(ctx, token)
		if err != nil {
			a.renewFailed(ctx, "Error refreshing token", err)
			return
		}

		conv, err := a.tokens.ReconnectToConversation(ctx, conversationID, refreshed.Token)
		if err != nil {
			a.renewFailed(ctx, "Error reconnecting to conversation", err)
			return
		}
		if conv.Token == "" {
			conv.Token = refreshed.Token
		}

		a.complete(ctx, func() {
			a.renewing = false
			a.session = models.Session{Token: refreshed.Token, ConversationID: conversationID}
			a.channel.Reconnect(conv)
		})
	}()
}

func (a *App) renewFailed(ctx context.Context, what string, err error) {
	if ctx.Err() != nil {
		return
	}
	a.logger.Error().Err(err).Msg(what)
	a.complete(ctx, func() {
		a.renewing = false
		a.terminal.ShowError(fmt.Sprintf("%s: %v", what, err))
	})
}

// complete runs fn on the converse goroutine.
func (a *App) complete(ctx context.Context, fn func()) {
	select {
	case a.completions <- fn:
	case <-ctx.Done():
	}
}
