package config

import (
	"errors"
	"flag"
	"io"
	"net/url"
	"time"
)

// EndpointURL is an absolute http(s) URL given on the command line.
// It implements the flag.Value interface.
type EndpointURL struct {
	URL *url.URL
}

// parseFlags parses the command-line arguments into a [StructuredConfig].
//
// Flags:
//
//	-bot-id           bot channel account id
//	-user-id          user channel account id
//	-user-name        user display name
//	-direct-line-key  Direct Line channel secret
//	-endpoint         Direct Line REST base URL
//	-request-timeout  REST request timeout (e.g., "20s")
//	-transport        "websocket" or "polling"
//	-log              log file path
//	-c/-config        JSON or YAML config file path
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("bot-console", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		botID          string
		userID         string
		userName       string
		secret         string
		endpoint       EndpointURL
		requestTimeout time.Duration
		transport      string
		logPath        string
		configPath     string
	)

	fs.StringVar(&botID, "bot-id", "", "Bot id")
	fs.StringVar(&userID, "user-id", "", "User id")
	fs.StringVar(&userName, "user-name", "", "User name")
	fs.StringVar(&secret, "direct-line-key", "", "Direct Line secret")
	fs.Var(&endpoint, "endpoint", "Direct Line base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 20s, 1m)")
	fs.StringVar(&transport, "transport", "", "Activity transport: websocket or polling")
	fs.StringVar(&logPath, "log", "", "Log file path")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Join(ErrInvalidFlags, err)
	}

	return &StructuredConfig{
		Bot: Bot{ID: botID},
		User: User{
			ID:   userID,
			Name: userName,
		},
		DirectLine: DirectLine{
			Secret:         secret,
			Endpoint:       endpoint.String(),
			RequestTimeout: requestTimeout,
			Transport:      transport,
		},
		Log:      Log{Path: logPath},
		FilePath: configPath,
	}, nil
}

// String returns the URL as given, or an empty string when unset.
func (e *EndpointURL) String() string {
	if e.URL == nil {
		return ""
	}

	return e.URL.String()
}

// Set parses s and requires an absolute http or https URL with a host.
func (e *EndpointURL) Set(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("endpoint scheme must be http or https")
	}
	if u.Host == "" {
		return errors.New("endpoint must include a host")
	}

	e.URL = u
	return nil
}
