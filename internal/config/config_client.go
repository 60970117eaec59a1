package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/bot-console/models"
)

// Transport settings applied when no source provides a value.
const (
	DefaultEndpoint       = "https://directline.botframework.com/v3/directline"
	DefaultRequestTimeout = 20 * time.Second
	TransportWebSocket    = "websocket"
	TransportPolling      = "polling"
)

// ClientDirectLine holds the settings the Direct Line adapter and channel
// are built from.
type ClientDirectLine struct {
	// Secret is the channel secret exchanged for a token at startup.
	Secret string
	// Endpoint is the REST base URL.
	Endpoint string
	// RequestTimeout bounds every REST call.
	RequestTimeout time.Duration
	// WebSocket requests the streaming transport; polling is used otherwise.
	WebSocket bool
}

// ClientConfig is the client configuration assembled from [StructuredConfig].
type ClientConfig struct {
	// BotID is the bot's channel account id.
	BotID string
	// User is attached to every outbound activity.
	User models.ChannelAccount
	// DirectLine contains the channel settings.
	DirectLine ClientDirectLine
	// LogPath is the file the client log is written to.
	LogPath string
}

// GetClientConfig builds the client configuration from the merged structured
// configuration, fills transport defaults and validates the transport
// settings.
//
// Bot and user identity and the secret are passed through as loaded: an
// empty value surfaces later as an error from the remote service.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	endpoint := cfg.DirectLine.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	timeout := cfg.DirectLine.RequestTimeout
	if timeout == 0 {
		timeout = DefaultRequestTimeout
	}

	transport := cfg.DirectLine.Transport
	if transport == "" {
		transport = TransportWebSocket
	}

	logPath := cfg.Log.Path
	if logPath == "" {
		logPath = defaultLogPath()
	}

	return &ClientConfig{
		BotID: cfg.Bot.ID,
		User: models.ChannelAccount{
			ID:   cfg.User.ID,
			Name: cfg.User.Name,
		},
		DirectLine: ClientDirectLine{
			Secret:         cfg.DirectLine.Secret,
			Endpoint:       endpoint,
			RequestTimeout: timeout,
			WebSocket:      transport != TransportPolling,
		},
		LogPath: logPath,
	}
}

func defaultLogPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return "logs"
	}

	return filepath.Join(filepath.Dir(execPath), "logs")
}
