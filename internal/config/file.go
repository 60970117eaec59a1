package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk configuration layout. Keys keep the names used by
// dev.sample.json so existing configuration files load unchanged.
type FileConfig struct {
	BotID          string   `json:"BotId" yaml:"BotId"`
	UserID         string   `json:"UserId" yaml:"UserId"`
	UserName       string   `json:"UserName" yaml:"UserName"`
	DirectLineKey  string   `json:"DirectLineKey" yaml:"DirectLineKey"`
	Endpoint       string   `json:"Endpoint,omitempty" yaml:"Endpoint,omitempty"`
	RequestTimeout Duration `json:"RequestTimeout,omitempty" yaml:"RequestTimeout,omitempty"`
	Transport      string   `json:"Transport,omitempty" yaml:"Transport,omitempty"`
	LogPath        string   `json:"LogPath,omitempty" yaml:"LogPath,omitempty"`
}

// parseFile reads a configuration file. Files ending in .yaml or .yml are
// decoded as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fileCfg.structured(), nil
}

// parseOptionalFile is parseFile that returns (nil, nil) when path does not exist.
func parseOptionalFile(path string) (*StructuredConfig, error) {
	cfg, err := parseFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	return cfg, err
}

func (f FileConfig) structured() *StructuredConfig {
	return &StructuredConfig{
		Bot: Bot{ID: f.BotID},
		User: User{
			ID:   f.UserID,
			Name: f.UserName,
		},
		DirectLine: DirectLine{
			Secret:         f.DirectLineKey,
			Endpoint:       f.Endpoint,
			RequestTimeout: time.Duration(f.RequestTimeout),
			Transport:      f.Transport,
		},
		Log: Log{Path: f.LogPath},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" as well as from plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.parse(value)
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var n int64
	if err := node.Decode(&n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	return d.parse(s)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) parse(s string) error {
	if strings.TrimSpace(s) == "" {
		*d = 0
		return nil
	}

	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
