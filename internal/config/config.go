// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the raw configuration container populated by every
// source before the client view is derived from it.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Bot identifies the bot the client talks to.
	Bot Bot `envPrefix:"BOT_"`

	// User is the identity attached to every outbound activity.
	User User `envPrefix:"USER_"`

	// DirectLine holds the channel secret and transport settings.
	DirectLine DirectLine `envPrefix:"DIRECT_LINE_"`

	// Log holds the log sink settings.
	Log Log `envPrefix:"LOG_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// Bot holds the identity of the remote bot.
type Bot struct {
	// ID is the bot's channel account id. Activities from any other sender
	// are not rendered.
	// Env: BOT_ID
	ID string `env:"ID"`
}

// User holds the identity of the person at the terminal.
type User struct {
	// ID is the user's channel account id; also used as the input prompt.
	// Env: USER_ID
	ID string `env:"ID"`

	// Name is the user's display name.
	// Env: USER_NAME
	Name string `env:"NAME"`
}

// DirectLine holds the Direct Line channel settings.
type DirectLine struct {
	// Secret is the Direct Line channel secret used to generate tokens.
	// Must be kept confidential.
	// Env: DIRECT_LINE_KEY
	Secret string `env:"KEY"`

	// Endpoint is the Direct Line REST base URL.
	// Env: DIRECT_LINE_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// RequestTimeout bounds a single REST call (e.g. "20s").
	// Env: DIRECT_LINE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Transport selects how activities are received: "websocket" or "polling".
	// Env: DIRECT_LINE_TRANSPORT
	Transport string `env:"TRANSPORT"`
}

// Log holds logger settings.
type Log struct {
	// Path is the file the client log is appended to.
	// Env: LOG_PATH
	Path string `env:"PATH"`
}

// GetStructuredConfig loads and merges the configuration from all sources
// (see the package documentation for precedence) without applying defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	workDir, err := os.Getwd()
	if err != nil {
		workDir = "."
	}

	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withFile().
		withDefaultFiles(workDir, os.Getenv("APP_ENV")).
		build()
}
