// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strconv"
	"time"
)

// StructuredConfig is the top-level configuration container. It is built once
// at startup, passed explicitly to constructors and never mutated afterwards.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the authorization secret and logging settings.
	App App `envPrefix:"APP_"`

	// Server holds the listening address and request limits.
	Server Server `envPrefix:"SERVER_"`

	// Client holds the probe client's target and timeout.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// AuthToken is the secret compared against the x-auth-token header on
	// POST /login.
	// Env: APP_AUTH_TOKEN
	AuthToken string `env:"AUTH_TOKEN"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and limit settings for the HTTP server.
type Server struct {
	// Host is the interface to bind. Empty binds all interfaces.
	// Env: SERVER_HOST
	Host string `env:"HOST"`

	// Port is the TCP port to listen on.
	// Env: SERVER_PORT, or PORT when SERVER_PORT is unset.
	Port int `env:"PORT"`

	// RequestTimeout bounds reading a request and writing its response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxBodyBytes caps how much of a request body is buffered.
	// Env: SERVER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES"`
}

// Address returns the host:port the server listens on.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Client holds settings for the probe client.
type Client struct {
	// BaseURL is the server the probe targets (e.g. "http://localhost:3000").
	// Env: CLIENT_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the per-request timeout of the probe.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, defaults and validates the configuration
// from all available sources. args are the command-line arguments without the
// program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(dotEnvFile).
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
