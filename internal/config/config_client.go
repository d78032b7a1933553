// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientConfig is the probe client's view of [StructuredConfig].
type ClientConfig struct {
	// BaseURL is the server the probe targets.
	BaseURL string
	// RequestTimeout is the per-request timeout.
	RequestTimeout time.Duration
	// AuthToken is sent as x-auth-token in the authorized login scenario.
	AuthToken string
	// LogLevel is a zerolog level name.
	LogLevel string
}

// GetClientConfig builds and validates the client view of the merged
// configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		BaseURL:        cfg.Client.BaseURL,
		RequestTimeout: cfg.Client.RequestTimeout,
		AuthToken:      cfg.App.AuthToken,
		LogLevel:       cfg.App.LogLevel,
	}

	return clientCfg, clientCfg.validate()
}
