// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultPort           = 3000
	DefaultAuthToken      = "12345"
	DefaultLogLevel       = "debug"
	DefaultRequestTimeout = 10 * time.Second
	DefaultMaxBodyBytes   = 1 << 20
	DefaultClientBaseURL  = "http://localhost:3000"
)

// Defaults returns the values used for every field left zero by all sources.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AuthToken: DefaultAuthToken,
			LogLevel:  DefaultLogLevel,
		},
		Server: Server{
			Port:           DefaultPort,
			RequestTimeout: DefaultRequestTimeout,
			MaxBodyBytes:   DefaultMaxBodyBytes,
		},
		Client: Client{
			BaseURL:        DefaultClientBaseURL,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
