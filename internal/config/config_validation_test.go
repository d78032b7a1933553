// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*StructuredConfig) {}},
		{name: "port zero", mutate: func(c *StructuredConfig) { c.Server.Port = 0 }, wantErr: ErrInvalidServerConfigs},
		{name: "port too large", mutate: func(c *StructuredConfig) { c.Server.Port = 65536 }, wantErr: ErrInvalidServerConfigs},
		{name: "negative timeout", mutate: func(c *StructuredConfig) { c.Server.RequestTimeout = -time.Second }, wantErr: ErrInvalidServerConfigs},
		{name: "zero body limit", mutate: func(c *StructuredConfig) { c.Server.MaxBodyBytes = 0 }, wantErr: ErrInvalidServerConfigs},
		{name: "empty token", mutate: func(c *StructuredConfig) { c.App.AuthToken = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "unknown log level", mutate: func(c *StructuredConfig) { c.App.LogLevel = "verbose" }, wantErr: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ClientConfig
		wantErr bool
	}{
		{name: "valid", cfg: ClientConfig{BaseURL: "http://localhost:3000", RequestTimeout: time.Second}},
		{name: "no scheme", cfg: ClientConfig{BaseURL: "localhost:3000", RequestTimeout: time.Second}, wantErr: true},
		{name: "empty url", cfg: ClientConfig{RequestTimeout: time.Second}, wantErr: true},
		{name: "zero timeout", cfg: ClientConfig{BaseURL: "http://localhost:3000"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidClientConfigs)
				return
			}
			assert.NoError(t, err)
		})
	}
}
