// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 3000}, expected: "localhost:3000"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		want        NetAddress
	}{
		{name: "localhost", input: "localhost:3000", want: NetAddress{Host: "localhost", Port: 3000}},
		{name: "ipv4", input: "0.0.0.0:8080", want: NetAddress{Host: "0.0.0.0", Port: 8080}},
		{name: "port only", input: ":5000", want: NetAddress{Port: 5000}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non-numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port too large", input: "localhost:70000", expectError: true},
		{name: "hostname not allowed", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.expectError {
				assert.Error(t, err)
				assert.Equal(t, NetAddress{}, addr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "127.0.0.1:4000",
		"-t", "flag-secret",
		"-log-level", "warn",
		"-request-timeout", "15s",
		"-max-body-bytes", "512",
		"-base-url", "http://127.0.0.1:4000",
		"-client-timeout", "2s",
		"-c", "/etc/contracts.json",
	})

	require.NoError(t, err)
	assert.Equal(t, "flag-secret", cfg.App.AuthToken)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, int64(512), cfg.Server.MaxBodyBytes)
	assert.Equal(t, "http://127.0.0.1:4000", cfg.Client.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Client.RequestTimeout)
	assert.Equal(t, "/etc/contracts.json", cfg.JSONFilePath)
}

func TestParseFlags_PortFlagOverridesAddressPort(t *testing.T) {
	cfg, err := parseFlags([]string{"-a", "localhost:4000", "-p", "4100"})

	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 4100, cfg.Server.Port)
}

func TestParseFlags_Aliases(t *testing.T) {
	cfg, err := parseFlags([]string{"-auth-token", "alias-secret", "-config", "cfg.json"})

	require.NoError(t, err)
	assert.Equal(t, "alias-secret", cfg.App.AuthToken)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-unknown"}},
		{name: "bad address", args: []string{"-a", "nowhere"}},
		{name: "bad duration", args: []string{"-request-timeout", "later"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
