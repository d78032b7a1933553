// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// configEnvKeys lists every variable read by parseEnv.
var configEnvKeys = []string{
	"CONFIG",
	"PORT",
	"APP_AUTH_TOKEN",
	"APP_LOG_LEVEL",
	"SERVER_HOST",
	"SERVER_PORT",
	"SERVER_REQUEST_TIMEOUT",
	"SERVER_MAX_BODY_BYTES",
	"CLIENT_BASE_URL",
	"CLIENT_REQUEST_TIMEOUT",
}

// setEnvVars clears every config variable and then sets vars for the
// duration of the test.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for _, k := range configEnvKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_AUTH_TOKEN": "secret",
		"APP_LOG_LEVEL":  "info",

		"SERVER_HOST":            "127.0.0.1",
		"SERVER_PORT":            "8080",
		"SERVER_REQUEST_TIMEOUT": "30s",
		"SERVER_MAX_BODY_BYTES":  "2048",

		"CLIENT_BASE_URL":        "http://127.0.0.1:8080",
		"CLIENT_REQUEST_TIMEOUT": "5s",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "secret", cfg.App.AuthToken)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, int64(2048), cfg.Server.MaxBodyBytes)
	assert.Equal(t, "http://127.0.0.1:8080", cfg.Client.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Client.RequestTimeout)
}

func TestParseEnv_PlatformPort(t *testing.T) {
	setEnvVars(t, map[string]string{"PORT": "5000"})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, 5000, cfg.Server.Port)
}

func TestParseEnv_ServerPortWinsOverPlatformPort(t *testing.T) {
	setEnvVars(t, map[string]string{
		"PORT":        "5000",
		"SERVER_PORT": "8080",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestParseEnv_Empty(t *testing.T) {
	setEnvVars(t, nil)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{name: "server port", vars: map[string]string{"SERVER_PORT": "not-a-number"}},
		{name: "platform port", vars: map[string]string{"PORT": "abc"}},
		{name: "duration", vars: map[string]string{"SERVER_REQUEST_TIMEOUT": "soon"}},
		{name: "body limit", vars: map[string]string{"SERVER_MAX_BODY_BYTES": "1MB"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, tt.vars)

			err := parseEnv(&StructuredConfig{})
			assert.Error(t, err)
		})
	}
}

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	err := loadDotEnv(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, err)
}

func TestLoadDotEnv_LoadsVariables(t *testing.T) {
	setEnvVars(t, nil)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_AUTH_TOKEN=from-dotenv\nSERVER_PORT=4000\n"), 0o600))

	require.NoError(t, loadDotEnv(path))

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, "from-dotenv", cfg.App.AuthToken)
	assert.Equal(t, 4000, cfg.Server.Port)
}

func TestLoadDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_AUTH_TOKEN": "from-env"})
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_AUTH_TOKEN=from-dotenv\n"), 0o600))

	require.NoError(t, loadDotEnv(path))

	assert.Equal(t, "from-env", os.Getenv("APP_AUTH_TOKEN"))
}
