// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// dotEnvFile is the optional env file loaded before the environment is read.
const dotEnvFile = ".env"

// platformEnv holds variables set by hosting platforms without an
// application prefix.
type platformEnv struct {
	Port int `env:"PORT"`
}

// loadDotEnv loads variables from path into the process environment.
// Variables already set are not overridden. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading %s: %w", path, err)
	}
	return nil
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types. The bare PORT variable
// is used when SERVER_PORT is unset.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be converted
// to the target type).
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	platform, err := env.ParseAs[platformEnv]()
	if err != nil {
		return fmt.Errorf("error getting platform env configs: %w", err)
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = platform.Port
	}

	return nil
}
