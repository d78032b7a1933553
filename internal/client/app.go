// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/http-contracts/internal/adapter"
	"github.com/MKhiriev/http-contracts/internal/logger"
)

type App struct {
	contract adapter.ContractClient
	token    string

	logger *logger.Logger
}

func NewApp(contract adapter.ContractClient, token string, logger *logger.Logger) *App {
	return &App{contract: contract, token: token, logger: logger}
}

func (a *App) Run(ctx context.Context) error {
	reports := adapter.Probe(ctx, a.contract, a.token)

	for _, r := range reports {
		event := a.logger.Info()
		if !r.Passed() {
			event = a.logger.Error().Err(r.Err)
		}
		event.
			Str("scenario", r.Name).
			Int("want", r.Want).
			Int("got", r.Got).
			Bool("passed", r.Passed()).
			Send()
	}

	failed := adapter.Failed(reports)
	a.logger.Info().
		Int("scenarios", len(reports)).
		Int("failed", len(failed)).
		Msg("probe finished")

	if len(failed) > 0 {
		return fmt.Errorf("%w: %d of %d scenarios failed", ErrContractViolated, len(failed), len(reports))
	}
	return nil
}
