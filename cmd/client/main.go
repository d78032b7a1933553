// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/http-contracts/internal/adapter"
	"github.com/MKhiriev/http-contracts/internal/client"
	"github.com/MKhiriev/http-contracts/internal/config"
	"github.com/MKhiriev/http-contracts/internal/logger"
	"github.com/MKhiriev/http-contracts/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("http-contracts-probe")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = log.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	contract, err := adapter.NewHTTPContractClient(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating contract client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err = client.NewApp(contract, cfg.AuthToken, log).Run(ctx); err != nil {
		log.Error().Err(err).Msg("probe failed")
		stop()
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
