// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/bvc-digitalhub/internal/adapter"
	"github.com/MKhiriev/bvc-digitalhub/internal/config"
	"github.com/MKhiriev/bvc-digitalhub/internal/handler"
	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
	"github.com/MKhiriev/bvc-digitalhub/internal/server"
	"github.com/MKhiriev/bvc-digitalhub/internal/service"
	"github.com/MKhiriev/bvc-digitalhub/internal/store"
	"github.com/MKhiriev/bvc-digitalhub/internal/workers"
	"github.com/MKhiriev/bvc-digitalhub/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("digitalhub-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("digitalhub-server", cfg.App.LogLevel)
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Dur("token_ttl", cfg.App.TokenDuration).
		Bool("token_embed_role", cfg.App.EmbedRoleInToken).
		Strs("allowed_origins", cfg.Server.AllowedOrigins).
		Bool("smtp_enabled", cfg.Mailer.Host != "").
		Msg("received configs")

	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	mailWorker := workers.NewMailWorker(adapter.NewMailer(cfg.Mailer, log), cfg.Workers.MailQueueSize, log)

	services, err := service.NewServices(storages, mailWorker, buildInfo, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if err = services.AdminService.EnsureSeedAdmin(ctx, cfg.App.AdminEmail, cfg.App.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("error provisioning seed admin")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(mailWorker), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.BuildDate)
	fmt.Printf("Build commit: %s\n", info.BuildCommit)
}
