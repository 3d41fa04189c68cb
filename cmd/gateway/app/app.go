/*
 * Copyright 2025 FleetForge, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package app boots the device gateway: configuration, logging, backend
// clients, the two engines and the HTTP server.
package app

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fleetforge/devicegateway/pkg/backend"
	"github.com/fleetforge/devicegateway/pkg/config"
	"github.com/fleetforge/devicegateway/pkg/gateway"
	"github.com/fleetforge/devicegateway/pkg/gateway/api"
	"github.com/fleetforge/devicegateway/pkg/logger"
	"github.com/fleetforge/devicegateway/pkg/metrics"
	"github.com/fleetforge/devicegateway/pkg/models"
	"github.com/fleetforge/devicegateway/pkg/natsutil"
)

// Options contains runtime configuration derived from CLI flags.
type Options struct {
	ConfigPath string
}

const (
	backendRequestTimeout = 30 * time.Second
	shutdownTimeout       = 10 * time.Second
)

// eventSink is the publisher plus its shutdown hook.
type eventSink interface {
	gateway.EventPublisher
	Close()
}

// Run boots the gateway using the provided options and blocks until the
// process is signalled or the HTTP server fails.
func Run(ctx context.Context, opts Options) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var cfg models.GatewayConfig
	if err := config.NewConfig(nil).LoadAndValidate(ctx, opts.ConfigPath, &cfg); err != nil {
		return err
	}

	logConfig := cfg.Logging
	if logConfig == nil {
		logConfig = logger.DefaultConfig()
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	mainLogger := logger.WithComponent("gateway")

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpClient := &http.Client{Timeout: backendRequestTimeout}

	authClient := backend.NewAuthorizationClient(cfg.Backends.AuthorizationURL, httpClient)
	deployment := backend.NewDeploymentClient(cfg.Backends.DeploymentURL, httpClient)
	registry := backend.NewDeviceRegistryClient(cfg.Backends.DeviceURL, httpClient)
	catalog := backend.NewCatalogClient(cfg.Backends.ComponentURL, httpClient)
	store := backend.NewPackageStoreClient(cfg.Backends.PackageURL, httpClient)
	updates := backend.NewUpdateClient(cfg.Backends.UpdateURL, httpClient)

	counters := metrics.NewRegistry()

	var events eventSink = natsutil.NoopPublisher{}

	if cfg.Events.Enabled {
		publisher, nc, err := natsutil.ConnectWithEventPublisher(
			ctx, cfg.NATS, cfg.Events, counters, logger.WithComponent("events"))
		if err != nil {
			return err
		}

		defer nc.Close()

		events = publisher
	}

	defer events.Close()

	resolver := gateway.NewVersionResolver(deployment, catalog, events, logger.WithComponent("resolver"))
	checker := gateway.NewUpdateManager(registry, updates, store, catalog, events, logger.WithComponent("updates"))

	server := api.NewAPIServer(cfg.CORS,
		api.WithAuthenticator(authClient),
		api.WithUpdateChecker(checker),
		api.WithVersionResolver(resolver),
		api.WithMetrics(counters),
		api.WithLogger(logger.WithComponent("api")),
	)

	errCh := make(chan error, 1)

	go func() {
		mainLogger.Info().Str("addr", cfg.ListenAddr).Msg("Device gateway listening")
		errCh <- server.Start(cfg.ListenAddr)
	}()

	select {
	case <-ctx.Done():
		mainLogger.Info().Msg("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			mainLogger.Error().Err(err).Msg("HTTP server shutdown failed")
		}

		return nil
	case err := <-errCh:
		return err
	}
}
