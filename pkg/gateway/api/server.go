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

// Package api provides the device-facing HTTP API of the gateway.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/fleetforge/devicegateway/pkg/backend"
	"github.com/fleetforge/devicegateway/pkg/gateway"
	ffHttp "github.com/fleetforge/devicegateway/pkg/http"
	"github.com/fleetforge/devicegateway/pkg/metrics"
	"github.com/fleetforge/devicegateway/pkg/models"
)

// APIServer routes device traffic to the two gateway engines. Every
// route except the health probe sits behind API-key authentication.
type APIServer struct {
	router     *mux.Router
	corsConfig models.CORSConfig
	auth       Authenticator
	checker    UpdateChecker
	resolver   VersionResolver
	counters   *metrics.Registry
	validate   *validator.Validate
	log        zerolog.Logger
	srv        *http.Server
}

// NewAPIServer creates a new API server instance with the given configuration.
func NewAPIServer(config models.CORSConfig, options ...func(server *APIServer)) *APIServer {
	s := &APIServer{
		router:     mux.NewRouter(),
		corsConfig: config,
		counters:   metrics.NewRegistry(),
		validate:   validator.New(),
		log:        zerolog.Nop(),
	}

	for _, o := range options {
		o(s)
	}

	s.setupRoutes()

	return s
}

// WithAuthenticator sets the API-key authenticator.
func WithAuthenticator(a Authenticator) func(*APIServer) {
	return func(server *APIServer) {
		server.auth = a
	}
}

// WithUpdateChecker sets the update-eligibility engine.
func WithUpdateChecker(c UpdateChecker) func(*APIServer) {
	return func(server *APIServer) {
		server.checker = c
	}
}

// WithVersionResolver sets the version-reconciliation engine.
func WithVersionResolver(r VersionResolver) func(*APIServer) {
	return func(server *APIServer) {
		server.resolver = r
	}
}

// WithMetrics sets the counter registry used for per-user ping counters.
func WithMetrics(registry *metrics.Registry) func(*APIServer) {
	return func(server *APIServer) {
		server.counters = registry
	}
}

// WithLogger sets the server logger.
func WithLogger(log zerolog.Logger) func(*APIServer) {
	return func(server *APIServer) {
		server.log = log
	}
}

// Router exposes the configured router, for embedding and tests.
func (s *APIServer) Router() *mux.Router {
	return s.router
}

// setupRoutes configures the HTTP routes for the API server.
func (s *APIServer) setupRoutes() {
	s.setupMiddleware()

	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	protected := s.router.NewRoute().Subrouter()
	protected.Use(s.authenticationMiddleware)

	protected.HandleFunc("/update/check", s.handleCheckForUpdate).Methods(http.MethodPost)
	protected.HandleFunc("/update/download/{uuid}", s.handleDownloadUpdate).Methods(http.MethodGet)
	protected.HandleFunc("/resolve", s.handleResolveVersions).Methods(http.MethodPost)
	protected.HandleFunc("/packages/{packageRef}/versions/{versionId}/file", s.handleDownloadVersion).Methods(http.MethodGet)
}

// setupMiddleware configures CORS middleware.
func (s *APIServer) setupMiddleware() {
	s.router.Use(func(next http.Handler) http.Handler {
		return ffHttp.CommonMiddleware(next, s.corsConfig)
	})
}

func (*APIServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 60 * time.Second
	defaultIdleTimeout  = 60 * time.Second
)

// Start starts the API server on the specified address. The write
// timeout is generous because package downloads stream through it.
func (s *APIServer) Start(addr string) error {
	s.srv = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	return s.srv.ListenAndServe()
}

// Shutdown stops the server, waiting for in-flight requests.
func (s *APIServer) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}

	return s.srv.Shutdown(ctx)
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(statusCode)

	errResponse := models.ErrorResponse{
		Message: message,
		Status:  statusCode,
	}

	if err := json.NewEncoder(w).Encode(errResponse); err != nil {
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}

func (s *APIServer) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode response")
	}
}

// backendFaults are the outbound-call sentinels that map to 502: the
// gateway itself is fine, a dependency is not.
var backendFaults = []error{
	backend.ErrAuthorizationRequest,
	backend.ErrDeploymentRequest,
	backend.ErrDeviceRegistryRequest,
	backend.ErrCatalogRequest,
	backend.ErrPackageStoreRequest,
	backend.ErrUpdateServiceRequest,
}

// writeEngineError maps engine faults onto HTTP statuses. Ownership
// violations are 403, never 404, so a probing device learns that the
// update exists but is out of reach.
func (s *APIServer) writeEngineError(w http.ResponseWriter, err error) {
	var notOwner *gateway.NotPackageOwnerError

	switch {
	case errors.Is(err, gateway.ErrNoUpdateAvailable):
		writeError(w, "No update available", http.StatusNotFound)
	case errors.Is(err, gateway.ErrUpdateNotFound):
		writeError(w, "Update not found", http.StatusNotFound)
	case errors.Is(err, gateway.ErrInvalidUpdateStatus):
		writeError(w, "Update is not published", http.StatusConflict)
	case errors.As(err, &notOwner):
		writeError(w, "Forbidden", http.StatusForbidden)
	case isBackendFault(err):
		s.log.Error().Err(err).Msg("Backend request failed")
		writeError(w, "Upstream service error", http.StatusBadGateway)
	default:
		s.log.Error().Err(err).Msg("Request failed")
		writeError(w, "Internal server error", http.StatusInternalServerError)
	}
}

func isBackendFault(err error) bool {
	for _, fault := range backendFaults {
		if errors.Is(err, fault) {
			return true
		}
	}

	return false
}

type contextKey string

const userContextKey contextKey = "user"

// userFromContext returns the authenticated user stored by the
// authentication middleware.
func userFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok
}
