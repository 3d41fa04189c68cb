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

package models

import (
	"fmt"

	"github.com/fleetforge/devicegateway/pkg/logger"
)

// CORSConfig holds the cross-origin settings applied by the common
// middleware.
type CORSConfig struct {
	AllowedOrigins   []string `json:"allowed_origins"`
	AllowCredentials bool     `json:"allow_credentials"`
}

// ErrorResponse is the JSON body returned for any non-2xx response.
type ErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// BackendConfig lists the base URLs of the backend services the gateway
// talks to. All six are required.
type BackendConfig struct {
	AuthorizationURL string `json:"authorization_url"`
	DeploymentURL    string `json:"deployment_url"`
	DeviceURL        string `json:"device_url"`
	ComponentURL     string `json:"component_url"`
	PackageURL       string `json:"package_url"`
	UpdateURL        string `json:"update_url"`
}

// Validate ensures every backend base URL is set.
func (c *BackendConfig) Validate() error {
	required := map[string]string{
		"authorization_url": c.AuthorizationURL,
		"deployment_url":    c.DeploymentURL,
		"device_url":        c.DeviceURL,
		"component_url":     c.ComponentURL,
		"package_url":       c.PackageURL,
		"update_url":        c.UpdateURL,
	}

	for name, value := range required {
		if value == "" {
			return fmt.Errorf("backend %s is required", name)
		}
	}

	return nil
}

// GatewayConfig is the top-level configuration for the device gateway.
type GatewayConfig struct {
	ListenAddr string         `json:"listen_addr"`
	CORS       CORSConfig     `json:"cors"`
	Backends   BackendConfig  `json:"backends"`
	NATS       NATSConfig     `json:"nats"`
	Events     EventsConfig   `json:"events"`
	Logging    *logger.Config `json:"logging,omitempty"`
}

// Validate checks the configuration before the gateway starts.
func (c *GatewayConfig) Validate() error {
	if c.ListenAddr == "" {
		c.ListenAddr = ":8080"
	}

	if err := c.Backends.Validate(); err != nil {
		return err
	}

	if err := c.Events.Validate(); err != nil {
		return err
	}

	if c.Events.Enabled {
		if err := c.NATS.Validate(); err != nil {
			return err
		}
	}

	return nil
}
