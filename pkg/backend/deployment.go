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

package backend

import (
	"context"
	"net/http"

	"github.com/fleetforge/devicegateway/pkg/models"
)

// DeploymentClient asks the deployment resolver which packages should
// and should not be present on a device.
type DeploymentClient struct {
	baseURL string
	client  HTTPClient
}

// NewDeploymentClient creates a client for the deployment resolver.
func NewDeploymentClient(baseURL string, client HTTPClient) *DeploymentClient {
	if client == nil {
		client = http.DefaultClient
	}

	return &DeploymentClient{baseURL: baseURL, client: client}
}

// ResolvePackages posts the device's declared state and returns the
// resolver's present/absent verdict.
func (c *DeploymentClient) ResolvePackages(ctx context.Context, request *models.DeviceRequest) (*models.ResolvedPackages, error) {
	var resolved models.ResolvedPackages

	url := joinURL(c.baseURL, "packages", "resolve")

	if err := postJSON(ctx, c.client, url, request, &resolved, ErrDeploymentRequest); err != nil {
		return nil, err
	}

	return &resolved, nil
}
