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

// DeviceRegistryClient records device sightings in the device registry.
type DeviceRegistryClient struct {
	baseURL string
	client  HTTPClient
}

// NewDeviceRegistryClient creates a client for the device registry.
func NewDeviceRegistryClient(baseURL string, client HTTPClient) *DeviceRegistryClient {
	if client == nil {
		client = http.DefaultClient
	}

	return &DeviceRegistryClient{baseURL: baseURL, client: client}
}

// RegisterDevice creates or refreshes the device snapshot. The registry
// returns a possibly augmented copy, typically with the segment the
// device was assigned to.
func (c *DeviceRegistryClient) RegisterDevice(ctx context.Context, info *models.DeviceInfo) (*models.DeviceInfo, error) {
	var saved models.DeviceInfo

	url := joinURL(c.baseURL, "devices")

	if err := postJSON(ctx, c.client, url, info, &saved, ErrDeviceRegistryRequest); err != nil {
		return nil, err
	}

	return &saved, nil
}
