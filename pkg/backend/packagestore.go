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
	"io"
	"net/http"

	"github.com/fleetforge/devicegateway/pkg/models"
)

// PackageStoreClient fetches artifact descriptors and artifact bytes
// from the package store.
type PackageStoreClient struct {
	baseURL string
	client  HTTPClient
}

// NewPackageStoreClient creates a client for the package store.
func NewPackageStoreClient(baseURL string, client HTTPClient) *PackageStoreClient {
	if client == nil {
		client = http.DefaultClient
	}

	return &PackageStoreClient{baseURL: baseURL, client: client}
}

// GetPackageInfo fetches the descriptor of a stored package.
func (c *PackageStoreClient) GetPackageInfo(ctx context.Context, id string) (*models.PackageInfo, error) {
	var info models.PackageInfo

	url := joinURL(c.baseURL, "packages", id)

	if err := getJSON(ctx, c.client, url, ErrPackageStoreRequest, &info); err != nil {
		return nil, err
	}

	return &info, nil
}

// StreamPackage copies the package's bytes into w and returns the number
// of bytes written.
func (c *PackageStoreClient) StreamPackage(ctx context.Context, info *models.PackageInfo, w io.Writer) (int64, error) {
	url := joinURL(c.baseURL, "packages", info.ID, "file")

	return stream(ctx, c.client, url, w, ErrPackageStoreRequest)
}
