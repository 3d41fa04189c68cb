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

// CatalogClient fetches enriched version metadata and version files
// from the component catalog.
type CatalogClient struct {
	baseURL string
	client  HTTPClient
}

// NewCatalogClient creates a client for the component catalog.
func NewCatalogClient(baseURL string, client HTTPClient) *CatalogClient {
	if client == nil {
		client = http.DefaultClient
	}

	return &CatalogClient{baseURL: baseURL, client: client}
}

// GetVersion fetches the full version record for (userID, reference,
// version). A missing version is a catalog fault, not an empty result:
// the caller only asks for versions the resolver just named.
func (c *CatalogClient) GetVersion(ctx context.Context, userID, reference, version string) (*models.Version, error) {
	var out models.Version

	url := joinURL(c.baseURL, "owners", userID, "packages", reference, "versions", version)

	if err := getJSON(ctx, c.client, url, ErrCatalogRequest, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// StreamVersionFile copies the version's artifact into w and returns the
// number of bytes written.
func (c *CatalogClient) StreamVersionFile(ctx context.Context, userID, reference, version string, w io.Writer) (int64, error) {
	url := joinURL(c.baseURL, "owners", userID, "packages", reference, "versions", version, "file")

	return stream(ctx, c.client, url, w, ErrCatalogRequest)
}
