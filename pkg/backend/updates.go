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
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/fleetforge/devicegateway/pkg/models"
)

// UpdateClient reads updates from the update service. Lookups that find
// nothing return (nil, nil): absence is an answer here, not a fault.
type UpdateClient struct {
	baseURL string
	client  HTTPClient
}

// NewUpdateClient creates a client for the update service.
func NewUpdateClient(baseURL string, client HTTPClient) *UpdateClient {
	if client == nil {
		client = http.DefaultClient
	}

	return &UpdateClient{baseURL: baseURL, client: client}
}

// LatestPublishedUpdate returns the newest published update targeting
// the given user and segment, or nil when there is none.
func (c *UpdateClient) LatestPublishedUpdate(ctx context.Context, userID, segmentID string) (*models.Update, error) {
	query := url.Values{}
	query.Set("userId", userID)
	query.Set("segmentId", segmentID)

	return c.getOptionalUpdate(ctx, joinURL(c.baseURL, "updates", "latest")+"?"+query.Encode())
}

// GetUpdate returns the update with the given uuid owned by userID, or
// nil when the service does not know it.
func (c *UpdateClient) GetUpdate(ctx context.Context, uuid, userID string) (*models.Update, error) {
	query := url.Values{}
	query.Set("userId", userID)

	return c.getOptionalUpdate(ctx, joinURL(c.baseURL, "updates", uuid)+"?"+query.Encode())
}

// getOptionalUpdate treats 204 and 404 as "no update" and every other
// non-2xx status as an update-service fault.
func (c *UpdateClient) getOptionalUpdate(ctx context.Context, requestURL string) (*models.Update, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpdateServiceRequest, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpdateServiceRequest, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusNotFound:
		return nil, nil
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return nil, fmt.Errorf("%w: status %d", ErrUpdateServiceRequest, resp.StatusCode)
	}

	var update models.Update

	if err := json.NewDecoder(resp.Body).Decode(&update); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %w", ErrUpdateServiceRequest, err)
	}

	return &update, nil
}
