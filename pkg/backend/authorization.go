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

// AuthorizationClient exchanges device API keys for user principals.
type AuthorizationClient struct {
	baseURL string
	client  HTTPClient
}

// NewAuthorizationClient creates a client for the authorization service.
func NewAuthorizationClient(baseURL string, client HTTPClient) *AuthorizationClient {
	if client == nil {
		client = http.DefaultClient
	}

	return &AuthorizationClient{baseURL: baseURL, client: client}
}

// AuthenticateAPIKey resolves the user owning the given API key. Any
// non-2xx answer is an authorization fault; the service never answers
// 404 for a bad key, it answers 401.
func (c *AuthorizationClient) AuthenticateAPIKey(ctx context.Context, apiKey string) (*models.User, error) {
	var user models.User

	url := joinURL(c.baseURL, "device", "authenticate")

	if err := postJSON(ctx, c.client, url, models.APIKey{Key: apiKey}, &user, ErrAuthorizationRequest); err != nil {
		return nil, err
	}

	return &user, nil
}
