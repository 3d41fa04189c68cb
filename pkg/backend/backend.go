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

// Package backend provides typed HTTP clients for the services the
// gateway mediates between: authorization, device registry, deployment
// resolver, component catalog, package store and update service. Each
// client translates transport failures and unexpected statuses into the
// service's sentinel error.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const maxErrorBodyBytes = 2048

// do sends the request and verifies the response status, wrapping any
// failure in sentinel.
func do(client HTTPClient, req *http.Request, sentinel error) (*http.Response, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", sentinel, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		_ = resp.Body.Close()

		return nil, fmt.Errorf("%w: status %d, response: %s", sentinel, resp.StatusCode, string(body))
	}

	return resp, nil
}

// getJSON issues a GET and decodes the 2xx response body into out.
func getJSON(ctx context.Context, client HTTPClient, url string, sentinel error, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("%w: %w", sentinel, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := do(client, req, sentinel)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %w", sentinel, err)
	}

	return nil
}

// postJSON issues a POST with a JSON body and decodes the 2xx response
// into out.
func postJSON(ctx context.Context, client HTTPClient, url string, in, out interface{}, sentinel error) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%w: encoding request: %w", sentinel, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %w", sentinel, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := do(client, req, sentinel)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %w", sentinel, err)
	}

	return nil
}

// stream issues a GET for an octet stream and copies the body to w.
func stream(ctx context.Context, client HTTPClient, url string, w io.Writer, sentinel error) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", sentinel, err)
	}

	req.Header.Set("Accept", "application/octet-stream")

	resp, err := do(client, req, sentinel)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	return io.Copy(w, resp.Body)
}

// joinURL appends escaped path segments to a base URL.
func joinURL(base string, segments ...string) string {
	var b strings.Builder

	b.WriteString(strings.TrimSuffix(base, "/"))

	for _, segment := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(segment))
	}

	return b.String()
}
