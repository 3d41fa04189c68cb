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

package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fleetforge/devicegateway/pkg/models"
)

const pingV2Prefix = "ping.v2."

// handleResolveVersions answers the multi-package protocol: the device
// declares every package it carries and gets the four reconciliation
// buckets back. Download URLs are attached here because only the HTTP
// boundary knows how the device reached us.
func (s *APIServer) handleResolveVersions(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var request models.DeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.validate.Struct(&request); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.counters.Increment(pingV2Prefix + user.ID)

	request.UserID = user.ID
	request.IPAddress = clientIP(r)
	request.UserAgent = r.UserAgent()

	versions, err := s.resolver.ResolveVersions(r.Context(), &request)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	base := externalBaseURL(r)
	versions.Available = withDownloadURLs(versions.Available, base)
	versions.Changed = withDownloadURLs(versions.Changed, base)

	s.writeJSON(w, versions)
}

// withDownloadURLs attaches a download URL to every version that a
// device is expected to fetch. Unchanged and unavailable versions never
// get one.
func withDownloadURLs(versions []models.Version, base string) []models.Version {
	out := make([]models.Version, 0, len(versions))
	for _, v := range versions {
		out = append(out, v.WithURL(base+"/packages/"+v.Reference+"/versions/"+v.Version+"/file"))
	}

	return out
}

// handleDownloadVersion streams a catalog version file to the device.
func (s *APIServer) handleDownloadVersion(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	reference := vars["packageRef"]
	versionID := vars["versionId"]

	w.Header().Set("Content-Type", "application/octet-stream")

	counted := &countingWriter{w: w}
	if _, err := s.checker.CopyVersion(r.Context(), user.ID, reference, versionID, counted); err != nil {
		if counted.n == 0 {
			s.writeEngineError(w, err)
			return
		}

		s.log.Error().
			Err(err).
			Str("reference", reference).
			Str("version", versionID).
			Msg("Version download failed mid-stream")
	}
}
