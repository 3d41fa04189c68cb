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
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/fleetforge/devicegateway/pkg/models"
)

const pingV1Prefix = "ping.v1."

// handleCheckForUpdate answers the legacy single-package protocol: the
// device reports the one version it runs and gets at most one update
// back. A 404 is the expected steady-state answer for a current device.
func (s *APIServer) handleCheckForUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var entity deviceRequestEntity
	if err := json.NewDecoder(r.Body).Decode(&entity); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.validate.Struct(&entity); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.counters.Increment(pingV1Prefix + user.ID)

	info := &models.DeviceInfo{
		UnitID:               entity.UnitID,
		UserID:               user.ID,
		VersionID:            entity.VersionID,
		ReceptionDate:        time.Now().UTC(),
		DeviceIP:             clientIP(r),
		UserAgent:            r.UserAgent(),
		AdditionalProperties: entity.CustomClientData,
	}

	detailed, err := s.checker.CheckForUpdate(r.Context(), info)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	s.writeJSON(w, &deviceUpdate{
		VersionID: detailed.PackageInfo.VersionID,
		PackageInfo: devicePackageInfo{
			URL:  externalBaseURL(r) + "/update/download/" + detailed.Update.UUID,
			MD5:  detailed.PackageInfo.MD5,
			Size: detailed.PackageInfo.Size,
		},
		CustomUpdateData: detailed.Update.AdditionalProperties,
	})
}

// handleDownloadUpdate streams the artifact behind a previously offered
// update id.
func (s *APIServer) handleDownloadUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	updateID := mux.Vars(r)["uuid"]

	info, err := s.checker.ResolveDownloadTarget(r.Context(), updateID, user.ID)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))

	counted := &countingWriter{w: w}
	if _, err := s.checker.CopyPackage(r.Context(), info, counted); err != nil {
		if counted.n == 0 {
			// Nothing committed yet, we can still answer properly.
			w.Header().Del("Content-Length")
			s.writeEngineError(w, err)

			return
		}

		// Bytes are already on the wire; all we can do is log and let
		// the device detect the truncation.
		s.log.Error().Err(err).Str("update_id", updateID).Msg("Package download failed mid-stream")
	}
}
