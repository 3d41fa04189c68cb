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
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownUpdateStatus is returned when a status name is not one of
// draft, published or archived.
var ErrUnknownUpdateStatus = errors.New("unknown update status")

// UpdateStatus is the lifecycle state of an update.
type UpdateStatus string

const (
	UpdateStatusDraft     UpdateStatus = "draft"
	UpdateStatusPublished UpdateStatus = "published"
	UpdateStatusArchived  UpdateStatus = "archived"
)

// CompatibleStatuses lists the legal next states for the status.
// A draft cannot be archived directly, it must be published first.
func (s UpdateStatus) CompatibleStatuses() []UpdateStatus {
	switch s {
	case UpdateStatusDraft:
		return []UpdateStatus{UpdateStatusDraft, UpdateStatusPublished}
	case UpdateStatusPublished:
		return []UpdateStatus{UpdateStatusArchived}
	case UpdateStatusArchived:
		return []UpdateStatus{UpdateStatusPublished}
	default:
		return nil
	}
}

// IsCompatibleWith reports whether target is a legal next state.
func (s UpdateStatus) IsCompatibleWith(target UpdateStatus) bool {
	for _, status := range s.CompatibleStatuses() {
		if status == target {
			return true
		}
	}

	return false
}

// UpdateStatusFromName resolves a wire-level status name.
func UpdateStatusFromName(name string) (UpdateStatus, error) {
	switch UpdateStatus(name) {
	case UpdateStatusDraft, UpdateStatusPublished, UpdateStatusArchived:
		return UpdateStatus(name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownUpdateStatus, name)
	}
}

// UnmarshalJSON rejects status names the gateway does not know about.
func (s *UpdateStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}

	status, err := UpdateStatusFromName(name)
	if err != nil {
		return err
	}

	*s = status

	return nil
}

// Update is a publishable unit linking a segment-targeting policy to a
// package. The gateway only reads updates; transitions happen in the
// update management service.
type Update struct {
	UUID                 string                 `json:"uuid"`
	UserID               string                 `json:"userId"`
	PackageID            string                 `json:"packageId"`
	Status               UpdateStatus           `json:"status"`
	AdditionalProperties map[string]interface{} `json:"additionalProperties,omitempty"`
}

// PackageInfo is a concrete downloadable artifact held by the package
// store.
type PackageInfo struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	VersionID string `json:"versionId"`
	MD5       string `json:"md5"`
	Size      int64  `json:"size"`
}

// DetailedUpdate bundles an update with the artifact it delivers.
type DetailedUpdate struct {
	Update      Update      `json:"update"`
	PackageInfo PackageInfo `json:"packageInfo"`
}
