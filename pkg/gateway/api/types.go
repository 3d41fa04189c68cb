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

// deviceRequestEntity is the wire form of an update check. VersionID is
// the version the device is currently running.
type deviceRequestEntity struct {
	UnitID           string                 `json:"unitId" validate:"required,printascii"`
	VersionID        string                 `json:"versionId" validate:"required,printascii"`
	CustomClientData map[string]interface{} `json:"customClientData,omitempty"`
}

// devicePackageInfo points a device at a downloadable artifact.
type devicePackageInfo struct {
	URL  string `json:"url"`
	MD5  string `json:"md5"`
	Size int64  `json:"size"`
}

// deviceUpdate is the positive answer to an update check.
type deviceUpdate struct {
	VersionID        string                 `json:"versionId"`
	PackageInfo      devicePackageInfo      `json:"packageInfo"`
	CustomUpdateData map[string]interface{} `json:"customUpdateData,omitempty"`
}
