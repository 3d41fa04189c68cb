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

// Version is an enriched package-version record returned to a device.
// URL is filled in by the HTTP boundary; the remaining metadata comes
// from the component catalog when the device actually needs to download
// the artifact.
type Version struct {
	Reference        string                 `json:"reference"`
	Version          string                 `json:"version,omitempty"`
	URL              string                 `json:"url,omitempty"`
	MD5              string                 `json:"md5,omitempty"`
	Size             int64                  `json:"size,omitempty"`
	Filename         string                 `json:"filename,omitempty"`
	CustomUpdateData map[string]interface{} `json:"customUpdateData,omitempty"`
}

// VersionFromPackage is the cheap projection used when no catalog
// enrichment is needed: only the identity travels back to the device.
func VersionFromPackage(pkg Package) Version {
	return Version{
		Reference: pkg.Reference,
		Version:   pkg.VersionOrEmpty(),
	}
}

// WithURL returns a copy of the version with the download URL set.
func (v Version) WithURL(url string) Version {
	v.URL = url
	return v
}

// ResolvedVersions is the reconciliation result: four disjoint buckets of
// versions, keyed by what the device must do about each package.
type ResolvedVersions struct {
	Available   []Version `json:"available"`
	Changed     []Version `json:"changed"`
	Unchanged   []Version `json:"unchanged"`
	Unavailable []Version `json:"unavailable"`
}
