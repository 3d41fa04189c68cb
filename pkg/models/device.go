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

// Package models defines the data types exchanged between devices, the
// gateway and its backend services.
package models

import (
	"time"
)

// Package is a software unit as declared by a device. A nil Version means
// the package is present but not pinned to a version.
type Package struct {
	Reference string  `json:"reference"`
	Version   *string `json:"version,omitempty"`
}

// HasVersion reports whether the package carries a pinned version.
func (p *Package) HasVersion() bool {
	return p.Version != nil
}

// VersionOrEmpty returns the pinned version or the empty string.
func (p *Package) VersionOrEmpty() string {
	if p.Version == nil {
		return ""
	}

	return *p.Version
}

// SameVersion compares the optional versions of two packages.
func (p *Package) SameVersion(other *Package) bool {
	if p.Version == nil || other.Version == nil {
		return p.Version == nil && other.Version == nil
	}

	return *p.Version == *other.Version
}

// ResolvedPackages is the deployment resolver's verdict for one device
// request: packages that should exist on the device and packages that
// should be removed. A reference is expected in at most one of the two
// lists; the gateway trusts the resolver on that.
type ResolvedPackages struct {
	Present []Package `json:"present"`
	Absent  []Package `json:"absent"`
}

// DeviceRequest is one version-check transaction. UserID, IPAddress and
// UserAgent are attached by the HTTP boundary, never read from the wire.
type DeviceRequest struct {
	UserID           string                 `json:"userId,omitempty"`
	UnitID           string                 `json:"unitId" validate:"required,printascii"`
	CustomClientData map[string]interface{} `json:"customClientData,omitempty"`
	Packages         []Package              `json:"packages"`
	IPAddress        string                 `json:"ipAddress,omitempty"`
	UserAgent        string                 `json:"userAgent,omitempty"`
}

// PackagesByReference indexes the device's declared packages by reference.
// On duplicate references the last declaration wins.
func (r *DeviceRequest) PackagesByReference() map[string]Package {
	index := make(map[string]Package, len(r.Packages))
	for _, pkg := range r.Packages {
		index[pkg.Reference] = pkg
	}

	return index
}

// DeviceInfo is the device snapshot sent to the device registry. The
// registry may return an augmented copy, typically with SegmentID set.
type DeviceInfo struct {
	UnitID               string                 `json:"unitId"`
	UserID               string                 `json:"userId,omitempty"`
	SegmentID            string                 `json:"segmentId,omitempty"`
	VersionID            string                 `json:"versionId"`
	ReceptionDate        time.Time              `json:"receptionDate"`
	DeviceIP             string                 `json:"deviceIP,omitempty"`
	UserAgent            string                 `json:"userAgent,omitempty"`
	AdditionalProperties map[string]interface{} `json:"additionalProperties,omitempty"`
}
