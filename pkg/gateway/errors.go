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

package gateway

import (
	"errors"
	"fmt"

	"github.com/fleetforge/devicegateway/pkg/models"
)

var (
	// ErrNoUpdateAvailable means there is no published update for the
	// device, or the device already runs the target version. It is an
	// answer, not a system failure.
	ErrNoUpdateAvailable = errors.New("no update available")

	// ErrUpdateNotFound means a device asked for a specific update the
	// update service does not know for that user.
	ErrUpdateNotFound = errors.New("update not found")

	// ErrInvalidUpdateStatus means the requested update exists but is
	// not published, so it must not be served to devices.
	ErrInvalidUpdateStatus = errors.New("invalid update status")
)

// NotPackageOwnerError signals that the authenticated user does not own
// the package it tried to reach. Never downgraded to a not-found.
type NotPackageOwnerError struct {
	PackageID string
	UserID    string
}

func (e *NotPackageOwnerError) Error() string {
	return fmt.Sprintf("user %s is not the owner of package %s", e.UserID, e.PackageID)
}

// GatewayError wraps a hard backend failure with gateway context.
type GatewayError struct {
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	if e.Err == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// PackageStreamError wraps a transport failure while streaming a
// package, keeping the artifact descriptor for diagnostics.
type PackageStreamError struct {
	PackageInfo models.PackageInfo
	Err         error
}

func (e *PackageStreamError) Error() string {
	return fmt.Sprintf("streaming package %s failed: %v", e.PackageInfo.ID, e.Err)
}

func (e *PackageStreamError) Unwrap() error {
	return e.Err
}
