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

//go:generate mockgen -destination=mock_api.go -package=api github.com/fleetforge/devicegateway/pkg/gateway/api Authenticator,UpdateChecker,VersionResolver

package api

import (
	"context"
	"io"

	"github.com/fleetforge/devicegateway/pkg/models"
)

// Authenticator exchanges a device API key for the user owning it.
type Authenticator interface {
	AuthenticateAPIKey(ctx context.Context, apiKey string) (*models.User, error)
}

// UpdateChecker is the update-eligibility engine as seen by the HTTP
// boundary.
type UpdateChecker interface {
	CheckForUpdate(ctx context.Context, info *models.DeviceInfo) (*models.DetailedUpdate, error)
	ResolveDownloadTarget(ctx context.Context, updateID, userID string) (*models.PackageInfo, error)
	CopyPackage(ctx context.Context, info *models.PackageInfo, w io.Writer) (int64, error)
	CopyVersion(ctx context.Context, userID, reference, versionID string, w io.Writer) (int64, error)
}

// VersionResolver is the version-reconciliation engine as seen by the
// HTTP boundary.
type VersionResolver interface {
	ResolveVersions(ctx context.Context, request *models.DeviceRequest) (*models.ResolvedVersions, error)
}
