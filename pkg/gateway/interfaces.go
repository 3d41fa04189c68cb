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

//go:generate mockgen -destination=mock_gateway.go -package=gateway github.com/fleetforge/devicegateway/pkg/gateway PackageResolver,VersionCatalog,DeviceRegistry,UpdateService,PackageStore,EventPublisher

package gateway

import (
	"context"
	"io"

	"github.com/fleetforge/devicegateway/pkg/models"
)

// PackageResolver is the deployment resolver's verdict on a device's
// declared package set.
type PackageResolver interface {
	ResolvePackages(ctx context.Context, request *models.DeviceRequest) (*models.ResolvedPackages, error)
}

// VersionCatalog serves enriched version metadata and version files.
type VersionCatalog interface {
	GetVersion(ctx context.Context, userID, reference, version string) (*models.Version, error)
	StreamVersionFile(ctx context.Context, userID, reference, version string, w io.Writer) (int64, error)
}

// DeviceRegistry records device sightings and assigns segments.
type DeviceRegistry interface {
	RegisterDevice(ctx context.Context, info *models.DeviceInfo) (*models.DeviceInfo, error)
}

// UpdateService reads updates. Lookups return (nil, nil) when nothing
// matches.
type UpdateService interface {
	LatestPublishedUpdate(ctx context.Context, userID, segmentID string) (*models.Update, error)
	GetUpdate(ctx context.Context, uuid, userID string) (*models.Update, error)
}

// PackageStore serves artifact descriptors and artifact bytes.
type PackageStore interface {
	GetPackageInfo(ctx context.Context, id string) (*models.PackageInfo, error)
	StreamPackage(ctx context.Context, info *models.PackageInfo, w io.Writer) (int64, error)
}

// EventPublisher is the fire-and-forget analytics sink. Implementations
// must never block the caller and must swallow their own failures.
type EventPublisher interface {
	PublishDeviceSeen(info *models.DeviceInfo)
	PublishDeviceResolution(event *models.DeviceEvent)
}
