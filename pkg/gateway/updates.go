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
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/fleetforge/devicegateway/pkg/models"
)

// UpdateManager decides whether a device should be offered an update
// and mediates artifact downloads.
type UpdateManager struct {
	registry DeviceRegistry
	updates  UpdateService
	store    PackageStore
	catalog  VersionCatalog
	events   EventPublisher
	log      zerolog.Logger
}

// NewUpdateManager creates the eligibility engine.
func NewUpdateManager(
	registry DeviceRegistry,
	updates UpdateService,
	store PackageStore,
	catalog VersionCatalog,
	events EventPublisher,
	log zerolog.Logger,
) *UpdateManager {
	return &UpdateManager{
		registry: registry,
		updates:  updates,
		store:    store,
		catalog:  catalog,
		events:   events,
		log:      log,
	}
}

// CheckForUpdate registers the device sighting and decides whether a
// published update should be offered to it. Registration is a hard
// dependency; the device-seen event is best-effort.
func (m *UpdateManager) CheckForUpdate(ctx context.Context, info *models.DeviceInfo) (*models.DetailedUpdate, error) {
	m.events.PublishDeviceSeen(info)

	saved, err := m.registry.RegisterDevice(ctx, info)
	if err != nil {
		return nil, &GatewayError{Message: "device registration failed", Err: err}
	}

	return m.updateForDevice(ctx, saved)
}

// updateForDevice fetches the latest published update for the device's
// segment and gates it on ownership and on the device not already
// running the target version.
func (m *UpdateManager) updateForDevice(ctx context.Context, info *models.DeviceInfo) (*models.DetailedUpdate, error) {
	update, err := m.updates.LatestPublishedUpdate(ctx, info.UserID, info.SegmentID)
	if err != nil {
		return nil, err
	}

	if update == nil {
		return nil, ErrNoUpdateAvailable
	}

	packageInfo, err := m.ownedPackageInfo(ctx, update.PackageID, info.UserID)
	if err != nil {
		return nil, err
	}

	if packageInfo.VersionID == info.VersionID {
		// Device is already current; same terminal outcome as having
		// no update at all.
		return nil, ErrNoUpdateAvailable
	}

	return &models.DetailedUpdate{
		Update:      *update,
		PackageInfo: *packageInfo,
	}, nil
}

// ResolveDownloadTarget looks up the artifact behind a specific update
// id. Only published updates are servable to devices.
func (m *UpdateManager) ResolveDownloadTarget(ctx context.Context, updateID, userID string) (*models.PackageInfo, error) {
	update, err := m.updates.GetUpdate(ctx, updateID, userID)
	if err != nil {
		return nil, err
	}

	if update == nil {
		return nil, fmt.Errorf("%w: %s", ErrUpdateNotFound, updateID)
	}

	if update.Status != models.UpdateStatusPublished {
		return nil, fmt.Errorf("%w: %s is %s", ErrInvalidUpdateStatus, updateID, update.Status)
	}

	return m.ownedPackageInfo(ctx, update.PackageID, userID)
}

// CopyPackage streams the artifact to w. A transport failure is a hard
// fault; a short copy without one is logged and the expected size is
// returned to the caller.
func (m *UpdateManager) CopyPackage(ctx context.Context, info *models.PackageInfo, w io.Writer) (int64, error) {
	copied, err := m.store.StreamPackage(ctx, info, w)
	if err != nil {
		return 0, &PackageStreamError{PackageInfo: *info, Err: err}
	}

	if copied != info.Size {
		m.log.Error().
			Str("package_id", info.ID).
			Int64("expected", info.Size).
			Int64("copied", copied).
			Msg("Copied byte count does not match package size")
	}

	return info.Size, nil
}

// CopyVersion streams a catalog version file to w.
func (m *UpdateManager) CopyVersion(ctx context.Context, userID, reference, versionID string, w io.Writer) (int64, error) {
	return m.catalog.StreamVersionFile(ctx, userID, reference, versionID, w)
}

// ownedPackageInfo fetches a package descriptor and enforces that the
// caller owns it. Ownership violations are never reported as not-found.
func (m *UpdateManager) ownedPackageInfo(ctx context.Context, packageID, userID string) (*models.PackageInfo, error) {
	info, err := m.store.GetPackageInfo(ctx, packageID)
	if err != nil {
		return nil, err
	}

	if info.UserID != userID {
		return nil, &NotPackageOwnerError{PackageID: packageID, UserID: userID}
	}

	return info, nil
}
