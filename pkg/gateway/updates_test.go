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
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fleetforge/devicegateway/pkg/models"
)

type updateMocks struct {
	registry *MockDeviceRegistry
	updates  *MockUpdateService
	store    *MockPackageStore
	catalog  *MockVersionCatalog
	events   *MockEventPublisher
}

func newUpdateManagerForTest(t *testing.T) (*UpdateManager, updateMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := updateMocks{
		registry: NewMockDeviceRegistry(ctrl),
		updates:  NewMockUpdateService(ctrl),
		store:    NewMockPackageStore(ctrl),
		catalog:  NewMockVersionCatalog(ctrl),
		events:   NewMockEventPublisher(ctrl),
	}

	manager := NewUpdateManager(m.registry, m.updates, m.store, m.catalog, m.events, zerolog.Nop())

	return manager, m
}

func deviceInfo() *models.DeviceInfo {
	return &models.DeviceInfo{
		UnitID:    "unit-1",
		UserID:    "user-1",
		VersionID: "v1",
	}
}

func TestCheckForUpdateOffersUpdate(t *testing.T) {
	manager, m := newUpdateManagerForTest(t)

	info := deviceInfo()
	segmented := &models.DeviceInfo{UnitID: "unit-1", UserID: "user-1", VersionID: "v1", SegmentID: "seg-1"}
	update := &models.Update{UUID: "u-1", UserID: "user-1", PackageID: "pkg-1", Status: models.UpdateStatusPublished}

	m.events.EXPECT().PublishDeviceSeen(info)
	m.registry.EXPECT().RegisterDevice(gomock.Any(), info).Return(segmented, nil)
	m.updates.EXPECT().LatestPublishedUpdate(gomock.Any(), "user-1", "seg-1").Return(update, nil)
	m.store.EXPECT().GetPackageInfo(gomock.Any(), "pkg-1").
		Return(&models.PackageInfo{ID: "pkg-1", UserID: "user-1", VersionID: "v2", MD5: "abc", Size: 100}, nil)

	detailed, err := manager.CheckForUpdate(context.Background(), info)
	require.NoError(t, err)

	assert.Equal(t, "u-1", detailed.Update.UUID)
	assert.Equal(t, "v2", detailed.PackageInfo.VersionID)
}

func TestCheckForUpdateRegistrationFailureIsTerminal(t *testing.T) {
	manager, m := newUpdateManagerForTest(t)

	info := deviceInfo()
	registryErr := errors.New("registry down")

	m.events.EXPECT().PublishDeviceSeen(info)
	m.registry.EXPECT().RegisterDevice(gomock.Any(), info).Return(nil, registryErr)

	detailed, err := manager.CheckForUpdate(context.Background(), info)
	require.Error(t, err)
	assert.Nil(t, detailed)

	var gatewayErr *GatewayError

	require.ErrorAs(t, err, &gatewayErr)
	assert.ErrorIs(t, err, registryErr)
}

func TestCheckForUpdateNoPublishedUpdate(t *testing.T) {
	manager, m := newUpdateManagerForTest(t)

	info := deviceInfo()

	m.events.EXPECT().PublishDeviceSeen(info)
	m.registry.EXPECT().RegisterDevice(gomock.Any(), info).Return(info, nil)
	m.updates.EXPECT().LatestPublishedUpdate(gomock.Any(), "user-1", "").Return(nil, nil)

	_, err := manager.CheckForUpdate(context.Background(), info)
	assert.ErrorIs(t, err, ErrNoUpdateAvailable)
}

func TestCheckForUpdateDeviceAlreadyCurrent(t *testing.T) {
	manager, m := newUpdateManagerForTest(t)

	info := deviceInfo()
	update := &models.Update{UUID: "u-1", UserID: "user-1", PackageID: "pkg-1", Status: models.UpdateStatusPublished}

	m.events.EXPECT().PublishDeviceSeen(info)
	m.registry.EXPECT().RegisterDevice(gomock.Any(), info).Return(info, nil)
	m.updates.EXPECT().LatestPublishedUpdate(gomock.Any(), "user-1", "").Return(update, nil)
	m.store.EXPECT().GetPackageInfo(gomock.Any(), "pkg-1").
		Return(&models.PackageInfo{ID: "pkg-1", UserID: "user-1", VersionID: "v1"}, nil)

	_, err := manager.CheckForUpdate(context.Background(), info)
	assert.ErrorIs(t, err, ErrNoUpdateAvailable)
}

func TestCheckForUpdateForeignPackageIsForbidden(t *testing.T) {
	manager, m := newUpdateManagerForTest(t)

	info := deviceInfo()
	update := &models.Update{UUID: "u-1", UserID: "user-1", PackageID: "pkg-1", Status: models.UpdateStatusPublished}

	m.events.EXPECT().PublishDeviceSeen(info)
	m.registry.EXPECT().RegisterDevice(gomock.Any(), info).Return(info, nil)
	m.updates.EXPECT().LatestPublishedUpdate(gomock.Any(), "user-1", "").Return(update, nil)
	m.store.EXPECT().GetPackageInfo(gomock.Any(), "pkg-1").
		Return(&models.PackageInfo{ID: "pkg-1", UserID: "someone-else", VersionID: "v2"}, nil)

	_, err := manager.CheckForUpdate(context.Background(), info)

	var notOwner *NotPackageOwnerError

	require.ErrorAs(t, err, &notOwner)
	assert.Equal(t, "pkg-1", notOwner.PackageID)
	assert.Equal(t, "user-1", notOwner.UserID)
}

func TestResolveDownloadTargetHappyPath(t *testing.T) {
	manager, m := newUpdateManagerForTest(t)

	update := &models.Update{UUID: "u-1", UserID: "user-1", PackageID: "pkg-1", Status: models.UpdateStatusPublished}

	m.updates.EXPECT().GetUpdate(gomock.Any(), "u-1", "user-1").Return(update, nil)
	m.store.EXPECT().GetPackageInfo(gomock.Any(), "pkg-1").
		Return(&models.PackageInfo{ID: "pkg-1", UserID: "user-1", VersionID: "v2", Size: 10}, nil)

	info, err := manager.ResolveDownloadTarget(context.Background(), "u-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, "pkg-1", info.ID)
}

func TestResolveDownloadTargetUnknownUpdate(t *testing.T) {
	manager, m := newUpdateManagerForTest(t)

	m.updates.EXPECT().GetUpdate(gomock.Any(), "missing", "user-1").Return(nil, nil)

	_, err := manager.ResolveDownloadTarget(context.Background(), "missing", "user-1")
	assert.ErrorIs(t, err, ErrUpdateNotFound)
}

func TestResolveDownloadTargetUnpublishedUpdate(t *testing.T) {
	manager, m := newUpdateManagerForTest(t)

	for _, status := range []models.UpdateStatus{models.UpdateStatusDraft, models.UpdateStatusArchived} {
		update := &models.Update{UUID: "u-1", UserID: "user-1", PackageID: "pkg-1", Status: status}
		m.updates.EXPECT().GetUpdate(gomock.Any(), "u-1", "user-1").Return(update, nil)

		_, err := manager.ResolveDownloadTarget(context.Background(), "u-1", "user-1")
		assert.ErrorIs(t, err, ErrInvalidUpdateStatus, "status %s", status)
	}
}

func TestCopyPackageReturnsExpectedSizeOnShortCopy(t *testing.T) {
	manager, m := newUpdateManagerForTest(t)

	info := &models.PackageInfo{ID: "pkg-1", UserID: "user-1", Size: 100}
	buf := &bytes.Buffer{}

	m.store.EXPECT().StreamPackage(gomock.Any(), info, buf).
		DoAndReturn(func(_ context.Context, _ *models.PackageInfo, w io.Writer) (int64, error) {
			n, _ := w.Write([]byte("short"))
			return int64(n), nil
		})

	copied, err := manager.CopyPackage(context.Background(), info, buf)
	require.NoError(t, err)
	assert.Equal(t, int64(100), copied)
	assert.Equal(t, "short", buf.String())
}

func TestCopyPackageStreamFailure(t *testing.T) {
	manager, m := newUpdateManagerForTest(t)

	info := &models.PackageInfo{ID: "pkg-1", UserID: "user-1", Size: 100}
	streamErr := errors.New("connection reset")

	m.store.EXPECT().StreamPackage(gomock.Any(), info, gomock.Any()).Return(int64(0), streamErr)

	_, err := manager.CopyPackage(context.Background(), info, &bytes.Buffer{})

	var streamFault *PackageStreamError

	require.ErrorAs(t, err, &streamFault)
	assert.Equal(t, "pkg-1", streamFault.PackageInfo.ID)
	assert.ErrorIs(t, err, streamErr)
}

func TestCopyVersionDelegatesToCatalog(t *testing.T) {
	manager, m := newUpdateManagerForTest(t)

	buf := &bytes.Buffer{}

	m.catalog.EXPECT().StreamVersionFile(gomock.Any(), "user-1", "io.fleet.app", "1.0.0", buf).
		Return(int64(12), nil)

	copied, err := manager.CopyVersion(context.Background(), "user-1", "io.fleet.app", "1.0.0", buf)
	require.NoError(t, err)
	assert.Equal(t, int64(12), copied)
}
