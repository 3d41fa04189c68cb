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
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fleetforge/devicegateway/pkg/models"
)

func strPtr(s string) *string {
	return &s
}

type resolverMocks struct {
	resolver *MockPackageResolver
	catalog  *MockVersionCatalog
	events   *MockEventPublisher
}

func newVersionResolverForTest(t *testing.T) (*VersionResolver, resolverMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := resolverMocks{
		resolver: NewMockPackageResolver(ctrl),
		catalog:  NewMockVersionCatalog(ctrl),
		events:   NewMockEventPublisher(ctrl),
	}

	return NewVersionResolver(m.resolver, m.catalog, m.events, zerolog.Nop()), m
}

func TestResolveVersionsClassifiesAllBuckets(t *testing.T) {
	engine, m := newVersionResolverForTest(t)

	request := &models.DeviceRequest{
		UserID: "user-1",
		UnitID: "unit-1",
		Packages: []models.Package{
			{Reference: "io.fleet.app", Version: strPtr("1.0.0")},
			{Reference: "io.fleet.agent", Version: strPtr("0.3.1")},
			{Reference: "io.fleet.legacy", Version: strPtr("2.0.0")},
		},
	}

	resolved := &models.ResolvedPackages{
		Present: []models.Package{
			{Reference: "io.fleet.app", Version: strPtr("1.1.0")},
			{Reference: "io.fleet.agent", Version: strPtr("0.3.1")},
			{Reference: "io.fleet.extra", Version: strPtr("4.0.0")},
		},
		Absent: []models.Package{
			{Reference: "io.fleet.legacy"},
			{Reference: "io.fleet.unknown"},
		},
	}

	m.resolver.EXPECT().ResolvePackages(gomock.Any(), request).Return(resolved, nil)
	m.catalog.EXPECT().GetVersion(gomock.Any(), "user-1", "io.fleet.app", "1.1.0").
		Return(&models.Version{Reference: "io.fleet.app", Version: "1.1.0", MD5: "abc", Size: 42}, nil)
	m.catalog.EXPECT().GetVersion(gomock.Any(), "user-1", "io.fleet.extra", "4.0.0").
		Return(&models.Version{Reference: "io.fleet.extra", Version: "4.0.0", MD5: "def", Size: 7}, nil)
	m.events.EXPECT().PublishDeviceResolution(gomock.Any())

	versions, err := engine.ResolveVersions(context.Background(), request)
	require.NoError(t, err)

	require.Len(t, versions.Available, 1)
	assert.Equal(t, "io.fleet.extra", versions.Available[0].Reference)
	assert.Equal(t, "def", versions.Available[0].MD5)

	require.Len(t, versions.Changed, 1)
	assert.Equal(t, "io.fleet.app", versions.Changed[0].Reference)
	assert.Equal(t, "1.1.0", versions.Changed[0].Version)

	require.Len(t, versions.Unchanged, 1)
	assert.Equal(t, "io.fleet.agent", versions.Unchanged[0].Reference)
	assert.Equal(t, "0.3.1", versions.Unchanged[0].Version)

	require.Len(t, versions.Unavailable, 1)
	assert.Equal(t, "io.fleet.legacy", versions.Unavailable[0].Reference)
}

func TestResolveVersionsEmptyRequest(t *testing.T) {
	engine, m := newVersionResolverForTest(t)

	request := &models.DeviceRequest{UserID: "user-1", UnitID: "unit-1"}

	m.resolver.EXPECT().ResolvePackages(gomock.Any(), request).
		Return(&models.ResolvedPackages{}, nil)
	m.events.EXPECT().PublishDeviceResolution(gomock.Any())

	versions, err := engine.ResolveVersions(context.Background(), request)
	require.NoError(t, err)

	assert.NotNil(t, versions.Available)
	assert.NotNil(t, versions.Changed)
	assert.NotNil(t, versions.Unchanged)
	assert.NotNil(t, versions.Unavailable)
	assert.Empty(t, versions.Available)
	assert.Empty(t, versions.Unavailable)
}

func TestResolveVersionsUnversionedDeviceGetsChanged(t *testing.T) {
	engine, m := newVersionResolverForTest(t)

	// The device carries the package without a pinned version; the
	// resolver pins one, so the device must change to it.
	request := &models.DeviceRequest{
		UserID:   "user-1",
		UnitID:   "unit-1",
		Packages: []models.Package{{Reference: "io.fleet.app"}},
	}

	m.resolver.EXPECT().ResolvePackages(gomock.Any(), request).Return(&models.ResolvedPackages{
		Present: []models.Package{{Reference: "io.fleet.app", Version: strPtr("1.0.0")}},
	}, nil)
	m.catalog.EXPECT().GetVersion(gomock.Any(), "user-1", "io.fleet.app", "1.0.0").
		Return(&models.Version{Reference: "io.fleet.app", Version: "1.0.0"}, nil)
	m.events.EXPECT().PublishDeviceResolution(gomock.Any())

	versions, err := engine.ResolveVersions(context.Background(), request)
	require.NoError(t, err)

	require.Len(t, versions.Changed, 1)
	assert.Empty(t, versions.Available)
	assert.Empty(t, versions.Unchanged)
}

func TestResolveVersionsUnpinnedPresentIsUnchangedForDeclared(t *testing.T) {
	engine, m := newVersionResolverForTest(t)

	// Resolver confirms the package belongs on the device but does not
	// pin a version: whatever the device runs stays as is.
	request := &models.DeviceRequest{
		UserID:   "user-1",
		UnitID:   "unit-1",
		Packages: []models.Package{{Reference: "io.fleet.app", Version: strPtr("1.0.0")}},
	}

	m.resolver.EXPECT().ResolvePackages(gomock.Any(), request).Return(&models.ResolvedPackages{
		Present: []models.Package{{Reference: "io.fleet.app"}},
	}, nil)
	m.events.EXPECT().PublishDeviceResolution(gomock.Any())

	versions, err := engine.ResolveVersions(context.Background(), request)
	require.NoError(t, err)

	require.Len(t, versions.Unchanged, 1)
	assert.Equal(t, "", versions.Unchanged[0].Version)
}

func TestResolveVersionsDropsUnversionedUnknownPackage(t *testing.T) {
	engine, m := newVersionResolverForTest(t)

	request := &models.DeviceRequest{UserID: "user-1", UnitID: "unit-1"}

	m.resolver.EXPECT().ResolvePackages(gomock.Any(), request).Return(&models.ResolvedPackages{
		Present: []models.Package{{Reference: "io.fleet.ghost"}},
	}, nil)
	m.events.EXPECT().PublishDeviceResolution(gomock.Any())

	versions, err := engine.ResolveVersions(context.Background(), request)
	require.NoError(t, err)

	assert.Empty(t, versions.Available)
	assert.Empty(t, versions.Changed)
	assert.Empty(t, versions.Unchanged)
	assert.Empty(t, versions.Unavailable)
}

func TestResolveVersionsResolverFailureAborts(t *testing.T) {
	engine, m := newVersionResolverForTest(t)

	request := &models.DeviceRequest{UserID: "user-1", UnitID: "unit-1"}
	resolverErr := errors.New("deployment service down")

	m.resolver.EXPECT().ResolvePackages(gomock.Any(), request).Return(nil, resolverErr)

	versions, err := engine.ResolveVersions(context.Background(), request)
	require.ErrorIs(t, err, resolverErr)
	assert.Nil(t, versions)
}

func TestResolveVersionsCatalogFailureAborts(t *testing.T) {
	engine, m := newVersionResolverForTest(t)

	request := &models.DeviceRequest{
		UserID:   "user-1",
		UnitID:   "unit-1",
		Packages: []models.Package{{Reference: "io.fleet.app", Version: strPtr("1.0.0")}},
	}

	catalogErr := errors.New("catalog down")

	m.resolver.EXPECT().ResolvePackages(gomock.Any(), request).Return(&models.ResolvedPackages{
		Present: []models.Package{{Reference: "io.fleet.app", Version: strPtr("2.0.0")}},
	}, nil)
	m.catalog.EXPECT().GetVersion(gomock.Any(), "user-1", "io.fleet.app", "2.0.0").
		Return(nil, catalogErr)

	versions, err := engine.ResolveVersions(context.Background(), request)
	require.ErrorIs(t, err, catalogErr)
	assert.Nil(t, versions)
}

func TestResolveVersionsPublishesRequestAndResponse(t *testing.T) {
	engine, m := newVersionResolverForTest(t)

	request := &models.DeviceRequest{
		UserID:   "user-1",
		UnitID:   "unit-1",
		Packages: []models.Package{{Reference: "io.fleet.legacy", Version: strPtr("2.0.0")}},
	}

	m.resolver.EXPECT().ResolvePackages(gomock.Any(), request).Return(&models.ResolvedPackages{
		Absent: []models.Package{{Reference: "io.fleet.legacy"}},
	}, nil)

	var published *models.DeviceEvent

	m.events.EXPECT().PublishDeviceResolution(gomock.Any()).Do(func(event *models.DeviceEvent) {
		published = event
	})

	versions, err := engine.ResolveVersions(context.Background(), request)
	require.NoError(t, err)

	require.NotNil(t, published)
	assert.Equal(t, "unit-1", published.Request.UnitID)
	assert.Equal(t, *versions, published.Response)
}
