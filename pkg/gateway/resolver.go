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

// Package gateway holds the two decision engines of the device gateway:
// version reconciliation and update eligibility. Both are stateless;
// every call is a pure function of the device snapshot and the backend
// answers it triggers.
package gateway

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/fleetforge/devicegateway/pkg/models"
)

// VersionResolver reconciles a device's declared package set with the
// deployment resolver's verdict into the four version buckets.
type VersionResolver struct {
	resolver PackageResolver
	catalog  VersionCatalog
	events   EventPublisher
	log      zerolog.Logger
}

// NewVersionResolver creates the reconciliation engine.
func NewVersionResolver(resolver PackageResolver, catalog VersionCatalog, events EventPublisher, log zerolog.Logger) *VersionResolver {
	return &VersionResolver{
		resolver: resolver,
		catalog:  catalog,
		events:   events,
		log:      log,
	}
}

// ResolveVersions asks the deployment resolver for its verdict,
// classifies every package it mentions, and publishes the
// request/response pair for analytics. A catalog failure aborts the
// whole reconciliation; there are no partial results.
func (r *VersionResolver) ResolveVersions(ctx context.Context, request *models.DeviceRequest) (*models.ResolvedVersions, error) {
	resolved, err := r.resolver.ResolvePackages(ctx, request)
	if err != nil {
		return nil, err
	}

	versions, err := r.buildResolvedVersions(ctx, request, resolved)
	if err != nil {
		return nil, err
	}

	r.events.PublishDeviceResolution(&models.DeviceEvent{
		Request:  *request,
		Response: *versions,
	})

	return versions, nil
}

// buildResolvedVersions classifies each package the resolver mentioned
// into exactly one bucket, or none:
//
//	present, versioned, not declared        -> available (catalog-enriched)
//	present, versioned, declared, differs   -> changed   (catalog-enriched)
//	present, declared, same or no version   -> unchanged
//	present, unversioned, not declared      -> dropped
//	absent, declared                        -> unavailable
//	absent, not declared                    -> dropped
//
// Bucket order follows the resolver's present/absent list order.
func (r *VersionResolver) buildResolvedVersions(
	ctx context.Context,
	request *models.DeviceRequest,
	resolved *models.ResolvedPackages,
) (*models.ResolvedVersions, error) {
	declared := request.PackagesByReference()

	out := &models.ResolvedVersions{
		Available:   []models.Version{},
		Changed:     []models.Version{},
		Unchanged:   []models.Version{},
		Unavailable: []models.Version{},
	}

	for _, pkg := range resolved.Present {
		devicePkg, isDeclared := declared[pkg.Reference]

		switch {
		case !isDeclared && pkg.HasVersion():
			version, err := r.catalog.GetVersion(ctx, request.UserID, pkg.Reference, *pkg.Version)
			if err != nil {
				return nil, err
			}

			out.Available = append(out.Available, *version)

		case isDeclared && pkg.HasVersion() && !pkg.SameVersion(&devicePkg):
			version, err := r.catalog.GetVersion(ctx, request.UserID, pkg.Reference, *pkg.Version)
			if err != nil {
				return nil, err
			}

			out.Changed = append(out.Changed, *version)

		case isDeclared:
			// Device already has it, either at the target version or
			// with no target version pinned by the resolver.
			out.Unchanged = append(out.Unchanged, models.VersionFromPackage(pkg))

		default:
			// Present without a target version for a device that does
			// not have it: nothing to offer.
			r.log.Debug().
				Str("reference", pkg.Reference).
				Msg("Dropping unversioned present package unknown to device")
		}
	}

	for _, pkg := range resolved.Absent {
		if _, isDeclared := declared[pkg.Reference]; isDeclared {
			out.Unavailable = append(out.Unavailable, models.VersionFromPackage(pkg))
		}
	}

	return out, nil
}
