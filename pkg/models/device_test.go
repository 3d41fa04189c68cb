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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func version(s string) *string {
	return &s
}

func TestPackageSameVersion(t *testing.T) {
	pinned := Package{Reference: "io.fleet.app", Version: version("1.0.0")}
	samePin := Package{Reference: "io.fleet.app", Version: version("1.0.0")}
	otherPin := Package{Reference: "io.fleet.app", Version: version("2.0.0")}
	unpinned := Package{Reference: "io.fleet.app"}

	assert.True(t, pinned.SameVersion(&samePin))
	assert.False(t, pinned.SameVersion(&otherPin))
	assert.False(t, pinned.SameVersion(&unpinned))
	assert.False(t, unpinned.SameVersion(&pinned))
	assert.True(t, unpinned.SameVersion(&Package{Reference: "io.fleet.app"}))
}

func TestPackagesByReferenceLastDeclarationWins(t *testing.T) {
	request := DeviceRequest{
		UnitID: "unit-1",
		Packages: []Package{
			{Reference: "io.fleet.app", Version: version("1.0.0")},
			{Reference: "io.fleet.agent", Version: version("0.3.1")},
			{Reference: "io.fleet.app", Version: version("2.0.0")},
		},
	}

	index := request.PackagesByReference()
	require.Len(t, index, 2)
	assert.Equal(t, "2.0.0", *index["io.fleet.app"].Version)
}

func TestVersionFromPackage(t *testing.T) {
	v := VersionFromPackage(Package{Reference: "io.fleet.app", Version: version("1.0.0")})
	assert.Equal(t, "io.fleet.app", v.Reference)
	assert.Equal(t, "1.0.0", v.Version)

	v = VersionFromPackage(Package{Reference: "io.fleet.app"})
	assert.Empty(t, v.Version)
}

func TestVersionWithURLDoesNotMutateReceiver(t *testing.T) {
	original := Version{Reference: "io.fleet.app", Version: "1.0.0"}
	enriched := original.WithURL("https://updates.example.com/file")

	assert.Empty(t, original.URL)
	assert.Equal(t, "https://updates.example.com/file", enriched.URL)
}
