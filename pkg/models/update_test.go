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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateStatusFromName(t *testing.T) {
	for _, name := range []string{"draft", "published", "archived"} {
		status, err := UpdateStatusFromName(name)
		require.NoError(t, err)
		assert.Equal(t, UpdateStatus(name), status)
	}

	_, err := UpdateStatusFromName("frozen")
	assert.ErrorIs(t, err, ErrUnknownUpdateStatus)
}

func TestUpdateStatusTransitions(t *testing.T) {
	assert.True(t, UpdateStatusDraft.IsCompatibleWith(UpdateStatusDraft))
	assert.True(t, UpdateStatusDraft.IsCompatibleWith(UpdateStatusPublished))
	assert.False(t, UpdateStatusDraft.IsCompatibleWith(UpdateStatusArchived))

	assert.True(t, UpdateStatusPublished.IsCompatibleWith(UpdateStatusArchived))
	assert.False(t, UpdateStatusPublished.IsCompatibleWith(UpdateStatusDraft))
	assert.False(t, UpdateStatusPublished.IsCompatibleWith(UpdateStatusPublished))

	assert.True(t, UpdateStatusArchived.IsCompatibleWith(UpdateStatusPublished))
	assert.False(t, UpdateStatusArchived.IsCompatibleWith(UpdateStatusDraft))
}

func TestUpdateStatusUnmarshalRejectsUnknown(t *testing.T) {
	var update Update

	err := json.Unmarshal([]byte(`{"uuid":"u-1","status":"frozen"}`), &update)
	assert.ErrorIs(t, err, ErrUnknownUpdateStatus)

	require.NoError(t, json.Unmarshal([]byte(`{"uuid":"u-1","status":"published"}`), &update))
	assert.Equal(t, UpdateStatusPublished, update.Status)
}
