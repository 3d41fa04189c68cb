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

package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryIncrementAndValue(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, int64(0), r.Value("ping.v1.user-1"))

	r.Increment("ping.v1.user-1")
	r.Increment("ping.v1.user-1")
	r.Increment("ping.v2.user-1")

	assert.Equal(t, int64(2), r.Value("ping.v1.user-1"))
	assert.Equal(t, int64(1), r.Value("ping.v2.user-1"))
}

func TestRegistrySnapshot(t *testing.T) {
	r := NewRegistry()

	r.Increment("message.sent.device.success")
	r.Increment("message.sent.device.error")
	r.Increment("message.sent.device.error")

	snapshot := r.Snapshot()
	assert.Equal(t, map[string]int64{
		"message.sent.device.success": 1,
		"message.sent.device.error":   2,
	}, snapshot)
}

func TestRegistryConcurrentIncrements(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for j := 0; j < 100; j++ {
				r.Increment("concurrent")
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, int64(5000), r.Value("concurrent"))
}
