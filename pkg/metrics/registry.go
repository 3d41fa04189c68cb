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

// Package metrics holds the gateway's in-process request counters.
package metrics

import (
	"sync"
	"sync/atomic"
)

// Registry is a concurrency-safe counter registry.
type Registry struct {
	counters sync.Map // map[string]*atomic.Int64
}

// NewRegistry creates an empty counter registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Increment adds one to the named counter, creating it on first use.
func (r *Registry) Increment(name string) {
	value, _ := r.counters.LoadOrStore(name, &atomic.Int64{})
	value.(*atomic.Int64).Add(1)
}

// Value returns the current value of the named counter.
func (r *Registry) Value(name string) int64 {
	value, ok := r.counters.Load(name)
	if !ok {
		return 0
	}

	return value.(*atomic.Int64).Load()
}

// Snapshot copies all counters, for reporting endpoints and tests.
func (r *Registry) Snapshot() map[string]int64 {
	out := make(map[string]int64)

	r.counters.Range(func(key, value interface{}) bool {
		out[key.(string)] = value.(*atomic.Int64).Load()
		return true
	})

	return out
}
