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

//go:generate mockgen -destination=mock_metrics.go -package=metrics github.com/fleetforge/devicegateway/pkg/metrics Counter

// Counter is the sink for request counters. It is passed explicitly to
// the components that count; there is no ambient registry.
type Counter interface {
	Increment(name string)
	Value(name string) int64
}
