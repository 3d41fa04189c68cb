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

// User is the principal resolved from a device API key by the
// authorization service.
type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Status string `json:"status,omitempty"`
}

// APIKey is the credential a device presents on every request.
type APIKey struct {
	Key string `json:"apiKey"`
}
