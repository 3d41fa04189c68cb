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

package natsutil

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetforge/devicegateway/pkg/metrics"
	"github.com/fleetforge/devicegateway/pkg/models"
)

type fakeJetStream struct {
	mu       sync.Mutex
	messages map[string][][]byte
	err      error
}

func newFakeJetStream() *fakeJetStream {
	return &fakeJetStream{messages: make(map[string][][]byte)}
}

func (f *fakeJetStream) Publish(_ context.Context, subject string, payload []byte, _ ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}

	f.messages[subject] = append(f.messages[subject], payload)

	return &jetstream.PubAck{Stream: "events"}, nil
}

func (f *fakeJetStream) published(subject string) [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.messages[subject]
}

func TestEventPublisherPublishesDeviceSeen(t *testing.T) {
	js := newFakeJetStream()
	counters := metrics.NewRegistry()
	publisher := newEventPublisher(js, 16, counters, zerolog.Nop())

	publisher.PublishDeviceSeen(&models.DeviceInfo{UnitID: "unit-1", UserID: "user-1", VersionID: "v1"})
	publisher.Close()

	messages := js.published("events.device.ping")
	require.Len(t, messages, 1)

	var event models.CloudEvent

	require.NoError(t, json.Unmarshal(messages[0], &event))
	assert.Equal(t, "1.0", event.SpecVersion)
	assert.Equal(t, "com.fleetforge.devicegateway.device.ping", event.Type)
	assert.Equal(t, "fleetforge/devicegateway", event.Source)
	assert.NotEmpty(t, event.ID)
	assert.NotNil(t, event.Time)

	assert.Equal(t, int64(1), counters.Value("message.sent.device.success"))
}

func TestEventPublisherPublishesResolution(t *testing.T) {
	js := newFakeJetStream()
	publisher := newEventPublisher(js, 16, metrics.NewRegistry(), zerolog.Nop())

	publisher.PublishDeviceResolution(&models.DeviceEvent{
		Request:  models.DeviceRequest{UnitID: "unit-1"},
		Response: models.ResolvedVersions{},
	})
	publisher.Close()

	require.Len(t, js.published("events.device.resolve"), 1)
}

func TestEventPublisherSwallowsBrokerFailure(t *testing.T) {
	js := newFakeJetStream()
	js.err = errors.New("broker down")

	counters := metrics.NewRegistry()
	publisher := newEventPublisher(js, 16, counters, zerolog.Nop())

	// Must not panic or block even though every publish fails.
	publisher.PublishDeviceSeen(&models.DeviceInfo{UnitID: "unit-1"})
	publisher.PublishDeviceSeen(&models.DeviceInfo{UnitID: "unit-2"})
	publisher.Close()

	assert.Equal(t, int64(2), counters.Value("message.sent.device.error"))
	assert.Equal(t, int64(0), counters.Value("message.sent.device.success"))
}

func TestEventPublisherEnqueueAfterCloseIsHarmless(t *testing.T) {
	js := newFakeJetStream()
	counters := metrics.NewRegistry()
	publisher := newEventPublisher(js, 16, counters, zerolog.Nop())

	publisher.Close()

	assert.NotPanics(t, func() {
		publisher.PublishDeviceSeen(&models.DeviceInfo{UnitID: "unit-1"})
	})
	assert.Equal(t, int64(1), counters.Value("message.sent.device.error"))
}

func TestEventPublisherCloseIsIdempotent(t *testing.T) {
	publisher := newEventPublisher(newFakeJetStream(), 16, nil, zerolog.Nop())

	publisher.Close()
	assert.NotPanics(t, publisher.Close)
}
