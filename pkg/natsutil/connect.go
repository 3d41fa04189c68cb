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
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog"

	"github.com/fleetforge/devicegateway/pkg/metrics"
	"github.com/fleetforge/devicegateway/pkg/models"
)

// ConnectWithEventPublisher connects to NATS, ensures the analytics
// stream exists and returns a running EventPublisher. The returned
// connection must be closed by the caller after the publisher.
func ConnectWithEventPublisher(
	ctx context.Context,
	natsConfig models.NATSConfig,
	eventsConfig models.EventsConfig,
	counter metrics.Counter,
	log zerolog.Logger,
) (*EventPublisher, *nats.Conn, error) {
	nc, err := nats.Connect(natsConfig.URL,
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			log.Error().Err(err).Msg("NATS error")
		}),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	if _, err := js.Stream(ctx, eventsConfig.StreamName); err != nil {
		streamConfig := jetstream.StreamConfig{
			Name:     eventsConfig.StreamName,
			Subjects: eventsConfig.Subjects,
		}

		if _, err := js.CreateOrUpdateStream(ctx, streamConfig); err != nil {
			nc.Close()
			return nil, nil, fmt.Errorf("failed to create or get stream %s: %w", eventsConfig.StreamName, err)
		}
	}

	return NewEventPublisher(js, eventsConfig.QueueSize, counter, log), nc, nil
}

// NoopPublisher satisfies the gateway's publisher interfaces when event
// publishing is disabled.
type NoopPublisher struct{}

func (NoopPublisher) PublishDeviceSeen(*models.DeviceInfo)        {}
func (NoopPublisher) PublishDeviceResolution(*models.DeviceEvent) {}
func (NoopPublisher) Close()                                      {}
