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

// Package natsutil publishes the gateway's analytics events to NATS
// JetStream. Publication is fire-and-forget: events are enqueued into a
// bounded channel drained by a worker goroutine, and every failure is
// logged and counted but never surfaced to the request path.
package natsutil

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog"

	"github.com/fleetforge/devicegateway/pkg/metrics"
	"github.com/fleetforge/devicegateway/pkg/models"
)

const (
	eventSource = "fleetforge/devicegateway"

	subjectDevicePing    = "events.device.ping"
	subjectDeviceResolve = "events.device.resolve"

	typeDevicePing    = "com.fleetforge.devicegateway.device.ping"
	typeDeviceResolve = "com.fleetforge.devicegateway.device.resolve"

	counterPublishSuccess = "message.sent.device.success"
	counterPublishError   = "message.sent.device.error"

	publishTimeout = 5 * time.Second
)

// jsPublisher is the slice of jetstream.JetStream the publisher needs.
type jsPublisher interface {
	Publish(ctx context.Context, subject string, payload []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
}

// EventPublisher sends device analytics events to a JetStream stream.
type EventPublisher struct {
	js      jsPublisher
	queue   chan *models.CloudEvent
	counter metrics.Counter
	log     zerolog.Logger

	closeOnce sync.Once
	done      chan struct{}
}

// NewEventPublisher creates a publisher draining into js and starts its
// worker. Call Close to drain and stop it.
func NewEventPublisher(js jetstream.JetStream, queueSize int, counter metrics.Counter, log zerolog.Logger) *EventPublisher {
	return newEventPublisher(js, queueSize, counter, log)
}

func newEventPublisher(js jsPublisher, queueSize int, counter metrics.Counter, log zerolog.Logger) *EventPublisher {
	if queueSize <= 0 {
		queueSize = 1024
	}

	p := &EventPublisher{
		js:      js,
		queue:   make(chan *models.CloudEvent, queueSize),
		counter: counter,
		log:     log,
		done:    make(chan struct{}),
	}

	go p.run()

	return p
}

// PublishDeviceSeen enqueues a device-seen event for the analytics
// pipeline. It never blocks and never fails the caller.
func (p *EventPublisher) PublishDeviceSeen(info *models.DeviceInfo) {
	p.enqueue(newCloudEvent(typeDevicePing, subjectDevicePing, info))
}

// PublishDeviceResolution enqueues the request/response pair of one
// resolve transaction.
func (p *EventPublisher) PublishDeviceResolution(event *models.DeviceEvent) {
	p.enqueue(newCloudEvent(typeDeviceResolve, subjectDeviceResolve, event))
}

// Close stops accepting events, drains the queue and waits for the
// worker to finish.
func (p *EventPublisher) Close() {
	p.closeOnce.Do(func() {
		close(p.queue)
	})

	<-p.done
}

func (p *EventPublisher) enqueue(event *models.CloudEvent) {
	defer func() {
		// Enqueueing after Close is a harmless race during shutdown.
		if recover() != nil {
			p.countError()
		}
	}()

	select {
	case p.queue <- event:
	default:
		p.log.Error().
			Str("subject", event.Subject).
			Msg("Event queue full, dropping analytics event")
		p.countError()
	}
}

func (p *EventPublisher) run() {
	defer close(p.done)

	for event := range p.queue {
		p.publish(event)
	}
}

func (p *EventPublisher) publish(event *models.CloudEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.log.Error().Err(err).Str("subject", event.Subject).Msg("Failed to marshal analytics event")
		p.countError()

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if _, err := p.js.Publish(ctx, event.Subject, payload); err != nil {
		p.log.Error().Err(err).
			Str("subject", event.Subject).
			Msg("The message cannot be sent to NATS. It is possible that the broker is not running")
		p.countError()

		return
	}

	p.countSuccess()
}

func (p *EventPublisher) countSuccess() {
	if p.counter != nil {
		p.counter.Increment(counterPublishSuccess)
	}
}

func (p *EventPublisher) countError() {
	if p.counter != nil {
		p.counter.Increment(counterPublishError)
	}
}

func newCloudEvent(eventType, subject string, data interface{}) *models.CloudEvent {
	now := time.Now().UTC()

	return &models.CloudEvent{
		SpecVersion:     "1.0",
		ID:              uuid.New().String(),
		Source:          eventSource,
		Type:            eventType,
		DataContentType: "application/json",
		Subject:         subject,
		Time:            &now,
		Data:            data,
	}
}
