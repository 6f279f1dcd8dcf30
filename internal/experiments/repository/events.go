package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/aqualab-backend/internal/experiments/domain"
)

const eventChannelPrefix = "exp:events:" // Pub/Sub channel per experiment: exp:events:{id}

// EventTypeUpdated is published after an experiment update is persisted.
const EventTypeUpdated = "updated"

// ExperimentEvent is the payload sent on an experiment's channel.
type ExperimentEvent struct {
	Type       string             `json:"type"`
	Experiment *domain.Experiment `json:"experiment"`
	At         time.Time          `json:"at"`
}

// EventPublisher fans experiment changes out over Redis Pub/Sub
type EventPublisher struct {
	client *redis.Client
}

func NewEventPublisher(client *redis.Client) *EventPublisher {
	return &EventPublisher{client: client}
}

// PublishUpdated publishes an update event for e.
func (p *EventPublisher) PublishUpdated(ctx context.Context, e *domain.Experiment) error {
	data, err := json.Marshal(ExperimentEvent{
		Type:       EventTypeUpdated,
		Experiment: e,
		At:         time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal experiment event: %w", err)
	}

	if err := p.client.Publish(ctx, EventChannel(e.ID), data).Err(); err != nil {
		return fmt.Errorf("failed to publish experiment event: %w", err)
	}
	return nil
}

// Subscribe opens a subscription to an experiment's channel. Callers must
// Close the returned PubSub.
func (p *EventPublisher) Subscribe(ctx context.Context, id string) *redis.PubSub {
	return p.client.Subscribe(ctx, EventChannel(id))
}

func EventChannel(id string) string {
	return fmt.Sprintf("%s%s", eventChannelPrefix, id)
}
