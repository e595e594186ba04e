package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"delivery-wallet/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// DefaultEventChannel is the pub/sub channel wallet events go to.
const DefaultEventChannel = "wallet_events"

// EventPublisher implements ports.EventPublisher with Redis PUBLISH.
type EventPublisher struct {
	client  *goredis.Client
	channel string
}

// NewEventPublisher creates a publisher on channel (DefaultEventChannel if empty).
func NewEventPublisher(client *goredis.Client, channel string) *EventPublisher {
	if channel == "" {
		channel = DefaultEventChannel
	}
	return &EventPublisher{client: client, channel: channel}
}

// Publish sends evt as JSON. Subscribers that are not listening miss it.
func (p *EventPublisher) Publish(ctx context.Context, evt domain.Event) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", evt.Type, err)
	}
	return nil
}
