package cache

import (
	"context"
	"encoding/json"

	"github.com/NeuralTrust/TrustGuard/pkg/infra/cache/channel"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/cache/event"
	"github.com/go-redis/redis/v8"
)

type redisEventPublisher struct {
	client  *redis.Client
	channel channel.Channel
}

func NewRedisEventPublisher(client *redis.Client, channel channel.Channel) EventPublisher {
	return &redisEventPublisher{
		client:  client,
		channel: channel,
	}
}

func (p *redisEventPublisher) Publish(ctx context.Context, ev event.Event) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	envelope := RedisMessage{
		Type:  ev.Type(),
		Event: b,
	}
	data, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, string(p.channel), data).Err()
}

type noopEventPublisher struct{}

// NewNoopEventPublisher is used when redis is not configured.
func NewNoopEventPublisher() EventPublisher {
	return noopEventPublisher{}
}

func (noopEventPublisher) Publish(context.Context, event.Event) error {
	return nil
}
