package notifier

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

const channel = "inventory:transactions"

// RedisPublisher implements Publisher over Redis pub/sub.
type RedisPublisher struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisPublisher(redisURL string) (*RedisPublisher, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisPublisher{
		client: client,
		ctx:    ctx,
	}, nil
}

func (p *RedisPublisher) Publish(event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.client.Publish(p.ctx, channel, data).Err()
}

// Client exposes the underlying connection so other Redis-backed
// components (rate limiter) can share it.
func (p *RedisPublisher) Client() *redis.Client {
	return p.client
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
