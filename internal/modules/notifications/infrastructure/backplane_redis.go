package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/go-redis/redis/v8"

	"mediBookNotify/internal/modules/notifications/application/port"
	"mediBookNotify/internal/modules/notifications/domain"
)

// RedisBackplane synchronizes multicast fan-out across instances over a
// single Redis pub/sub channel. Every instance, the publisher included,
// receives each published envelope. Messages published while an instance is
// disconnected are dropped, not queued; the persisted notification remains
// the source of truth.
type RedisBackplane struct {
	pub     *redis.Client
	sub     *redis.Client
	channel string
}

// NewRedisBackplane wires two clients: pub/sub in Redis puts a subscribed
// connection into subscriber mode, so publishing needs its own client.
func NewRedisBackplane(pub, sub *redis.Client, channel string) *RedisBackplane {
	return &RedisBackplane{pub: pub, sub: sub, channel: channel}
}

func (b *RedisBackplane) Publish(ctx context.Context, env domain.Envelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	if err := b.pub.Publish(ctx, b.channel, data).Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}

// Subscribe confirms the subscription with the server before returning, so a
// dead broker fails startup instead of silently dropping every multicast.
// The reader goroutine survives transient disconnects: go-redis reconnects
// the pub/sub connection with backoff on its own.
func (b *RedisBackplane) Subscribe(ctx context.Context, apply func(domain.Envelope)) error {
	pubsub := b.sub.Subscribe(ctx, b.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return fmt.Errorf("redis subscribe: %w", err)
	}

	go func() {
		defer pubsub.Close()
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var env domain.Envelope
				if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
					slog.Warn("backplane envelope decode error", slog.Any("error", err))
					continue
				}
				apply(env)
			}
		}
	}()
	return nil
}

var _ port.Backplane = (*RedisBackplane)(nil)
