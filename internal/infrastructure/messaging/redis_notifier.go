package messaging

import (
	"context"
	"fmt"

	"github.com/staylodge/guest-service/internal/domain/entity"
	"github.com/staylodge/guest-service/pkg/messaging"
)

// RedisNotifier publishes in-app notifications over Redis pub/sub. Each
// notification goes to the recipient's channel and to the global channel
// consumed by the notification fan-out service.
type RedisNotifier struct {
	redisClient messaging.RedisClient
	channel     string
}

// NewRedisNotifier creates a Redis-backed notification dispatcher.
func NewRedisNotifier(client messaging.RedisClient, channel string) *RedisNotifier {
	return &RedisNotifier{
		redisClient: client,
		channel:     channel,
	}
}

// Send publishes the notification.
func (n *RedisNotifier) Send(ctx context.Context, notification *entity.Notification) error {
	if notification == nil {
		return fmt.Errorf("notification is required")
	}

	// Per-user channel
	userChannel := fmt.Sprintf("%s:%s", n.channel, notification.UserID)
	if err := n.redisClient.Publish(ctx, userChannel, notification); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	// Global channel for fan-out consumers
	if err := n.redisClient.Publish(ctx, n.channel, notification); err != nil {
		return fmt.Errorf("failed to publish notification to global channel: %w", err)
	}

	return nil
}

// Close shuts down the underlying Redis client.
func (n *RedisNotifier) Close() error {
	return n.redisClient.Close()
}
