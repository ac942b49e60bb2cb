package notificationinfra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Abraxas-365/talentpool/talentpool/notification"
	"github.com/go-redis/redis/v8"
)

// RedisQueue implements the notification Queue on a Redis list.
type RedisQueue struct {
	client    *redis.Client
	queueName string
}

// NewRedisQueue creates a new Redis-based queue.
func NewRedisQueue(client *redis.Client, queueName string) notification.Queue {
	return &RedisQueue{
		client:    client,
		queueName: queueName,
	}
}

// Enqueue adds an event to the queue.
func (q *RedisQueue) Enqueue(ctx context.Context, event notification.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal notification event: %w", err)
	}

	if err := q.client.LPush(ctx, q.queueName, data).Err(); err != nil {
		return fmt.Errorf("enqueue notification event: %w", err)
	}

	return nil
}

// Dequeue gets an event from the queue (blocking with timeout).
func (q *RedisQueue) Dequeue(ctx context.Context, timeout time.Duration) (*notification.Event, error) {
	result, err := q.client.BRPop(ctx, timeout, q.queueName).Result()
	if err != nil {
		// redis.Nil is returned when the timeout elapses
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("dequeue notification event: %w", err)
	}

	if len(result) < 2 {
		return nil, fmt.Errorf("invalid result from queue: expected 2 elements, got %d", len(result))
	}

	var event notification.Event
	if err := json.Unmarshal([]byte(result[1]), &event); err != nil {
		return nil, fmt.Errorf("unmarshal notification event: %w", err)
	}

	return &event, nil
}

// Size returns the number of queued events.
func (q *RedisQueue) Size(ctx context.Context) (int64, error) {
	size, err := q.client.LLen(ctx, q.queueName).Result()
	if err != nil {
		return 0, fmt.Errorf("get queue size: %w", err)
	}
	return size, nil
}
