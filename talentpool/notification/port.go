package notification

import (
	"context"
	"time"
)

// Queue transports events from request handling to the delivery worker.
type Queue interface {
	// Enqueue adds an event to the queue.
	Enqueue(ctx context.Context, event Event) error

	// Dequeue blocks up to timeout for the next event; a nil event with a
	// nil error means the timeout elapsed with nothing to deliver.
	Dequeue(ctx context.Context, timeout time.Duration) (*Event, error)

	// Size returns the number of queued events.
	Size(ctx context.Context) (int64, error)
}

// Notifier delivers one event to the outside world.
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}
