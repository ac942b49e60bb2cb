package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Abraxas-365/talentpool/pkg/kernel"
	"github.com/Abraxas-365/talentpool/talentpool/notification"
	"github.com/Abraxas-365/talentpool/talentpool/notification/worker"
)

type memQueue struct {
	mu     sync.Mutex
	events []notification.Event
}

func (q *memQueue) Enqueue(ctx context.Context, event notification.Event) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, event)
	return nil
}

func (q *memQueue) Dequeue(ctx context.Context, timeout time.Duration) (*notification.Event, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil, nil
	}
	event := q.events[0]
	q.events = q.events[1:]
	return &event, nil
}

func (q *memQueue) Size(ctx context.Context) (int64, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return int64(len(q.events)), nil
}

type captureNotifier struct {
	mu        sync.Mutex
	delivered []notification.Event
	err       error
	done      chan struct{}
	want      int
}

func (n *captureNotifier) Notify(ctx context.Context, event notification.Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.delivered = append(n.delivered, event)
	if len(n.delivered) == n.want {
		close(n.done)
	}
	return nil
}

func TestWorkerDeliversQueuedEvents(t *testing.T) {
	queue := &memQueue{}
	for _, id := range []string{"req-1", "req-2"} {
		queue.Enqueue(context.Background(), notification.Event{
			Type:           notification.EventIntroRequested,
			IntroRequestID: kernel.IntroRequestID(id),
		})
	}

	notifier := &captureNotifier{done: make(chan struct{}), want: 2}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go worker.New(queue, notifier).Run(ctx)

	select {
	case <-notifier.done:
	case <-time.After(5 * time.Second):
		t.Fatal("events were not delivered in time")
	}

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if len(notifier.delivered) != 2 {
		t.Errorf("delivered = %d events, want 2", len(notifier.delivered))
	}
}

func TestWorkerDropsFailedDeliveries(t *testing.T) {
	queue := &memQueue{}
	queue.Enqueue(context.Background(), notification.Event{Type: notification.EventIntroRequested})

	notifier := &captureNotifier{err: errors.New("smtp down"), done: make(chan struct{})}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go worker.New(queue, notifier).Run(ctx)

	// Wait until the queue drains; the failed event must not be requeued.
	deadline := time.After(5 * time.Second)
	for {
		size, _ := queue.Size(context.Background())
		if size == 0 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("queue never drained")
		case <-time.After(10 * time.Millisecond):
		}
	}
}
