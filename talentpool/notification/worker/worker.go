package worker

import (
	"context"
	"time"

	"github.com/Abraxas-365/talentpool/pkg/logx"
	"github.com/Abraxas-365/talentpool/talentpool/notification"
)

const dequeueTimeout = 5 * time.Second

// Worker drains the notification queue and hands each event to the notifier.
type Worker struct {
	queue    notification.Queue
	notifier notification.Notifier
}

func New(queue notification.Queue, notifier notification.Notifier) *Worker {
	return &Worker{
		queue:    queue,
		notifier: notifier,
	}
}

// Run processes events until the context is cancelled. A failed delivery is
// logged and dropped; the queue is a convenience channel, not a durable
// outbox, and the request state in Postgres stays the source of truth.
func (w *Worker) Run(ctx context.Context) {
	logx.Info("notification worker started")

	for {
		select {
		case <-ctx.Done():
			logx.Info("notification worker stopping")
			return
		default:
		}

		event, err := w.queue.Dequeue(ctx, dequeueTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logx.Errorf("notification dequeue failed: %v", err)
			time.Sleep(time.Second)
			continue
		}
		if event == nil {
			continue // timeout, poll again
		}

		if err := w.notifier.Notify(ctx, *event); err != nil {
			logx.Errorf("notification delivery failed for intro request %s: %v",
				event.IntroRequestID, err)
			continue
		}

		logx.Infof("notification delivered: %s candidate=%s", event.Type, event.CandidateID)
	}
}
