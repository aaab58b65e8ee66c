package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jakduk/jakduk-go/domain"
)

type notificationWorker struct {
	notifier domain.Notifier
	ch       chan domain.Notification
}

var _ domain.NotificationDispatcher = (*notificationWorker)(nil)

func NewNotificationWorker(notifier domain.Notifier) *notificationWorker {
	return &notificationWorker{
		notifier: notifier,
		ch:       make(chan domain.Notification, 1024),
	}
}

// Dispatch never blocks the caller: when the queue is full the event is
// dropped, notification delivery is best-effort.
func (w *notificationWorker) Dispatch(n domain.Notification) {
	select {
	case w.ch <- n:
	default:
		logrus.Info("notification queue is full, event dropped")
	}
}

func (w *notificationWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	const batchSize = 100
	batch := make([]domain.Notification, 0, batchSize)
	for {
		select {
		case n := <-w.ch:
			batch = append(batch, n)
			if len(batch) == batchSize {
				w.flush(ctx, batch)
				batch = make([]domain.Notification, 0, batchSize)
			}
		case <-ticker.C:
			w.flush(ctx, batch)
			batch = make([]domain.Notification, 0, batchSize)
		case <-ctx.Done():
			logrus.Info("shutting down notification worker, flushing remaining events...")
			w.flush(context.Background(), batch)
			return
		}
	}
}

// flush hands the batch to the delivery collaborator. Errors are logged and
// forgotten; they must never reach the request that triggered the event.
func (w *notificationWorker) flush(ctx context.Context, batch []domain.Notification) {
	if len(batch) == 0 {
		return
	}
	if err := w.notifier.Send(ctx, batch); err != nil {
		logrus.Errorf("failed to deliver %d notifications: %v", len(batch), err)
	}
}
