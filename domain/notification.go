package domain

import "context"

type NotificationType int8

const (
	NotifyNewComment NotificationType = iota + 1
	NotifyFeeling
)

func (n NotificationType) String() string {
	switch n {
	case NotifyNewComment:
		return "NEW_COMMENT"
	case NotifyFeeling:
		return "FEELING"
	default:
		return "UNKNOWN"
	}
}

// Notification is one outbound event for the email/queue collaborators.
// Delivery is best-effort and never affects the triggering request.
type Notification struct {
	Type        NotificationType
	Board       BoardType
	ArticleSeq  int64
	CommentID   int64
	ActorID     int64
	RecipientID int64
}

// Notifier is the delivery collaborator (SMTP, message queue). Failures are
// logged by the worker and never propagate to the core.
type Notifier interface {
	Send(ctx context.Context, batch []Notification) error
}

type NotificationDispatcher interface {
	Start(ctx context.Context)

	// Dispatch enqueues a notification without blocking; the event is
	// dropped when the queue is full.
	Dispatch(n Notification)
}
