package notification

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/jakduk/jakduk-go/domain"
)

// logNotifier records delivered notifications in the server log. It stands in
// for the SMTP/queue collaborator until one is configured.
type logNotifier struct{}

var _ domain.Notifier = (*logNotifier)(nil)

func NewLogNotifier() *logNotifier {
	return &logNotifier{}
}

func (n *logNotifier) Send(_ context.Context, batch []domain.Notification) error {
	for _, event := range batch {
		logrus.WithFields(logrus.Fields{
			"type":      event.Type.String(),
			"board":     event.Board,
			"seq":       event.ArticleSeq,
			"comment":   event.CommentID,
			"actor":     event.ActorID,
			"recipient": event.RecipientID,
		}).Info("notification delivered")
	}
	return nil
}
